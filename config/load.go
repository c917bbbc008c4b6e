package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "ZOMBIE_CONGA_"

// ErrInvalidConfig is returned when a configuration cannot drive a simulation
var ErrInvalidConfig = errors.New("invalid config")

// Load builds a Config from defaults, then the TOML file at path, then the
// .env file at envPath, then the process environment
// Empty paths skip the corresponding source; a missing .env file is not an error
func Load(path, envPath string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "decode config %s", path)
		}
		for _, key := range md.Undecoded() {
			log.Printf("config: ignoring unknown key %q in %s", key.String(), path)
		}
		log.Printf("config: loaded %s", path)
	}

	dotenv := map[string]string{}
	if envPath != "" {
		values, err := godotenv.Read(envPath)
		switch {
		case err == nil:
			dotenv = values
			log.Printf("config: loaded %s", envPath)
		case os.IsNotExist(errors.Cause(err)):
		default:
			return nil, errors.Wrapf(err, "read env file %s", envPath)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults; used for embedded presets and tests
func Decode(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type envSetter func(cfg *Config, value string) error

func floatSetter(field func(*Config) *float64) envSetter {
	return func(cfg *Config, value string) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*field(cfg) = f
		return nil
	}
}

func intSetter(field func(*Config) *int) envSetter {
	return func(cfg *Config, value string) error {
		i, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*field(cfg) = i
		return nil
	}
}

func boolSetter(field func(*Config) *bool) envSetter {
	return func(cfg *Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*field(cfg) = b
		return nil
	}
}

func durationSetter(field func(*Config) *Duration) envSetter {
	return func(cfg *Config, value string) error {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field(cfg).Duration = d
		return nil
	}
}

var envSetters = map[string]envSetter{
	"SEED": func(cfg *Config, value string) error {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		cfg.Seed = seed
		return nil
	},
	"WORLD_WIDTH":         floatSetter(func(c *Config) *float64 { return &c.World.Width }),
	"WORLD_HEIGHT":        floatSetter(func(c *Config) *float64 { return &c.World.Height }),
	"SCROLLING":           boolSetter(func(c *Config) *bool { return &c.World.Scrolling }),
	"CAMERA_SPEED":        floatSetter(func(c *Config) *float64 { return &c.World.CameraSpeed }),
	"ZOMBIE_SPEED":        floatSetter(func(c *Config) *float64 { return &c.Zombie.MoveSpeed }),
	"INVINCIBLE_DURATION": durationSetter(func(c *Config) *Duration { return &c.Zombie.InvincibleDuration }),
	"LIVES":               intSetter(func(c *Config) *int { return &c.Round.Lives }),
	"WIN_CHAIN_LENGTH":    intSetter(func(c *Config) *int { return &c.Round.WinChainLength }),
	"AUDIO":               boolSetter(func(c *Config) *bool { return &c.Audio.Enabled }),
	"MUSIC":               boolSetter(func(c *Config) *bool { return &c.Audio.Music }),
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for suffix, set := range envSetters {
		key := EnvPrefix + suffix
		value, ok := lookup(key)
		if !ok {
			continue
		}
		if err := set(c, strings.TrimSpace(value)); err != nil {
			return errors.Wrapf(err, "parse %s", key)
		}
	}
	return nil
}
