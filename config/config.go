// Package config loads gameplay tuning from defaults, a TOML file, a .env
// file and ZOMBIE_CONGA_* environment variables, in increasing precedence.
package config

import (
	"time"

	"github.com/lixenwraith/zombie-conga/parameter"
)

// Duration wraps time.Duration for text decoding ("300ms", "2s")
type Duration struct {
	time.Duration
}

// D is a convenience constructor for Duration
func D(d time.Duration) Duration {
	return Duration{Duration: d}
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds the parameters of one simulation instance
type Config struct {
	// Seed drives spawn placement and release offsets; 0 picks one at startup
	Seed uint64 `toml:"seed"`

	World  WorldConfig  `toml:"world"`
	Zombie ZombieConfig `toml:"zombie"`
	Train  TrainConfig  `toml:"train"`
	Cat    CatConfig    `toml:"cat"`
	Enemy  EnemyConfig  `toml:"enemy"`
	Round  RoundConfig  `toml:"round"`
	Audio  AudioConfig  `toml:"audio"`
}

type WorldConfig struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	MaxAspectRatio float64 `toml:"max_aspect_ratio"`

	// Scrolling enables the moving camera and background recycling
	Scrolling       bool    `toml:"scrolling"`
	CameraSpeed     float64 `toml:"camera_speed"`
	BackgroundTiles int     `toml:"background_tiles"`
}

type ZombieConfig struct {
	MoveSpeed          float64  `toml:"move_speed"`
	RotateSpeed        float64  `toml:"rotate_speed"`
	StartX             float64  `toml:"start_x"`
	StartY             float64  `toml:"start_y"`
	Width              float64  `toml:"width"`
	Height             float64  `toml:"height"`
	InvincibleDuration Duration `toml:"invincible_duration"`
	Blinks             int      `toml:"blinks"`
}

type TrainConfig struct {
	MoveSpeed       float64  `toml:"move_speed"`
	MoveDuration    Duration `toml:"move_duration"`
	LostPerHit      int      `toml:"lost_per_hit"`
	ReleaseDuration Duration `toml:"release_duration"`
	ReleaseDistance float64  `toml:"release_distance"`
}

type CatConfig struct {
	SpawnInterval     Duration `toml:"spawn_interval"`
	AppearDuration    Duration `toml:"appear_duration"`
	WiggleDuration    Duration `toml:"wiggle_duration"`
	DisappearDuration Duration `toml:"disappear_duration"`
	Width             float64  `toml:"width"`
	Height            float64  `toml:"height"`
}

// Lifetime returns the total time an uncaught cat stays in the world
func (c CatConfig) Lifetime() time.Duration {
	return c.AppearDuration.Duration + c.WiggleDuration.Duration + c.DisappearDuration.Duration
}

type EnemyConfig struct {
	SpawnInterval Duration `toml:"spawn_interval"`
	CrossDuration Duration `toml:"cross_duration"`
	Width         float64  `toml:"width"`
	Height        float64  `toml:"height"`
	HitInset      float64  `toml:"hit_inset"`
}

type RoundConfig struct {
	Lives          int `toml:"lives"`
	WinChainLength int `toml:"win_chain_length"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	Music   bool `toml:"music"`
}

// Default returns the stock arcade tuning
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:           parameter.DefaultWorldWidth,
			Height:          parameter.DefaultWorldHeight,
			MaxAspectRatio:  parameter.MaxAspectRatio,
			Scrolling:       false,
			CameraSpeed:     parameter.CameraScrollSpeed,
			BackgroundTiles: parameter.BackgroundTileCount,
		},
		Zombie: ZombieConfig{
			MoveSpeed:          parameter.ZombieMoveSpeed,
			RotateSpeed:        parameter.ZombieRotateSpeed,
			StartX:             parameter.ZombieStartX,
			StartY:             parameter.ZombieStartY,
			Width:              parameter.ZombieWidth,
			Height:             parameter.ZombieHeight,
			InvincibleDuration: D(parameter.InvincibleDuration),
			Blinks:             parameter.InvincibleBlinks,
		},
		Train: TrainConfig{
			MoveSpeed:       parameter.TrainMoveSpeed,
			MoveDuration:    D(parameter.TrainMoveDuration),
			LostPerHit:      parameter.CatsLostPerHit,
			ReleaseDuration: D(parameter.ReleaseDuration),
			ReleaseDistance: parameter.ReleaseDistance,
		},
		Cat: CatConfig{
			SpawnInterval:     D(parameter.CatSpawnInterval),
			AppearDuration:    D(parameter.CatAppearDuration),
			WiggleDuration:    D(parameter.CatWiggleDuration),
			DisappearDuration: D(parameter.CatDisappearDuration),
			Width:             parameter.CatWidth,
			Height:            parameter.CatHeight,
		},
		Enemy: EnemyConfig{
			SpawnInterval: D(parameter.EnemySpawnInterval),
			CrossDuration: D(parameter.EnemyCrossDuration),
			Width:         parameter.EnemyWidth,
			Height:        parameter.EnemyHeight,
			HitInset:      parameter.EnemyHitInset,
		},
		Round: RoundConfig{
			Lives:          parameter.StartingLives,
			WinChainLength: parameter.WinChainLength,
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
		},
	}
}
