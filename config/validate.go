package config

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/zombie-conga/vmath"
)

// Validate rejects values a simulation cannot run with
// Violations are construction errors, never frame errors
func (c *Config) Validate() error {
	if _, err := vmath.PlayableArea(c.World.Width, c.World.Height, c.World.MaxAspectRatio); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "world %gx%g aspect %g", c.World.Width, c.World.Height, c.World.MaxAspectRatio)
	}
	if c.World.BackgroundTiles < 2 {
		return errors.Wrapf(ErrInvalidConfig, "background_tiles %d, need at least 2", c.World.BackgroundTiles)
	}
	if c.World.CameraSpeed < 0 {
		return errors.Wrap(ErrInvalidConfig, "camera_speed must not be negative")
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"zombie.move_speed", c.Zombie.MoveSpeed},
		{"zombie.rotate_speed", c.Zombie.RotateSpeed},
		{"zombie.width", c.Zombie.Width},
		{"zombie.height", c.Zombie.Height},
		{"train.move_speed", c.Train.MoveSpeed},
		{"cat.width", c.Cat.Width},
		{"cat.height", c.Cat.Height},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"zombie.invincible_duration", c.Zombie.InvincibleDuration.Seconds()},
		{"train.move_duration", c.Train.MoveDuration.Seconds()},
		{"train.release_duration", c.Train.ReleaseDuration.Seconds()},
		{"cat.spawn_interval", c.Cat.SpawnInterval.Seconds()},
		{"cat.lifetime", c.Cat.Lifetime().Seconds()},
		{"enemy.spawn_interval", c.Enemy.SpawnInterval.Seconds()},
		{"enemy.cross_duration", c.Enemy.CrossDuration.Seconds()},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %g", p.name, p.value)
		}
	}

	if c.Zombie.Blinks < 1 {
		return errors.Wrap(ErrInvalidConfig, "zombie.blinks must be at least 1")
	}
	if c.Enemy.HitInset < 0 || c.Train.ReleaseDistance < 0 || c.Train.LostPerHit < 0 {
		return errors.Wrap(ErrInvalidConfig, "hit_inset, release_distance and lost_per_hit must not be negative")
	}
	if c.Round.Lives < 1 || c.Round.WinChainLength < 1 {
		return errors.Wrap(ErrInvalidConfig, "round.lives and round.win_chain_length must be at least 1")
	}
	return nil
}
