package parameter

import (
	"math"
	"time"
)

// Zombie Movement
const (
	// ZombieMoveSpeed is the pursuit speed toward the touch target (points/sec)
	ZombieMoveSpeed = 480.0

	// ZombieRotateSpeed caps heading change (radians/sec)
	ZombieRotateSpeed = 4.0 * math.Pi

	// ZombieStartX, ZombieStartY is the spawn position at round start
	ZombieStartX = 400.0
	ZombieStartY = 400.0

	// ZombieWidth, ZombieHeight is the collision box size
	ZombieWidth  = 150.0
	ZombieHeight = 100.0
)

// Invincibility
const (
	// InvincibleDuration is how long the zombie ignores collisions after an enemy hit
	InvincibleDuration = 3 * time.Second

	// InvincibleBlinks is the number of blink slices within InvincibleDuration
	// Visible for the first half of each slice
	InvincibleBlinks = 10
)
