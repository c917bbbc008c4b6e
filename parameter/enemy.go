package parameter

import "time"

// Cat Lady (Enemy)
const (
	// EnemySpawnInterval is the time between enemy spawns
	EnemySpawnInterval = 2 * time.Second

	// EnemyCrossDuration is the time an enemy takes to cross the world rect
	EnemyCrossDuration = 2 * time.Second

	// EnemyWidth, EnemyHeight is the collision box size before inset
	EnemyWidth  = 150.0
	EnemyHeight = 150.0

	// EnemyHitInset shrinks the enemy box on both axes for lenient hits
	EnemyHitInset = 20.0
)
