package parameter

import "time"

// Cat (Collectible)
const (
	// CatSpawnInterval is the time between cat spawns
	CatSpawnInterval = 1 * time.Second

	// CatAppearDuration is the scale-in time after spawn
	CatAppearDuration = 500 * time.Millisecond

	// CatWiggleDuration is the time a cat idles at full scale (10 x 1s wiggles)
	CatWiggleDuration = 10 * time.Second

	// CatDisappearDuration is the scale-out time before expiry
	CatDisappearDuration = 500 * time.Millisecond

	// CatLifetime is the total time an uncaught cat stays in the world
	CatLifetime = CatAppearDuration + CatWiggleDuration + CatDisappearDuration

	// CatWidth, CatHeight is the collision box size at full scale
	CatWidth  = 80.0
	CatHeight = 80.0
)
