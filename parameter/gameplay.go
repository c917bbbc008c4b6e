package parameter

import (
	"math"
	"time"
)

// Round Rules
const (
	// StartingLives is the life count at round start
	StartingLives = 5

	// WinChainLength is the train length that wins the round
	WinChainLength = 15

	// CatsLostPerHit is how many followers an enemy hit releases from the tail
	CatsLostPerHit = 2
)

// Conga Train
const (
	// TrainMoveSpeed is the follower slide speed (points/sec)
	TrainMoveSpeed = 480.0

	// TrainMoveDuration is the length of one follower slide
	TrainMoveDuration = 300 * time.Millisecond
)

// Released Followers
const (
	// ReleaseDuration is the fling-out animation length before removal
	ReleaseDuration = 1 * time.Second

	// ReleaseDistance is how far a released follower is flung
	ReleaseDistance = 100.0

	// ReleaseSpin is the total rotation over the fling (radians)
	ReleaseSpin = 4 * math.Pi
)

// Game Over
const (
	// GameOverDisplayDuration is how long the result scene shows before a new round
	GameOverDisplayDuration = 3 * time.Second
)
