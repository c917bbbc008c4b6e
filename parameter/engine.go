package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the presentation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// World Layout
const (
	// DefaultWorldWidth is the logical scene width in points
	DefaultWorldWidth = 2048.0

	// DefaultWorldHeight is the logical scene height in points
	DefaultWorldHeight = 1536.0

	// MaxAspectRatio caps the playable band: height <= width / MaxAspectRatio
	MaxAspectRatio = 2.16
)
