package parameter

// Scrolling camera
const (
	// CameraScrollSpeed is the horizontal camera velocity when scrolling (points/sec)
	CameraScrollSpeed = 200.0

	// BackgroundTileCount is the recycled background pool size (minimum 2)
	BackgroundTileCount = 2
)
