package component

import "github.com/lixenwraith/zombie-conga/vmath"

// Camera is the scrolling view origin in world units
type Camera struct {
	Position vmath.Vec2
}

// BackgroundTile is one recycled background segment
type BackgroundTile struct {
	Index int
	X     float64
	Width float64
}

// TrailingEdge returns the tile's right edge
func (b BackgroundTile) TrailingEdge() float64 {
	return b.X + b.Width
}
