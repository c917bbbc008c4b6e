package systems

import (
	"time"

	"github.com/lixenwraith/zombie-conga/vmath"
)

// ScrollSystem advances the camera and recycles background tiles that fall
// fully behind the left edge of the visible world
type ScrollSystem struct {
	enabled bool
	speed   float64 // World units per second along +X
}

func NewScrollSystem(enabled bool, speed float64) *ScrollSystem {
	return &ScrollSystem{enabled: enabled, speed: speed}
}

func (s *ScrollSystem) Priority() int {
	return 10
}

func (s *ScrollSystem) Update(w *World, dt time.Duration) {
	if s.enabled {
		w.Camera.Position.X += s.speed * dt.Seconds()
	}
	w.Bounds = vmath.AreaTranslate(w.Playable, w.Camera.Position)

	n := float64(len(w.Tiles))
	minX := w.Bounds.X.Lo
	for i := range w.Tiles {
		tile := &w.Tiles[i]
		if tile.Width <= 0 {
			continue
		}
		// Loop covers a camera jump of several widths in one frame
		for tile.TrailingEdge() < minX {
			tile.X += n * tile.Width
		}
	}
}
