package systems

import (
	"time"
)

// ReleaseSystem animates followers knocked off the train: each slides along
// its fling offset, spins and shrinks to nothing, then is removed
type ReleaseSystem struct {
	spin float64 // Total radians turned over the animation
}

func NewReleaseSystem(spin float64) *ReleaseSystem {
	return &ReleaseSystem{spin: spin}
}

func (s *ReleaseSystem) Priority() int {
	return 60
}

func (s *ReleaseSystem) Update(w *World, dt time.Duration) {
	kept := w.Released[:0]
	for i := range w.Released {
		r := w.Released[i]
		pos, done := r.Move.Step(dt)
		if done {
			continue
		}
		p := r.Move.Progress()
		r.Position = pos
		r.Scale = 1 - p
		r.Rotation = s.spin * p
		kept = append(kept, r)
	}
	clearTail(w.Released, len(kept))
	w.Released = kept
}
