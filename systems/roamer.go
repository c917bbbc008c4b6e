package systems

import (
	"time"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/events"
)

// CatTiming is the appear/wiggle/disappear envelope of an uncaught cat
type CatTiming struct {
	Appear    time.Duration
	Wiggle    time.Duration
	Disappear time.Duration
}

// Scale returns the cat's scale factor elapsed into its lifetime
// Ramps 0 to 1 while appearing, holds 1 while wiggling, ramps 1 to 0 while disappearing
func (c CatTiming) Scale(elapsed time.Duration) float64 {
	switch {
	case elapsed <= 0:
		return 0
	case elapsed < c.Appear:
		return float64(elapsed) / float64(c.Appear)
	case elapsed < c.Appear+c.Wiggle:
		return 1
	}
	left := c.Appear + c.Wiggle + c.Disappear - elapsed
	if left <= 0 || c.Disappear <= 0 {
		return 0
	}
	return float64(left) / float64(c.Disappear)
}

// RoamerSystem advances the timed move of every cat and enemy and removes
// those whose move has completed
type RoamerSystem struct {
	cat CatTiming
}

func NewRoamerSystem(cat CatTiming) *RoamerSystem {
	return &RoamerSystem{cat: cat}
}

func (s *RoamerSystem) Priority() int {
	return 40
}

func (s *RoamerSystem) Update(w *World, dt time.Duration) {
	kept := w.Roamers[:0]
	for i := range w.Roamers {
		r := w.Roamers[i]
		pos, done := r.Move.Step(dt)
		r.Position = pos
		if r.Kind == component.KindCat {
			r.Scale = s.cat.Scale(r.Move.Elapsed)
		}

		if done {
			if r.Kind == component.KindCat {
				w.emit(events.EventCatExpired, &events.RoamerPayload{ID: r.ID, Kind: r.Kind})
			}
			continue
		}
		kept = append(kept, r)
	}
	clearTail(w.Roamers, len(kept))
	w.Roamers = kept
}

// clearTail zeroes the slots past n after an in-place filter
func clearTail[T any](s []T, n int) {
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
}
