package core

import (
	"time"

	"github.com/lixenwraith/zombie-conga/vmath"
)

// Move is a fixed-duration linear slide from From to To
// Duration-based so that a zero dt never changes the interpolated position
type Move struct {
	From     vmath.Vec2
	To       vmath.Vec2
	Elapsed  time.Duration
	Duration time.Duration
}

// NewMove starts a slide at from covering delta over d
func NewMove(from, delta vmath.Vec2, d time.Duration) Move {
	return Move{From: from, To: from.Add(delta), Duration: d}
}

// Progress returns elapsed/duration in [0, 1]; a zero-duration move is complete
func (m Move) Progress() float64 {
	if m.Duration <= 0 {
		return 1
	}
	return vmath.Clamp(float64(m.Elapsed)/float64(m.Duration), 0, 1)
}

// Position returns the interpolated position at the current elapsed time
func (m Move) Position() vmath.Vec2 {
	return vmath.Lerp(m.From, m.To, m.Progress())
}

// Done reports whether the slide has reached its end
func (m Move) Done() bool {
	return m.Elapsed >= m.Duration
}

// Step advances the move by dt and returns the new position and completion
func (m *Move) Step(dt time.Duration) (vmath.Vec2, bool) {
	if dt > 0 {
		m.Elapsed += dt
		if m.Elapsed > m.Duration {
			m.Elapsed = m.Duration
		}
	}
	return m.Position(), m.Done()
}
