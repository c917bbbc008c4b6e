package systems

import (
	"time"

	"github.com/lixenwraith/zombie-conga/events"
	"github.com/lixenwraith/zombie-conga/physics"
)

// MovementSystem steers the zombie toward its target, snapping on arrival
type MovementSystem struct {
	profile physics.PursuitProfile
}

func NewMovementSystem(speed, turnRate float64) *MovementSystem {
	return &MovementSystem{profile: physics.PursuitProfile{Speed: speed, TurnRate: turnRate}}
}

func (s *MovementSystem) Priority() int {
	return 20
}

func (s *MovementSystem) Update(w *World, dt time.Duration) {
	a := &w.Actor
	if !a.HasTarget || !a.Pursuing {
		return
	}

	// Velocity is fixed at SetTarget time; a bounce may have reflected it
	// away from the target, in which case the zombie keeps drifting
	if physics.ApplyPursuit(&a.Kinetic, &a.Heading, a.Target, &s.profile, dt.Seconds()) {
		a.Pursuing = false
		w.emit(events.EventPursuitStop, nil)
	}
}

// BoundsSystem keeps the zombie inside the visible world, reflecting velocity
// on every axis it touches
type BoundsSystem struct{}

func NewBoundsSystem() *BoundsSystem {
	return &BoundsSystem{}
}

func (s *BoundsSystem) Priority() int {
	return 30
}

func (s *BoundsSystem) Update(w *World, dt time.Duration) {
	physics.ReflectBounds(&w.Actor.Kinetic, w.Bounds)
}
