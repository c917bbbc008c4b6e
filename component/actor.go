package component

import (
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/core"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// HitState is the controlled actor's collision state
type HitState uint8

const (
	StateVulnerable HitState = iota
	StateInvincible
)

func (s HitState) String() string {
	switch s {
	case StateInvincible:
		return "invincible"
	default:
		return "vulnerable"
	}
}

// Actor is the controlled zombie
type Actor struct {
	ID EntityID
	core.Kinetic
	Heading float64 // Radians
	Size    vmath.Vec2

	// Pursuit target, HasTarget false until the first touch
	Target    vmath.Vec2
	HasTarget bool
	// Pursuing mirrors the "pursuit animation playing" signal
	Pursuing bool

	State             HitState
	InvincibleElapsed time.Duration
	Hidden            bool
}

// Invincible reports whether collisions are currently ignored
func (a *Actor) Invincible() bool {
	return a.State == StateInvincible
}

// Bounds returns the actor's axis-aligned collision box
func (a *Actor) Bounds() r2.Rect {
	return vmath.BoxAt(a.Position, a.Size)
}
