package physics

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/core"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// Integrate performs position integration: p = p + v*dt
func Integrate(k *core.Kinetic, dt float64) vmath.Vec2 {
	k.Position = k.Position.Add(k.Velocity.Scale(dt))
	return k.Position
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *core.Kinetic, v vmath.Vec2) {
	k.Velocity = v
}

// ClampAndReflect clamps pos into rect and negates the velocity component
// of every axis that touched or crossed the boundary
// Axes are handled independently, so a corner reflects both in one call
func ClampAndReflect(pos, vel vmath.Vec2, rect r2.Rect) (vmath.Vec2, vmath.Vec2) {
	if pos.X <= rect.X.Lo {
		pos.X = rect.X.Lo
		vel.X = -vel.X
	}
	if pos.X >= rect.X.Hi {
		pos.X = rect.X.Hi
		vel.X = -vel.X
	}
	if pos.Y <= rect.Y.Lo {
		pos.Y = rect.Y.Lo
		vel.Y = -vel.Y
	}
	if pos.Y >= rect.Y.Hi {
		pos.Y = rect.Y.Hi
		vel.Y = -vel.Y
	}
	return pos, vel
}

// ReflectBounds applies ClampAndReflect to k, returns true if the position was clamped
func ReflectBounds(k *core.Kinetic, rect r2.Rect) bool {
	before := k.Position
	k.Position, k.Velocity = ClampAndReflect(k.Position, k.Velocity, rect)
	return k.Position != before
}
