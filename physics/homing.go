package physics

import (
	"github.com/lixenwraith/zombie-conga/core"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// Arrive checks whether k reaches target within one frame at speed
// On arrival the position snaps to target exactly and velocity is zeroed,
// which prevents oscillating around the target
// Returns true if the entity arrived this frame
func Arrive(k *core.Kinetic, target vmath.Vec2, speed, dt float64) bool {
	remaining := target.Sub(k.Position).Length()
	if remaining > speed*dt {
		return false
	}
	k.Position = target
	k.Velocity = vmath.Vec2{}
	return true
}

// ApplyPursuit runs one frame of target pursuit: snap on arrival, otherwise
// integrate velocity and turn the heading toward it
// Returns true if the entity arrived this frame
func ApplyPursuit(k *core.Kinetic, heading *float64, target vmath.Vec2, profile *PursuitProfile, dt float64) bool {
	if Arrive(k, target, profile.Speed, dt) {
		return true
	}
	Integrate(k, dt)
	*heading = RotateToward(*heading, k.Velocity, profile.TurnRate, dt)
	return false
}
