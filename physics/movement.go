package physics

import (
	"math"

	"github.com/lixenwraith/zombie-conga/vmath"
)

// SteerToward returns a velocity of magnitude speed aiming from pos at target
// Returns vmath.ErrDegenerateVector when pos equals target
func SteerToward(pos, target vmath.Vec2, speed float64) (vmath.Vec2, error) {
	dir, err := target.Sub(pos).Normalize()
	if err != nil {
		return vmath.Vec2{}, err
	}
	return dir.Scale(speed), nil
}

// RotateToward turns heading toward the angle of velocity by at most
// maxRadPerSec*dt, always along the shorter arc and never past the target
// A zero velocity carries no heading and leaves the current one untouched
func RotateToward(heading float64, velocity vmath.Vec2, maxRadPerSec, dt float64) float64 {
	if velocity.IsZero() {
		return heading
	}
	delta := vmath.ShortestAngleDelta(heading, velocity.Angle())
	amount := math.Min(maxRadPerSec*dt, math.Abs(delta))
	return heading + vmath.Sign(delta)*amount
}
