package core

import "github.com/lixenwraith/zombie-conga/vmath"

type Kinetic struct {
	// Position in world units
	Position vmath.Vec2
	// Velocity in world units per second
	Velocity vmath.Vec2
}
