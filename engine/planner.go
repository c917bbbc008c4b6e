package engine

import (
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// Path is the timed linear move a roamer follows from spawn to removal
// A stationary roamer has From == To
type Path struct {
	From     vmath.Vec2
	To       vmath.Vec2
	Duration time.Duration
}

// PathPlanner chooses where a new roamer appears and where it goes
// world is the current visible world rect and size the roamer's box
type PathPlanner interface {
	Plan(kind component.RoamerKind, world r2.Rect, size vmath.Vec2) Path
}

// RandomPlanner spawns enemies at a uniform random lane just beyond the
// right edge, crossing to just beyond the left edge, and cats at a uniform
// random point inside the world for their whole lifetime
type RandomPlanner struct {
	rng         *vmath.FastRand
	crossTime   time.Duration
	catLifetime time.Duration
}

func NewRandomPlanner(rng *vmath.FastRand, crossTime, catLifetime time.Duration) *RandomPlanner {
	return &RandomPlanner{rng: rng, crossTime: crossTime, catLifetime: catLifetime}
}

func (p *RandomPlanner) Plan(kind component.RoamerKind, world r2.Rect, size vmath.Vec2) Path {
	if kind == component.KindEnemy {
		y := p.rng.Range(world.Y.Lo+size.Y/2, world.Y.Hi-size.Y/2)
		return EnemyLane(world, size, y, p.crossTime)
	}
	pos := vmath.AreaRandomPoint(world, p.rng)
	return Path{From: pos, To: pos, Duration: p.catLifetime}
}

// EnemyLane returns the right-to-left crossing at height y
// The enemy starts and ends fully outside the world rect
func EnemyLane(world r2.Rect, size vmath.Vec2, y float64, d time.Duration) Path {
	return Path{
		From:     vmath.V2(world.X.Hi+size.X/2, y),
		To:       vmath.V2(world.X.Lo-size.X/2, y),
		Duration: d,
	}
}
