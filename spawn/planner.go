package spawn

import (
	"time"

	"github.com/golang/geo/r2"
	"github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/engine"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// laneStep is the noise-space distance between consecutive enemy lanes
// Small steps give lanes that drift rather than jump
const laneStep = 0.35

// NoisePlanner picks enemy lanes from a 1D OpenSimplex walk so successive
// enemies sweep the band in waves; cats fall through to uniform placement
type NoisePlanner struct {
	noise   opensimplex.Noise
	cats    engine.PathPlanner
	cross   time.Duration
	spawned int
}

func NewNoisePlanner(seed uint64, cross, catLifetime time.Duration) *NoisePlanner {
	return &NoisePlanner{
		noise: opensimplex.NewNormalized(int64(seed)),
		cats:  engine.NewRandomPlanner(vmath.NewFastRand(seed^0x9e3779b97f4a7c15), cross, catLifetime),
		cross: cross,
	}
}

func (p *NoisePlanner) Plan(kind component.RoamerKind, world r2.Rect, size vmath.Vec2) engine.Path {
	if kind != component.KindEnemy {
		return p.cats.Plan(kind, world, size)
	}

	lo := world.Y.Lo + size.Y/2
	hi := world.Y.Hi - size.Y/2
	n := vmath.Clamp(p.noise.Eval2(float64(p.spawned)*laneStep, 0), 0, 1)
	p.spawned++

	y := lo
	if hi > lo {
		y = lo + n*(hi-lo)
	}
	return engine.EnemyLane(world, size, y, p.cross)
}
