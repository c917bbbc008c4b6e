package spawn

import (
	"testing"
	"time"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/config"
	"github.com/lixenwraith/zombie-conga/engine"
	"github.com/lixenwraith/zombie-conga/vmath"
)

type fakeSpawner struct {
	kinds  []component.RoamerKind
	refuse bool
}

func (f *fakeSpawner) SpawnRoamer(kind component.RoamerKind) (engine.RoamerHandle, bool) {
	if f.refuse {
		return engine.RoamerHandle{}, false
	}
	f.kinds = append(f.kinds, kind)
	return engine.RoamerHandle{ID: component.EntityID(len(f.kinds)), Kind: kind}, true
}

func (f *fakeSpawner) count(kind component.RoamerKind) int {
	n := 0
	for _, k := range f.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

func TestScheduler_Intervals(t *testing.T) {
	sp := &fakeSpawner{}
	s := NewScheduler(sp, 2*time.Second, time.Second)

	assert.Equal(t, 2, s.Update(0), "both fire on the first update")
	assert.Equal(t, []component.RoamerKind{component.KindEnemy, component.KindCat}, sp.kinds)

	assert.Zero(t, s.Update(500*time.Millisecond))
	assert.Equal(t, 1, s.Update(time.Second))
	assert.Equal(t, 2, s.Update(2*time.Second))

	assert.Equal(t, 2, sp.count(component.KindEnemy))
	assert.Equal(t, 3, sp.count(component.KindCat))
}

func TestScheduler_LongFrameCatchesUp(t *testing.T) {
	sp := &fakeSpawner{}
	s := NewScheduler(sp, 2*time.Second, time.Second)
	s.Update(0)

	assert.Equal(t, 6, s.Update(4*time.Second))
	assert.Equal(t, 3, sp.count(component.KindEnemy))
	assert.Equal(t, 5, sp.count(component.KindCat))
}

func TestScheduler_IgnoresBackwardsTime(t *testing.T) {
	sp := &fakeSpawner{}
	s := NewScheduler(sp, 2*time.Second, time.Second)
	s.Update(10 * time.Second)
	s.Update(10500 * time.Millisecond)

	assert.Zero(t, s.Update(5*time.Second))
	assert.Len(t, sp.kinds, 2)
}

func TestScheduler_StopsWhenRefused(t *testing.T) {
	sp := &fakeSpawner{}
	s := NewScheduler(sp, 2*time.Second, time.Second)
	s.Update(0)

	sp.refuse = true
	assert.Zero(t, s.Update(time.Second))
	assert.True(t, s.Stopped())

	sp.refuse = false
	assert.Zero(t, s.Update(10*time.Second))
}

func TestScheduler_DrivesSimulation(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 99
	sim, err := engine.NewSimulation(cfg)
	require.NoError(t, err)
	s := NewScheduler(sim, cfg.Enemy.SpawnInterval.Duration, cfg.Cat.SpawnInterval.Duration)

	sim.Advance(0)
	s.Update(0)
	snap := sim.Snapshot()
	assert.Equal(t, 1, snap.CountKind(component.KindEnemy))
	assert.Equal(t, 1, snap.CountKind(component.KindCat))
}

var testWorld = r2.RectFromPoints(r2.Point{X: 100, Y: 50}, r2.Point{X: 1100, Y: 550})

func TestNoisePlanner_EnemyLanes(t *testing.T) {
	p := NewNoisePlanner(7, 2*time.Second, 11*time.Second)
	size := vmath.V2(150, 150)

	for i := 0; i < 50; i++ {
		path := p.Plan(component.KindEnemy, testWorld, size)
		assert.Equal(t, 1175.0, path.From.X)
		assert.Equal(t, 25.0, path.To.X)
		assert.Equal(t, path.From.Y, path.To.Y)
		assert.GreaterOrEqual(t, path.From.Y, 125.0)
		assert.LessOrEqual(t, path.From.Y, 475.0)
		assert.Equal(t, 2*time.Second, path.Duration)
	}
}

func TestNoisePlanner_Deterministic(t *testing.T) {
	a := NewNoisePlanner(7, 2*time.Second, 11*time.Second)
	b := NewNoisePlanner(7, 2*time.Second, 11*time.Second)
	size := vmath.V2(150, 150)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Plan(component.KindEnemy, testWorld, size), b.Plan(component.KindEnemy, testWorld, size))
		assert.Equal(t, a.Plan(component.KindCat, testWorld, size), b.Plan(component.KindCat, testWorld, size))
	}
}

func TestNoisePlanner_CatsInsideWorld(t *testing.T) {
	p := NewNoisePlanner(3, 2*time.Second, 11*time.Second)
	for i := 0; i < 50; i++ {
		path := p.Plan(component.KindCat, testWorld, vmath.V2(80, 80))
		assert.Equal(t, path.From, path.To)
		assert.True(t, testWorld.ContainsPoint(path.From.R2()))
		assert.Equal(t, 11*time.Second, path.Duration)
	}
}
