// Package spawn drives roamer creation on fixed intervals of simulation time.
package spawn

import (
	"log"
	"time"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/engine"
)

// Spawner is the part of a simulation the scheduler needs
type Spawner interface {
	SpawnRoamer(kind component.RoamerKind) (engine.RoamerHandle, bool)
}

type timer struct {
	kind     component.RoamerKind
	interval time.Duration
	due      time.Duration // Remaining until next spawn
}

// Scheduler spawns one enemy per enemy interval and one cat per cat interval
// Both fire on the first update, then repeat; a long frame fires every
// interval it covered
type Scheduler struct {
	spawner Spawner
	clock   engine.SimulationClock
	timers  []timer
	stopped bool
}

func NewScheduler(spawner Spawner, enemyInterval, catInterval time.Duration) *Scheduler {
	return &Scheduler{
		spawner: spawner,
		timers: []timer{
			{kind: component.KindEnemy, interval: enemyInterval},
			{kind: component.KindCat, interval: catInterval},
		},
	}
}

// Update advances the timers to now and returns how many roamers spawned
// Once the spawner refuses a roamer the scheduler stops for good
func (s *Scheduler) Update(now time.Duration) int {
	dt := s.clock.Tick(now)
	if s.stopped {
		return 0
	}

	spawned := 0
	for i := range s.timers {
		t := &s.timers[i]
		if t.interval <= 0 {
			continue
		}
		t.due -= dt
		for t.due <= 0 {
			if _, ok := s.spawner.SpawnRoamer(t.kind); !ok {
				s.stopped = true
				log.Printf("spawn: stopped after refused %s", t.kind)
				return spawned
			}
			spawned++
			t.due += t.interval
		}
	}
	return spawned
}

// Stopped reports whether the spawner has refused a roamer
func (s *Scheduler) Stopped() bool {
	return s.stopped
}
