package engine

import (
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/component"
)

// Snapshot is a detached copy of everything a renderer or audio handler reads
// Mutating it never affects the simulation
type Snapshot struct {
	Frame int64
	Time  time.Duration

	Actor     component.Actor
	Roamers   []component.Roamer
	Followers []component.Follower
	Released  []component.Released
	Round     component.RoundState

	Camera component.Camera
	World  r2.Rect
	Tiles  []component.BackgroundTile
}

// Snapshot copies the current frame's state
func (s *Simulation) Snapshot() *Snapshot {
	return &Snapshot{
		Frame:     s.frame,
		Time:      s.clock.Now(),
		Actor:     s.world.Actor,
		Roamers:   s.Roamers(),
		Followers: s.Followers(),
		Released:  s.Released(),
		Round:     s.world.Round,
		Camera:    s.world.Camera,
		World:     s.world.Bounds,
		Tiles:     s.Backgrounds(),
	}
}

// CountKind returns how many live roamers are of kind
func (sn *Snapshot) CountKind(kind component.RoamerKind) int {
	n := 0
	for i := range sn.Roamers {
		if sn.Roamers[i].Kind == kind {
			n++
		}
	}
	return n
}
