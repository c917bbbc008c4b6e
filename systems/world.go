package systems

import (
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/events"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// System is one stage of the frame pipeline
// Stages run in ascending Priority order, once per Advance
type System interface {
	Priority() int
	Update(w *World, dt time.Duration)
}

// Emitter receives cues raised while a stage runs
// Implementations stamp frame and timestamp; stages only name the event
type Emitter interface {
	Emit(t events.EventType, payload any)
}

// World is the complete mutable state of one round
// Owned by a single simulation; never shared across goroutines
type World struct {
	Actor     component.Actor
	Roamers   []component.Roamer
	Followers []component.Follower
	Released  []component.Released
	Round     component.RoundState

	Camera component.Camera
	Tiles  []component.BackgroundTile

	// Playable is the gameplay band in camera-local coordinates
	Playable r2.Rect
	// Bounds is Playable translated by the camera, recomputed every frame
	Bounds r2.Rect

	IDs     component.EntityAllocator
	Rng     *vmath.FastRand
	Emitter Emitter
}

// NewWorld builds a world with the actor at start, tiles laid edge to edge
// across the playable width and the camera at the origin
func NewWorld(playable r2.Rect, start, actorSize vmath.Vec2, lives, tiles int, rng *vmath.FastRand, em Emitter) *World {
	w := &World{
		Playable: playable,
		Bounds:   playable,
		Rng:      rng,
		Emitter:  em,
		Round:    component.RoundState{Lives: lives},
	}
	if w.Emitter == nil {
		w.Emitter = discardEmitter{}
	}

	w.Actor = component.Actor{
		ID:   w.IDs.Next(),
		Size: actorSize,
	}
	w.Actor.Position = start

	width := playable.X.Length()
	w.Tiles = make([]component.BackgroundTile, tiles)
	for i := range w.Tiles {
		w.Tiles[i] = component.BackgroundTile{
			Index: i,
			X:     playable.X.Lo + float64(i)*width,
			Width: width,
		}
	}
	return w
}

func (w *World) emit(t events.EventType, payload any) {
	w.Emitter.Emit(t, payload)
}

// FindRoamer returns the index of the roamer with id, or -1
func (w *World) FindRoamer(id component.EntityID) int {
	for i := range w.Roamers {
		if w.Roamers[i].ID == id {
			return i
		}
	}
	return -1
}

type discardEmitter struct{}

func (discardEmitter) Emit(events.EventType, any) {}
