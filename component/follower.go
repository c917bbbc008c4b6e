package component

import (
	"time"

	"github.com/lixenwraith/zombie-conga/core"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// Follower is a captured cat in the conga train
type Follower struct {
	ID       EntityID
	Position vmath.Vec2
	Size     vmath.Vec2
	Move     core.Move
	// Active is true while a slide is in progress; no re-target until it completes
	Active bool
}

// Released is a follower detached by an enemy hit, flung out and shrunk away
type Released struct {
	ID       EntityID
	Position vmath.Vec2
	Size     vmath.Vec2
	Move     core.Move
	Scale    float64
	Rotation float64
}

// ReleaseProgress returns the fling completion in [0, 1]
func (r *Released) ReleaseProgress() float64 {
	return r.Move.Progress()
}

// FollowerFromRoamer converts a captured cat, dropping its scripted motion
func FollowerFromRoamer(r *Roamer) Follower {
	return Follower{
		ID:       r.ID,
		Position: r.Position,
		Size:     r.Size,
	}
}

// ReleaseFollower starts the fling animation for a detached follower
func ReleaseFollower(f *Follower, offset vmath.Vec2, d time.Duration) Released {
	return Released{
		ID:       f.ID,
		Position: f.Position,
		Size:     f.Size,
		Move:     core.NewMove(f.Position, offset, d),
		Scale:    1,
	}
}
