package systems

import (
	"time"

	"github.com/lixenwraith/zombie-conga/core"
)

// TrainSystem moves each follower toward the entity ahead of it
// The first follower chases the zombie, each later one chases its predecessor
type TrainSystem struct {
	speed    float64
	duration time.Duration
}

func NewTrainSystem(speed float64, duration time.Duration) *TrainSystem {
	return &TrainSystem{speed: speed, duration: duration}
}

func (s *TrainSystem) Priority() int {
	return 50
}

func (s *TrainSystem) Update(w *World, dt time.Duration) {
	reach := s.speed * s.duration.Seconds()
	leader := w.Actor.Position

	for i := range w.Followers {
		f := &w.Followers[i]
		if f.Active {
			pos, done := f.Move.Step(dt)
			f.Position = pos
			if done {
				f.Active = false
			}
		}

		// Idle followers start a fixed-length slide toward the leader's
		// position as it is now; one already on top of it stays idle
		if !f.Active {
			if dir, err := leader.Sub(f.Position).Normalize(); err == nil {
				f.Move = core.NewMove(f.Position, dir.Scale(reach), s.duration)
				f.Active = true
			}
		}

		// Leader is sampled after this follower moved
		leader = f.Position
	}
}
