package status

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/events"
)

// Metric keys
const (
	KeyCatsCaptured = "cats.captured"
	KeyCatsExpired  = "cats.expired"
	KeyEnemyHits    = "enemy.hits"
	KeyReleased     = "train.released"
	KeyBestChain    = "train.best"
	KeyRoundsWon    = "rounds.won"
	KeyRoundsLost   = "rounds.lost"
	KeyFrameRate    = "frame.fps"
)

// Session tallies simulation cues across rounds
type Session struct {
	reg *Registry

	captured   *atomic.Int64
	expired    *atomic.Int64
	hits       *atomic.Int64
	released   *atomic.Int64
	bestChain  *atomic.Int64
	roundsWon  *atomic.Int64
	roundsLost *atomic.Int64
	fps        *AtomicFloat
}

func NewSession(reg *Registry) *Session {
	return &Session{
		reg:        reg,
		captured:   reg.Ints.Get(KeyCatsCaptured),
		expired:    reg.Ints.Get(KeyCatsExpired),
		hits:       reg.Ints.Get(KeyEnemyHits),
		released:   reg.Ints.Get(KeyReleased),
		bestChain:  reg.Ints.Get(KeyBestChain),
		roundsWon:  reg.Ints.Get(KeyRoundsWon),
		roundsLost: reg.Ints.Get(KeyRoundsLost),
		fps:        reg.Floats.Get(KeyFrameRate),
	}
}

func (s *Session) Registry() *Registry {
	return s.reg
}

// Observe folds one cue into the counters
func (s *Session) Observe(ev events.GameEvent) {
	switch ev.Type {
	case events.EventCatCaptured:
		s.captured.Add(1)
		if p, ok := ev.Payload.(*events.CatCapturedPayload); ok {
			StoreMax(s.bestChain, int64(p.ChainLength))
		}
	case events.EventCatExpired:
		if p, ok := ev.Payload.(*events.RoamerPayload); ok && p.Kind == component.KindCat {
			s.expired.Add(1)
		}
	case events.EventEnemyHit:
		s.hits.Add(1)
	case events.EventFollowersReleased:
		if p, ok := ev.Payload.(*events.FollowersReleasedPayload); ok {
			s.released.Add(int64(len(p.IDs)))
		}
	case events.EventRoundEnded:
		p, ok := ev.Payload.(*events.RoundEndedPayload)
		if !ok {
			return
		}
		if p.Won {
			s.roundsWon.Add(1)
		} else {
			s.roundsLost.Add(1)
		}
	}
}

// EventTypes lists the cues Observe counts
func (s *Session) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCatCaptured,
		events.EventCatExpired,
		events.EventEnemyHit,
		events.EventFollowersReleased,
		events.EventRoundEnded,
	}
}

// FrameTook records one presentation frame duration into a smoothed rate
func (s *Session) FrameTook(d time.Duration) {
	if d <= 0 {
		return
	}
	s.fps.Smooth(float64(time.Second)/float64(d), 0.1)
}

func (s *Session) BestChain() int {
	return int(s.bestChain.Load())
}

func (s *Session) Rounds() (won, lost int) {
	return int(s.roundsWon.Load()), int(s.roundsLost.Load())
}

// Summary is the one-line scoreboard shown between rounds
func (s *Session) Summary() string {
	won, lost := s.Rounds()
	return fmt.Sprintf("Best chain %d   Won %d   Lost %d   Cats caught %d",
		s.BestChain(), won, lost, s.captured.Load())
}

// Log writes every metric in key order
func (s *Session) Log() {
	s.reg.Ints.Each(func(key string, v *atomic.Int64) {
		log.Printf("status: %s=%d", key, v.Load())
	})
	s.reg.Floats.Each(func(key string, v *AtomicFloat) {
		log.Printf("status: %s=%.1f", key, v.Get())
	})
}
