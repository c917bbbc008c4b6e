package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/events"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// HitRules configures contact handling
type HitRules struct {
	EnemyInset      float64
	Invincible      time.Duration
	Blinks          int
	LostPerHit      int
	ReleaseDuration time.Duration
	ReleaseDistance float64
}

// CollisionSystem resolves zombie contact with roamers and owns the
// vulnerable/invincible state machine
type CollisionSystem struct {
	rules HitRules

	cats    []int
	enemies []int
}

func NewCollisionSystem(rules HitRules) *CollisionSystem {
	return &CollisionSystem{rules: rules}
}

func (s *CollisionSystem) Priority() int {
	return 70
}

func (s *CollisionSystem) Update(w *World, dt time.Duration) {
	a := &w.Actor

	if a.State == component.StateInvincible {
		a.InvincibleElapsed += dt
		if a.InvincibleElapsed < s.rules.Invincible {
			a.Hidden = BlinkHidden(a.InvincibleElapsed, s.rules.Invincible, s.rules.Blinks)
			return
		}
		a.State = component.StateVulnerable
		a.InvincibleElapsed = 0
		a.Hidden = false
	}

	box := a.Bounds()
	s.cats = s.cats[:0]
	s.enemies = s.enemies[:0]
	for i := range w.Roamers {
		r := &w.Roamers[i]
		switch r.Kind {
		case component.KindCat:
			if vmath.BoxesIntersect(box, r.Bounds()) {
				s.cats = append(s.cats, i)
			}
		case component.KindEnemy:
			if vmath.InsetIntersects(box, r.Bounds(), s.rules.EnemyInset) {
				s.enemies = append(s.enemies, i)
			}
		}
	}
	if len(s.cats) == 0 && len(s.enemies) == 0 {
		return
	}

	for _, i := range s.cats {
		f := component.FollowerFromRoamer(&w.Roamers[i])
		w.Followers = append(w.Followers, f)
		w.Round.ChainLength = len(w.Followers)
		w.emit(events.EventCatCaptured, &events.CatCapturedPayload{
			ID:          f.ID,
			Position:    f.Position,
			ChainLength: w.Round.ChainLength,
		})
	}

	// Any number of enemies touching in one tick counts as a single hit
	if len(s.enemies) > 0 {
		ids := make([]component.EntityID, len(s.enemies))
		for j, i := range s.enemies {
			ids[j] = w.Roamers[i].ID
		}
		s.hit(w, ids)
	}

	s.removeContacts(w)
}

func (s *CollisionSystem) hit(w *World, enemies []component.EntityID) {
	a := &w.Actor
	a.State = component.StateInvincible
	a.InvincibleElapsed = 0
	a.Hidden = false
	w.Round.Lives--

	w.emit(events.EventEnemyHit, &events.EnemyHitPayload{
		Enemies:        enemies,
		LivesRemaining: w.Round.Lives,
	})

	n := min(s.rules.LostPerHit, len(w.Followers))
	if n <= 0 {
		return
	}
	tail := len(w.Followers) - n
	ids := make([]component.EntityID, 0, n)
	for i := len(w.Followers) - 1; i >= tail; i-- {
		f := &w.Followers[i]
		offset := vmath.FromAngle(w.Rng.Float64()*2*math.Pi, s.rules.ReleaseDistance)
		w.Released = append(w.Released, component.ReleaseFollower(f, offset, s.rules.ReleaseDuration))
		ids = append(ids, f.ID)
	}
	clearTail(w.Followers, tail)
	w.Followers = w.Followers[:tail]
	w.Round.ChainLength = len(w.Followers)

	w.emit(events.EventFollowersReleased, &events.FollowersReleasedPayload{
		IDs:         ids,
		ChainLength: w.Round.ChainLength,
	})
}

// removeContacts drops every roamer hit this tick, preserving order
func (s *CollisionSystem) removeContacts(w *World) {
	hit := make(map[int]struct{}, len(s.cats)+len(s.enemies))
	for _, i := range s.cats {
		hit[i] = struct{}{}
	}
	for _, i := range s.enemies {
		hit[i] = struct{}{}
	}

	kept := w.Roamers[:0]
	for i := range w.Roamers {
		if _, ok := hit[i]; ok {
			continue
		}
		kept = append(kept, w.Roamers[i])
	}
	clearTail(w.Roamers, len(kept))
	w.Roamers = kept
}

// BlinkHidden reports whether the zombie is hidden elapsed into an
// invincibility window split into blinks equal slices
// Each slice shows the zombie for its first half and hides it for the second
func BlinkHidden(elapsed, window time.Duration, blinks int) bool {
	if blinks < 1 || window <= 0 || elapsed <= 0 {
		return false
	}
	slice := window.Seconds() / float64(blinks)
	remainder := math.Mod(elapsed.Seconds(), slice)
	return remainder > slice/2
}
