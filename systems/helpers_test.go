package systems

import (
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/core"
	"github.com/lixenwraith/zombie-conga/events"
	"github.com/lixenwraith/zombie-conga/vmath"
)

type recordedEvent struct {
	Type    events.EventType
	Payload any
}

type recorder struct {
	events []recordedEvent
}

func (r *recorder) Emit(t events.EventType, payload any) {
	r.events = append(r.events, recordedEvent{Type: t, Payload: payload})
}

func (r *recorder) count(t events.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) types() []events.EventType {
	out := make([]events.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

var testPlayable = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 1000, Y: 500})

func newTestWorld(lives int) (*World, *recorder) {
	rec := &recorder{}
	w := NewWorld(testPlayable, vmath.V2(400, 250), vmath.V2(150, 100), lives, 2, vmath.NewFastRand(42), rec)
	return w, rec
}

func testRules() HitRules {
	return HitRules{
		EnemyInset:      20,
		Invincible:      3 * time.Second,
		Blinks:          10,
		LostPerHit:      2,
		ReleaseDuration: time.Second,
		ReleaseDistance: 100,
	}
}

func addCat(w *World, pos vmath.Vec2) component.EntityID {
	id := w.IDs.Next()
	w.Roamers = append(w.Roamers, component.Roamer{
		ID:       id,
		Kind:     component.KindCat,
		Position: pos,
		Size:     vmath.V2(80, 80),
		Move:     core.NewMove(pos, vmath.Vec2{}, 11*time.Second),
		Scale:    1,
	})
	return id
}

func addEnemy(w *World, pos vmath.Vec2) component.EntityID {
	id := w.IDs.Next()
	w.Roamers = append(w.Roamers, component.Roamer{
		ID:       id,
		Kind:     component.KindEnemy,
		Position: pos,
		Size:     vmath.V2(150, 150),
		Move:     core.NewMove(pos, vmath.V2(-1000, 0), 2*time.Second),
		Scale:    1,
	})
	return id
}

func addFollowers(w *World, n int) []component.EntityID {
	ids := make([]component.EntityID, n)
	for i := range ids {
		ids[i] = w.IDs.Next()
		w.Followers = append(w.Followers, component.Follower{
			ID:       ids[i],
			Position: vmath.V2(300-float64(i)*50, 250),
			Size:     vmath.V2(80, 80),
		})
	}
	w.Round.ChainLength = len(w.Followers)
	return ids
}
