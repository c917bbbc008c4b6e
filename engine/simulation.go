package engine

import (
	"log"
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/config"
	"github.com/lixenwraith/zombie-conga/core"
	"github.com/lixenwraith/zombie-conga/events"
	"github.com/lixenwraith/zombie-conga/parameter"
	"github.com/lixenwraith/zombie-conga/physics"
	"github.com/lixenwraith/zombie-conga/systems"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// RoamerHandle identifies a spawned cat or enemy
type RoamerHandle struct {
	ID   component.EntityID
	Kind component.RoamerKind
}

// Option customizes a Simulation at construction
type Option func(*Simulation)

// WithEventQueue routes cues to q instead of a private queue
func WithEventQueue(q *events.EventQueue) Option {
	return func(s *Simulation) { s.queue = q }
}

// WithPathPlanner replaces the default spawn placement
func WithPathPlanner(p PathPlanner) Option {
	return func(s *Simulation) { s.planner = p }
}

// Simulation owns every entity of one round and advances it frame by frame
// All methods must be called from one goroutine; only the event queue is
// safe to drain elsewhere
type Simulation struct {
	cfg      *config.Config
	world    *systems.World
	pipeline *systems.Pipeline
	clock    SimulationClock
	queue    *events.EventQueue
	planner  PathPlanner
	frame    int64

	onRoundEnded func(won bool)
	notified     bool
}

// NewSimulation validates cfg and builds a fresh round: the zombie at its
// start position, no roamers, an empty train and full lives
func NewSimulation(cfg *config.Config, opts ...Option) (*Simulation, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	playable, err := vmath.PlayableArea(cfg.World.Width, cfg.World.Height, cfg.World.MaxAspectRatio)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	s := &Simulation{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.queue == nil {
		s.queue = events.NewEventQueue()
	}
	if s.planner == nil {
		s.planner = NewRandomPlanner(rng, cfg.Enemy.CrossDuration.Duration, cfg.Cat.Lifetime())
	}

	s.world = systems.NewWorld(
		playable,
		vmath.V2(cfg.Zombie.StartX, cfg.Zombie.StartY),
		vmath.V2(cfg.Zombie.Width, cfg.Zombie.Height),
		cfg.Round.Lives,
		cfg.World.BackgroundTiles,
		rng,
		simEmitter{s},
	)
	s.pipeline = systems.NewPipeline(
		systems.NewScrollSystem(cfg.World.Scrolling, cfg.World.CameraSpeed),
		systems.NewMovementSystem(cfg.Zombie.MoveSpeed, cfg.Zombie.RotateSpeed),
		systems.NewBoundsSystem(),
		systems.NewRoamerSystem(systems.CatTiming{
			Appear:    cfg.Cat.AppearDuration.Duration,
			Wiggle:    cfg.Cat.WiggleDuration.Duration,
			Disappear: cfg.Cat.DisappearDuration.Duration,
		}),
		systems.NewTrainSystem(cfg.Train.MoveSpeed, cfg.Train.MoveDuration.Duration),
		systems.NewReleaseSystem(parameter.ReleaseSpin),
		systems.NewCollisionSystem(systems.HitRules{
			EnemyInset:      cfg.Enemy.HitInset,
			Invincible:      cfg.Zombie.InvincibleDuration.Duration,
			Blinks:          cfg.Zombie.Blinks,
			LostPerHit:      cfg.Train.LostPerHit,
			ReleaseDuration: cfg.Train.ReleaseDuration.Duration,
			ReleaseDistance: cfg.Train.ReleaseDistance,
		}),
		systems.NewOutcomeSystem(cfg.Round.WinChainLength),
	)

	log.Printf("simulation: new round lives=%d win=%d seed=%d scrolling=%v",
		cfg.Round.Lives, cfg.Round.WinChainLength, seed, cfg.World.Scrolling)
	s.emit(events.EventMusicStart, nil)
	return s, nil
}

// Advance runs one frame at monotonic timestamp now
// The first call and any non-increasing timestamp run with dt = 0
func (s *Simulation) Advance(now time.Duration) {
	dt := s.clock.Tick(now)
	if s.world.Round.Ended() {
		return
	}
	s.frame++
	s.pipeline.Run(s.world, dt)

	if s.world.Round.Ended() && !s.notified {
		s.notified = true
		won := s.world.Round.Outcome == component.OutcomeWon
		log.Printf("simulation: round %s at frame %d lives=%d chain=%d",
			s.world.Round.Outcome, s.frame, s.world.Round.Lives, s.world.Round.ChainLength)
		if s.onRoundEnded != nil {
			s.onRoundEnded(won)
		}
	}
}

// SetTarget points the zombie at p with full speed
// A target at the zombie's own position stops it in place
func (s *Simulation) SetTarget(p vmath.Vec2) {
	if s.world.Round.Ended() {
		return
	}
	a := &s.world.Actor
	a.Target = p
	a.HasTarget = true

	vel, err := physics.SteerToward(a.Position, p, s.cfg.Zombie.MoveSpeed)
	if err != nil {
		a.Velocity = vmath.Vec2{}
		if a.Pursuing {
			a.Pursuing = false
			s.emit(events.EventPursuitStop, nil)
		}
		return
	}
	physics.SetImpulse(&a.Kinetic, vel)
	if !a.Pursuing {
		a.Pursuing = true
		s.emit(events.EventPursuitStart, nil)
	}
}

// SpawnRoamer places a new roamer using the planner
// Returns false once the round has ended
func (s *Simulation) SpawnRoamer(kind component.RoamerKind) (RoamerHandle, bool) {
	if s.world.Round.Ended() {
		return RoamerHandle{}, false
	}
	return s.SpawnRoamerAlong(kind, s.planner.Plan(kind, s.world.Bounds, s.roamerSize(kind)))
}

// SpawnRoamerAlong places a new roamer on an explicit path
// Cats start at scale zero and grow in; enemies are full size immediately
func (s *Simulation) SpawnRoamerAlong(kind component.RoamerKind, path Path) (RoamerHandle, bool) {
	if s.world.Round.Ended() {
		return RoamerHandle{}, false
	}
	r := component.Roamer{
		ID:       s.world.IDs.Next(),
		Kind:     kind,
		Position: path.From,
		Size:     s.roamerSize(kind),
		Move:     core.NewMove(path.From, path.To.Sub(path.From), path.Duration),
		Scale:    1,
	}
	if kind == component.KindCat {
		r.Scale = 0
	}
	s.world.Roamers = append(s.world.Roamers, r)
	return RoamerHandle{ID: r.ID, Kind: kind}, true
}

// OnRoundEnded registers fn to run once, right after the outcome fires
func (s *Simulation) OnRoundEnded(fn func(won bool)) {
	s.onRoundEnded = fn
}

// Events returns the cue queue; safe to drain from another goroutine
func (s *Simulation) Events() *events.EventQueue {
	return s.queue
}

func (s *Simulation) Config() *config.Config {
	return s.cfg
}

func (s *Simulation) Frame() int64 {
	return s.frame
}

// Now returns the timestamp of the last accepted frame
func (s *Simulation) Now() time.Duration {
	return s.clock.Now()
}

// LastDelta returns the dt of the most recent Advance
func (s *Simulation) LastDelta() time.Duration {
	return s.clock.Delta()
}

func (s *Simulation) Actor() component.Actor {
	return s.world.Actor
}

func (s *Simulation) HitState() component.HitState {
	return s.world.Actor.State
}

func (s *Simulation) Round() component.RoundState {
	return s.world.Round
}

func (s *Simulation) Camera() component.Camera {
	return s.world.Camera
}

// WorldRect returns the playable area translated by the camera
func (s *Simulation) WorldRect() r2.Rect {
	return s.world.Bounds
}

func (s *Simulation) Roamers() []component.Roamer {
	return append([]component.Roamer(nil), s.world.Roamers...)
}

// Roamer looks up a live roamer by handle
func (s *Simulation) Roamer(h RoamerHandle) (component.Roamer, bool) {
	i := s.world.FindRoamer(h.ID)
	if i < 0 {
		return component.Roamer{}, false
	}
	return s.world.Roamers[i], true
}

func (s *Simulation) Followers() []component.Follower {
	return append([]component.Follower(nil), s.world.Followers...)
}

func (s *Simulation) Released() []component.Released {
	return append([]component.Released(nil), s.world.Released...)
}

func (s *Simulation) Backgrounds() []component.BackgroundTile {
	return append([]component.BackgroundTile(nil), s.world.Tiles...)
}

func (s *Simulation) roamerSize(kind component.RoamerKind) vmath.Vec2 {
	if kind == component.KindEnemy {
		return vmath.V2(s.cfg.Enemy.Width, s.cfg.Enemy.Height)
	}
	return vmath.V2(s.cfg.Cat.Width, s.cfg.Cat.Height)
}

func (s *Simulation) emit(t events.EventType, payload any) {
	s.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     s.frame,
		Timestamp: s.clock.Now(),
	})
}

// simEmitter adapts the simulation's queue to the systems.Emitter contract
type simEmitter struct {
	s *Simulation
}

func (e simEmitter) Emit(t events.EventType, payload any) {
	e.s.emit(t, payload)
}
