package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-conga/audio"
	"github.com/lixenwraith/zombie-conga/config"
	"github.com/lixenwraith/zombie-conga/engine"
	"github.com/lixenwraith/zombie-conga/events"
	"github.com/lixenwraith/zombie-conga/render"
	"github.com/lixenwraith/zombie-conga/spawn"
	"github.com/lixenwraith/zombie-conga/status"
)

type scene uint8

const (
	sceneMenu scene = iota
	scenePlaying
	sceneGameOver
)

// gameOverHold is how long the result banner stays up before the next round
const gameOverHold = 3 * time.Second

// app owns the terminal-facing state around one simulation at a time
type app struct {
	screen   tcell.Screen
	cfg      *config.Config
	clock    *engine.PausableClock
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	stats    *status.Session
	lanes    string

	sim    *engine.Simulation
	sched  *spawn.Scheduler
	router *events.Router[*engine.Snapshot]

	scene      scene
	round      uint64
	roundStart time.Duration
	endedAt    time.Duration
	won        bool
	lastTick   time.Duration
}

func newApp(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager, provider engine.TimeProvider, lanes string) *app {
	return &app{
		screen:   screen,
		cfg:      cfg,
		clock:    engine.NewPausableClock(provider),
		renderer: render.NewTerminalRenderer(screen, cfg.Round.WinChainLength),
		sound:    sound,
		stats:    status.NewSession(status.NewRegistry()),
		lanes:    lanes,
	}
}

// startRound builds a fresh simulation with its own queue, router and scheduler
// Each round offsets the base seed so consecutive rounds differ
func (a *app) startRound() error {
	roundCfg := *a.cfg
	roundCfg.Seed = a.cfg.Seed + a.round
	a.round++

	q := events.NewEventQueue()
	opts := []engine.Option{engine.WithEventQueue(q)}
	if a.lanes == "noise" {
		opts = append(opts, engine.WithPathPlanner(
			spawn.NewNoisePlanner(roundCfg.Seed, roundCfg.Enemy.CrossDuration.Duration, roundCfg.Cat.Lifetime())))
	}
	sim, err := engine.NewSimulation(&roundCfg, opts...)
	if err != nil {
		return err
	}

	router := events.NewRouter[*engine.Snapshot](q)
	router.Register(a.sound)
	router.RegisterFunc(func(_ *engine.Snapshot, ev events.GameEvent) {
		a.stats.Observe(ev)
	}, a.stats.EventTypes()...)
	router.RegisterFunc(func(snap *engine.Snapshot, ev events.GameEvent) {
		log.Printf("app: round %d ended at frame %d, chain %d, dropped cues %d",
			a.round, ev.Frame, snap.Round.ChainLength, q.Dropped())
	}, events.EventRoundEnded)
	sim.OnRoundEnded(func(won bool) {
		a.won = won
		a.endedAt = a.clock.Elapsed()
		a.scene = sceneGameOver
	})

	a.sim = sim
	a.router = router
	a.sched = spawn.NewScheduler(sim, roundCfg.Enemy.SpawnInterval.Duration, roundCfg.Cat.SpawnInterval.Duration)
	a.roundStart = a.clock.Elapsed()
	a.scene = scenePlaying
	return nil
}

// handleEvent applies one terminal event; false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch a.scene {
		case sceneMenu:
			a.begin()
		case scenePlaying:
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
				paused := a.clock.Toggle()
				log.Printf("app: paused=%v", paused)
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		switch a.scene {
		case sceneMenu:
			a.begin()
		case scenePlaying:
			if a.clock.IsPaused() {
				return true
			}
			x, y := ev.Position()
			vp := a.renderer.Viewport(a.sim.WorldRect())
			if y < vp.Rows {
				a.sim.SetTarget(vp.ToWorld(x, y))
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) begin() {
	if err := a.startRound(); err != nil {
		log.Printf("app: start round: %v", err)
	}
}

// tick advances and draws one presentation frame
func (a *app) tick() {
	wall := a.clock.Elapsed()
	a.stats.FrameTook(wall - a.lastTick)
	a.lastTick = wall

	switch a.scene {
	case sceneMenu:
		a.renderer.RenderMenu(a.stats.Summary())

	case scenePlaying:
		if !a.clock.IsPaused() {
			now := a.clock.Elapsed() - a.roundStart
			a.sched.Update(now)
			a.sim.Advance(now)
		}
		snap := a.sim.Snapshot()
		a.router.DispatchAll(snap)
		a.renderer.RenderFrame(snap)

	case sceneGameOver:
		// Drain cues queued by the final frame (jingle, music stop)
		a.router.DispatchAll(a.sim.Snapshot())
		if a.clock.Elapsed()-a.endedAt >= gameOverHold {
			a.begin()
			return
		}
		a.renderer.RenderGameOver(a.won, a.stats.Summary())
	}
	a.screen.Show()
}
