package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-conga/audio"
	"github.com/lixenwraith/zombie-conga/config"
	"github.com/lixenwraith/zombie-conga/core"
	"github.com/lixenwraith/zombie-conga/engine"
	"github.com/lixenwraith/zombie-conga/parameter"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	envFlag    = flag.String("env", ".env", "dotenv file with ZOMBIE_CONGA_* overrides")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/zombie-conga.log")
	scrollFlag = flag.Bool("scroll", false, "Enable the scrolling camera")
	seedFlag   = flag.Uint64("seed", 0, "Spawn seed; 0 picks one from the clock")
	lanesFlag  = flag.String("lanes", "noise", "Enemy lane placement: noise, random")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *scrollFlag {
		cfg.World.Scrolling = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("main: seed=%d lanes=%s", cfg.Seed, *lanesFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal before reporting a crash
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.HandleCrash(recover())
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager(cfg.Audio.Music)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("main: audio unavailable: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}

	a := newApp(screen, cfg, sound, engine.NewMonotonicTimeProvider(), *lanesFlag)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				a.stats.Log()
				return
			}
		case <-frameTicker.C:
			a.tick()
		}
	}
}
