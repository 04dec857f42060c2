package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/network"
	"github.com/lixenwraith/snake/render"
)

var (
	speedFlag    = flag.Int("speed", int(constants.GameUpdateInterval/time.Millisecond), "Tick interval in milliseconds")
	pickupsFlag  = flag.Int("pickups", constants.PickupCount, "Number of pickups on the field")
	cellFlag     = flag.Int("cell", constants.CellSize, "Cell size in field units")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+constants.LogDir+"/"+constants.LogFileName)
	muteFlag     = flag.Bool("mute", false, "Disable sound")
	spectateFlag = flag.String("spectate", "", "Serve a websocket spectator feed on this address, e.g. :8080")
)

const inputBuffer = 8

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	session := uuid.New()
	log.Printf("session %s: seed %d, cell %d, pickups %d, tick %v",
		session, cfg.Seed, cfg.CellSize, cfg.PickupCount, cfg.TickInterval)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()
	screen.Clear()

	err = run(screen, cfg, session)
	screen.Fini()

	if err != nil {
		log.Printf("session %s ended with error: %v", session, err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	log.Printf("session %s ended", session)
}

// buildConfig maps flags onto the default tuning
func buildConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	cfg.TickInterval = time.Duration(*speedFlag) * time.Millisecond
	cfg.PickupCount = *pickupsFlag
	cfg.CellSize = *cellFlag
	cfg.InitialDirection = engine.Direction{X: *cellFlag}
	cfg.Seed = *seedFlag
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, cfg.Validate()
}

// run wires the pipeline to the screen and blocks until the player quits or rendering fails
func run(screen tcell.Screen, cfg engine.Config, session uuid.UUID) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	terminal := render.NewTerminalRenderer(screen, cfg.CellSize)
	renderers := render.Fanout{terminal}

	if !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio unavailable: %v", err)
		} else {
			defer sm.Cleanup()
			renderers = append(renderers, audio.NewChimeRenderer(sm))
		}
	}

	var hub *network.Hub
	spectate := network.DefaultConfig(*spectateFlag)
	if spectate.Enabled() {
		hub = network.NewHub(spectate, session, terminal.Field)
		srv, err := network.Listen(spectate, hub)
		if err != nil {
			return err
		}
		srv.Serve(ctx)
		renderers = append(renderers, hub)
	}

	game := engine.NewGame(cfg, terminal.Field(), engine.NewSeededSource(cfg.Seed))
	mailbox := engine.NewSnapshotMailbox()
	handler := input.NewHandler(input.DefaultKeyTable(), inputBuffer)

	clock := engine.NewClock(cfg.TickInterval, engine.NewMonotonicTimeProvider())
	scheduler := engine.NewClockScheduler(game, clock.Start(ctx), handler.Keys(), terminal.Field, mailbox)
	orchestrator := render.NewOrchestrator(mailbox, renderers)

	schedErr := make(chan error, 1)
	renderErr := make(chan error, 1)
	core.Go(func() { schedErr <- scheduler.Run(ctx) })
	core.Go(func() { renderErr <- orchestrator.Run(ctx) })

	events := make(chan tcell.Event, inputBuffer)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	finished := false
	for {
		select {
		case err := <-schedErr:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("scheduler: %w", err)
			}

		case err := <-renderErr:
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				log.Printf("fatal: %v", err)
				return err
			}
			// Game over is on screen; the next key returns to the shell
			finished = true
			log.Printf("session %s: %d ticks, %d snapshots dropped, %d ticks dropped",
				session, scheduler.TickCount(), mailbox.Dropped(), clock.Dropped())
			if hub != nil {
				log.Printf("session %s: %d spectators, %d spectator frames dropped", session, hub.Subscribers(), hub.Dropped())
			}

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if finished {
					return nil
				}
				if !handler.HandleEvent(ev) {
					log.Printf("session %s: quit by player", session)
					return nil
				}
			}
		}
	}
}
