// Command snake is a terminal Snake game.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	if flags.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "snake: %v\n", err)
			return 1
		}
		os.Stdout.Write(data)
		return 0
	}

	keys, err := input.ApplyBindings(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	logger, logCloser, err := setupLogging(cfg.Log.Debug, logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: logging disabled: %v\n", err)
	}
	defer logCloser.Close()

	sound := newSoundManager(cfg, logger)
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: init terminal: %v\n", err)
		return 1
	}
	core.RegisterTerminal(screen)
	defer func() {
		core.RegisterTerminal(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, constants.EventBufferSize)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { pollEvents(screen, events, done) })

	session := engine.NewSession(engine.SessionConfig{
		GridSize:            cfg.Game.GridSize,
		Seed:                cfg.Game.Seed,
		AvoidSnake:          cfg.Game.FoodAvoidsSnake,
		RestartOnlyWhenOver: cfg.Game.RestartOnlyWhenOver,
	}, logger)
	session.RegisterEventHandler(soundCues(sound))

	scheduler := engine.NewClockScheduler(engine.NewPausableClock(), cfg.Game.Tick)
	renderer := render.NewRenderer(screen, cfg.Render.CellWidth)
	driver := engine.NewDriver(session, scheduler, keys, renderer, logger)

	logger.Info().
		Str("session", session.ID().String()).
		Int("grid", cfg.Game.GridSize).
		Dur("tick", cfg.Game.Tick).
		Bool("audio", sound.IsInitialized()).
		Msg("starting")

	if err := driver.Run(ctx, events); err != nil {
		logger.Error().Err(err).Msg("driver failed")
		return 1
	}

	logger.Info().Int("games", session.Games()).Int("best", session.Best()).Msg("exit")
	return 0
}

// newSoundManager opens the speaker; failure is logged and the game runs silent
func newSoundManager(cfg *config.Config, logger zerolog.Logger) *audio.SoundManager {
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = cfg.Audio.MasterVolume

	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	return sound
}

// soundCues plays the eat and game-over sounds on session events
func soundCues(sound *audio.SoundManager) engine.EventHandler {
	return engine.EventHandlerFunc(func(ev engine.Event) {
		switch ev.Type {
		case engine.EventFoodEaten:
			sound.PlayEat()
		case engine.EventGameOver:
			sound.PlayGameOver()
		}
	})
}

// pollEvents forwards terminal events until the screen is finalized or done is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
