package main

import (
	"flag"
	"io"
	"time"

	"github.com/lixenwraith/snake/config"
)

// cliFlags are the command-line options, applied over file and environment settings
type cliFlags struct {
	configPath  string
	grid        int
	tick        time.Duration
	avoidSnake  bool
	seed        uint64
	mute        bool
	debug       bool
	printConfig bool

	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.configPath, "config", "snake.toml", "Path to TOML config file (missing file uses defaults)")
	fs.IntVar(&f.grid, "grid", 0, "Board size in cells per side")
	fs.DurationVar(&f.tick, "tick", 0, "Snake movement interval, e.g. 100ms")
	fs.BoolVar(&f.avoidSnake, "avoid-snake", false, "Never place food on the snake")
	fs.Uint64Var(&f.seed, "seed", 0, "Food placement seed, 0 seeds from the clock")
	fs.BoolVar(&f.mute, "mute", false, "Disable sound")
	fs.BoolVar(&f.debug, "debug", false, "Write debug log to "+logDir+"/"+logFileName)
	fs.BoolVar(&f.printConfig, "print-config", false, "Print the effective config as TOML and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overrides cfg with the flags given on the command line, unset flags leave cfg alone
func (f *cliFlags) apply(cfg *config.Config) {
	if f.set["grid"] {
		cfg.Game.GridSize = f.grid
	}
	if f.set["tick"] {
		cfg.Game.Tick = f.tick
	}
	if f.set["avoid-snake"] {
		cfg.Game.FoodAvoidsSnake = f.avoidSnake
	}
	if f.set["seed"] {
		cfg.Game.Seed = f.seed
	}
	if f.set["mute"] && f.mute {
		cfg.Audio.Enabled = false
	}
	if f.set["debug"] {
		cfg.Log.Debug = f.debug
	}
}

// loadConfig resolves settings from file, environment and flags, in that order, then validates
func loadConfig(f *cliFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
