// Package config loads game settings from a TOML file, SNAKE_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/toml"
)

// ErrInvalid marks a configuration value outside its accepted range
var ErrInvalid = errors.New("invalid config")

// Config is the full set of user settings
type Config struct {
	Game   GameConfig          `toml:"game"`
	Render RenderConfig        `toml:"render"`
	Audio  AudioConfig         `toml:"audio"`
	Log    LogConfig           `toml:"log"`
	Keys   map[string][]string `toml:"keys"`
}

type GameConfig struct {
	GridSize        int           `toml:"grid_size"`
	Tick            time.Duration `toml:"tick"`
	FoodAvoidsSnake bool          `toml:"food_avoids_snake"`
	// Seed 0 seeds from the clock
	Seed uint64 `toml:"seed"`
	// RestartOnlyWhenOver ignores the new-game key while a game is running
	RestartOnlyWhenOver bool `toml:"restart_only_when_over"`
}

type RenderConfig struct {
	CellWidth int `toml:"cell_width"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Game: GameConfig{
			GridSize: constants.DefaultGridSize,
			Tick:     constants.GameUpdateInterval,
		},
		Render: RenderConfig{
			CellWidth: constants.DefaultCellWidth,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
		},
	}
}

// Load reads path over the defaults
// A missing file is not an error and yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from SNAKE_* environment variables
// Values that fail to parse are reported, unset variables are skipped
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SNAKE_GRID_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SNAKE_GRID_SIZE: %w", err)
		}
		c.Game.GridSize = n
	}

	if v := os.Getenv("SNAKE_TICK"); v != "" {
		d, err := parseTick(v)
		if err != nil {
			return fmt.Errorf("SNAKE_TICK: %w", err)
		}
		c.Game.Tick = d
	}

	if v := os.Getenv("SNAKE_AUDIO_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAKE_AUDIO_ENABLED: %w", err)
		}
		c.Audio.Enabled = b
	}

	// Master volume as a fraction or a 0-100 percentage
	if v := os.Getenv("SNAKE_MASTER_VOLUME"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_MASTER_VOLUME: %w", err)
		}
		if f > 1 {
			f /= 100
		}
		c.Audio.MasterVolume = f
	}

	if v := os.Getenv("SNAKE_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAKE_DEBUG: %w", err)
		}
		c.Log.Debug = b
	}
	return nil
}

// parseTick accepts a duration string or bare milliseconds
func parseTick(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

// Validate checks every bounded setting
func (c *Config) Validate() error {
	if c.Game.GridSize < constants.MinGridSize || c.Game.GridSize > constants.MaxGridSize {
		return fmt.Errorf("%w: game.grid_size %d not in [%d, %d]",
			ErrInvalid, c.Game.GridSize, constants.MinGridSize, constants.MaxGridSize)
	}
	if c.Game.Tick < constants.MinGameUpdateInterval || c.Game.Tick > constants.MaxGameUpdateInterval {
		return fmt.Errorf("%w: game.tick %v not in [%v, %v]",
			ErrInvalid, c.Game.Tick, constants.MinGameUpdateInterval, constants.MaxGameUpdateInterval)
	}
	if c.Render.CellWidth < constants.MinCellWidth || c.Render.CellWidth > constants.MaxCellWidth {
		return fmt.Errorf("%w: render.cell_width %d not in [%d, %d]",
			ErrInvalid, c.Render.CellWidth, constants.MinCellWidth, constants.MaxCellWidth)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume %v not in [0, 1]", ErrInvalid, c.Audio.MasterVolume)
	}
	return nil
}

// Marshal encodes c as TOML that Load accepts
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
