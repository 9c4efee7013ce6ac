package constants

import "time"

// Board Constants
const (
	// DefaultGridSize is the number of cells per side of the square board
	DefaultGridSize = 20

	// MinGridSize is the smallest board accepted from config or flags
	MinGridSize = 5

	// MaxGridSize is the largest board accepted from config or flags
	MaxGridSize = 100
)

// Game Loop Timing Constants
const (
	// GameUpdateInterval is the snake movement interval (clock tick)
	GameUpdateInterval = 100 * time.Millisecond

	// MinGameUpdateInterval bounds the configurable tick from below
	MinGameUpdateInterval = 10 * time.Millisecond

	// MaxGameUpdateInterval bounds the configurable tick from above
	MaxGameUpdateInterval = 2 * time.Second

	// EventBufferSize is the capacity of the terminal event channel
	EventBufferSize = 64
)
