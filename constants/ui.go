package constants

// Board Layout Constants
const (
	// DefaultCellWidth is the number of terminal columns per board cell
	// Terminal cells are roughly twice as tall as wide, 2 columns approximates a square
	DefaultCellWidth = 2

	// MinCellWidth and MaxCellWidth bound the configurable cell width
	MinCellWidth = 1
	MaxCellWidth = 3

	// BorderSize is the thickness of the board frame on each side
	BorderSize = 1

	// StatusLineHeight is the number of rows reserved above the board
	StatusLineHeight = 1
)

// Board Glyphs
const (
	SnakeHeadChar = '█'
	SnakeBodyChar = '▓'
	FoodChar      = '●'
	EmptyChar     = ' '

	BorderHorizontal  = '─'
	BorderVertical    = '│'
	BorderTopLeft     = '┌'
	BorderTopRight    = '┐'
	BorderBottomLeft  = '└'
	BorderBottomRight = '┘'
)

// Overlay Text
const (
	TextGameOver     = "Game Over"
	TextFinalScore   = "Final Score: %d"
	TextGameOverHelp = "n: new game  q: quit"
	TextPaused       = "Paused"
	TextTooSmall     = "terminal too small"
	TextScoreLine    = "Score: %d  Best: %d"
	TextGameCount    = "Game %d"
)
