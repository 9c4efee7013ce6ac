package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 124, 153) // Muted slate
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbSnakeBody  = tcell.NewRGBColor(0, 170, 0)     // Normal green
	RgbSnakeDead  = tcell.NewRGBColor(180, 50, 50)   // Dark red, head after collision
	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameCount  = tcell.NewRGBColor(180, 180, 180) // Gray
	RgbGameOver   = tcell.NewRGBColor(255, 120, 120) // Bright red
	RgbPaused     = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbHelpText   = tcell.NewRGBColor(180, 180, 180) // Gray
)
