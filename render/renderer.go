// Package render draws the game onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/game"
)

// View is everything one frame shows
type View struct {
	State  *game.State
	Paused bool
	Best   int
	Games  int
}

// Renderer draws frames onto a screen
type Renderer struct {
	screen    tcell.Screen
	cellWidth int
	base      tcell.Style
}

// NewRenderer creates a renderer with cellWidth terminal columns per board cell
func NewRenderer(screen tcell.Screen, cellWidth int) *Renderer {
	if cellWidth < constants.MinCellWidth {
		cellWidth = constants.MinCellWidth
	}
	return &Renderer{
		screen:    screen,
		cellWidth: cellWidth,
		base:      tcell.StyleDefault.Background(RgbBackground),
	}
}

// Sync repaints the whole terminal, used after resize
func (r *Renderer) Sync() {
	r.screen.Sync()
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(v View) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()
	defer r.screen.Show()

	if v.State == nil {
		return
	}

	w, h := r.screen.Size()
	l, ok := ComputeLayout(w, h, v.State.GridSize(), r.cellWidth)
	if !ok {
		r.drawCentered(h/2, 0, w, constants.TextTooSmall, r.base.Foreground(RgbStatusText))
		return
	}

	r.drawStatus(l, v)
	r.drawBorder(l)
	r.drawFood(l, v.State.Food())
	r.drawSnake(l, v.State)

	switch {
	case v.State.Over():
		r.drawGameOver(l, v.State.Score(), w)
	case v.Paused:
		r.drawCentered(l.CenterRow(), 0, w, constants.TextPaused, r.base.Foreground(RgbPaused).Bold(true))
	}
}

func (r *Renderer) drawStatus(l Layout, v View) {
	score := fmt.Sprintf(constants.TextScoreLine, v.State.Score(), v.Best)
	r.drawText(l.OriginX, l.OriginY, score, r.base.Foreground(RgbStatusText))

	// Game counter is right-aligned and dropped when it would touch the score
	if v.Games > 0 {
		count := fmt.Sprintf(constants.TextGameCount, v.Games)
		x := l.OriginX + l.BoardWidth() - runewidth.StringWidth(count)
		if x > l.OriginX+runewidth.StringWidth(score) {
			r.drawText(x, l.OriginY, count, r.base.Foreground(RgbGameCount))
		}
	}
}

func (r *Renderer) drawBorder(l Layout) {
	style := r.base.Foreground(RgbBorder)
	left, right := l.OriginX, l.OriginX+l.BoardWidth()-1
	top, bottom := l.TopBorder(), l.TopBorder()+l.GridSize+1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, constants.BorderHorizontal, nil, style)
		r.screen.SetContent(x, bottom, constants.BorderHorizontal, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, constants.BorderVertical, nil, style)
		r.screen.SetContent(right, y, constants.BorderVertical, nil, style)
	}
	r.screen.SetContent(left, top, constants.BorderTopLeft, nil, style)
	r.screen.SetContent(right, top, constants.BorderTopRight, nil, style)
	r.screen.SetContent(left, bottom, constants.BorderBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, constants.BorderBottomRight, nil, style)
}

func (r *Renderer) drawFood(l Layout, food game.Cell) {
	x, y := l.CellOrigin(food)
	style := r.base.Foreground(RgbFood)
	r.screen.SetContent(x, y, constants.FoodChar, nil, style)
	for i := 1; i < l.CellWidth; i++ {
		r.screen.SetContent(x+i, y, constants.EmptyChar, nil, style)
	}
}

// drawSnake draws body first so the head wins on overlap
// A head that left the board is drawn over the frame, further cells are skipped
func (r *Renderer) drawSnake(l Layout, s *game.State) {
	snake := s.Snake()
	bodyStyle := r.base.Foreground(RgbSnakeBody)
	for _, c := range snake[1:] {
		r.fillCell(l, c, constants.SnakeBodyChar, bodyStyle)
	}

	headStyle := r.base.Foreground(RgbSnakeHead)
	if s.Over() {
		headStyle = r.base.Foreground(RgbSnakeDead)
	}
	r.fillCell(l, snake[0], constants.SnakeHeadChar, headStyle)
}

func (r *Renderer) fillCell(l Layout, c game.Cell, ch rune, style tcell.Style) {
	if c.X < -1 || c.Y < -1 || c.X > l.GridSize || c.Y > l.GridSize {
		return
	}
	x, y := l.CellOrigin(c)
	// Off-board cells are drawn on the frame only, never past it
	left, right := l.OriginX, l.OriginX+l.BoardWidth()-1
	for col := x; col < x+l.CellWidth; col++ {
		if col < left || col > right {
			continue
		}
		r.screen.SetContent(col, y, ch, nil, style)
	}
}

func (r *Renderer) drawGameOver(l Layout, score, w int) {
	row := l.CenterRow() - 1
	r.drawCentered(row, 0, w, constants.TextGameOver, r.base.Foreground(RgbGameOver).Bold(true))
	r.drawCentered(row+1, 0, w, fmt.Sprintf(constants.TextFinalScore, score), r.base.Foreground(RgbStatusText))
	r.drawCentered(row+2, 0, w, constants.TextGameOverHelp, r.base.Foreground(RgbHelpText))
}

// drawCentered writes text centered in columns [x0, x0+width), clipped to that span
func (r *Renderer) drawCentered(y, x0, width int, text string, style tcell.Style) {
	tw := runewidth.StringWidth(text)
	if tw > width {
		text = runewidth.Truncate(text, width, "")
		tw = runewidth.StringWidth(text)
	}
	r.drawText(x0+(width-tw)/2, y, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
