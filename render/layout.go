package render

import (
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/game"
)

// Layout places a board of GridSize cells on a screen
// The status line sits directly above the top border
type Layout struct {
	OriginX   int // left border column
	OriginY   int // status line row
	GridSize  int
	CellWidth int
}

// BoardWidth is the frame width in columns, border included
func (l Layout) BoardWidth() int {
	return l.GridSize*l.CellWidth + 2*constants.BorderSize
}

// Height is the rows used by status line and framed board
func (l Layout) Height() int {
	return constants.StatusLineHeight + l.GridSize + 2*constants.BorderSize
}

// TopBorder is the row of the top frame edge
func (l Layout) TopBorder() int {
	return l.OriginY + constants.StatusLineHeight
}

// CellOrigin returns the screen position of the first column of c
// Cells one step outside the board land on the frame
func (l Layout) CellOrigin(c game.Cell) (x, y int) {
	x = l.OriginX + constants.BorderSize + c.X*l.CellWidth
	y = l.TopBorder() + constants.BorderSize + c.Y
	return x, y
}

// CenterRow is the board row overlays are centered on
func (l Layout) CenterRow() int {
	return l.TopBorder() + constants.BorderSize + l.GridSize/2
}

// ComputeLayout centers the board on a w x h screen
// ok is false when the screen cannot fit it
func ComputeLayout(w, h, gridSize, cellWidth int) (l Layout, ok bool) {
	l = Layout{GridSize: gridSize, CellWidth: cellWidth}
	bw, bh := l.BoardWidth(), l.Height()
	if w < bw || h < bh {
		return l, false
	}
	l.OriginX = (w - bw) / 2
	l.OriginY = (h - bh) / 2
	return l, true
}
