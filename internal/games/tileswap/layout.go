package tileswap

import (
	"github.com/vovakirdan/tui-swap/internal/config"
	"github.com/vovakirdan/tui-swap/internal/core"
	"github.com/vovakirdan/tui-swap/internal/puzzle"
)

const (
	hudHeight    = 3
	footerHeight = 3
	targetGap    = 4
	targetCellW  = 3
)

// layout places the grid on screen and maps pointer positions to tiles.
type layout struct {
	size   int
	cellW  int // including the left border
	cellH  int // including the top border
	grid   core.Rect
	target core.Rect // zero when the target hint does not fit
	fits   bool
}

func computeLayout(b Board, bc config.BoardConfig, screenW, screenH int) layout {
	l := layout{
		size:  b.Size,
		cellW: max(bc.CellWidth, 4),
		cellH: max(bc.CellHeight, 2),
	}
	gridW := l.size*l.cellW + 1
	gridH := l.size*l.cellH + 1

	l.fits = screenW >= gridW+2 && screenH >= hudHeight+gridH+footerHeight

	totalW := gridW
	targetW := l.size * targetCellW
	showTarget := bc.ShowTarget && screenW >= gridW+targetGap+targetW+2
	if showTarget {
		totalW += targetGap + targetW
	}

	x := max((screenW-totalW)/2, 0)
	l.grid = core.NewRect(x, hudHeight, gridW, gridH)
	if showTarget {
		l.target = core.NewRect(l.grid.Right()+targetGap, hudHeight+1, targetW, l.size+1)
	}
	return l
}

// tileAt returns the tile under (x, y), or noTile for borders and
// positions outside the grid.
func (l layout) tileAt(x, y int) puzzle.Tile {
	if !l.grid.Contains(x, y) {
		return noTile
	}
	dx, dy := x-l.grid.X, y-l.grid.Y
	if dx%l.cellW == 0 || dy%l.cellH == 0 {
		return noTile
	}
	col, row := dx/l.cellW, dy/l.cellH
	if col >= l.size || row >= l.size {
		return noTile
	}
	return puzzle.Tile(row*l.size + col)
}

// cellOrigin returns the top-left border corner of tile t.
func (l layout) cellOrigin(t int) (int, int) {
	return l.grid.X + (t%l.size)*l.cellW, l.grid.Y + (t/l.size)*l.cellH
}
