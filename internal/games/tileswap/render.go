package tileswap

import (
	"fmt"

	"github.com/vovakirdan/tui-swap/internal/core"
	"github.com/vovakirdan/tui-swap/internal/puzzle"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderTiles(dst)
	g.renderTarget(dst)
	g.renderFooter(dst)

	if g.paused {
		cx, cy := g.layout.grid.Center()
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.color(g.cfg.Colors.HUD, core.ColorBrightWhite)
	grid := g.layout.grid

	title := g.board.Title
	dst.DrawTextColored(grid.X+(grid.W-len(title))/2, 0, title, hud)

	dst.DrawTextColored(grid.X, 1, fmt.Sprintf("Moves: %d  Undo: %d", g.puzzle.Moves(), g.puzzle.UndoDepth()), hud)

	var info string
	if g.puzzle.Replaying() {
		done, total := g.puzzle.ReplayProgress()
		info = fmt.Sprintf("Replay %d/%d", done, total)
		if g.puzzle.ReplayCancelled() {
			info += " >>"
		}
	} else {
		info = fmt.Sprintf("Attempt %d", g.attempt)
	}
	dst.DrawTextColored(max(grid.Right()-len(info), grid.X), 2, info, hud)
}

// renderGrid draws the borders of the n x n grid.
func (g *Game) renderGrid(dst *core.Screen) {
	l := g.layout
	n := l.size
	border := core.ColorDefault
	if g.puzzle.IsSolved() && !g.puzzle.Replaying() {
		border = g.color(g.cfg.Colors.Solved, core.ColorBrightGreen)
	}

	for y := range n + 1 {
		for x := range n + 1 {
			px := l.grid.X + x*l.cellW
			py := l.grid.Y + y*l.cellH

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, border)

			if x < n {
				for i := 1; i < l.cellW; i++ {
					dst.SetColored(px+i, py, '─', border)
				}
			}
			if y < n {
				for i := 1; i < l.cellH; i++ {
					dst.SetColored(px, py+i, '│', border)
				}
			}
		}
	}
}

func (g *Game) renderTiles(dst *core.Screen) {
	l := g.layout
	tileColor := g.color(g.cfg.Colors.Tile, core.ColorWhite)
	highlight := g.color(g.cfg.Colors.Highlight, core.ColorBrightYellow)
	cursor := g.color(g.cfg.Colors.Cursor, core.ColorBrightCyan)
	if g.puzzle.IsSolved() && !g.puzzle.Replaying() {
		tileColor = g.color(g.cfg.Colors.Solved, core.ColorBrightGreen)
	}

	for i := range l.size * l.size {
		t := puzzle.Tile(i)
		ox, oy := l.cellOrigin(i)
		inner := core.NewRect(ox+1, oy+1, l.cellW-1, l.cellH-1)

		c := tileColor
		if _, ok := g.flash[t]; ok {
			c = core.ColorOrange
		}
		if t == g.highlight {
			c = highlight
			for y := inner.Y; y < inner.Bottom(); y++ {
				for x := inner.X; x < inner.Right(); x++ {
					dst.SetColored(x, y, '░', highlight)
				}
			}
		}

		label := string(g.puzzle.PieceAt(t))
		lx := inner.X + (inner.W-len(label))/2
		ly := inner.Y + (inner.H-1)/2
		dst.DrawTextColored(lx, ly, label, c)

		if i == g.cursor && !g.puzzle.Replaying() {
			dst.SetColored(inner.X, ly, '▸', cursor)
			dst.SetColored(inner.Right()-1, ly, '◂', cursor)
		}
	}
}

// renderTarget draws the solved arrangement as a small hint.
func (g *Game) renderTarget(dst *core.Screen) {
	r := g.layout.target
	if r.W == 0 {
		return
	}
	hud := g.color(g.cfg.Colors.HUD, core.ColorBrightWhite)
	dst.DrawTextColored(r.X, r.Y, "Target", hud)

	target := g.puzzle.Target()
	n := g.layout.size
	for i, piece := range target {
		x := r.X + (i%n)*targetCellW
		y := r.Y + 1 + i/n
		dst.DrawTextColored(x, y, string(piece), core.ColorGray)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.layout.grid.Bottom() + 1
	hud := g.color(g.cfg.Colors.HUD, core.ColorBrightWhite)

	switch {
	case g.puzzle.Replaying():
		dst.DrawTextCentered(y, "Replaying your moves... C to skip", hud)
	case g.puzzle.IsSolved() && g.won:
		solved := g.color(g.cfg.Colors.Solved, core.ColorBrightGreen)
		dst.DrawTextCentered(y, fmt.Sprintf("SOLVED in %d moves!", g.wonMoves), solved)
		dst.DrawTextCentered(y+1, "Y: Replay | R: New shuffle | U: Undo", hud)
		return
	}

	if g.message != "" {
		dst.DrawTextCentered(y+1, g.message, core.ColorYellow)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorDefault)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// color resolves a configured color name, falling back to def.
func (g *Game) color(name string, def core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return def
}
