package minesweeper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minefield"
)

const (
	tileWidth   = 3 // marker, content, marker
	panelHeight = 8 // blank line + info header + six info lines
	minViewCols = 5
	minViewRows = 5

	glyphHidden  = '.'
	glyphFlagged = '■'
	glyphMissed  = '█'
)

// numberColors maps neighbor counts to colors, index = count.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the board and the info panel to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if s.tooSmall {
		s.renderTooSmall(dst)
		return
	}

	view := s.viewport()
	boardW := view.W * tileWidth
	boardX := max(0, (s.screenW-boardW)/2)

	s.renderBoard(dst, view, boardX, 0)

	panelY := view.H + 1
	panelX := max(0, min(boardX, s.screenW-len(s.Controls())))
	if s.Over() {
		s.renderEnd(dst, panelX, panelY)
		return
	}
	s.renderInfo(dst, panelX, panelY, boardW)
}

// renderTooSmall shows a "window too small" message.
func (s *Session) renderTooSmall(dst *core.Screen) {
	y := s.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// viewport returns the visible part of the grid in grid coordinates:
// X/W are columns, Y/H are rows. Large boards scroll to keep the cursor
// roughly centered.
func (s *Session) viewport() core.Rect {
	cols := min(s.grid.Width(), s.screenW/tileWidth)
	rows := min(s.grid.Height(), s.screenH-panelHeight)
	return core.NewRect(
		core.Clamp(s.cursor.Col-cols/2, 0, s.grid.Width()-cols),
		core.Clamp(s.cursor.Row-rows/2, 0, s.grid.Height()-rows),
		cols,
		rows,
	)
}

// renderBoard draws the visible tiles, three columns per tile.
func (s *Session) renderBoard(dst *core.Screen, view core.Rect, x0, y0 int) {
	showAll := s.Over()
	for row := view.Y; row < view.Bottom(); row++ {
		for col := view.X; col < view.Right(); col++ {
			pos := minefield.At(row, col)
			x := x0 + (col-view.X)*tileWidth
			y := y0 + row - view.Y
			if showAll {
				s.drawEndTile(dst, x, y, pos)
			} else {
				s.drawTile(dst, x, y, pos)
			}
		}
	}
}

// drawTile draws a tile as the player sees it during the game.
func (s *Session) drawTile(dst *core.Screen, x, y int, pos minefield.Coord) {
	t := s.grid.Tile(pos)

	var glyph rune
	var color core.Color
	switch {
	case t.Revealed:
		glyph, color = contentGlyph(t.Content)
	case t.Flagged:
		glyph, color = glyphFlagged, core.ColorBrightYellow
	default:
		glyph, color = glyphHidden, core.ColorGray
	}

	left, right := ' ', ' '
	if pos == s.cursor {
		left, right = '>', '<'
	}
	dst.SetColored(x, y, left, core.ColorBrightWhite)
	dst.SetColored(x+1, y, glyph, color)
	dst.SetColored(x+2, y, right, core.ColorBrightWhite)
}

// drawEndTile draws a tile with its content exposed. Tiles the player never
// uncovered get side markers: brackets for flags, blocks otherwise.
func (s *Session) drawEndTile(dst *core.Screen, x, y int, pos minefield.Coord) {
	t := s.grid.Tile(pos)
	glyph, color := contentGlyph(t.Content)
	if t.IsMine() && s.state == StateLost && pos == s.hit {
		color = core.ColorBrightRed
	}

	left, right := ' ', ' '
	sideColor := core.ColorGray
	switch {
	case pos == s.cursor:
		left, right = '>', '<'
		sideColor = core.ColorBrightWhite
	case t.Revealed || t.Content == minefield.Blank:
	case t.Flagged:
		left, right = '[', ']'
		sideColor = core.ColorGreen
		if !t.IsMine() {
			sideColor = core.ColorRed
		}
	default:
		left, right = glyphMissed, glyphMissed
	}

	dst.SetColored(x, y, left, sideColor)
	dst.SetColored(x+1, y, glyph, color)
	dst.SetColored(x+2, y, right, sideColor)
}

func contentGlyph(c minefield.Content) (rune, core.Color) {
	switch {
	case c == minefield.Mine:
		return '@', core.ColorRed
	case c.IsNumber():
		return rune('0' + c), numberColors[c]
	default:
		return ' ', core.ColorDefault
	}
}

// renderInfo draws the info panel below the board.
func (s *Session) renderInfo(dst *core.Screen, x, y, boardW int) {
	left := max(0, boardW/2-5)
	header := strings.Repeat("=", left) + "Info:" + strings.Repeat("=", max(0, boardW-left-5))
	dst.DrawTextColored(x, y, header, core.ColorGray)

	lines := []string{
		s.Controls(),
		"Flag every mine and reveal every other tile to win!",
		fmt.Sprintf("    Board Size: %dx%d", s.grid.Width(), s.grid.Height()),
		fmt.Sprintf("    Difficulty: %s", s.settings.Difficulty),
		fmt.Sprintf("    Mines: %d", s.settings.Mines),
		fmt.Sprintf("    Flagged: %d", s.grid.CountFlagged()),
	}
	for i, line := range lines {
		dst.DrawText(x, y+1+i, line)
	}
}

// renderEnd draws the final message under the exposed board.
func (s *Session) renderEnd(dst *core.Screen, x, y int) {
	switch s.state {
	case StateWon:
		dst.DrawTextColored(x, y, "You Won!", core.ColorBrightGreen)
	case StateLost:
		dst.DrawTextColored(x, y, "KABOOM!", core.ColorBrightRed)
	default:
		dst.DrawTextColored(x, y, "Game abandoned", core.ColorGray)
	}
	dst.DrawText(x, y+1, fmt.Sprintf("Revealed %d of %d safe tiles, %d moves",
		s.grid.CountRevealed()-boolInt(s.state == StateLost),
		s.grid.Size()-s.settings.Mines,
		s.moves,
	))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
