package minefield

import (
	"fmt"
	"strings"
)

// Default board dimensions.
const (
	DefaultWidth  = 30
	DefaultHeight = 30
)

// Grid is a fixed W x H rectangle of tiles stored in row-major order.
type Grid struct {
	width       int
	height      int
	tiles       []Tile
	minesPlaced bool
}

// New returns a grid of the given size with every tile blank, hidden and
// unflagged. It panics on non-positive dimensions.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("minefield: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of tiles.
func (g *Grid) Size() int {
	return g.width * g.height
}

// MinesPlaced reports whether PlaceMines has already run on this grid.
func (g *Grid) MinesPlaced() bool {
	return g.minesPlaced
}

// InBounds reports whether c addresses a tile of this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// at returns a pointer to the tile at c. Out-of-bounds coordinates are a
// caller bug and panic.
func (g *Grid) at(c Coord) *Tile {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("minefield: coordinate %s outside %dx%d grid", c, g.width, g.height))
	}
	return &g.tiles[g.index(c)]
}

// Tile returns a copy of the tile at c.
func (g *Grid) Tile(c Coord) Tile {
	return *g.at(c)
}

// ToggleFlag flips the flag on a hidden tile. Revealed tiles are left alone.
func (g *Grid) ToggleFlag(c Coord) {
	t := g.at(c)
	if t.Revealed {
		return
	}
	t.Flagged = !t.Flagged
}

// CountFlagged returns the number of flagged tiles.
func (g *Grid) CountFlagged() int {
	n := 0
	for _, t := range g.tiles {
		if t.Flagged {
			n++
		}
	}
	return n
}

// CountRevealed returns the number of revealed tiles.
func (g *Grid) CountRevealed() int {
	n := 0
	for _, t := range g.tiles {
		if t.Revealed {
			n++
		}
	}
	return n
}

// CountMines returns the number of mine tiles.
func (g *Grid) CountMines() int {
	n := 0
	for _, t := range g.tiles {
		if t.IsMine() {
			n++
		}
	}
	return n
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(c Coord, t Tile)) {
	for row := range g.height {
		for col := range g.width {
			c := At(row, col)
			fn(c, g.tiles[g.index(c)])
		}
	}
}

// String dumps the full contents of the grid, one row per line, ignoring
// revealed and flagged state.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Size() + g.height)
	for row := range g.height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.width {
			sb.WriteString(g.tiles[g.index(At(row, col))].Content.String())
		}
	}
	return sb.String()
}
