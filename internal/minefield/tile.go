// Package minefield implements the Minesweeper board engine: the tile grid,
// mine placement around a safe first reveal, neighbor labels, flood-fill
// reveal, flags and win evaluation.
//
// The package performs no I/O and keeps no state beyond the Grid it is
// called on. Callers own the Grid.
package minefield

import "fmt"

// Content is what a tile holds once mines are placed.
// Zero is Blank, 1..8 are neighbor-mine labels, and Mine marks a mine.
type Content uint8

const (
	Blank Content = 0
	Mine  Content = 9
)

// IsNumber reports whether c is a label in 1..8.
func (c Content) IsNumber() bool {
	return c >= 1 && c <= 8
}

// Count returns the neighbor-mine count for a label, 0 for Blank and Mine.
func (c Content) Count() int {
	if c.IsNumber() {
		return int(c)
	}
	return 0
}

// String returns a one-character description used in debug output and tests.
func (c Content) String() string {
	switch {
	case c == Blank:
		return " "
	case c == Mine:
		return "@"
	case c.IsNumber():
		return string(rune('0' + c))
	default:
		return "?"
	}
}

// Tile is one cell of the grid.
// Revealed and Flagged are never both true.
type Tile struct {
	Content  Content
	Revealed bool
	Flagged  bool
}

// IsMine reports whether the tile holds a mine.
func (t Tile) IsMine() bool {
	return t.Content == Mine
}

// Coord addresses a tile by row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns c offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Chebyshev returns the king-move distance between two coordinates.
func (c Coord) Chebyshev(other Coord) int {
	return max(abs(c.Row-other.Row), abs(c.Col-other.Col))
}

// String returns "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
