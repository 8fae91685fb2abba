package minefield

import (
	"errors"
	"fmt"
)

// SafeRadius is the Chebyshev distance around the first reveal that never
// holds a mine. A radius of 2 keeps a 5x5 block clear.
const SafeRadius = 2

// Placement errors.
var (
	ErrAlreadyPlaced = errors.New("minefield: mines already placed")
	ErrNegativeMines = errors.New("minefield: negative mine count")
	ErrTooManyMines  = errors.New("minefield: not enough tiles outside the safe zone")
	ErrOutOfBounds   = errors.New("minefield: origin outside grid")
)

// Source is the random source used for mine placement.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// MaxMines returns the largest mine count that PlaceMines accepts for every
// origin on a width x height grid.
func MaxMines(width, height int) int {
	side := 2*SafeRadius + 1
	n := width*height - min(side, width)*min(side, height)
	return max(n, 0)
}

// safeZoneSize counts the tiles within SafeRadius of origin that lie on the
// grid.
func (g *Grid) safeZoneSize(origin Coord) int {
	rows := min(origin.Row+SafeRadius, g.height-1) - max(origin.Row-SafeRadius, 0) + 1
	cols := min(origin.Col+SafeRadius, g.width-1) - max(origin.Col-SafeRadius, 0) + 1
	return rows * cols
}

// PlaceMines puts count mines on the grid, none of them within SafeRadius
// of origin, then labels every other tile with its neighbor-mine count.
//
// Coordinates are drawn uniformly from rng (row first, then column) and
// rejected while they already hold a mine or fall inside the safe zone.
// Counts that could never be satisfied are refused up front.
func (g *Grid) PlaceMines(origin Coord, count int, rng Source) error {
	switch {
	case g.minesPlaced:
		return ErrAlreadyPlaced
	case !g.InBounds(origin):
		return fmt.Errorf("%w: %s on %dx%d", ErrOutOfBounds, origin, g.width, g.height)
	case count < 0:
		return fmt.Errorf("%w: %d", ErrNegativeMines, count)
	}

	if avail := g.Size() - g.safeZoneSize(origin); count > avail {
		return fmt.Errorf("%w: %d mines requested, %d tiles available around %s",
			ErrTooManyMines, count, avail, origin)
	}

	for placed := 0; placed < count; {
		c := At(rng.Intn(g.height), rng.Intn(g.width))

		t := g.at(c)
		if t.IsMine() {
			continue
		}
		if c.Chebyshev(origin) <= SafeRadius {
			continue
		}

		t.Content = Mine
		placed++
	}

	g.label()
	g.minesPlaced = true
	return nil
}

// label sets every non-mine tile to its neighbor-mine count.
func (g *Grid) label() {
	for i := range g.tiles {
		if g.tiles[i].IsMine() {
			continue
		}
		c := At(i/g.width, i%g.width)
		g.tiles[i].Content = Content(g.neighborMines(c))
	}
}

// neighborMines counts mines among the up to 8 tiles around c.
func (g *Grid) neighborMines(c Coord) int {
	n := 0
	for _, d := range directions {
		nc := c.Add(d.dr, d.dc)
		if !g.InBounds(nc) {
			continue
		}
		if g.tiles[g.index(nc)].IsMine() {
			n++
		}
	}
	return n
}
