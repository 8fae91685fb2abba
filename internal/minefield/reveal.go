package minefield

// RevealResult is the outcome of a single Reveal call.
type RevealResult int

const (
	// Revealed means at least one tile was uncovered and no mine was hit.
	Revealed RevealResult = iota
	// AlreadyRevealed means the tile was already open; nothing changed.
	AlreadyRevealed
	// HitMine means the revealed tile is a mine. The mine stays revealed.
	HitMine
)

// String returns a human-readable name for the result.
func (r RevealResult) String() string {
	switch r {
	case Revealed:
		return "Revealed"
	case AlreadyRevealed:
		return "AlreadyRevealed"
	case HitMine:
		return "HitMine"
	default:
		return "Unknown"
	}
}

type direction struct {
	dr, dc int
}

// directions is the fixed neighbor order: NW, N, NE, W, E, SW, S, SE.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Reveal uncovers the tile at c and clears its flag.
//
// A blank tile opens its whole connected blank region together with the
// numbered tiles bordering it. The cascade uses an explicit stack and visits
// tiles in the same order as a depth-first walk of the direction table.
//
// Reveal does not refuse flagged tiles; player-facing callers must check.
func (g *Grid) Reveal(c Coord) RevealResult {
	return g.reveal(c, nil)
}

// reveal is Reveal with an optional hook called for every tile it uncovers,
// in order.
func (g *Grid) reveal(c Coord, visit func(Coord)) RevealResult {
	t := g.at(c)
	if t.Revealed {
		return AlreadyRevealed
	}
	if t.IsMine() {
		t.Revealed = true
		t.Flagged = false
		if visit != nil {
			visit(c)
		}
		return HitMine
	}

	stack := []Coord{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := g.at(cur)
		if t.Revealed {
			continue
		}
		t.Revealed = true
		t.Flagged = false
		if visit != nil {
			visit(cur)
		}

		if t.Content != Blank {
			continue
		}
		// Pushed in reverse so NW comes off the stack first.
		for i := len(directions) - 1; i >= 0; i-- {
			nc := cur.Add(directions[i].dr, directions[i].dc)
			if g.InBounds(nc) && !g.tiles[g.index(nc)].Revealed {
				stack = append(stack, nc)
			}
		}
	}
	return Revealed
}
