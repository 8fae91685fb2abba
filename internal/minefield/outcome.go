package minefield

// Outcome is the state of a game as far as the board can tell.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "InProgress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Evaluate returns Won when every non-mine tile is revealed and every mine
// is flagged, InProgress otherwise. Losing is reported by Reveal returning
// HitMine, never by Evaluate.
func (g *Grid) Evaluate(mineCount int) Outcome {
	revealed := 0
	for _, t := range g.tiles {
		if t.Revealed {
			revealed++
		}
		if t.IsMine() && !t.Flagged {
			return InProgress
		}
	}
	if revealed == g.Size()-mineCount {
		return Won
	}
	return InProgress
}
