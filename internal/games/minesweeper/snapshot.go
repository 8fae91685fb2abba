package minesweeper

import "github.com/vovakirdan/tui-mines/internal/minefield"

// State is the session lifecycle state.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
	StateAbandoned  State = "abandoned"
)

// Terminal reports whether no further actions are accepted.
func (st State) Terminal() bool {
	return st == StateWon || st == StateLost || st == StateAbandoned
}

// Snapshot captures the session for tests and debugging.
type Snapshot struct {
	Seed       int64
	Difficulty string
	Width      int
	Height     int
	Mines      int
	Cursor     minefield.Coord
	State      State
	Revealed   int
	Flagged    int
	Moves      int
	TooSmall   bool
	// Board is the content dump of the grid; empty before mines are placed.
	Board string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Seed:       s.seed,
		Difficulty: s.settings.Difficulty,
		Width:      s.grid.Width(),
		Height:     s.grid.Height(),
		Mines:      s.settings.Mines,
		Cursor:     s.cursor,
		State:      s.state,
		Revealed:   s.grid.CountRevealed(),
		Flagged:    s.grid.CountFlagged(),
		Moves:      s.moves,
		TooSmall:   s.tooSmall,
	}
	if s.grid.MinesPlaced() {
		snap.Board = s.grid.String()
	}
	return snap
}
