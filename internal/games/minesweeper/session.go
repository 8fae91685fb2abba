// Package minesweeper implements one game of Minesweeper on top of the
// minefield engine: cursor movement, lazy mine placement, flagging,
// and win/loss tracking.
package minesweeper

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minefield"
)

// Settings describes the board a session plays on.
type Settings struct {
	Width      int
	Height     int
	Mines      int
	Difficulty string
	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// SettingsFor builds session settings from the loaded configuration and a preset.
func SettingsFor(cfg config.Config, preset config.Preset) Settings {
	return Settings{
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		Mines:      cfg.MineCount(preset),
		Difficulty: preset.Name,
	}
}

// Session owns a single game from the first move to its end.
// A finished session is not reused; the platform creates a new one.
type Session struct {
	settings Settings
	log      *log.Logger
	rng      *rand.Rand
	seed     int64

	grid   *minefield.Grid
	cursor minefield.Coord
	state  State
	hit    minefield.Coord // mine that ended the game, valid when state is StateLost
	moves  int             // reveals and flag toggles that changed the board

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a session ready to play with a default runtime config.
// Dimensions below one are raised to one and the mine count is clamped to
// what the board can hold around any first reveal.
func New(settings Settings) *Session {
	logger := settings.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	settings.Width = max(settings.Width, 1)
	settings.Height = max(settings.Height, 1)
	if limit := minefield.MaxMines(settings.Width, settings.Height); settings.Mines > limit || settings.Mines < 0 {
		clamped := core.Clamp(settings.Mines, 0, limit)
		logger.Warn("mine count adjusted", "requested", settings.Mines, "mines", clamped)
		settings.Mines = clamped
	}

	s := &Session{
		settings: settings,
		log:      logger,
	}
	s.reset(core.DefaultConfig())
	return s
}

// Reset discards the board and starts over with a fresh, unmined grid.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.reset(cfg)
	s.log.Info("game started",
		"difficulty", s.settings.Difficulty,
		"width", s.settings.Width,
		"height", s.settings.Height,
		"mines", s.settings.Mines,
		"seed", cfg.Seed,
	)
}

func (s *Session) reset(cfg core.RuntimeConfig) {
	s.seed = cfg.Seed
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.grid = minefield.New(s.settings.Width, s.settings.Height)
	s.cursor = minefield.At(0, 0)
	s.state = StateNotStarted
	s.hit = minefield.Coord{}
	s.moves = 0
	s.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size the session renders into.
func (s *Session) Resize(w, h int) {
	s.screenW = w
	s.screenH = h
	s.checkScreenSize()
}

// checkScreenSize checks if the screen can show a useful part of the board.
func (s *Session) checkScreenSize() {
	minW := minViewCols * tileWidth
	minH := min(s.settings.Height, minViewRows) + panelHeight
	s.tooSmall = s.screenW < minW || s.screenH < minH
}

// Step applies one input frame.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.Over() {
		return core.StepResult{State: s.State()}
	}

	// Quit works even while the window is too small to play.
	if in.Has(core.ActionQuit) {
		s.abandon()
		return core.StepResult{State: s.State(), Changed: true}
	}
	if s.tooSmall {
		return core.StepResult{State: s.State()}
	}

	changed := s.moveCursor(in)

	if in.Has(core.ActionFlag) && s.toggleFlag() {
		changed = true
	}
	if in.Has(core.ActionReveal) && s.reveal() {
		changed = true
	}

	if changed && s.state == StateInProgress {
		s.evaluate()
	}

	return core.StepResult{State: s.State(), Changed: changed}
}

// moveCursor handles directional actions. Opposite directions cancel out.
func (s *Session) moveCursor(in core.InputFrame) bool {
	var dr, dc int
	if in.Has(core.ActionUp) {
		dr--
	}
	if in.Has(core.ActionDown) {
		dr++
	}
	if in.Has(core.ActionLeft) {
		dc--
	}
	if in.Has(core.ActionRight) {
		dc++
	}

	next := minefield.At(
		core.Clamp(s.cursor.Row+dr, 0, s.grid.Height()-1),
		core.Clamp(s.cursor.Col+dc, 0, s.grid.Width()-1),
	)
	if next == s.cursor {
		return false
	}
	s.cursor = next
	return true
}

func (s *Session) toggleFlag() bool {
	if s.grid.Tile(s.cursor).Revealed {
		return false
	}
	s.grid.ToggleFlag(s.cursor)
	s.moves++
	return true
}

// reveal uncovers the tile under the cursor. A flagged tile is protected:
// nothing happens, not even mine placement.
func (s *Session) reveal() bool {
	if s.grid.Tile(s.cursor).Flagged {
		return false
	}

	if s.state == StateNotStarted {
		if err := s.grid.PlaceMines(s.cursor, s.settings.Mines, s.rng); err != nil {
			s.log.Error("mine placement failed", "err", err)
			return false
		}
		s.state = StateInProgress
		s.log.Debug("mines placed", "mines", s.settings.Mines, "origin", s.cursor.String())
	}

	switch s.grid.Reveal(s.cursor) {
	case minefield.AlreadyRevealed:
		return false
	case minefield.HitMine:
		s.moves++
		s.state = StateLost
		s.hit = s.cursor
		s.log.Info("mine hit", "at", s.cursor.String(), "moves", s.moves)
	default:
		s.moves++
	}
	return true
}

func (s *Session) evaluate() {
	if s.grid.Evaluate(s.settings.Mines) == minefield.Won {
		s.state = StateWon
		s.log.Info("game won", "difficulty", s.settings.Difficulty, "moves", s.moves)
	}
}

func (s *Session) abandon() {
	if s.state == StateInProgress {
		s.log.Info("game abandoned", "revealed", s.grid.CountRevealed(), "moves", s.moves)
	}
	s.state = StateAbandoned
}

// Over reports whether the session reached a terminal state.
func (s *Session) Over() bool {
	return s.state.Terminal()
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Started:  s.state != StateNotStarted,
		GameOver: s.Over(),
		Won:      s.state == StateWon,
	}
}

// Outcome maps the session state onto the engine outcome.
func (s *Session) Outcome() minefield.Outcome {
	switch s.state {
	case StateWon:
		return minefield.Won
	case StateLost:
		return minefield.Lost
	default:
		return minefield.InProgress
	}
}

// Settings returns the effective settings after clamping.
func (s *Session) Settings() Settings {
	return s.settings
}

// Cursor returns the cursor position.
func (s *Session) Cursor() minefield.Coord {
	return s.cursor
}

// Tile returns a copy of the tile at c.
func (s *Session) Tile(c minefield.Coord) minefield.Tile {
	return s.grid.Tile(c)
}

// Controls returns the control hints for the game.
func (s *Session) Controls() string {
	return "WASD/Arrows: Move | Space: Reveal | X: Flag | Esc: Menu | Q: Quit"
}
