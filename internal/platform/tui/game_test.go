package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/minefield"
)

func newTestGame(seed int64) GameModel {
	settings := minesweeper.Settings{Width: 8, Height: 8, Mines: 20, Difficulty: "test"}
	return NewGameModel(settings, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: seed})
}

// walkTo presses movement keys until the cursor reaches target.
func walkTo(t *testing.T, m tea.Model, target minefield.Coord) tea.Model {
	t.Helper()
	for range 64 {
		c := m.(GameModel).Session().Cursor()
		switch {
		case c.Row < target.Row:
			m, _ = sendKeys(m, "s")
		case c.Row > target.Row:
			m, _ = sendKeys(m, "w")
		case c.Col < target.Col:
			m, _ = sendKeys(m, "d")
		case c.Col > target.Col:
			m, _ = sendKeys(m, "a")
		default:
			return m
		}
	}
	t.Fatalf("could not reach %v", target)
	return m
}

func TestGameModelRevealStartsGame(t *testing.T) {
	m, _ := sendKeys(newTestGame(5), "d", "s", " ")

	s := m.(GameModel).Session()
	if s.Cursor() != minefield.At(1, 1) {
		t.Errorf("Cursor() = %v, expected (1,1)", s.Cursor())
	}
	if !s.State().Started || !s.Tile(minefield.At(1, 1)).Revealed {
		t.Error("space should reveal the tile under the cursor")
	}
}

func TestGameModelFlagKey(t *testing.T) {
	m, _ := sendKeys(newTestGame(5), "x")
	if !m.(GameModel).Session().Tile(minefield.At(0, 0)).Flagged {
		t.Error("x should flag the tile under the cursor")
	}
}

func TestGameModelNewGameAfterLoss(t *testing.T) {
	var m tea.Model = newTestGame(5)
	m, _ = sendKeys(m, " ")

	// R does nothing while the game runs.
	m, _ = sendKeys(m, "r")
	if snap := m.(GameModel).Session().Snapshot(); snap.State != minesweeper.StateInProgress {
		t.Fatalf("r restarted a running game, state = %s", snap.State)
	}

	var mine minefield.Coord
	found := false
	for r := range 8 {
		for c := range 8 {
			if !found && m.(GameModel).Session().Tile(minefield.At(r, c)).IsMine() {
				mine, found = minefield.At(r, c), true
			}
		}
	}
	if !found {
		t.Fatal("no mine on the board")
	}

	m = walkTo(t, m, mine)
	m, _ = sendKeys(m, " ")
	if !m.(GameModel).Session().State().GameOver {
		t.Fatal("revealing a mine should end the game")
	}
	if view := ansi.Strip(m.(GameModel).View()); !strings.Contains(view, "KABOOM!") || !strings.Contains(view, "new game") {
		t.Errorf("end screen should show the loss and the new game key:\n%s", view)
	}

	m, _ = sendKeys(m, "r")
	snap := m.(GameModel).Session().Snapshot()
	if snap.State != minesweeper.StateNotStarted {
		t.Errorf("state = %s after r, expected a fresh game", snap.State)
	}
	if snap.Seed != 6 {
		t.Errorf("Seed = %d, expected the next seed in sequence (6)", snap.Seed)
	}
}

func TestGameModelBackAbandons(t *testing.T) {
	m, _ := sendKeys(newTestGame(5), " ", "esc")
	gm := m.(GameModel)
	if !gm.BackToMenu() {
		t.Error("esc should request the menu")
	}
	if st := gm.Session().Snapshot().State; st != minesweeper.StateAbandoned {
		t.Errorf("state = %s, expected abandoned", st)
	}
}

func TestGameModelQuit(t *testing.T) {
	m, cmd := sendKeys(newTestGame(5), "ctrl+c")
	if !m.(GameModel).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m, _ := sendKeys(newTestGame(5), " ")
	before := m.(GameModel).Session().Snapshot()

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	gm := m.(GameModel)
	after := gm.Session().Snapshot()
	if after.Board != before.Board || after.State != before.State {
		t.Error("resizing should not restart the game")
	}
	if gm.screen.Width() != 100 || gm.screen.Height() != gm.boardHeight() {
		t.Errorf("screen = %dx%d, expected 100x%d", gm.screen.Width(), gm.screen.Height(), gm.boardHeight())
	}
}

func TestGameModelHelpToggle(t *testing.T) {
	m := newTestGame(5)
	short := m.boardHeight()

	next, _ := sendKeys(m, "?")
	gm := next.(GameModel)
	if !gm.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if gm.boardHeight() >= short {
		t.Errorf("full help should take rows from the board: %d >= %d", gm.boardHeight(), short)
	}
}

func TestGameModelView(t *testing.T) {
	view := ansi.Strip(newTestGame(5).View())
	for _, want := range []string{">.<", "Info:", "Mines: 20", "reveal", "flag"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestRenderScreenMatchesPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "12", core.ColorBlue)
	s.SetColored(2, 0, '@', core.ColorRed)
	s.DrawText(0, 1, "ok")
	s.SetColored(5, 1, '■', core.Color(200))

	if got := ansi.Strip(RenderScreen(s)); got != s.String() {
		t.Errorf("RenderScreen() text = %q, expected %q", got, s.String())
	}
}
