package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

func sendKeys(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyMsg(k))
	}
	return m, cmd
}

func TestMenuNavigation(t *testing.T) {
	var m tea.Model = NewMenuModel("normal", 135, 80, 24)

	m, _ = sendKeys(m, "down", "down")
	if c := m.(MenuModel).cursor; c != 2 {
		t.Errorf("cursor = %d after two downs, expected 2", c)
	}

	m, _ = sendKeys(m, "up", "up", "up", "up")
	if c := m.(MenuModel).cursor; c != 0 {
		t.Errorf("cursor = %d, expected clamp at 0", c)
	}

	m, _ = sendKeys(m, "j", "j", "j", "j", "j")
	if c := m.(MenuModel).cursor; c != len(menuChoices)-1 {
		t.Errorf("cursor = %d, expected clamp at %d", c, len(menuChoices)-1)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected MenuChoice
	}{
		{"play", []string{"enter"}, MenuPlay},
		{"options", []string{"down", "enter"}, MenuOptions},
		{"about", []string{"down", "down", " "}, MenuAbout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := sendKeys(NewMenuModel("easy", 90, 80, 24), tc.keys...)
			got := m.(MenuModel).Selected()
			if got == nil || *got != tc.expected {
				t.Errorf("Selected() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	for _, keys := range [][]string{{"q"}, {"down", "down", "down", "enter"}} {
		m, cmd := sendKeys(NewMenuModel("easy", 90, 80, 24), keys...)
		if !m.(MenuModel).IsQuitting() || cmd == nil {
			t.Errorf("keys %v: IsQuitting() = %v, cmd = %v", keys, m.(MenuModel).IsQuitting(), cmd)
		}
		if m.(MenuModel).Selected() != nil {
			t.Errorf("keys %v: quitting should not select anything", keys)
		}
	}
}

func TestMenuViewShowsDifficulty(t *testing.T) {
	view := ansi.Strip(NewMenuModel("hard", 180, 80, 24).View())
	for _, want := range []string{"Play (hard, 180 mines)", "Options", "About", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view lacks %q:\n%s", want, view)
		}
	}
}

func TestOptionsSelectsPreset(t *testing.T) {
	cfg := config.Default()

	m := NewOptionsModel(cfg, "normal", 80, 24)
	if c := m.table.Cursor(); c != 1 {
		t.Fatalf("cursor = %d, expected to start on normal (1)", c)
	}

	next, _ := sendKeys(m, "s", "enter")
	p := next.(OptionsModel).Selected()
	if p == nil || p.Name != "hard" {
		t.Errorf("Selected() = %v, expected hard", p)
	}

	next, _ = sendKeys(m, "up", "up", "up", "enter")
	if p := next.(OptionsModel).Selected(); p == nil || p.Name != "easy" {
		t.Errorf("Selected() = %v, expected easy", p)
	}
}

func TestOptionsBackAndQuit(t *testing.T) {
	m := NewOptionsModel(config.Default(), "unknown", 80, 24)
	if c := m.table.Cursor(); c != 0 {
		t.Errorf("cursor = %d for unknown current preset, expected 0", c)
	}

	back, _ := sendKeys(m, "esc")
	if !back.(OptionsModel).WantsBack() || back.(OptionsModel).Selected() != nil {
		t.Error("esc should go back without selecting")
	}

	quit, cmd := sendKeys(m, "q")
	if !quit.(OptionsModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestOptionsViewListsMineCounts(t *testing.T) {
	view := ansi.Strip(NewOptionsModel(config.Default(), "normal", 80, 24).View())
	for _, want := range []string{"easy", "90", "normal", "135", "hard", "180", "expert", "225", "Board 30x30"} {
		if !strings.Contains(view, want) {
			t.Errorf("options view lacks %q:\n%s", want, view)
		}
	}
}

func TestAboutBack(t *testing.T) {
	m, _ := sendKeys(NewAboutModel(80, 24), "enter")
	if !m.(AboutModel).WantsBack() {
		t.Error("enter should leave the about screen")
	}
	if !strings.Contains(ansi.Strip(NewAboutModel(80, 24).View()), "first reveal is always") {
		t.Error("about text missing")
	}
}

func TestAppUnknownDifficulty(t *testing.T) {
	_, err := NewAppModel(Options{Config: config.Default(), Difficulty: "nightmare"})
	if !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("NewAppModel() error = %v, expected ErrUnknownDifficulty", err)
	}
}

func newTestApp(t *testing.T, opts Options) AppModel {
	t.Helper()
	if opts.Config.Board.Width == 0 {
		opts.Config = config.Default()
	}
	opts.Runtime = core.RuntimeConfig{ScreenW: 120, ScreenH: 50, Seed: 1}
	m, err := NewAppModel(opts)
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}
	return m
}

func TestAppOptionsFlow(t *testing.T) {
	var m tea.Model = newTestApp(t, Options{})
	if got := m.(AppModel).Difficulty().Name; got != "normal" {
		t.Fatalf("Difficulty() = %q, expected the configured default", got)
	}

	m, _ = sendKeys(m, "down", "enter")
	if m.(AppModel).active != screenOptions {
		t.Fatalf("active = %v, expected options", m.(AppModel).active)
	}

	m, _ = sendKeys(m, "down", "down", "enter")
	app := m.(AppModel)
	if app.active != screenMenu {
		t.Errorf("active = %v, expected menu after selecting", app.active)
	}
	if app.Difficulty().Name != "expert" {
		t.Errorf("Difficulty() = %q, expected expert", app.Difficulty().Name)
	}
	if !strings.Contains(ansi.Strip(app.View()), "Play (expert, 225 mines)") {
		t.Errorf("menu does not show the new difficulty:\n%s", ansi.Strip(app.View()))
	}

	m, _ = sendKeys(m, "down", "enter", "esc")
	if m.(AppModel).active != screenMenu || m.(AppModel).Difficulty().Name != "expert" {
		t.Error("esc in options should return to the menu and keep the difficulty")
	}
}

func TestAppAboutFlow(t *testing.T) {
	m, _ := sendKeys(newTestApp(t, Options{}), "down", "down", "enter")
	if m.(AppModel).active != screenAbout {
		t.Fatalf("active = %v, expected about", m.(AppModel).active)
	}
	m, _ = sendKeys(m, "esc")
	if m.(AppModel).active != screenMenu {
		t.Errorf("active = %v, expected menu", m.(AppModel).active)
	}
}

func TestAppPlayAndBack(t *testing.T) {
	m, _ := sendKeys(newTestApp(t, Options{Difficulty: "hard"}), "enter")
	app := m.(AppModel)
	if app.active != screenGame || app.game == nil {
		t.Fatalf("active = %v, expected game", app.active)
	}
	if mines := app.game.Session().Settings().Mines; mines != 180 {
		t.Errorf("Mines = %d, expected 180 for hard", mines)
	}

	m, _ = sendKeys(m, " ")
	if !m.(AppModel).game.Session().State().Started {
		t.Error("space should start the game")
	}

	m, _ = sendKeys(m, "esc")
	app = m.(AppModel)
	if app.active != screenMenu || app.game != nil {
		t.Errorf("esc should return to the menu, active = %v", app.active)
	}
}

func TestAppStartInGameQuit(t *testing.T) {
	m := newTestApp(t, Options{StartInGame: true})
	if m.active != screenGame {
		t.Fatalf("active = %v, expected game", m.active)
	}

	next, cmd := sendKeys(m, "q")
	if !next.(AppModel).quitting || cmd == nil {
		t.Error("q should quit the program from the game")
	}
	if next.(AppModel).View() != "" {
		t.Error("quitting app should render nothing")
	}
}

func TestAppWindowSize(t *testing.T) {
	m, _ := newTestApp(t, Options{}).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = sendKeys(m, "enter")

	app := m.(AppModel)
	if app.runtime.ScreenW != 100 || app.runtime.ScreenH != 30 {
		t.Errorf("runtime = %+v, expected 100x30", app.runtime)
	}
	if w := app.game.screen.Width(); w != 100 {
		t.Errorf("game screen width = %d, expected 100", w)
	}
}
