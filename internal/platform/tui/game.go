package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// GameModel is the Bubble Tea model for the board screen.
type GameModel struct {
	session    *minesweeper.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	baseSeed   int64 // 0 picks a clock seed for every game
	games      int   // games started by this model, for seed derivation
	keys       GameKeyMap
	help       help.Model
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts the first game.
func NewGameModel(settings minesweeper.Settings, cfg core.RuntimeConfig) GameModel {
	m := GameModel{
		session:  minesweeper.New(settings),
		config:   cfg,
		baseSeed: cfg.Seed,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	m.newGame()
	return m
}

// newGame resets the session with a fresh seed.
func (m *GameModel) newGame() {
	m.games++
	if m.baseSeed == 0 {
		m.config.Seed = time.Now().UnixNano()
	} else {
		m.config.Seed = m.baseSeed + int64(m.games-1)
	}

	cfg := m.config
	cfg.ScreenH = m.boardHeight()
	m.session.Reset(cfg)
	m.keys.NewGame.SetEnabled(false)
}

// boardHeight is the screen height left for the session after the help footer.
func (m GameModel) boardHeight() int {
	return max(0, m.config.ScreenH-lipgloss.Height(m.helpView())-1)
}

// Init initializes the game.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}
	return m, nil
}

// resize fits the screen buffer and the session to the window without
// restarting the game.
func (m *GameModel) resize() {
	h := m.boardHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.session.Resize(m.config.ScreenW, h)
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.session.Step(core.FrameOf(core.ActionQuit))
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.session.Step(core.FrameOf(core.ActionQuit))
		m.backToMenu = true
		return m, nil

	case core.ActionRestart:
		m.newGame()
		return m, nil

	default:
		result := m.session.Step(core.FrameOf(action))
		if result.State.GameOver {
			m.keys.NewGame.SetEnabled(true)
		}
		return m, nil
	}
}

// View renders the board and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.helpView()), m.config.ScreenW))
	return b.String()
}

func (m GameModel) helpView() string {
	return m.help.View(m.keys)
}

// Session returns the running game.
func (m GameModel) Session() *minesweeper.Session {
	return m.session
}

// BackToMenu returns true if the user left the game for the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user wants to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}
