// Package tui provides the terminal UI: menus, the difficulty selector and
// the game screen, all driven by one Bubble Tea program.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// screenID identifies the active screen of the app.
type screenID int

const (
	screenMenu screenID = iota
	screenOptions
	screenAbout
	screenGame
)

// Options configures the app.
type Options struct {
	Config     config.Config
	Difficulty string // preset name; empty uses the configured default
	Runtime    core.RuntimeConfig
	Logger     *log.Logger
	// StartInGame skips the menu and opens the board right away.
	StartInGame bool
}

// AppModel manages the full flow: menu -> options/about/game -> menu.
type AppModel struct {
	cfg      config.Config
	preset   config.Preset
	runtime  core.RuntimeConfig
	logger   *log.Logger
	active   screenID
	menu     MenuModel
	options  OptionsModel
	about    AboutModel
	game     *GameModel
	quitting bool
}

// NewAppModel creates the app. It fails when the requested difficulty is
// not one of the configured presets.
func NewAppModel(opts Options) (AppModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	name := opts.Difficulty
	if name == "" {
		name = opts.Config.Difficulty.Default
	}
	preset, err := opts.Config.Preset(name)
	if err != nil {
		return AppModel{}, err
	}

	m := AppModel{
		cfg:     opts.Config,
		preset:  preset,
		runtime: opts.Runtime,
		logger:  logger,
	}
	if opts.StartInGame {
		m.startGame()
	} else {
		m.showMenu()
	}
	return m, nil
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen and switches screens when
// the active one is done.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.active {
	case screenOptions:
		return m.updateOptions(msg)
	case screenAbout:
		return m.updateAbout(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if choice := m.menu.Selected(); choice != nil {
		switch *choice {
		case MenuPlay:
			m.startGame()
		case MenuOptions:
			m.options = NewOptionsModel(m.cfg, m.preset.Name, m.runtime.ScreenW, m.runtime.ScreenH)
			m.active = screenOptions
		case MenuAbout:
			m.about = NewAboutModel(m.runtime.ScreenW, m.runtime.ScreenH)
			m.active = screenAbout
		}
	}
	return m, cmd
}

func (m AppModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newOptions, cmd := m.options.Update(msg)
	if optionsModel, ok := newOptions.(OptionsModel); ok {
		m.options = optionsModel
	}

	switch {
	case m.options.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.options.Selected() != nil:
		m.preset = *m.options.Selected()
		m.logger.Debug("difficulty changed", "difficulty", m.preset.Name, "mines", m.cfg.MineCount(m.preset))
		m.showMenu()
	case m.options.WantsBack():
		m.showMenu()
	}
	return m, cmd
}

func (m AppModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	newAbout, cmd := m.about.Update(msg)
	if aboutModel, ok := newAbout.(AboutModel); ok {
		m.about = aboutModel
	}

	switch {
	case m.about.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.about.WantsBack():
		m.showMenu()
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.showMenu()
	}
	return m, cmd
}

func (m *AppModel) showMenu() {
	m.menu = NewMenuModel(m.preset.Name, m.cfg.MineCount(m.preset), m.runtime.ScreenW, m.runtime.ScreenH)
	m.active = screenMenu
}

func (m *AppModel) startGame() {
	settings := minesweeper.SettingsFor(m.cfg, m.preset)
	settings.Logger = m.logger

	game := NewGameModel(settings, m.runtime)
	m.game = &game
	m.active = screenGame
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenOptions:
		return m.options.View()
	case screenAbout:
		return m.about.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// Difficulty returns the currently selected preset.
func (m AppModel) Difficulty() config.Preset {
	return m.preset
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
