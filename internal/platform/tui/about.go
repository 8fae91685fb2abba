package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const aboutText = `Minesweeper for the terminal.

Uncover every tile that hides no mine and flag
every mine to win. Numbers count the mines in the
eight surrounding tiles. Your first reveal is always
safe: no mine lies within two tiles of it.

Move with WASD, arrows or hjkl. Space reveals,
X toggles a flag. A flagged tile cannot be revealed
until the flag is removed.`

// AboutModel shows a short description and the controls.
type AboutModel struct {
	width    int
	height   int
	nav      MenuKeyMap
	keys     MenuKeyMap // bindings listed in the help footer
	help     help.Model
	quitting bool
	back     bool
}

// NewAboutModel creates the about screen.
func NewAboutModel(width, height int) AboutModel {
	keys := DefaultMenuKeyMap()
	keys.Up.SetEnabled(false)
	keys.Down.SetEnabled(false)
	keys.Select.SetEnabled(false)

	return AboutModel{
		width:  width,
		height: height,
		nav:    DefaultMenuKeyMap(),
		keys:   keys,
		help:   help.New(),
	}
}

// Init initializes the model.
func (m AboutModel) Init() tea.Cmd {
	return nil
}

// Update handles messages. Any of back, enter or space returns to the menu.
func (m AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.nav.MenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.back = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the about screen.
func (m AboutModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("ABOUT"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(panelStyle.Render(aboutText), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// IsQuitting returns true if user wants to quit.
func (m AboutModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m AboutModel) WantsBack() bool {
	return m.back
}
