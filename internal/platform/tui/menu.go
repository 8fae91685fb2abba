package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuOptions
	MenuAbout
	MenuQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuOptions:
		return "Options"
	case MenuAbout:
		return "About"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

var menuChoices = []MenuChoice{MenuPlay, MenuOptions, MenuAbout, MenuQuit}

const logo = `█▀▄▀█ █ █▄ █ █▀▀ █▀
█ ▀ █ █ █ ▀█ ██▄ ▄█`

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	width      int
	height     int
	difficulty string // shown next to Play
	mines      int
	keys       MenuKeyMap
	help       help.Model
	selected   *MenuChoice
	quitting   bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(difficulty string, mines, width, height int) MenuModel {
	return MenuModel{
		width:      width,
		height:     height,
		difficulty: difficulty,
		mines:      mines,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := menuChoices[m.cursor]
		if choice == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &choice
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(titleStyle.Render(logo), m.width))
	b.WriteString("\n\n")

	var items strings.Builder
	for i, choice := range menuChoices {
		label := choice.String()
		if choice == MenuPlay {
			label = fmt.Sprintf("Play (%s, %d mines)", m.difficulty, m.mines)
		}
		if i == m.cursor {
			items.WriteString(selectedStyle.Render("> " + label))
		} else {
			items.WriteString("  " + label)
		}
		if i < len(menuChoices)-1 {
			items.WriteString("\n")
		}
	}
	b.WriteString(centerBlock(panelStyle.Render(items.String()), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the chosen entry, or nil while the user is still choosing.
func (m MenuModel) Selected() *MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
