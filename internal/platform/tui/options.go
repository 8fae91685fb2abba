package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/config"
)

// OptionsModel lets the user pick a difficulty preset.
type OptionsModel struct {
	cfg      config.Config
	table    table.Model
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	selected *config.Preset
	quitting bool
	back     bool
}

// NewOptionsModel creates the difficulty selector with the cursor on current.
func NewOptionsModel(cfg config.Config, current string, width, height int) OptionsModel {
	m := OptionsModel{
		cfg:    cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if i := cfg.PresetIndex(current); i >= 0 {
		m.table.SetCursor(i)
	}
	return m
}

// createTable builds one row per preset.
func (m OptionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Difficulty", Width: 12},
		{Title: "Density", Width: 9},
		{Title: "Mines", Width: 7},
	}

	rows := make([]table.Row, 0, len(m.cfg.Difficulty.Presets))
	for _, p := range m.cfg.Difficulty.Presets {
		rows = append(rows, table.Row{
			p.Name,
			fmt.Sprintf("%.0f%%", p.MineFraction*100),
			fmt.Sprintf("%d", m.cfg.MineCount(p)),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+3), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.cfg.Difficulty.Presets) {
				p := m.cfg.Difficulty.Presets[i]
				m.selected = &p
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	// Paging and home/end keys go to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the selector.
func (m OptionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("DIFFICULTY"), m.width))
	b.WriteString("\n")
	board := fmt.Sprintf("Board %dx%d", m.cfg.Board.Width, m.cfg.Board.Height)
	b.WriteString(centerText(subtleStyle.Render(board), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(panelStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil while the user is still choosing.
func (m OptionsModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m OptionsModel) WantsBack() bool {
	return m.back
}
