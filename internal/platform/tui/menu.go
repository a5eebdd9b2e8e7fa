package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chuashinherh/Frogger/internal/core"
	"github.com/chuashinherh/Frogger/internal/storage"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// menuItem is one selectable entry on the title screen.
type menuItem struct {
	label  string
	choice MenuChoice
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items     []menuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new title screen model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items: []menuItem{
			{label: "Play", choice: MenuChoicePlay},
			{label: "High Scores", choice: MenuChoiceScores},
			{label: "Quit", choice: MenuChoiceQuit},
		},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].choice
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = MenuChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the title screen.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  F R O G G E R  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Cross the road, ride the planks, fill all five slots", m.width))
	b.WriteString("\n\n")

	if m.store != nil {
		if hs, err := m.store.HighScore(); err == nil && hs > 0 {
			b.WriteString(centerText(fmt.Sprintf("Session best: %d", hs), m.width))
			b.WriteString("\n\n")
		}
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the title screen and returns the player's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuChoice, core.RuntimeConfig, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuChoiceQuit, cfg, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuChoiceQuit, cfg, nil
	}
	if m.Choice() == MenuChoiceNone {
		return MenuChoiceQuit, m.Config(), nil
	}
	return m.Choice(), m.Config(), nil
}
