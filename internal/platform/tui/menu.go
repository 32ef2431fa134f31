package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScoreboard
	MenuChoiceQuit
)

// menuEntries is the fixed main menu, top to bottom.
var menuEntries = []MenuChoice{MenuChoicePlay, MenuChoiceNone, MenuChoiceScoreboard, MenuChoiceQuit}

const difficultyRow = 1

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	width      int
	height     int
	high       int
	difficulty config.DifficultyPreset
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	choice     MenuChoice
}

// NewMenuModel creates a new menu model. high is shown under the title.
func NewMenuModel(cfg core.RuntimeConfig, difficulty config.DifficultyPreset, high int) MenuModel {
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	return MenuModel{
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		high:       high,
		difficulty: difficulty,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
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
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == difficultyRow {
			m.difficulty = m.difficulty.Prev()
		}

	case MenuActionRight:
		if m.cursor == difficultyRow {
			m.difficulty = m.difficulty.Next()
		}

	case MenuActionScoreboard:
		m.choice = MenuChoiceScoreboard
		return m, tea.Quit

	case MenuActionSelect:
		if m.cursor == difficultyRow {
			m.difficulty = m.difficulty.Next()
			return m, nil
		}
		m.choice = menuEntries[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High Score: %d", m.high), m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		label := entryLabel(entry, m.difficulty)
		if i == m.cursor {
			b.WriteString(centerText(menuCursor.Render("> "+label), m.width))
		} else {
			b.WriteString(centerText(menuItemStyle.Render("  "+label), m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHelpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func entryLabel(entry MenuChoice, difficulty config.DifficultyPreset) string {
	switch entry {
	case MenuChoicePlay:
		return "Play"
	case MenuChoiceScoreboard:
		return "High Scores"
	case MenuChoiceQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Difficulty: < %s >", difficulty)
	}
}

// Choice returns what the user picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, difficulty config.DifficultyPreset, high int) (MenuResult, error) {
	model := NewMenuModel(cfg, difficulty, high)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg, Difficulty: difficulty}, nil
	}

	result := MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}
	if result.Choice == MenuChoiceNone {
		result.Choice = MenuChoiceQuit
	}
	return result, nil
}
