package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Difficulties offered by the menu, in cycling order. The empty choice
// keeps whatever the config file or --difficulty flag selected.
var Difficulties = []string{"", "easy", "normal", "hard", "fixed"}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBest       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

const menuBanner = `
 ____  _   _ _   _ _   _ _____ ____
|  _ \| | | | \ | | \ | | ____|  _ \
| |_) | | | |  \| |  \| |  _| | |_) |
|  _ <| |_| | |\  | |\  | |___|  _ <
|_| \_\\___/|_| \_|_| \_|_____|_| \_\`

// MenuItem is one mode in the picker.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
	Runs      int
}

// MenuModel picks a mode and a difficulty.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int // Index into Difficulties
	config     core.RuntimeConfig
	keyMapper  *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel loads modes from the registry and their stats from store,
// which may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if s, ok := stats[g.ID]; ok {
			items[i].HighScore = s.HighScore
			items[i].Runs = s.RunsCount
		}
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.config.Constrained = msg.Width < ConstrainedWidth
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)
	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(Difficulties)
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	if w >= 40 {
		for _, line := range strings.Split(strings.TrimPrefix(menuBanner, "\n"), "\n") {
			b.WriteString(centerText(menuTitleStyle.Render(line), w))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(menuTitleStyle.Render("R U N N E R"), w))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursor.Render("> " + item.Title)
		}
		if item.Runs > 0 {
			line += menuBest.Render(fmt.Sprintf("  best %d", item.HighScore)) +
				menuDim.Render(fmt.Sprintf(" / %d runs", item.Runs))
		}
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Difficulty: < "+menuCursor.Render(m.Difficulty(true))+" >", w))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDim.Render("Up/Down: mode  Left/Right: difficulty  Enter: play  Tab: scores  Q: quit"), w))
	b.WriteString("\n")
	b.WriteString(centerText(menuDim.Render("A/D: run  Space: jump  S: drop  F: shoot  P: pause"), w))
	b.WriteString("\n")
	return b.String()
}

// Difficulty returns the chosen preset. With label set, the empty choice
// reads "default".
func (m MenuModel) Difficulty(label bool) string {
	d := Difficulties[m.difficulty]
	if d == "" && label {
		return "default"
	}
	return d
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring styled text by its
// visible cells.
func centerText(text string, width int) string {
	tw := lipgloss.Width(text)
	if tw >= width {
		return text
	}
	return strings.Repeat(" ", (width-tw)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string // Empty keeps the configured difficulty
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes the menu's final state.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config, Difficulty: m.Difficulty(false)}
	switch {
	case m.openScoreboard:
		r.WantsScoreboard = true
	case m.selected != nil:
		r.GameID = m.selected.GameID
	default:
		r.Quit = true
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
