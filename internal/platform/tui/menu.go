package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// presetChoices are cycled by the difficulty row. Empty keeps the config.
var presetChoices = append([]config.DifficultyPreset{""}, config.Presets()...)

// Menu rows below the mode list.
const (
	rowDifficulty = iota
	rowLevel
	settingRows
)

// Selection is what the player picked in the menu.
type Selection struct {
	GameID     string
	Preset     config.DifficultyPreset
	StartLevel int
}

// NewGame creates a session for the selection on top of the CLI defaults.
func NewGame(sel Selection) (registry.Game, error) {
	mode, ok := breakout.ModeForID(sel.GameID)
	if !ok {
		return registry.Create(sel.GameID)
	}
	opts := breakout.DefaultOptions()
	if sel.Preset != "" {
		opts.Preset = sel.Preset
	}
	opts.StartLevel = sel.StartLevel
	return breakout.NewSession(mode, opts), nil
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items      []registry.GameInfo
	levelNames []string
	cursor     int // Modes first, then the setting rows
	preset     int
	level      int
	width      int
	height     int
	keyMapper  *KeyMapper

	quitting       bool
	selected       *Selection
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	lvls, _ := breakout.LoadLevels(breakout.DefaultOptions().LevelsDir)
	names := make([]string, len(lvls))
	for i, l := range lvls {
		names[i] = l.Name
	}

	return MenuModel{
		items:      registry.List(),
		levelNames: names,
		level:      breakout.DefaultOptions().StartLevel % max(1, len(names)),
		width:      width,
		height:     height,
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)+settingRows-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		if m.cursor < len(m.items) {
			m.selected = &Selection{
				GameID:     m.items[m.cursor].ID,
				Preset:     presetChoices[m.preset],
				StartLevel: m.level,
			}
			return m, tea.Quit
		}
		m.adjust(1)

	case MenuActionScores:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// adjust cycles the setting under the cursor.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor - len(m.items) {
	case rowDifficulty:
		m.preset = wrapIndex(m.preset+delta, len(presetChoices))
	case rowLevel:
		if len(m.levelNames) > 0 {
			m.level = wrapIndex(m.level+delta, len(m.levelNames))
		}
	}
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  B R E A K E R  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(centerText(m.cursorMark(i)+item.Title, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	preset := string(presetChoices[m.preset])
	switch {
	case preset == "":
		preset = "config"
	case config.IsFixedPreset(presetChoices[m.preset]):
		preset += ", no scaling"
	}
	b.WriteString(centerText(fmt.Sprintf("%sDifficulty: < %s >", m.cursorMark(len(m.items)+rowDifficulty), preset), m.width))
	b.WriteString("\n")

	levelName := "-"
	if len(m.levelNames) > 0 {
		levelName = fmt.Sprintf("%d. %s", m.level+1, m.levelNames[m.level])
	}
	b.WriteString(centerText(fmt.Sprintf("%sStart level: < %s >", m.cursorMark(len(m.items)+rowLevel), levelName), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) cursorMark(row int) string {
	if row == m.cursor {
		return "> "
	}
	return "  "
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
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

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       Selection
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width, height int) (MenuResult, error) {
	model := NewMenuModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{Width: m.width, Height: m.height}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = *m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}

// canvasConfig builds the runtime config for a terminal of the given size.
// One row is kept for the help line.
func canvasConfig(width, height, fps int, seed int64) core.RuntimeConfig {
	rows := max(1, height-helpRows)
	return core.RuntimeConfig{
		CanvasW:  float64(width) * cellW,
		CanvasH:  float64(rows) * cellH,
		TickRate: fps,
		Seed:     seed,
		Clock:    core.SystemClock{},
	}
}
