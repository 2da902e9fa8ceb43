package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// GameKeyMap defines the key bindings while a game is on screen.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Toggle},
		{k.Mute, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyAction is what a key press asks the host to do.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyDirection
	KeyToggle
	KeyMute
	KeyScreenshot
	KeyBack
	KeyQuit
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey classifies a key. For KeyDirection the direction is returned too.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (KeyAction, core.Direction) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return KeyQuit, core.DirNone
	case key.Matches(msg, km.keys.Left):
		return KeyDirection, core.DirLeft
	case key.Matches(msg, km.keys.Right):
		return KeyDirection, core.DirRight
	case key.Matches(msg, km.keys.Toggle):
		return KeyToggle, core.DirNone
	case key.Matches(msg, km.keys.Mute):
		return KeyMute, core.DirNone
	case key.Matches(msg, km.keys.Screenshot):
		return KeyScreenshot, core.DirNone
	case key.Matches(msg, km.keys.Back):
		return KeyBack, core.DirNone
	}
	return KeyNone, core.DirNone
}

// MapKeyToFrame updates an input frame based on a key message and
// returns the classified action.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) KeyAction {
	action, dir := km.MapKey(msg)
	switch action {
	case KeyDirection:
		frame.SetDirection(dir)
	case KeyToggle:
		frame.Push(core.CmdToggle, 0)
	}
	return action
}

// MapMouse converts a mouse event to a pointer command at the pixel column
// under the cell centre. Left presses tap, left-button motion drags.
func MapMouse(msg tea.MouseMsg, cellW float64) (core.Command, bool) {
	if msg.Button != tea.MouseButtonLeft {
		return core.Command{}, false
	}
	x := (float64(msg.X) + 0.5) * cellW
	switch msg.Action {
	case tea.MouseActionPress:
		return core.Command{Kind: core.CmdTap, X: x}, true
	case tea.MouseActionMotion:
		return core.Command{Kind: core.CmdDrag, X: x}, true
	}
	return core.Command{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScores
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ", "space":
		return MenuActionSelect
	case "tab":
		return MenuActionScores
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
