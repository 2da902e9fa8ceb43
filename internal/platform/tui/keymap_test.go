package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Direction
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.DirRight},
		{"a", runeKey('a'), core.DirLeft},
		{"d", runeKey('d'), core.DirRight},
		{"h", runeKey('h'), core.DirLeft},
		{"l", runeKey('l'), core.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := km.MapKey(tt.msg)
			if action != KeyDirection {
				t.Fatalf("action = %v, expected KeyDirection", action)
			}
			if dir != tt.want {
				t.Errorf("direction = %v, expected %v", dir, tt.want)
			}
		})
	}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyAction
	}{
		{"space", runeKey(' '), KeyToggle},
		{"p", runeKey('p'), KeyToggle},
		{"m", runeKey('m'), KeyMute},
		{"q", runeKey('q'), KeyQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, KeyScreenshot},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyBack},
		{"x", runeKey('x'), KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	if !frame.HasDirection || frame.Direction != core.DirLeft {
		t.Errorf("frame should carry DirLeft, got %+v", frame)
	}

	km.MapKeyToFrame(runeKey('p'), &frame)
	if !frame.Has(core.CmdToggle) {
		t.Error("p should push a toggle command")
	}

	km.MapKeyToFrame(runeKey('m'), &frame)
	if len(frame.Commands) != 1 {
		t.Errorf("mute should not reach the game, commands = %v", frame.Commands)
	}
}

func TestMapMouse(t *testing.T) {
	press := tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	cmd, ok := MapMouse(press, 8)
	if !ok || cmd.Kind != core.CmdTap {
		t.Fatalf("left press should tap, got %+v ok=%v", cmd, ok)
	}
	if cmd.X != 84 {
		t.Errorf("tap x = %v, expected cell centre 84", cmd.X)
	}

	motion := tea.MouseMsg{X: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	cmd, ok = MapMouse(motion, 8)
	if !ok || cmd.Kind != core.CmdDrag || cmd.X != 4 {
		t.Errorf("left motion should drag at 4, got %+v ok=%v", cmd, ok)
	}

	release := tea.MouseMsg{X: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if _, ok := MapMouse(release, 8); ok {
		t.Error("release should be ignored")
	}

	right := tea.MouseMsg{X: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if _, ok := MapMouse(right, 8); ok {
		t.Error("right button should be ignored")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('d'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScores},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(60, true); got != time.Second/60 {
		t.Errorf("running interval = %v, expected %v", got, time.Second/60)
	}
	if got := tickInterval(60, false); got != 100*time.Millisecond {
		t.Errorf("idle interval = %v, expected 100ms", got)
	}
	if got := tickInterval(0, true); got != 100*time.Millisecond {
		t.Errorf("invalid fps should fall back to idle, got %v", got)
	}
}
