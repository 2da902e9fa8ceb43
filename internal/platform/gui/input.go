package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// mousePointer is the pointer id of the mouse; touches use their own ids.
const mousePointer = -1

// pointerSample is one pointer that is down this frame.
type pointerSample struct {
	id      int
	x       float64
	pressed bool // went down this frame
}

// deviceState is the polled keyboard and pointer state of one frame.
type deviceState struct {
	left, right bool
	toggle      bool
	pointers    []pointerSample
}

// inputTracker turns polled device state into input frames. A window has
// real key-up events, so the direction follows the held keys exactly.
type inputTracker struct {
	dir   core.Direction
	lastX map[int]float64
}

func newInputTracker() *inputTracker {
	return &inputTracker{lastX: make(map[int]float64)}
}

// frame builds the input frame for one update.
func (t *inputTracker) frame(st deviceState) core.InputFrame {
	f := core.NewInputFrame()

	dir := core.DirNone
	switch {
	case st.left && !st.right:
		dir = core.DirLeft
	case st.right && !st.left:
		dir = core.DirRight
	}
	if dir != t.dir {
		f.SetDirection(dir)
		t.dir = dir
	}

	if st.toggle {
		f.Push(core.CmdToggle, 0)
	}

	seen := make(map[int]bool, len(st.pointers))
	for _, p := range st.pointers {
		seen[p.id] = true
		last, known := t.lastX[p.id]
		switch {
		case p.pressed || !known:
			f.Push(core.CmdTap, p.x)
		case p.x != last:
			f.Push(core.CmdDrag, p.x)
		}
		t.lastX[p.id] = p.x
	}
	for id := range t.lastX {
		if !seen[id] {
			delete(t.lastX, id)
		}
	}

	return f
}

// pollDevices reads the ebiten input state.
func pollDevices() deviceState {
	st := deviceState{
		left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		toggle: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		st.pointers = append(st.pointers, pointerSample{
			id:      mousePointer,
			x:       float64(x),
			pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		})
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		st.pointers = append(st.pointers, pointerSample{
			id:      int(id),
			x:       float64(x),
			pressed: inpututil.TouchPressDuration(id) == 1,
		})
	}

	return st
}
