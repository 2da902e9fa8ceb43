package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.SetDirection(DirLeft)
	f.Push(CmdTap, 42)
	f.Push(CmdToggle, 0)

	if !f.HasDirection || f.Direction != DirLeft {
		t.Errorf("direction = %v, expected left", f.Direction)
	}
	if !f.Has(CmdTap) || !f.Has(CmdToggle) || f.Has(CmdDrag) {
		t.Error("Has() reports wrong commands")
	}
	if f.Commands[0].X != 42 {
		t.Errorf("tap x = %v, expected 42", f.Commands[0].X)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
	if len(clone.Commands) != 2 || clone.Direction != DirLeft {
		t.Error("clone should be unaffected by Clear")
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	if q.Drain() != nil {
		t.Error("empty queue should drain to nil")
	}

	q.Emit(SoundBounce)
	q.Emit(SoundLevelComplete)
	if q.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 || got[0] != SoundBounce || got[1] != SoundLevelComplete {
		t.Errorf("Drain() = %v", got)
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}
}
