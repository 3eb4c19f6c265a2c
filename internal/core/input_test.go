package core

import "testing"

func TestInputFrameMoveOrder(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Move(); ok {
		t.Error("empty frame should have no move")
	}

	f.Set(ActionRight)
	f.Set(ActionUp)
	f.Set(ActionRestart)

	got, ok := f.Move()
	if !ok || got != ActionUp {
		t.Errorf("Move() = (%v, %v), expected (Up, true)", got, ok)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should remove actions")
	}
	if _, ok := f.Move(); ok {
		t.Error("cleared frame should have no move")
	}
}

func TestActionString(t *testing.T) {
	if ActionHelp.String() != "Help" || ActionHint.String() != "Hint" || Action(99).String() != "Unknown" {
		t.Errorf("unexpected names: %s, %s", ActionHelp, Action(99))
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}
