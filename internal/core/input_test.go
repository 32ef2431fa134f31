package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)

	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Frame should report actions that were set")
	}
	if f.Has(ActionDown) {
		t.Error("Frame should not report actions that were not set")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestInputFrameDirectionsKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Set(ActionDown)
	f.Set(ActionLeft)

	dirs := f.Directions()
	expected := []Action{ActionLeft, ActionDown, ActionLeft}
	if len(dirs) != len(expected) {
		t.Fatalf("Directions() returned %d actions, expected %d", len(dirs), len(expected))
	}
	for i := range expected {
		if dirs[i] != expected[i] {
			t.Errorf("Directions()[%d] = %v, expected %v", i, dirs[i], expected[i])
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionUp)

	f.Clear()

	if f.Has(ActionRight) || f.Has(ActionUp) || len(f.Presses) != 0 {
		t.Error("Clear should remove all actions and presses")
	}
	if len(f.Directions()) != 0 {
		t.Error("Directions() should be empty after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionLeft, "Left"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
