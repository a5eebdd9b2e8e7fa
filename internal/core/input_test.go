package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("fresh frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)

	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Set actions not reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("Has reports an action that was never set")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionPause) {
		t.Error("Clear did not reset the frame")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// The zero frame is usable: Has is false, Set allocates lazily.
	var f InputFrame

	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame did not register")
	}
}
