package ui

import "testing"

func TestInteractionRelease(t *testing.T) {
	var inter Interaction
	inter.ClickID.Set(NewID("a"))
	inter.DragID.Set(NewID("b"))
	inter.DragIsWindow = true

	// Button still down: ownership survives the frame boundary.
	inter.endFrame(&MouseState{Down: true})
	if !inter.ClickID.IsSet() || !inter.DragID.IsSet() {
		t.Error("ownership released while the button was still down")
	}

	inter.endFrame(&MouseState{Down: false})
	if inter.ClickID.IsSet() || inter.DragID.IsSet() || inter.DragIsWindow {
		t.Error("ownership must be released when the button is up")
	}
}

func TestInteractionInterestReset(t *testing.T) {
	var inter Interaction
	inter.ClickInterest = true
	inter.DragInterest = true
	inter.ClickID.Set(NewID("a"))

	inter.beginFrame()
	if inter.ClickInterest || inter.DragInterest {
		t.Error("interest flags must reset every frame")
	}
	if !inter.ClickID.IsSet() {
		t.Error("beginFrame must not touch ownership")
	}
}

func TestMemoryWindowInteractionCleanup(t *testing.T) {
	m := NewMemory()
	m.WindowInteraction = &WindowInteraction{StartPos: Pt(1, 2)}

	down := InputState{Mouse: MouseState{Down: true}}
	m.endFrame(&down)
	if m.WindowInteraction == nil {
		t.Error("window gesture dropped while the button was down")
	}

	up := InputState{}
	m.endFrame(&up)
	if m.WindowInteraction != nil {
		t.Error("window gesture must end with the button")
	}
}

func TestMemoryCollapsed(t *testing.T) {
	m := NewMemory()
	id := NewID("header")

	if m.IsCollapsed(id) {
		t.Error("never-seen headers default to open")
	}
	m.SetCollapsed(id, true)
	if !m.IsCollapsed(id) {
		t.Error("collapsed state not remembered")
	}
}
