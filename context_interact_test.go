package ui

import "testing"

func mouseRaw(pos Point, down bool, time float64) RawInput {
	return RawInput{
		MouseDown:      down,
		MousePos:       pos,
		MousePresent:   true,
		ScreenSize:     V2(800, 600),
		PixelsPerPoint: 1,
		Time:           time,
	}
}

// widgetRect is comfortably inside the screen and larger than the hover
// expansion so the tests are not sensitive to item spacing.
var widgetRect = RectFromMinSize(Pt(100, 100), V2(80, 30))

func TestClickLifecycle(t *testing.T) {
	ctx := NewContext()
	id := NewID("button")
	inside := widgetRect.Center()

	// Hover only.
	region := ctx.BeginFrame(mouseRaw(inside, false, 0.1))
	info := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
	if !info.Hovered || info.Active || info.Clicked {
		t.Errorf("hover frame: %+v", info)
	}
	ctx.EndFrame()

	// Press edge claims the click.
	region = ctx.BeginFrame(mouseRaw(inside, true, 0.2))
	info = ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
	if !info.Active || info.Clicked {
		t.Errorf("press frame: %+v", info)
	}
	ctx.EndFrame()

	// Release over the widget completes the click.
	region = ctx.BeginFrame(mouseRaw(inside, false, 0.3))
	info = ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
	if !info.Clicked || !info.Active {
		t.Errorf("release frame: %+v", info)
	}
	ctx.EndFrame()

	// Ownership is gone the frame after the release.
	region = ctx.BeginFrame(mouseRaw(inside, false, 0.4))
	info = ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
	if info.Active || info.Clicked {
		t.Errorf("idle frame after release: %+v", info)
	}
	ctx.EndFrame()
}

func TestSecondClaimantStaysInactive(t *testing.T) {
	ctx := NewContext()
	first := NewID("first")
	second := NewID("second")
	inside := widgetRect.Center()

	region := ctx.BeginFrame(mouseRaw(inside, true, 0.1))
	a := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &first, SenseClick)
	b := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &second, SenseClick)
	if !a.Active {
		t.Errorf("first claimant: %+v", a)
	}
	if b.Active {
		t.Errorf("second claimant must not steal the click: %+v", b)
	}

	ctx.Memory(func(m *Memory) {
		if !m.Interaction.ClickID.Is(first) {
			t.Error("click ownership changed")
		}
	})
	ctx.EndFrame()
}

func TestReleaseOverOtherWidgetDoesNotClick(t *testing.T) {
	ctx := NewContext()
	id := NewID("button")
	inside := widgetRect.Center()
	elsewhere := Pt(400, 400)

	region := ctx.BeginFrame(mouseRaw(inside, true, 0.1))
	ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
	ctx.EndFrame()

	// Drag off the widget, then release: no click.
	region = ctx.BeginFrame(mouseRaw(elsewhere, false, 0.2))
	info := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
	if info.Clicked {
		t.Errorf("release away from widget clicked: %+v", info)
	}
	ctx.EndFrame()
}

func TestHoverProbeIsPure(t *testing.T) {
	ctx := NewContext()
	inside := widgetRect.Center()

	region := ctx.BeginFrame(mouseRaw(inside, true, 0.1))
	info := ctx.Interact(region.Layer, region.ClipRect, widgetRect, nil, SenseClick)
	if !info.Hovered || info.Active || info.Clicked {
		t.Errorf("nil-id probe: %+v", info)
	}
	id := NewID("x")
	ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseNothing)

	ctx.Memory(func(m *Memory) {
		inter := m.Interaction
		if inter.ClickID.IsSet() || inter.DragID.IsSet() {
			t.Error("hover probe claimed ownership")
		}
		if inter.ClickInterest || inter.DragInterest {
			t.Error("hover probe registered interest")
		}
	})
	ctx.EndFrame()
}

func TestHeldDownOnlyOwnerHovers(t *testing.T) {
	ctx := NewContext()
	owner := NewID("owner")
	other := NewID("other")
	otherRect := RectFromMinSize(Pt(300, 100), V2(80, 30))

	region := ctx.BeginFrame(mouseRaw(widgetRect.Center(), true, 0.1))
	ctx.Interact(region.Layer, region.ClipRect, widgetRect, &owner, SenseDrag)
	ctx.EndFrame()

	// Drag across the other widget while the button is held.
	region = ctx.BeginFrame(mouseRaw(otherRect.Center(), true, 0.2))
	info := ctx.Interact(region.Layer, region.ClipRect, otherRect, &other, SenseDrag)
	if info.Hovered || info.Active {
		t.Errorf("non-owner mid-drag: %+v", info)
	}
	ctx.EndFrame()
}

func TestWindowDragPreemption(t *testing.T) {
	ctx := NewContext()
	windowID := NewID("window")
	slider := NewID("slider")
	inside := widgetRect.Center()

	region := ctx.BeginFrame(mouseRaw(inside, true, 0.1))
	// Window-handling code claims an ambient window-move drag on the
	// press edge, before widgets get to interact.
	ctx.Memory(func(m *Memory) {
		m.Interaction.DragID.Set(windowID)
		m.Interaction.DragIsWindow = true
		m.WindowInteraction = &WindowInteraction{StartPos: inside}
	})

	info := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &slider, SenseDrag)
	if !info.Active {
		t.Errorf("drag target must preempt a window move: %+v", info)
	}
	ctx.Memory(func(m *Memory) {
		if !m.Interaction.DragID.Is(slider) {
			t.Error("drag ownership not transferred")
		}
		if m.Interaction.DragIsWindow {
			t.Error("window flag must clear on preemption")
		}
		if m.WindowInteraction != nil {
			t.Error("window gesture must be cancelled")
		}
	})
	ctx.EndFrame()
}

func TestRealDragOwnerIsNotPreempted(t *testing.T) {
	ctx := NewContext()
	first := NewID("first")
	second := NewID("second")
	inside := widgetRect.Center()

	region := ctx.BeginFrame(mouseRaw(inside, true, 0.1))
	a := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &first, SenseDrag)
	b := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &second, SenseDrag)
	if !a.Active || b.Active {
		t.Errorf("a=%+v b=%+v", a, b)
	}
	ctx.Memory(func(m *Memory) {
		if !m.Interaction.DragID.Is(first) {
			t.Error("ordinary drag ownership must not be preempted")
		}
	})
	ctx.EndFrame()
}

func TestInterestFlags(t *testing.T) {
	ctx := NewContext()
	id := NewID("button")

	region := ctx.BeginFrame(mouseRaw(widgetRect.Center(), false, 0.1))
	ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClickAndDrag)
	ctx.Memory(func(m *Memory) {
		if !m.Interaction.ClickInterest || !m.Interaction.DragInterest {
			t.Error("hovering a click+drag widget must raise both interests")
		}
	})
	ctx.EndFrame()

	// Pointer away: interest resets next frame.
	region = ctx.BeginFrame(mouseRaw(Pt(400, 400), false, 0.2))
	ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClickAndDrag)
	ctx.Memory(func(m *Memory) {
		if m.Interaction.ClickInterest || m.Interaction.DragInterest {
			t.Error("interest must reset once the pointer leaves")
		}
	})
	ctx.EndFrame()
}

func TestTopmostLayerWinsHover(t *testing.T) {
	ctx := NewContext()
	id := NewID("button")
	window := Layer{Order: OrderMiddle, ID: NewID("win")}
	inside := widgetRect.Center()

	region := ctx.BeginFrame(mouseRaw(inside, false, 0.1))
	// A window overlapping the widget sits above the background layer.
	ctx.Memory(func(m *Memory) {
		m.Areas.SetState(window, AreaState{
			Pos:          widgetRect.Min,
			Size:         widgetRect.Size(),
			Interactable: true,
		})
	})

	info := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
	if info.Hovered {
		t.Errorf("widget under a window must not hover: %+v", info)
	}

	onWindow := ctx.Interact(window, region.ClipRect, widgetRect, &id, SenseClick)
	if !onWindow.Hovered {
		t.Errorf("widget on the topmost layer must hover: %+v", onWindow)
	}
	ctx.EndFrame()
}

func TestDoubleClickInteract(t *testing.T) {
	ctx := NewContext()
	id := NewID("button")
	inside := widgetRect.Center()

	press := func(time float64) {
		region := ctx.BeginFrame(mouseRaw(inside, true, time))
		ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
		ctx.EndFrame()
	}
	release := func(time float64) InteractInfo {
		region := ctx.BeginFrame(mouseRaw(inside, false, time))
		info := ctx.Interact(region.Layer, region.ClipRect, widgetRect, &id, SenseClick)
		ctx.EndFrame()
		return info
	}

	press(0.10)
	if info := release(0.15); !info.Clicked || info.DoubleClicked {
		t.Errorf("first click: %+v", info)
	}
	press(0.20)
	if info := release(0.25); !info.Clicked || !info.DoubleClicked {
		t.Errorf("second click: %+v", info)
	}
}
