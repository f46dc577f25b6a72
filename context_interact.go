package ui

// Sense describes which gestures a widget wants.
type Sense struct {
	Click bool
	Drag  bool
}

// Common senses.
var (
	SenseNothing      = Sense{}
	SenseClick        = Sense{Click: true}
	SenseDrag         = Sense{Drag: true}
	SenseClickAndDrag = Sense{Click: true, Drag: true}
)

// InteractInfo is the outcome of one widget interaction probe.
type InteractInfo struct {
	// Rect is the rectangle that was probed, before hover expansion.
	Rect Rect

	// Hovered reports that the pointer is over the widget on its topmost
	// layer. While a gesture is in progress, only the owning widget
	// reports hover.
	Hovered bool

	// Clicked fires on the frame the button is released over the widget
	// that claimed the press.
	Clicked bool

	// DoubleClicked fires when Clicked completes a double click.
	DoubleClicked bool

	// Active reports that the widget owns the current click or drag.
	Active bool
}

// LayerAt returns the topmost interactable layer at pos, using the
// style's resize interaction radius as hit tolerance so grab handles
// just outside a window still resolve to it.
func (c *Context) LayerAt(pos Point) (Layer, bool) {
	tolerance := c.Style().ResizeInteractRadiusSide
	c.memoryG.lock()
	defer c.memoryG.unlock()
	return c.memory.Areas.LayerAt(pos, tolerance)
}

// ContainsPointer reports whether the pointer is inside rect, clipped to
// clipRect, with layer being the topmost layer at the pointer. A pointer
// over an overlapping higher window never hovers widgets underneath.
func (c *Context) ContainsPointer(layer Layer, clipRect, rect Rect) bool {
	if !c.input.Mouse.Present {
		return false
	}
	pos := c.input.Mouse.Pos
	if !clipRect.Intersect(rect).Contains(pos) {
		return false
	}
	at, ok := c.LayerAt(pos)
	return ok && at == layer
}

// Interact resolves hover, click and drag state for one widget this
// frame. rect is expanded by half the item spacing so the slack between
// adjacent widgets still hovers the nearest one.
//
// A nil id (or SenseNothing) makes this a pure hover probe: no ownership
// or interest state is touched. Otherwise at most one widget may own the
// in-progress click and one the in-progress drag; the first claimant on
// the press frame wins and keeps ownership until the button is released
// in EndFrame. The one exception is a window-move drag, which any real
// drag target preempts.
func (c *Context) Interact(layer Layer, clipRect, rect Rect, id *Id, sense Sense) InteractInfo {
	style := c.Style()
	interactRect := rect.Expand2(style.ItemSpacing.Mul(0.5))
	hovered := c.ContainsPointer(layer, clipRect, interactRect)

	if id == nil || sense == SenseNothing {
		// Pure hover probe. Inactive widgets must not disturb the
		// gesture state machine.
		return InteractInfo{Rect: rect, Hovered: hovered}
	}

	mouse := &c.input.Mouse
	info := InteractInfo{Rect: rect, Hovered: hovered}

	c.memoryG.lock()
	defer c.memoryG.unlock()
	inter := &c.memory.Interaction

	inter.ClickInterest = inter.ClickInterest || (hovered && sense.Click)
	inter.DragInterest = inter.DragInterest || (hovered && sense.Drag)

	info.Active = inter.ClickID.Is(*id) || inter.DragID.Is(*id)

	switch {
	case mouse.Pressed:
		if !hovered {
			return InteractInfo{Rect: rect}
		}
		if sense.Click && !inter.ClickID.IsSet() {
			inter.ClickID.Set(*id)
			info.Active = true
		}
		if sense.Drag && (!inter.DragID.IsSet() || inter.DragIsWindow) {
			// Claiming over a window-move placeholder cancels the
			// window gesture.
			inter.DragID.Set(*id)
			inter.DragIsWindow = false
			c.memory.WindowInteraction = nil
			info.Active = true
		}

	case mouse.Released:
		info.Clicked = hovered && info.Active
		info.DoubleClicked = info.Clicked && mouse.DoubleClick

	case mouse.Down:
		// Mid-gesture: only the owner reads as hovered, so other
		// widgets don't light up while dragging across them.
		info.Hovered = info.Hovered && info.Active
	}

	return info
}
