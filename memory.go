package ui

// IdSlot is a tagged-optional widget identity, compared by value.
// Interaction ownership is "whichever Id is in the slot", never a
// reference to a widget object.
type IdSlot struct {
	id  Id
	set bool
}

// Set stores an id in the slot.
func (s *IdSlot) Set(id Id) {
	s.id = id
	s.set = true
}

// Clear empties the slot.
func (s *IdSlot) Clear() {
	*s = IdSlot{}
}

// IsSet reports whether the slot holds an id.
func (s IdSlot) IsSet() bool {
	return s.set
}

// Is reports whether the slot holds exactly this id.
func (s IdSlot) Is(id Id) bool {
	return s.set && s.id == id
}

// Get returns the held id, if any.
func (s IdSlot) Get() (Id, bool) {
	return s.id, s.set
}

// Interaction records which widget currently owns an in-progress click or
// drag, plus coarse interest flags recomputed every frame. At most one Id
// may hold ClickID and at most one may hold DragID at any instant.
type Interaction struct {
	// ClickID is the widget being clicked (button held after a press on
	// it), if any.
	ClickID IdSlot

	// DragID is the widget being dragged, if any.
	DragID IdSlot

	// DragIsWindow marks DragID as an ambient window-move placeholder.
	// A newly claimed drag target always preempts such a drag; this is a
	// deliberate special case for window moving, not a general eviction
	// policy.
	DragIsWindow bool

	// ClickInterest and DragInterest report whether anything hovered this
	// frame wanted clicks or drags. Recomputed every frame.
	ClickInterest bool
	DragInterest  bool
}

// beginFrame resets the per-frame interest flags. Ownership is left
// untouched; it is released in endFrame so every interact call within a
// frame observes a consistent owner.
func (i *Interaction) beginFrame() {
	i.ClickInterest = false
	i.DragInterest = false
}

// endFrame releases click and drag ownership once the button is up.
// Running this once per frame, rather than inside interact, keeps
// `active` consistent across multiple probes of the same frame.
func (i *Interaction) endFrame(mouse *MouseState) {
	if !mouse.Down {
		i.ClickID.Clear()
		i.DragID.Clear()
		i.DragIsWindow = false
	}
}

// WindowInteraction records an in-progress window move or resize gesture.
// It lives in Memory so the gesture survives across frames, and is
// cleared when a drag target preempts it.
type WindowInteraction struct {
	Layer    Layer
	StartPos Point
	Resize   bool
}

// Memory is the persistent cross-frame state: interaction ownership, the
// area registry, and per-widget remembered bits such as collapsing-header
// open state. Everything else in the Context is rebuilt every frame.
type Memory struct {
	// Interaction holds click/drag ownership and interest flags.
	Interaction Interaction

	// Areas registers every drawable region and owns the total layer
	// order.
	Areas Areas

	// WindowInteraction is the in-progress window gesture, if any.
	WindowInteraction *WindowInteraction

	// Collapsed remembers the open/closed state of collapsing headers.
	Collapsed map[Id]bool
}

// NewMemory creates an empty memory store.
func NewMemory() *Memory {
	return &Memory{
		Areas:     NewAreas(),
		Collapsed: make(map[Id]bool),
	}
}

// beginFrame runs the start-of-frame bookkeeping: interest flags reset.
func (m *Memory) beginFrame() {
	m.Interaction.beginFrame()
}

// endFrame runs the end-of-frame bookkeeping: ownership release and
// window gesture cleanup.
func (m *Memory) endFrame(input *InputState) {
	m.Interaction.endFrame(&input.Mouse)
	if !input.Mouse.Down {
		m.WindowInteraction = nil
	}
}

// IsCollapsed reports the remembered state of a collapsing header,
// defaulting to open (false) for never-seen ids.
func (m *Memory) IsCollapsed(id Id) bool {
	return m.Collapsed[id]
}

// SetCollapsed records the state of a collapsing header.
func (m *Memory) SetCollapsed(id Id, collapsed bool) {
	m.Collapsed[id] = collapsed
}
