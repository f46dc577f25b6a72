package ui

import "sort"

// AreaState describes one registered drawable region.
type AreaState struct {
	// Pos is the top-left corner in points.
	Pos Point

	// Size is the extent in points.
	Size Vec2

	// Interactable areas participate in hit-testing; purely decorative
	// layers (tooltips fading out) set this false.
	Interactable bool
}

// Rect returns the area's rectangle.
func (s AreaState) Rect() Rect {
	return RectFromMinSize(s.Pos, s.Size)
}

// Areas registers every drawable region and owns the single total order
// over layers, consulted both for paint draining and for topmost-layer
// hit precedence. Keeping one authority prevents the two orderings from
// drifting apart.
type Areas struct {
	states map[Layer]AreaState

	// seq assigns a monotonically increasing recency number to each
	// layer; MoveToTop bumps it. Within an Order class, higher seq is
	// painted later and hit-tested first.
	seq     map[Layer]uint64
	nextSeq uint64
}

// NewAreas creates an empty registry.
func NewAreas() Areas {
	return Areas{
		states: make(map[Layer]AreaState),
		seq:    make(map[Layer]uint64),
	}
}

// SetState registers or updates an area. First registration places the
// layer on top of its order class.
func (a *Areas) SetState(layer Layer, state AreaState) {
	a.states[layer] = state
	if _, ok := a.seq[layer]; !ok {
		a.nextSeq++
		a.seq[layer] = a.nextSeq
	}
}

// Get returns the registered state of a layer.
func (a *Areas) Get(layer Layer) (AreaState, bool) {
	s, ok := a.states[layer]
	return s, ok
}

// Count returns the number of registered areas.
func (a *Areas) Count() int {
	return len(a.states)
}

// MoveToTop raises a layer above everything else in its order class,
// matching a window being clicked.
func (a *Areas) MoveToTop(layer Layer) {
	if _, ok := a.states[layer]; !ok {
		return
	}
	a.nextSeq++
	a.seq[layer] = a.nextSeq
}

// Order returns the total layer order, bottom-most first: ascending Order
// class, then ascending recency within the class. The result is stable
// for a fixed registration history, which deterministic tests rely on.
func (a *Areas) Order() []Layer {
	order := make([]Layer, 0, len(a.states))
	for layer := range a.states {
		order = append(order, layer)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].Order != order[j].Order {
			return order[i].Order < order[j].Order
		}
		return a.seq[order[i]] < a.seq[order[j]]
	})
	return order
}

// LayerAt returns the topmost interactable layer whose area contains pos,
// expanding each area by tolerance on every side so that window resize
// handles just outside the area still hit it.
func (a *Areas) LayerAt(pos Point, tolerance float64) (Layer, bool) {
	order := a.Order()
	for i := len(order) - 1; i >= 0; i-- {
		layer := order[i]
		state := a.states[layer]
		if !state.Interactable {
			continue
		}
		if state.Rect().Expand(tolerance).Contains(pos) {
			return layer, true
		}
	}
	return Layer{}, false
}
