package ui

import (
	"fmt"
	"hash/fnv"
)

// Id is an opaque, stable widget identity derived by hashing a
// caller-supplied source value. Because immediate-mode widgets are
// re-declared every frame, interaction ownership is remembered as an Id
// comparison against persistent state rather than as a reference to any
// widget object.
//
// Within one frame an Id should map to at most one screen position;
// Context.RegisterUniqueID detects violations and paints a diagnostic
// overlay instead of failing.
type Id uint64

// NewID derives an Id from any source value. The same source always
// produces the same Id, across frames and across runs, which golden tests
// rely on.
func NewID(source any) Id {
	h := fnv.New64a()
	fmt.Fprintf(h, "%v", source)
	return Id(h.Sum64())
}

// With derives a child Id from this one, for widgets that contain
// sub-widgets (a window's own scrollbar, a slider's handle).
func (id Id) With(child any) Id {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(id >> (8 * i))
	}
	h.Write(buf[:])
	fmt.Fprintf(h, "%v", child)
	return Id(h.Sum64())
}

// BackgroundID is the identity of the fullscreen background region that
// every frame pre-registers so paint output always has a destination.
func BackgroundID() Id {
	return NewID("background")
}

// String returns the Id in hexadecimal, for diagnostics.
func (id Id) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}
