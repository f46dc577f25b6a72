package ui

import (
	"fmt"
	"log/slog"
)

// idClashThreshold is the distance in points under which two claims of
// the same Id are treated as the same widget re-registering rather than
// a clash.
const idClashThreshold = 4.0

// MakeUniqueID hashes source into an Id, registers the claim at pos and
// returns the Id. See RegisterUniqueID for clash handling.
func (c *Context) MakeUniqueID(source any, pos Point) Id {
	return c.RegisterUniqueID(NewID(source), fmt.Sprintf("%v", source), pos)
}

// RegisterUniqueID records that id was claimed at pos this frame. Two
// claims of one Id at nearly the same position are the same widget
// re-registering and pass silently; claims further apart are a clash
// (two widgets hashed to the same Id) and paint a diagnostic overlay at
// both positions. Clashes never unwind control flow, and since the
// registry resets every frame a persistent clash is reported anew each
// frame. source describes the value that hashed to id, for the overlay
// text.
func (c *Context) RegisterUniqueID(id Id, source string, pos Point) Id {
	c.usedIDsG.lock()
	prev, clashed := c.usedIDs[id]
	if !clashed {
		c.usedIDs[id] = pos
	}
	c.usedIDsG.unlock()

	if !clashed || prev.Distance(pos) < idClashThreshold {
		return id
	}

	c.ShowError(prev, fmt.Sprintf("first use of non-unique ID %v (name clash?) from %s", id, source))
	c.ShowError(pos, fmt.Sprintf("second use of non-unique ID %v (name clash?) from %s", id, source))
	Logger().Warn("ui: non-unique widget ID",
		slog.String("id", id.String()),
		slog.String("source", source))
	return id
}
