package ui

import "errors"

// ErrNoTessellator is returned by Context.Tessellate when no tessellator
// was injected with WithTessellator.
var ErrNoTessellator = errors.New("ui: no tessellator configured")

// PaintOptions controls how the tessellator turns primitives into
// triangles.
type PaintOptions struct {
	// AntiAlias enables feathered edges.
	AntiAlias bool

	// AASize is the feather width in points. Zero means "one physical
	// pixel"; Context.Tessellate fills it in from the scale factor.
	AASize float64

	// DebugPaintClipRects outlines every clip rectangle.
	DebugPaintClipRects bool
}

// DefaultPaintOptions returns anti-aliased painting.
func DefaultPaintOptions() PaintOptions {
	return PaintOptions{AntiAlias: true}
}

// Batch is one draw call: a clip rectangle and the triangles inside it.
type Batch struct {
	Clip Rect
	Mesh Mesh
}

// Tessellator turns the ordered primitive stream of a frame into
// triangle batches. Implementations live renderer-side; this core only
// defines the contract. fonts provides glyph placement for text
// primitives.
type Tessellator interface {
	Tessellate(opts PaintOptions, fonts *Fonts, cmds []ClippedCmd) []Batch
}

// Tessellate runs the injected tessellator over a drained primitive
// stream and records vertex/triangle counts in the frame's paint stats.
func (c *Context) Tessellate(cmds []ClippedCmd) ([]Batch, error) {
	if c.tessellator == nil {
		return nil, ErrNoTessellator
	}

	opts := c.PaintOptions()
	if opts.AASize <= 0 {
		if ppp := c.PixelsPerPoint(); ppp > 0 {
			opts.AASize = 1.0 / ppp
		} else {
			opts.AASize = 1.0
		}
	}

	batches := c.tessellator.Tessellate(opts, c.Fonts(), cmds)

	vertices, triangles := 0, 0
	for _, b := range batches {
		vertices += len(b.Mesh.Vertices)
		triangles += b.Mesh.TriangleCount()
	}
	c.statsG.lock()
	c.paintStats.Batches = len(batches)
	c.paintStats.Vertices = vertices
	c.paintStats.Triangles = triangles
	c.statsG.unlock()

	return batches, nil
}
