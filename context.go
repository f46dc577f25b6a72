package ui

import (
	"log/slog"
	"sync"
)

// guard is a non-reentrant exclusive lock for one mutable subsystem.
// Acquiring a guard that is already held is a programming error and
// panics instead of deadlocking; no code path here ever holds two guards
// at once, so cross-subsystem ordering is unconstrained.
type guard struct {
	mu   sync.Mutex
	name string
}

func (g *guard) lock() {
	if !g.mu.TryLock() {
		panic("ui: " + g.name + " already locked (re-entrant access)")
	}
}

func (g *guard) unlock() {
	g.mu.Unlock()
}

// Context holds the input, style and output of all GUI calls made during
// a frame. One Context exists per session; widget code across the whole
// frame shares it.
//
// Each frame is a generation: BeginFrame freezes a new input snapshot and
// clears the per-frame state, and everything mutable during the frame
// (style, memory, paint buffer, output, id registry) sits behind its own
// guard.
type Context struct {
	styleG guard
	style  Style

	paintOptionsG guard
	paintOptions  PaintOptions

	fontDefsG guard
	fontDefs  FontDefinitions

	// fonts is nil until the first BeginFrame, because the proper scale
	// factor is unknown until then.
	fonts *Fonts

	memoryG guard
	memory  *Memory

	// input is the frozen snapshot for the current frame. Replaced
	// wholesale by BeginFrame, never mutated in between.
	input InputState

	graphicsG guard
	graphics  *GraphicLayers

	outputG guard
	output  Output

	usedIDsG guard
	usedIDs  map[Id]Point

	statsG     guard
	paintStats PaintStats

	tessellator Tessellator

	frames uint64
}

// ContextOption configures a Context during creation.
type ContextOption func(*Context)

// WithStyle sets the initial style.
func WithStyle(s Style) ContextOption {
	return func(c *Context) { c.style = s }
}

// WithFontDefinitions sets the initial font definitions. The faces are
// built at the first BeginFrame, once the scale factor is known.
func WithFontDefinitions(d FontDefinitions) ContextOption {
	return func(c *Context) { c.fontDefs = d.clone() }
}

// WithTessellator injects the renderer-side tessellator used by
// Context.Tessellate.
func WithTessellator(t Tessellator) ContextOption {
	return func(c *Context) { c.tessellator = t }
}

// WithPaintOptions sets the initial paint options.
func WithPaintOptions(o PaintOptions) ContextOption {
	return func(c *Context) { c.paintOptions = o }
}

// NewContext creates a session context. Call BeginFrame before anything
// that needs input or fonts.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		style:        DefaultStyle(),
		paintOptions: DefaultPaintOptions(),
		fontDefs:     DefaultFontDefinitions(),
		memory:       NewMemory(),
		graphics:     NewGraphicLayers(),
		usedIDs:      make(map[Id]Point),
	}
	c.styleG.name = "style"
	c.paintOptionsG.name = "paint options"
	c.fontDefsG.name = "font definitions"
	c.memoryG.name = "memory"
	c.graphicsG.name = "graphics"
	c.outputG.name = "output"
	c.usedIDsG.name = "id registry"
	c.statsG.name = "paint stats"

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Style returns a copy of the current style.
func (c *Context) Style() Style {
	c.styleG.lock()
	defer c.styleG.unlock()
	return c.style
}

// SetStyle replaces the style.
func (c *Context) SetStyle(s Style) {
	c.styleG.lock()
	defer c.styleG.unlock()
	c.style = s
}

// PaintOptions returns a copy of the current paint options.
func (c *Context) PaintOptions() PaintOptions {
	c.paintOptionsG.lock()
	defer c.paintOptionsG.unlock()
	return c.paintOptions
}

// SetPaintOptions replaces the paint options.
func (c *Context) SetPaintOptions(o PaintOptions) {
	c.paintOptionsG.lock()
	defer c.paintOptionsG.unlock()
	c.paintOptions = o
}

// Input returns the frozen input snapshot for the current frame.
func (c *Context) Input() *InputState {
	return &c.input
}

// Fonts returns the faces for the current frame.
// Not valid until the first call to BeginFrame, since the scale factor
// is unknown before then; accessing fonts earlier is a programming error.
func (c *Context) Fonts() *Fonts {
	if c.fonts == nil {
		panic("ui: no fonts available until the first call to Context.BeginFrame")
	}
	return c.fonts
}

// SetFontDefinitions replaces the font configuration. The change becomes
// active at the start of the next frame; PixelsPerPoint is overwritten
// each frame from the input snapshot.
func (c *Context) SetFontDefinitions(d FontDefinitions) {
	c.fontDefsG.lock()
	defer c.fontDefsG.unlock()
	c.fontDefs = d.clone()
}

// Memory runs fn with exclusive access to the persistent memory store.
// fn must not call back into any Context method that takes the memory
// guard (Interact, LayerAt, EndFrame); doing so is a programming error
// and panics.
func (c *Context) Memory(fn func(*Memory)) {
	c.memoryG.lock()
	defer c.memoryG.unlock()
	fn(c.memory)
}

// ScreenRect returns the full screen as a rectangle at the origin.
func (c *Context) ScreenRect() Rect {
	return c.input.ScreenRect()
}

// PixelsPerPoint returns the scale factor of the current frame.
func (c *Context) PixelsPerPoint() float64 {
	return c.input.PixelsPerPoint
}

// RoundToPixel rounds a point-space coordinate onto the pixel grid.
// Useful for pixel-perfect strokes.
func (c *Context) RoundToPixel(v float64) float64 {
	ppp := c.PixelsPerPoint()
	if ppp <= 0 {
		return v
	}
	return roundHalfUp(v*ppp) / ppp
}

// RoundPosToPixels rounds a position onto the pixel grid.
func (c *Context) RoundPosToPixels(p Point) Point {
	return Point{X: c.RoundToPixel(p.X), Y: c.RoundToPixel(p.Y)}
}

// RoundRectToPixels rounds a rectangle onto the pixel grid.
func (c *Context) RoundRectToPixels(r Rect) Rect {
	return Rect{Min: c.RoundPosToPixels(r.Min), Max: c.RoundPosToPixels(r.Max)}
}

// Region is a drawable region handed to widget code: a layer, the clip
// rectangle commands should respect, and the rectangle to lay out into.
type Region struct {
	Ctx      *Context
	Layer    Layer
	ClipRect Rect
	Rect     Rect
}

// BeginFrame starts a new frame generation: it derives the next input
// snapshot from the previous one plus raw, clears the id registry and
// the paint buffer, rebuilds fonts if the definitions or scale factor
// changed, and returns a fullscreen background region that is
// pre-registered in the area registry so it receives paint output even
// with no widgets.
//
// After BeginFrame returns, the input snapshot is immutable until the
// next BeginFrame.
func (c *Context) BeginFrame(raw RawInput) Region {
	c.memoryG.lock()
	c.memory.beginFrame()
	c.memoryG.unlock()

	c.usedIDsG.lock()
	clear(c.usedIDs)
	c.usedIDsG.unlock()

	c.graphicsG.lock()
	c.graphics.Reset()
	c.graphicsG.unlock()

	c.statsG.lock()
	c.paintStats = PaintStats{}
	c.statsG.unlock()

	c.input = c.input.beginFrame(raw)
	c.frames++

	c.rebuildFontsIfChanged()

	// Register the background area so it is always painted and
	// hit-testable.
	screen := c.ScreenRect()
	layer := BackgroundLayer()
	c.memoryG.lock()
	c.memory.Areas.SetState(layer, AreaState{
		Pos:          screen.Min,
		Size:         screen.Size(),
		Interactable: true,
	})
	c.memoryG.unlock()

	return Region{Ctx: c, Layer: layer, ClipRect: screen, Rect: screen}
}

// rebuildFontsIfChanged rebuilds the font faces when the definitions or
// the scale factor differ from the ones the current faces were built
// with.
func (c *Context) rebuildFontsIfChanged() {
	c.fontDefsG.lock()
	c.fontDefs.PixelsPerPoint = c.input.PixelsPerPoint
	defs := c.fontDefs.clone()
	c.fontDefsG.unlock()

	if c.fonts != nil && c.fonts.Definitions().Equal(defs) {
		return
	}

	fonts, err := NewFonts(defs)
	if err != nil {
		if c.fonts == nil {
			// No previous fonts to fall back to; this is a broken
			// configuration, not a recoverable state.
			panic("ui: invalid font definitions: " + err.Error())
		}
		Logger().Warn("ui: keeping previous fonts", slog.Any("err", err))
		return
	}
	Logger().Info("ui: fonts rebuilt",
		slog.Float64("pixels_per_point", defs.PixelsPerPoint))
	c.fonts = fonts
}

// EndFrame finishes the frame: it runs the once-per-frame interaction
// bookkeeping (ownership release), takes the accumulated Output
// (resetting it for the next frame), and drains the paint buffer in
// ascending layer order into a flat primitive sequence for the external
// tessellator.
func (c *Context) EndFrame() (Output, []ClippedCmd) {
	c.memoryG.lock()
	c.memory.endFrame(&c.input)
	order := c.memory.Areas.Order()
	c.memoryG.unlock()

	c.outputG.lock()
	out := c.output
	c.output = Output{}
	c.outputG.unlock()

	c.graphicsG.lock()
	cmds := c.graphics.Drain(order)
	c.graphicsG.unlock()

	c.statsG.lock()
	c.paintStats.Primitives = len(cmds)
	c.statsG.unlock()

	Logger().Debug("ui: frame drained",
		slog.Uint64("frame", c.frames),
		slog.Int("primitives", len(cmds)))

	return out, cmds
}

// PaintStats returns the diagnostics of the most recent frame.
// Vertex and triangle counts are filled in only after Tessellate.
func (c *Context) PaintStats() PaintStats {
	c.statsG.lock()
	defer c.statsG.unlock()
	return c.paintStats
}

// SetCursorIcon requests a pointer shape for this frame.
func (c *Context) SetCursorIcon(icon CursorIcon) {
	c.outputG.lock()
	defer c.outputG.unlock()
	c.output.CursorIcon = icon
}

// CopyText requests that text be placed on the clipboard.
func (c *Context) CopyText(s string) {
	c.outputG.lock()
	defer c.outputG.unlock()
	c.output.CopiedText = s
}

// roundHalfUp rounds to the nearest integer, halves away from zero.
func roundHalfUp(v float64) float64 {
	if v < 0 {
		return float64(int64(v - 0.5))
	}
	return float64(int64(v + 0.5))
}
