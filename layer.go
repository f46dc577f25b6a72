package ui

// Order is the z-class of a layer. Layers are painted in ascending Order;
// within the same Order, area recency decides (see Areas.Order).
type Order uint8

// Order constants, bottom to top.
const (
	// OrderBackground is the fullscreen backdrop behind all windows.
	OrderBackground Order = iota

	// OrderMiddle holds ordinary windows and floating areas.
	OrderMiddle

	// OrderForeground holds elements above all windows (menus, tooltips).
	OrderForeground

	// OrderDebug is reserved for diagnostic overlays and is always
	// painted last.
	OrderDebug
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case OrderBackground:
		return "Background"
	case OrderMiddle:
		return "Middle"
	case OrderForeground:
		return "Foreground"
	case OrderDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// Layer is an ordering key grouping paint commands and disambiguating
// which drawable region owns a screen point. The total order over layers
// (Areas.Order) is the single authority consulted both when draining
// paint commands and when resolving the topmost layer under the pointer.
type Layer struct {
	Order Order
	ID    Id
}

// BackgroundLayer returns the layer of the fullscreen background region.
func BackgroundLayer() Layer {
	return Layer{Order: OrderBackground, ID: BackgroundID()}
}

// DebugLayer returns the reserved diagnostics layer.
func DebugLayer() Layer {
	return Layer{Order: OrderDebug, ID: NewID("debug")}
}

// ClippedCmd is one paint command together with the clip rectangle that
// was active when it was pushed. Commands are never mutated after being
// pushed.
type ClippedCmd struct {
	Clip Rect
	Cmd  PaintCmd
}

// GraphicLayers accumulates paint commands per layer during a frame,
// preserving insertion order within each layer. It is drained once per
// frame in EndFrame and never persists across frames.
type GraphicLayers struct {
	layers map[Layer][]ClippedCmd
}

// NewGraphicLayers creates an empty paint command buffer.
func NewGraphicLayers() *GraphicLayers {
	return &GraphicLayers{layers: make(map[Layer][]ClippedCmd)}
}

// Push appends a command to the given layer's list, in call order.
func (g *GraphicLayers) Push(layer Layer, clip Rect, cmd PaintCmd) {
	g.layers[layer] = append(g.layers[layer], ClippedCmd{Clip: clip, Cmd: cmd})
}

// Len returns the total number of buffered commands across all layers.
func (g *GraphicLayers) Len() int {
	n := 0
	for _, cmds := range g.layers {
		n += len(cmds)
	}
	return n
}

// Drain consumes the buffer in the caller-supplied total layer order and
// returns a flat command sequence. Within a layer, insertion order is
// preserved; layers listed in order but holding no commands contribute
// nothing; the reserved debug layer is always drained last whether or not
// it appears in order. Draining an empty buffer yields an empty sequence.
func (g *GraphicLayers) Drain(order []Layer) []ClippedCmd {
	var out []ClippedCmd
	debug := DebugLayer()
	for _, layer := range order {
		if layer == debug {
			continue
		}
		if cmds, ok := g.layers[layer]; ok {
			out = append(out, cmds...)
			delete(g.layers, layer)
		}
	}
	if cmds, ok := g.layers[debug]; ok {
		out = append(out, cmds...)
		delete(g.layers, debug)
	}
	return out
}

// Reset discards all buffered commands.
func (g *GraphicLayers) Reset() {
	clear(g.layers)
}
