package ui

// AddPaintCmd pushes a command to a layer with no clipping.
func (c *Context) AddPaintCmd(layer Layer, cmd PaintCmd) {
	c.AddClippedCmd(layer, RectEverything(), cmd)
}

// AddClippedCmd pushes a command to a layer with an explicit clip
// rectangle.
func (c *Context) AddClippedCmd(layer Layer, clip Rect, cmd PaintCmd) {
	c.graphicsG.lock()
	defer c.graphicsG.unlock()
	c.graphics.Push(layer, clip, cmd)
}

// AddGalley paints an already laid-out galley at pos, defaulting to the
// style's text color when color is transparent.
func (c *Context) AddGalley(layer Layer, clip Rect, pos Point, galley Galley, style TextStyle, color RGBA) {
	if color == Transparent {
		color = c.Style().TextColor
	}
	c.AddClippedCmd(layer, clip, TextCmd{
		Pos:       pos,
		Galley:    galley,
		TextStyle: style,
		Color:     color,
	})
}

// FloatingText lays out text and paints it at pos, outside any widget
// layout. Returns the size of the painted text.
func (c *Context) FloatingText(layer Layer, pos Point, text string, style TextStyle, color RGBA) Vec2 {
	galley := c.Fonts().LayoutSingleLine(style, text)
	c.AddGalley(layer, RectEverything(), pos, galley, style, color)
	return galley.Size
}

// ShowError paints an error overlay at pos on the debug layer: monospace
// red text on a dark backdrop with a red outline. Used for developer
// diagnostics such as Id clashes; always painted last, never raised as
// an error.
func (c *Context) ShowError(pos Point, text string) {
	galley := c.Fonts().LayoutSingleLine(TextStyleMonospace, text)
	rect := RectFromMinSize(pos, galley.Size).Expand(2)
	fill := Gray8(0, 240)
	layer := DebugLayer()
	c.AddPaintCmd(layer, RectCmd{
		Rect:         rect,
		CornerRadius: 0,
		Fill:         &fill,
		Outline:      &LineStyle{Width: 1, Color: Red},
	})
	c.AddGalley(layer, RectEverything(), pos, galley, TextStyleMonospace, Red)
}

// DebugText paints yellow diagnostic text at pos on the debug layer.
func (c *Context) DebugText(pos Point, text string) {
	c.FloatingText(DebugLayer(), pos, text, TextStyleMonospace, Yellow)
}

// DebugRect paints a rectangle outline with a label on the debug layer.
func (c *Context) DebugRect(rect Rect, name string) {
	layer := DebugLayer()
	c.AddPaintCmd(layer, RectCmd{
		Rect:    rect,
		Outline: &LineStyle{Width: 1, Color: RGB(1, 0.4, 0.4)},
	})
	c.FloatingText(layer, rect.Min, name, TextStyleMonospace, RGB(1, 0.4, 0.4))
}
