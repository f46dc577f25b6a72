package ui

import "fmt"

// Style holds the layout and color constants shared by all widgets.
type Style struct {
	// ItemSpacing is the gap between adjacent widgets. Half of it also
	// enlarges every click target (see Context.Interact).
	ItemSpacing Vec2

	// WindowPadding is the inset between a window frame and its
	// contents.
	WindowPadding Vec2

	// ClipRectMargin is how much content may overdraw its region before
	// being clipped.
	ClipRectMargin float64

	// ResizeInteractRadiusSide is the hit tolerance around window edges,
	// also used as the layer hit-test tolerance.
	ResizeInteractRadiusSide float64

	// LineWidth is the stroke width for checkmarks and similar marks.
	LineWidth float64

	// TextColor is the default text color.
	TextColor RGBA
}

// DefaultStyle returns the built-in dark style.
func DefaultStyle() Style {
	return Style{
		ItemSpacing:              V2(8, 4),
		WindowPadding:            V2(6, 6),
		ClipRectMargin:           3,
		ResizeInteractRadiusSide: 5,
		LineWidth:                2,
		TextColor:                RGBA8(255, 255, 255, 187),
	}
}

// InteractFill returns the background fill for an interactive widget,
// brighter the more engaged it is.
func (s *Style) InteractFill(info InteractInfo) RGBA {
	switch {
	case info.Active:
		return Gray8(136, 255)
	case info.Hovered:
		return Gray8(100, 255)
	default:
		return Gray8(68, 255)
	}
}

// InteractStroke returns the mark/label color for an interactive widget.
func (s *Style) InteractStroke(info InteractInfo) RGBA {
	switch {
	case info.Active:
		return Gray8(255, 255)
	case info.Hovered:
		return Gray8(255, 200)
	default:
		return Gray8(255, 170)
	}
}

// WidgetCmd is one widget described abstractly: geometry, interaction
// state and content, but no colors or primitives. TranslateCmds turns
// these into paint commands, so the visual style lives in exactly one
// place.
type WidgetCmd interface {
	widgetCmd()
}

// ButtonCmd is a push button.
type ButtonCmd struct {
	Interact InteractInfo
	Text     string
}

// CheckboxCmd is a labelled on/off box.
type CheckboxCmd struct {
	Interact InteractInfo
	Checked  bool
	Text     string
}

// RadioButtonCmd is a labelled exclusive-choice circle.
type RadioButtonCmd struct {
	Interact InteractInfo
	Checked  bool
	Text     string
}

// SliderCmd is a labelled horizontal value slider.
type SliderCmd struct {
	Interact InteractInfo
	Label    string
	Value    float64
	Min      float64
	Max      float64
}

// LabelCmd is plain text.
type LabelCmd struct {
	Pos       Point
	Text      string
	TextStyle TextStyle
}

// PaintCmdsCmd passes raw paint commands through untranslated.
type PaintCmdsCmd struct {
	Cmds []PaintCmd
}

func (ButtonCmd) widgetCmd()      {}
func (CheckboxCmd) widgetCmd()    {}
func (RadioButtonCmd) widgetCmd() {}
func (SliderCmd) widgetCmd()      {}
func (LabelCmd) widgetCmd()       {}
func (PaintCmdsCmd) widgetCmd()   {}

// TranslateCmds translates abstract widget commands into concrete paint
// commands using the style's colors and metrics. Text is sized with
// fonts so labels are measured, not guessed.
func TranslateCmds(style *Style, fonts *Fonts, cmds []WidgetCmd) []PaintCmd {
	var out []PaintCmd
	for _, cmd := range cmds {
		out = translateCmd(out, style, fonts, cmd)
	}
	return out
}

func translateCmd(out []PaintCmd, style *Style, fonts *Fonts, cmd WidgetCmd) []PaintCmd {
	switch cmd := cmd.(type) {
	case PaintCmdsCmd:
		return append(out, cmd.Cmds...)

	case ButtonCmd:
		rect := cmd.Interact.Rect
		fill := style.InteractFill(cmd.Interact)
		out = append(out, RectCmd{
			Rect:         rect,
			CornerRadius: 5,
			Fill:         &fill,
		})
		galley := fonts.LayoutSingleLine(TextStyleButton, cmd.Text)
		return append(out, TextCmd{
			Pos:       centerGalley(galley, rect.Center()),
			Galley:    galley,
			TextStyle: TextStyleButton,
			Color:     style.TextColor,
		})

	case CheckboxCmd:
		rect := cmd.Interact.Rect
		fill := style.InteractFill(cmd.Interact)
		stroke := style.InteractStroke(cmd.Interact)

		const boxSide = 16.0
		boxRect := RectFromCenterSize(
			Pt(rect.Min.X+boxSide*0.5, rect.Center().Y),
			V2(boxSide, boxSide),
		)
		out = append(out, RectCmd{
			Rect:         boxRect,
			CornerRadius: 3,
			Fill:         &fill,
		})

		if cmd.Checked {
			// Checkmark inside a smaller centered square.
			mark := RectFromCenterSize(boxRect.Center(), V2(10, 10))
			out = append(out, LineCmd{
				Points: []Point{
					Pt(mark.Min.X, mark.Center().Y),
					Pt(mark.Center().X, mark.Max.Y),
					Pt(mark.Max.X, mark.Min.Y),
				},
				Color: stroke,
				Width: style.LineWidth,
			})
		}

		galley := fonts.LayoutSingleLine(TextStyleBody, cmd.Text)
		return append(out, TextCmd{
			Pos:       Pt(boxRect.Max.X+4, rect.Center().Y-galley.Size.Y/2),
			Galley:    galley,
			TextStyle: TextStyleBody,
			Color:     stroke,
		})

	case RadioButtonCmd:
		rect := cmd.Interact.Rect
		fill := style.InteractFill(cmd.Interact)
		stroke := style.InteractStroke(cmd.Interact)

		const circleRadius = 8.0
		center := Pt(rect.Min.X+circleRadius, rect.Center().Y)
		out = append(out, CircleCmd{
			Center: center,
			Radius: circleRadius,
			Fill:   &fill,
		})

		if cmd.Checked {
			dot := Black
			out = append(out, CircleCmd{
				Center: center,
				Radius: circleRadius * 0.5,
				Fill:   &dot,
			})
		}

		galley := fonts.LayoutSingleLine(TextStyleBody, cmd.Text)
		return append(out, TextCmd{
			Pos:       Pt(rect.Min.X+2*circleRadius+4, rect.Center().Y-galley.Size.Y/2),
			Galley:    galley,
			TextStyle: TextStyleBody,
			Color:     stroke,
		})

	case SliderCmd:
		rect := cmd.Interact.Rect

		// Track in the lower third, marker clamped onto it.
		track := RectFromMinSize(
			Pt(rect.Min.X, Lerp(rect.Min.Y, rect.Max.Y, 2.0/3.0)),
			V2(rect.Width(), 8),
		)
		trackFill := Gray8(34, 255)
		out = append(out, RectCmd{
			Rect:         track,
			CornerRadius: 2,
			Fill:         &trackFill,
		})

		markerX := RemapClamp(cmd.Value, cmd.Min, cmd.Max, rect.Min.X, rect.Max.X)
		markerFill := style.InteractFill(cmd.Interact)
		out = append(out, RectCmd{
			Rect:         RectFromCenterSize(Pt(markerX, track.Center().Y), V2(16, 16)),
			CornerRadius: 3,
			Fill:         &markerFill,
		})

		label := fmt.Sprintf("%s: %.3f", cmd.Label, cmd.Value)
		galley := fonts.LayoutSingleLine(TextStyleBody, label)
		return append(out, TextCmd{
			Pos:       Pt(rect.Min.X, Lerp(rect.Min.Y, rect.Max.Y, 1.0/3.0)-galley.Size.Y/2),
			Galley:    galley,
			TextStyle: TextStyleBody,
			Color:     style.TextColor,
		})

	case LabelCmd:
		galley := fonts.LayoutSingleLine(cmd.TextStyle, cmd.Text)
		return append(out, TextCmd{
			Pos:       cmd.Pos,
			Galley:    galley,
			TextStyle: cmd.TextStyle,
			Color:     style.TextColor,
		})

	default:
		return out
	}
}

// centerGalley returns the top-left position that centers a galley on a
// point.
func centerGalley(g Galley, center Point) Point {
	return Pt(center.X-g.Size.X/2, center.Y-g.Size.Y/2)
}
