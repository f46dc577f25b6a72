package ui

import (
	"bytes"
	"fmt"
	"math"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ui/text"
)

// TextStyle selects one of the configured fonts.
type TextStyle uint8

// Text style constants.
const (
	TextStyleBody TextStyle = iota
	TextStyleButton
	TextStyleHeading
	TextStyleMonospace
)

// String returns a human-readable name for the text style.
func (s TextStyle) String() string {
	switch s {
	case TextStyleBody:
		return "Body"
	case TextStyleButton:
		return "Button"
	case TextStyleHeading:
		return "Heading"
	case TextStyleMonospace:
		return "Monospace"
	default:
		return "Unknown"
	}
}

// FontDef is one font configuration: raw TTF data and a size in points.
type FontDef struct {
	TTF  []byte
	Size float64
}

// FontDefinitions configures every text style. PixelsPerPoint is filled
// in from the input snapshot at BeginFrame; faces are built at
// Size * PixelsPerPoint pixels.
type FontDefinitions struct {
	PixelsPerPoint float64
	Fonts          map[TextStyle]FontDef
}

// DefaultFontDefinitions returns the built-in Go fonts at UI sizes.
func DefaultFontDefinitions() FontDefinitions {
	return FontDefinitions{
		Fonts: map[TextStyle]FontDef{
			TextStyleBody:      {TTF: goregular.TTF, Size: 14},
			TextStyleButton:    {TTF: goregular.TTF, Size: 14},
			TextStyleHeading:   {TTF: goregular.TTF, Size: 24},
			TextStyleMonospace: {TTF: gomono.TTF, Size: 13},
		},
	}
}

// Equal reports whether two definitions would build identical faces.
func (d FontDefinitions) Equal(o FontDefinitions) bool {
	if d.PixelsPerPoint != o.PixelsPerPoint || len(d.Fonts) != len(o.Fonts) {
		return false
	}
	for style, def := range d.Fonts {
		other, ok := o.Fonts[style]
		if !ok || def.Size != other.Size || !bytes.Equal(def.TTF, other.TTF) {
			return false
		}
	}
	return true
}

// clone returns a deep-enough copy: the map is copied, the TTF data is
// shared (it is never mutated).
func (d FontDefinitions) clone() FontDefinitions {
	fonts := make(map[TextStyle]FontDef, len(d.Fonts))
	for style, def := range d.Fonts {
		fonts[style] = def
	}
	return FontDefinitions{PixelsPerPoint: d.PixelsPerPoint, Fonts: fonts}
}

// GalleyLine is one positioned line of a galley.
type GalleyLine = text.Line

// Galley is text laid out and measured, ready to be painted at any
// position. Glyph placement inside the galley is relative to its
// top-left corner.
type Galley struct {
	Text  string
	Size  Vec2
	Lines []GalleyLine
}

// Fonts maps text styles to faces at the current scale factor. It is
// rebuilt by BeginFrame only when the definitions or the scale factor
// changed, and is immutable in between.
type Fonts struct {
	defs  FontDefinitions
	faces map[TextStyle]*text.Face
}

// NewFonts builds faces for every configured style.
func NewFonts(defs FontDefinitions) (*Fonts, error) {
	ppp := defs.PixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}

	// Parse each distinct font data once; styles often share a font.
	sources := make(map[*byte]*text.FontSource)
	faces := make(map[TextStyle]*text.Face, len(defs.Fonts))
	for style, def := range defs.Fonts {
		if len(def.TTF) == 0 {
			return nil, fmt.Errorf("ui: font definition for %v has no data", style)
		}
		key := &def.TTF[0]
		source, ok := sources[key]
		if !ok {
			var err error
			source, err = text.NewFontSource(def.TTF)
			if err != nil {
				return nil, fmt.Errorf("ui: font for %v: %w", style, err)
			}
			sources[key] = source
		}
		face, err := source.NewFace(def.Size * ppp)
		if err != nil {
			return nil, fmt.Errorf("ui: face for %v: %w", style, err)
		}
		faces[style] = face
	}

	return &Fonts{defs: defs.clone(), faces: faces}, nil
}

// Definitions returns the definitions the fonts were built from.
func (f *Fonts) Definitions() FontDefinitions {
	return f.defs
}

// Face returns the face for a style, falling back to Body for styles
// that were not configured.
func (f *Fonts) Face(style TextStyle) *text.Face {
	if face, ok := f.faces[style]; ok {
		return face
	}
	return f.faces[TextStyleBody]
}

// Layout lays the text out in the style's face, wrapped at wrapWidth
// pixels (use math.Inf(1) or 0 for no wrapping), and returns the
// measured galley.
func (f *Fonts) Layout(style TextStyle, s string, wrapWidth float64) Galley {
	face := f.Face(style)
	layout := text.LayoutText(face, s, wrapWidth)
	return Galley{
		Text:  s,
		Size:  V2(layout.Width, layout.Height),
		Lines: layout.Lines,
	}
}

// LayoutSingleLine lays the text out without wrapping.
func (f *Fonts) LayoutSingleLine(style TextStyle, s string) Galley {
	return f.Layout(style, s, math.Inf(1))
}
