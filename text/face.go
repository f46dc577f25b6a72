package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics describes a face's vertical extents in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line,
	// as a positive number.
	Descent float64

	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float64
}

// Glyph is one positioned glyph within a shaped run.
// X is relative to the run origin; rendering adds the line and galley
// offsets.
type Glyph struct {
	// Rune is the character this glyph (or its cluster) represents.
	Rune rune

	// X is the pen position of the glyph within the run, in pixels.
	X float64

	// Advance is the horizontal advance of the glyph, in pixels.
	Advance float64
}

// Face is a FontSource at a specific pixel size.
// Face is not safe for concurrent use; the ui core accesses it from the
// single frame-controlling goroutine.
type Face struct {
	source *FontSource
	size   float64
	xface  font.Face
}

// NewFace creates a face at the given pixel size.
func (s *FontSource) NewFace(size float64) (*Face, error) {
	xf, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // size is already in pixels
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	return &Face{source: s, size: size, xface: xf}, nil
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the face's pixel size.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the face's vertical metrics in pixels.
func (f *Face) Metrics() Metrics {
	m := f.xface.Metrics()
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}
}

// Advance returns the total advance width of the text in pixels, using
// the current shaper.
func (f *Face) Advance(text string) float64 {
	glyphs := Shape(f, text)
	if len(glyphs) == 0 {
		return 0
	}
	last := glyphs[len(glyphs)-1]
	return last.X + last.Advance
}

// fixedToFloat converts a fixed.Int26_6 value to float64 pixels.
// The fixed-point representation uses 6 fractional bits.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts float64 pixels to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
