package text

// Shaper converts a string into positioned glyphs for a face.
type Shaper interface {
	Shape(face *Face, text string) []Glyph
}

// currentShaper is the package-wide shaper used by Shape and Layout.
// Swapped only via SetShaper, which is expected to happen at startup,
// before frames begin.
var currentShaper Shaper = BuiltinShaper{}

// SetShaper replaces the package shaper. Pass nil to restore the default
// BuiltinShaper.
func SetShaper(s Shaper) {
	if s == nil {
		s = BuiltinShaper{}
	}
	currentShaper = s
}

// Shape runs the current shaper on the text.
func Shape(face *Face, text string) []Glyph {
	return currentShaper.Shape(face, text)
}

// BuiltinShaper measures text with per-rune advances and kerning pairs
// from golang.org/x/image/font. It performs no substitution, so ligatures
// and complex scripts render as isolated glyphs; use HarfBuzzShaper for
// those.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (BuiltinShaper) Shape(face *Face, text string) []Glyph {
	if text == "" || face == nil {
		return nil
	}

	glyphs := make([]Glyph, 0, len(text))
	x := 0.0
	prev := rune(-1)

	for _, r := range text {
		if prev >= 0 {
			x += fixedToFloat(face.xface.Kern(prev, r))
		}
		adv, ok := face.xface.GlyphAdvance(r)
		if !ok {
			// Missing glyph: measure the replacement character instead.
			adv, _ = face.xface.GlyphAdvance('�')
		}
		a := fixedToFloat(adv)
		glyphs = append(glyphs, Glyph{Rune: r, X: x, Advance: a})
		x += a
		prev = r
	}

	return glyphs
}
