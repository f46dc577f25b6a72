package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// HarfBuzzShaper provides full OpenType shaping via go-text/typesetting:
// ligatures, kerning, contextual alternates, right-to-left scripts.
//
// It is an opt-in replacement for BuiltinShaper:
//
//	text.SetShaper(text.NewHarfBuzzShaper())
//
// HarfBuzzShaper caches parsed font.Font objects (thread-safe) per
// FontSource and pools shaping.HarfbuzzShaper instances, which are not
// safe for concurrent use.
type HarfBuzzShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewHarfBuzzShaper creates a HarfBuzzShaper.
func NewHarfBuzzShaper() *HarfBuzzShaper {
	return &HarfBuzzShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
func (s *HarfBuzzShaper) Shape(face *Face, text string) []Glyph {
	if text == "" || face == nil {
		return nil
	}

	goFont, err := s.fontFor(face.Source())
	if err != nil {
		// Unparseable by go-text: fall back to advance shaping so the UI
		// still renders something measurable.
		return BuiltinShaper{}.Shape(face, text)
	}

	runes := []rune(text)
	dir := di.DirectionLTR
	if BaseDirection(text) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(goFont),
		Size:      floatToFixed(face.Size()),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(runes, output.Glyphs)
}

// ClearCache drops all cached parsed fonts.
func (s *HarfBuzzShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// fontFor returns the cached go-text font for a source, parsing on first
// use. font.Font is read-only and safe to share; font.Face is not, so a
// fresh Face wraps it per Shape call.
func (s *HarfBuzzShaper) fontFor(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = goFace.Font
	return goFace.Font, nil
}

// scriptOf returns the script of the first non-space rune, defaulting to
// Latin. Mixed-script runs should be split before shaping.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs flattens go-text output glyphs into positioned Glyphs.
func convertGlyphs(runes []rune, glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(glyphs))
	x := 0.0
	for i, g := range glyphs {
		r := rune(0)
		if idx := g.TextIndex(); idx >= 0 && idx < len(runes) {
			r = runes[idx]
		}
		adv := fixedToFloat(g.Advance)
		result[i] = Glyph{
			Rune:    r,
			X:       x + fixedToFloat(g.XOffset),
			Advance: adv,
		}
		x += adv
	}
	return result
}
