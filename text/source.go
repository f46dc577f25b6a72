package text

import (
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is parsed font data. Parse once, derive faces at any size.
type FontSource struct {
	data []byte
	font *sfnt.Font
}

// NewFontSource parses TTF or OTF font data.
func NewFontSource(data []byte) (*FontSource, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &FontSource{data: data, font: f}, nil
}

// Data returns the raw font bytes the source was parsed from.
func (s *FontSource) Data() []byte {
	return s.data
}
