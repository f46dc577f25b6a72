package text

import "golang.org/x/text/unicode/bidi"

// Direction is a base text direction.
type Direction uint8

// Direction constants.
const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// BaseDirection returns the paragraph base direction of the text,
// resolved by the Unicode bidirectional algorithm. Neutral-only text
// reads as left-to-right.
func BaseDirection(text string) Direction {
	if text == "" {
		return DirectionLTR
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return DirectionLTR
	}
	if p.IsLeftToRight() {
		return DirectionLTR
	}
	return DirectionRTL
}
