package text

import (
	"math"
	"strings"
)

// Line is one positioned line of a layout.
type Line struct {
	// Text is the line's substring, without the trailing newline.
	Text string

	// Glyphs are the shaped glyphs, X positions absolute within the
	// layout (RTL lines are shifted to the right edge).
	Glyphs []Glyph

	// Width is the total advance of the line in pixels.
	Width float64

	// Y is the top of the line within the layout.
	Y float64

	// Baseline is the baseline position within the layout.
	Baseline float64

	// Direction is the line's base direction.
	Direction Direction
}

// Layout is the result of laying out a string: wrapped, positioned lines
// and the bounding size.
type Layout struct {
	Lines  []Line
	Width  float64
	Height float64
}

// LayoutText breaks text into lines no wider than maxWidth and positions
// them. Explicit newlines always break; maxWidth <= 0 or +Inf disables
// wrapping. A word wider than maxWidth occupies its own over-wide line
// rather than being split mid-word.
func LayoutText(face *Face, text string, maxWidth float64) *Layout {
	layout := &Layout{}
	if face == nil {
		return layout
	}

	metrics := face.Metrics()
	lineHeight := metrics.LineHeight
	if lineHeight <= 0 {
		lineHeight = metrics.Ascent + metrics.Descent
	}

	wrap := maxWidth > 0 && !math.IsInf(maxWidth, 1)

	y := 0.0
	for _, paragraph := range strings.Split(text, "\n") {
		var lines []string
		if !wrap {
			lines = []string{paragraph}
		} else {
			lines = wrapParagraph(face, paragraph, maxWidth)
		}

		dir := BaseDirection(paragraph)
		for _, lineText := range lines {
			line := Line{
				Text:      lineText,
				Glyphs:    Shape(face, lineText),
				Y:         y,
				Baseline:  y + metrics.Ascent,
				Direction: dir,
			}
			if n := len(line.Glyphs); n > 0 {
				last := line.Glyphs[n-1]
				line.Width = last.X + last.Advance
			}
			layout.Lines = append(layout.Lines, line)
			layout.Width = math.Max(layout.Width, line.Width)
			y += lineHeight
		}
	}
	layout.Height = y

	// Right-align RTL lines within the layout width.
	for i := range layout.Lines {
		line := &layout.Lines[i]
		if line.Direction != DirectionRTL || line.Width >= layout.Width {
			continue
		}
		shift := layout.Width - line.Width
		for j := range line.Glyphs {
			line.Glyphs[j].X += shift
		}
	}

	return layout
}

// wrapParagraph greedily packs words into lines of at most maxWidth.
func wrapParagraph(face *Face, paragraph string, maxWidth float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{paragraph}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if face.Advance(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}
