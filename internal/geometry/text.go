package geometry

import "math"

const (
	defaultFontSize = 12

	// Character-count heuristics for estimating rendered text size without a
	// font renderer: average glyph width as a fraction of the font size, and
	// line height as a multiple of it.
	glyphWidthFactor = 0.6
	lineHeightFactor = 1.4
)

// EstimatedTextHeight estimates the rendered height of text wrapped into a
// region of the given design-space width.
func EstimatedTextHeight(text string, fontSize, width float64) float64 {
	if text == "" {
		return 0
	}
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}

	charsPerLine := math.Floor(width / (fontSize * glyphWidthFactor))
	if charsPerLine < 1 {
		charsPerLine = 1
	}

	lines := math.Ceil(float64(len([]rune(text))) / charsPerLine)
	return lines * fontSize * lineHeightFactor
}
