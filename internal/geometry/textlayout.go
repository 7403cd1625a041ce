package geometry

import (
	"github.com/drawdeck/drawdeck/internal/element"
)

// PlacedTextRegion is a text region mapped into instance space, with any
// cumulative downward shift applied so stacked regions never overlap.
type PlacedTextRegion struct {
	ShapeIndex int     `json:"shapeIndex"`
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Text       string  `json:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	Align      string  `json:"align,omitempty"`
}

// TextOverflow returns how far a region's estimated rendered text exceeds
// its nominal design-space height, zero when it fits.
func TextOverflow(tr element.TextRegion) float64 {
	overflow := EstimatedTextHeight(tr.Text, tr.FontSize, tr.Width) - tr.Height
	if overflow < 0 {
		return 0
	}
	return overflow
}

// AdjustedTextRegions maps every sub-shape text region of a compound element
// into instance space and shifts each subsequent region downward by the
// accumulated overflow of the regions above it, so stacked sections (e.g. the
// three parts of a classifier box) stay visually separated when text wraps.
func AdjustedTextRegions(el *element.DrawElement) []PlacedTextRegion {
	if len(el.ShapeElements) == 0 {
		return nil
	}

	origin := FromCorners(el.Start.X, el.Start.Y, el.End.X, el.End.Y)
	sx, sy := el.ScaleX(), el.ScaleY()

	var placed []PlacedTextRegion
	var shift float64 // accumulated overflow in design units

	for i, se := range el.ShapeElements {
		for _, tr := range se.TextRegions {
			placed = append(placed, PlacedTextRegion{
				ShapeIndex: i,
				ID:         tr.ID,
				X:          origin.X + tr.X*sx,
				Y:          origin.Y + (tr.Y+shift)*sy,
				Width:      tr.Width * sx,
				Height:     tr.Height * sy,
				Text:       tr.Text,
				FontSize:   tr.FontSize,
				Align:      tr.Align,
			})
			shift += TextOverflow(tr)
		}
	}

	return placed
}

// SelectionBounds returns the combined axis-aligned bounds of a set of
// elements, the union taken over each element's expanded bounds.
func SelectionBounds(els []*element.DrawElement) Rect {
	var result Rect
	first := true

	for _, el := range els {
		b := AxisAlignedBounds(el)
		if first {
			result = b
			first = false
		} else {
			result = result.Union(b)
		}
	}

	return result
}
