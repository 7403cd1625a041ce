package editor

import (
	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/geometry"
)

// SetRegionText updates the text of one sub-shape text region as one
// undoable gesture. For unified elements the sub-shapes are then re-locked
// to a single shared width wide enough for the longest text.
func (e *Editor) SetRegionText(elementID, regionID, text string) {
	el := e.find(elementID)
	if el == nil {
		return
	}

	e.hist.Push(e.elements)
	e.replace(func(cur *element.DrawElement) *element.DrawElement {
		if cur.ID != elementID {
			return cur
		}
		c := cur.Clone()
		for si := range c.ShapeElements {
			for ri := range c.ShapeElements[si].TextRegions {
				if c.ShapeElements[si].TextRegions[ri].ID == regionID {
					c.ShapeElements[si].TextRegions[ri].Text = text
				}
			}
		}
		if c.Unified {
			unifyWidths(c)
		}
		return c
	})
}

// unifyWidths forces every sub-shape of a unified element onto one common
// width: the widest of the current rect primitives and the width each text
// region needs to fit its content on one line. The element's intrinsic width
// follows so the scale factor stays meaningful.
func unifyWidths(el *element.DrawElement) {
	const textPadding = 8.0

	var common float64
	for _, se := range el.ShapeElements {
		for _, p := range se.Primitives {
			if p.Kind == element.PrimitiveRect && p.Width > common {
				common = p.Width
			}
		}
		for _, tr := range se.TextRegions {
			fontSize := tr.FontSize
			if fontSize <= 0 {
				fontSize = 12
			}
			need := float64(len([]rune(tr.Text)))*fontSize*0.6 + textPadding
			if need > common {
				common = need
			}
		}
	}
	if common <= 0 {
		return
	}

	for si := range el.ShapeElements {
		se := &el.ShapeElements[si]
		for pi := range se.Primitives {
			if se.Primitives[pi].Kind == element.PrimitiveRect {
				se.Primitives[pi].Width = common
			}
		}
		for ri := range se.TextRegions {
			se.TextRegions[ri].Width = common - textPadding
		}
	}

	if el.Width > 0 {
		el.End.X = el.Start.X + common*el.ScaleX()
	} else {
		el.End.X = el.Start.X + common
	}
	el.Width = common
}

// AdjustedTextRegions exposes the compound-element text layout for the host
// renderer.
func (e *Editor) AdjustedTextRegions(elementID string) []geometry.PlacedTextRegion {
	el := e.find(elementID)
	if el == nil {
		return nil
	}
	return geometry.AdjustedTextRegions(el)
}
