package editor

import (
	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/geometry"
)

// dragTick applies one uniform translation delta, computed from the primary
// dragged element's movement, to every selected element. Per-element deltas
// would shear a multi-selection apart.
func (e *Editor) dragTick(pt element.Point) {
	dx := pt.X - e.g.anchor.X
	dy := pt.Y - e.g.anchor.Y

	e.pushHistoryOnce()
	e.replace(func(el *element.DrawElement) *element.DrawElement {
		orig, ok := e.g.originals[el.ID]
		if !ok {
			return el
		}
		c := el.Clone()
		c.Start = element.Point{X: orig.start.X + dx, Y: orig.start.Y + dy}
		c.End = element.Point{X: orig.end.X + dx, Y: orig.end.Y + dy}
		return c
	})
}

// dragSubShapeTick translates one independently selected sub-shape of a
// complex element in design space, leaving the element's box untouched.
func (e *Editor) dragSubShapeTick(pt element.Point) {
	el := e.find(e.g.target)
	if el == nil || e.g.subOriginal == nil || e.g.subIndex >= len(el.ShapeElements) {
		return
	}

	// Instance-space delta back to design units via the element's scale.
	dx := (pt.X - e.g.anchor.X) / el.ScaleX()
	dy := (pt.Y - e.g.anchor.Y) / el.ScaleY()

	moved := e.g.subOriginal.Translated(dx, dy)

	e.pushHistoryOnce()
	e.replace(func(cur *element.DrawElement) *element.DrawElement {
		if cur.ID != e.g.target {
			return cur
		}
		c := cur.Clone()
		c.ShapeElements[e.g.subIndex] = moved
		return c
	})
}

// resizeTick recomputes the target's box from the dragged corner, holding the
// opposite corner fixed. Crossing zero on an axis toggles the mirror flag and
// swaps the coordinates back to a non-negative box: mirrored content must
// render reflected, not negatively scaled, which would also flip strokes.
func (e *Editor) resizeTick(pt element.Point) {
	el := e.find(e.g.target)
	if el == nil {
		return
	}
	orig, ok := e.g.originals[e.g.target]
	if !ok {
		return
	}

	origEl := &element.DrawElement{Start: orig.start, End: orig.end}
	fixed := cornerPoint(origEl, opposite(e.g.handle))
	moving := cornerPoint(origEl, e.g.handle)

	w := pt.X - fixed.X
	h := pt.Y - fixed.Y

	// Degenerate box: ignore this tick entirely.
	if abs(w) < minElementSize || abs(h) < minElementSize {
		return
	}

	crossedX := (w < 0) != (moving.X-fixed.X < 0)
	crossedY := (h < 0) != (moving.Y-fixed.Y < 0)

	e.pushHistoryOnce()
	e.replace(func(cur *element.DrawElement) *element.DrawElement {
		if cur.ID != e.g.target {
			return cur
		}
		c := cur.Clone()
		box := geometry.FromCorners(fixed.X, fixed.Y, pt.X, pt.Y)
		c.Start = element.Point{X: box.X, Y: box.Y}
		c.End = element.Point{X: box.X + box.Width, Y: box.Y + box.Height}
		c.MirrorX = orig.mirrorX != crossedX
		c.MirrorY = orig.mirrorY != crossedY
		return c
	})
}

// resolveAreaSelection computes the rubber-band rectangle from the two
// extreme pointer points and selects every element whose on-screen footprint
// intersects it; for rotated elements that is the rotated bounds, so the band
// picks up what the user actually sees. The multi modifier unions with the
// prior selection.
func (e *Editor) resolveAreaSelection() {
	band := geometry.FromCorners(e.g.anchor.X, e.g.anchor.Y, e.g.last.X, e.g.last.Y)

	var hits []string
	for _, el := range e.elements {
		if geometry.RotatedBounds(el).Intersects(band) {
			hits = append(hits, el.ID)
		}
	}

	if !e.g.mods.Multi {
		e.selection = hits
		return
	}

	for _, id := range hits {
		if !e.isSelected(id) {
			e.selection = append(e.selection, id)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
