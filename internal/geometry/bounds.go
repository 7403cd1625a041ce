package geometry

import (
	"github.com/drawdeck/drawdeck/internal/element"
)

// AxisAlignedBounds computes the placed bounding box of an element before
// rotation. The nominal box is the normalized rect between Start and End;
// for custom elements it is expanded to the true extent of the vector
// content when primitives protrude past the nominal size, and for any
// element it is expanded by text regions whose estimated rendered height
// overflows their nominal box.
func AxisAlignedBounds(el *element.DrawElement) Rect {
	bounds := FromCorners(el.Start.X, el.Start.Y, el.End.X, el.End.Y)

	if el.Type == element.TypeCustom {
		if ext, ok := contentExtent(el); ok {
			bounds = bounds.Union(ext)
		}
	}

	for _, se := range el.ShapeElements {
		for _, tr := range se.TextRegions {
			overflow := TextOverflow(tr)
			if overflow <= 0 {
				continue
			}
			r := textRegionRect(el, tr)
			r.Height += overflow * el.ScaleY()
			bounds = bounds.Union(r)
		}
	}

	return bounds
}

// contentExtent returns the instance-space extent of the element's vector
// primitives, scaled by the same factors as the decorative content. ok is
// false when the element has no primitives to measure.
func contentExtent(el *element.DrawElement) (Rect, bool) {
	ext := Rect{}
	found := false

	origin := FromCorners(el.Start.X, el.Start.Y, el.End.X, el.End.Y)
	sx, sy := el.ScaleX(), el.ScaleY()

	for _, se := range el.ShapeElements {
		for _, p := range se.Primitives {
			r, ok := PrimitiveExtent(p)
			if !ok {
				continue
			}
			placed := Rect{
				X:      origin.X + r.X*sx,
				Y:      origin.Y + r.Y*sy,
				Width:  r.Width * sx,
				Height: r.Height * sy,
			}
			if !found {
				ext = placed
				found = true
			} else {
				ext = ext.Union(placed)
			}
		}
	}

	return ext, found
}

// PrimitiveExtent returns the design-space bounding box of one vector
// primitive. ok is false for degenerate primitives (e.g. an empty polygon).
func PrimitiveExtent(p element.Primitive) (Rect, bool) {
	switch p.Kind {
	case element.PrimitiveRect:
		return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}, true

	case element.PrimitiveCircle:
		return Rect{X: p.CX - p.R, Y: p.CY - p.R, Width: 2 * p.R, Height: 2 * p.R}, true

	case element.PrimitiveEllipse:
		return Rect{X: p.CX - p.RX, Y: p.CY - p.RY, Width: 2 * p.RX, Height: 2 * p.RY}, true

	case element.PrimitiveLine:
		return FromCorners(p.X1, p.Y1, p.X2, p.Y2), true

	case element.PrimitivePolyline, element.PrimitivePolygon:
		if len(p.Points) == 0 {
			return Rect{}, false
		}
		minX, maxX := p.Points[0].X, p.Points[0].X
		minY, maxY := p.Points[0].Y, p.Points[0].Y
		for _, pt := range p.Points[1:] {
			minX = min(minX, pt.X)
			maxX = max(maxX, pt.X)
			minY = min(minY, pt.Y)
			maxY = max(maxY, pt.Y)
		}
		return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
	}

	return Rect{}, false
}

// SubShapeBounds returns the instance-space bounding box of one sub-shape of
// a compound element, used for independent sub-shape selection handles.
func SubShapeBounds(el *element.DrawElement, index int) Rect {
	if index < 0 || index >= len(el.ShapeElements) {
		return Rect{}
	}

	origin := FromCorners(el.Start.X, el.Start.Y, el.End.X, el.End.Y)
	sx, sy := el.ScaleX(), el.ScaleY()

	ext := Rect{}
	found := false
	for _, p := range el.ShapeElements[index].Primitives {
		r, ok := PrimitiveExtent(p)
		if !ok {
			continue
		}
		placed := Rect{
			X:      origin.X + r.X*sx,
			Y:      origin.Y + r.Y*sy,
			Width:  r.Width * sx,
			Height: r.Height * sy,
		}
		if !found {
			ext = placed
			found = true
		} else {
			ext = ext.Union(placed)
		}
	}

	if !found {
		return origin
	}
	return ext
}

// textRegionRect maps a design-space text region into instance space.
func textRegionRect(el *element.DrawElement, tr element.TextRegion) Rect {
	origin := FromCorners(el.Start.X, el.Start.Y, el.End.X, el.End.Y)
	sx, sy := el.ScaleX(), el.ScaleY()
	return Rect{
		X:      origin.X + tr.X*sx,
		Y:      origin.Y + tr.Y*sy,
		Width:  tr.Width * sx,
		Height: tr.Height * sy,
	}
}
