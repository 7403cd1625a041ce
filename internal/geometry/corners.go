package geometry

import (
	"github.com/drawdeck/drawdeck/internal/element"
)

// Corners holds the four corners of an element's bounding box after rotation
// about its center, plus the center itself. Order: top-left, top-right,
// bottom-right, bottom-left of the unrotated box. Used for hit testing,
// resize-handle placement, and outline rendering of rotated elements.
type Corners struct {
	TopLeft     element.Point `json:"topLeft"`
	TopRight    element.Point `json:"topRight"`
	BottomRight element.Point `json:"bottomRight"`
	BottomLeft  element.Point `json:"bottomLeft"`
	Center      element.Point `json:"center"`
}

// RotatedCorners rotates the four corners of the element's axis-aligned
// bounds about its center by the element's rotation in degrees. With zero
// rotation the corners are the unrotated box.
func RotatedCorners(el *element.DrawElement) Corners {
	bounds := AxisAlignedBounds(el)
	cx, cy := bounds.Center()
	center := element.Point{X: cx, Y: cy}

	m := RotateAbout(el.Rotation, cx, cy)
	if m.IsIdentity() {
		return Corners{
			TopLeft:     element.Point{X: bounds.X, Y: bounds.Y},
			TopRight:    element.Point{X: bounds.X + bounds.Width, Y: bounds.Y},
			BottomRight: element.Point{X: bounds.X + bounds.Width, Y: bounds.Y + bounds.Height},
			BottomLeft:  element.Point{X: bounds.X, Y: bounds.Y + bounds.Height},
			Center:      center,
		}
	}

	return Corners{
		TopLeft:     transform(m, bounds.X, bounds.Y),
		TopRight:    transform(m, bounds.X+bounds.Width, bounds.Y),
		BottomRight: transform(m, bounds.X+bounds.Width, bounds.Y+bounds.Height),
		BottomLeft:  transform(m, bounds.X, bounds.Y+bounds.Height),
		Center:      center,
	}
}

// RotatedBounds returns the axis-aligned footprint the element occupies on
// screen: its expanded bounds mapped through the rotation. For an unrotated
// element this is AxisAlignedBounds.
func RotatedBounds(el *element.DrawElement) Rect {
	bounds := AxisAlignedBounds(el)
	if el.Rotation == 0 {
		return bounds
	}
	cx, cy := bounds.Center()
	return RotateAbout(el.Rotation, cx, cy).TransformRect(bounds)
}

// HitTest reports whether a design-space point falls inside the element. For
// rotated elements the point is mapped through the inverse of the element's
// rotation before the axis-aligned containment test.
func HitTest(el *element.DrawElement, x, y float64) bool {
	bounds := AxisAlignedBounds(el)
	if el.Rotation == 0 {
		return bounds.Contains(x, y)
	}

	cx, cy := bounds.Center()
	px, py := RotateAbout(el.Rotation, cx, cy).Invert().TransformPoint(x, y)
	return bounds.Contains(px, py)
}

// ElementTransform returns the transform a renderer applies to the element's
// content: the mirror reflection about the box center (when either mirror
// flag is set) composed with the element's rotation. Mirrored content renders
// reflected rather than negatively sized, so strokes keep their direction.
func ElementTransform(el *element.DrawElement) Matrix2D {
	bounds := AxisAlignedBounds(el)
	cx, cy := bounds.Center()

	m := RotateAbout(el.Rotation, cx, cy)

	sx, sy := 1.0, 1.0
	if el.MirrorX {
		sx = -1
	}
	if el.MirrorY {
		sy = -1
	}
	if sx != 1 || sy != 1 {
		m = m.Multiply(ScaleAbout(sx, sy, cx, cy))
	}

	return m
}

func transform(m Matrix2D, x, y float64) element.Point {
	tx, ty := m.TransformPoint(x, y)
	return element.Point{X: tx, Y: ty}
}
