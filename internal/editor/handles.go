package editor

import (
	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/geometry"
)

// Handle identifies one manipulation handle on a selected element.
type Handle string

const (
	HandleNone        Handle = ""
	HandleTopLeft     Handle = "topLeft"
	HandleTopRight    Handle = "topRight"
	HandleBottomRight Handle = "bottomRight"
	HandleBottomLeft  Handle = "bottomLeft"
	HandleRotate      Handle = "rotate"
)

const (
	// handleHitRadius is the design-space pick distance for handles.
	handleHitRadius = 8.0
	// rotateHandleOffset lifts the rotation handle above the top edge.
	rotateHandleOffset = 20.0
)

// HandlePositions returns the design-space positions of the four corner
// handles and the rotation handle for an element, following the rotated
// corners when the element is rotated.
func HandlePositions(el *element.DrawElement) map[Handle]element.Point {
	c := geometry.RotatedCorners(el)

	// Rotation handle sits above the top edge midpoint, rotated with it.
	m := geometry.RotateAbout(el.Rotation, c.Center.X, c.Center.Y)
	bounds := geometry.AxisAlignedBounds(el)
	rx, ry := m.TransformPoint(bounds.X+bounds.Width/2, bounds.Y-rotateHandleOffset)

	return map[Handle]element.Point{
		HandleTopLeft:     c.TopLeft,
		HandleTopRight:    c.TopRight,
		HandleBottomRight: c.BottomRight,
		HandleBottomLeft:  c.BottomLeft,
		HandleRotate:      {X: rx, Y: ry},
	}
}

// handleAt finds which handle of any selected element the point hits, if any.
func (e *Editor) handleAt(pt element.Point) (string, Handle) {
	for _, el := range e.SelectedElements() {
		for h, pos := range HandlePositions(el) {
			dx := pt.X - pos.X
			dy := pt.Y - pos.Y
			if dx*dx+dy*dy <= handleHitRadius*handleHitRadius {
				return el.ID, h
			}
		}
	}
	return "", HandleNone
}

// opposite returns the handle diagonally across the box.
func opposite(h Handle) Handle {
	switch h {
	case HandleTopLeft:
		return HandleBottomRight
	case HandleTopRight:
		return HandleBottomLeft
	case HandleBottomRight:
		return HandleTopLeft
	case HandleBottomLeft:
		return HandleTopRight
	}
	return HandleNone
}

// cornerPoint returns the unrotated corner of the element's normalized box
// for a corner handle.
func cornerPoint(el *element.DrawElement, h Handle) element.Point {
	b := geometry.FromCorners(el.Start.X, el.Start.Y, el.End.X, el.End.Y)
	switch h {
	case HandleTopLeft:
		return element.Point{X: b.X, Y: b.Y}
	case HandleTopRight:
		return element.Point{X: b.X + b.Width, Y: b.Y}
	case HandleBottomRight:
		return element.Point{X: b.X + b.Width, Y: b.Y + b.Height}
	case HandleBottomLeft:
		return element.Point{X: b.X, Y: b.Y + b.Height}
	}
	return el.Start
}
