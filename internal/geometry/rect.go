package geometry

// Rect is an axis-aligned bounding box in canvas space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains checks if a point is inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether the two rects overlap. This is the rubber-band
// selection test: an element is selected iff its bounds intersect the band.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X+r.Width < other.X ||
		r.X > other.X+other.Width ||
		r.Y+r.Height < other.Y ||
		r.Y > other.Y+other.Height)
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Center returns the center point of the rect.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// FromCorners builds the normalized rect spanned by two arbitrary corner
// points, in any order.
func FromCorners(x1, y1, x2, y2 float64) Rect {
	minX := min(x1, x2)
	minY := min(y1, y2)
	return Rect{
		X:      minX,
		Y:      minY,
		Width:  max(x1, x2) - minX,
		Height: max(y1, y2) - minY,
	}
}
