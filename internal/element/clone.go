package element

// Clone returns a deep copy of the element, including nested sub-shapes,
// primitives and text regions. Mutating the copy never aliases the original.
func (el *DrawElement) Clone() *DrawElement {
	out := *el

	if el.Styles != nil {
		s := *el.Styles
		out.Styles = &s
	}
	if el.LabelOffset != nil {
		o := *el.LabelOffset
		out.LabelOffset = &o
	}

	if el.ShapeElements != nil {
		out.ShapeElements = make([]ShapeElement, len(el.ShapeElements))
		for i, se := range el.ShapeElements {
			out.ShapeElements[i] = se.clone()
		}
	}

	return &out
}

func (se ShapeElement) clone() ShapeElement {
	out := se

	if se.Style != nil {
		s := *se.Style
		out.Style = &s
	}

	if se.Primitives != nil {
		out.Primitives = make([]Primitive, len(se.Primitives))
		for i, p := range se.Primitives {
			out.Primitives[i] = p
			if p.Points != nil {
				pts := make([]Point, len(p.Points))
				copy(pts, p.Points)
				out.Primitives[i].Points = pts
			}
		}
	}

	if se.TextRegions != nil {
		out.TextRegions = make([]TextRegion, len(se.TextRegions))
		copy(out.TextRegions, se.TextRegions)
	}

	return out
}

// CloneList deep-copies a whole element list. The session manager and history
// stack use this so that flushed or snapshotted state never aliases the live
// array.
func CloneList(els []*DrawElement) []*DrawElement {
	out := make([]*DrawElement, len(els))
	for i, el := range els {
		out[i] = el.Clone()
	}
	return out
}
