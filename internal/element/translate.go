package element

// Translated returns a deep copy of the sub-shape with every primitive and
// text region shifted by (dx, dy) in design space.
func (se ShapeElement) Translated(dx, dy float64) ShapeElement {
	out := se.clone()

	for i := range out.Primitives {
		p := &out.Primitives[i]
		switch p.Kind {
		case PrimitiveRect:
			p.X += dx
			p.Y += dy
		case PrimitiveCircle, PrimitiveEllipse:
			p.CX += dx
			p.CY += dy
		case PrimitiveLine:
			p.X1 += dx
			p.Y1 += dy
			p.X2 += dx
			p.Y2 += dy
		case PrimitivePolyline, PrimitivePolygon:
			for j := range p.Points {
				p.Points[j].X += dx
				p.Points[j].Y += dy
			}
		}
	}

	for i := range out.TextRegions {
		out.TextRegions[i].X += dx
		out.TextRegions[i].Y += dy
	}

	return out
}
