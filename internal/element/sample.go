package element

// NewSampleDrawing returns a small document with a few placed elements.
// Used by the wasm playground so a fresh shell has something on the canvas.
func NewSampleDrawing(docID string) *Document {
	doc := NewDocument(docID, "Untitled")

	box := &DrawElement{
		ID:     NewID(TypeCustom),
		Type:   TypeCustom,
		Start:  Point{X: 120, Y: 100},
		End:    Point{X: 280, Y: 200},
		Width:  160,
		Height: 100,
		ShapeElements: []ShapeElement{
			{
				ID: "body",
				Primitives: []Primitive{
					{Kind: PrimitiveRect, X: 0, Y: 0, Width: 160, Height: 100},
				},
				TextRegions: []TextRegion{
					{ID: "title", X: 8, Y: 8, Width: 144, Height: 24, Text: "Service", FontSize: 14, Align: "center"},
				},
			},
		},
	}

	icon := &DrawElement{
		ID:     NewID(TypeIcon),
		Type:   TypeIcon,
		Start:  Point{X: 420, Y: 120},
		End:    Point{X: 468, Y: 168},
		Width:  48,
		Height: 48,
		Shape:  "database",
	}

	connector := &DrawElement{
		ID:    NewID(TypeLine),
		Type:  TypeLine,
		Start: Point{X: 280, Y: 150},
		End:   Point{X: 420, Y: 144},
	}

	label := &DrawElement{
		ID:    NewID(TypeText),
		Type:  TypeText,
		Start: Point{X: 310, Y: 120},
		End:   Point{X: 390, Y: 140},
		Text:  "reads",
	}

	doc.Elements = []*DrawElement{box, icon, connector, label}
	return doc
}
