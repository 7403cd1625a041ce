package element

// ToolboxItem is one palette entry. The palette configuration is a JSON list
// of these, consumed only when an item is dropped onto the canvas to seed a
// new element; it is not part of the runtime editing state.
type ToolboxItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Group         string         `json:"group"`
	Type          Type           `json:"type"`
	Width         float64        `json:"width"`
	Height        float64        `json:"height"`
	IconSVG       string         `json:"iconSvg,omitempty"`
	IconName      string         `json:"iconName,omitempty"`
	Shape         string         `json:"shape,omitempty"`
	ShapeElements []ShapeElement `json:"shapeElements,omitempty"`
	Complex       bool           `json:"complex,omitempty"`
	Unified       bool           `json:"unified,omitempty"`
}

// NewFromToolbox creates a placed element from a palette item, centered at
// the drop point with the item's intrinsic size.
func NewFromToolbox(item ToolboxItem, at Point) *DrawElement {
	t := item.Type
	if !KnownType(t) {
		t = TypeCustom
	}

	w, h := item.Width, item.Height
	if w <= 0 {
		w = 48
	}
	if h <= 0 {
		h = 48
	}

	el := &DrawElement{
		ID:      NewID(t),
		Type:    t,
		Start:   Point{X: at.X - w/2, Y: at.Y - h/2},
		End:     Point{X: at.X + w/2, Y: at.Y + h/2},
		Width:   w,
		Height:  h,
		Shape:   item.Shape,
		Complex: item.Complex,
		Unified: item.Unified,
	}

	if len(item.ShapeElements) > 0 {
		el.ShapeElements = make([]ShapeElement, len(item.ShapeElements))
		for i, se := range item.ShapeElements {
			el.ShapeElements[i] = se.clone()
		}
	}

	return el
}
