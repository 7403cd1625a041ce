package element

// Point is a position in canvas (instance) space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Offset is a relative displacement, used for user-dragged label anchors.
type Offset struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Type classifies a placed element and determines how its geometry maps to
// bounds at creation time.
type Type string

const (
	TypeLine   Type = "line"
	TypeLines  Type = "lines"
	TypeIcon   Type = "icon"
	TypeText   Type = "text"
	TypeCustom Type = "custom"
)

// KnownType reports whether t is one of the closed set of element types.
func KnownType(t Type) bool {
	switch t {
	case TypeLine, TypeLines, TypeIcon, TypeText, TypeCustom:
		return true
	}
	return false
}

// Style overrides an element's toolbox-authored appearance. A nil *Style on
// the element means "inherit the original appearance", which is distinct from
// a zero-valued override.
type Style struct {
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Dash        string  `json:"dash,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
}

// PrimitiveKind is the closed set of vector primitives a sub-shape may carry.
type PrimitiveKind string

const (
	PrimitiveRect     PrimitiveKind = "rect"
	PrimitiveCircle   PrimitiveKind = "circle"
	PrimitiveEllipse  PrimitiveKind = "ellipse"
	PrimitiveLine     PrimitiveKind = "line"
	PrimitivePolyline PrimitiveKind = "polyline"
	PrimitivePolygon  PrimitiveKind = "polygon"
)

// Primitive is one vector primitive in design space. Which fields are
// meaningful depends on Kind: rects use X/Y/Width/Height, circles CX/CY/R,
// ellipses CX/CY/RX/RY, lines X1/Y1/X2/Y2, polylines and polygons Points.
type Primitive struct {
	Kind PrimitiveKind `json:"kind"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
	R  float64 `json:"r,omitempty"`
	RX float64 `json:"rx,omitempty"`
	RY float64 `json:"ry,omitempty"`

	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	Points []Point `json:"points,omitempty"`
}

// TextRegion is an editable text area inside a sub-shape, positioned in the
// element's design space.
type TextRegion struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
	Align    string  `json:"align,omitempty"`
}

// ShapeElement is one sub-shape of a compound element. The first sub-shape of
// a complex element always controls the whole element; later sub-shapes may be
// selected and manipulated independently.
type ShapeElement struct {
	ID          string       `json:"id"`
	Primitives  []Primitive  `json:"primitives,omitempty"`
	TextRegions []TextRegion `json:"textRegions,omitempty"`
	Style       *Style       `json:"style,omitempty"`
}

// DrawElement is one placed diagram object.
//
// Start and End span the element's design-space diagonal before rotation;
// the placed box is always the axis-aligned rectangle between them. Width and
// Height are the intrinsic design size (for example 48x48) used to derive the
// scale factors applied to decorative content, deliberately decoupled from
// End-Start so content can be stretched independent of its authored aspect.
type DrawElement struct {
	ID       string  `json:"id"`
	Type     Type    `json:"type"`
	Start    Point   `json:"start"`
	End      Point   `json:"end"`
	Rotation float64 `json:"rotation,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`

	Styles *Style `json:"styles,omitempty"`

	// Shape is the legacy single-shape payload; ShapeElements supersedes it
	// when present.
	Shape         string         `json:"shape,omitempty"`
	ShapeElements []ShapeElement `json:"shapeElements,omitempty"`

	Text string `json:"text,omitempty"`

	MirrorX bool `json:"mirrorX,omitempty"`
	MirrorY bool `json:"mirrorY,omitempty"`

	LabelOffset *Offset `json:"labelOffset,omitempty"`

	// Complex allows independent drag/resize of individual sub-shapes
	// (except the first, which controls the whole element). Unified keeps
	// all sub-shapes in lockstep, sharing one width.
	Complex bool `json:"complex,omitempty"`
	Unified bool `json:"unified,omitempty"`

	// OriginalID is set only on clipboard snapshots, recording the source
	// element for traceability. It is stripped on paste.
	OriginalID string `json:"originalId,omitempty"`
}

// BoundsWidth returns the placed box width |End.X - Start.X|.
func (el *DrawElement) BoundsWidth() float64 {
	return abs(el.End.X - el.Start.X)
}

// BoundsHeight returns the placed box height |End.Y - Start.Y|.
func (el *DrawElement) BoundsHeight() float64 {
	return abs(el.End.Y - el.Start.Y)
}

// ScaleX returns the horizontal factor mapping design space to instance
// space. Falls back to 1 when the intrinsic width is missing.
func (el *DrawElement) ScaleX() float64 {
	if el.Width == 0 {
		return 1
	}
	return el.BoundsWidth() / el.Width
}

// ScaleY returns the vertical design-to-instance factor, 1 when the
// intrinsic height is missing.
func (el *DrawElement) ScaleY() float64 {
	if el.Height == 0 {
		return 1
	}
	return el.BoundsHeight() / el.Height
}

// Center returns the center of the placed box.
func (el *DrawElement) Center() Point {
	return Point{
		X: (el.Start.X + el.End.X) / 2,
		Y: (el.Start.Y + el.End.Y) / 2,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Document is one independent drawing (a tab). Exactly one document is active
// at a time; the session manager refuses to close the last remaining one.
type Document struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Elements           []*DrawElement `json:"elements"`
	GridVisible        bool           `json:"gridVisible"`
	BackgroundColor    string         `json:"backgroundColor"`
	SelectedElementIDs []string       `json:"selectedElementIds,omitempty"`
}

// NewDocument creates an empty document with default grid and background.
func NewDocument(id, name string) *Document {
	return &Document{
		ID:              id,
		Name:            name,
		Elements:        []*DrawElement{},
		GridVisible:     true,
		BackgroundColor: "#ffffff",
	}
}
