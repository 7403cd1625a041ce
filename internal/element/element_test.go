package element

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	orig := &DrawElement{
		ID:     "custom-1-abc",
		Type:   TypeCustom,
		Start:  Point{X: 0, Y: 0},
		End:    Point{X: 48, Y: 48},
		Styles: &Style{Fill: "#ff0000"},
		ShapeElements: []ShapeElement{
			{
				ID: "body",
				Primitives: []Primitive{
					{Kind: PrimitiveRect, X: 0, Y: 0, Width: 48, Height: 48},
					{Kind: PrimitivePolygon, Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 10}}},
				},
				TextRegions: []TextRegion{{ID: "label", Text: "hello"}},
			},
		},
		LabelOffset: &Offset{DX: 4, DY: 4},
	}

	c := orig.Clone()

	c.Start.X = 99
	c.Styles.Fill = "#00ff00"
	c.LabelOffset.DX = 42
	c.ShapeElements[0].Primitives[0].Width = 1
	c.ShapeElements[0].Primitives[1].Points[0].X = 77
	c.ShapeElements[0].TextRegions[0].Text = "changed"

	if orig.Start.X != 0 {
		t.Error("clone aliased Start")
	}
	if orig.Styles.Fill != "#ff0000" {
		t.Error("clone aliased Styles")
	}
	if orig.LabelOffset.DX != 4 {
		t.Error("clone aliased LabelOffset")
	}
	if orig.ShapeElements[0].Primitives[0].Width != 48 {
		t.Error("clone aliased primitives")
	}
	if orig.ShapeElements[0].Primitives[1].Points[0].X != 0 {
		t.Error("clone aliased polygon points")
	}
	if orig.ShapeElements[0].TextRegions[0].Text != "hello" {
		t.Error("clone aliased text regions")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		el      *DrawElement
		wantErr error
	}{
		{
			name: "valid icon",
			el:   &DrawElement{ID: "icon-1-a", Type: TypeIcon, Shape: "box"},
		},
		{
			name: "valid text without shape",
			el:   &DrawElement{ID: "text-1-a", Type: TypeText, Text: "hi"},
		},
		{
			name:    "missing id",
			el:      &DrawElement{Type: TypeLine},
			wantErr: ErrMissingID,
		},
		{
			name:    "unknown type",
			el:      &DrawElement{ID: "x-1-a", Type: "blob"},
			wantErr: ErrUnknownType,
		},
		{
			name:    "non-finite coordinate",
			el:      &DrawElement{ID: "line-1-a", Type: TypeLine, End: Point{X: math.NaN()}},
			wantErr: ErrNonFinitePoint,
		},
		{
			name:    "icon without shape payload",
			el:      &DrawElement{ID: "icon-1-a", Type: TypeIcon},
			wantErr: ErrMissingShape,
		},
		{
			name: "custom with shapeElements only",
			el: &DrawElement{ID: "custom-1-a", Type: TypeCustom, ShapeElements: []ShapeElement{
				{Primitives: []Primitive{{Kind: PrimitiveRect, Width: 10, Height: 10}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.el.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	a := NewID(TypeIcon)
	b := NewID(TypeIcon)

	if !strings.HasPrefix(a, "icon-") {
		t.Errorf("id %q missing type prefix", a)
	}
	if a == b {
		t.Error("two generated ids collided")
	}
}

func TestNewFromToolbox(t *testing.T) {
	item := ToolboxItem{
		ID:    "aws-rds",
		Name:  "RDS",
		Type:  TypeIcon,
		Width: 64, Height: 32,
		Shape: "database",
	}

	el := NewFromToolbox(item, Point{X: 100, Y: 200})

	if el.Start.X != 68 || el.Start.Y != 184 || el.End.X != 132 || el.End.Y != 216 {
		t.Errorf("box = %+v..%+v, want centered 64x32 at (100,200)", el.Start, el.End)
	}
	if el.Width != 64 || el.Height != 32 {
		t.Errorf("intrinsic size = %vx%v, want 64x32", el.Width, el.Height)
	}
	if err := el.Validate(); err != nil {
		t.Errorf("dropped element invalid: %v", err)
	}
}

func TestNewFromToolboxDefaults(t *testing.T) {
	el := NewFromToolbox(ToolboxItem{Type: "weird", Shape: "box"}, Point{X: 0, Y: 0})

	if el.Type != TypeCustom {
		t.Errorf("type = %q, want custom fallback", el.Type)
	}
	if el.Width != 48 || el.Height != 48 {
		t.Errorf("size = %vx%v, want 48x48 default", el.Width, el.Height)
	}
	if el.Start.X != -24 || el.End.X != 24 {
		t.Errorf("box = %+v..%+v, want centered at origin", el.Start, el.End)
	}
}

func TestImportDrawing(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{
			name: "valid drawing",
			data: `{"elements":[{"id":"line-1-a","type":"line","start":{"x":0,"y":0},"end":{"x":10,"y":10}}]}`,
			want: 1,
		},
		{
			name: "malformed JSON resets to empty",
			data: `{"elements":[`,
			want: 0,
		},
		{
			name: "not JSON at all",
			data: `hello`,
			want: 0,
		},
		{
			name: "invalid elements dropped individually",
			data: `{"elements":[
				{"id":"line-1-a","type":"line","start":{"x":0,"y":0},"end":{"x":10,"y":10}},
				{"id":"","type":"line"},
				{"id":"icon-1-a","type":"icon"},
				null
			]}`,
			want: 1,
		},
		{
			name: "missing elements key",
			data: `{}`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImportDrawing([]byte(tt.data))
			if got == nil {
				t.Fatal("ImportDrawing returned nil, want empty slice")
			}
			if len(got) != tt.want {
				t.Errorf("imported %d elements, want %d", len(got), tt.want)
			}
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	els := []*DrawElement{
		{ID: "icon-1-a", Type: TypeIcon, Shape: "box", Start: Point{X: 1, Y: 2}, End: Point{X: 3, Y: 4}, Rotation: 45},
	}

	data, err := ExportDrawing(els)
	if err != nil {
		t.Fatalf("ExportDrawing() error = %v", err)
	}

	back := ImportDrawing(data)
	if len(back) != 1 {
		t.Fatalf("round trip lost elements: got %d", len(back))
	}
	if back[0].ID != "icon-1-a" || back[0].Rotation != 45 {
		t.Errorf("round trip changed element: %+v", back[0])
	}
}

func TestShapeElementTranslated(t *testing.T) {
	se := ShapeElement{
		Primitives: []Primitive{
			{Kind: PrimitiveRect, X: 1, Y: 1, Width: 10, Height: 10},
			{Kind: PrimitiveCircle, CX: 5, CY: 5, R: 2},
			{Kind: PrimitiveLine, X1: 0, Y1: 0, X2: 4, Y2: 4},
			{Kind: PrimitivePolyline, Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		},
		TextRegions: []TextRegion{{ID: "t", X: 3, Y: 3}},
	}

	moved := se.Translated(10, -5)

	if moved.Primitives[0].X != 11 || moved.Primitives[0].Y != -4 {
		t.Errorf("rect = (%v,%v), want (11,-4)", moved.Primitives[0].X, moved.Primitives[0].Y)
	}
	if moved.Primitives[1].CX != 15 || moved.Primitives[1].CY != 0 {
		t.Errorf("circle = (%v,%v), want (15,0)", moved.Primitives[1].CX, moved.Primitives[1].CY)
	}
	if moved.Primitives[2].X2 != 14 || moved.Primitives[2].Y2 != -1 {
		t.Errorf("line end = (%v,%v), want (14,-1)", moved.Primitives[2].X2, moved.Primitives[2].Y2)
	}
	if moved.Primitives[3].Points[1].X != 12 {
		t.Errorf("polyline point = %v, want 12", moved.Primitives[3].Points[1].X)
	}
	if moved.TextRegions[0].X != 13 || moved.TextRegions[0].Y != -2 {
		t.Errorf("text region = (%v,%v), want (13,-2)", moved.TextRegions[0].X, moved.TextRegions[0].Y)
	}

	// The original is untouched.
	if se.Primitives[0].X != 1 || se.TextRegions[0].X != 3 {
		t.Error("Translated mutated the receiver")
	}
}
