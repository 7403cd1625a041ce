package editor

import (
	"github.com/drawdeck/drawdeck/internal/element"
)

// Fallback paste target when the viewport size is unknown (e.g. a headless
// host that never reported its size).
var defaultCanvasCenter = element.Point{X: 800, Y: 450}

// Viewport is the client-to-design space mapping. Pan is in client pixels,
// zoom is the design-to-client magnification. Every pointer coordinate is
// converted through it before any geometry work; skipping the conversion
// desyncs drag and resize under non-default zoom or pan.
type Viewport struct {
	Zoom   float64 `json:"zoom"`
	PanX   float64 `json:"panX"`
	PanY   float64 `json:"panY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToDesign converts a client-space position to design space.
func (v Viewport) ToDesign(clientX, clientY float64) element.Point {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return element.Point{
		X: (clientX - v.PanX) / zoom,
		Y: (clientY - v.PanY) / zoom,
	}
}

// VisibleCenter returns the design-space point at the center of the visible
// viewport, or the default canvas center when the viewport size is unknown.
func (v Viewport) VisibleCenter() element.Point {
	if v.Width <= 0 || v.Height <= 0 {
		return defaultCanvasCenter
	}
	return v.ToDesign(v.Width/2, v.Height/2)
}

// SetZoom sets the magnification, ignoring non-positive values.
func (e *Editor) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	e.viewport.Zoom = zoom
}

// SetPan sets the pan offset in client pixels.
func (e *Editor) SetPan(x, y float64) {
	e.viewport.PanX = x
	e.viewport.PanY = y
}

// SetViewportSize records the client size of the visible canvas, used to
// resolve the default paste target.
func (e *Editor) SetViewportSize(width, height float64) {
	e.viewport.Width = width
	e.viewport.Height = height
}

// Viewport returns the current viewport state.
func (e *Editor) Viewport() Viewport {
	return e.viewport
}
