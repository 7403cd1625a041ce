package editor

import (
	"math"

	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/geometry"
)

// State is the gesture state machine's current state. Exactly one gesture
// may be active between pointer-down and pointer-up; no other gesture can
// start until release.
type State string

const (
	StateIdle          State = "idle"
	StateAreaSelecting State = "areaSelecting"
	StateDragging      State = "dragging"
	StateResizing      State = "resizing"
	StateRotating      State = "rotating"
	StatePanning       State = "panning"
)

// Button is the pointer button that started a gesture.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonSecondary Button = 2
)

// Modifiers are the keyboard modifiers held at pointer-down. Multi is the
// multi-select modifier (shift/ctrl); Pan is the held pan key (space).
type Modifiers struct {
	Multi bool
	Pan   bool
}

const (
	// clickThreshold: movement below this many design units between down and
	// up is a plain click, not a drag.
	clickThreshold = 5.0
	// minElementSize: a resize that would shrink either dimension below this
	// is ignored for that tick.
	minElementSize = 8.0
	// rotationStep is the fixed increment applied per rotation-handle click.
	rotationStep = 15.0
)

// span is an element's pre-gesture geometry.
type span struct {
	start   element.Point
	end     element.Point
	mirrorX bool
	mirrorY bool
}

type gesture struct {
	state State
	mods  Modifiers

	// anchor is the design-space pointer-down position; last tracks the most
	// recent move.
	anchor element.Point
	last   element.Point

	// clientAnchor/panStart drive panning, which works in client pixels.
	clientAnchorX, clientAnchorY float64
	panStartX, panStartY         float64

	// target is the element a drag or resize acts on; handle the grabbed
	// resize handle; subIndex > 0 means a sub-shape drag of a complex
	// element.
	target   string
	handle   Handle
	subIndex int

	// originals records every selected element's pre-gesture geometry so a
	// multi-element drag applies one uniform delta.
	originals map[string]span
	// subOriginal snapshots the dragged sub-shape for sub-shape drags.
	subOriginal *element.ShapeElement

	// historyPushed suppresses further pushes until the gesture ends; a
	// gesture is one undoable unit no matter how many move ticks it spans.
	historyPushed bool
	moved         bool
}

// GestureState returns the current state machine state.
func (e *Editor) GestureState() State {
	return e.g.state
}

// PointerDown starts a gesture from a client-space pointer position.
func (e *Editor) PointerDown(clientX, clientY float64, btn Button, mods Modifiers) {
	if e.g.state != StateIdle {
		// A gesture is already active; the machine constructs only one
		// gesture's listeners at a time.
		return
	}

	pt := e.viewport.ToDesign(clientX, clientY)
	e.g = gesture{
		state:  StateIdle,
		mods:   mods,
		anchor: pt,
		last:   pt,
	}

	if btn == ButtonSecondary || mods.Pan {
		e.g.state = StatePanning
		e.g.clientAnchorX, e.g.clientAnchorY = clientX, clientY
		e.g.panStartX, e.g.panStartY = e.viewport.PanX, e.viewport.PanY
		return
	}

	// Handles of the current selection take priority over element bodies.
	if id, h := e.handleAt(pt); h != HandleNone {
		if h == HandleRotate {
			e.startRotate(id)
			return
		}
		e.startResize(id, h)
		return
	}

	if el, subIdx := e.elementAt(pt); el != nil {
		if el.Complex && subIdx > 0 {
			e.routeSubShape(el, subIdx)
			return
		}
		e.startDrag(el, mods)
		return
	}

	// Empty canvas: rubber-band selection. Whether this clears the selection
	// is decided on release, once we know if the pointer actually moved.
	e.g.state = StateAreaSelecting
}

// PointerMove advances the active gesture.
func (e *Editor) PointerMove(clientX, clientY float64) {
	if e.g.state == StateIdle {
		return
	}

	if e.g.state == StatePanning {
		e.viewport.PanX = e.g.panStartX + (clientX - e.g.clientAnchorX)
		e.viewport.PanY = e.g.panStartY + (clientY - e.g.clientAnchorY)
		return
	}

	pt := e.viewport.ToDesign(clientX, clientY)
	e.g.last = pt
	if distance(e.g.anchor, pt) >= clickThreshold {
		e.g.moved = true
	}

	switch e.g.state {
	case StateDragging:
		if !e.g.moved {
			return
		}
		if e.g.subIndex > 0 {
			e.dragSubShapeTick(pt)
		} else {
			e.dragTick(pt)
		}
	case StateResizing:
		e.resizeTick(pt)
	case StateAreaSelecting, StateRotating:
		// Area selection resolves on release; rotation is a discrete click.
	}
}

// PointerUp ends the active gesture.
func (e *Editor) PointerUp(clientX, clientY float64) {
	if e.g.state == StateIdle {
		return
	}

	pt := e.viewport.ToDesign(clientX, clientY)
	e.g.last = pt
	if distance(e.g.anchor, pt) >= clickThreshold {
		e.g.moved = true
	}

	switch e.g.state {
	case StateAreaSelecting:
		if e.g.moved {
			e.resolveAreaSelection()
		} else if !e.g.mods.Multi {
			// Plain click on empty canvas clears the selection.
			e.selection = nil
			e.subSelection = make(map[string]int)
		}
	case StateDragging, StateResizing, StateRotating, StatePanning:
		// Mutations were applied tick by tick; nothing to commit.
	}

	e.g = gesture{state: StateIdle}
}

// KeyDown handles keyboard input relevant to gestures. Escape cancels an
// in-flight rubber-band selection.
func (e *Editor) KeyDown(key string) {
	if key == "Escape" && e.g.state == StateAreaSelecting {
		e.g = gesture{state: StateIdle}
	}
}

// AreaSelectionRect returns the current rubber-band rectangle, for rendering
// while a selection drag is in flight.
func (e *Editor) AreaSelectionRect() (geometry.Rect, bool) {
	if e.g.state != StateAreaSelecting || !e.g.moved {
		return geometry.Rect{}, false
	}
	return geometry.FromCorners(e.g.anchor.X, e.g.anchor.Y, e.g.last.X, e.g.last.Y), true
}

// --- gesture starts ---

func (e *Editor) startDrag(el *element.DrawElement, mods Modifiers) {
	if mods.Multi {
		e.toggleSelection(el.ID)
	} else if !e.isSelected(el.ID) {
		// Replacing the selection; an already-selected element stays put so
		// a multi-element drag can start from any member.
		e.selection = []string{el.ID}
	}

	e.g.state = StateDragging
	e.g.target = el.ID
	e.g.originals = make(map[string]span)
	for _, sel := range e.SelectedElements() {
		e.g.originals[sel.ID] = span{start: sel.Start, end: sel.End}
	}
}

func (e *Editor) startResize(id string, h Handle) {
	el := e.find(id)
	if el == nil {
		return
	}
	e.g.state = StateResizing
	e.g.target = id
	e.g.handle = h
	e.g.originals = map[string]span{id: {start: el.Start, end: el.End, mirrorX: el.MirrorX, mirrorY: el.MirrorY}}
}

// startRotate applies one discrete 15 degree step and parks the machine in
// Rotating until release so no other gesture can begin mid-press.
func (e *Editor) startRotate(id string) {
	el := e.find(id)
	if el == nil {
		return
	}

	e.pushHistoryOnce()
	e.replace(func(cur *element.DrawElement) *element.DrawElement {
		if cur.ID != id {
			return cur
		}
		c := cur.Clone()
		c.Rotation = math.Mod(c.Rotation+rotationStep, 360)
		return c
	})

	e.g.state = StateRotating
	e.g.target = id
}

// routeSubShape handles a click on a non-first sub-shape of a complex
// element: propagation stops and the sub-shape's independent selection is
// toggled. A click on an already sub-selected sub-shape begins dragging it.
func (e *Editor) routeSubShape(el *element.DrawElement, subIdx int) {
	if e.subSelection[el.ID] == subIdx {
		se := el.ShapeElements[subIdx]
		clone := se
		e.g.state = StateDragging
		e.g.target = el.ID
		e.g.subIndex = subIdx
		e.g.subOriginal = &clone
		return
	}
	e.subSelection[el.ID] = subIdx
}

// --- hit testing ---

// elementAt returns the topmost element containing the point, plus the index
// of the sub-shape hit for compound elements (0 when the first sub-shape or
// the plain body was hit). Elements later in the array render on top and are
// tested first.
func (e *Editor) elementAt(pt element.Point) (*element.DrawElement, int) {
	for i := len(e.elements) - 1; i >= 0; i-- {
		el := e.elements[i]
		if !geometry.HitTest(el, pt.X, pt.Y) {
			continue
		}
		if el.Complex && len(el.ShapeElements) > 1 {
			// Later sub-shapes sit on top of earlier ones.
			for s := len(el.ShapeElements) - 1; s >= 1; s-- {
				if geometry.SubShapeBounds(el, s).Contains(pt.X, pt.Y) {
					return el, s
				}
			}
		}
		return el, 0
	}
	return nil, 0
}

func (e *Editor) toggleSelection(id string) {
	for i, s := range e.selection {
		if s == id {
			e.selection = append(e.selection[:i], e.selection[i+1:]...)
			return
		}
	}
	e.selection = append(e.selection, id)
}

// --- shared gesture helpers ---

// pushHistoryOnce records the pre-mutation snapshot at the first mutation of
// a gesture and suppresses further pushes until the gesture ends.
func (e *Editor) pushHistoryOnce() {
	if e.g.historyPushed {
		return
	}
	e.hist.Push(e.elements)
	e.g.historyPushed = true
}

func distance(a, b element.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
