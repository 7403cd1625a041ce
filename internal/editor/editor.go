// Package editor implements the per-document editing engine: the pointer
// gesture state machine, selection, viewport mapping, clipboard operations
// and undo wiring. One Editor owns the live state of exactly one document;
// the session manager flushes and rehydrates it on tab switches.
package editor

import (
	"log/slog"

	"github.com/drawdeck/drawdeck/internal/clipboard"
	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/geometry"
	"github.com/drawdeck/drawdeck/internal/history"
)

// Editor is the editing engine for one document. All state transitions are
// synchronous: the host delivers pointer/keyboard events and reads back
// state; nothing here blocks or spawns goroutines.
type Editor struct {
	doc *element.Document

	elements  []*element.DrawElement
	selection []string
	// subSelection maps a complex element's id to the index of its
	// independently selected sub-shape (always >= 1; index 0 controls the
	// whole element and is never sub-selected).
	subSelection map[string]int

	gridVisible     bool
	backgroundColor string

	viewport Viewport

	hist      *history.Stack
	localClip []*element.DrawElement
	shared    *clipboard.Shared
	system    clipboard.SystemWriter

	g gesture
}

// New creates an editor hydrated from a document record. The shared clipboard
// is owned by the session manager; system may be nil when the host has no OS
// clipboard integration.
func New(doc *element.Document, shared *clipboard.Shared, historyLimit int, system clipboard.SystemWriter) *Editor {
	e := &Editor{
		doc:          doc,
		subSelection: make(map[string]int),
		viewport:     Viewport{Zoom: 1},
		hist:         history.New(historyLimit),
		shared:       shared,
		system:       system,
	}
	e.Hydrate(doc)
	return e
}

// Hydrate replaces the live state with a document record's saved state.
func (e *Editor) Hydrate(doc *element.Document) {
	e.doc = doc
	e.elements = element.CloneList(doc.Elements)
	e.selection = append([]string(nil), doc.SelectedElementIDs...)
	e.subSelection = make(map[string]int)
	e.gridVisible = doc.GridVisible
	e.backgroundColor = doc.BackgroundColor
	e.g = gesture{state: StateIdle}
}

// Flush copies the live state back into the document record, deep-copied so
// the record never aliases the live array.
func (e *Editor) Flush() {
	e.doc.Elements = element.CloneList(e.elements)
	e.doc.SelectedElementIDs = append([]string(nil), e.selection...)
	e.doc.GridVisible = e.gridVisible
	e.doc.BackgroundColor = e.backgroundColor
}

// Document returns the backing document record.
func (e *Editor) Document() *element.Document {
	return e.doc
}

// --- Imperative surface exposed to the host shell ---

// Elements returns the live element array. Callers treat it as read-only;
// every mutation path fully replaces the array.
func (e *Editor) Elements() []*element.DrawElement {
	return e.elements
}

// SetElements replaces the whole element array, e.g. after a file import.
// The history stack is cleared: undoing across a document load would splice
// unrelated states together.
func (e *Editor) SetElements(els []*element.DrawElement) {
	if els == nil {
		els = []*element.DrawElement{}
	}
	e.elements = element.CloneList(els)
	e.selection = nil
	e.subSelection = make(map[string]int)
	e.hist.Clear()
}

// GridVisible reports whether the background grid is shown.
func (e *Editor) GridVisible() bool { return e.gridVisible }

// SetGridVisible toggles the background grid.
func (e *Editor) SetGridVisible(v bool) { e.gridVisible = v }

// BackgroundColor returns the canvas background color.
func (e *Editor) BackgroundColor() string { return e.backgroundColor }

// SetBackgroundColor sets the canvas background color.
func (e *Editor) SetBackgroundColor(c string) { e.backgroundColor = c }

// SelectedElementIDs returns the ids of the selected elements, in selection
// order.
func (e *Editor) SelectedElementIDs() []string {
	return append([]string(nil), e.selection...)
}

// SelectedElements resolves the selection against the live array, dropping
// stale ids.
func (e *Editor) SelectedElements() []*element.DrawElement {
	var out []*element.DrawElement
	for _, id := range e.selection {
		if el := e.find(id); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// SubSelection returns the independently selected sub-shape index for a
// complex element, 0 when none.
func (e *Editor) SubSelection(elementID string) int {
	return e.subSelection[elementID]
}

// SelectionBounds returns the combined expanded bounds of the selection.
func (e *Editor) SelectionBounds() geometry.Rect {
	return geometry.SelectionBounds(e.SelectedElements())
}

// DropFromToolbox places a new element from a palette item at a design-space
// point, selects it, and records one history entry.
func (e *Editor) DropFromToolbox(item element.ToolboxItem, at element.Point) *element.DrawElement {
	e.hist.Push(e.elements)

	el := element.NewFromToolbox(item, at)
	next := make([]*element.DrawElement, 0, len(e.elements)+1)
	next = append(next, e.elements...)
	next = append(next, el)
	e.elements = next
	e.selection = []string{el.ID}
	return el
}

// DeleteSelected removes the selected elements as one undoable gesture.
func (e *Editor) DeleteSelected() {
	if len(e.selection) == 0 {
		return
	}
	e.hist.Push(e.elements)
	e.removeSelected()
}

func (e *Editor) removeSelected() {
	selected := make(map[string]bool, len(e.selection))
	for _, id := range e.selection {
		selected[id] = true
	}

	next := make([]*element.DrawElement, 0, len(e.elements))
	for _, el := range e.elements {
		if !selected[el.ID] {
			next = append(next, el)
		}
	}
	e.elements = next
	e.selection = nil
	e.subSelection = make(map[string]int)
}

// Undo pops the history stack and restores the previous element array. It
// does not touch the selection or the clipboard.
func (e *Editor) Undo() bool {
	els, ok := e.hist.Undo()
	if !ok {
		return false
	}
	e.elements = els
	return true
}

// HistoryLen returns the number of undoable entries, for host UI state.
func (e *Editor) HistoryLen() int {
	return e.hist.Len()
}

// UpdateStyles applies a style override to every element in ids as one
// undoable gesture. A nil style reverts the elements to their toolbox-
// authored appearance.
func (e *Editor) UpdateStyles(ids []string, style *element.Style) {
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}
	if len(targets) == 0 {
		return
	}

	e.hist.Push(e.elements)
	e.replace(func(el *element.DrawElement) *element.DrawElement {
		if !targets[el.ID] {
			return el
		}
		c := el.Clone()
		if style == nil {
			c.Styles = nil
		} else {
			s := *style
			c.Styles = &s
		}
		return c
	})
}

// SetLabelOffset records a user-dragged label anchor for one element as one
// undoable gesture.
func (e *Editor) SetLabelOffset(elementID string, offset element.Offset) {
	if e.find(elementID) == nil {
		slog.Warn("set label offset: unknown element", "id", elementID)
		return
	}

	e.hist.Push(e.elements)
	e.replace(func(el *element.DrawElement) *element.DrawElement {
		if el.ID != elementID {
			return el
		}
		c := el.Clone()
		o := offset
		c.LabelOffset = &o
		return c
	})
}

// --- internal helpers ---

func (e *Editor) find(id string) *element.DrawElement {
	for _, el := range e.elements {
		if el.ID == id {
			return el
		}
	}
	return nil
}

func (e *Editor) isSelected(id string) bool {
	for _, s := range e.selection {
		if s == id {
			return true
		}
	}
	return false
}

// replace rebuilds the element array through an update function. Unchanged
// elements keep their identity; changed ones must be returned as fresh
// clones, so downstream consumers observing array identity re-render.
func (e *Editor) replace(update func(el *element.DrawElement) *element.DrawElement) {
	next := make([]*element.DrawElement, 0, len(e.elements))
	for _, el := range e.elements {
		next = append(next, update(el))
	}
	e.elements = next
}
