package editor

import (
	"log/slog"

	"github.com/drawdeck/drawdeck/internal/clipboard"
	"github.com/drawdeck/drawdeck/internal/element"
)

// CopySelected snapshots the selection into the local clipboard and pushes
// the content to the shared clipboard and, best-effort, the OS clipboard.
func (e *Editor) CopySelected() {
	selected := e.SelectedElements()
	if len(selected) == 0 {
		return
	}

	snap := clipboard.Snapshot(selected)
	e.localClip = snap

	if e.shared != nil {
		e.shared.Set(snap)
	}
	if e.system != nil {
		if err := e.system.WriteElements(snap); err != nil {
			// The in-memory clipboard is the functional source of truth;
			// a failed OS write is only worth a log line.
			slog.Warn("system clipboard write failed", "error", err)
		}
	}
}

// CutSelected copies the selection, then removes the originals as one
// undoable gesture.
func (e *Editor) CutSelected() {
	if len(e.selection) == 0 {
		return
	}
	e.CopySelected()
	e.hist.Push(e.elements)
	e.removeSelected()
}

// Paste places the clipboard content centered at the target point, or at the
// visible viewport center when no target is given. Valid survivors get fresh
// ids, are appended as one undoable gesture, and become the new selection.
// An empty or fully invalid clipboard is a logged no-op.
func (e *Editor) Paste(target *element.Point) {
	if len(e.localClip) == 0 {
		slog.Info("paste: clipboard empty")
		return
	}

	at := e.viewport.VisibleCenter()
	if target != nil {
		at = *target
	}

	placed := clipboard.PlaceAt(e.localClip, at)
	if len(placed) == 0 {
		slog.Warn("paste: no valid elements in clipboard")
		return
	}

	e.hist.Push(e.elements)

	next := make([]*element.DrawElement, 0, len(e.elements)+len(placed))
	next = append(next, e.elements...)
	next = append(next, placed...)
	e.elements = next

	ids := make([]string, len(placed))
	for i, el := range placed {
		ids[i] = el.ID
	}
	e.selection = ids
	e.subSelection = make(map[string]int)
}

// CopiedElements returns the local clipboard content.
func (e *Editor) CopiedElements() []*element.DrawElement {
	return e.localClip
}

// SetCopiedElements replaces the local clipboard, used by the session
// manager's cross-document synchronization and by the host shell.
func (e *Editor) SetCopiedElements(els []*element.DrawElement) {
	e.localClip = element.CloneList(els)
}
