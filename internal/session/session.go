// Package session owns the set of open documents (tabs), the active editor,
// and the shared clipboard that keeps independent documents' pasteable
// content in sync across switches.
package session

import (
	"errors"
	"fmt"

	"github.com/drawdeck/drawdeck/internal/clipboard"
	"github.com/drawdeck/drawdeck/internal/editor"
	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/typeid"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrLastDocument = errors.New("cannot close the last document")
)

// Manager holds the open documents and the single active editor. The set of
// documents is never empty.
type Manager struct {
	documents []*element.Document
	activeID  string

	active *editor.Editor
	shared *clipboard.Shared
	system clipboard.SystemWriter

	historyLimit int
	tabCounter   int
}

// NewManager creates a session with one empty document active. system may be
// nil when the host has no OS clipboard integration.
func NewManager(historyLimit int, system clipboard.SystemWriter) *Manager {
	m := &Manager{
		shared:       clipboard.NewShared(),
		system:       system,
		historyLimit: historyLimit,
	}

	doc := m.newDocument()
	m.documents = []*element.Document{doc}
	m.activeID = doc.ID
	m.active = editor.New(doc, m.shared, historyLimit, system)
	return m
}

// NewManagerWith creates a session seeded with an existing document, e.g. a
// drawing loaded from the server or the wasm sample.
func NewManagerWith(doc *element.Document, historyLimit int, system clipboard.SystemWriter) *Manager {
	m := &Manager{
		shared:       clipboard.NewShared(),
		system:       system,
		historyLimit: historyLimit,
		tabCounter:   1,
	}
	m.documents = []*element.Document{doc}
	m.activeID = doc.ID
	m.active = editor.New(doc, m.shared, historyLimit, system)
	return m
}

// Active returns the editor for the active document.
func (m *Manager) Active() *editor.Editor {
	return m.active
}

// ActiveID returns the active document's id.
func (m *Manager) ActiveID() string {
	return m.activeID
}

// Documents returns the open document records in tab order. The active
// document's record reflects its state as of the last flush, not the live
// editing state.
func (m *Manager) Documents() []*element.Document {
	return m.documents
}

// Create flushes the active document, appends a new empty document, and
// activates it.
func (m *Manager) Create() *element.Document {
	m.flushActive()

	doc := m.newDocument()
	m.documents = append(m.documents, doc)
	m.activate(doc)
	return doc
}

// Close removes a document. Closing the last remaining document is refused;
// closing the active one activates the first remaining document.
func (m *Manager) Close(id string) error {
	if len(m.documents) == 1 {
		return ErrLastDocument
	}

	idx := m.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	wasActive := id == m.activeID
	m.documents = append(m.documents[:idx], m.documents[idx+1:]...)

	if wasActive {
		m.activate(m.documents[0])
	}
	return nil
}

// Switch flushes the outgoing document, hydrates the target, and performs
// the clipboard synchronization between them.
func (m *Manager) Switch(id string) error {
	if id == m.activeID {
		return nil
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	m.flushActive()
	m.activate(m.documents[idx])
	return nil
}

// Rename updates a document's name; pure metadata, no flush or hydrate.
func (m *Manager) Rename(id, name string) error {
	idx := m.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	m.documents[idx].Name = name
	return nil
}

// SharedClipboard exposes the process-wide clipboard, e.g. for the host
// shell's OS-integration bridge.
func (m *Manager) SharedClipboard() *clipboard.Shared {
	return m.shared
}

// flushActive writes the live editor state into the active document record
// and pushes a non-empty local clipboard up to the shared one. Last writer
// wins: two documents never diverge in pasteable content for more than one
// switch.
func (m *Manager) flushActive() {
	if m.active == nil {
		return
	}
	m.active.Flush()

	if local := m.active.CopiedElements(); len(local) > 0 {
		m.shared.Set(local)
	}
}

// activate makes doc the live document, pulling the shared clipboard down
// into its local copy when the shared one has content.
func (m *Manager) activate(doc *element.Document) {
	m.activeID = doc.ID
	m.active = editor.New(doc, m.shared, m.historyLimit, m.system)

	if sharedEls := m.shared.Get(); sharedEls != nil {
		m.active.SetCopiedElements(sharedEls)
	}
}

func (m *Manager) newDocument() *element.Document {
	m.tabCounter++
	return element.NewDocument(typeid.NewTabID(), fmt.Sprintf("Drawing %d", m.tabCounter))
}

func (m *Manager) indexOf(id string) int {
	for i, d := range m.documents {
		if d.ID == id {
			return i
		}
	}
	return -1
}
