package clipboard

import (
	"sync"

	"github.com/drawdeck/drawdeck/internal/element"
)

// Shared is the single process-wide clipboard that all documents synchronize
// against. Every write point is explicit: on a document switch the outgoing
// document's non-empty local clipboard overwrites it (last writer wins), and
// the activated document pulls it down into its local copy.
type Shared struct {
	mu    sync.RWMutex
	items []*element.DrawElement
}

// NewShared creates an empty shared clipboard.
func NewShared() *Shared {
	return &Shared{}
}

// Set overwrites the shared content with a deep copy of the given elements.
func (s *Shared) Set(items []*element.DrawElement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = element.CloneList(items)
}

// Get returns a deep copy of the shared content, nil when empty.
func (s *Shared) Get() []*element.DrawElement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return nil
	}
	return element.CloneList(s.items)
}

// IsEmpty reports whether the shared clipboard holds anything.
func (s *Shared) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) == 0
}
