// Package history implements the per-document undo stack: full element-array
// snapshots, pushed once per discrete gesture and popped by undo. There is no
// redo stack, matching the editor's observable behavior.
package history

import (
	"github.com/drawdeck/drawdeck/internal/element"
)

// DefaultLimit caps the stack depth; the oldest snapshot is dropped when the
// cap is exceeded. Unbounded growth during long editing sessions is a memory
// hazard, and restoring state from more than this many gestures back is not
// a workflow worth paying for.
const DefaultLimit = 100

// Stack is one document's undo history.
type Stack struct {
	snapshots [][]*element.DrawElement
	limit     int
}

// New creates a stack with the given depth cap; limit <= 0 uses DefaultLimit.
func New(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{limit: limit}
}

// Push records a deep snapshot of the element array as it was before a
// mutating gesture. Callers push exactly once per gesture, at the first
// mutation, not once per pointer-move tick.
func (s *Stack) Push(els []*element.DrawElement) {
	s.snapshots = append(s.snapshots, element.CloneList(els))
	if len(s.snapshots) > s.limit {
		s.snapshots = s.snapshots[1:]
	}
}

// Undo pops the most recent snapshot. ok is false when the stack is empty.
// The returned array is owned by the caller; the stack keeps no reference.
func (s *Stack) Undo() (els []*element.DrawElement, ok bool) {
	if len(s.snapshots) == 0 {
		return nil, false
	}
	top := s.snapshots[len(s.snapshots)-1]
	s.snapshots = s.snapshots[:len(s.snapshots)-1]
	return top, true
}

// Len returns the number of undoable snapshots.
func (s *Stack) Len() int {
	return len(s.snapshots)
}

// Clear drops all snapshots, used when a document is rehydrated from a file.
func (s *Stack) Clear() {
	s.snapshots = nil
}
