package history

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/drawdeck/drawdeck/internal/element"
)

func boxAt(id string, x float64) *element.DrawElement {
	return &element.DrawElement{
		ID:    id,
		Type:  element.TypeIcon,
		Shape: "box",
		Start: element.Point{X: x, Y: 0},
		End:   element.Point{X: x + 40, Y: 40},
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	s := New(0)

	state := []*element.DrawElement{boxAt("icon-1-a", 0), boxAt("icon-2-b", 100)}
	s.Push(state)

	// Mutate the live array after the push; the snapshot must not follow.
	state[0].Start.X = 999
	state[1].Rotation = 45

	restored, ok := s.Undo()
	if !ok {
		t.Fatal("Undo() ok = false, want true")
	}
	want := []*element.DrawElement{boxAt("icon-1-a", 0), boxAt("icon-2-b", 100)}
	if !reflect.DeepEqual(restored, want) {
		t.Errorf("restored state = %+v, want %+v", restored, want)
	}
}

func TestUndoEmpty(t *testing.T) {
	s := New(0)
	if _, ok := s.Undo(); ok {
		t.Error("Undo() on empty stack ok = true, want false")
	}
}

func TestUndoOrder(t *testing.T) {
	s := New(0)
	s.Push([]*element.DrawElement{boxAt("icon-1-a", 10)})
	s.Push([]*element.DrawElement{boxAt("icon-1-a", 20)})

	got, _ := s.Undo()
	if got[0].Start.X != 20 {
		t.Errorf("first undo X = %v, want 20 (most recent snapshot)", got[0].Start.X)
	}
	got, _ = s.Undo()
	if got[0].Start.X != 10 {
		t.Errorf("second undo X = %v, want 10", got[0].Start.X)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestLimitDropsOldest(t *testing.T) {
	s := New(3)
	for i := 0; i < 5; i++ {
		s.Push([]*element.DrawElement{boxAt(fmt.Sprintf("icon-%d-a", i), float64(i))})
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	// Oldest two snapshots (X=0, X=1) were dropped.
	for want := 4.0; want >= 2.0; want-- {
		got, ok := s.Undo()
		if !ok {
			t.Fatal("stack exhausted early")
		}
		if got[0].Start.X != want {
			t.Errorf("undo X = %v, want %v", got[0].Start.X, want)
		}
	}
}

func TestDefaultLimit(t *testing.T) {
	s := New(-1)
	for i := 0; i < DefaultLimit+10; i++ {
		s.Push(nil)
	}
	if s.Len() != DefaultLimit {
		t.Errorf("Len() = %d, want %d", s.Len(), DefaultLimit)
	}
}

func TestClear(t *testing.T) {
	s := New(0)
	s.Push([]*element.DrawElement{boxAt("icon-1-a", 0)})
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
}
