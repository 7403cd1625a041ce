package element

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrMissingID      = errors.New("element has no id")
	ErrUnknownType    = errors.New("unknown element type")
	ErrNonFinitePoint = errors.New("start/end must be finite")
	ErrMissingShape   = errors.New("element has neither shape nor shapeElements")
)

// Validate checks the structural invariants every stored element must hold:
// a non-empty id, a known type, finite start/end coordinates, and for
// icon/custom elements at least one of shape/shapeElements.
func (el *DrawElement) Validate() error {
	if el.ID == "" {
		return ErrMissingID
	}
	if !KnownType(el.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownType, el.Type)
	}
	if !finite(el.Start.X) || !finite(el.Start.Y) || !finite(el.End.X) || !finite(el.End.Y) {
		return fmt.Errorf("%w: element %s", ErrNonFinitePoint, el.ID)
	}
	if (el.Type == TypeIcon || el.Type == TypeCustom) && el.Shape == "" && len(el.ShapeElements) == 0 {
		return fmt.Errorf("%w: element %s", ErrMissingShape, el.ID)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
