package element

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates a unique element id of the form type-timestamp-suffix.
// Ids are never reused; the millisecond timestamp keeps them roughly ordered
// and debuggable, the uuid suffix keeps same-millisecond creations distinct.
func NewID(t Type) string {
	return fmt.Sprintf("%s-%d-%s", t, time.Now().UnixMilli(), uuid.NewString()[:8])
}
