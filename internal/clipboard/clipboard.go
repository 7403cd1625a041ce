// Package clipboard implements copy/cut/paste snapshots and the process-wide
// shared clipboard that keeps independent documents in sync.
package clipboard

import (
	"log/slog"

	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/geometry"
)

// SystemWriter pushes clipboard content to an OS-level clipboard. The host
// shell provides one when it can; writes are best-effort and a failure never
// affects the in-memory clipboard, which is the functional source of truth.
type SystemWriter interface {
	WriteElements(els []*element.DrawElement) error
}

// Snapshot deep-copies a selection for the clipboard, tagging each copy with
// the id of its source element. The tag is traceability only, never used for
// deduplication.
func Snapshot(selection []*element.DrawElement) []*element.DrawElement {
	out := make([]*element.DrawElement, 0, len(selection))
	for _, el := range selection {
		c := el.Clone()
		c.OriginalID = el.ID
		out = append(out, c)
	}
	return out
}

// PlaceAt prepares clipboard content for pasting: it drops any element that
// fails structural validation, derives one translation that centers the
// surviving set's bounding box at the target point, applies that same offset
// to every element, assigns fresh ids, and strips the originalId tags. The
// result is nil when nothing valid survives. Validation runs before the
// bounds are taken so one corrupt element cannot skew the placement of the
// rest.
func PlaceAt(items []*element.DrawElement, target element.Point) []*element.DrawElement {
	valid := make([]*element.DrawElement, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			slog.Warn("paste: dropping invalid clipboard element", "error", err)
			continue
		}
		valid = append(valid, item)
	}
	if len(valid) == 0 {
		return nil
	}

	bounds := geometry.SelectionBounds(valid)
	cx, cy := bounds.Center()
	dx := target.X - cx
	dy := target.Y - cy

	out := make([]*element.DrawElement, 0, len(valid))
	for _, item := range valid {
		c := item.Clone()
		c.Start.X += dx
		c.Start.Y += dy
		c.End.X += dx
		c.End.Y += dy
		c.ID = element.NewID(c.Type)
		c.OriginalID = ""
		out = append(out, c)
	}

	return out
}
