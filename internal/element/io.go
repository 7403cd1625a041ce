package element

import (
	"encoding/json"
	"log/slog"
)

// Drawing is the persisted/exported file shape for a single document.
type Drawing struct {
	Elements []*DrawElement `json:"elements"`
}

// ImportDrawing decodes a drawing file. Malformed JSON or a missing elements
// list resets to an empty drawing rather than failing: an unreadable file
// should leave the user with a blank canvas, not a stuck editor. Elements
// that fail validation are dropped individually.
func ImportDrawing(data []byte) []*DrawElement {
	var d Drawing
	if err := json.Unmarshal(data, &d); err != nil {
		slog.Warn("import drawing: malformed JSON, resetting to empty", "error", err)
		return []*DrawElement{}
	}

	out := make([]*DrawElement, 0, len(d.Elements))
	for _, el := range d.Elements {
		if el == nil {
			continue
		}
		if err := el.Validate(); err != nil {
			slog.Warn("import drawing: dropping invalid element", "error", err)
			continue
		}
		out = append(out, el)
	}
	return out
}

// ExportDrawing encodes the element list in the drawing file shape.
func ExportDrawing(els []*DrawElement) ([]byte, error) {
	if els == nil {
		els = []*DrawElement{}
	}
	return json.Marshal(Drawing{Elements: els})
}

// ImportToolbox decodes a palette configuration. Same fail-safe policy as
// ImportDrawing.
func ImportToolbox(data []byte) []ToolboxItem {
	var items []ToolboxItem
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("import toolbox: malformed JSON", "error", err)
		return nil
	}
	return items
}
