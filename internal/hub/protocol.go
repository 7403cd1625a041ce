package hub

import "encoding/json"

// Message is the envelope for every event on the shell feed.
type Message struct {
	Type      string          `json:"type"`
	DrawingID string          `json:"drawingId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Sent to a shell right after it connects.
	TypeWelcome = "welcome"

	// A new snapshot of the drawing was saved; shells should refetch.
	TypeDrawingUpdate = "drawing.update"

	// A shell published clipboard content; other shells of the same user
	// mirror it so cut/copy carries across windows.
	TypeClipboardUpdate = "clipboard.update"

	// Another shell of the same user opened or closed this drawing.
	TypeShellJoin  = "shell.join"
	TypeShellLeave = "shell.leave"

	TypeError = "error"
)

type WelcomePayload struct {
	ClientID string `json:"clientId"`
}

type DrawingUpdatePayload struct {
	Version int32 `json:"version"`
}

type ShellPayload struct {
	ClientID string `json:"clientId"`
}
