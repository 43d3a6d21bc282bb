package preview

import "github.com/muurk/mainviews/internal/app"

// Message types
const (
	TypeEvent = "event"
	TypeFrame = "frame"
	TypeError = "error"
)

// Message is one WebSocket message in either direction.
type Message struct {
	Type  string     `json:"type"`
	Event string     `json:"event,omitempty"`
	Frame *app.Frame `json:"frame,omitempty"`
	Error string     `json:"error,omitempty"`
}
