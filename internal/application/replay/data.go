// Package replay records per-frame input and events and plays them back.
package replay

// Version of the replay file format.
const Version = "2.0"

// EventRecord is one recorded event.
type EventRecord struct {
	T int `json:"t"`           // event.Kind
	K int `json:"k,omitempty"` // ebiten.Key for key-down events
}

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int           `json:"f"`           // Frame number
	K  []int         `json:"k,omitempty"` // Held keys
	B  []int         `json:"b,omitempty"` // Held mouse buttons
	MX int           `json:"mx"`          // CursorX
	MY int           `json:"my"`          // CursorY
	E  []EventRecord `json:"e,omitempty"` // Events polled this frame
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Scene     string       `json:"scene"`
	FPS       int          `json:"fps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
