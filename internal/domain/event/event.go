// Package event defines the discrete per-frame events consumed by the game loop.
package event

import "github.com/hajimehoshi/ebiten/v2"

// Kind tags an Event.
type Kind int

const (
	// KindNone is the zero Kind.
	KindNone Kind = iota
	// KindWindowClose: the user asked the window to close.
	KindWindowClose
	// KindKeyDown: a key went down this frame.
	KindKeyDown
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindWindowClose:
		return "WindowClose"
	case KindKeyDown:
		return "KeyDown"
	default:
		return "Unknown"
	}
}

// Event is a single queued occurrence. Key is set for KindKeyDown only.
type Event struct {
	Kind Kind
	Key  ebiten.Key
}

// WindowClose returns a window-close event.
func WindowClose() Event {
	return Event{Kind: KindWindowClose}
}

// KeyDown returns a key-press event for key.
func KeyDown(key ebiten.Key) Event {
	return Event{Kind: KindKeyDown, Key: key}
}

// IsQuit reports whether e asks the whole game to stop:
// a window close or the escape key.
func (e Event) IsQuit() bool {
	return e.Kind == KindWindowClose || (e.Kind == KindKeyDown && e.Key == ebiten.KeyEscape)
}
