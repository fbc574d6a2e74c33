// Package platform binds the game loop to ebiten: device polling, the
// event queue, the presented canvas and the ebiten.Game runner.
package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/domain/event"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Source reads keyboard and mouse state from ebiten.
type Source struct {
	keys []ebiten.Key
}

var _ input.Source = (*Source)(nil)

// NewSource creates an ebiten-backed input source.
func NewSource() *Source {
	return &Source{}
}

// Poll snapshots the devices for the current tick.
func (s *Source) Poll() input.Snapshot {
	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	snap := input.Snapshot{
		Keys: append([]ebiten.Key(nil), s.keys...),
	}
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b) {
			snap.Buttons = append(snap.Buttons, b)
		}
	}
	snap.CursorX, snap.CursorY = ebiten.CursorPosition()
	return snap
}

// Events reports window-close requests and newly pressed keys.
// The window must be created with closing handled, see Run.
type Events struct {
	keys []ebiten.Key
}

// NewEvents creates an ebiten-backed event source.
func NewEvents() *Events {
	return &Events{}
}

// Poll returns the events of the current tick.
func (e *Events) Poll() []event.Event {
	var events []event.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, event.WindowClose())
	}
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		events = append(events, event.KeyDown(k))
	}
	return events
}
