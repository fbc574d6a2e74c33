package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/stagehand/internal/domain/sprite"
)

// Screen is the offscreen canvas scenes draw on. Present copies it onto
// the window's screen image for the current tick.
type Screen struct {
	canvas *ebiten.Image
	target *ebiten.Image
	size   sprite.Size
}

// NewScreen allocates a canvas of the logical screen size.
func NewScreen(size sprite.Size) (*Screen, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	return &Screen{
		canvas: ebiten.NewImage(size.Width, size.Height),
		size:   size,
	}, nil
}

// Canvas returns the render target handed to scenes.
func (s *Screen) Canvas() *ebiten.Image {
	return s.canvas
}

// Size returns the logical screen size.
func (s *Screen) Size() sprite.Size {
	return s.size
}

// SetTarget sets the image the next Present copies onto.
func (s *Screen) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Present copies the canvas onto the target. Without a target the frame
// is dropped.
func (s *Screen) Present() error {
	if s.target == nil {
		return nil
	}
	s.target.DrawImage(s.canvas, nil)
	s.target = nil
	return nil
}

// Close frees the canvas.
func (s *Screen) Close() error {
	s.canvas.Deallocate()
	return nil
}

// Discard is a canvas that drops every draw, for headless runs.
type Discard struct{}

var _ sprite.Canvas = Discard{}

// DrawImage does nothing.
func (Discard) DrawImage(*ebiten.Image, *ebiten.DrawImageOptions) {}

// Headless is a display for runs without a window.
type Headless struct {
	Presented int
	Closed    bool
}

// Present counts the frame.
func (h *Headless) Present() error {
	h.Presented++
	return nil
}

// Close records that the display was closed.
func (h *Headless) Close() error {
	h.Closed = true
	return nil
}
