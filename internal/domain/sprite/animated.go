// Package sprite provides frame sizing and the animated sprite helper.
//
// Pixel data, slicing and frame-advance timing live in a Sheet owned
// elsewhere; Animated only forwards ticks to it and draws the current
// frame scaled onto a Canvas.
package sprite

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrInvalidUpscale is returned for a non-positive upscale factor.
	ErrInvalidUpscale = errors.New("invalid upscale")
	// ErrFrameOutOfRange is returned when the sheet has no image at its current index.
	ErrFrameOutOfRange = errors.New("frame out of range")
)

// Sheet is a sprite-sheet resource sliced into fixed-size frames.
type Sheet interface {
	// LoadFrames slices the source image into frames of the given size.
	LoadFrames(size Size) error
	// CurrentFrame returns the index of the frame to draw.
	CurrentFrame() int
	// Frame returns the frame image at index i.
	Frame(i int) (*ebiten.Image, bool)
	// Animate advances the current frame according to the sheet's timing policy.
	Animate(now time.Duration)
}

// Canvas is a render target. *ebiten.Image satisfies it.
type Canvas interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// Ticker reports monotonic time since some fixed start.
type Ticker interface {
	Ticks() time.Duration
}

// Vec is a position on a canvas.
type Vec struct {
	X, Y float64
}

// Option configures an Animated sprite.
type Option func(*Animated)

// WithUpscale sets the draw-time scale factor. The default is 1.
func WithUpscale(f float64) Option {
	return func(a *Animated) {
		a.upscale = f
	}
}

// Animated draws the current frame of a shared Sheet.
type Animated struct {
	sheet   Sheet
	size    Size
	upscale float64
	clock   Ticker
}

// NewAnimated validates its arguments and asks the sheet to load frames of size.
// Nothing is loaded when validation fails.
func NewAnimated(sheet Sheet, size Size, clock Ticker, opts ...Option) (*Animated, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, errors.New("sprite: nil sheet")
	}
	if clock == nil {
		return nil, errors.New("sprite: nil clock")
	}

	a := &Animated{
		sheet:   sheet,
		size:    size,
		upscale: 1,
		clock:   clock,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.upscale <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpscale, a.upscale)
	}

	if err := sheet.LoadFrames(size); err != nil {
		return nil, fmt.Errorf("failed to load frames at %s: %w", size, err)
	}
	return a, nil
}

// Size returns the frame size.
func (a *Animated) Size() Size {
	return a.size
}

// Upscale returns the draw-time scale factor.
func (a *Animated) Upscale() float64 {
	return a.upscale
}

// Update forwards the current time to the sheet.
func (a *Animated) Update() {
	a.sheet.Animate(a.clock.Ticks())
}

// DestSize returns the on-canvas size of a drawn frame.
func (a *Animated) DestSize() (w, h float64) {
	return a.size.Scale(a.upscale)
}

// Draw blits the current frame onto target at pos, scaled to DestSize.
func (a *Animated) Draw(target Canvas, pos Vec) error {
	idx := a.sheet.CurrentFrame()
	frame, ok := a.sheet.Frame(idx)
	if !ok || frame == nil {
		return fmt.Errorf("%w: %d", ErrFrameOutOfRange, idx)
	}

	// Scale from the frame's real bounds so a short edge frame still lands on DestSize.
	b := frame.Bounds()
	dw, dh := a.DestSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dw/float64(b.Dx()), dh/float64(b.Dy()))
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterNearest
	target.DrawImage(frame, op)
	return nil
}
