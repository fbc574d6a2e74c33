// Package spritesheet slices an image into fixed-size frames and steps
// through them over time.
package spritesheet

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/stagehand/internal/domain/sprite"
)

// ErrInvalidDuration is returned for a non-positive frame duration.
var ErrInvalidDuration = errors.New("invalid frame duration")

// Sheet is a sliced sprite sheet. It is not safe for concurrent use.
type Sheet struct {
	source   *ebiten.Image
	frames   []*ebiten.Image
	current  int
	duration time.Duration
	loop     bool

	started bool
	last    time.Duration
}

var _ sprite.Sheet = (*Sheet)(nil)

// New creates a sheet over source advancing one frame per duration.
// When loop is false the animation stops on the last frame.
func New(source *ebiten.Image, duration time.Duration, loop bool) (*Sheet, error) {
	if source == nil {
		return nil, errors.New("spritesheet: nil source image")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	return &Sheet{
		source:   source,
		duration: duration,
		loop:     loop,
	}, nil
}

// FrameRects returns the row-major frame rectangles of size inside bounds.
// Partial frames at the right and bottom edges are skipped.
func FrameRects(bounds image.Rectangle, size sprite.Size) ([]image.Rectangle, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	cols := bounds.Dx() / size.Width
	rows := bounds.Dy() / size.Height
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: frame %s larger than sheet %dx%d",
			sprite.ErrInvalidSize, size, bounds.Dx(), bounds.Dy())
	}

	rects := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			origin := bounds.Min.Add(image.Pt(col*size.Width, row*size.Height))
			rects = append(rects, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size.Width, size.Height))})
		}
	}
	return rects, nil
}

// LoadFrames slices the source image and rewinds to the first frame.
func (s *Sheet) LoadFrames(size sprite.Size) error {
	rects, err := FrameRects(s.source.Bounds(), size)
	if err != nil {
		return err
	}

	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = s.source.SubImage(r).(*ebiten.Image)
	}
	s.frames = frames
	s.Rewind()
	return nil
}

// Replace swaps the source image and re-slices it at the current frame size.
// The current frame index is kept when still in range. On error the sheet
// keeps its old source and frames.
func (s *Sheet) Replace(source *ebiten.Image) error {
	if source == nil {
		return errors.New("spritesheet: nil source image")
	}
	if len(s.frames) == 0 {
		s.source = source
		return nil
	}
	b := s.frames[0].Bounds()
	prev, current, started, last := s.source, s.current, s.started, s.last
	s.source = source
	if err := s.LoadFrames(sprite.Size{Width: b.Dx(), Height: b.Dy()}); err != nil {
		s.source, s.current, s.started, s.last = prev, current, started, last
		return err
	}
	if current < len(s.frames) {
		s.current = current
	}
	return nil
}

// Rewind returns to the first frame and restarts timing.
func (s *Sheet) Rewind() {
	s.current = 0
	s.started = false
}

// Len returns the number of loaded frames.
func (s *Sheet) Len() int {
	return len(s.frames)
}

// CurrentFrame returns the index of the frame to draw.
func (s *Sheet) CurrentFrame() int {
	return s.current
}

// Frame returns frame i.
func (s *Sheet) Frame(i int) (*ebiten.Image, bool) {
	if i < 0 || i >= len(s.frames) {
		return nil, false
	}
	return s.frames[i], true
}

// Animate advances one frame for every full duration elapsed since the
// last advance. The first call only starts the timer.
func (s *Sheet) Animate(now time.Duration) {
	if len(s.frames) == 0 {
		return
	}
	if !s.started || now < s.last {
		s.started = true
		s.last = now
		return
	}

	steps := int((now - s.last) / s.duration)
	if steps == 0 {
		return
	}
	s.last += time.Duration(steps) * s.duration
	s.current = s.step(steps)
}

func (s *Sheet) step(n int) int {
	next := s.current + n
	if s.loop {
		return next % len(s.frames)
	}
	return min(next, len(s.frames)-1)
}

// Finished reports whether a non-looping animation has reached its last frame.
func (s *Sheet) Finished() bool {
	return !s.loop && len(s.frames) > 0 && s.current == len(s.frames)-1
}
