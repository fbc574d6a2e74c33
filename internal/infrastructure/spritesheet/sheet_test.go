package spritesheet

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/stagehand/internal/domain/sprite"
)

// newTestSheet builds a sheet with n placeholder frames, skipping slicing
func newTestSheet(n int, d time.Duration, loop bool) *Sheet {
	return &Sheet{
		frames:   make([]*ebiten.Image, n),
		duration: d,
		loop:     loop,
	}
}

func TestFrameRects_RowMajor(t *testing.T) {
	rects, err := FrameRects(image.Rect(0, 0, 48, 32), sprite.Size{Width: 16, Height: 16})
	require.NoError(t, err)

	require.Len(t, rects, 6)
	assert.Equal(t, image.Rect(0, 0, 16, 16), rects[0])
	assert.Equal(t, image.Rect(32, 0, 48, 16), rects[2])
	assert.Equal(t, image.Rect(0, 16, 16, 32), rects[3])
	assert.Equal(t, image.Rect(32, 16, 48, 32), rects[5])
}

func TestFrameRects_SkipsPartialEdges(t *testing.T) {
	rects, err := FrameRects(image.Rect(0, 0, 40, 20), sprite.Size{Width: 16, Height: 16})
	require.NoError(t, err)
	assert.Len(t, rects, 2)
}

func TestFrameRects_OffsetBounds(t *testing.T) {
	rects, err := FrameRects(image.Rect(10, 20, 42, 36), sprite.Size{Width: 16, Height: 16})
	require.NoError(t, err)
	assert.Equal(t, []image.Rectangle{image.Rect(10, 20, 26, 36), image.Rect(26, 20, 42, 36)}, rects)
}

func TestFrameRects_Invalid(t *testing.T) {
	_, err := FrameRects(image.Rect(0, 0, 64, 64), sprite.Size{Width: 0, Height: 16})
	assert.ErrorIs(t, err, sprite.ErrInvalidSize)

	_, err = FrameRects(image.Rect(0, 0, 8, 8), sprite.Size{Width: 16, Height: 16})
	assert.ErrorIs(t, err, sprite.ErrInvalidSize, "frame larger than sheet")
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, time.Millisecond, true)
	assert.Error(t, err)

	_, err = New(ebiten.NewImage(16, 16), 0, true)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestSheet_LoadFrames(t *testing.T) {
	s, err := New(ebiten.NewImage(64, 16), 100*time.Millisecond, true)
	require.NoError(t, err)

	require.NoError(t, s.LoadFrames(sprite.Size{Width: 16, Height: 16}))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 0, s.CurrentFrame())

	f, ok := s.Frame(3)
	require.True(t, ok)
	assert.Equal(t, image.Rect(48, 0, 64, 16), f.Bounds())

	_, ok = s.Frame(4)
	assert.False(t, ok)
	_, ok = s.Frame(-1)
	assert.False(t, ok)
}

func TestSheet_AnimateFirstCallStartsTimer(t *testing.T) {
	s := newTestSheet(4, 100*time.Millisecond, true)

	s.Animate(5 * time.Second)
	assert.Equal(t, 0, s.CurrentFrame())
}

func TestSheet_AnimateAdvancesPerDuration(t *testing.T) {
	s := newTestSheet(4, 100*time.Millisecond, true)
	s.Animate(0)

	s.Animate(99 * time.Millisecond)
	assert.Equal(t, 0, s.CurrentFrame())

	s.Animate(100 * time.Millisecond)
	assert.Equal(t, 1, s.CurrentFrame())

	// Remainder carries over: 100 -> 350 is two whole steps.
	s.Animate(350 * time.Millisecond)
	assert.Equal(t, 3, s.CurrentFrame())

	s.Animate(400 * time.Millisecond)
	assert.Equal(t, 0, s.CurrentFrame(), "loops back to the first frame")
}

func TestSheet_AnimateClampsWithoutLoop(t *testing.T) {
	s := newTestSheet(3, 10*time.Millisecond, false)
	s.Animate(0)

	s.Animate(15 * time.Millisecond)
	assert.Equal(t, 1, s.CurrentFrame())
	assert.False(t, s.Finished())

	s.Animate(time.Second)
	assert.Equal(t, 2, s.CurrentFrame())
	assert.True(t, s.Finished())
}

func TestSheet_AnimateClockWentBackwards(t *testing.T) {
	s := newTestSheet(4, 10*time.Millisecond, true)
	s.Animate(100 * time.Millisecond)
	s.Animate(50 * time.Millisecond)
	assert.Equal(t, 0, s.CurrentFrame())

	s.Animate(60 * time.Millisecond)
	assert.Equal(t, 1, s.CurrentFrame(), "timer restarted from the earlier reading")
}

func TestSheet_AnimateNoFrames(t *testing.T) {
	s := newTestSheet(0, 10*time.Millisecond, true)
	assert.NotPanics(t, func() {
		s.Animate(0)
		s.Animate(time.Second)
	})
	assert.Equal(t, 0, s.CurrentFrame())
}

func TestSheet_Rewind(t *testing.T) {
	s := newTestSheet(4, 10*time.Millisecond, true)
	s.Animate(0)
	s.Animate(25 * time.Millisecond)
	require.Equal(t, 2, s.CurrentFrame())

	s.Rewind()
	assert.Equal(t, 0, s.CurrentFrame())
}

func TestSheet_WorksWithAnimatedSprite(t *testing.T) {
	s, err := New(ebiten.NewImage(32, 8), 50*time.Millisecond, true)
	require.NoError(t, err)

	clock := &stepClock{}
	a, err := sprite.NewAnimated(s, sprite.Size{Width: 8, Height: 8}, clock, sprite.WithUpscale(2))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	a.Update()
	clock.now = 120 * time.Millisecond
	a.Update()
	assert.Equal(t, 2, s.CurrentFrame())
}

type stepClock struct {
	now time.Duration
}

func (c *stepClock) Ticks() time.Duration { return c.now }

func TestGenerate(t *testing.T) {
	strip, err := Generate(sprite.Size{Width: 16, Height: 8}, 4, []color.Color{color.White})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 8), strip.Bounds())

	s, err := New(strip, 100*time.Millisecond, true)
	require.NoError(t, err)
	require.NoError(t, s.LoadFrames(sprite.Size{Width: 16, Height: 8}))
	assert.Equal(t, 4, s.Len())
}

func TestGenerate_InvalidSize(t *testing.T) {
	_, err := Generate(sprite.Size{Width: 0, Height: 8}, 4, nil)
	assert.ErrorIs(t, err, sprite.ErrInvalidSize)
}

func TestSheet_Replace(t *testing.T) {
	s, err := New(ebiten.NewImage(64, 16), 100*time.Millisecond, true)
	require.NoError(t, err)
	require.NoError(t, s.LoadFrames(sprite.Size{Width: 16, Height: 16}))
	s.current = 2

	require.NoError(t, s.Replace(ebiten.NewImage(48, 16)))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.CurrentFrame(), "index kept while in range")

	require.NoError(t, s.Replace(ebiten.NewImage(16, 16)))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.CurrentFrame())

	assert.Error(t, s.Replace(nil))

	// Smaller than one frame: rejected, old frames stay.
	old := s.source
	first, _ := s.Frame(0)
	assert.ErrorIs(t, s.Replace(ebiten.NewImage(8, 8)), sprite.ErrInvalidSize)
	assert.Same(t, old, s.source)
	assert.Equal(t, 1, s.Len())
	kept, _ := s.Frame(0)
	assert.Same(t, first, kept)
}
