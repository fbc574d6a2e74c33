package game

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/application/scene"
	"github.com/younwookim/stagehand/internal/domain/event"
)

// mockScene is a test double for scene.Scene
type mockScene struct {
	*scene.Base
	updateCalled int
	drawCalled   int
	finishOn     int
	updateErr    error
}

func newMockScene() *mockScene {
	return &mockScene{Base: scene.NewBase(nil, nil)}
}

func (m *mockScene) Update(in input.Reader) error {
	m.updateCalled++
	if m.finishOn != 0 && m.updateCalled == m.finishOn {
		m.Finish()
	}
	return m.updateErr
}

func (m *mockScene) Draw() {
	m.drawCalled++
}

type mockDisplay struct {
	presented int
	closed    int
	onPresent func()
	err       error
}

func (d *mockDisplay) Present() error {
	d.presented++
	if d.onPresent != nil {
		d.onPresent()
	}
	return d.err
}

func (d *mockDisplay) Close() error {
	d.closed++
	return nil
}

// scriptedEvents returns queued events on the given poll (1-based)
type scriptedEvents struct {
	polls int
	at    map[int][]event.Event
}

func (s *scriptedEvents) Poll() []event.Event {
	s.polls++
	return s.at[s.polls]
}

type emptySource struct{}

func (emptySource) Poll() input.Snapshot { return input.Snapshot{} }

type mockClock struct {
	ticks []int
}

func (c *mockClock) Tick(fps int) time.Duration {
	c.ticks = append(c.ticks, fps)
	return time.Second / time.Duration(fps)
}

func (c *mockClock) Ticks() time.Duration { return 0 }

type fixture struct {
	game    *Game
	display *mockDisplay
	events  *scriptedEvents
	clock   *mockClock
}

func newFixture(t *testing.T, fps int) fixture {
	t.Helper()
	f := fixture{
		display: &mockDisplay{},
		events:  &scriptedEvents{at: map[int][]event.Event{}},
		clock:   &mockClock{},
	}
	g, err := New(Options{
		Display: f.display,
		Source:  emptySource{},
		Events:  f.events,
		Clock:   f.clock,
		FPS:     fps,
	})
	require.NoError(t, err)
	f.game = g
	return f
}

func TestNew(t *testing.T) {
	f := newFixture(t, 0)

	assert.True(t, f.game.Running())
	assert.Equal(t, DefaultFPS, f.game.FPS())
	assert.NotNil(t, f.game.Input())
	assert.Equal(t, 0, f.game.Frame())
}

func TestNew_InvalidFPS(t *testing.T) {
	_, err := New(Options{
		Display: &mockDisplay{},
		Source:  emptySource{},
		Events:  &scriptedEvents{},
		Clock:   &mockClock{},
		FPS:     -30,
	})
	assert.ErrorIs(t, err, ErrInvalidFPS)
}

func TestNew_MissingBackend(t *testing.T) {
	_, err := New(Options{Source: emptySource{}, Events: &scriptedEvents{}, Clock: &mockClock{}})
	assert.ErrorIs(t, err, ErrMissingBackend)
}

func TestGame_HandleGlobalEvents(t *testing.T) {
	tests := []struct {
		name        string
		events      []event.Event
		wantRunning bool
	}{
		{"no events", nil, true},
		{"window close", []event.Event{event.WindowClose()}, false},
		{"escape", []event.Event{event.KeyDown(ebiten.KeyEscape)}, false},
		{"other key", []event.Event{event.KeyDown(ebiten.KeySpace)}, true},
		{"mixed", []event.Event{event.KeyDown(ebiten.KeyA), event.WindowClose(), event.KeyDown(ebiten.KeyB)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 60)
			f.events.at[1] = tt.events

			f.game.HandleGlobalEvents()
			assert.Equal(t, tt.wantRunning, f.game.Running())
		})
	}
}

func TestGame_Run_WindowCloseOnFrameFive(t *testing.T) {
	f := newFixture(t, 60)
	f.events.at[5] = []event.Event{event.WindowClose()}

	var runningAtPresent []bool
	f.display.onPresent = func() {
		runningAtPresent = append(runningAtPresent, f.game.Running())
	}

	s := newMockScene()
	m := scene.NewManager(nil)
	m.SetInitialScene(s)

	reason, err := f.game.Run(m)
	require.NoError(t, err)

	assert.Equal(t, TerminationQuit, reason)
	assert.Equal(t, []bool{true, true, true, true, false}, runningAtPresent)
	assert.Equal(t, 4, s.updateCalled, "no scene update on the quit frame")
	assert.Equal(t, 5, s.drawCalled, "the quit frame is still rendered")
	assert.Equal(t, 5, f.display.presented)
	assert.Equal(t, 1, f.display.closed)
	assert.Equal(t, 5, f.game.Frame())
	assert.Len(t, f.clock.ticks, 5)
	for _, fps := range f.clock.ticks {
		assert.Equal(t, 60, fps)
	}
}

func TestGame_Run_SceneCompleted(t *testing.T) {
	f := newFixture(t, 30)

	s := newMockScene()
	s.finishOn = 3
	m := scene.NewManager(nil)
	m.SetInitialScene(s)

	reason, err := f.game.Run(m)
	require.NoError(t, err)

	assert.Equal(t, TerminationSceneCompleted, reason)
	assert.True(t, f.game.Running(), "the game itself was never quit")
	assert.False(t, m.Running())
	assert.Equal(t, 3, s.updateCalled)
	assert.Equal(t, 3, s.drawCalled)
	assert.Equal(t, 1, f.display.closed)
}

func TestGame_Run_QuitWinsOverSceneCompletion(t *testing.T) {
	f := newFixture(t, 60)
	f.events.at[1] = []event.Event{event.KeyDown(ebiten.KeyEscape)}

	// Would finish on its first update, but the quit frame skips updates.
	s := newMockScene()
	s.finishOn = 1
	m := scene.NewManager(nil)
	m.SetInitialScene(s)

	reason, err := f.game.Run(m)
	require.NoError(t, err)
	assert.Equal(t, TerminationQuit, reason)
	assert.Equal(t, 0, s.updateCalled)
}

func TestGame_Run_SceneError(t *testing.T) {
	f := newFixture(t, 60)

	s := newMockScene()
	s.updateErr = assert.AnError
	m := scene.NewManager(nil)
	m.SetInitialScene(s)

	reason, err := f.game.Run(m)
	assert.Equal(t, TerminationFault, reason)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, s.updateCalled)
	assert.Equal(t, 0, s.drawCalled, "a failed frame is not rendered")
	assert.Equal(t, 1, f.display.closed)
	assert.ErrorIs(t, f.game.Err(), assert.AnError)
}

func TestGame_Run_PresentError(t *testing.T) {
	f := newFixture(t, 60)
	f.display.err = errors.New("device lost")

	m := scene.NewManager(nil)
	m.SetInitialScene(newMockScene())

	reason, err := f.game.Run(m)
	assert.Equal(t, TerminationFault, reason)
	assert.ErrorContains(t, err, "device lost")
}

func TestGame_Run_NoSceneUntilQuit(t *testing.T) {
	f := newFixture(t, 60)
	f.events.at[3] = []event.Event{event.WindowClose()}

	reason, err := f.game.Run(scene.NewManager(nil))
	require.NoError(t, err)
	assert.Equal(t, TerminationQuit, reason)
	assert.Equal(t, 3, f.display.presented)
}

func TestGame_UpdateDraw_SingleFrame(t *testing.T) {
	f := newFixture(t, 60)
	s := newMockScene()
	m := scene.NewManager(nil)
	m.SetInitialScene(s)

	require.NoError(t, f.game.Update(m))
	require.NoError(t, f.game.Draw(m))

	assert.Equal(t, 1, s.updateCalled)
	assert.Equal(t, 1, s.drawCalled)
	assert.Equal(t, 1, f.display.presented)
	assert.Equal(t, 1, f.game.Input().Frames())
	assert.Equal(t, TerminationNone, f.game.Termination(m))
}

func TestTermination_String(t *testing.T) {
	tests := []struct {
		t        Termination
		expected string
	}{
		{TerminationNone, "None"},
		{TerminationQuit, "Quit"},
		{TerminationSceneCompleted, "SceneCompleted"},
		{TerminationFault, "Fault"},
		{Termination(9), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.t.String())
		})
	}
}
