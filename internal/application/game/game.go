// Package game provides the main game loop that drives the scene manager.
package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/application/scene"
	"github.com/younwookim/stagehand/internal/domain/event"
)

// DefaultFPS is the target frame rate when Options.FPS is zero.
const DefaultFPS = 60

var (
	// ErrInvalidFPS is returned by New for a negative frame rate.
	ErrInvalidFPS = errors.New("invalid fps")
	// ErrMissingBackend is returned by New when a display, input source,
	// event source or clock is nil.
	ErrMissingBackend = errors.New("missing backend")
)

// Display is the render target's presentation side.
type Display interface {
	// Present shows the frame drawn since the previous Present.
	Present() error
	// Close releases the graphics subsystem.
	Close() error
}

// EventSource yields the events queued since the last Poll.
type EventSource interface {
	Poll() []event.Event
}

// Clock paces the loop.
type Clock interface {
	// Tick waits out the rest of the frame interval for fps and returns
	// the time since the previous Tick.
	Tick(fps int) time.Duration
	// Ticks returns monotonic time since the clock started.
	Ticks() time.Duration
}

// Termination says why the loop stopped.
type Termination int

const (
	TerminationNone Termination = iota
	// TerminationQuit: window closed or escape pressed.
	TerminationQuit
	// TerminationSceneCompleted: the active scene finished.
	TerminationSceneCompleted
	// TerminationFault: a scene returned an error.
	TerminationFault
)

// String returns the string representation of the termination cause
func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "None"
	case TerminationQuit:
		return "Quit"
	case TerminationSceneCompleted:
		return "SceneCompleted"
	case TerminationFault:
		return "Fault"
	default:
		return "Unknown"
	}
}

// Options configures a Game.
type Options struct {
	Display Display
	Source  input.Source
	Events  EventSource
	Clock   Clock
	FPS     int
	Logger  *log.Logger
}

// Game owns the frame loop, the input manager and the display.
type Game struct {
	display Display
	input   *input.Manager
	events  EventSource
	clock   Clock
	fps     int
	logger  *log.Logger

	running bool
	frame   int
	fault   error
}

// New creates a running Game. FPS defaults to DefaultFPS.
func New(opts Options) (*Game, error) {
	if opts.Display == nil || opts.Source == nil || opts.Events == nil || opts.Clock == nil {
		return nil, ErrMissingBackend
	}
	fps := opts.FPS
	if fps == 0 {
		fps = DefaultFPS
	}
	if fps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFPS, fps)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		display: opts.Display,
		input:   input.NewManager(opts.Source),
		events:  opts.Events,
		clock:   opts.Clock,
		fps:     fps,
		logger:  logger,
		running: true,
	}, nil
}

// FPS returns the target frame rate.
func (g *Game) FPS() int {
	return g.fps
}

// Running is false once a global quit signal has been seen.
func (g *Game) Running() bool {
	return g.running
}

// Frame returns the number of frames started so far.
func (g *Game) Frame() int {
	return g.frame
}

// Input returns the input manager.
func (g *Game) Input() *input.Manager {
	return g.input
}

// Run drives m until the game quits, the active scene finishes or a scene
// fails. The display is closed before returning.
func (g *Game) Run(m *scene.Manager) (Termination, error) {
	g.logger.Info("game loop started", "fps", g.fps)

	for g.Termination(m) == TerminationNone {
		if err := g.Update(m); err != nil {
			break
		}
		if err := g.Draw(m); err != nil {
			g.fault = err
			break
		}
		g.clock.Tick(g.fps)
	}

	reason := g.Termination(m)
	if err := g.display.Close(); err != nil {
		g.logger.Warn("failed to close display", "err", err)
	}
	g.logger.Info("game loop stopped", "reason", reason, "frames", g.frame)

	if g.fault != nil {
		return reason, fmt.Errorf("frame %d: %w", g.frame, g.fault)
	}
	return reason, nil
}

// Update runs the first half of a frame: poll input, handle global events
// and, if still running, update the active scene.
func (g *Game) Update(m *scene.Manager) error {
	g.frame++
	g.input.Update()
	g.HandleGlobalEvents()
	if !g.running {
		return nil
	}
	if err := m.Update(g.input); err != nil {
		g.fault = err
		g.logger.Error("scene update failed", "frame", g.frame, "err", err)
		return err
	}
	return nil
}

// Draw runs the second half of a frame: render the active scene and present it.
func (g *Game) Draw(m *scene.Manager) error {
	m.Draw()
	return g.display.Present()
}

// HandleGlobalEvents drains the event queue. A window close or escape key
// stops the game; other events are ignored here.
func (g *Game) HandleGlobalEvents() {
	for _, e := range g.events.Poll() {
		if e.IsQuit() && g.running {
			g.running = false
			g.logger.Debug("quit requested", "event", e.Kind, "frame", g.frame)
		}
	}
}

// Termination reports why the loop must stop, or TerminationNone.
// A quit takes precedence over a finished scene.
func (g *Game) Termination(m *scene.Manager) Termination {
	switch {
	case g.fault != nil:
		return TerminationFault
	case !g.running:
		return TerminationQuit
	case !m.Running():
		return TerminationSceneCompleted
	default:
		return TerminationNone
	}
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.fault
}
