// Package scene defines the Scene interface for game screens and the
// Manager that holds the active one.
//
// Each game screen (title, menu, playing, etc.) implements Scene. A scene
// never replaces itself through its running flag: clearing the flag only
// reports that it is finished, and the Manager stops for good when it sees
// that.
package scene

import (
	"github.com/charmbracelet/log"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/domain/sprite"
)

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the active scene.
type Scene interface {
	// Update advances the scene by one frame.
	// Returns an error to terminate the game.
	Update(in input.Reader) error

	// Draw renders the scene onto its render target.
	Draw()

	// Running is false once the scene has finished.
	Running() bool
}

// Switcher replaces the active scene. *Manager implements it.
type Switcher interface {
	TransitionTo(next Scene)
}

// Context is state shared by every scene of one game.
type Context struct {
	Logger *log.Logger
	Screen sprite.Size
	Scenes Switcher

	values map[string]any
}

// NewContext creates a context for a logical screen of the given size.
func NewContext(logger *log.Logger, screen sprite.Size, scenes Switcher) *Context {
	return &Context{
		Logger: logger,
		Screen: screen,
		Scenes: scenes,
		values: make(map[string]any),
	}
}

// Set stores a value under key.
func (c *Context) Set(key string, v any) {
	c.values[key] = v
}

// Value returns the value stored under key.
func (c *Context) Value(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Base carries the fields every scene needs. Embed *Base in concrete scenes.
type Base struct {
	target  sprite.Canvas
	ctx     *Context
	running bool
}

// NewBase creates a running Base drawing onto target.
func NewBase(target sprite.Canvas, ctx *Context) *Base {
	return &Base{
		target:  target,
		ctx:     ctx,
		running: true,
	}
}

// Target returns the render target.
func (b *Base) Target() sprite.Canvas {
	return b.target
}

// Context returns the shared game context.
func (b *Base) Context() *Context {
	return b.ctx
}

// Running reports whether the scene is still active.
func (b *Base) Running() bool {
	return b.running
}

// Finish marks the scene as done. It cannot be undone.
func (b *Base) Finish() {
	b.running = false
}
