// Package input tracks keyboard and mouse state across frames.
//
// A Source produces a raw Snapshot once per frame; Manager keeps the
// current and previous snapshot so scenes can ask for held keys as well
// as press/release edges.
package input

import "github.com/hajimehoshi/ebiten/v2"

// Snapshot is the raw device state for one frame.
type Snapshot struct {
	Keys    []ebiten.Key
	Buttons []ebiten.MouseButton
	CursorX int
	CursorY int
}

// Source polls device state.
type Source interface {
	Poll() Snapshot
}

// Reader is the query side of the manager handed to scenes.
type Reader interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsKeyJustReleased(key ebiten.Key) bool
	IsButtonPressed(button ebiten.MouseButton) bool
	IsButtonJustPressed(button ebiten.MouseButton) bool
	IsButtonJustReleased(button ebiten.MouseButton) bool
	Cursor() (x, y int)
}

type state struct {
	keys    map[ebiten.Key]struct{}
	buttons map[ebiten.MouseButton]struct{}
	x, y    int
}

func newState() state {
	return state{
		keys:    make(map[ebiten.Key]struct{}),
		buttons: make(map[ebiten.MouseButton]struct{}),
	}
}

func (s *state) load(snap Snapshot) {
	clear(s.keys)
	clear(s.buttons)
	for _, k := range snap.Keys {
		s.keys[k] = struct{}{}
	}
	for _, b := range snap.Buttons {
		s.buttons[b] = struct{}{}
	}
	s.x, s.y = snap.CursorX, snap.CursorY
}

// Manager holds input state for the current and previous frame.
type Manager struct {
	source Source
	cur    state
	prev   state
	frames int
}

var _ Reader = (*Manager)(nil)

// NewManager creates a manager reading from source.
func NewManager(source Source) *Manager {
	return &Manager{
		source: source,
		cur:    newState(),
		prev:   newState(),
	}
}

// Update polls the source. Call once per frame before any query.
func (m *Manager) Update() {
	m.prev, m.cur = m.cur, m.prev
	m.cur.load(m.source.Poll())
	m.frames++
}

// Frames returns how many times Update has run.
func (m *Manager) Frames() int {
	return m.frames
}

// IsKeyPressed reports whether key is held this frame.
func (m *Manager) IsKeyPressed(key ebiten.Key) bool {
	_, ok := m.cur.keys[key]
	return ok
}

// IsKeyJustPressed reports whether key went down this frame.
func (m *Manager) IsKeyJustPressed(key ebiten.Key) bool {
	_, now := m.cur.keys[key]
	_, before := m.prev.keys[key]
	return now && !before
}

// IsKeyJustReleased reports whether key went up this frame.
func (m *Manager) IsKeyJustReleased(key ebiten.Key) bool {
	_, now := m.cur.keys[key]
	_, before := m.prev.keys[key]
	return !now && before
}

// IsButtonPressed reports whether button is held this frame.
func (m *Manager) IsButtonPressed(button ebiten.MouseButton) bool {
	_, ok := m.cur.buttons[button]
	return ok
}

// IsButtonJustPressed reports whether button went down this frame.
func (m *Manager) IsButtonJustPressed(button ebiten.MouseButton) bool {
	_, now := m.cur.buttons[button]
	_, before := m.prev.buttons[button]
	return now && !before
}

// IsButtonJustReleased reports whether button went up this frame.
func (m *Manager) IsButtonJustReleased(button ebiten.MouseButton) bool {
	_, now := m.cur.buttons[button]
	_, before := m.prev.buttons[button]
	return !now && before
}

// Cursor returns the cursor position in logical screen pixels.
func (m *Manager) Cursor() (x, y int) {
	return m.cur.x, m.cur.y
}

// Axis returns -1, 0 or 1 from a pair of opposing keys.
func Axis(r Reader, negative, positive ebiten.Key) int {
	v := 0
	if r.IsKeyPressed(negative) {
		v--
	}
	if r.IsKeyPressed(positive) {
		v++
	}
	return v
}
