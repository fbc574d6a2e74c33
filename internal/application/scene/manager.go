package scene

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/application/state"
)

// Manager owns the single active scene and forwards frame calls to it.
type Manager struct {
	current Scene
	running bool
	logger  *log.Logger
}

var _ Switcher = (*Manager)(nil)

// NewManager creates a running manager with no scene.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		running: true,
		logger:  logger,
	}
}

// SetInitialScene installs the first active scene.
func (m *Manager) SetInitialScene(s Scene) {
	m.current = s
	m.logger.Debug("initial scene set", "scene", name(s))
}

// TransitionTo replaces the active scene. The old scene gets no teardown call.
func (m *Manager) TransitionTo(next Scene) {
	m.logger.Debug("scene transition", "from", name(m.current), "to", name(next))
	m.current = next
}

// Current returns the active scene, or nil.
func (m *Manager) Current() Scene {
	return m.current
}

// Running is false once an active scene has finished. It never becomes true again.
func (m *Manager) Running() bool {
	return m.running
}

// Phase reports the manager's lifecycle phase.
func (m *Manager) Phase() state.Phase {
	switch {
	case !m.running:
		return state.PhaseStopped
	case m.current == nil:
		return state.PhaseIdle
	default:
		return state.PhaseRunning
	}
}

// Update forwards to the active scene, then stops the manager if that scene finished.
func (m *Manager) Update(in input.Reader) error {
	if m.current == nil {
		return nil
	}
	if err := m.current.Update(in); err != nil {
		return err
	}
	if m.running && !m.current.Running() {
		m.running = false
		m.logger.Info("scene finished", "scene", name(m.current))
	}
	return nil
}

// Draw forwards to the active scene.
func (m *Manager) Draw() {
	if m.current == nil {
		return
	}
	m.current.Draw()
}

func name(s Scene) string {
	if s == nil {
		return "<none>"
	}
	if n, ok := s.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "scene"
}
