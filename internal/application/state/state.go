// Package state holds the lifecycle phases of a scene manager.
package state

// Phase represents where a scene manager is in its lifecycle
type Phase int

const (
	// PhaseIdle means no scene has been installed yet.
	PhaseIdle Phase = iota
	// PhaseRunning means the active scene has not signalled completion.
	PhaseRunning
	// PhaseStopped is terminal: the active scene finished and the manager stopped.
	PhaseStopped
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition out of p is defined.
func (p Phase) Terminal() bool {
	return p == PhaseStopped
}
