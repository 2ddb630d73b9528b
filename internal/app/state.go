package app

// Phase represents the bootstrap state of the runtime. Transitions are
// strictly sequential and one-directional:
//
//	Created → PluginsRegistered → SetupRan → EventLoopRunning → (Terminated | FatalExit)
//
// EventLoopRunning is the only non-terminal steady state.
type Phase int32

const (
	// PhaseCreated - the runtime has not begun bootstrap.
	PhaseCreated Phase = iota

	// PhasePluginsRegistered - every plugin registered, in order.
	PhasePluginsRegistered

	// PhaseSetupRan - the setup hook completed.
	PhaseSetupRan

	// PhaseEventLoopRunning - the event loop is servicing the host.
	PhaseEventLoopRunning

	// PhaseTerminated - the event loop exited cleanly.
	PhaseTerminated

	// PhaseFatalExit - bootstrap or the event loop failed fatally.
	PhaseFatalExit
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhasePluginsRegistered:
		return "plugins-registered"
	case PhaseSetupRan:
		return "setup-ran"
	case PhaseEventLoopRunning:
		return "event-loop-running"
	case PhaseTerminated:
		return "terminated"
	case PhaseFatalExit:
		return "fatal-exit"
	default:
		return "unknown"
	}
}

// Terminal returns true for the two end states.
func (p Phase) Terminal() bool {
	return p == PhaseTerminated || p == PhaseFatalExit
}
