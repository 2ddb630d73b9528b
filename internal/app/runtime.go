package app

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/esengine/nova-editor/internal/backend"
	"github.com/esengine/nova-editor/internal/plugin"
)

// Runtime consumes a built Application and drives the bootstrap sequence:
// plugin registration, the setup hook, then the host event loop. Run blocks
// until shutdown or a fatal error; there is no partial-startup recovery and
// no retry.
type Runtime struct {
	backend backend.Backend
	logger  *Logger

	phase   atomic.Int32
	running atomic.Bool

	done     chan struct{}
	quitOnce sync.Once
}

// RuntimeOption configures the runtime.
type RuntimeOption func(*Runtime)

// WithBackend sets the host windowing backend.
func WithBackend(b backend.Backend) RuntimeOption {
	return func(r *Runtime) {
		r.backend = b
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *Logger) RuntimeOption {
	return func(r *Runtime) {
		r.logger = l
	}
}

// NewRuntime creates a runtime. A backend must be configured before Run.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = NewLogger(DefaultLoggerConfig())
	}
	return r
}

// Phase returns the current bootstrap phase.
func (r *Runtime) Phase() Phase {
	return Phase(r.phase.Load())
}

// IsRunning returns true while Run is executing.
func (r *Runtime) IsRunning() bool {
	return r.running.Load()
}

// Shutdown requests a clean exit of the event loop. Idempotent; safe to
// call from a signal handler goroutine.
func (r *Runtime) Shutdown() {
	r.quitOnce.Do(func() {
		close(r.done)
		if r.backend != nil {
			// Wake a blocked PollEvent so the polling goroutine can
			// observe the shutdown.
			r.backend.PostEvent(backend.Event{Type: backend.EventNone})
		}
	})
}

// Run executes the bootstrap sequence and blocks in the event loop.
//
// It returns nil only after a clean shutdown. Every other outcome is fatal
// and surfaces as *SetupError or *RuntimeStartError; the caller is expected
// to terminate the process with a non-zero status.
func (r *Runtime) Run(app *Application) error {
	if app == nil {
		return &RuntimeStartError{Stage: "application", Err: ErrNilApplication}
	}
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer r.running.Store(false)

	ctx := app.Context()
	if ctx == nil {
		// Context loading failed upstream; the machine never leaves
		// Created.
		return &RuntimeStartError{Stage: "context", Err: ErrNilContext}
	}

	log := r.logger.WithComponent("runtime")
	log.Info("starting %s %s", ctx.ProductName, ctx.Version)

	// Register every plugin in builder order.
	registry := plugin.NewRegistry()
	for _, d := range app.plugins {
		if err := registry.Apply(d); err != nil {
			return r.fatal(&RuntimeStartError{Stage: "plugin " + d.Name, Err: err})
		}
		log.Debug("registered plugin %s %s", d.Name, d.Version)
	}
	r.phase.Store(int32(PhasePluginsRegistered))

	// The setup hook runs exactly once, strictly after registration and
	// strictly before the event loop.
	if app.setup != nil {
		setup := &Setup{context: ctx, logger: r.logger, registry: registry}
		if err := app.setup(setup); err != nil {
			return r.fatal(&SetupError{Err: err})
		}
	}
	r.phase.Store(int32(PhaseSetupRan))

	if r.backend == nil {
		return r.fatal(&RuntimeStartError{Stage: "backend", Err: ErrNoBackend})
	}
	if err := r.backend.Init(); err != nil {
		return r.fatal(&RuntimeStartError{Stage: "backend", Err: err})
	}
	defer r.backend.Shutdown()

	r.phase.Store(int32(PhaseEventLoopRunning))
	log.Info("event loop running")

	if err := r.eventLoop(ctx); err != nil && !errors.Is(err, ErrQuit) {
		return r.fatal(err)
	}

	r.phase.Store(int32(PhaseTerminated))
	log.Info("shutdown complete")
	return nil
}

// fatal marks the bootstrap as failed and passes the error through.
func (r *Runtime) fatal(err error) error {
	r.phase.Store(int32(PhaseFatalExit))
	r.logger.WithComponent("runtime").Error("fatal: %v", err)
	return err
}
