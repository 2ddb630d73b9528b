package app

import (
	"github.com/esengine/nova-editor/internal/config"
	"github.com/esengine/nova-editor/internal/plugin"
)

// SetupFunc is the one-time initialization hook. It runs exactly once,
// after every plugin is registered and before the event loop starts. An
// error aborts the bootstrap; the hook is never retried.
type SetupFunc func(*Setup) error

// Setup is the handle the setup hook receives: the application context plus
// the shell's diagnostics logger and a view of the registered plugins.
type Setup struct {
	context  *config.Context
	logger   *Logger
	registry *plugin.Registry
}

// Context returns the application context.
func (s *Setup) Context() *config.Context {
	return s.context
}

// Log returns the diagnostics logger injected by the runtime.
func (s *Setup) Log() *Logger {
	return s.logger
}

// Plugins returns the registered capability names in registration order.
func (s *Setup) Plugins() []string {
	return s.registry.Names()
}

// Builder accumulates capability plugins and the setup hook, then produces
// a runnable Application. The bootstrap phase is single-threaded; the
// builder is not safe for concurrent use and does not need to be.
type Builder struct {
	plugins []plugin.Descriptor
	setup   SetupFunc
}

// NewBuilder creates an empty builder: no plugins, no setup hook.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithPlugin appends a plugin descriptor. Registration order follows call
// order. Validation is deferred to Build so the caller sees every
// misconfiguration in one report.
func (b *Builder) WithPlugin(d plugin.Descriptor) *Builder {
	b.plugins = append(b.plugins, d)
	return b
}

// WithSetup attaches the setup hook. Calling it twice replaces the previous
// hook; the last write wins.
func (b *Builder) WithSetup(fn SetupFunc) *Builder {
	b.setup = fn
	return b
}

// Build validates every accumulated descriptor and composes the immutable
// Application. A nil context fails with ErrNilContext; any malformed
// descriptor fails with a *BuildError aggregating all of them. Nothing is
// registered on failure.
func (b *Builder) Build(ctx *config.Context) (*Application, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	var invalid []*plugin.InvalidDescriptorError
	for _, d := range b.plugins {
		if err := d.Validate(); err != nil {
			// Validate always reports this type.
			if inv, ok := err.(*plugin.InvalidDescriptorError); ok {
				invalid = append(invalid, inv)
			} else {
				invalid = append(invalid, &plugin.InvalidDescriptorError{Name: d.Name, Err: err})
			}
		}
	}
	if len(invalid) > 0 {
		return nil, &BuildError{Invalid: invalid}
	}

	// Snapshot the descriptor list so later builder mutation cannot leak
	// into the built application.
	plugins := make([]plugin.Descriptor, len(b.plugins))
	copy(plugins, b.plugins)

	return &Application{
		context: ctx,
		plugins: plugins,
		setup:   b.setup,
	}, nil
}

// Application is the fully composed, immutable result of Build: the ordered
// plugin descriptors, the setup hook, and the application context. It is
// owned by the runtime for the duration of Run.
type Application struct {
	context *config.Context
	plugins []plugin.Descriptor
	setup   SetupFunc
}

// Context returns the application context bound at build time.
func (a *Application) Context() *config.Context {
	return a.context
}

// Plugins returns the plugin descriptors in registration order.
func (a *Application) Plugins() []plugin.Descriptor {
	out := make([]plugin.Descriptor, len(a.plugins))
	copy(out, a.plugins)
	return out
}
