// Package app provides the startup orchestration core of the Nova shell:
// the application builder, the runtime, and the bootstrap failure contract.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/esengine/nova-editor/internal/plugin"
)

// Application errors.
var (
	// ErrQuit signals that the event loop should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the runtime is already running.
	ErrAlreadyRunning = errors.New("runtime already running")

	// ErrNilContext indicates no application context was provided.
	ErrNilContext = errors.New("application context is nil")

	// ErrNilApplication indicates Run was given a nil application.
	ErrNilApplication = errors.New("application is nil")

	// ErrNoBackend indicates the runtime has no windowing backend.
	ErrNoBackend = errors.New("no backend configured")
)

// BuildError aggregates every malformed plugin descriptor found at build
// time. The caller sees all misconfigurations in one report rather than the
// first.
type BuildError struct {
	Invalid []*plugin.InvalidDescriptorError
}

func (e *BuildError) Error() string {
	if e == nil || len(e.Invalid) == 0 {
		return "build failed"
	}
	if len(e.Invalid) == 1 {
		return "build: " + e.Invalid[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "build: %d invalid plugins:", len(e.Invalid))
	for _, inv := range e.Invalid {
		b.WriteString("\n  ")
		b.WriteString(inv.Error())
	}
	return b.String()
}

// Unwrap exposes the individual descriptor errors to errors.Is/As.
func (e *BuildError) Unwrap() []error {
	out := make([]error, len(e.Invalid))
	for i, inv := range e.Invalid {
		out[i] = inv
	}
	return out
}

// SetupError reports a setup hook failure. Fatal: the event loop is never
// entered and the hook is not retried.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string {
	return "setup: " + e.Err.Error()
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// RuntimeStartError reports a bootstrap failure inside Run: a missing
// context, a plugin registration failure, or a backend that could not start.
// Fatal, never retried.
type RuntimeStartError struct {
	Stage string // "context", "plugin <name>", "backend", "event loop"
	Err   error
}

func (e *RuntimeStartError) Error() string {
	return "start " + e.Stage + ": " + e.Err.Error()
}

func (e *RuntimeStartError) Unwrap() error {
	return e.Err
}
