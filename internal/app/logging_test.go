package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esengine/nova-editor/internal/backend"
)

func TestLoggerWritesToConfiguredSink(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "nova"})

	log.Info("starting %s", "Nova Editor")

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "nova:")
	assert.Contains(t, out, "starting Nova Editor")
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept warn")
	log.Error("kept error")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept warn")
	assert.Contains(t, out, "kept error")
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})

	log.Info("before")
	log.SetLevel(LogLevelDebug)
	log.Debug("after")

	out := buf.String()
	assert.NotContains(t, out, "before")
	assert.Contains(t, out, "after")
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	log.WithComponent("runtime").Info("ready")

	assert.Contains(t, buf.String(), "component=runtime")
}

func TestLoggerWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	_ = parent.WithField("plugin", "fs")

	parent.Info("plain")

	assert.NotContains(t, buf.String(), "plugin=fs")
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic, must not write anywhere.
	NullLogger.Debug("x")
	NullLogger.Info("x")
	NullLogger.Warn("x")
	NullLogger.Error("x")
	NullLogger.WithComponent("test").Info("x")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"", LogLevelInfo},
		{"nonsense", LogLevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), "input %q", tt.in)
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

// The setup hook's diagnostics go through the injected logger, so sink
// substitution makes hook side effects observable.
func TestSetupHookLogsThroughInjectedSink(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "nova"})

	app, err := NewBuilder().
		WithSetup(func(s *Setup) error {
			s.Log().Info("%s starting up...", s.Context().ProductName)
			return nil
		}).
		Build(testContext(t))
	require.NoError(t, err)

	null := backend.NewNull(80, 24)
	null.PostEvent(quitEvent())
	r := NewRuntime(WithBackend(null), WithLogger(log))
	require.NoError(t, r.Run(app))

	assert.Contains(t, buf.String(), "Nova Editor starting up...")
}
