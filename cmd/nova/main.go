// Package main is the entry point for the Nova editor shell.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/esengine/nova-editor/internal/app"
	"github.com/esengine/nova-editor/internal/backend"
	"github.com/esengine/nova-editor/internal/config"
	"github.com/esengine/nova-editor/internal/plugin/dialog"
	"github.com/esengine/nova-editor/internal/plugin/fs"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	LogLevel string
	Debug    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	level := app.ParseLogLevel(opts.LogLevel)
	if opts.Debug {
		level = app.LogLevelDebug
	}
	logger := app.NewLogger(app.LoggerConfig{
		Level:  level,
		Output: os.Stderr,
		Prefix: "nova",
	})

	// Load the bundled application context.
	ctx, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load application context: %v\n", err)
		return 1
	}

	application, err := app.NewBuilder().
		WithPlugin(fs.Plugin()).
		WithPlugin(dialog.Plugin()).
		WithSetup(func(s *app.Setup) error {
			s.Log().Info("%s starting up...", s.Context().ProductName)
			s.Log().Debug("plugins registered: %v", s.Plugins())
			return nil
		}).
		Build(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build application: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	rt := app.NewRuntime(app.WithBackend(term), app.WithLogger(logger))

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		rt.Shutdown()
	}()

	if err := rt.Run(application); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.Debug, "d", false, "Enable debug logging (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Nova - extensible editor shell\n\n")
		fmt.Fprintf(os.Stderr, "Usage: nova [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Nova %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts
}
