// Package logger wraps log/slog with a process-wide default logger
// configured once at startup, plus a context-scoped subsystem tag any
// handler can read back without having to thread a *slog.Logger through
// every call. OpenTelemetry exporters, Slack-notification hooks,
// customer/request-ID tagging, and a legacy log-package redirect are
// dropped — nothing in this runtime has a trace collector, a support
// channel, or multi-tenant requests to tag (see DESIGN.md).
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/amp-labs/mote/envutil"
)

type contextKey string

const subsystemKey contextKey = "subsystem"

// Options configures the process-wide logger.
type Options struct {
	// Subsystem is the default tag attached to every log line that has no
	// more specific context override.
	Subsystem string

	// JSON selects slog.JSONHandler over slog.TextHandler.
	JSON bool

	// MinLevel is the minimum level that reaches Output.
	MinLevel slog.Level

	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds a handler and logger from opts without touching global state;
// Configure additionally installs it as the process default.
func New(opts Options) *slog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(output, &slog.HandlerOptions{Level: opts.MinLevel})
	} else {
		handler = slog.NewTextHandler(output, &slog.HandlerOptions{Level: opts.MinLevel})
	}

	// Wrap so a panic annotated via AnnotateError (actor/recover.go does
	// this for recovered handler panics) surfaces its attributes as real
	// log fields instead of an opaque error string.
	handler = &slogErrorLogger{inner: handler}

	return slog.New(handler).With("subsystem", opts.Subsystem)
}

// Configure reads LOG_JSON and LOG_LEVEL (envutil's fluent readers, falling
// back to text/info), builds a logger tagged with subsystem, and installs
// it as slog's process default. cmd/moted calls this once at startup.
func Configure(subsystem string) *slog.Logger {
	opts := Options{
		Subsystem: subsystem,
		JSON:      envutil.Bool("LOG_JSON", envutil.Default(false)).ValueOrFatal(),
		MinLevel:  envutil.SlogLevel("LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrFatal(),
	}

	log := New(opts)
	slog.SetDefault(log)

	return log
}

// WithSubsystem tags ctx so Get(ctx) returns a logger scoped to it, without
// needing to thread a *slog.Logger through every call in between.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	return context.WithValue(ctx, subsystemKey, subsystem)
}

// Get returns the default logger, scoped to ctx's subsystem override if one
// was set via WithSubsystem.
func Get(ctx context.Context) *slog.Logger {
	log := slog.Default()

	if sub, ok := ctx.Value(subsystemKey).(string); ok {
		log = log.With("subsystem", sub)
	}

	return log
}
