package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTELHook adds trace and span IDs to every log entry
type OTELHook struct{}

func (h OTELHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	// Skip if no context
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	// Extract span from context
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return
	}

	// Add trace context to log
	e.Str("trace_id", span.SpanContext().TraceID().String())
	e.Str("span_id", span.SpanContext().SpanID().String())

	if level == zerolog.ErrorLevel {
		span.SetStatus(codes.Error, msg)
	}
}

// Logger wraps zerolog with OTEL integration
type Logger struct {
	zerolog.Logger
}

// NewLogger creates a console logger on stderr for interactive use.
func NewLogger(level string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// NewLoggerTo creates a logger writing to w, used in tests.
func NewLoggerTo(w io.Writer, level string) *Logger {
	return newLogger(w, level)
}

func newLogger(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "dsctl").
		Logger().
		Hook(OTELHook{})

	return &Logger{Logger: logger}
}

// WithContext returns a logger with context (for trace propagation)
func (l *Logger) WithContext(ctx context.Context) *zerolog.Logger {
	logger := l.Logger.With().Ctx(ctx).Logger()
	return &logger
}

// Convenience methods for resolution and cache operations

func (l *Logger) LogCacheHit(ctx context.Context, tier, key string) {
	l.WithContext(ctx).Debug().
		Str("tier", tier).
		Str("key", key).
		Str("operation", "cache_lookup").
		Msg("cache hit")
}

func (l *Logger) LogCacheMiss(ctx context.Context, key string) {
	l.WithContext(ctx).Debug().
		Str("key", key).
		Str("operation", "cache_lookup").
		Msg("cache miss, fetching from directory")
}

func (l *Logger) LogCacheFileError(ctx context.Context, path string, err error) {
	// Corrupt cache files are treated as misses, never surfaced
	l.WithContext(ctx).Debug().
		Err(err).
		Str("path", path).
		Str("operation", "cache_load").
		Msg("unreadable cache file, treating as miss")
}

func (l *Logger) LogRemoteFetch(ctx context.Context, key string, count int, durationMs float64) {
	l.WithContext(ctx).Info().
		Str("key", key).
		Int("records", count).
		Float64("duration_ms", durationMs).
		Str("operation", "remote_fetch").
		Msg("fetched listing from directory")
}

func (l *Logger) LogFuzzyMatch(ctx context.Context, input, displayName, ocid string) {
	l.WithContext(ctx).Info().
		Str("input", input).
		Str("matched_name", displayName).
		Str("ocid", ocid).
		Str("operation", "resolve").
		Msg("resolved via substring match")
}
