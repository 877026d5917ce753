// Package logger provides structured logging utilities for the application.
// It wraps log/slog with JSON formatting and supports fan-out to a remote
// Better Stack handler when a token is configured.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogbetterstack "github.com/samber/slog-betterstack"
)

// Logger is the application logger
type Logger struct {
	*slog.Logger
	async *AsyncHandler // non-nil when remote shipping is enabled
}

// Options configures optional logger features.
type Options struct {
	// BetterStackToken enables remote log shipping when non-empty.
	BetterStackToken string
	// BetterStackEndpoint overrides the default ingest endpoint.
	BetterStackEndpoint string
}

// New creates a new logger instance with JSON formatting
func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a new logger instance with JSON formatting writing to the provided writer
func NewWithWriter(level string, w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, handlerOptions(level))
	return &Logger{Logger: slog.New(handler)}
}

// NewWithOptions creates a logger that writes JSON to w and, when a
// Better Stack token is configured, ships records to Better Stack through
// an async pipeline so remote latency never blocks request handling.
func NewWithOptions(level string, w io.Writer, opts Options) *Logger {
	local := slog.NewJSONHandler(w, handlerOptions(level))
	if opts.BetterStackToken == "" {
		return &Logger{Logger: slog.New(local)}
	}

	bsOpt := slogbetterstack.Option{
		Token: opts.BetterStackToken,
		Level: parseLevel(level),
	}
	if opts.BetterStackEndpoint != "" {
		bsOpt.Endpoint = opts.BetterStackEndpoint
	}
	remote := NewAsyncHandler(bsOpt.NewBetterstackHandler(), AsyncOptions{})

	return &Logger{
		Logger: slog.New(NewMultiHandler(local, remote)),
		async:  remote,
	}
}

// Shutdown flushes pending remote log records.
// No-op when remote shipping is disabled.
func (l *Logger) Shutdown(ctx context.Context) error {
	if l == nil || l.async == nil {
		return nil
	}
	return l.async.Shutdown(ctx)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func handlerOptions(level string) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
				// slog uses RFC3339Nano by default, which is fine
			}
			if a.Key == slog.LevelKey {
				a.Key = "level"
				level := a.Value.String()
				if level == "WARN" {
					level = "warning"
				} else {
					level = strings.ToLower(level)
				}
				a.Value = slog.StringValue(level)
			}
			if a.Key == slog.MessageKey {
				a.Key = "message"
			}
			return a
		},
	}
}

// WithModule creates a new entry with module field
func (l *Logger) WithModule(module string) *Logger {
	return &Logger{Logger: l.With("module", module), async: l.async}
}

// WithRequestID creates a new entry with request ID field
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With("request_id", requestID), async: l.async}
}

// WithSessionID creates a new entry with session ID field
func (l *Logger) WithSessionID(sessionID string) *Logger {
	return &Logger{Logger: l.With("session_id", sessionID), async: l.async}
}

// WithError creates a new entry with error field
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.With("error", err), async: l.async}
}

// WithField creates a new entry with a single field
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Logger: l.With(key, value), async: l.async}
}

// WithFields creates a new entry with multiple fields
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{Logger: l.With(args...), async: l.async}
}

// Compatibility methods for logrus-style formatting

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}
