// Package logging provides structured logging for slink over log/slog,
// with component context and key/value field chaining.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config string into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

// Logger interface for structured logging
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
	Error(ctx context.Context, err error, msg string, fields ...interface{})

	With(fields ...interface{}) Logger
	WithComponent(component string) Logger
}

// SlinkLogger implements structured logging for slink
type SlinkLogger struct {
	logger    *slog.Logger
	level     LogLevel
	component string
	fields    map[string]interface{}
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level     LogLevel
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
	Component string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:  LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// NewLogger creates a new structured logger
func NewLogger(config *LoggerConfig) *SlinkLogger {
	if config == nil {
		config = DefaultConfig()
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     slogLevel(config.Level),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return &SlinkLogger{
		logger:    slog.New(handler),
		level:     config.Level,
		component: config.Component,
		fields:    make(map[string]interface{}),
	}
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func (l *SlinkLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	if l.level > LevelDebug {
		return
	}
	l.log(ctx, slog.LevelDebug, nil, msg, fields...)
}

// Info logs an info message
func (l *SlinkLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	if l.level > LevelInfo {
		return
	}
	l.log(ctx, slog.LevelInfo, nil, msg, fields...)
}

// Warn logs a warning message
func (l *SlinkLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	if l.level > LevelWarn {
		return
	}
	l.log(ctx, slog.LevelWarn, err, msg, fields...)
}

// Error logs an error message
func (l *SlinkLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.log(ctx, slog.LevelError, err, msg, fields...)
}

// With creates a new logger with additional fields
func (l *SlinkLogger) With(fields ...interface{}) Logger {
	newFields := make(map[string]interface{}, len(l.fields)+len(fields)/2)
	for k, v := range l.fields {
		newFields[k] = v
	}

	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			if key, ok := fields[i].(string); ok {
				newFields[key] = fields[i+1]
			}
		}
	}

	return &SlinkLogger{
		logger:    l.logger,
		level:     l.level,
		component: l.component,
		fields:    newFields,
	}
}

// WithComponent creates a new logger with component context
func (l *SlinkLogger) WithComponent(component string) Logger {
	return &SlinkLogger{
		logger:    l.logger,
		level:     l.level,
		component: component,
		fields:    l.fields,
	}
}

// log is the internal logging method
func (l *SlinkLogger) log(ctx context.Context, level slog.Level, err error, msg string, fields ...interface{}) {
	attrs := make([]slog.Attr, 0, len(l.fields)+len(fields)/2+2)

	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	for k, v := range l.fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			if key, ok := fields[i].(string); ok {
				attrs = append(attrs, slog.Any(key, fields[i+1]))
			}
		}
	}

	record := slog.NewRecord(time.Now(), level, msg, 0)
	record.AddAttrs(attrs...)

	l.logger.Handler().Handle(ctx, record)
}

// OpTimer tracks the duration of a single engine or script operation.
type OpTimer struct {
	Logger
	startTime time.Time
	operation string
}

// StartOperation begins timing an operation
func (l *SlinkLogger) StartOperation(operation string) *OpTimer {
	return &OpTimer{
		Logger:    l.With("operation", operation),
		startTime: time.Now(),
		operation: operation,
	}
}

// End completes the timing and logs the duration
func (t *OpTimer) End(ctx context.Context) {
	duration := time.Since(t.startTime)
	t.Info(ctx, "Operation completed",
		"duration_ms", duration.Milliseconds(),
		"duration", duration.String(),
	)
}

// EndWithError completes the timing and logs an error
func (t *OpTimer) EndWithError(ctx context.Context, err error) {
	duration := time.Since(t.startTime)
	t.Error(ctx, err, "Operation failed",
		"duration_ms", duration.Milliseconds(),
		"duration", duration.String(),
	)
}
