// Package logger configures the process-wide slog logger.
package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Interface defines the logging methods library code depends on.
type Interface interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Logger wraps slog behind the Interface.
type Logger struct {
	logger *slog.Logger
}

// New creates a logger at INFO level.
func New() *Logger {
	return NewWithLevel(slog.LevelInfo)
}

// NewWithLevel creates a logger writing colored output to stderr.
// Color is dropped when stderr is not a terminal.
func NewWithLevel(level slog.Level) *Logger {
	return &Logger{logger: slog.New(newHandler(level))}
}

// Setup installs a logger at the given level as the slog default.
// Verbose lowers the level to DEBUG with source locations.
func Setup(verbose, debug bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(newHandler(level)))
}

func newHandler(level slog.Level) slog.Handler {
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Error creates a structured error field
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
