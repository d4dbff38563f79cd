package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is a thin chainable wrapper over slog. Scope/file/function are
// carried as attributes so call sites read as
// logger.New("pkg").Function("fn").Err("message", err, "key", value).
type Logger struct {
	log *slog.Logger
}

func init() {
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func New(scope string) Logger {
	return Logger{log: slog.Default().With("scope", scope)}
}

func (l Logger) File(file string) Logger {
	return Logger{log: l.log.With("file", file)}
}

func (l Logger) Function(function string) Logger {
	return Logger{log: l.log.With("function", function)}
}

func (l Logger) With(args ...any) Logger {
	return Logger{log: l.log.With(args...)}
}

func (l Logger) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

func (l Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

// Er logs an error without returning one. For paths where the caller
// handles the failure itself.
func (l Logger) Er(msg string, err error, args ...any) {
	l.log.Error(msg, append([]any{"error", err}, args...)...)
}

// Err logs and returns a wrapped error so call sites can
// `return log.Err("failed to ...", err)`.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.log.Error(msg, append([]any{"error", err}, args...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs a message-only failure and returns it as an error.
func (l Logger) Error(msg string, args ...any) error {
	l.log.Error(msg, args...)
	return fmt.Errorf("%s", msg)
}

// ErMsg logs a message-only failure without returning an error.
func (l Logger) ErMsg(msg string, args ...any) {
	l.log.Error(msg, args...)
}

// ErrMsg is Error without attributes, kept separate to match call sites
// that have nothing to attach.
func (l Logger) ErrMsg(msg string) error {
	l.log.Error(msg)
	return fmt.Errorf("%s", msg)
}
