// Package logging wraps zap's sugared logger behind a small, explicit surface.
//
// Every demo in this repo prints through a *Logger that was constructed once and
// handed to whoever needs it. Nothing in this package (or anywhere else in the
// repo) reaches for a package-level global: if a component logs, its constructor
// asks for a *Logger.
//
// Two constructors cover the whole repo:
//
//   - New(mode): a real logger, "dev" (console, debug level) or "prod" (JSON,
//     info level)
//   - Nop(): a discarding logger for tests and benchmarks
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// Logger is a thin wrapper over zap's sugared logger.
//
// It exists so library packages depend on a type this module owns rather than
// on zap directly, and so tests can swap in Nop() without build flags.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a Logger for the given mode.
//
// "prod" and "production" select zap's production config (JSON, info level).
// Anything else selects the development config (console, debug level).
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{s: zl.Sugar()}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

// Sync flushes buffered entries. Call it before process exit.
func (l *Logger) Sync() {
	_ = l.s.Sync()
}

// Debug logs at debug level with alternating key/value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

// Info logs at info level with alternating key/value pairs.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.s.Infow(msg, keysAndValues...)
}

// Warn logs at warn level with alternating key/value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.s.Warnw(msg, keysAndValues...)
}

// Error logs at error level with alternating key/value pairs.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.s.Errorw(msg, keysAndValues...)
}

// Fatal logs at fatal level and exits the process.
func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	l.s.Fatalw(msg, keysAndValues...)
}

// With returns a child Logger that always carries the given key/value pairs.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{s: l.s.With(keysAndValues...)}
}
