package logger

import (
	"encoding/json"
	"fmt"

	"github.com/kbukum/avatax/errors"
)

// recordWriter is implemented by backends that can render a LogRecord as
// structured fields instead of a single JSON message.
type recordWriter interface {
	writeRecord(level Level, rec *LogRecord)
}

// Logger is the per-client diagnostic sink. Its configuration is fixed at
// construction and read-only afterwards, so one Logger is safe to share
// between concurrent calls.
type Logger struct {
	backend       Backend
	level         Level
	enabled       bool
	captureBodies bool
}

// New creates a logger from cfg. Misconfigurations (unknown level, a custom
// backend missing any of the four methods) are reported once at Error level
// and replaced by their defaults.
func New(cfg Config) *Logger {
	cfg.ApplyDefaults()

	l := &Logger{
		enabled:       cfg.Enabled,
		captureBodies: cfg.LogRequestAndResponseInfo,
	}

	var problems []*errors.AvalaraError

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		problems = append(problems, errors.Configuration("logging.level", err.Error()))
	}
	l.level = level

	switch b := cfg.Backend.(type) {
	case nil:
		l.backend = newDefaultBackend(&cfg)
	case Backend:
		l.backend = b
	default:
		l.backend = newDefaultBackend(&cfg)
		problems = append(problems, errors.Configuration("logging.backend",
			fmt.Sprintf("custom log backend %T must implement Error, Warn, Info and Debug; using the default backend", b)))
	}

	for _, p := range problems {
		l.Error(p.Error())
	}
	return l
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{backend: NewZapBackend(nil), level: LevelError}
}

// Enabled reports whether a message of the given severity would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.enabled && l.level >= level
}

// CaptureBodies reports whether LogRecords should carry full payloads.
func (l *Logger) CaptureBodies() bool {
	return l.captureBodies
}

// Level returns the configured level.
func (l *Logger) Level() Level {
	return l.level
}

// Error logs an error message.
func (l *Logger) Error(msg string) { l.write(LevelError, msg) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string) { l.write(LevelWarn, msg) }

// Info logs an info message.
func (l *Logger) Info(msg string) { l.write(LevelInfo, msg) }

// Debug logs a debug message.
func (l *Logger) Debug(msg string) { l.write(LevelDebug, msg) }

// Emit writes rec to the backend. Only the first Emit of a record has any
// effect; failed calls are written at Error, successful ones at Info.
func (l *Logger) Emit(rec *LogRecord) {
	if rec == nil || !rec.markEmitted() {
		return
	}
	level := rec.Level()
	if !l.Enabled(level) {
		return
	}
	if rw, ok := l.backend.(recordWriter); ok {
		rw.writeRecord(level, rec)
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		l.write(level, fmt.Sprintf("%s %s: %d (record not serializable: %v)", rec.HTTPMethod, rec.RequestURI, rec.StatusCode, err))
		return
	}
	l.write(level, string(data))
}

func (l *Logger) write(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	switch level {
	case LevelError:
		l.backend.Error(msg)
	case LevelWarn:
		l.backend.Warn(msg)
	case LevelInfo:
		l.backend.Info(msg)
	default:
		l.backend.Debug(msg)
	}
}
