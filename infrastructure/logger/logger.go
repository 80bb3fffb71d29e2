package logger

import (
	"fmt"
	"time"
)

// logEntry is a single formatted line handed off to the Backend's write
// channel. The level travels with the line so per-writer level filtering
// happens on the consuming side.
type logEntry struct {
	level Level
	log   []byte
}

// Logger writes formatted log lines for a single subsystem to a Backend.
// The zero value is not usable; construct with Backend.Logger or
// RegisterSubSystem.
type Logger struct {
	level        Level
	subsystemTag string
	backend      *Backend
	writeChan    chan logEntry
}

// SetLevel changes the logging level of the logger to level. Messages sent
// to the logger at a lower level are dropped.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// Level returns the current logging level of the logger.
func (l *Logger) Level() Level {
	return l.level
}

// Backend returns the logging backend this logger writes to.
func (l *Logger) Backend() *Backend {
	return l.backend
}

func (l *Logger) write(level Level, levelStr string, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	line := fmt.Sprintf("%s [%s] %s %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"), levelStr, l.subsystemTag, fmt.Sprintf(format, args...))
	select {
	case l.writeChan <- logEntry{level: level, log: []byte(line)}:
	default:
		// The backend isn't running (or its buffer is saturated); logging
		// must never block the caller.
	}
}

// Tracef formats and writes a trace-level log line.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.write(LevelTrace, "TRC", format, args...)
}

// Debugf formats and writes a debug-level log line.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(LevelDebug, "DBG", format, args...)
}

// Infof formats and writes an info-level log line.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(LevelInfo, "INF", format, args...)
}

// Warnf formats and writes a warn-level log line.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(LevelWarn, "WRN", format, args...)
}

// Errorf formats and writes an error-level log line.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(LevelError, "ERR", format, args...)
}

// Criticalf formats and writes a critical-level log line.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, "CRT", format, args...)
}

// defaultBackend is the process-wide backend used by RegisterSubSystem. A
// caller embedding this module into a larger node can get it through
// DefaultBackend, call AddLogFile/AddLogWriter on it, then Run it, before
// any subsystem logs.
var defaultBackend = NewBackend()

// RegisterSubSystem returns a Logger for the given subsystem tag, writing
// to the package's default Backend. Subsystem tags are short, fixed-width
// strings (e.g. "PDB1" for the patch database) so log lines line up in a
// terminal.
func RegisterSubSystem(subsystemTag string) *Logger {
	return defaultBackend.Logger(subsystemTag)
}

// DefaultBackend returns the backend used by RegisterSubSystem, so a host
// process can attach writers to it before any subsystem starts logging.
func DefaultBackend() *Backend {
	return defaultBackend
}
