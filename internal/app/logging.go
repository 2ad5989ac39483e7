package app

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LogLevel orders log severities.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel maps a config level name to a LogLevel. Unknown names give
// LogLevelInfo; config validation rejects them earlier.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	}
	return LogLevelInfo
}

// Logger writes leveled log lines with key=value fields. Loggers derived
// with WithField share the parent's output and lock.
type Logger struct {
	mu       *sync.Mutex
	level    LogLevel
	output   io.Writer
	prefix   string
	fields   map[string]any
	disabled bool
}

// LoggerConfig configures NewLogger. A nil Output disables the logger.
type LoggerConfig struct {
	Level  LogLevel
	Output io.Writer
	Prefix string
}

// DefaultLoggerConfig logs at info level with the "lazycsv" prefix.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Prefix: "lazycsv",
	}
}

func NewLogger(cfg LoggerConfig) *Logger {
	return &Logger{
		mu:       &sync.Mutex{},
		level:    cfg.Level,
		output:   cfg.Output,
		prefix:   cfg.Prefix,
		fields:   make(map[string]any),
		disabled: cfg.Output == nil,
	}
}

// OpenLogFile creates a logger appending to path, tagged with a fresh
// session id. An empty path returns NullLogger. The returned closer must be
// closed on exit.
func OpenLogFile(path string, level LogLevel) (*Logger, io.Closer, error) {
	if path == "" {
		return NullLogger, io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, NewOperationError("open log", path, err)
	}
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = f
	return NewLogger(cfg).WithField("session", uuid.NewString()), f, nil
}

// WithField derives a logger that adds key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields derives a logger carrying fields on top of l's own.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	child := *l
	child.fields = make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(child.fields, l.fields)
	maps.Copy(child.fields, fields)
	return &child
}

// WithComponent tags lines with the subsystem that wrote them.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return !l.disabled && level >= l.level
}

// Debug, Info, Warn and Error format msg with args like fmt.Sprintf.
func (l *Logger) Debug(msg string, args ...any) { l.log(LogLevelDebug, msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.log(LogLevelInfo, msg, args...) }

func (l *Logger) Warn(msg string, args ...any) { l.log(LogLevelWarn, msg, args...) }

func (l *Logger) Error(msg string, args ...any) { l.log(LogLevelError, msg, args...) }

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000"))
	fmt.Fprintf(&b, " [%s] ", level)
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	if len(l.fields) > 0 {
		b.WriteString(" {")
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
		}
		b.WriteString("}")
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.output, b.String())
}

// NullLogger discards everything.
var NullLogger = &Logger{mu: &sync.Mutex{}, disabled: true}

var (
	appLoggerMu sync.RWMutex
	appLogger   = NullLogger
)

// GetLogger returns the process-wide logger.
func GetLogger() *Logger {
	appLoggerMu.RLock()
	defer appLoggerMu.RUnlock()
	return appLogger
}

// SetLogger sets the process-wide logger. Nil restores NullLogger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NullLogger
	}
	appLoggerMu.Lock()
	defer appLoggerMu.Unlock()
	appLogger = l
}
