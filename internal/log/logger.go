// Package log writes the gnote debug log.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gnote-tools/cli/internal/domain"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
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

// ParseLevel converts a log_level setting to a Level, case insensitive.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger appends timestamped lines to a file. It is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	w        io.WriteCloser
	minLevel Level
}

var (
	defaultLogger   domain.Logger = NopLogger{}
	defaultLoggerMu sync.RWMutex
)

// New opens logPath for appending with 0600 permissions, creating its
// directory with 0700.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{w: file, minLevel: minLevel}, nil
}

// Open returns the logger selected by the enable_log and log_level settings.
// A disabled log is a NopLogger.
func Open(logPath string, enabled bool, level string) (domain.Logger, error) {
	if !enabled {
		return NopLogger{}, nil
	}
	return New(logPath, ParseLevel(level))
}

// Named returns a logger that prefixes every message with component.
func (l *Logger) Named(component string) domain.Logger {
	return &named{base: l, prefix: component + ": "}
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Close()
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s: %s\n", time.Now().Format("2006-01-02 15:04:05"), level, message)

	if _, err := io.WriteString(l.w, line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

type named struct {
	base   *Logger
	prefix string
}

func (n *named) Debug(format string, args ...any) { n.base.log(LevelDebug, n.prefix+format, args...) }
func (n *named) Info(format string, args ...any)  { n.base.log(LevelInfo, n.prefix+format, args...) }
func (n *named) Warn(format string, args ...any)  { n.base.log(LevelWarn, n.prefix+format, args...) }
func (n *named) Error(format string, args ...any) { n.base.log(LevelError, n.prefix+format, args...) }
func (n *named) Close() error                     { return nil }

// SetDefault installs the logger used by the package-level helpers.
// A nil logger restores the NopLogger.
func SetDefault(l domain.Logger) {
	if l == nil {
		l = NopLogger{}
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

// Default returns the logger used by the package-level helpers.
func Default() domain.Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Package-level helpers for code without an injected logger.

func Debug(format string, args ...any) { Default().Debug(format, args...) }
func Info(format string, args ...any)  { Default().Info(format, args...) }
func Warn(format string, args ...any)  { Default().Warn(format, args...) }
func Error(format string, args ...any) { Default().Error(format, args...) }

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = (*named)(nil)
	_ domain.Logger = NopLogger{}
)
