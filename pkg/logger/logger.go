// Package logger provides the scope-tagged file logger used across NavEngine.
// It is a no-op until Init is called, so library packages can log warnings
// unconditionally without forcing setup on embedders or tests.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Level represents log levels
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes scope-tagged lines at or above its level.
type Logger struct {
	Level   Level
	Writer  io.Writer
	Service string
}

var globalLogger *Logger

// Init initializes the global logger, writing to logPath. When the log file
// cannot be created the logger falls back to stderr instead of failing.
func Init(logPath string, level Level, serviceName string) error {
	w, err := openLogFile(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging to stderr\n", err)
		w = os.Stderr
	}
	globalLogger = &Logger{Level: level, Writer: w, Service: serviceName}
	return nil
}

// InitWriter points the global logger at an arbitrary writer. Used by tests.
func InitWriter(w io.Writer, level Level, serviceName string) {
	globalLogger = &Logger{Level: level, Writer: w, Service: serviceName}
}

func openLogFile(logPath string) (io.Writer, error) {
	dir := filepath.Dir(logPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	return f, nil
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DEBUG
	case "WARN", "warn", "warning":
		return WARN
	case "ERROR", "error":
		return ERROR
	default:
		return INFO
	}
}

// log is the core write path. Format:
// [Timestamp] [LEVEL] [Scope] Message {ctx JSON}
func (l *Logger) log(level Level, scope string, msg string, ctx map[string]any) {
	if level < l.Level {
		return
	}

	if l.Service != "" {
		if ctx == nil {
			ctx = make(map[string]any)
		}
		ctx["service"] = l.Service
	}

	line := fmt.Sprintf("[%s]\t[%s]\t[%s]\t%s",
		time.Now().Format("2006-01-02 15:04:05"), level.String(), scope, msg)
	if len(ctx) > 0 {
		if data, err := json.Marshal(ctx); err == nil {
			line += "\t" + string(data)
		}
	}
	fmt.Fprintln(l.Writer, line)
}

// Global functions
func Debug(scope string, msg string, args ...map[string]any) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(DEBUG, scope, msg, getCtx(args))
}

func Info(scope string, msg string, args ...map[string]any) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(INFO, scope, msg, getCtx(args))
}

func Warn(scope string, msg string, args ...map[string]any) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(WARN, scope, msg, getCtx(args))
}

func Error(scope string, msg string, args ...map[string]any) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(ERROR, scope, msg, getCtx(args))
}

func getCtx(args []map[string]any) map[string]any {
	if len(args) > 0 {
		return args[0]
	}
	return nil
}
