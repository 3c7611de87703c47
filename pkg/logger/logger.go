// Package logger provides a small leveled logger writing to stdout and,
// optionally, to a log file. All packages consume it through their own
// narrow Logger interfaces, so it can be swapped in tests.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level log severity level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger leveled logger with printf-style methods
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New creates a logger writing to stdout and to the given file.
// An empty file path means stdout only.
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stdout
	var f *os.File

	if filePath != "" {
		f, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
		}
		w = io.MultiWriter(os.Stdout, f)
	}

	return &Logger{
		level: lvl,
		out:   log.New(w, "", log.LstdFlags),
		file:  f,
	}, nil
}

// Close closes the underlying log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug logs a message at DEBUG level
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, v...)
}

// Info logs a message at INFO level
func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, "INFO", format, v...)
}

// Warn logs a message at WARN level
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, "WARN", format, v...)
}

// Error logs a message at ERROR level
func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, "ERROR", format, v...)
}

// Fatal logs a message at ERROR level and exits with code 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "FATAL", format, v...)
	os.Exit(1)
}

func (l *Logger) logf(lvl Level, tag, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}

func parseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level %q", s)
	}
}
