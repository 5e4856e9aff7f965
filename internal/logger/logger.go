// File: internal/logger/logger.go
// Project: OS Final Project
// Description: Structured logging with configurable levels
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-02

// Package logger provides a small structured logger with configurable
// levels and per-component child loggers, in the same shape as the
// teacher's internal/logger package.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the string representation of the log level.
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
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level, defaulting to Info on unknown input.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Logger is a structured logger with a configurable level and an optional
// component tag.
type Logger struct {
	level     Level
	logger    *log.Logger
	mu        *sync.Mutex
	component string
}

// Config holds logger configuration.
type Config struct {
	Level    string
	ToStdout bool
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the default logger. Subsequent calls are no-ops.
func Init(cfg Config) {
	once.Do(func() {
		defaultLogger = New(cfg)
	})
}

// New creates a new Logger instance writing to stdout, or discarding all
// output when cfg.ToStdout is false.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if !cfg.ToStdout {
		w = io.Discard
	}
	return &Logger{
		level:  ParseLevel(cfg.Level),
		logger: log.New(w, "", 0),
		mu:     &sync.Mutex{},
	}
}

// WithComponent returns a new logger tagged with the given component name,
// sharing the underlying writer and mutex with l.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		level:     l.level,
		logger:    l.logger,
		mu:        l.mu,
		component: component,
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	if l.component != "" {
		l.logger.Printf("[%s] %s [%s] %s", timestamp, level.String(), l.component, msg)
	} else {
		l.logger.Printf("[%s] %s %s", timestamp, level.String(), msg)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args...) }

// Fatal logs at fatal level and terminates the process.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(LevelFatal, format, args...)
	os.Exit(1)
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// WithComponent returns a component logger off the default logger,
// initializing a bare stdout logger if Init was never called.
func WithComponent(component string) *Logger {
	if defaultLogger == nil {
		Init(Config{Level: "info", ToStdout: true})
	}
	return defaultLogger.WithComponent(component)
}
