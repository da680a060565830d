package logger

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/philipp01105/stamplog/core"
	"github.com/philipp01105/stamplog/handler"
	"github.com/philipp01105/stamplog/handler/consolehandler"
)

// Logger filters messages by level and hands the survivors to its handler
type Logger struct {
	handler handler.Handler
	level   atomic.Int32
	filter  core.Filter
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler handler.Handler
	writer  io.Writer
	level   core.Level
	filter  core.Filter
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:  core.InfoLevel, // Default level
		filter: core.RankFilter,
	}
}

// WithHandler sets the handler. It takes precedence over WithWriter.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithWriter makes the logger write text lines to w through a console handler
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFilter selects how levels are compared against the minimum
func (b *Builder) WithFilter(f core.Filter) *Builder {
	b.filter = f
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil {
		h = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: b.writer})
	}

	l := &Logger{
		handler: h,
		filter:  b.filter,
	}
	l.level.Store(int32(b.level))
	return l
}

// SetLogLevel changes the minimum level from this point forward
func (l *Logger) SetLogLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Level returns the configured minimum level
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// Filter returns the level comparison in use
func (l *Logger) Filter() core.Filter {
	return l.filter
}

// Enabled reports whether a message at level would be written
func (l *Logger) Enabled(level core.Level) bool {
	return l.filter.Allows(l.Level(), level)
}

// Log writes msg at the specified level. It panics if the write fails.
func (l *Logger) Log(level core.Level, msg string) {
	// Level check optimization - exit early BEFORE any allocations
	if !l.Enabled(level) {
		return
	}

	l.log(level, msg)
}

func (l *Logger) log(level core.Level, msg string) {
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg

	err := l.handler.Handle(entry)
	core.PutEntry(entry)

	if err != nil {
		panic(errors.Wrapf(err, "stamplog: write %s line", level))
	}
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.Log(core.InfoLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.Log(core.ErrorLevel, msg)
}

// Fatal logs a fatal message. The process keeps running.
func (l *Logger) Fatal(msg string) {
	l.Log(core.FatalLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.Log(core.DebugLevel, msg)
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(core.InfoLevel, format, args...)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(core.ErrorLevel, format, args...)
}

// Fatalf logs a fatal message with formatting. The process keeps running.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.Logf(core.FatalLevel, format, args...)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(core.DebugLevel, format, args...)
}

// Stats returns the handler's write statistics, or a zero Snapshot when
// the handler does not track any
func (l *Logger) Stats() handler.Snapshot {
	if sp, ok := l.handler.(handler.StatsProvider); ok {
		return sp.Stats()
	}
	return handler.Snapshot{}
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	return l.handler.Close()
}
