package logger

import (
	"sync"

	"github.com/philipp01105/stamplog/core"
)

var (
	instance     *Logger
	instanceOnce sync.Once
)

// Instance returns the process-wide logger, creating it on first call
// with InfoLevel and a console handler on os.Stdout
func Instance() *Logger {
	instanceOnce.Do(func() {
		instance = NewBuilder().Build()
	})
	return instance
}

// Package-level convenience functions using the shared logger

// SetLogLevel changes the minimum level of the shared logger
func SetLogLevel(level core.Level) {
	Instance().SetLogLevel(level)
}

// Log logs a message at level using the shared logger
func Log(level core.Level, msg string) {
	Instance().Log(level, msg)
}

// Info logs an info message using the shared logger
func Info(msg string) {
	Instance().Info(msg)
}

// Error logs an error message using the shared logger
func Error(msg string) {
	Instance().Error(msg)
}

// Fatal logs a fatal message using the shared logger
func Fatal(msg string) {
	Instance().Fatal(msg)
}

// Debug logs a debug message using the shared logger
func Debug(msg string) {
	Instance().Debug(msg)
}

// Infof logs a formatted info message using the shared logger
func Infof(format string, args ...interface{}) {
	Instance().Infof(format, args...)
}

// Errorf logs a formatted error message using the shared logger
func Errorf(format string, args ...interface{}) {
	Instance().Errorf(format, args...)
}

// Fatalf logs a formatted fatal message using the shared logger
func Fatalf(format string, args ...interface{}) {
	Instance().Fatalf(format, args...)
}

// Debugf logs a formatted debug message using the shared logger
func Debugf(format string, args ...interface{}) {
	Instance().Debugf(format, args...)
}
