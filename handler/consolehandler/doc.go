// Package consolehandler provides SyncConsoleHandler, which writes
// formatted log entries to one io.Writer (default: os.Stdout).
//
// The writer is the only shared mutable resource. It is wrapped as a
// zapcore.WriteSyncer and guarded by the handler's mutex; formatting and
// writing happen under that lock, so concurrent lines never interleave.
// The lock is released on every path, including failed writes.
package consolehandler
