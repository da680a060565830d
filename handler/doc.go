// Package handler provides the Handler interface that the logger
// dispatches entries to, and the Stats counters handlers keep.
//
// Handlers are synchronous: Handle returns only after the entry has been
// written, and it returns the write error instead of dropping the line.
// The logger treats such an error as fatal for the call.
//
// Built-in handlers:
//
//   - consolehandler.SyncConsoleHandler writes formatted entries to a
//     single io.Writer (default: os.Stdout) under a mutex.
package handler
