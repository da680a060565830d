// Package logger is the public API of stamplog. Most users only need to
// import this package.
//
// Instance returns the process-wide Logger. It is created on first use,
// from any goroutine, exactly once: minimum level Info, text lines to
// os.Stdout. The package-level functions Log, Info, Error, Debugf, etc.
// delegate to it:
//
//	logger.Info("ready")
//	// [INFO]2024-05-01 13:37:00:ready
//
// Components that want an isolated logger, tests in particular, build
// one with the Builder and inject it:
//
//	var buf bytes.Buffer
//	log := logger.NewBuilder().
//	    WithWriter(&buf).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// Filtering uses the numeric rank of the levels (Info=0, Error=1,
// Fatal=2, Debug=3): a line is emitted when its rank is at most the
// configured rank. With the default InfoLevel only Info lines are
// written; DebugLevel lets every line through. WithFilter(UrgencyFilter)
// selects the conventional Debug < Info < Error < Fatal ordering instead.
//
// The level is stored atomically, so SetLogLevel may race freely with
// Log. A failed write panics instead of dropping the line.
package logger
