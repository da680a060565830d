// Package core defines the shared types used across stamplog.
//
// It provides the Level type with its filter arithmetic and the Entry
// type that represents a single log event.
//
// Levels keep their declaration order as their numeric rank:
// Info=0, Error=1, Fatal=2, Debug=3. RankFilter, the default, emits a
// line when the requested rank is less than or equal to the configured
// rank. The outcome is unusual: a minimum of InfoLevel emits Info only,
// while a minimum of DebugLevel emits everything. UrgencyFilter is the
// conventional Debug < Info < Error < Fatal ordering and must be
// selected explicitly.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
package core
