package logger

import (
	"github.com/philipp01105/stamplog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	InfoLevel  = core.InfoLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	DebugLevel = core.DebugLevel
)

// Filter Re-export type and constants for convenience
type Filter = core.Filter

const (
	RankFilter    = core.RankFilter
	UrgencyFilter = core.UrgencyFilter
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
