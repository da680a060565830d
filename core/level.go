package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// InfoLevel for general informational messages (default)
	InfoLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. It is a tag only; nothing exits.
	FatalLevel
	// DebugLevel for detailed debugging information
	DebugLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "INFO"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= InfoLevel && l <= DebugLevel
}

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return InfoLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Filter decides whether a level passes a configured minimum.
type Filter uint8

const (
	// RankFilter emits when the level's rank is <= the minimum's rank.
	RankFilter Filter = iota
	// UrgencyFilter emits when the level is at least as urgent as the
	// minimum, with Debug < Info < Error < Fatal.
	UrgencyFilter
)

// String returns the string representation of the filter
func (f Filter) String() string {
	switch f {
	case RankFilter:
		return "rank"
	case UrgencyFilter:
		return "urgency"
	default:
		return "unknown"
	}
}

// urgency maps levels onto the conventional verbosity scale
var urgency = [...]int8{
	DebugLevel: 0,
	InfoLevel:  1,
	ErrorLevel: 2,
	FatalLevel: 3,
}

// Allows reports whether a line at level should be emitted when threshold is
// the configured level.
// Undeclared levels never pass.
func (f Filter) Allows(threshold, level Level) bool {
	if !level.Valid() {
		return false
	}
	if f == UrgencyFilter {
		if !threshold.Valid() {
			return false
		}
		return urgency[level] >= urgency[threshold]
	}
	return level <= threshold
}
