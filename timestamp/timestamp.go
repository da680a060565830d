package timestamp

import (
	"fmt"
	"time"
)

const (
	microsPerSecond = int64(1_000_000)

	// unsetString is returned by String for the zero Timestamp
	unsetString = "0000/00/00 00:00:00"

	layout = "2006/01/02 15:04:05"
)

// Seconds bounds of the supported calendar, years -262144 through 262143.
var (
	minSeconds = time.Date(-262144, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxSeconds = time.Date(262143, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// now is swapped out in tests that need a fixed wall clock
var now = time.Now

// Timestamp is an instant with microsecond resolution, counted from the
// Unix epoch. Negative counts are instants before the epoch.
type Timestamp struct {
	micros int64
}

// New returns the unset Timestamp.
func New() Timestamp {
	return Timestamp{}
}

// FromMicroseconds wraps v verbatim. No range checks are applied.
func FromMicroseconds(v int64) Timestamp {
	return Timestamp{micros: v}
}

// FromTime converts t, truncating it to whole microseconds.
func FromTime(t time.Time) Timestamp {
	return Timestamp{micros: t.UnixMicro()}
}

// Now captures the current wall-clock time.
//
// It panics if the system clock reports a time before the Unix epoch:
// no meaningful Timestamp exists for a host in that state.
func Now() Timestamp {
	t := now()
	secs := t.Unix()
	if secs < 0 {
		panic(fmt.Sprintf("timestamp: system clock %s is before the Unix epoch", t.UTC().Format(time.RFC3339)))
	}
	return Timestamp{micros: secs*microsPerSecond + int64(t.Nanosecond()/1000)}
}

// MicrosecondsSinceEpoch returns the raw microsecond count.
func (ts Timestamp) MicrosecondsSinceEpoch() int64 {
	return ts.micros
}

// IsUnset reports whether ts is the zero sentinel.
func (ts Timestamp) IsUnset() bool {
	return ts.micros == 0
}

// Time converts ts to a time.Time in the local zone.
func (ts Timestamp) Time() time.Time {
	return time.UnixMicro(ts.micros)
}

// String formats ts as "YYYY/MM/DD HH:MM:SS" in local time. Years past
// 9999 print with as many digits as they need.
func (ts Timestamp) String() string {
	if ts.micros == 0 {
		return unsetString
	}

	secs := ts.micros / microsPerSecond
	if secs < minSeconds || secs > maxSeconds {
		// Out of calendar range: show the epoch instead of failing.
		secs = 0
	}

	return time.Unix(secs, 0).UTC().In(time.Local).Format(layout)
}

// Compare returns -1, 0 or +1 depending on whether ts is before, equal to,
// or after o.
func (ts Timestamp) Compare(o Timestamp) int {
	switch {
	case ts.micros < o.micros:
		return -1
	case ts.micros > o.micros:
		return 1
	default:
		return 0
	}
}

// Equal reports whether ts and o hold the same count.
func (ts Timestamp) Equal(o Timestamp) bool {
	return ts.micros == o.micros
}

// Before reports whether ts is strictly earlier than o.
func (ts Timestamp) Before(o Timestamp) bool {
	return ts.micros < o.micros
}

// After reports whether ts is strictly later than o.
func (ts Timestamp) After(o Timestamp) bool {
	return ts.micros > o.micros
}
