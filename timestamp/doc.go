// Package timestamp provides Timestamp, an immutable instant stored as a
// signed count of microseconds since the Unix epoch.
//
// The zero value is the "unset" sentinel. It formats as
// "0000/00/00 00:00:00" rather than as the 1970-01-01 epoch instant, so
// callers can tell a missing time apart from a real one:
//
//	var ts timestamp.Timestamp
//	fmt.Println(ts) // 0000/00/00 00:00:00
//
// Every other value formats as "YYYY/MM/DD HH:MM:SS" in the process's
// local time zone. Sub-second precision is kept in the value but dropped
// from the text form.
//
// Timestamps are plain values: compare them with ==, or order them with
// Compare, Before, and After.
package timestamp
