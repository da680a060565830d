// Package formatter defines how log entries are serialized into bytes.
//
// TextFormatter renders one line per entry:
//
//	[INFO]2024-05-01 13:37:00:service started
//
// The level tag comes first with no separator, then the entry time in
// the process's local zone as "YYYY-MM-DD HH:MM:SS", a colon, the
// message and a newline. The date uses dashes; timestamp.Timestamp's
// text form uses slashes. The two formats are unrelated.
//
// TextFormatter implements Formatter, WriterFormatter and
// BufferFormatter. Handlers check for BufferFormatter at construction
// time and prefer it, so the hot path formats straight into a
// handler-owned buffer. Buffers larger than 64 KiB are not returned to
// the pool.
package formatter
