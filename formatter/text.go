package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/stamplog/core"
)

// DefaultTimestampFormat is the layout of the time between tag and message
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// TextFormatter formats log entries as "[LEVEL]time:message" lines
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level tags
var levelTags = [...]string{
	core.InfoLevel:  "[INFO]",
	core.ErrorLevel: "[ERROR]",
	core.FatalLevel: "[FATAL]",
	core.DebugLevel: "[DEBUG]",
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.Level.Valid() {
		buf.WriteString(levelTags[entry.Level])
	} else {
		buf.WriteString("[UNKNOWN]")
	}

	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.In(time.Local).AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteByte(':')
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
