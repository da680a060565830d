package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/stamplog/core"
)

// Formatter turns an entry into one complete log line
type Formatter interface {
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter renders an entry straight into w with a single Write.
// Handlers use it when the formatter cannot fill their own buffer.
type WriterFormatter interface {
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter appends the line for entry to a buffer owned by the
// caller. It is the cheapest path and handlers check for it first.
type BufferFormatter interface {
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds formatter options
type Config struct {
	// TimestampFormat is the time layout between tag and message.
	// Empty means DefaultTimestampFormat.
	TimestampFormat string
}

// maxPooledBuffer caps the capacity of buffers kept for reuse
const maxPooledBuffer = 64 * 1024

var linePool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := linePool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	linePool.Put(buf)
}
