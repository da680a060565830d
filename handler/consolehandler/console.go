package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/stamplog/core"
	"github.com/philipp01105/stamplog/formatter"
	"github.com/philipp01105/stamplog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// SyncOnWrite flushes the writer after every line when it implements
	// Sync() error. Leave it off for terminals and pipes, whose Sync fails.
	SyncOnWrite bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// SyncConsoleHandler writes each entry synchronously under a mutex
type SyncConsoleHandler struct {
	mu              sync.Mutex // protects buf and writer
	writer          zapcore.WriteSyncer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	syncOnWrite     bool
	buf             bytes.Buffer
	stats           *handler.Stats
	closed          bool
}

// NewConsoleHandler creates a new synchronous console handler
func NewConsoleHandler(cfg ConsoleConfig) *SyncConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &SyncConsoleHandler{
		writer:      zapcore.AddSync(cfg.Writer),
		formatter:   cfg.Formatter,
		syncOnWrite: cfg.SyncOnWrite,
		stats:       handler.NewStats(),
	}

	// Cache the optional formatter interfaces, checked in this order on
	// every write: handler-owned buffer, direct write, plain Format.
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(128)
	}

	return h
}

// Handle formats and writes one entry. The returned error is the write
// error, joined with the sync error when SyncOnWrite is set.
func (h *SyncConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return handler.ErrClosed
	}

	err := h.write(entry)
	if h.syncOnWrite {
		err = multierr.Append(err, h.writer.Sync())
	}

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// write must be called with mu held
func (h *SyncConsoleHandler) write(entry *core.Entry) error {
	switch {
	case h.bufferFormatter != nil:
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		return writeAll(h.writer, h.buf.Bytes())
	case h.writerFormatter != nil:
		return h.writerFormatter.FormatTo(entry, h.writer)
	default:
		data, err := h.formatter.Format(entry)
		if err != nil {
			return err
		}
		return writeAll(h.writer, data)
	}
}

func writeAll(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return err
}

// Sync flushes the underlying writer if it supports flushing
func (h *SyncConsoleHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writer.Sync()
}

// Stats returns a snapshot of the current statistics
func (h *SyncConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. The writer itself is not closed; it is
// owned by whoever passed it in.
func (h *SyncConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}
