package benchmark

import (
	"github.com/philipp01105/stamplog/core"
	"github.com/philipp01105/stamplog/handler"
)

// noopHandler measures the logger's own overhead without any formatting
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
