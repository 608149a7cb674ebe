package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// BaseHandler carries the level filter shared by the handlers below
type BaseHandler struct {
	level slog.Level
	mu    sync.Mutex
}

// Enabled reports whether the handler handles records at the given level
func (h *BaseHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// CallbackHandler is a slog.Handler that forwards log records to a callback function
type CallbackHandler struct {
	BaseHandler
	callback CallbackFunc
	attrs    []slog.Attr
}

// NewCallbackHandler creates a new slog handler that forwards logs to a callback
func NewCallbackHandler(callback CallbackFunc, level slog.Level) *CallbackHandler {
	return &CallbackHandler{
		BaseHandler: BaseHandler{level: level},
		callback:    callback,
	}
}

// Handle forwards the record, with any stored attributes, to the callback
func (h *CallbackHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.callback == nil {
		return nil
	}

	if len(h.attrs) > 0 {
		record.AddAttrs(h.attrs...)
	}
	h.callback(record)
	return nil
}

// WithAttrs returns a new Handler whose attributes consist of both the receiver's attributes and the arguments
func (h *CallbackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CallbackHandler{
		BaseHandler: BaseHandler{level: h.level},
		callback:    h.callback,
		attrs:       merged,
	}
}

// WithGroup is not supported and returns the receiver
func (h *CallbackHandler) WithGroup(name string) slog.Handler {
	return h
}

// Handler writes one line per record: an optional level prefix, the message,
// then attributes as key=value pairs
type Handler struct {
	BaseHandler
	output io.Writer
	attrs  []slog.Attr
}

// NewHandler creates a new handler for formatted output
func NewHandler(output io.Writer, level slog.Level) *Handler {
	return &Handler{
		BaseHandler: BaseHandler{level: level},
		output:      output,
	}
}

// Handle formats and writes the record
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := levelPrefix(r.Level) + r.Message
	for _, a := range h.attrs {
		msg += formatAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != slog.TimeKey {
			msg += formatAttr(a)
		}
		return true
	})

	_, err := fmt.Fprintln(h.output, msg)
	return err
}

// WithAttrs returns a new Handler that prints attrs on every record
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{
		BaseHandler: BaseHandler{level: h.level},
		output:      h.output,
		attrs:       merged,
	}
}

// WithGroup is not supported and returns the receiver
func (h *Handler) WithGroup(name string) slog.Handler {
	return h
}

// FormatRecord renders a record the way Handler does, without the trailing newline
func FormatRecord(r slog.Record) string {
	msg := levelPrefix(r.Level) + r.Message
	r.Attrs(func(a slog.Attr) bool {
		msg += formatAttr(a)
		return true
	})
	return msg
}

func levelPrefix(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "[ERROR] "
	case level >= slog.LevelWarn:
		return "[WARN] "
	case level >= slog.LevelInfo:
		return "" // No prefix for INFO
	default:
		return "[DEBUG] "
	}
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
}
