package log

import (
	"log/slog"
)

// CallbackFunc is a function that receives log records
type CallbackFunc func(record slog.Record)

// NewCallbackLogger creates a logger that forwards records to callback.
// The watch view uses it to show log lines inside the TUI.
func NewCallbackLogger(callback CallbackFunc, minLevel slog.Level) *slog.Logger {
	return slog.New(NewCallbackHandler(callback, minLevel))
}
