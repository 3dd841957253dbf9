package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes structured entries through a
// charmbracelet/log logger.
type LogHandler struct {
	// Logger receives the entries. Nil falls back to a stderr logger.
	Logger *log.Logger
	// Verbose adds stack traces to panic entries.
	Verbose bool
}

// stderrLogger backs handlers built without a logger.
var stderrLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "floatlabel"})

// NewLogHandler returns a LogHandler writing to logger, or to stderr when nil.
func NewLogHandler(logger *log.Logger) *LogHandler {
	if logger == nil {
		logger = stderrLogger
	}
	return &LogHandler{Logger: logger}
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger == nil {
		return stderrLogger
	}
	return h.Logger
}

// HandleError logs a FieldError. Layout errors are logged at debug level since
// the field recovers from them by rendering at zero width.
func (h *LogHandler) HandleError(err *FieldError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String()}
	if err.Field != "" {
		kv = append(kv, "field", err.Field)
	}
	kv = append(kv, "err", err.Err)
	if err.Kind == KindLayout {
		h.logger().Debug("field error", kv...)
		return
	}
	h.logger().Error("field error", kv...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "value", err.Value}
	if err.Field != "" {
		kv = append(kv, "field", err.Field)
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error("recovered panic", kv...)
}
