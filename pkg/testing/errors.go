package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/floatlabel/pkg/errors"
)

// RecordingHandler is an errors.ErrorHandler that keeps everything reported.
type RecordingHandler struct {
	mu     sync.Mutex
	errs   []*errors.FieldError
	panics []*errors.PanicError
}

// RecordErrors installs a RecordingHandler as the global handler for the
// duration of t.
func RecordErrors(t testing.TB) *RecordingHandler {
	t.Helper()
	h := &RecordingHandler{}
	prev := errors.DefaultHandler
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

// HandleError implements errors.ErrorHandler.
func (h *RecordingHandler) HandleError(err *errors.FieldError) {
	h.mu.Lock()
	h.errs = append(h.errs, err)
	h.mu.Unlock()
}

// HandlePanic implements errors.ErrorHandler.
func (h *RecordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	h.panics = append(h.panics, err)
	h.mu.Unlock()
}

// Errors returns the reported errors in order.
func (h *RecordingHandler) Errors() []*errors.FieldError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.FieldError(nil), h.errs...)
}

// Panics returns the recovered panics in order.
func (h *RecordingHandler) Panics() []*errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PanicError(nil), h.panics...)
}

// ErrorsOfKind returns the reported errors of kind.
func (h *RecordingHandler) ErrorsOfKind(kind errors.ErrorKind) []*errors.FieldError {
	var out []*errors.FieldError
	for _, err := range h.Errors() {
		if err.Kind == kind {
			out = append(out, err)
		}
	}
	return out
}
