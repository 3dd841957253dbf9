// Package errors provides structured error reporting for floatlabel.
//
// A field never signals failure through its own API: a displayed validation
// error is plain configuration data. This package records the operational
// faults that can still occur around a field (a panicking callback, an
// unusable layout measurement, a native primitive that refused a command, a
// bad configuration file) and routes them to a replaceable handler.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration loading or conversion error.
	KindConfig
	// KindPlatform indicates a failure reported by the native text primitive.
	KindPlatform
	// KindLayout indicates an unusable layout measurement.
	KindLayout
	// KindCallback indicates a caller-supplied callback failed.
	KindCallback
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPlatform:
		return "platform"
	case KindLayout:
		return "layout"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FieldError is a structured error raised around a text field.
type FieldError struct {
	// Op is the operation that failed (e.g., "floatinput.OnLabelLayout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Field is the ID of the field instance, if any.
	Field string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s [%s] field=%s: %v", e.Op, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// New returns a FieldError for op with the given kind.
func New(op string, kind ErrorKind, err error) *FieldError {
	return &FieldError{Op: op, Kind: kind, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "floatinput.OnChangeText").
	Op string
	// Field is the ID of the field instance, if any.
	Field string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by floatlabel.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FieldError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
