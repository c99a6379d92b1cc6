// Package errs defines the error kinds returned by clop. Each kind is a sentinel which can be
// compared with errors.Is; WithArgs and Wrap derive detailed errors of the same kind.
package errs

import (
	"fmt"
)

// Kind errors returned by registration and parsing
var (
	// ErrConfig is returned when an option cannot be registered
	ErrConfig = New("configuration error")
	// ErrUnknownOption is returned when a '-' prefixed argument matches no flag in strict mode
	ErrUnknownOption = New("unknown option")
	// ErrMissingValue is returned when a value-requiring flag is the last argument
	ErrMissingValue = New("missing value")
	// ErrDoubleAssignment is returned when an option is set more than once during one parse
	ErrDoubleAssignment = New("double assignment")
	// ErrValueCoercion is returned when a value cannot be converted to the bound variable's type
	ErrValueCoercion = New("invalid value")
)

// Causes used by registration and conversion
var (
	ErrBindNil          = New("can't bind option to nil")
	ErrNotPointer       = New("variable is not a pointer")
	ErrUnsupportedType  = New("unsupported type")
	ErrNoFlag           = New("option has no flag")
	ErrIllegalShortFlag = New("illegal short flag")
	ErrIllegalLongFlag  = New("illegal long flag")
	ErrIllegalFlag      = New("illegal flag")
	ErrFlagExists       = New("flag already assigned")
	ErrVariableExists   = New("variable already bound")
	ErrNotToggleable    = New("option does not toggle")
	ErrParseString      = New("unable to split argument string")
)

// Error is an error of a given kind. The zero-argument form returned by New acts as the
// sentinel for its kind.
type Error struct {
	sentinel *Error
	msg      string
	format   string
	args     []interface{}
	wrapped  error
}

// New creates a sentinel error with the given message
func New(msg string) *Error {
	e := &Error{msg: msg}
	e.sentinel = e
	return e
}

// Error returns the kind message followed by the formatted detail and the wrapped cause, if any
func (e *Error) Error() string {
	msg := e.sentinel.msg
	if e.format != "" {
		msg += ": " + fmt.Sprintf(e.format, e.args...)
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with a detail message built from format and args
func (e *Error) WithArgs(format string, args ...interface{}) *Error {
	return &Error{
		sentinel: e.sentinel,
		format:   format,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error which wraps err
func (e *Error) Wrap(err error) *Error {
	return &Error{
		sentinel: e.sentinel,
		format:   e.format,
		args:     e.args,
		wrapped:  err,
	}
}

// Is reports whether target is the sentinel of e's kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t == e.sentinel || t == e
	}

	return false
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Args returns the detail arguments
func (e *Error) Args() []interface{} {
	return e.args
}
