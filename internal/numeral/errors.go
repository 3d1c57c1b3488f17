package numeral

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes conversion failures.
type ErrorKind string

const (
	// TypeKind indicates the value's variant is not accepted by the system,
	// or the target system cannot represent the source denotation at all.
	TypeKind ErrorKind = "TYPE_MISMATCH"

	// RangeKind indicates the value lies outside [minimum, maximum] after
	// saturation has been applied. NaN is also reported as RangeKind.
	RangeKind ErrorKind = "OUT_OF_RANGE"

	// FormatKind indicates a numeral with an unknown symbol or an ordering
	// the system forbids.
	FormatKind ErrorKind = "INVALID_FORMAT"
)

// Error is returned by every System operation and by the converter.
//
// Errors are raised at the point of detection and never carry partial
// results. Retrying is never meaningful: conversions are pure.
type Error struct {
	// Kind identifies the error category.
	Kind ErrorKind

	// System is the registry name of the system that rejected the value.
	System string

	// Input is the offending value as text.
	Input string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.System != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.System, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewTypeError creates an Error of kind TypeKind.
func NewTypeError(system string, input any, format string, args ...any) *Error {
	return newError(TypeKind, system, input, format, args...)
}

// NewRangeError creates an Error of kind RangeKind.
func NewRangeError(system string, input any, format string, args ...any) *Error {
	return newError(RangeKind, system, input, format, args...)
}

// NewFormatError creates an Error of kind FormatKind.
func NewFormatError(system string, input any, format string, args ...any) *Error {
	return newError(FormatKind, system, input, format, args...)
}

func newError(kind ErrorKind, system string, input any, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		System:  system,
		Input:   describe(input),
		Message: fmt.Sprintf(format, args...),
	}
}

// describe renders an input for error messages, tolerating nil.
func describe(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

// KindOf returns the ErrorKind of err if it wraps an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsTypeError reports whether err is a TypeKind error.
// Uses errors.As to handle wrapped errors.
func IsTypeError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == TypeKind
}

// IsRangeError reports whether err is a RangeKind error.
func IsRangeError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == RangeKind
}

// IsFormatError reports whether err is a FormatKind error.
func IsFormatError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == FormatKind
}
