// Package errs defines the typed errors shared by the list engine and
// the CLI. Absence of an element is a normal outcome and is signaled by
// sentinel returns at the call site; the errors here cover the cases
// that are genuine failures: nil arguments, out-of-range positions, and
// invalid configuration or scripts.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Type categorizes an error.
type Type string

const (
	TypeInvalidArgument Type = "invalid_argument"
	TypeNotFound        Type = "not_found"
	TypeOutOfBounds     Type = "out_of_bounds"
	TypeConfig          Type = "config"
	TypeInternal        Type = "internal"
)

// Common error codes.
const (
	CodeNilNode       = "ERR_NIL_NODE"
	CodeOutOfBounds   = "ERR_POSITION_OUT_OF_BOUNDS"
	CodeValueNotFound = "ERR_VALUE_NOT_FOUND"
	CodeNameNotFound  = "ERR_NAME_NOT_FOUND"
	CodeConfigInvalid = "ERR_CONFIG_INVALID"
	CodeScriptInvalid = "ERR_SCRIPT_INVALID"
	CodeInternal      = "ERR_INTERNAL"
)

// Error is a structured error with a category, a stable code, and the
// operation that produced it.
type Error struct {
	Type    Type
	Code    string
	Op      string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Op != "" {
		parts = append(parts, "op:"+e.Op)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by type and code, so sentinel comparisons work with
// errors.Is even when an error carries extra context.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithOp returns a copy of the error annotated with the operation name.
func (e *Error) WithOp(op string) *Error {
	dup := *e
	dup.Op = op

	return &dup
}

// ErrNilNode is returned when a concrete node was required but nil was
// passed, e.g. InsertAfter with no previous node.
var ErrNilNode = &Error{
	Type:    TypeInvalidArgument,
	Code:    CodeNilNode,
	Message: "previous node must not be nil",
}

// OutOfBounds reports a position that exceeds the current list length.
func OutOfBounds(position int) *Error {
	return &Error{
		Type:    TypeOutOfBounds,
		Code:    CodeOutOfBounds,
		Message: fmt.Sprintf("position %d out of bounds", position),
	}
}

// ValueNotFound reports a payload value that is not present in the list.
func ValueNotFound(value int) *Error {
	return &Error{
		Type:    TypeNotFound,
		Code:    CodeValueNotFound,
		Message: fmt.Sprintf("value %d not found", value),
	}
}

// NameNotFound reports a record name that is not present in the roster.
func NameNotFound(name string) *Error {
	return &Error{
		Type:    TypeNotFound,
		Code:    CodeNameNotFound,
		Message: fmt.Sprintf("name %q not found", name),
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *Error {
	return &Error{
		Type:    TypeConfig,
		Code:    CodeConfigInvalid,
		Message: message,
		Cause:   cause,
	}
}

// NewScriptError creates a script validation error.
func NewScriptError(message string, cause error) *Error {
	return &Error{
		Type:    TypeInvalidArgument,
		Code:    CodeScriptInvalid,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(message string, cause error) *Error {
	return &Error{
		Type:    TypeInternal,
		Code:    CodeInternal,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound reports whether err is a not-found error of any kind.
func IsNotFound(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == TypeNotFound
	}

	return false
}

// IsOutOfBounds reports whether err is an out-of-bounds error.
func IsOutOfBounds(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == TypeOutOfBounds
	}

	return false
}
