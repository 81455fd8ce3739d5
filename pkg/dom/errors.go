package dom

import "fmt"

// Code classifies an Error. Every code maps to exactly one exported
// sentinel.
type Code string

const (
	// CodeNotCached: a lookup or removal hit a node with no usable cache
	// entry (untagged, or tagged but already removed).
	CodeNotCached Code = "not_cached"

	// CodeUnsupportedKind: mapping hit a node kind with no registered
	// factory.
	CodeUnsupportedKind Code = "unsupported_kind"

	// CodeInvalidIndex: indexed insertion outside the current child range.
	CodeInvalidIndex Code = "invalid_index"

	// CodeInvalidSubtree: relative insertion against a reference node that
	// is not a child of the invoked element.
	CodeInvalidSubtree Code = "invalid_subtree"

	// CodeEmptyList: first/last requested from an empty node list.
	CodeEmptyList Code = "empty_list"

	// CodeHost: the host document rejected or failed an operation.
	CodeHost Code = "host"
)

// Error is the structured error for the wrapper layer.
type Error struct {
	// Code is the failure class.
	Code Code

	// Op is the operation that failed (e.g. "cache.get").
	Op string

	// Message is a short description of the failure.
	Message string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error with the same code, so errors.Is(err, ErrNotCached)
// works regardless of operation and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is matching.
var (
	ErrNotCached       = &Error{Code: CodeNotCached, Message: "node is not cached"}
	ErrUnsupportedKind = &Error{Code: CodeUnsupportedKind, Message: "no factory for this node kind"}
	ErrInvalidIndex    = &Error{Code: CodeInvalidIndex, Message: "index out of child range"}
	ErrInvalidSubtree  = &Error{Code: CodeInvalidSubtree, Message: "reference node is not a child of this element"}
	ErrEmptyList       = &Error{Code: CodeEmptyList, Message: "node list is empty"}
	ErrHost            = &Error{Code: CodeHost, Message: "host document operation failed"}
)

// newError creates an *Error with a formatted message.
func newError(code Code, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

// hostError wraps a failure surfaced by the host document.
func hostError(op string, err error) *Error {
	return &Error{Code: CodeHost, Op: op, Message: "host document operation failed", Wrapped: err}
}
