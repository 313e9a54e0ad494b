// Structured API error type.
//
// Error is the single error currency of the business layer: services return
// it (possibly wrapped) as soon as a precondition fails, it travels up the
// call stack as a plain error value, and the handler wrapper converts it to
// a JSON envelope exactly once at the HTTP boundary. Nothing in this package
// writes responses or logs; it only describes failures.
package apierr

import (
	"errors"
	"fmt"
)

// Error is a structured API error carrying a taxonomy code, a human-readable
// message, optional details for the client, and an optional status override.
type Error struct {
	Code    Code
	Message string
	Details any

	// status overrides the table default when non-zero. Set via WithStatus.
	status int

	// cause is the underlying error, kept for logs only (never serialized).
	cause error
}

// New creates an Error with the given code and message. The HTTP status
// defaults from the code table and can be overridden with WithStatus.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that records err as its cause. The cause is
// available via Unwrap for logging but is not exposed to clients.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// WithDetails attaches structured details intended for the client.
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// WithStatus overrides the default HTTP status for this error instance.
// A zero status keeps the table default.
func (e *Error) WithStatus(status int) *Error {
	if status != 0 {
		e.status = status
	}
	return e
}

// HTTPStatus returns the effective HTTP status: the per-instance override
// when set, otherwise the table default for the code.
func (e *Error) HTTPStatus() int {
	if e.status != 0 {
		return e.status
	}
	return e.Code.HTTPStatus()
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether err is (or wraps) an Error with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// verbose controls whether internal error detail (driver messages) is
// attached to client-facing database errors. It is set once at startup from
// the development flag and treated as read-only afterwards.
var verbose bool

// SetVerbose toggles inclusion of underlying driver messages in Database
// errors. Call once during boot, before serving traffic.
func SetVerbose(v bool) { verbose = v }

// Verbose reports whether internal error detail is exposed to clients.
func Verbose() bool { return verbose }

// Database classifies a failed database call. Clients always receive the
// generic DB_ERROR message; the driver message is attached as details only
// when the development flag is set, so schema and query details never leak
// from production responses.
func Database(err error) *Error {
	e := Wrap(CodeDBError, "資料庫操作失敗", err)
	if verbose && err != nil {
		e.Details = err.Error()
	}
	return e
}
