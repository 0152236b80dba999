package errors

import (
	stderrors "errors"
	"fmt"
)

// Code is a short machine-readable failure identifier.
type Code string

const (
	// Configuration errors.
	CodeDataSetNotFound Code = "DataSetNotFound"
	CodeInvalidDataSet  Code = "InvalidDataSet"
	CodeInvalidArgument Code = "InvalidArgument"

	// Construction errors.
	CodeAlreadyConsumed  Code = "AlreadyConsumed"
	CodeEngineLoadFailed Code = "EngineLoadFailed"

	// Request-building errors.
	CodeInvalidCoordinate Code = "InvalidCoordinate"
	CodeIndexOutOfRange   Code = "IndexOutOfRange"

	// Query errors.
	CodeInvalidQuery     Code = "InvalidQuery"
	CodeTooManyLocations Code = "TooManyLocations"
	CodeNoRoute          Code = "NoRoute"
	CodeNoSegment        Code = "NoSegment"
	CodeNoMatch          Code = "NoMatch"
	CodeNoTable          Code = "NoTable"
	CodeDisabledDataset  Code = "DisabledDataset"
	CodeEngineInternal   Code = "EngineInternalError"

	// Transfer and lifecycle errors.
	CodeAlreadyTransferred Code = "AlreadyTransferred"
	CodeAlreadyClosed      Code = "AlreadyClosed"
)

// Error is the structured error type used throughout the boundary.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + " (caused by: " + e.Cause.Error() + ")"
	}
	return string(e.Code) + ": " + e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error carrying an underlying cause.
func Wrap(code Code, cause error, message string) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the code from err, unwrapping as needed.
// It returns the empty code for nil and for foreign errors.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Convenience constructors for common failure patterns.

// InvalidArgument creates an out-of-domain argument error.
func InvalidArgument(detail string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: detail}
}

// InvalidArgumentf creates an out-of-domain argument error with a
// formatted detail message.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// IndexOutOfRange creates an index bounds error naming the offending
// parameter, the index, and the valid length.
func IndexOutOfRange(what string, index, length int) *Error {
	return &Error{
		Code:    CodeIndexOutOfRange,
		Message: fmt.Sprintf("%s index %d out of range (length %d)", what, index, length),
	}
}

// InvalidCoordinate creates an error for a longitude/latitude pair
// outside the valid geographic range.
func InvalidCoordinate(lon, lat float64) *Error {
	return &Error{
		Code:    CodeInvalidCoordinate,
		Message: fmt.Sprintf("coordinate (%v, %v) outside valid range", lon, lat),
	}
}

// AlreadyConsumed creates the error reported when a finalized config is
// used again.
func AlreadyConsumed() *Error {
	return &Error{Code: CodeAlreadyConsumed, Message: "config already consumed by engine construction"}
}

// AlreadyTransferred creates the error reported on a second buffer
// transfer from the same response.
func AlreadyTransferred() *Error {
	return &Error{Code: CodeAlreadyTransferred, Message: "payload already transferred out of this response"}
}

// AlreadyClosed creates the error reported when a closed handle is used.
func AlreadyClosed(what string) *Error {
	return &Error{Code: CodeAlreadyClosed, Message: what + " is closed"}
}

// EngineLoad wraps an underlying dataset loading failure.
func EngineLoad(cause error, detail string) *Error {
	return &Error{Code: CodeEngineLoadFailed, Message: detail, Cause: cause}
}

// Internal wraps an uncoded lower-level failure.
func Internal(cause error, detail string) *Error {
	return &Error{Code: CodeEngineInternal, Message: detail, Cause: cause}
}
