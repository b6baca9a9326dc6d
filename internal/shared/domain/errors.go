package domain

import (
	"errors"
	"fmt"
)

// Code classifies a failure for callers that branch on outcome.
type Code string

const (
	// CodeNotFound means no resolvable product or product id existed for
	// the requested operation.
	CodeNotFound Code = "NOT_FOUND"
	// CodeBadRequest means an external service rejected or failed the call.
	CodeBadRequest Code = "BAD_REQUEST"
	// CodeUnknown is an uncategorized failure.
	CodeUnknown Code = "UNKNOWN"
)

// Error is a coded error carrying an optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// NotFound creates a NOT_FOUND error.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// BadRequest creates a BAD_REQUEST error wrapping the cause.
func BadRequest(message string, cause error) *Error {
	return &Error{Code: CodeBadRequest, Message: message, cause: cause}
}

// Unknown creates an UNKNOWN error wrapping the cause.
func Unknown(message string, cause error) *Error {
	return &Error{Code: CodeUnknown, Message: message, cause: cause}
}

// CodeOf returns the code of err, or CodeUnknown when err carries none.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}
