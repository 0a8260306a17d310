// Package errors provides structured error types for the protoboard core.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages that carry the offending input
//   - Error wrapping with context preservation
//
// # Error Families
//
// Decode/resolve errors (UNSUPPORTED_COLOR, INVALID_BAND_COUNT,
// UNRECOGNIZED_MARKING) are raised when input text matches no supported
// marking grammar; the offending input is always included in the message.
// Encode errors (UNSUPPORTED_TOLERANCE, VALUE_NOT_REPRESENTABLE,
// AMBIGUOUS_UNIT) are raised when a numeric value has no representation
// under the target scheme. Placement deliberately never errors: exhausting
// board space truncates further placements of that type instead of failing
// the whole layout.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnrecognizedMarking, "no grammar matches %q", marking)
//	if errors.Is(err, errors.ErrCodeUnrecognizedMarking) {
//	    // Handle decode failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidBOM, origErr, "row %d", row)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Decode/resolve errors
	ErrCodeUnsupportedColor    Code = "UNSUPPORTED_COLOR"
	ErrCodeInvalidBandCount    Code = "INVALID_BAND_COUNT"
	ErrCodeUnrecognizedMarking Code = "UNRECOGNIZED_MARKING"

	// Encode errors
	ErrCodeUnsupportedTolerance  Code = "UNSUPPORTED_TOLERANCE"
	ErrCodeValueNotRepresentable Code = "VALUE_NOT_REPRESENTABLE"
	ErrCodeAmbiguousUnit         Code = "AMBIGUOUS_UNIT"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidBOM     Code = "INVALID_BOM"
	ErrCodeInvalidAddress Code = "INVALID_ADDRESS"
	ErrCodeInvalidSurface Code = "INVALID_SURFACE"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
