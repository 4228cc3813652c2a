// Package errs declares the error kinds shared by the vector, raytrace and encoding packages.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a value outside an operation's domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivisionByZero is a specialisation of ErrInvalidArgument.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrBinaryData reports a buffer that cannot satisfy a read.
	ErrBinaryData = errors.New("binary data")
)

// ErrorCode represents a numeric error code for efficient error handling
type ErrorCode int

const (
	ErrorCodeSuccess ErrorCode = 0

	// Argument error codes (1000-1999)

	ErrorCodeInvalidArgument ErrorCode = 1001
	ErrorCodeDivisionByZero  ErrorCode = 1002

	// Data error codes (2000-2999)

	ErrorCodeBinaryData ErrorCode = 2001

	ErrorCodeUnknownError ErrorCode = 9999
)

// String returns a short name for the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeSuccess:
		return "success"
	case ErrorCodeInvalidArgument:
		return "invalid_argument"
	case ErrorCodeDivisionByZero:
		return "division_by_zero"
	case ErrorCodeBinaryData:
		return "binary_data"
	default:
		return "unknown"
	}
}

// Error is an error kind with additional context
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel of the error's kind. A division by zero is also an invalid argument.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Code == ErrorCodeInvalidArgument || e.Code == ErrorCodeDivisionByZero
	case ErrDivisionByZero:
		return e.Code == ErrorCodeDivisionByZero
	case ErrBinaryData:
		return e.Code == ErrorCodeBinaryData
	}
	return false
}

// New creates a new error of the given kind
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// InvalidArgument creates an ErrorCodeInvalidArgument error with a formatted message.
func InvalidArgument(format string, args ...any) *Error {
	return New(ErrorCodeInvalidArgument, fmt.Sprintf(format, args...), nil)
}

// DivisionByZero creates an ErrorCodeDivisionByZero error for the named operation.
func DivisionByZero(op string) *Error {
	return New(ErrorCodeDivisionByZero, op+": division by zero", nil)
}

var errorCodeMap = []struct {
	err  error
	code ErrorCode
}{
	// order matters: the narrower kind first
	{ErrDivisionByZero, ErrorCodeDivisionByZero},
	{ErrInvalidArgument, ErrorCodeInvalidArgument},
	{ErrBinaryData, ErrorCodeBinaryData},
}

// GetErrorCode returns the error code for a given error
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ErrorCodeSuccess
	}

	var kindErr *Error
	if errors.As(err, &kindErr) {
		return kindErr.Code
	}

	for _, m := range errorCodeMap {
		if errors.Is(err, m.err) {
			return m.code
		}
	}

	return ErrorCodeUnknownError
}
