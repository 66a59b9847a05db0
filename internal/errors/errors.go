package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure kind independently of its message.
type ErrorCode string

const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Contract violations. These are raised as panic payloads: they mean the
	// generator picked the wrong conversion for a parameter.
	ErrMissingClosure        ErrorCode = "MISSING_CLOSURE"
	ErrMissingNativeTemplate ErrorCode = "MISSING_NATIVE_TEMPLATE"

	// Templates
	ErrTemplateParse  ErrorCode = "TEMPLATE_PARSE"
	ErrTemplateRender ErrorCode = "TEMPLATE_RENDER"

	// Strategy selection
	ErrUnknownStrategy  ErrorCode = "UNKNOWN_STRATEGY"
	ErrUnsupportedParam ErrorCode = "UNSUPPORTED_PARAM"

	// Catalogs and call descriptions
	ErrCatalogLoad    ErrorCode = "CATALOG_LOAD"
	ErrCatalogParse   ErrorCode = "CATALOG_PARSE"
	ErrCatalogInvalid ErrorCode = "CATALOG_INVALID"

	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// Error is a structured error carrying a stable code.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. It returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return codedErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of err, or ErrUnknown if err is not an *Error.
func GetErrorCode(err error) ErrorCode {
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return codedErr.Code
	}
	return ErrUnknown
}
