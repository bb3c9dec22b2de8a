package errors

import stderrors "errors"

type ErrorType string

const (
	ErrorTypeConfig   ErrorType = "CONFIG"
	ErrorTypeHash     ErrorType = "HASH"
	ErrorTypeCopy     ErrorType = "COPY"
	ErrorTypeInternal ErrorType = "INTERNAL"
)

type Error struct {
	Type    ErrorType
	Message string
	Code    int // process exit code
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ConfigError(message string, err error) *Error {
	return &Error{
		Type:    ErrorTypeConfig,
		Message: message,
		Code:    2,
		Err:     err,
	}
}

func HashError(message string, err error) *Error {
	return &Error{
		Type:    ErrorTypeHash,
		Message: message,
		Code:    1,
		Err:     err,
	}
}

func CopyError(message string, err error) *Error {
	return &Error{
		Type:    ErrorTypeCopy,
		Message: message,
		Code:    1,
		Err:     err,
	}
}

// ExitCode extracts the exit code for err, defaulting to 1 for
// anything that is not an *Error.
func ExitCode(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return 1
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, t ErrorType) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == t
}
