package errors

import (
	"errors"
	"fmt"
)

// Code categorizes tracker errors so callers can branch without string matching
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed a value the operation cannot accept
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a character or saved record does not exist
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates a character name is already taken
	CodeAlreadyExists Code = "already_exists"

	// CodeNothingToUndo indicates the undo history is empty
	CodeNothingToUndo Code = "nothing_to_undo"

	// CodeNothingToRedo indicates the redo history is empty
	CodeNothingToRedo Code = "nothing_to_redo"

	// CodePersistence indicates the save/load collaborator failed
	CodePersistence Code = "persistence"

	// CodeInternal indicates an internal error
	CodeInternal Code = "internal"
)

// Error is an application error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving the code of a
// wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var trackerErr *Error
	if errors.As(err, &trackerErr) {
		return &Error{
			Code:    trackerErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(trackerErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// DuplicateName reports an add or rename onto a name that is already in the roster
func DuplicateName(name string) *Error {
	return Newf(CodeAlreadyExists, "a character named %q already exists", name).
		WithMeta("name", name)
}

// UnknownCharacter reports a reference to a character that is not in the roster
func UnknownCharacter(name string) *Error {
	return Newf(CodeNotFound, "no character named %q", name).
		WithMeta("name", name)
}

// NothingToUndo reports an empty undo history
func NothingToUndo() *Error {
	return New(CodeNothingToUndo, "nothing to undo")
}

// NothingToRedo reports an empty redo history
func NothingToRedo() *Error {
	return New(CodeNothingToRedo, "nothing to redo")
}

// Persistence wraps a save/load failure; the cause is kept unchanged
func Persistence(err error, message string) *Error {
	return WrapWithCode(err, CodePersistence, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Is checks if the error carries a specific code
func Is(err error, code Code) bool {
	var trackerErr *Error
	if errors.As(err, &trackerErr) {
		return trackerErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsAlreadyExists checks if the error is a duplicate name error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsNothingToUndo checks if the error reports an empty undo history
func IsNothingToUndo(err error) bool {
	return Is(err, CodeNothingToUndo)
}

// IsNothingToRedo checks if the error reports an empty redo history
func IsNothingToRedo(err error) bool {
	return Is(err, CodeNothingToRedo)
}

// IsPersistence checks if the error came from the save/load collaborator
func IsPersistence(err error) bool {
	return Is(err, CodePersistence)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var trackerErr *Error
	if errors.As(err, &trackerErr) {
		return trackerErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var trackerErr *Error
	if errors.As(err, &trackerErr) {
		return trackerErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
