package storage

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a store failure
type ErrorType int

const (
	// ErrTypeRead indicates the file could not be read
	ErrTypeRead ErrorType = iota
	// ErrTypeParse indicates malformed YAML
	ErrTypeParse
	// ErrTypeVersion indicates an unsupported file version
	ErrTypeVersion
	// ErrTypeInvalid indicates a well-formed file with out-of-range content
	ErrTypeInvalid
	// ErrTypeWrite indicates the file could not be written
	ErrTypeWrite
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeRead:
		return "Read Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeVersion:
		return "Version Error"
	case ErrTypeInvalid:
		return "Invalid Data"
	case ErrTypeWrite:
		return "Write Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// StoreError describes a failure loading or flushing a persisted file.
type StoreError struct {
	Type    ErrorType
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Type, e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Path)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(t ErrorType, path, message string, err error) *StoreError {
	return &StoreError{Type: t, Path: path, Message: message, Err: err}
}

// IsStoreErrorType reports whether err is a StoreError of type t.
func IsStoreErrorType(err error, t ErrorType) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}
