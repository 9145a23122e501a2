package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for the error categories of the generator.
var (
	// ErrConfiguration indicates a rejected Configuration Vector.
	ErrConfiguration = errors.New("configuration error")

	// ErrStorage indicates a directory or file write failed during generation.
	ErrStorage = errors.New("storage error")

	// ErrNotFound indicates no Generation Record exists for an application name.
	ErrNotFound = errors.New("not found")

	// ErrArchive indicates reading a source file or writing the sink failed while streaming.
	ErrArchive = errors.New("archive error")

	// ErrConflict indicates the application name already has a Generation Record.
	ErrConflict = errors.New("conflict")
)

// Error captures structured error information for one failed operation.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Op is the operation that failed (optional).
	Op string

	// Message is the specific description.
	Message string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the error's kind so errors.Is(err, ErrNotFound) works even when
// a cause is attached.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(op, message string) error {
	return &Error{Kind: ErrConfiguration, Op: op, Message: message}
}

// NewStorageError creates a storage error wrapping cause.
func NewStorageError(op, message string, cause error) error {
	return &Error{Kind: ErrStorage, Op: op, Message: message, Cause: cause}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(op, message string) error {
	return &Error{Kind: ErrNotFound, Op: op, Message: message}
}

// NewArchiveError creates an archive error wrapping cause.
func NewArchiveError(op, message string, cause error) error {
	return &Error{Kind: ErrArchive, Op: op, Message: message, Cause: cause}
}

// NewConflictError creates a conflict error.
func NewConflictError(op, message string) error {
	return &Error{Kind: ErrConflict, Op: op, Message: message}
}
