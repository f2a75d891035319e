package vselect

import (
	"errors"
	"fmt"

	"github.com/cybergodev/vselect/internal"
)

// Core error definitions
var (
	// Path and tree errors
	ErrInvalidPath      = internal.ErrInvalidPath
	ErrEmptyPath        = internal.ErrEmptyPath
	ErrInvalidContainer = internal.ErrInvalidContainer
	ErrTypeMismatch     = internal.ErrTypeMismatch
	ErrIndexOutOfRange  = internal.ErrIndexOutOfRange
	ErrDepthLimit       = errors.New("depth limit exceeded")
	ErrAccessorClosed   = errors.New("accessor is closed")

	// Component errors
	ErrComponentNotFound = errors.New("component not found")
	ErrSelectionLimit    = errors.New("selection limit reached")
	ErrUnknownOption     = errors.New("unknown option")

	// Loading errors
	ErrFetchFailed       = errors.New("fetch failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrSourceTooLarge    = errors.New("option source too large")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Error carries the operation and path of a failed call
type Error struct {
	Op      string `json:"op"`      // Operation that failed
	Path    string `json:"path"`    // Path where the error occurred
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("vselect %s failed at path '%s': %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("vselect %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by operation and cause, or the wrapped chain
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*Error); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

func newOperationError(operation, message string, err error) error {
	return &Error{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

func newPathError(operation, path, message string, err error) error {
	return &Error{
		Op:      operation,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// wrapTreeError turns an internal walk failure into an *Error with the
// offending segment spelled out.
func wrapTreeError(operation string, path Path, err error) error {
	var segErr *internal.SegmentError
	if errors.As(err, &segErr) {
		return newPathError(operation, path.String(), segErr.Error(), segErr.Err)
	}
	return newPathError(operation, path.String(), err.Error(), err)
}

// StatusError reports a non-2xx response from an option source
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %s", e.URL, e.Status)
}

// Unwrap lets errors.Is(err, ErrFetchFailed) match
func (e *StatusError) Unwrap() error {
	return ErrFetchFailed
}

// IsUserError reports whether err was caused by caller input rather than the environment
func IsUserError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidPath),
		errors.Is(err, ErrEmptyPath),
		errors.Is(err, ErrInvalidContainer),
		errors.Is(err, ErrTypeMismatch),
		errors.Is(err, ErrIndexOutOfRange),
		errors.Is(err, ErrDepthLimit):
		return true
	default:
		return false
	}
}
