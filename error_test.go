package vselect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := &Error{Op: "set", Path: "a.b", Message: "boom", Err: ErrTypeMismatch}
	assert.Equal(t, "vselect set failed at path 'a.b': boom", err.Error())

	err = &Error{Op: "install", Message: "bad name", Err: ErrInvalidConfig}
	assert.Equal(t, "vselect install failed: bad name", err.Error())
}

func TestErrorMatching(t *testing.T) {
	err := newPathError("set", "a.b", "boom", fmt.Errorf("wrapped: %w", ErrIndexOutOfRange))

	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
	assert.True(t, errors.Is(err, &Error{Op: "set", Err: err.(*Error).Err}))
	assert.False(t, errors.Is(err, &Error{Op: "get", Err: err.(*Error).Err}))
	assert.False(t, err.(*Error).Is(nil))
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(newOperationError("get", "x", ErrInvalidPath)))
	assert.True(t, IsUserError(ErrDepthLimit))
	assert.False(t, IsUserError(ErrFetchFailed))
	assert.False(t, IsUserError(nil))
}

func TestStatusError(t *testing.T) {
	err := &StatusError{URL: "http://x/opts", StatusCode: 503, Status: "503 Service Unavailable"}
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), "503 Service Unavailable")
}
