package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = stderrors.New("sentinel")

func TestAppErrorMessage(t *testing.T) {
	err := NewDuplicateNameError("recipe", "Apple Pie")

	assert.Equal(t, CodeDuplicateName, err.Code)
	assert.Equal(t, `DUPLICATE_NAME: Recipe already exists (recipe "Apple Pie" is already registered)`, err.Error())
	assert.Equal(t, "Apple Pie", err.Metadata["recipe"])
	assert.NotEmpty(t, err.StackTrace)
}

func TestAppErrorWithoutDetails(t *testing.T) {
	err := NewInternalError("")
	assert.Equal(t, "INTERNAL_ERROR: An unexpected error occurred", err.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewNotFoundError("recipe", "Soup").WithCause(errSentinel)

	assert.True(t, stderrors.Is(err, errSentinel))
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeInvalidInput))
}

func TestIsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("scaling failed: %w", NewInvalidInputError("scale factor", "must be positive"))

	assert.True(t, Is(wrapped, CodeInvalidInput))
	assert.Equal(t, CodeInvalidInput, GetCode(wrapped))
}

func TestGetCodeDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, GetCode(errSentinel))
	assert.False(t, Is(errSentinel, CodeNotFound))
	assert.False(t, Is(nil, CodeNotFound))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	appErr := NewNotFoundError("recipe", "Soup")
	assert.Same(t, appErr, Wrap(appErr, "ignored"))

	wrapped := Wrap(errSentinel, "boom")
	require.NotNil(t, wrapped)
	assert.Equal(t, CodeInternal, wrapped.Code)
	assert.Equal(t, "boom", wrapped.Message)
	assert.True(t, stderrors.Is(wrapped, errSentinel))
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("quantity", "")

	assert.Equal(t, "INVALID_INPUT: Invalid input for quantity", err.Error())
	assert.Equal(t, "quantity", err.Metadata["field"])
}
