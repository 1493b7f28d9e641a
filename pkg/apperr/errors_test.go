package apperr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movies-api/pkg/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("title is required")

	assert.Equal(t, "title is required", err.Error())
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("unknown sort field")
	err := apperr.NewValidationWrap("invalid sort", inner)

	assert.Equal(t, "invalid sort: unknown sort field", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestNewValidationFields_StableMessage(t *testing.T) {
	err := apperr.NewValidationFields("validation failed", map[string]string{
		"Title":    "This field is required",
		"Duration": "Minimum value is 1",
	})

	assert.Equal(t, "validation failed: Duration: Minimum value is 1; Title: This field is required", err.Error())
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty title")
	wrapped := fmt.Errorf("create movie: %w", original)

	var ve *apperr.ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "empty title", ve.Message)
}

func TestStoreError_MatchesSentinelAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.NewStoreError("count", cause)

	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store unavailable: count: connection refused", err.Error())
}

func TestStoreError_KeepsContextErrors(t *testing.T) {
	err := fmt.Errorf("get movies: %w", apperr.NewStoreError("find", context.DeadlineExceeded))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
}

func TestNewStoreError_NilAndIdempotent(t *testing.T) {
	assert.NoError(t, apperr.NewStoreError("count", nil))

	first := apperr.NewStoreError("count", errors.New("boom"))
	second := apperr.NewStoreError("find", first)
	assert.Same(t, first, second)
}

func TestPlainErrorsAreNotStoreErrors(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperr.ErrNotFound)

	assert.False(t, errors.Is(err, apperr.ErrStoreUnavailable))
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
