package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("searchTerm", "must not be empty")

	assert.Equal(t, "validation error for field 'searchTerm': must not be empty", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrCollectionNotFound))

	noField := NewValidationError("", "bad request")
	assert.Equal(t, "validation error: bad request", noField.Error())
}

func TestCollectionNotFoundError(t *testing.T) {
	err := NewCollectionNotFoundError("movies")

	assert.Equal(t, "collection named 'movies' not found", err.Error())
	assert.True(t, errors.Is(err, ErrCollectionNotFound))
	assert.False(t, errors.Is(err, ErrCollectionAlreadyExists))
}

func TestCollectionAlreadyExistsError(t *testing.T) {
	err := NewCollectionAlreadyExistsError("movies")

	assert.Equal(t, "collection named 'movies' already exists", err.Error())
	assert.True(t, errors.Is(err, ErrCollectionAlreadyExists))
}

func TestDocumentNotFoundError(t *testing.T) {
	err := NewDocumentNotFoundError("doc123")
	assert.Equal(t, "document with ID 'doc123' not found", err.Error())

	err2 := NewDocumentNotFoundError("doc123", "movies")
	assert.Equal(t, "document with ID 'doc123' not found in collection 'movies'", err2.Error())
	assert.True(t, errors.Is(err2, ErrDocumentNotFound))
	assert.False(t, errors.Is(err2, ErrCollectionNotFound))
}

func TestWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("search failed: %w", NewValidationError("items", "must not be nil"))

	assert.True(t, errors.Is(wrapped, ErrInvalidInput))

	var validationErr *ValidationError
	if assert.True(t, errors.As(wrapped, &validationErr)) {
		assert.Equal(t, "items", validationErr.Field)
	}
}
