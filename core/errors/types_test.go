package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "NEWS_API_KEY",
		Message: "is required",
	}

	assert.Equal(t, "validation error on field 'NEWS_API_KEY': is required", err.Error())
}

func TestExternalAPIError_Error(t *testing.T) {
	t.Run("without upstream code", func(t *testing.T) {
		err := &ExternalAPIError{StatusCode: 503, Message: "service unavailable", API: "article"}
		assert.Equal(t, "external API error from article: 503 - service unavailable", err.Error())
	})

	t.Run("with upstream code", func(t *testing.T) {
		err := &ExternalAPIError{StatusCode: 401, Code: "apiKeyInvalid", Message: "bad key", API: "newsapi"}
		assert.Equal(t, "external API error from newsapi: 401 apiKeyInvalid - bad key", err.Error())
	})
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(&ValidationError{Field: "PORT"}))
	assert.True(t, IsValidation(fmt.Errorf("config: %w", &ValidationError{Field: "PORT"})))
	assert.False(t, IsValidation(errors.New("some other error")))
}

func TestIsExternalAPI(t *testing.T) {
	assert.True(t, IsExternalAPI(&ExternalAPIError{API: "newsapi"}))
	assert.False(t, IsExternalAPI(errors.New("some other error")))
	assert.False(t, IsExternalAPI(nil))
}

func TestAsExternalAPI_Wrapped(t *testing.T) {
	original := &ExternalAPIError{StatusCode: 429, API: "newsapi"}
	wrapped := WrapError(original, "fetch headlines")

	apiErr, ok := AsExternalAPI(wrapped)
	require.True(t, ok)
	assert.Equal(t, 429, apiErr.StatusCode)

	_, ok = AsExternalAPI(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "context"))

	original := errors.New("connection refused")
	wrapped := WrapError(original, "scrape article")
	assert.Equal(t, "scrape article: connection refused", wrapped.Error())
	assert.True(t, errors.Is(wrapped, original))
}
