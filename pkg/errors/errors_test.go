package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("appointment", nil).StatusCode())
	assert.Equal(t, http.StatusBadRequest, Validation("bad input", nil).StatusCode())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized(nil).StatusCode())
	assert.Equal(t, http.StatusConflict, Conflict("duplicate", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(nil).StatusCode())
}

func TestErrorMessage(t *testing.T) {
	err := NotFound("appointment", nil)
	assert.Equal(t, "appointment not found", err.Error())

	cause := errors.New("sql: no rows in result set")
	wrapped := NotFound("appointment", cause)
	assert.Contains(t, wrapped.Error(), "appointment not found")
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsNotFoundThroughWrapping(t *testing.T) {
	err := fmt.Errorf("failed to load: %w", NotFound("user", nil))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(errors.New("plain")))
}
