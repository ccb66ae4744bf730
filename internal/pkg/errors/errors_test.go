package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_MapsHTTPStatus(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeCircuitOpen, http.StatusServiceUnavailable},
		{ErrCodeEventPublish, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, New(tt.code, "x").HTTPStatus)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")

	err := Wrap(cause, ErrCodeInternal, "failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[INTERNAL_ERROR] failed: boom", err.Error())

	assert.Nil(t, Wrap(nil, ErrCodeInternal, "failed"))

	notFound := NotFound("movie not found", cause)
	assert.Same(t, notFound, Wrap(fmt.Errorf("ctx: %w", notFound), ErrCodeInternal, "ignored"))
}

func TestHelpers(t *testing.T) {
	cause := stderrors.New("title: required")
	err := fmt.Errorf("create: %w", InvalidInput(cause))

	assert.True(t, Is(err, ErrCodeInvalidInput))
	assert.False(t, Is(err, ErrCodeNotFound))
	assert.Equal(t, ErrCodeInvalidInput, GetCode(err))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(err))
	assert.ErrorIs(t, err, cause)

	plain := stderrors.New("plain")
	assert.Equal(t, ErrCodeInternal, GetCode(plain))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(plain))
}
