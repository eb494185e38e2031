package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindAuthentication, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestToDomainError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("wrapped domain error is preserved", func(t *testing.T) {
		orig := NewConflict(CodeUserExists, "exists")
		got := ToDomainError(fmt.Errorf("create: %w", orig))
		require.NotNil(t, got)
		assert.Equal(t, KindConflict, got.Kind)
		assert.Equal(t, CodeUserExists, got.Code)
		assert.Equal(t, http.StatusConflict, got.HTTPStatus)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		cause := errors.New("connection reset")
		got := ToDomainError(cause)
		require.NotNil(t, got)
		assert.Equal(t, KindInternal, got.Kind)
		assert.Equal(t, "internal server error", got.Message)
		assert.ErrorIs(t, got, cause)
	})
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("login: %w", NewUnauthorized("user not found"))
	assert.True(t, IsKind(err, KindAuthentication))
	assert.False(t, IsKind(err, KindInternal))
	assert.False(t, IsKind(errors.New("plain"), KindAuthentication))
}
