package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainHasher(t *testing.T) {
	h := PlainHasher{}

	stored, err := h.Hash("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", stored)

	assert.NoError(t, h.Compare(stored, "12345678"))
	assert.ErrorIs(t, h.Compare(stored, "1234567"), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Compare(stored, "12345678 "), ErrPasswordMismatch)
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	stored, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored)

	assert.NoError(t, h.Compare(stored, "s3cret"))
	assert.ErrorIs(t, h.Compare(stored, "wrong"), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Compare("not-a-hash", "s3cret"), ErrPasswordMismatch)
}

func TestNewPasswordHasher(t *testing.T) {
	assert.IsType(t, PlainHasher{}, NewPasswordHasher("plain", 0))

	h := NewPasswordHasher("bcrypt", 99)
	require.IsType(t, BcryptHasher{}, h)
	assert.Equal(t, bcrypt.DefaultCost, h.(BcryptHasher).Cost)
}
