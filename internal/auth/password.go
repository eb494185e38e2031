package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when a password does not match the stored credential.
var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordHasher prepares credentials for storage and checks them at login.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(stored, plain string) error
}

// PlainHasher stores passwords as given and compares them verbatim.
type PlainHasher struct{}

func (PlainHasher) Hash(plain string) (string, error) {
	return plain, nil
}

func (PlainHasher) Compare(stored, plain string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptHasher hashes with bcrypt at the configured cost.
type BcryptHasher struct {
	Cost int
}

// Hash hashes a plaintext password with configured cost.
func (h BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a password against its hashed value.
func (BcryptHasher) Compare(stored, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// NewPasswordHasher returns the hasher for the configured mode.
func NewPasswordHasher(mode string, cost int) PasswordHasher {
	if mode == "bcrypt" {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		return BcryptHasher{Cost: cost}
	}
	return PlainHasher{}
}
