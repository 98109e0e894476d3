// Package password wraps bcrypt hashing for stored credentials.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a raw password does not match the stored hash.
var ErrMismatch = errors.New("password mismatch")

// HashPassword derives a salted bcrypt hash from a raw password.
func HashPassword(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks a raw password against a stored bcrypt hash.
func ComparePassword(hash, raw string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
