// Package crypto contains the password-hashing primitives of the
// application. Hashing is delegated to bcrypt; plaintext passwords never
// leave this package in any return value or log field.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt work factor applied to every new password hash.
// Raising it increases CPU cost per hash; existing hashes keep the cost
// they were created with and remain verifiable.
const BcryptCost = 12

// ErrPasswordMismatch is returned by VerifyPassword when the supplied
// plaintext does not match the stored hash. Callers should treat it as an
// authentication failure, not an operational one.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword hashes a plaintext password with bcrypt at [BcryptCost].
// The salt is generated internally by bcrypt, so two calls with the same
// input produce different hashes.
//
// Returns an error if the password is empty or if bcrypt fails
// (e.g. the input exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
//
// Returns nil on match, [ErrPasswordMismatch] when the password is wrong,
// or a wrapped error when the stored value is not a valid bcrypt hash.
func VerifyPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("error verifying password: %w", err)
	}

	return nil
}
