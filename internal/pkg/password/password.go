// Package password hashes and verifies member credentials with bcrypt.
// Stored hashes embed their cost, so raising the cost later only
// affects newly enrolled members.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const hashCost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hash), nil
}

// ComparePassword reports ErrComparisonFailed on a mismatch; any other
// failure means the stored hash itself is unusable.
func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}
	return nil
}
