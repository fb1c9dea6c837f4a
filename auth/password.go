// password.go - Password hashing and verification

package auth // Declares the package name

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Plaintext is a raw password as supplied by a client. It only ever
// lives in memory; a Plaintext value is never persisted or compared
// directly.
type Plaintext string

// Hash is a bcrypt digest of a password. Only this form is stored.
type Hash string

// HashPassword derives a salted bcrypt hash from a plaintext password.
func HashPassword(password Plaintext) (Hash, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return Hash(b), nil
}

// Verify reports whether password matches the stored hash.
func (h Hash) Verify(password Plaintext) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(password)) == nil
}
