// token.go - Issues and verifies the signed bearer tokens used by the API

package auth // Declares the package name

import (
	"errors"
	"time"

	"go-library-backend/config" // Project config (for JWT secret and TTL)

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is returned for any token that cannot be trusted:
// malformed, badly signed, or expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed token payload: who the caller is and what role
// they hold. Expiry is carried in the registered claims.
type Claims struct {
	UserID uint   `json:"user_id"` // Account the token was issued to
	Role   string `json:"role"`    // Account role at issue time
	jwt.RegisteredClaims
}

// IssueToken signs a token for the given account. The token expires
// after the configured TTL.
func IssueToken(userID uint, role string) (string, error) {
	cfg := config.Load() // Load config for JWT secret and TTL

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create JWT token
	return token.SignedString([]byte(cfg.JWTSecret))           // Sign token
}

// VerifyToken parses and validates a bearer token, returning its claims.
func VerifyToken(tokenStr string) (*Claims, error) {
	cfg := config.Load() // Load config for JWT secret

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil // Provide secret key for validation
	})
	if err != nil || !token.Valid { // Signature, shape and expiry all checked here
		return nil, ErrInvalidToken
	}
	return claims, nil
}
