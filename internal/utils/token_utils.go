package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DevTokenIssuer marks tokens minted locally rather than by the auth provider.
const DevTokenIssuer = "finance-tracker-dev"

// GenerateJWT signs an HS256 token whose subject is userID. It is used by the
// dev token command and by tests; production tokens come from the auth provider.
func GenerateJWT(userID string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	if userID == "" {
		return "", errors.New("user ID must not be empty")
	}
	if secret == "" {
		return "", errors.New("secret must not be empty")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
