package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("user_1", "secret", time.Hour, DevTokenIssuer)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "user_1", claims.Subject)
	assert.Equal(t, DevTokenIssuer, claims.Issuer)
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), parsed.Method.Alg())
}

func TestGenerateJWT_RejectsEmptyInput(t *testing.T) {
	_, err := GenerateJWT("", "secret", time.Hour, DevTokenIssuer)
	assert.Error(t, err)
	_, err = GenerateJWT("user_1", "", time.Hour, DevTokenIssuer)
	assert.Error(t, err)
}
