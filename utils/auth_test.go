package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateToken("64f1a9f0c2a4d3b2a1e0f9d8")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1a9f0c2a4d3b2a1e0f9d8", claims.ID)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateToken("64f1a9f0c2a4d3b2a1e0f9d8")
	require.NoError(t, err)

	JwtKey = []byte("different-secret")

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	JwtKey = []byte("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		ID: "64f1a9f0c2a4d3b2a1e0f9d8",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})

	tokenStr, err := expired.SignedString(JwtKey)
	require.NoError(t, err)

	_, err = ParseToken(tokenStr)
	assert.Error(t, err)
}
