package auth_test

import (
	"testing"
	"time"

	"cardflow/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret-key", time.Hour)

	token, err := tokens.GenerateToken("user_0123456789ab")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := tokens.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user_0123456789ab", userID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret-key", 0)

	_, err := tokens.ParseToken("invalid-token")

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_WrongSecret(t *testing.T) {
	issued, err := auth.NewTokenManager("one", time.Hour).GenerateToken("user_1")
	require.NoError(t, err)

	_, err = auth.NewTokenManager("two", time.Hour).ParseToken(issued)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "user_1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = auth.NewTokenManager("test-secret-key", time.Hour).ParseToken(tokenString)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_MissingUserID(t *testing.T) {
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = auth.NewTokenManager("test-secret-key", time.Hour).ParseToken(tokenString)

	assert.ErrorIs(t, err, auth.ErrInvalidClaims)
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{"user_id": "user_1", "exp": time.Now().Add(time.Hour).Unix()}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = auth.NewTokenManager("test-secret-key", time.Hour).ParseToken(tokenString)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, auth.DefaultTokenTTL)
}

func TestPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, auth.CheckPassword(hash, "s3cret"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
	assert.False(t, auth.CheckPassword("not-a-hash", "s3cret"))
}
