package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	access, refresh, err := GenerateTokens("quản lý", 7)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "quản lý", claims["user_role"])
	assert.EqualValues(t, 7, claims["id"])
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_role": "nhân viên",
		"id":        uint(1),
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_role": "nhân viên",
		"id":        uint(1),
		"exp":       time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	require.Error(t, err)
}

func TestRefreshTokensRoundTrip(t *testing.T) {
	_, refresh, err := GenerateTokens("customer", 3)
	require.NoError(t, err)

	newAccess, newRefresh, err := RefreshTokens(refresh)
	require.NoError(t, err)

	claims, err := ValidateToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, "customer", claims["user_role"])
	assert.EqualValues(t, 3, claims["id"])
	assert.NotEmpty(t, newRefresh)
}
