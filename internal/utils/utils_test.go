package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct-horse", hash))
	assert.False(t, CheckPasswordHash("wrong-horse", hash))

	_, err = HashPassword("short")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "expense-manager")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "expense-manager")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)

	_, err = ParseAndValidateJWT(token, "other-secret", "expense-manager")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", -time.Minute, "")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "70.00", FormatAmount(decimal.RequireFromString("70")))
	assert.Equal(t, "-35.00", FormatAmount(decimal.RequireFromString("-35")))
	assert.Equal(t, "0.30", FormatAmount(decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))))
}

func TestDisplayAmount(t *testing.T) {
	assert.Equal(t, "$1,234.50", DisplayAmount(decimal.RequireFromString("1234.5"), "USD"))
	assert.Equal(t, "12.00 XYZ", DisplayAmount(decimal.RequireFromString("12"), "XYZ"))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%coffee%", ContainsPattern("coffee"))
	assert.Equal(t, `%100\%%`, ContainsPattern("100%"))
	assert.Equal(t, `%a\_b%`, ContainsPattern("a_b"))
	assert.Equal(t, `%C:\\tmp%`, ContainsPattern(`C:\tmp`))
}
