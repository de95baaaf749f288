package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	signed, err := Generate("507f1f77bcf86cd799439011", "user@example.com", "test-secret", 1)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Validate(signed, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
}

func TestValidateWrongSecret(t *testing.T) {
	signed, err := Generate("507f1f77bcf86cd799439011", "user@example.com", "test-secret", 1)
	require.NoError(t, err)

	_, err = Validate(signed, "other-secret")
	require.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	signed, err := Generate("507f1f77bcf86cd799439011", "user@example.com", "test-secret", -1)
	require.NoError(t, err)

	_, err = Validate(signed, "test-secret")
	require.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	_, err := Validate("not-a-token", "test-secret")
	require.Error(t, err)
}
