package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, err := m.GenerateAccessToken("user-1", "user@example.com", "facility_owner")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, "facility_owner", claims.Role)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	other := NewJWTManager("another-secret", time.Minute)

	token, err := m.GenerateAccessToken("user-1", "user@example.com", "user")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	require.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-1", "user@example.com", "user")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	require.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	_, err := m.ParseAndValidate("not.a.token")
	require.Error(t, err)
}
