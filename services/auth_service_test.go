package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(openTestDB(t), "test-secret")
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	auth := newTestAuth(t)

	user, token, err := auth.Register("Alice", "Alice@Example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	loggedIn, token, err := auth.Login("alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	auth := newTestAuth(t)

	_, _, err := auth.Register("", "alice@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = auth.Register("Alice", "alice@example.com", "short")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	auth := newTestAuth(t)

	_, _, err := auth.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = auth.Register("Allie", "ALICE@example.com", "different1")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_BadCredentials(t *testing.T) {
	auth := newTestAuth(t)

	_, _, err := auth.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = auth.Login("alice@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, _, err = auth.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestAuthService_TokenFromOtherSecretRejected(t *testing.T) {
	auth := newTestAuth(t)
	stranger := NewAuthService(auth.DB, "another-secret")

	_, token, err := stranger.Register("Mallory", "mallory@example.com", "secret77")
	require.NoError(t, err)

	_, err = auth.ParseToken(token)
	assert.Error(t, err)
}
