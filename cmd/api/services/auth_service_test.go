package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilllink/cmd/api/auth"
	"skilllink/repositories"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repositories.NewUserRepository(t.TempDir()))
}

func TestRegisterMintsDecodableToken(t *testing.T) {
	svc := newAuthService(t)

	identity, token, err := svc.Register("pavian", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, "pavian", identity.Username)

	parsed, err := auth.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register("pavian", "hunter2")
	require.NoError(t, err)

	_, _, err = svc.Register("pavian", "other-pass")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register("   ", "hunter2")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, _, err = svc.Register("pavian", "ab")
	require.ErrorAs(t, err, &validationErr)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	registered, _, err := svc.Register("pavian", "hunter2")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		identity, token, err := svc.Login("pavian", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, identity.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("pavian", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login("nobody", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestProfile(t *testing.T) {
	svc := newAuthService(t)

	identity, _, err := svc.Register("pavian", "hunter2")
	require.NoError(t, err)

	user, err := svc.Profile(identity)
	require.NoError(t, err)
	assert.Equal(t, "pavian", user.Username)

	_, err = svc.Profile(auth.Identity{ID: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
