package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/api"
	"canopy/internal/debuglog"
	"canopy/internal/domain"
)

func newAuthService(backend *failingBackend) *AuthService {
	if backend != nil {
		return NewAuthService(NewAPIService(backend, debuglog.NewRing(debuglog.DefaultCapacity)))
	}
	return NewAuthService(newFixtureAPIService())
}

func TestCheckSessionRestoresUser(t *testing.T) {
	svc := newAuthService(nil)
	require.True(t, svc.Loading())
	require.Nil(t, svc.User())

	svc.CheckSession(context.Background())

	assert.False(t, svc.Loading())
	require.NotNil(t, svc.User())
	assert.True(t, svc.IsAuthenticated())
}

func TestCheckSessionRejectedStaysAnonymous(t *testing.T) {
	svc := newAuthService(&failingBackend{err: &api.AuthError{Message: "session expired"}})

	svc.CheckSession(context.Background())

	assert.False(t, svc.Loading())
	assert.Nil(t, svc.User())
	assert.False(t, svc.IsAuthenticated())
}

func TestCheckSessionTransportFailureStaysAnonymous(t *testing.T) {
	svc := newAuthService(&failingBackend{err: &api.NetworkError{Err: errors.New("connection refused")}})

	svc.CheckSession(context.Background())

	assert.False(t, svc.Loading())
	assert.Nil(t, svc.User())
}

func TestLoginStoresUser(t *testing.T) {
	svc := newAuthService(nil)

	user, err := svc.Login(context.Background(), domain.LoginPayload{
		Email:    "grower@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, user, svc.User())
	assert.False(t, svc.Loading())
}

func TestLoginFailureLeavesUserUnchanged(t *testing.T) {
	svc := newAuthService(&failingBackend{err: &api.StatusError{StatusCode: 400, Message: "invalid credentials"}})

	user, err := svc.Login(context.Background(), domain.LoginPayload{
		Email:    "grower@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.Nil(t, svc.User())
}

func TestLogoutClearsUserImmediately(t *testing.T) {
	svc := newAuthService(nil)

	_, err := svc.Login(context.Background(), domain.LoginPayload{
		Email:    "grower@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, svc.User())

	svc.Logout()
	assert.Nil(t, svc.User())
	assert.False(t, svc.IsAuthenticated())
}
