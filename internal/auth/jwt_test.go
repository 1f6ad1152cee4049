package auth

import (
	"testing"
	"time"

	"github.com/Kal1-linux/CouponCo/internal/config"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *Service {
	return NewService(&config.Configuration{
		Auth: config.AuthConfig{
			Secret:   secret,
			Validity: time.Hour,
		},
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")

	token, err := svc.GenerateToken("user_01", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_01", claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestTokenCarriesAdminRole(t *testing.T) {
	svc := newTestService("test-secret")

	token, err := svc.GenerateToken("admin_01", true)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := newTestService("secret-a").GenerateToken("user_01", false)
	require.NoError(t, err)

	_, err = newTestService("secret-b").ValidateToken(token)
	require.Error(t, err)
	assert.True(t, ierr.IsPermissionDenied(err))
}

func TestTokenGarbage(t *testing.T) {
	svc := newTestService("test-secret")

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.True(t, ierr.IsPermissionDenied(err))
}

func TestTokenExpired(t *testing.T) {
	svc := NewService(&config.Configuration{
		Auth: config.AuthConfig{
			Secret:   "test-secret",
			Validity: -time.Minute,
		},
	})

	token, err := svc.GenerateToken("user_01", false)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, ierr.IsPermissionDenied(err))
}
