package services

import (
	"testing"
	"time"

	"github.com/mohameddsalmann/resturants-mangment/repository"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(f *fixture) *AuthService {
	return NewAuthService(repository.NewUserRepository(f.DB), repository.NewRestaurantRepository(f.DB), "test-secret", time.Hour)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)

	user, err := svc.Register("  Marco@Example.COM ", "secret123", "Marco")
	require.NoError(t, err)
	assert.Equal(t, "marco@example.com", user.Email)

	_, err = svc.Register("marco@example.com", "other", "Dup")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)

	_, err := svc.Register("marco@example.com", "secret123", "Marco")
	require.NoError(t, err)

	token, user, err := svc.Login("marco@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "marco@example.com", user.Email)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "owner", claims.Role)

	_, _, err = svc.Login("marco@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
