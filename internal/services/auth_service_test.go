package services

import (
	"testing"

	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*fakeUserRepo, AuthService) {
	userRepo := newFakeUserRepo()
	return userRepo, NewAuthService(userRepo, "test-secret", 60)
}

func TestRegister(t *testing.T) {
	userRepo, service := newAuthFixture()

	user, err := service.Register(&dto.RegisterRequest{
		Email:    "alice@test.dev",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@test.dev", user.Email)
	assert.Equal(t, auth.RoleMember, user.Role, "defaults to member")

	stored := userRepo.users["alice@test.dev"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash, "password must be hashed")
	assert.True(t, auth.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestRegister_ClubManagerRole(t *testing.T) {
	_, service := newAuthFixture()

	user, err := service.Register(&dto.RegisterRequest{
		Email:    "manager@test.dev",
		Password: "secret123",
		Name:     "Manager",
		Role:     auth.RoleClubManager,
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleClubManager, user.Role)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	_, service := newAuthFixture()

	_, err := service.Register(&dto.RegisterRequest{
		Email:    "mallory@test.dev",
		Password: "secret123",
		Name:     "Mallory",
		Role:     auth.RoleAdmin,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, service := newAuthFixture()

	req := &dto.RegisterRequest{Email: "alice@test.dev", Password: "secret123", Name: "Alice"}
	_, err := service.Register(req)
	require.NoError(t, err)

	_, err = service.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	_, service := newAuthFixture()

	_, err := service.Register(&dto.RegisterRequest{Email: "alice@test.dev", Password: "123", Name: "Alice"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestLogin(t *testing.T) {
	_, service := newAuthFixture()
	_, err := service.Register(&dto.RegisterRequest{Email: "alice@test.dev", Password: "secret123", Name: "Alice"})
	require.NoError(t, err)

	resp, err := service.Login(&dto.LoginRequest{Email: "alice@test.dev", Password: "secret123"})
	require.NoError(t, err)

	require.NotEmpty(t, resp.AccessToken)
	claims, err := auth.ParseToken(resp.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice@test.dev", claims.Email)
	assert.Equal(t, string(models.UserRoleMember), claims.Role)
	assert.Equal(t, resp.User.ID, claims.Sub)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, service := newAuthFixture()
	_, err := service.Register(&dto.RegisterRequest{Email: "alice@test.dev", Password: "secret123", Name: "Alice"})
	require.NoError(t, err)

	_, err = service.Login(&dto.LoginRequest{Email: "alice@test.dev", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, service := newAuthFixture()

	_, err := service.Login(&dto.LoginRequest{Email: "ghost@test.dev", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
