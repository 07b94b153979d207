package service

import (
	"context"
	"testing"
	"time"

	infraRepo "github.com/sangkips/pharmacy-api/internal/infrastructure/repository"
	"github.com/sangkips/pharmacy-api/pkg/apperror"
	"github.com/sangkips/pharmacy-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := setupTestDB(t)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(infraRepo.NewAdminRepository(db), jwtManager)
}

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	admin, err := svc.Register(ctx, &RegisterInput{
		Email:    "Admin@Pharmacy.local",
		Phone:    "0700000000",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@pharmacy.local", admin.Email)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, &RegisterInput{
			Email:    "admin@pharmacy.local",
			Password: "whatever1",
		})
		assert.Error(t, err)
	})

	t.Run("login with correct credentials", func(t *testing.T) {
		tokens, err := svc.Login(ctx, "admin@pharmacy.local", "s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@pharmacy.local", "wrong-pass")
		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@pharmacy.local", "s3cret-pass")
		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("refresh issues a new pair", func(t *testing.T) {
		tokens, err := svc.Login(ctx, "admin@pharmacy.local", "s3cret-pass")
		require.NoError(t, err)

		refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("refresh rejects garbage tokens", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	})
}
