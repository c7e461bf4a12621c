package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgrowth/internal/models"
	"socialgrowth/internal/services"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Update(t *testing.T) {
	users := newMemoryUsers(models.User{ID: "u1", Name: "User", Balance: dec("3")})
	svc := services.NewProfileService(services.NewLedgerService(users))
	ctx := context.Background()

	user, err := svc.Update(ctx, "u1", services.ProfileUpdate{Name: strPtr(" Jane "), Niche: strPtr("Fitness")})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "Fitness", user.Niche)
	assert.True(t, dec("3").Equal(user.Balance))

	// only niche
	user, err = svc.Update(ctx, "u1", services.ProfileUpdate{Niche: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)
	assert.Empty(t, user.Niche)

	// nothing to change
	user, err = svc.Update(ctx, "u1", services.ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)

	stored, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.Name)

	_, err = svc.Get(ctx, "ghost")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
