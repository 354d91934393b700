package adminuser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/infra/storage/testutil"
)

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(testutil.SetupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.AdminUser{Username: "admin", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestRepository_Create_DuplicateUsername(t *testing.T) {
	repo := NewRepository(testutil.SetupTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.AdminUser{Username: "admin", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.AdminUser{Username: "admin", PasswordHash: "other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo := NewRepository(testutil.SetupTestDB(t))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAdminUserNotFound)
}
