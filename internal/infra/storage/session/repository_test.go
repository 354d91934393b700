package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/infra/storage/adminuser"
	"github.com/m04kA/SMC-PickupService/internal/infra/storage/testutil"
)

func setup(t *testing.T) (*Repository, *domain.AdminUser) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	admin, err := adminuser.NewRepository(db).Create(context.Background(), &domain.AdminUser{
		Username:     "admin",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	return NewRepository(db), admin
}

func newSession(adminID int64, expiresAt time.Time) *domain.Session {
	return &domain.Session{
		Token:       uuid.New(),
		AdminUserID: adminID,
		ExpiresAt:   expiresAt,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, admin := setup(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	s := newSession(admin.ID, expires)
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByToken(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.Token, got.Token)
	assert.Equal(t, "admin", got.Username)
	assert.True(t, expires.Equal(got.ExpiresAt))
	assert.Nil(t, got.RevokedAt)
	assert.True(t, got.IsValid(time.Now()))
}

func TestRepository_GetByToken_NotFound(t *testing.T) {
	repo, _ := setup(t)

	_, err := repo.GetByToken(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_Revoke(t *testing.T) {
	repo, admin := setup(t)
	ctx := context.Background()

	s := newSession(admin.ID, time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, s))

	now := time.Now()
	require.NoError(t, repo.Revoke(ctx, s.Token, now))

	got, err := repo.GetByToken(ctx, s.Token)
	require.NoError(t, err)
	require.NotNil(t, got.RevokedAt)
	assert.False(t, got.IsValid(now))

	// Повторный отзыв не находит активную сессию
	assert.ErrorIs(t, repo.Revoke(ctx, s.Token, now), ErrSessionNotFound)
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, admin := setup(t)
	ctx := context.Background()
	now := time.Now()

	expired := newSession(admin.ID, now.Add(-time.Minute))
	active := newSession(admin.ID, now.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, expired))
	require.NoError(t, repo.Create(ctx, active))

	deleted, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetByToken(ctx, expired.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.GetByToken(ctx, active.Token)
	assert.NoError(t, err)
}

