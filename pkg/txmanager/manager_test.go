package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickupService/pkg/dbmetrics"
)

func setup(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE items (name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func insert(ctx context.Context, db *sql.DB) error {
	_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ('x')`)
	return err
}

func TestDo_Commits(t *testing.T) {
	db := setup(t)
	m := NewSimpleTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return insert(ctx, db)
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db))
}

func TestDo_RollsBackOnError(t *testing.T) {
	db := setup(t)
	m := NewSimpleTransactionManager(db)
	boom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		require.NoError(t, insert(ctx, db))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, count(t, db))
}

func TestDo_RollsBackOnPanic(t *testing.T) {
	db := setup(t)
	m := NewSimpleTransactionManager(db)

	assert.Panics(t, func() {
		_ = m.Do(context.Background(), func(ctx context.Context) error {
			require.NoError(t, insert(ctx, db))
			panic("boom")
		})
	})
	assert.Equal(t, 0, count(t, db))
}

func TestDo_NestedReusesOuterTransaction(t *testing.T) {
	db := setup(t)
	m := NewSimpleTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(inner context.Context) error {
			return insert(inner, db)
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db))
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(fmt.Errorf("%w: %w", ErrCommit, &pq.Error{Code: "40001"})))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("other")))
}
