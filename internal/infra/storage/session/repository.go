package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PickupService/pkg/psqlbuilder"
)

// Repository репозиторий серверных сессий администраторов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, s *domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	query, args, err := psqlbuilder.Insert("sessions").
		Columns("token", "admin_user_id", "expires_at", "created_at").
		Values(s.Token, s.AdminUserID, s.ExpiresAt.UTC(), s.CreatedAt.UTC()).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByToken получает сессию вместе с логином администратора
func (r *Repository) GetByToken(ctx context.Context, token uuid.UUID) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.token",
		"s.admin_user_id",
		"u.username",
		"s.expires_at",
		"s.revoked_at",
		"s.created_at",
	).
		From("sessions s").
		Join("admin_users u ON u.id = s.admin_user_id").
		Where(squirrel.Eq{"s.token": token.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Session
	var revokedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.Token,
		&s.AdminUserID,
		&s.Username,
		&s.ExpiresAt,
		&revokedAt,
		&s.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan session: %v", ErrScanRow, err)
	}

	if revokedAt.Valid {
		s.RevokedAt = &revokedAt.Time
	}

	return &s, nil
}

// Revoke помечает сессию отозванной
func (r *Repository) Revoke(ctx context.Context, token uuid.UUID, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("revoked_at", at.UTC()).
		Where(squirrel.Eq{"token": token.String()}).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Revoke - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Revoke - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Revoke - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired удаляет сессии, истёкшие до before, и возвращает их количество
func (r *Repository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Lt{"expires_at": before.UTC()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
