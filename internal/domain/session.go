package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an operator allowed to view bookings
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a server-side admin session referenced by an opaque token
type Session struct {
	Token       uuid.UUID
	AdminUserID int64
	Username    string
	ExpiresAt   time.Time
	RevokedAt   *time.Time
	CreatedAt   time.Time
}

// IsValid returns true if the session is neither revoked nor expired at now
func (s *Session) IsValid(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
