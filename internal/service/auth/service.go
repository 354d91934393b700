package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	adminUserRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/adminuser"
	sessionRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/session"
)

// MinPasswordLength минимальная длина пароля администратора
const MinPasswordLength = 8

// dummyHash используется, когда логин не найден, чтобы bcrypt выполнялся всегда
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("pickup-dummy-password"), bcrypt.DefaultCost)

// Service аутентификация администраторов и серверные сессии
type Service struct {
	users        AdminUserRepository
	sessions     SessionRepository
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	users AdminUserRepository,
	sessions SessionRepository,
	ttl time.Duration,
	logger Logger,
) *Service {
	return &Service{
		users:        users,
		sessions:     sessions,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// HashPassword хеширует пароль bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CreateAdmin создает администратора с указанным паролем
func (s *Service) CreateAdmin(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateAdmin - hash password: %v", ErrInternal, err)
	}

	user, err := s.users.Create(ctx, &domain.AdminUser{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.timeProvider.Now(),
	})
	if err != nil {
		if errors.Is(err, adminUserRepo.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: CreateAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAdmin: created admin user id=%d username=%s", user.ID, user.Username)
	return user, nil
}

// Login проверяет логин и пароль и открывает новую сессию
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, adminUserRepo.ErrAdminUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.logger.Warn("Login: unknown username=%q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%q", username)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	session := &domain.Session{
		Token:       uuid.New(),
		AdminUserID: user.ID,
		Username:    user.Username,
		ExpiresAt:   now.Add(s.ttl),
		CreatedAt:   now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("Login: failed to store session for username=%q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - store session: %v", ErrInternal, err)
	}

	if deleted, err := s.sessions.DeleteExpired(ctx, now); err != nil {
		s.logger.Warn("Login: failed to delete expired sessions: %v", err)
	} else if deleted > 0 {
		s.logger.Info("Login: deleted %d expired sessions", deleted)
	}

	s.logger.Info("Login: admin username=%s logged in", user.Username)
	return session, nil
}

// Authenticate проверяет токен сессии на сервере
func (s *Service) Authenticate(ctx context.Context, token uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionInvalid
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if !session.IsValid(s.timeProvider.Now()) {
		return nil, ErrSessionInvalid
	}

	return session, nil
}

// Logout отзывает сессию. Повторный logout не является ошибкой
func (s *Service) Logout(ctx context.Context, token uuid.UUID) error {
	err := s.sessions.Revoke(ctx, token, s.timeProvider.Now())
	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session revoked")
	return nil
}
