package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you/regsvc/domain"
)

// AdminAuthServiceImpl implements domain.AdminAuthService against a
// single configured admin credential pair
type AdminAuthServiceImpl struct {
	username    string
	password    string
	credentials domain.CredentialChecker
	sessionRepo domain.SessionRepository
	sessionTTL  time.Duration
	now         func() time.Time
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(username, password string, credentials domain.CredentialChecker, sessionRepo domain.SessionRepository, sessionTTL time.Duration) *AdminAuthServiceImpl {
	return &AdminAuthServiceImpl{
		username:    username,
		password:    password,
		credentials: credentials,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// Login implements domain.AdminAuthService. Username comparison is
// constant-time; password verification is delegated so the configured
// secret may be a bcrypt hash.
func (s *AdminAuthServiceImpl) Login(ctx context.Context, username, password string) (*domain.AdminSession, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := s.credentials.Verify(s.password, password)
	if !userOK || !passOK {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.AdminSession{
		ID:        uuid.NewString(),
		Username:  s.username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Logout implements domain.AdminAuthService
func (s *AdminAuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}
