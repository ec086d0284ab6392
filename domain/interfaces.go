package domain

import (
	"context"
	"io"
	"time"
)

// RegistrationRepository defines registration data access operations
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	// FindRecent returns the newest registration matching email OR phone
	// created at or after the cutoff, or ErrRegistrationNotFound.
	FindRecent(ctx context.Context, email, phone string, cutoff time.Time) (*Registration, error)
	// List returns up to limit registrations ordered by CreatedAt
	// descending, skipping offset rows.
	List(ctx context.Context, offset, limit int) ([]Registration, error)
	ListAll(ctx context.Context) ([]Registration, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository defines admin session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *AdminSession) error
	FindByID(ctx context.Context, sessionID string) (*AdminSession, error)
	// Touch re-extends the session TTL (sliding expiry).
	Touch(ctx context.Context, sessionID string) error
	Delete(ctx context.Context, sessionID string) error
}

// RegistrationService defines the public submission business logic
type RegistrationService interface {
	Submit(ctx context.Context, input SubmissionInput) (*Registration, error)
}

// AdminQueryService defines the session-gated admin read operations
type AdminQueryService interface {
	ListRegistrations(ctx context.Context, page, limit int) (*RegistrationPage, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

// AdminAuthService defines admin login/logout against configured credentials
type AdminAuthService interface {
	Login(ctx context.Context, username, password string) (*AdminSession, error)
	Logout(ctx context.Context, sessionID string) error
}

// CredentialChecker verifies a submitted password against the configured
// admin secret
type CredentialChecker interface {
	Verify(configured, submitted string) bool
}
