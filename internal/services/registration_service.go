package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/you/regsvc/domain"
)

// RegistrationServiceImpl implements domain.RegistrationService
type RegistrationServiceImpl struct {
	repo        domain.RegistrationRepository
	dedupWindow time.Duration
	now         func() time.Time
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo domain.RegistrationRepository, dedupWindow time.Duration) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		repo:        repo,
		dedupWindow: dedupWindow,
		now:         time.Now,
	}
}

// SetClock overrides the time source. Tests use this to move past the
// dedup window.
func (s *RegistrationServiceImpl) SetClock(now func() time.Time) {
	s.now = now
}

// Submit implements domain.RegistrationService. The duplicate check and
// the insert are two separate store round trips with no transactional
// isolation; two near-simultaneous submissions can both pass the check.
// The consequence is a duplicate row, not corruption, so this is an
// accepted race.
func (s *RegistrationServiceImpl) Submit(ctx context.Context, input domain.SubmissionInput) (*domain.Registration, error) {
	// Normalize before validating so surrounding whitespace in a form
	// field never fails a well-formed submission.
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if errs := ValidateSubmission(name, phone, email); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	cutoff := s.now().Add(-s.dedupWindow)

	existing, err := s.repo.FindRecent(ctx, email, phone, cutoff)
	if err != nil && err != domain.ErrRegistrationNotFound {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateRegistration
	}

	reg := &domain.Registration{
		Name:      name,
		Phone:     phone,
		Email:     email,
		City:      strings.TrimSpace(input.City),
		Address:   strings.TrimSpace(input.Address),
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return reg, nil
}
