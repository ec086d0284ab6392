package mocks

import (
	"context"
	"io"

	"github.com/you/regsvc/domain"
)

// MockRegistrationService implements domain.RegistrationService for testing
type MockRegistrationService struct {
	SubmitFunc  func(ctx context.Context, input domain.SubmissionInput) (*domain.Registration, error)
	SubmitCalls int
}

// NewMockRegistrationService creates a new MockRegistrationService
func NewMockRegistrationService() *MockRegistrationService {
	return &MockRegistrationService{}
}

// Submit accepts a submission
func (m *MockRegistrationService) Submit(ctx context.Context, input domain.SubmissionInput) (*domain.Registration, error) {
	m.SubmitCalls++
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, input)
	}
	// Default behavior: echo back as stored
	return &domain.Registration{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	}, nil
}

// MockAdminQueryService implements domain.AdminQueryService for testing
type MockAdminQueryService struct {
	ListRegistrationsFunc func(ctx context.Context, page, limit int) (*domain.RegistrationPage, error)
	ExportCSVFunc         func(ctx context.Context, w io.Writer) error

	ListRegistrationsCalls int
	ExportCSVCalls         int
}

// NewMockAdminQueryService creates a new MockAdminQueryService
func NewMockAdminQueryService() *MockAdminQueryService {
	return &MockAdminQueryService{}
}

// ListRegistrations returns one page of registrations
func (m *MockAdminQueryService) ListRegistrations(ctx context.Context, page, limit int) (*domain.RegistrationPage, error) {
	m.ListRegistrationsCalls++
	if m.ListRegistrationsFunc != nil {
		return m.ListRegistrationsFunc(ctx, page, limit)
	}
	// Default behavior: empty page
	return &domain.RegistrationPage{Page: page, Pages: 0}, nil
}

// ExportCSV writes the CSV export
func (m *MockAdminQueryService) ExportCSV(ctx context.Context, w io.Writer) error {
	m.ExportCSVCalls++
	if m.ExportCSVFunc != nil {
		return m.ExportCSVFunc(ctx, w)
	}
	// Default behavior: header only
	_, err := w.Write([]byte("Name,Phone,Email,City,Address,Date\n"))
	return err
}

// MockAdminAuthService implements domain.AdminAuthService for testing
type MockAdminAuthService struct {
	LoginFunc  func(ctx context.Context, username, password string) (*domain.AdminSession, error)
	LogoutFunc func(ctx context.Context, sessionID string) error

	LoginCalls  int
	LogoutCalls int
}

// NewMockAdminAuthService creates a new MockAdminAuthService
func NewMockAdminAuthService() *MockAdminAuthService {
	return &MockAdminAuthService{}
}

// Login authenticates the admin
func (m *MockAdminAuthService) Login(ctx context.Context, username, password string) (*domain.AdminSession, error) {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

// Logout destroys the session
func (m *MockAdminAuthService) Logout(ctx context.Context, sessionID string) error {
	m.LogoutCalls++
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}
