package mocks

import (
	"context"
	"time"

	"github.com/you/regsvc/domain"
)

// MockRegistrationRepository implements domain.RegistrationRepository
// for testing. Call counters let tests assert that gated endpoints
// never touch the store.
type MockRegistrationRepository struct {
	CreateFunc     func(ctx context.Context, reg *domain.Registration) error
	FindRecentFunc func(ctx context.Context, email, phone string, cutoff time.Time) (*domain.Registration, error)
	ListFunc       func(ctx context.Context, offset, limit int) ([]domain.Registration, error)
	ListAllFunc    func(ctx context.Context) ([]domain.Registration, error)
	CountFunc      func(ctx context.Context) (int64, error)

	CreateCalls     int
	FindRecentCalls int
	ListCalls       int
	ListAllCalls    int
	CountCalls      int
}

// NewMockRegistrationRepository creates a new MockRegistrationRepository with default behaviors
func NewMockRegistrationRepository() *MockRegistrationRepository {
	return &MockRegistrationRepository{}
}

// TotalCalls returns the number of store accesses across all operations
func (m *MockRegistrationRepository) TotalCalls() int {
	return m.CreateCalls + m.FindRecentCalls + m.ListCalls + m.ListAllCalls + m.CountCalls
}

// Create creates a new registration
func (m *MockRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reg)
	}
	// Default behavior: success
	return nil
}

// FindRecent finds a recent registration matching email or phone
func (m *MockRegistrationRepository) FindRecent(ctx context.Context, email, phone string, cutoff time.Time) (*domain.Registration, error) {
	m.FindRecentCalls++
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, email, phone, cutoff)
	}
	// Default behavior: no duplicate
	return nil, domain.ErrRegistrationNotFound
}

// List returns one page of registrations
func (m *MockRegistrationRepository) List(ctx context.Context, offset, limit int) ([]domain.Registration, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	// Default behavior: empty page
	return nil, nil
}

// ListAll returns every registration
func (m *MockRegistrationRepository) ListAll(ctx context.Context) ([]domain.Registration, error) {
	m.ListAllCalls++
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// Count returns the total number of registrations
func (m *MockRegistrationRepository) Count(ctx context.Context) (int64, error) {
	m.CountCalls++
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	// Default behavior: empty store
	return 0, nil
}
