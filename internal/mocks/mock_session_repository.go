package mocks

import (
	"context"

	"github.com/you/regsvc/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *domain.AdminSession) error
	FindByIDFunc func(ctx context.Context, sessionID string) (*domain.AdminSession, error)
	TouchFunc    func(ctx context.Context, sessionID string) error
	DeleteFunc   func(ctx context.Context, sessionID string) error

	CreateCalls   int
	FindByIDCalls int
	TouchCalls    int
	DeleteCalls   int
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create creates a new session
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.AdminSession) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a session by ID
func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.AdminSession, error) {
	m.FindByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, sessionID)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// Touch extends the session TTL
func (m *MockSessionRepository) Touch(ctx context.Context, sessionID string) error {
	m.TouchCalls++
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// Delete removes a session
func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}
