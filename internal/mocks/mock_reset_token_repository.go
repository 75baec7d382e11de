package mocks

import (
	"context"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MockResetTokenRepository implements domain.ResetTokenRepository for testing
type MockResetTokenRepository struct {
	CreateFunc      func(ctx context.Context, token *domain.PasswordResetToken) error
	FindByTokenFunc func(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	MarkUsedFunc    func(ctx context.Context, id uint) error
}

// NewMockResetTokenRepository creates a new MockResetTokenRepository with default behaviors
func NewMockResetTokenRepository() *MockResetTokenRepository {
	return &MockResetTokenRepository{}
}

// Create stores a reset token
func (m *MockResetTokenRepository) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

// FindByToken finds a reset token by its value
func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, domain.ErrResetTokenNotFound
}

// MarkUsed consumes a reset token
func (m *MockResetTokenRepository) MarkUsed(ctx context.Context, id uint) error {
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, id)
	}
	return nil
}

var _ domain.ResetTokenRepository = (*MockResetTokenRepository)(nil)
