package mocks

import (
	"context"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	SignupFunc               func(ctx context.Context, email, name, phone, password string) (*domain.Landlord, error)
	LoginFunc                func(ctx context.Context, email, password string) (*domain.Session, error)
	LogoutFunc               func(ctx context.Context, sessionID string) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	ResetPasswordFunc        func(ctx context.Context, token, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Signup registers a landlord account
func (m *MockAuthService) Signup(ctx context.Context, email, name, phone, password string) (*domain.Landlord, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, name, phone, password)
	}
	return &domain.Landlord{ID: 1, Email: email, Name: name, Phone: phone}, nil
}

// Login authenticates a landlord and opens a session
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout closes a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// RequestPasswordReset starts the reset flow
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

// ResetPassword redeems a reset token
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return nil
}

var _ domain.AuthService = (*MockAuthService)(nil)
