package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// AuthServiceImpl implements domain.AuthService for the landlord
// dashboard: signup, cookie-session login, and the password reset flow.
type AuthServiceImpl struct {
	landlordRepo domain.LandlordRepository
	sessionRepo  domain.SessionRepository
	tokenRepo    domain.ResetTokenRepository
	passwordSvc  domain.PasswordService
	notifier     domain.NotificationService
	sessionTTL   time.Duration
	resetTTL     time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	landlordRepo domain.LandlordRepository,
	sessionRepo domain.SessionRepository,
	tokenRepo domain.ResetTokenRepository,
	passwordSvc domain.PasswordService,
	notifier domain.NotificationService,
	sessionTTL time.Duration,
	resetTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		landlordRepo: landlordRepo,
		sessionRepo:  sessionRepo,
		tokenRepo:    tokenRepo,
		passwordSvc:  passwordSvc,
		notifier:     notifier,
		sessionTTL:   sessionTTL,
		resetTTL:     resetTTL,
	}
}

// Signup implements domain.AuthService
func (s *AuthServiceImpl) Signup(ctx context.Context, email, name, phone, password string) (*domain.Landlord, error) {
	existing, err := s.landlordRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrLandlordAlreadyExists
	}

	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	landlord := &domain.Landlord{
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: hashed,
	}
	if err := s.landlordRepo.Create(ctx, landlord); err != nil {
		return nil, fmt.Errorf("failed to create landlord: %w", err)
	}
	return landlord, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	landlord, err := s.landlordRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !s.passwordSvc.Verify(landlord.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	id, err := randomToken(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	session := &domain.Session{
		ID:         id,
		LandlordID: landlord.ID,
		ExpiresAt:  time.Now().Add(s.sessionTTL),
		CreatedAt:  time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// RequestPasswordReset implements domain.AuthService. An unknown email
// is not reported to the caller, so the endpoint cannot be used to
// enumerate accounts.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	landlord, err := s.landlordRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("auth: reset requested for unknown email %s", email)
		return nil
	}

	raw, err := randomToken(32)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	token := &domain.PasswordResetToken{
		LandlordID: landlord.ID,
		Token:      raw,
		ExpiresAt:  time.Now().Add(s.resetTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	body := fmt.Sprintf("Hola %s, usa este código para restablecer tu contraseña: %s\nExpira en una hora.", landlord.Name, raw)
	if err := s.notifier.SendEmail(landlord.Email, "Restablecer contraseña", body); err != nil {
		log.Printf("auth: reset email failed for landlord %d: %v", landlord.ID, err)
	}
	return nil
}

// ResetPassword implements domain.AuthService. A token redeems exactly
// once; expired or already-used tokens are rejected.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	stored, err := s.tokenRepo.FindByToken(ctx, token)
	if err != nil {
		return domain.ErrResetTokenNotFound
	}
	if stored.Used {
		return domain.ErrResetTokenUsed
	}
	if !stored.Usable(time.Now()) {
		return domain.ErrResetTokenExpired
	}

	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.landlordRepo.UpdatePassword(ctx, stored.LandlordID, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return s.tokenRepo.MarkUsed(ctx, stored.ID)
}

func randomToken(bytes int) (string, error) {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
