package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// ResetTokenRepositoryImpl implements domain.ResetTokenRepository using GORM
type ResetTokenRepositoryImpl struct {
	db *gorm.DB
}

// DBPasswordResetToken represents the database model for PasswordResetToken
type DBPasswordResetToken struct {
	ID         uint      `gorm:"primaryKey"`
	LandlordID uint      `gorm:"index"`
	Token      string    `gorm:"uniqueIndex;size:128"`
	ExpiresAt  time.Time `gorm:"index"`
	Used       bool
	CreatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBPasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

// NewResetTokenRepository creates a new reset token repository
func NewResetTokenRepository(db *gorm.DB) domain.ResetTokenRepository {
	return &ResetTokenRepositoryImpl{db: db}
}

// Create implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	dbToken := resetTokenToDB(token)
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		return err
	}
	token.ID = dbToken.ID
	return nil
}

// FindByToken implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	var dbToken DBPasswordResetToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&dbToken).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResetTokenNotFound
		}
		return nil, err
	}
	return resetTokenToDomain(&dbToken), nil
}

// MarkUsed implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) MarkUsed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBPasswordResetToken{}).Where("id = ?", id).Update("used", true).Error
}

func resetTokenToDB(t *domain.PasswordResetToken) *DBPasswordResetToken {
	return &DBPasswordResetToken{
		ID:         t.ID,
		LandlordID: t.LandlordID,
		Token:      t.Token,
		ExpiresAt:  t.ExpiresAt,
		Used:       t.Used,
	}
}

func resetTokenToDomain(t *DBPasswordResetToken) *domain.PasswordResetToken {
	return &domain.PasswordResetToken{
		ID:         t.ID,
		LandlordID: t.LandlordID,
		Token:      t.Token,
		ExpiresAt:  t.ExpiresAt,
		Used:       t.Used,
		CreatedAt:  t.CreatedAt,
	}
}
