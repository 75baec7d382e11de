package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// LandlordRepositoryImpl implements domain.LandlordRepository using GORM
type LandlordRepositoryImpl struct {
	db *gorm.DB
}

// DBLandlord represents the database model for Landlord
type DBLandlord struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	Name         string    `gorm:"size:255"`
	Phone        string    `gorm:"size:32"`
	PasswordHash string    `gorm:"column:password"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBLandlord) TableName() string {
	return "landlords"
}

// NewLandlordRepository creates a new landlord repository
func NewLandlordRepository(db *gorm.DB) domain.LandlordRepository {
	return &LandlordRepositoryImpl{db: db}
}

// Create implements domain.LandlordRepository
func (r *LandlordRepositoryImpl) Create(ctx context.Context, landlord *domain.Landlord) error {
	dbLandlord := landlordToDB(landlord)
	if err := r.db.WithContext(ctx).Create(dbLandlord).Error; err != nil {
		return err
	}
	landlord.ID = dbLandlord.ID
	return nil
}

// FindByEmail implements domain.LandlordRepository
func (r *LandlordRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Landlord, error) {
	var dbLandlord DBLandlord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbLandlord).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrLandlordNotFound
		}
		return nil, err
	}
	return landlordToDomain(&dbLandlord), nil
}

// FindByID implements domain.LandlordRepository
func (r *LandlordRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Landlord, error) {
	var dbLandlord DBLandlord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbLandlord).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrLandlordNotFound
		}
		return nil, err
	}
	return landlordToDomain(&dbLandlord), nil
}

// UpdatePassword implements domain.LandlordRepository
func (r *LandlordRepositoryImpl) UpdatePassword(ctx context.Context, landlordID uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBLandlord{}).Where("id = ?", landlordID).Update("password", passwordHash).Error
}

// ListAll implements domain.LandlordRepository
func (r *LandlordRepositoryImpl) ListAll(ctx context.Context) ([]domain.Landlord, error) {
	var dbLandlords []DBLandlord
	if err := r.db.WithContext(ctx).Order("id").Find(&dbLandlords).Error; err != nil {
		return nil, err
	}
	landlords := make([]domain.Landlord, 0, len(dbLandlords))
	for i := range dbLandlords {
		landlords = append(landlords, *landlordToDomain(&dbLandlords[i]))
	}
	return landlords, nil
}

func landlordToDB(l *domain.Landlord) *DBLandlord {
	return &DBLandlord{
		ID:           l.ID,
		Email:        l.Email,
		Name:         l.Name,
		Phone:        l.Phone,
		PasswordHash: l.PasswordHash,
	}
}

func landlordToDomain(l *DBLandlord) *domain.Landlord {
	return &domain.Landlord{
		ID:           l.ID,
		Email:        l.Email,
		Name:         l.Name,
		Phone:        l.Phone,
		PasswordHash: l.PasswordHash,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
