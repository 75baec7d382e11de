package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// PropertyRepositoryImpl implements domain.PropertyRepository using GORM
type PropertyRepositoryImpl struct {
	db *gorm.DB
}

// DBProperty represents the database model for Property. Landlord name
// and phone are denormalized copies taken at creation time.
type DBProperty struct {
	ID                  uint   `gorm:"primaryKey"`
	LandlordID          uint   `gorm:"index"`
	Address             string `gorm:"size:512"`
	MonthlyRent         float64
	RentDueDay          int
	SpecialInstructions string `gorm:"type:text"`
	LandlordName        string `gorm:"size:255"`
	LandlordPhone       string `gorm:"size:32"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName returns the table name for GORM
func (DBProperty) TableName() string {
	return "properties"
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) domain.PropertyRepository {
	return &PropertyRepositoryImpl{db: db}
}

// Create implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *domain.Property) error {
	dbProperty := propertyToDB(property)
	if err := r.db.WithContext(ctx).Create(dbProperty).Error; err != nil {
		return err
	}
	property.ID = dbProperty.ID
	return nil
}

// FindByID implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Property, error) {
	var dbProperty DBProperty
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProperty).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return propertyToDomain(&dbProperty), nil
}

// ListByLandlord implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) ListByLandlord(ctx context.Context, landlordID uint) ([]domain.Property, error) {
	var dbProperties []DBProperty
	err := r.db.WithContext(ctx).Where("landlord_id = ?", landlordID).Order("id").Find(&dbProperties).Error
	if err != nil {
		return nil, err
	}
	properties := make([]domain.Property, 0, len(dbProperties))
	for i := range dbProperties {
		properties = append(properties, *propertyToDomain(&dbProperties[i]))
	}
	return properties, nil
}

// Update implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) Update(ctx context.Context, property *domain.Property) error {
	return r.db.WithContext(ctx).Save(propertyToDB(property)).Error
}

func propertyToDB(p *domain.Property) *DBProperty {
	return &DBProperty{
		ID:                  p.ID,
		LandlordID:          p.LandlordID,
		Address:             p.Address,
		MonthlyRent:         p.MonthlyRent,
		RentDueDay:          p.RentDueDay,
		SpecialInstructions: p.SpecialInstructions,
		LandlordName:        p.LandlordName,
		LandlordPhone:       p.LandlordPhone,
	}
}

func propertyToDomain(p *DBProperty) *domain.Property {
	return &domain.Property{
		ID:                  p.ID,
		LandlordID:          p.LandlordID,
		Address:             p.Address,
		MonthlyRent:         p.MonthlyRent,
		RentDueDay:          p.RentDueDay,
		SpecialInstructions: p.SpecialInstructions,
		LandlordName:        p.LandlordName,
		LandlordPhone:       p.LandlordPhone,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
