package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// TenantRepositoryImpl implements domain.TenantRepository using GORM
type TenantRepositoryImpl struct {
	db *gorm.DB
}

// DBTenant represents the database model for Tenant. Phone is the
// external identity key for inbound messages; no canonical form is
// enforced at write time, which is why lookups try several candidate
// representations.
type DBTenant struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID uint   `gorm:"index"`
	Name       string `gorm:"size:255"`
	Phone      string `gorm:"index;size:32"`
	MoveInDate time.Time
	Property   *DBProperty `gorm:"foreignKey:PropertyID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBTenant) TableName() string {
	return "tenants"
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) domain.TenantRepository {
	return &TenantRepositoryImpl{db: db}
}

// Create implements domain.TenantRepository
func (r *TenantRepositoryImpl) Create(ctx context.Context, tenant *domain.Tenant) error {
	dbTenant := tenantToDB(tenant)
	if err := r.db.WithContext(ctx).Create(dbTenant).Error; err != nil {
		return err
	}
	tenant.ID = dbTenant.ID
	return nil
}

// FindByPhone implements domain.TenantRepository. The lookup is an exact
// match; first row wins if the directory holds duplicates.
func (r *TenantRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.Tenant, error) {
	var dbTenant DBTenant
	err := r.db.WithContext(ctx).Preload("Property").Where("phone = ?", phone).First(&dbTenant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return tenantToDomain(&dbTenant), nil
}

// FindByID implements domain.TenantRepository
func (r *TenantRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Tenant, error) {
	var dbTenant DBTenant
	err := r.db.WithContext(ctx).Preload("Property").Where("id = ?", id).First(&dbTenant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return tenantToDomain(&dbTenant), nil
}

// ListByLandlord implements domain.TenantRepository
func (r *TenantRepositoryImpl) ListByLandlord(ctx context.Context, landlordID uint) ([]domain.Tenant, error) {
	var dbTenants []DBTenant
	err := r.db.WithContext(ctx).
		Preload("Property").
		Joins("JOIN properties ON properties.id = tenants.property_id").
		Where("properties.landlord_id = ?", landlordID).
		Order("tenants.id").
		Find(&dbTenants).Error
	if err != nil {
		return nil, err
	}
	tenants := make([]domain.Tenant, 0, len(dbTenants))
	for i := range dbTenants {
		tenants = append(tenants, *tenantToDomain(&dbTenants[i]))
	}
	return tenants, nil
}

// Update implements domain.TenantRepository
func (r *TenantRepositoryImpl) Update(ctx context.Context, tenant *domain.Tenant) error {
	dbTenant := tenantToDB(tenant)
	dbTenant.Property = nil
	return r.db.WithContext(ctx).Save(dbTenant).Error
}

func tenantToDB(t *domain.Tenant) *DBTenant {
	return &DBTenant{
		ID:         t.ID,
		PropertyID: t.PropertyID,
		Name:       t.Name,
		Phone:      t.Phone,
		MoveInDate: t.MoveInDate,
	}
}

func tenantToDomain(t *DBTenant) *domain.Tenant {
	tenant := &domain.Tenant{
		ID:         t.ID,
		PropertyID: t.PropertyID,
		Name:       t.Name,
		Phone:      t.Phone,
		MoveInDate: t.MoveInDate,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if t.Property != nil {
		tenant.Property = propertyToDomain(t.Property)
	}
	return tenant
}
