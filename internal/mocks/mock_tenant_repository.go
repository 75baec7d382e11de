package mocks

import (
	"context"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MockTenantRepository implements domain.TenantRepository for testing
type MockTenantRepository struct {
	CreateFunc         func(ctx context.Context, tenant *domain.Tenant) error
	FindByPhoneFunc    func(ctx context.Context, phone string) (*domain.Tenant, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Tenant, error)
	ListByLandlordFunc func(ctx context.Context, landlordID uint) ([]domain.Tenant, error)
	UpdateFunc         func(ctx context.Context, tenant *domain.Tenant) error

	// PhoneLookups records every candidate tried against FindByPhone
	PhoneLookups []string
}

// NewMockTenantRepository creates a new MockTenantRepository with default behaviors
func NewMockTenantRepository() *MockTenantRepository {
	return &MockTenantRepository{}
}

// Create creates a new tenant
func (m *MockTenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tenant)
	}
	return nil
}

// FindByPhone finds a tenant by exact phone match
func (m *MockTenantRepository) FindByPhone(ctx context.Context, phone string) (*domain.Tenant, error) {
	m.PhoneLookups = append(m.PhoneLookups, phone)
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrTenantNotFound
}

// FindByID finds a tenant by id
func (m *MockTenantRepository) FindByID(ctx context.Context, id uint) (*domain.Tenant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrTenantNotFound
}

// ListByLandlord lists a landlord's tenants
func (m *MockTenantRepository) ListByLandlord(ctx context.Context, landlordID uint) ([]domain.Tenant, error) {
	if m.ListByLandlordFunc != nil {
		return m.ListByLandlordFunc(ctx, landlordID)
	}
	return nil, nil
}

// Update updates an existing tenant
func (m *MockTenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tenant)
	}
	return nil
}

var _ domain.TenantRepository = (*MockTenantRepository)(nil)
