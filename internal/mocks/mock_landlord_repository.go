package mocks

import (
	"context"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MockLandlordRepository implements domain.LandlordRepository for testing
type MockLandlordRepository struct {
	CreateFunc         func(ctx context.Context, landlord *domain.Landlord) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.Landlord, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Landlord, error)
	UpdatePasswordFunc func(ctx context.Context, landlordID uint, passwordHash string) error
	ListAllFunc        func(ctx context.Context) ([]domain.Landlord, error)
}

// NewMockLandlordRepository creates a new MockLandlordRepository with default behaviors
func NewMockLandlordRepository() *MockLandlordRepository {
	return &MockLandlordRepository{}
}

// Create creates a new landlord
func (m *MockLandlordRepository) Create(ctx context.Context, landlord *domain.Landlord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, landlord)
	}
	return nil
}

// FindByEmail finds a landlord by email
func (m *MockLandlordRepository) FindByEmail(ctx context.Context, email string) (*domain.Landlord, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrLandlordNotFound
}

// FindByID finds a landlord by id
func (m *MockLandlordRepository) FindByID(ctx context.Context, id uint) (*domain.Landlord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrLandlordNotFound
}

// UpdatePassword replaces a landlord's password hash
func (m *MockLandlordRepository) UpdatePassword(ctx context.Context, landlordID uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, landlordID, passwordHash)
	}
	return nil
}

// ListAll lists every landlord
func (m *MockLandlordRepository) ListAll(ctx context.Context) ([]domain.Landlord, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

var _ domain.LandlordRepository = (*MockLandlordRepository)(nil)
