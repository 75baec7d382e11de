package mocks

import (
	"context"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MockPropertyRepository implements domain.PropertyRepository for testing
type MockPropertyRepository struct {
	CreateFunc         func(ctx context.Context, property *domain.Property) error
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Property, error)
	ListByLandlordFunc func(ctx context.Context, landlordID uint) ([]domain.Property, error)
	UpdateFunc         func(ctx context.Context, property *domain.Property) error
}

// NewMockPropertyRepository creates a new MockPropertyRepository with default behaviors
func NewMockPropertyRepository() *MockPropertyRepository {
	return &MockPropertyRepository{}
}

// Create creates a new property
func (m *MockPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, property)
	}
	return nil
}

// FindByID finds a property by id
func (m *MockPropertyRepository) FindByID(ctx context.Context, id uint) (*domain.Property, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrPropertyNotFound
}

// ListByLandlord lists a landlord's properties
func (m *MockPropertyRepository) ListByLandlord(ctx context.Context, landlordID uint) ([]domain.Property, error) {
	if m.ListByLandlordFunc != nil {
		return m.ListByLandlordFunc(ctx, landlordID)
	}
	return nil, nil
}

// Update updates an existing property
func (m *MockPropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, property)
	}
	return nil
}

var _ domain.PropertyRepository = (*MockPropertyRepository)(nil)
