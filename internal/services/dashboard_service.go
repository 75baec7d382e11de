package services

import (
	"context"
	"fmt"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// DashboardService serves the landlord dashboard: property and tenant
// management plus message history built from the webhook pipeline's
// output. Every operation is scoped to the authenticated landlord.
type DashboardService struct {
	landlordRepo domain.LandlordRepository
	propertyRepo domain.PropertyRepository
	tenantRepo   domain.TenantRepository
	messageRepo  domain.MessageRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	landlordRepo domain.LandlordRepository,
	propertyRepo domain.PropertyRepository,
	tenantRepo domain.TenantRepository,
	messageRepo domain.MessageRepository,
) *DashboardService {
	return &DashboardService{
		landlordRepo: landlordRepo,
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		messageRepo:  messageRepo,
	}
}

// CreateProperty registers a property for the landlord. The landlord's
// name and phone are copied onto the property row at creation time and
// will not follow later landlord edits.
func (s *DashboardService) CreateProperty(ctx context.Context, landlordID uint, property *domain.Property) error {
	landlord, err := s.landlordRepo.FindByID(ctx, landlordID)
	if err != nil {
		return err
	}

	property.LandlordID = landlord.ID
	property.LandlordName = landlord.Name
	property.LandlordPhone = landlord.Phone
	return s.propertyRepo.Create(ctx, property)
}

// ListProperties returns the landlord's properties
func (s *DashboardService) ListProperties(ctx context.Context, landlordID uint) ([]domain.Property, error) {
	return s.propertyRepo.ListByLandlord(ctx, landlordID)
}

// UpdateProperty edits a property after checking ownership
func (s *DashboardService) UpdateProperty(ctx context.Context, landlordID uint, property *domain.Property) error {
	existing, err := s.propertyRepo.FindByID(ctx, property.ID)
	if err != nil {
		return err
	}
	if existing.LandlordID != landlordID {
		return domain.ErrPropertyNotFound
	}

	property.LandlordID = existing.LandlordID
	property.LandlordName = existing.LandlordName
	property.LandlordPhone = existing.LandlordPhone
	return s.propertyRepo.Update(ctx, property)
}

// CreateTenant registers a tenant under one of the landlord's properties
func (s *DashboardService) CreateTenant(ctx context.Context, landlordID uint, tenant *domain.Tenant) error {
	property, err := s.propertyRepo.FindByID(ctx, tenant.PropertyID)
	if err != nil {
		return err
	}
	if property.LandlordID != landlordID {
		return domain.ErrPropertyNotFound
	}
	return s.tenantRepo.Create(ctx, tenant)
}

// ListTenants returns the landlord's tenants across all properties
func (s *DashboardService) ListTenants(ctx context.Context, landlordID uint) ([]domain.Tenant, error) {
	return s.tenantRepo.ListByLandlord(ctx, landlordID)
}

// UpdateTenant edits a tenant after checking ownership through the
// property chain
func (s *DashboardService) UpdateTenant(ctx context.Context, landlordID uint, tenant *domain.Tenant) error {
	existing, err := s.tenantRepo.FindByID(ctx, tenant.ID)
	if err != nil {
		return err
	}
	if existing.Property == nil || existing.Property.LandlordID != landlordID {
		return domain.ErrTenantNotFound
	}
	if tenant.PropertyID == 0 {
		tenant.PropertyID = existing.PropertyID
	}
	return s.tenantRepo.Update(ctx, tenant)
}

// Messages returns one page of message history for the landlord
func (s *DashboardService) Messages(ctx context.Context, landlordID uint, filter domain.MessageFilter, page, perPage int) (*domain.MessagePage, error) {
	messages, err := s.messageRepo.ListPage(ctx, landlordID, filter, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// Counts returns per-category message totals for the landlord
func (s *DashboardService) Counts(ctx context.Context, landlordID uint) (*domain.CategoryCounts, error) {
	return s.messageRepo.CountByCategory(ctx, landlordID)
}
