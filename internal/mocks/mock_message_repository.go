package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MockMessageRepository implements domain.MessageRepository for testing
type MockMessageRepository struct {
	InsertFunc          func(ctx context.Context, message *domain.Message) error
	ListRecentFunc      func(ctx context.Context, tenantID uint, limit int) ([]domain.Message, error)
	ListPageFunc        func(ctx context.Context, landlordID uint, filter domain.MessageFilter, page, perPage int) (*domain.MessagePage, error)
	CountByCategoryFunc func(ctx context.Context, landlordID uint) (*domain.CategoryCounts, error)
	ListSinceFunc       func(ctx context.Context, landlordID uint, since time.Time) ([]domain.MessageWithTenant, error)

	mu sync.Mutex
	// Inserted records every message passed to Insert. The urgent
	// follow-up timer inserts from its own goroutine, so concurrent
	// readers must use InsertedCopy.
	Inserted []domain.Message
}

// NewMockMessageRepository creates a new MockMessageRepository with default behaviors
func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{}
}

// Insert appends a message row
func (m *MockMessageRepository) Insert(ctx context.Context, message *domain.Message) error {
	m.mu.Lock()
	m.Inserted = append(m.Inserted, *message)
	m.mu.Unlock()
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, message)
	}
	return nil
}

// InsertedCopy returns a snapshot of recorded inserts, safe to call
// while inserts may still be in flight.
func (m *MockMessageRepository) InsertedCopy() []domain.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Message, len(m.Inserted))
	copy(out, m.Inserted)
	return out
}

// ListRecent returns recent messages oldest first
func (m *MockMessageRepository) ListRecent(ctx context.Context, tenantID uint, limit int) ([]domain.Message, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, tenantID, limit)
	}
	return nil, nil
}

// ListPage returns dashboard history
func (m *MockMessageRepository) ListPage(ctx context.Context, landlordID uint, filter domain.MessageFilter, page, perPage int) (*domain.MessagePage, error) {
	if m.ListPageFunc != nil {
		return m.ListPageFunc(ctx, landlordID, filter, page, perPage)
	}
	return &domain.MessagePage{Page: page, PerPage: perPage}, nil
}

// CountByCategory returns aggregate counts
func (m *MockMessageRepository) CountByCategory(ctx context.Context, landlordID uint) (*domain.CategoryCounts, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, landlordID)
	}
	return &domain.CategoryCounts{}, nil
}

// ListSince returns messages created at or after the given instant
func (m *MockMessageRepository) ListSince(ctx context.Context, landlordID uint, since time.Time) ([]domain.MessageWithTenant, error) {
	if m.ListSinceFunc != nil {
		return m.ListSinceFunc(ctx, landlordID, since)
	}
	return nil, nil
}

var _ domain.MessageRepository = (*MockMessageRepository)(nil)
