package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MessageRepositoryImpl implements domain.MessageRepository using GORM
type MessageRepositoryImpl struct {
	db *gorm.DB
}

// DBMessage represents the database model for Message. Rows are
// append-only; nothing updates or deletes them.
type DBMessage struct {
	ID             uint      `gorm:"primaryKey"`
	TenantID       uint      `gorm:"index"`
	Direction      string    `gorm:"size:16"`
	Body           string    `gorm:"type:text"`
	Category       string    `gorm:"size:16;index"`
	Reply          string    `gorm:"type:text"`
	NeedsAttention bool      `gorm:"index"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBMessage) TableName() string {
	return "messages"
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) domain.MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

// Insert implements domain.MessageRepository
func (r *MessageRepositoryImpl) Insert(ctx context.Context, message *domain.Message) error {
	dbMessage := messageToDB(message)
	if err := r.db.WithContext(ctx).Create(dbMessage).Error; err != nil {
		return err
	}
	message.ID = dbMessage.ID
	message.CreatedAt = dbMessage.CreatedAt
	return nil
}

// ListRecent implements domain.MessageRepository. The newest limit rows
// are selected and returned oldest first.
func (r *MessageRepositoryImpl) ListRecent(ctx context.Context, tenantID uint, limit int) ([]domain.Message, error) {
	var dbMessages []DBMessage
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&dbMessages).Error
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(dbMessages))
	for i := len(dbMessages) - 1; i >= 0; i-- {
		messages = append(messages, *messageToDomain(&dbMessages[i]))
	}
	return messages, nil
}

// ListPage implements domain.MessageRepository
func (r *MessageRepositoryImpl) ListPage(ctx context.Context, landlordID uint, filter domain.MessageFilter, page, perPage int) (*domain.MessagePage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := r.landlordMessages(ctx, landlordID)
	if filter.Category != "" {
		query = query.Where("messages.category = ?", string(filter.Category))
	}
	if filter.NeedsAttention != nil {
		query = query.Where("messages.needs_attention = ?", *filter.NeedsAttention)
	}
	if filter.TenantID != 0 {
		query = query.Where("messages.tenant_id = ?", filter.TenantID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []messageRow
	err := query.
		Select("messages.*, tenants.name AS tenant_name, properties.address AS property_address").
		Order("messages.created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := &domain.MessagePage{Total: total, Page: page, PerPage: perPage}
	for i := range rows {
		result.Messages = append(result.Messages, rows[i].toDomain())
	}
	return result, nil
}

// CountByCategory implements domain.MessageRepository
func (r *MessageRepositoryImpl) CountByCategory(ctx context.Context, landlordID uint) (*domain.CategoryCounts, error) {
	type bucket struct {
		Category string
		N        int64
	}
	var buckets []bucket
	err := r.landlordMessages(ctx, landlordID).
		Select("messages.category AS category, COUNT(*) AS n").
		Group("messages.category").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	counts := &domain.CategoryCounts{}
	for _, b := range buckets {
		switch domain.Category(b.Category) {
		case domain.CategoryUrgent:
			counts.Urgent = b.N
		case domain.CategoryMaintenance:
			counts.Maintenance = b.N
		case domain.CategoryPayment:
			counts.Payment = b.N
		case domain.CategoryInquiry:
			counts.Inquiry = b.N
		}
	}

	err = r.landlordMessages(ctx, landlordID).
		Where("messages.needs_attention = ?", true).
		Count(&counts.NeedsAttention).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// ListSince implements domain.MessageRepository
func (r *MessageRepositoryImpl) ListSince(ctx context.Context, landlordID uint, since time.Time) ([]domain.MessageWithTenant, error) {
	var rows []messageRow
	err := r.landlordMessages(ctx, landlordID).
		Select("messages.*, tenants.name AS tenant_name, properties.address AS property_address").
		Where("messages.created_at >= ?", since).
		Order("messages.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	messages := make([]domain.MessageWithTenant, 0, len(rows))
	for i := range rows {
		messages = append(messages, rows[i].toDomain())
	}
	return messages, nil
}

// landlordMessages scopes message rows to one landlord via the
// tenant/property ownership chain.
func (r *MessageRepositoryImpl) landlordMessages(ctx context.Context, landlordID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&DBMessage{}).
		Joins("JOIN tenants ON tenants.id = messages.tenant_id").
		Joins("JOIN properties ON properties.id = tenants.property_id").
		Where("properties.landlord_id = ?", landlordID)
}

type messageRow struct {
	DBMessage
	TenantName      string
	PropertyAddress string
}

func (row *messageRow) toDomain() domain.MessageWithTenant {
	return domain.MessageWithTenant{
		Message:         *messageToDomain(&row.DBMessage),
		TenantName:      row.TenantName,
		PropertyAddress: row.PropertyAddress,
	}
}

func messageToDB(m *domain.Message) *DBMessage {
	return &DBMessage{
		ID:             m.ID,
		TenantID:       m.TenantID,
		Direction:      string(m.Direction),
		Body:           m.Body,
		Category:       string(m.Category),
		Reply:          m.Reply,
		NeedsAttention: m.NeedsAttention,
	}
}

func messageToDomain(m *DBMessage) *domain.Message {
	return &domain.Message{
		ID:             m.ID,
		TenantID:       m.TenantID,
		Direction:      domain.Direction(m.Direction),
		Body:           m.Body,
		Category:       domain.Category(m.Category),
		Reply:          m.Reply,
		NeedsAttention: m.NeedsAttention,
		CreatedAt:      m.CreatedAt,
	}
}
