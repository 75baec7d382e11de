package domain

import (
	"context"
	"time"
)

// TenantRepository defines tenant directory access
type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	// FindByPhone is an exact point lookup; the resolved tenant carries
	// its Property.
	FindByPhone(ctx context.Context, phone string) (*Tenant, error)
	FindByID(ctx context.Context, id uint) (*Tenant, error)
	ListByLandlord(ctx context.Context, landlordID uint) ([]Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
}

// LandlordRepository defines landlord account access
type LandlordRepository interface {
	Create(ctx context.Context, landlord *Landlord) error
	FindByEmail(ctx context.Context, email string) (*Landlord, error)
	FindByID(ctx context.Context, id uint) (*Landlord, error)
	UpdatePassword(ctx context.Context, landlordID uint, passwordHash string) error
	ListAll(ctx context.Context) ([]Landlord, error)
}

// PropertyRepository defines property access
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	FindByID(ctx context.Context, id uint) (*Property, error)
	ListByLandlord(ctx context.Context, landlordID uint) ([]Property, error)
	Update(ctx context.Context, property *Property) error
}

// MessageRepository defines the append-only message log
type MessageRepository interface {
	Insert(ctx context.Context, message *Message) error
	// ListRecent returns up to limit messages for the tenant, oldest first.
	ListRecent(ctx context.Context, tenantID uint, limit int) ([]Message, error)
	// ListPage returns dashboard history for a landlord, newest first.
	ListPage(ctx context.Context, landlordID uint, filter MessageFilter, page, perPage int) (*MessagePage, error)
	CountByCategory(ctx context.Context, landlordID uint) (*CategoryCounts, error)
	// ListSince returns all messages for a landlord created at or after
	// the given instant, used by the daily recap.
	ListSince(ctx context.Context, landlordID uint, since time.Time) ([]MessageWithTenant, error)
}

// MessageFilter narrows dashboard history queries
type MessageFilter struct {
	Category       Category
	NeedsAttention *bool
	TenantID       uint
}

// ResetTokenRepository defines password reset token access
type ResetTokenRepository interface {
	Create(ctx context.Context, token *PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uint) error
}

// SessionRepository defines dashboard session storage
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// NotificationService defines the outbound messaging channel
type NotificationService interface {
	// SendWhatsApp delivers a text message to a channel-prefixed
	// destination from the configured sending identity.
	SendWhatsApp(to, body string) error
	SendEmail(to, subject, body string) error
}

// CompletionClient defines the generative text backend
type CompletionClient interface {
	// CompleteJSON submits a system and user prompt requesting a
	// JSON-object-shaped completion and returns the raw completion text.
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// PhoneResolver maps an inbound sender identity to a tenant
type PhoneResolver interface {
	Resolve(ctx context.Context, rawFrom string) (*Tenant, error)
}

// ReplyGenerator produces a reply for one inbound message
type ReplyGenerator interface {
	Generate(ctx context.Context, pc *PromptContext, message string) *Reply
}

// EscalationNotifier forwards messages that need landlord attention
type EscalationNotifier interface {
	Escalate(ctx context.Context, tenant *Tenant, body string, reply *Reply)
}

// WebhookService runs the full inbound message pipeline
type WebhookService interface {
	// HandleInbound always returns the text of exactly one reply.
	HandleInbound(ctx context.Context, from, body string) string
}

// AuthService defines dashboard authentication business logic
type AuthService interface {
	Signup(ctx context.Context, email, name, phone, password string) (*Landlord, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, sessionID string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}
