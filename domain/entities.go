package domain

import "time"

// Landlord represents a property owner using the dashboard
type Landlord struct {
	ID           uint
	Email        string
	Name         string
	Phone        string
	PasswordHash string `gorm:"column:password"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Property represents a rental unit owned by a landlord.
// LandlordName and LandlordPhone are copied from the owning Landlord at
// creation time and are not kept in sync afterwards.
type Property struct {
	ID                  uint
	LandlordID          uint
	Address             string
	MonthlyRent         float64
	RentDueDay          int
	SpecialInstructions string
	LandlordName        string
	LandlordPhone       string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Tenant represents a renter identified to the system by phone number
type Tenant struct {
	ID         uint
	PropertyID uint
	Name       string
	Phone      string
	MoveInDate time.Time
	Property   *Property
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Direction indicates who originated a message
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// Category classifies a tenant message and drives escalation decisions
type Category string

const (
	CategoryUrgent      Category = "URGENT"
	CategoryMaintenance Category = "MAINTENANCE"
	CategoryPayment     Category = "PAYMENT"
	CategoryInquiry     Category = "INQUIRY"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryUrgent, CategoryMaintenance, CategoryPayment, CategoryInquiry:
		return true
	}
	return false
}

// Message is an append-only record of one inbound tenant message and
// the reply generated for it, or of an outgoing follow-up.
type Message struct {
	ID             uint
	TenantID       uint
	Direction      Direction
	Body           string
	Category       Category
	Reply          string
	NeedsAttention bool
	CreatedAt      time.Time
}

// Reply is the result of generating a response to one tenant message
type Reply struct {
	Message        string
	Category       Category
	NeedsAttention bool
	// Fallback is true when the deterministic classifier produced the
	// reply because the generative backend was unavailable.
	Fallback bool
}

// HistoryEntry pairs a prior inbound message with the reply it received
type HistoryEntry struct {
	Body  string
	Reply string
}

// PromptContext carries everything the reply generator knows about the
// tenant. It is plain data so prompt construction stays deterministic.
type PromptContext struct {
	TenantName          string
	PropertyAddress     string
	MonthlyRent         float64
	RentDueDay          int
	LandlordName        string
	SpecialInstructions string
	History             []HistoryEntry
}

// Session is an authenticated dashboard session for a landlord
type Session struct {
	ID         string
	LandlordID uint
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// PasswordResetToken is a single-use credential for the reset flow.
// It is valid only while Used is false and the expiry has not passed.
type PasswordResetToken struct {
	ID         uint
	LandlordID uint
	Token      string
	ExpiresAt  time.Time
	Used       bool
	CreatedAt  time.Time
}

// Usable reports whether the token can still redeem a password reset at
// the given instant.
func (t *PasswordResetToken) Usable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// MessagePage is one page of dashboard message history
type MessagePage struct {
	Messages []MessageWithTenant
	Total    int64
	Page     int
	PerPage  int
}

// MessageWithTenant joins a message with the tenant and property it
// belongs to for dashboard display.
type MessageWithTenant struct {
	Message
	TenantName      string
	PropertyAddress string
}

// CategoryCounts aggregates message volume for the dashboard
type CategoryCounts struct {
	Urgent         int64
	Maintenance    int64
	Payment        int64
	Inquiry        int64
	NeedsAttention int64
}
