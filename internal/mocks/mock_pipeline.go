package mocks

import (
	"context"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MockPhoneResolver implements domain.PhoneResolver for testing
type MockPhoneResolver struct {
	ResolveFunc func(ctx context.Context, rawFrom string) (*domain.Tenant, error)
}

// NewMockPhoneResolver creates a new MockPhoneResolver with default behaviors
func NewMockPhoneResolver() *MockPhoneResolver {
	return &MockPhoneResolver{}
}

// Resolve maps a sender identity to a tenant
func (m *MockPhoneResolver) Resolve(ctx context.Context, rawFrom string) (*domain.Tenant, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, rawFrom)
	}
	return nil, domain.ErrTenantNotFound
}

var _ domain.PhoneResolver = (*MockPhoneResolver)(nil)

// MockReplyGenerator implements domain.ReplyGenerator for testing
type MockReplyGenerator struct {
	GenerateFunc func(ctx context.Context, pc *domain.PromptContext, message string) *domain.Reply
}

// NewMockReplyGenerator creates a new MockReplyGenerator with default behaviors
func NewMockReplyGenerator() *MockReplyGenerator {
	return &MockReplyGenerator{}
}

// Generate produces a reply for one inbound message
func (m *MockReplyGenerator) Generate(ctx context.Context, pc *domain.PromptContext, message string) *domain.Reply {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, pc, message)
	}
	return &domain.Reply{
		Message:  "Recibí tu mensaje.",
		Category: domain.CategoryInquiry,
	}
}

var _ domain.ReplyGenerator = (*MockReplyGenerator)(nil)

// EscalationCall records one escalation attempt
type EscalationCall struct {
	Tenant *domain.Tenant
	Body   string
	Reply  *domain.Reply
}

// MockEscalationNotifier implements domain.EscalationNotifier for testing
type MockEscalationNotifier struct {
	EscalateFunc func(ctx context.Context, tenant *domain.Tenant, body string, reply *domain.Reply)

	// Calls records every escalation attempt
	Calls []EscalationCall
}

// NewMockEscalationNotifier creates a new MockEscalationNotifier with default behaviors
func NewMockEscalationNotifier() *MockEscalationNotifier {
	return &MockEscalationNotifier{}
}

// Escalate forwards a message to the landlord
func (m *MockEscalationNotifier) Escalate(ctx context.Context, tenant *domain.Tenant, body string, reply *domain.Reply) {
	m.Calls = append(m.Calls, EscalationCall{Tenant: tenant, Body: body, Reply: reply})
	if m.EscalateFunc != nil {
		m.EscalateFunc(ctx, tenant, body, reply)
	}
}

var _ domain.EscalationNotifier = (*MockEscalationNotifier)(nil)

// MockWebhookService implements domain.WebhookService for testing
type MockWebhookService struct {
	HandleInboundFunc func(ctx context.Context, from, body string) string
}

// NewMockWebhookService creates a new MockWebhookService with default behaviors
func NewMockWebhookService() *MockWebhookService {
	return &MockWebhookService{}
}

// HandleInbound runs the inbound pipeline
func (m *MockWebhookService) HandleInbound(ctx context.Context, from, body string) string {
	if m.HandleInboundFunc != nil {
		return m.HandleInboundFunc(ctx, from, body)
	}
	return "Recibí tu mensaje."
}

var _ domain.WebhookService = (*MockWebhookService)(nil)
