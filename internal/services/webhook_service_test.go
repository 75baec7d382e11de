package services

import (
	"context"
	"errors"
	"testing"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
	"github.com/s0ph13d3f45w/landlord-ai/internal/mocks"
)

func testTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:         7,
		PropertyID: 3,
		Name:       "María García",
		Phone:      "+525551234567",
		Property: &domain.Property{
			ID:            3,
			LandlordID:    1,
			Address:       "Av. Reforma 100, Depto 4",
			MonthlyRent:   15000,
			RentDueDay:    5,
			LandlordName:  "Don Roberto",
			LandlordPhone: "+525559876543",
		},
	}
}

func TestValidateInbound(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		body    string
		wantErr error
	}{
		{"complete", "whatsapp:+525551234567", "hola", nil},
		{"missing body", "whatsapp:+525551234567", "", domain.ErrMissingBody},
		{"missing sender", "", "hola", domain.ErrMissingSender},
		{"missing both reports the body first", "", "", domain.ErrMissingBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateInbound(tt.from, tt.body); !errors.Is(err, tt.wantErr) {
				t.Errorf("validateInbound() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWebhookService_HandleInbound_IncompleteData(t *testing.T) {
	tests := []struct {
		name string
		from string
		body string
	}{
		{"missing body", "whatsapp:+525551234567", ""},
		{"missing sender", "", "hola"},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mocks.NewMockPhoneResolver()
			resolved := false
			resolver.ResolveFunc = func(ctx context.Context, rawFrom string) (*domain.Tenant, error) {
				resolved = true
				return testTenant(), nil
			}
			messageRepo := mocks.NewMockMessageRepository()
			svc := NewWebhookService(resolver, messageRepo, mocks.NewMockReplyGenerator(), mocks.NewMockEscalationNotifier(), 10)

			got := svc.HandleInbound(context.Background(), tt.from, tt.body)

			if got != replyIncompleteData {
				t.Errorf("reply = %q, want %q", got, replyIncompleteData)
			}
			if resolved {
				t.Error("resolution must not run for incomplete requests")
			}
			if len(messageRepo.Inserted) != 0 {
				t.Errorf("persisted %d messages, want 0", len(messageRepo.Inserted))
			}
		})
	}
}

func TestWebhookService_HandleInbound_UnknownSender(t *testing.T) {
	resolver := mocks.NewMockPhoneResolver() // default: ErrTenantNotFound
	messageRepo := mocks.NewMockMessageRepository()
	escalations := mocks.NewMockEscalationNotifier()
	svc := NewWebhookService(resolver, messageRepo, mocks.NewMockReplyGenerator(), escalations, 10)

	got := svc.HandleInbound(context.Background(), "whatsapp:+525550000000", "hola")

	if got != replyUnknownNumber {
		t.Errorf("reply = %q, want %q", got, replyUnknownNumber)
	}
	if len(messageRepo.Inserted) != 0 {
		t.Error("unknown senders must leave no message rows")
	}
	if len(escalations.Calls) != 0 {
		t.Error("unknown senders must not escalate")
	}
}

func TestWebhookService_HandleInbound_PersistsAndReplies(t *testing.T) {
	resolver := mocks.NewMockPhoneResolver()
	resolver.ResolveFunc = func(ctx context.Context, rawFrom string) (*domain.Tenant, error) {
		return testTenant(), nil
	}
	messageRepo := mocks.NewMockMessageRepository()
	replies := mocks.NewMockReplyGenerator()
	replies.GenerateFunc = func(ctx context.Context, pc *domain.PromptContext, message string) *domain.Reply {
		return &domain.Reply{
			Message:        "Tu renta es $15000 MXN y se paga el día 5 de cada mes.",
			Category:       domain.CategoryPayment,
			NeedsAttention: false,
		}
	}
	escalations := mocks.NewMockEscalationNotifier()
	svc := NewWebhookService(resolver, messageRepo, replies, escalations, 10)

	got := svc.HandleInbound(context.Background(), "whatsapp:+525551234567", "¿Cuándo se paga la renta?")

	if got != "Tu renta es $15000 MXN y se paga el día 5 de cada mes." {
		t.Errorf("reply = %q", got)
	}
	if len(messageRepo.Inserted) != 1 {
		t.Fatalf("persisted %d messages, want 1", len(messageRepo.Inserted))
	}
	record := messageRepo.Inserted[0]
	if record.TenantID != 7 {
		t.Errorf("tenantID = %d, want 7", record.TenantID)
	}
	if record.Direction != domain.DirectionIncoming {
		t.Errorf("direction = %s, want incoming", record.Direction)
	}
	if record.Body != "¿Cuándo se paga la renta?" {
		t.Errorf("body = %q", record.Body)
	}
	if record.Category != domain.CategoryPayment {
		t.Errorf("category = %s, want PAYMENT", record.Category)
	}
	if record.Reply != got {
		t.Errorf("stored reply %q differs from returned reply %q", record.Reply, got)
	}
	if len(escalations.Calls) != 0 {
		t.Error("needsAttention=false must not escalate")
	}
}

func TestWebhookService_HandleInbound_EscalatesWhenFlagged(t *testing.T) {
	resolver := mocks.NewMockPhoneResolver()
	resolver.ResolveFunc = func(ctx context.Context, rawFrom string) (*domain.Tenant, error) {
		return testTenant(), nil
	}
	replies := mocks.NewMockReplyGenerator()
	urgent := &domain.Reply{
		Message:        "He notificado a tu casero.",
		Category:       domain.CategoryUrgent,
		NeedsAttention: true,
	}
	replies.GenerateFunc = func(ctx context.Context, pc *domain.PromptContext, message string) *domain.Reply {
		return urgent
	}
	escalations := mocks.NewMockEscalationNotifier()
	svc := NewWebhookService(resolver, mocks.NewMockMessageRepository(), replies, escalations, 10)

	svc.HandleInbound(context.Background(), "whatsapp:+525551234567", "hay una fuga de agua")

	if len(escalations.Calls) != 1 {
		t.Fatalf("escalations = %d, want 1", len(escalations.Calls))
	}
	call := escalations.Calls[0]
	if call.Tenant.ID != 7 {
		t.Errorf("escalated tenant = %d, want 7", call.Tenant.ID)
	}
	if call.Body != "hay una fuga de agua" {
		t.Errorf("escalated body = %q", call.Body)
	}
	if call.Reply != urgent {
		t.Error("escalation must receive the generated reply")
	}
}

func TestWebhookService_HandleInbound_HistoryFailureIsNonFatal(t *testing.T) {
	resolver := mocks.NewMockPhoneResolver()
	resolver.ResolveFunc = func(ctx context.Context, rawFrom string) (*domain.Tenant, error) {
		return testTenant(), nil
	}
	messageRepo := mocks.NewMockMessageRepository()
	messageRepo.ListRecentFunc = func(ctx context.Context, tenantID uint, limit int) ([]domain.Message, error) {
		return nil, errors.New("connection reset")
	}
	replies := mocks.NewMockReplyGenerator()
	var gotHistory []domain.HistoryEntry
	replies.GenerateFunc = func(ctx context.Context, pc *domain.PromptContext, message string) *domain.Reply {
		gotHistory = pc.History
		return &domain.Reply{Message: "ok", Category: domain.CategoryInquiry}
	}
	svc := NewWebhookService(resolver, messageRepo, replies, mocks.NewMockEscalationNotifier(), 10)

	got := svc.HandleInbound(context.Background(), "whatsapp:+525551234567", "hola")

	if got != "ok" {
		t.Errorf("reply = %q, want %q", got, "ok")
	}
	if len(gotHistory) != 0 {
		t.Errorf("history = %d entries, want none after lookup failure", len(gotHistory))
	}
}

func TestWebhookService_HandleInbound_InsertFailureStillReplies(t *testing.T) {
	resolver := mocks.NewMockPhoneResolver()
	resolver.ResolveFunc = func(ctx context.Context, rawFrom string) (*domain.Tenant, error) {
		return testTenant(), nil
	}
	messageRepo := mocks.NewMockMessageRepository()
	messageRepo.InsertFunc = func(ctx context.Context, message *domain.Message) error {
		return errors.New("disk full")
	}
	replies := mocks.NewMockReplyGenerator()
	replies.GenerateFunc = func(ctx context.Context, pc *domain.PromptContext, message string) *domain.Reply {
		return &domain.Reply{Message: "ok", Category: domain.CategoryInquiry}
	}
	svc := NewWebhookService(resolver, messageRepo, replies, mocks.NewMockEscalationNotifier(), 10)

	if got := svc.HandleInbound(context.Background(), "whatsapp:+525551234567", "hola"); got != "ok" {
		t.Errorf("reply = %q, want %q", got, "ok")
	}
}

func TestWebhookService_HandleInbound_RecoversFromPanic(t *testing.T) {
	resolver := mocks.NewMockPhoneResolver()
	resolver.ResolveFunc = func(ctx context.Context, rawFrom string) (*domain.Tenant, error) {
		return testTenant(), nil
	}
	replies := mocks.NewMockReplyGenerator()
	replies.GenerateFunc = func(ctx context.Context, pc *domain.PromptContext, message string) *domain.Reply {
		panic("nil map write")
	}
	svc := NewWebhookService(resolver, mocks.NewMockMessageRepository(), replies, mocks.NewMockEscalationNotifier(), 10)

	if got := svc.HandleInbound(context.Background(), "whatsapp:+525551234567", "hola"); got != replyInternalError {
		t.Errorf("reply = %q, want %q", got, replyInternalError)
	}
}
