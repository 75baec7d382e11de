package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
	"github.com/s0ph13d3f45w/landlord-ai/internal/mocks"
)

// immediateTimer runs scheduled functions synchronously so follow-up
// behavior can be asserted without waiting.
func immediateTimer(svc *EscalationServiceImpl) *int {
	scheduled := 0
	svc.afterFunc = func(d time.Duration, f func()) *time.Timer {
		scheduled++
		f()
		return time.NewTimer(time.Hour)
	}
	return &scheduled
}

func TestEscalationService_Escalate_NotifiesLandlord(t *testing.T) {
	notifications := mocks.NewMockNotificationService()
	svc := NewEscalationService(notifications, mocks.NewMockMessageRepository(), 10*time.Second)

	reply := &domain.Reply{Message: "He avisado al casero.", Category: domain.CategoryMaintenance, NeedsAttention: true}
	svc.Escalate(context.Background(), testTenant(), "la regadera está rota", reply)

	if len(notifications.Sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(notifications.Sent))
	}
	sent := notifications.Sent[0]
	if sent.To != "+525559876543" {
		t.Errorf("notice sent to %q, want landlord phone", sent.To)
	}
	for _, fragment := range []string{"🚨", "María García", "Av. Reforma 100, Depto 4", "la regadera está rota", "He avisado al casero."} {
		if !strings.Contains(sent.Body, fragment) {
			t.Errorf("notice missing %q:\n%s", fragment, sent.Body)
		}
	}
}

func TestEscalationService_Escalate_SkipsWithoutLandlordPhone(t *testing.T) {
	notifications := mocks.NewMockNotificationService()
	svc := NewEscalationService(notifications, mocks.NewMockMessageRepository(), 10*time.Second)
	scheduled := immediateTimer(svc)

	tenant := testTenant()
	tenant.Property.LandlordPhone = ""
	svc.Escalate(context.Background(), tenant, "emergencia", &domain.Reply{Category: domain.CategoryUrgent, NeedsAttention: true})

	noProperty := testTenant()
	noProperty.Property = nil
	svc.Escalate(context.Background(), noProperty, "emergencia", &domain.Reply{Category: domain.CategoryUrgent, NeedsAttention: true})

	if len(notifications.Sent) != 0 {
		t.Errorf("sent %d messages, want 0", len(notifications.Sent))
	}
	if *scheduled != 0 {
		t.Errorf("scheduled %d follow-ups, want 0", *scheduled)
	}
}

func TestEscalationService_Escalate_UrgentSchedulesFollowUp(t *testing.T) {
	notifications := mocks.NewMockNotificationService()
	messageRepo := mocks.NewMockMessageRepository()
	svc := NewEscalationService(notifications, messageRepo, 10*time.Second)
	immediateTimer(svc)

	reply := &domain.Reply{Message: "🚨 He notificado a tu casero.", Category: domain.CategoryUrgent, NeedsAttention: true}
	svc.Escalate(context.Background(), testTenant(), "hay una fuga de gas", reply)

	// landlord notice plus the tenant follow-up
	if len(notifications.Sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(notifications.Sent))
	}
	followUp := notifications.Sent[1]
	if followUp.To != "+525551234567" {
		t.Errorf("follow-up sent to %q, want tenant phone", followUp.To)
	}
	if followUp.Body != followUpMessage {
		t.Errorf("follow-up body = %q", followUp.Body)
	}

	if len(messageRepo.Inserted) != 1 {
		t.Fatalf("persisted %d messages, want 1", len(messageRepo.Inserted))
	}
	outgoing := messageRepo.Inserted[0]
	if outgoing.Direction != domain.DirectionOutgoing {
		t.Errorf("direction = %s, want outgoing", outgoing.Direction)
	}
	if outgoing.TenantID != 7 {
		t.Errorf("tenantID = %d, want 7", outgoing.TenantID)
	}
	if outgoing.Body != followUpMessage {
		t.Errorf("body = %q", outgoing.Body)
	}
	if outgoing.Category != domain.CategoryUrgent {
		t.Errorf("category = %s, want URGENT", outgoing.Category)
	}
}

func TestEscalationService_Escalate_NonUrgentHasNoFollowUp(t *testing.T) {
	notifications := mocks.NewMockNotificationService()
	svc := NewEscalationService(notifications, mocks.NewMockMessageRepository(), 10*time.Second)
	scheduled := immediateTimer(svc)

	for _, category := range []domain.Category{domain.CategoryMaintenance, domain.CategoryPayment, domain.CategoryInquiry} {
		svc.Escalate(context.Background(), testTenant(), "mensaje", &domain.Reply{Message: "ok", Category: category, NeedsAttention: true})
	}

	if *scheduled != 0 {
		t.Errorf("scheduled %d follow-ups, want 0", *scheduled)
	}
	if len(notifications.Sent) != 3 {
		t.Errorf("sent %d messages, want 3 landlord notices", len(notifications.Sent))
	}
}

func TestEscalationService_FollowUpNotLoggedWhenSendFails(t *testing.T) {
	notifications := mocks.NewMockNotificationService()
	notifications.SendWhatsAppFunc = func(to, body string) error {
		if body == followUpMessage {
			return errors.New("delivery failed")
		}
		return nil
	}
	messageRepo := mocks.NewMockMessageRepository()
	svc := NewEscalationService(notifications, messageRepo, 10*time.Second)
	immediateTimer(svc)

	reply := &domain.Reply{Message: "🚨 aviso", Category: domain.CategoryUrgent, NeedsAttention: true}
	svc.Escalate(context.Background(), testTenant(), "fuego", reply)

	if len(messageRepo.Inserted) != 0 {
		t.Errorf("persisted %d messages, want 0 when the send fails", len(messageRepo.Inserted))
	}
}
