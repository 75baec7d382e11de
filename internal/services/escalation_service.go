package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// followUpMessage is the delayed "professional dispatched" notice sent
// to the tenant after an urgent escalation.
const followUpMessage = "✅ Un profesional ha sido enviado para atender tu emergencia. Llegará lo antes posible."

// EscalationServiceImpl implements domain.EscalationNotifier. Delivery
// is fire-and-forget: failure to notify the landlord never affects the
// reply already produced for the tenant.
type EscalationServiceImpl struct {
	notifications domain.NotificationService
	messageRepo   domain.MessageRepository
	followUpDelay time.Duration
	// afterFunc is swapped in tests to run timers synchronously
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// NewEscalationService creates a new escalation notifier. followUpDelay
// is the fixed interval before the urgent follow-up message goes out.
func NewEscalationService(notifications domain.NotificationService, messageRepo domain.MessageRepository, followUpDelay time.Duration) *EscalationServiceImpl {
	return &EscalationServiceImpl{
		notifications: notifications,
		messageRepo:   messageRepo,
		followUpDelay: followUpDelay,
		afterFunc:     time.AfterFunc,
	}
}

// Escalate implements domain.EscalationNotifier. The landlord receives
// the tenant identity, property address, original message and the reply
// that was sent. For urgent messages a detached, non-cancellable timer
// later sends the follow-up to the tenant and records it as an outgoing
// message; the timer outlives the originating request.
func (s *EscalationServiceImpl) Escalate(ctx context.Context, tenant *domain.Tenant, body string, reply *domain.Reply) {
	if tenant.Property == nil || tenant.Property.LandlordPhone == "" {
		log.Printf("escalation: no landlord phone for tenant %d, skipping", tenant.ID)
		return
	}

	notice := fmt.Sprintf("🚨 %s (%s): %q\nRespuesta enviada: %s",
		tenant.Name, tenant.Property.Address, body, reply.Message)
	if err := s.notifications.SendWhatsApp(tenant.Property.LandlordPhone, notice); err != nil {
		log.Printf("escalation: landlord notification failed: %v", err)
	}

	if reply.Category == domain.CategoryUrgent {
		s.scheduleFollowUp(tenant)
	}
}

// scheduleFollowUp registers the detached follow-up timer. The timer
// performs its own directory write and outbound send with a fresh
// context; failures are logged, never retried.
func (s *EscalationServiceImpl) scheduleFollowUp(tenant *domain.Tenant) {
	tenantID := tenant.ID
	tenantPhone := tenant.Phone

	s.afterFunc(s.followUpDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.notifications.SendWhatsApp(tenantPhone, followUpMessage); err != nil {
			log.Printf("escalation: follow-up send failed for tenant %d: %v", tenantID, err)
			return
		}

		outgoing := &domain.Message{
			TenantID:  tenantID,
			Direction: domain.DirectionOutgoing,
			Body:      followUpMessage,
			Category:  domain.CategoryUrgent,
		}
		if err := s.messageRepo.Insert(ctx, outgoing); err != nil {
			log.Printf("escalation: follow-up log failed for tenant %d: %v", tenantID, err)
		}
	})
}

var _ domain.EscalationNotifier = (*EscalationServiceImpl)(nil)
