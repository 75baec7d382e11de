package services

import (
	"context"
	"log"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// Fixed tenant-facing replies for the short-circuit branches.
const (
	replyIncompleteData = "Error: datos incompletos"
	replyUnknownNumber  = "Lo siento, no reconozco este número."
	replyInternalError  = "Disculpa, hubo un error. Intenta de nuevo."
)

// WebhookServiceImpl implements domain.WebhookService. It orchestrates
// the inbound pipeline: resolve sender, assemble context, generate a
// reply, persist, escalate. Every branch terminates with exactly one
// reply string; internal failures degrade the content of the reply,
// never its presence.
type WebhookServiceImpl struct {
	resolver     domain.PhoneResolver
	messageRepo  domain.MessageRepository
	replies      domain.ReplyGenerator
	escalations  domain.EscalationNotifier
	historyLimit int
}

// NewWebhookService creates a new webhook service. historyLimit bounds
// how many prior messages feed the prompt context.
func NewWebhookService(
	resolver domain.PhoneResolver,
	messageRepo domain.MessageRepository,
	replies domain.ReplyGenerator,
	escalations domain.EscalationNotifier,
	historyLimit int,
) *WebhookServiceImpl {
	if historyLimit <= 0 || historyLimit > 10 {
		historyLimit = 10
	}
	return &WebhookServiceImpl{
		resolver:     resolver,
		messageRepo:  messageRepo,
		replies:      replies,
		escalations:  escalations,
		historyLimit: historyLimit,
	}
}

// validateInbound checks the two fields the messaging provider must
// supply before the pipeline runs.
func validateInbound(from, body string) error {
	if body == "" {
		return domain.ErrMissingBody
	}
	if from == "" {
		return domain.ErrMissingSender
	}
	return nil
}

// HandleInbound implements domain.WebhookService
func (s *WebhookServiceImpl) HandleInbound(ctx context.Context, from, body string) (replyText string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("webhook: panic recovered: %v", r)
			replyText = replyInternalError
		}
	}()

	if err := validateInbound(from, body); err != nil {
		log.Printf("webhook: rejected request: %v", err)
		return replyIncompleteData
	}

	tenant, err := s.resolver.Resolve(ctx, from)
	if err != nil {
		log.Printf("webhook: sender %s not recognized: %v", from, err)
		return replyUnknownNumber
	}

	history, err := s.messageRepo.ListRecent(ctx, tenant.ID, s.historyLimit)
	if err != nil {
		// History is an enrichment; reply without it.
		log.Printf("webhook: history lookup failed for tenant %d: %v", tenant.ID, err)
		history = nil
	}

	pc := BuildPromptContext(tenant, history)
	reply := s.replies.Generate(ctx, pc, body)

	record := &domain.Message{
		TenantID:       tenant.ID,
		Direction:      domain.DirectionIncoming,
		Body:           body,
		Category:       reply.Category,
		Reply:          reply.Message,
		NeedsAttention: reply.NeedsAttention,
	}
	if err := s.messageRepo.Insert(ctx, record); err != nil {
		// Accepted data-loss risk: the reply still goes out.
		log.Printf("webhook: message log failed for tenant %d: %v", tenant.ID, err)
	}

	if reply.NeedsAttention {
		s.escalations.Escalate(ctx, tenant, body, reply)
	}

	return reply.Message
}

var _ domain.WebhookService = (*WebhookServiceImpl)(nil)
