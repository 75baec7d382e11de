package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// maxReplyRunes bounds the length of any tenant-facing reply.
const maxReplyRunes = 400

// ReplyServiceImpl implements domain.ReplyGenerator. The generative
// backend is the primary path; any failure there degrades to the
// deterministic keyword classifier so the tenant always gets a reply.
type ReplyServiceImpl struct {
	completions domain.CompletionClient
}

// NewReplyService creates a new reply generator
func NewReplyService(completions domain.CompletionClient) *ReplyServiceImpl {
	return &ReplyServiceImpl{completions: completions}
}

// completionResult mirrors the JSON shape requested from the backend.
// NeedsAttention is decoded loosely and coerced afterwards.
type completionResult struct {
	Message        string          `json:"message"`
	Category       string          `json:"category"`
	NeedsAttention json.RawMessage `json:"needsAttention"`
}

// Generate implements domain.ReplyGenerator. It never returns an error:
// availability of a response is prioritized over reply quality.
func (s *ReplyServiceImpl) Generate(ctx context.Context, pc *domain.PromptContext, message string) *domain.Reply {
	completion, err := s.completions.CompleteJSON(ctx, systemPrompt, RenderUserPrompt(pc, message))
	if err != nil {
		log.Printf("reply: completion failed, using fallback: %v", err)
		return Classify(pc, message)
	}

	reply, err := parseCompletion(completion)
	if err != nil {
		log.Printf("reply: unusable completion, using fallback: %v", err)
		return Classify(pc, message)
	}
	return reply
}

func parseCompletion(completion string) (*domain.Reply, error) {
	var result completionResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(completion)), &result); err != nil {
		return nil, domain.ErrCompletionMalformed
	}
	if strings.TrimSpace(result.Message) == "" {
		return nil, domain.ErrCompletionMalformed
	}

	category := normalizeCategory(result.Category)
	if !category.Valid() {
		return nil, domain.ErrCompletionMalformed
	}

	needsAttention, err := coerceBool(result.NeedsAttention)
	if err != nil {
		return nil, domain.ErrCompletionMalformed
	}

	return &domain.Reply{
		Message:        clampRunes(result.Message, maxReplyRunes),
		Category:       category,
		NeedsAttention: needsAttention,
	}, nil
}

// normalizeCategory maps backend category spellings onto the enum. The
// prompt is Spanish, so Spanish labels are accepted alongside the
// canonical English ones.
func normalizeCategory(raw string) domain.Category {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "URGENT", "URGENTE":
		return domain.CategoryUrgent
	case "MAINTENANCE", "MANTENIMIENTO":
		return domain.CategoryMaintenance
	case "PAYMENT", "PAGO":
		return domain.CategoryPayment
	case "INQUIRY", "CONSULTA":
		return domain.CategoryInquiry
	}
	return domain.Category(strings.ToUpper(strings.TrimSpace(raw)))
}

// coerceBool accepts JSON true/false and the string forms "true" and
// "false", which some models emit despite the contract.
func coerceBool(raw json.RawMessage) (bool, error) {
	if len(raw) == 0 {
		return false, domain.ErrCompletionMalformed
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, domain.ErrCompletionMalformed
}

func clampRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

var _ domain.ReplyGenerator = (*ReplyServiceImpl)(nil)
