package services

import (
	"fmt"
	"strings"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// Keyword groups for the deterministic fallback classifier. Matching is
// done on the lowercased message body; accented and unaccented spellings
// are both listed because WhatsApp input is inconsistent about them.
var (
	emergencyTerms = []string{
		"fuga", "leak", "incendio", "fire", "fuego", "gas",
		"inundación", "inundacion", "flood", "emergencia", "emergency",
	}
	paymentTerms = []string{
		"pago", "pagar", "renta", "rent", "depósito", "deposito", "transferencia",
	}
	repairTerms = []string{
		"reparación", "reparacion", "reparar", "arreglar", "descompuesto",
		"no funciona", "no sirve", "roto", "broken", "repair", "fix",
	}
	gratitudeTerms = []string{
		"gracias", "thank",
	}
)

// Classify is the deterministic fallback responder used whenever the
// generative backend cannot produce a usable reply. It is a pure
// function: identical message and context always yield the same reply.
//
// Unclassified messages default to needsAttention=true: a message the
// rules cannot place is exactly the kind a human should look at.
func Classify(pc *domain.PromptContext, message string) *domain.Reply {
	lower := strings.ToLower(message)

	if containsAny(lower, emergencyTerms) {
		return &domain.Reply{
			Message:        "🚨 He notificado a tu casero sobre esta emergencia. Te contactará lo antes posible.",
			Category:       domain.CategoryUrgent,
			NeedsAttention: true,
			Fallback:       true,
		}
	}

	if containsAny(lower, paymentTerms) {
		return &domain.Reply{
			Message: fmt.Sprintf("Tu renta es $%s MXN y se paga el día %d de cada mes.",
				FormatRent(pc.MonthlyRent), pc.RentDueDay),
			Category:       domain.CategoryPayment,
			NeedsAttention: false,
			Fallback:       true,
		}
	}

	if containsAny(lower, repairTerms) {
		return &domain.Reply{
			Message:        "He registrado tu solicitud de reparación y avisé a tu casero. Te contactará pronto.",
			Category:       domain.CategoryMaintenance,
			NeedsAttention: true,
			Fallback:       true,
		}
	}

	if containsAny(lower, gratitudeTerms) {
		return &domain.Reply{
			Message:        "¡Con gusto! Aquí estoy si necesitas algo más.",
			Category:       domain.CategoryInquiry,
			NeedsAttention: false,
			Fallback:       true,
		}
	}

	return &domain.Reply{
		Message:        "Recibí tu mensaje. Te respondo pronto.",
		Category:       domain.CategoryInquiry,
		NeedsAttention: true,
		Fallback:       true,
	}
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
