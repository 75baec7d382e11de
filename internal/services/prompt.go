package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// systemPrompt is the fixed instruction given to the generative backend.
const systemPrompt = "You are a helpful assistant that responds in JSON."

// BuildPromptContext assembles the data the reply generator sees for one
// tenant. history must already be ordered oldest first. The result is
// plain data; building it has no side effects.
func BuildPromptContext(tenant *domain.Tenant, history []domain.Message) *domain.PromptContext {
	pc := &domain.PromptContext{
		TenantName: tenant.Name,
	}
	if tenant.Property != nil {
		pc.PropertyAddress = tenant.Property.Address
		pc.MonthlyRent = tenant.Property.MonthlyRent
		pc.RentDueDay = tenant.Property.RentDueDay
		pc.LandlordName = tenant.Property.LandlordName
		pc.SpecialInstructions = tenant.Property.SpecialInstructions
	}
	for _, m := range history {
		if m.Direction != domain.DirectionIncoming {
			continue
		}
		pc.History = append(pc.History, domain.HistoryEntry{Body: m.Body, Reply: m.Reply})
	}
	return pc
}

// RenderUserPrompt renders the Spanish assistant prompt for one inbound
// message. Identical inputs always produce identical output.
func RenderUserPrompt(pc *domain.PromptContext, message string) string {
	var b strings.Builder

	b.WriteString("Eres un asistente virtual para inquilinos en México.\n\n")
	b.WriteString("INFORMACIÓN:\n")
	fmt.Fprintf(&b, "- Inquilino: %s\n", pc.TenantName)
	fmt.Fprintf(&b, "- Propiedad: %s\n", orNA(pc.PropertyAddress))
	fmt.Fprintf(&b, "- Renta: $%s MXN\n", FormatRent(pc.MonthlyRent))
	fmt.Fprintf(&b, "- Día de pago: %s\n", orNA(dayString(pc.RentDueDay)))
	fmt.Fprintf(&b, "- Casero: %s\n", orNA(pc.LandlordName))
	if pc.SpecialInstructions != "" {
		fmt.Fprintf(&b, "- Instrucciones especiales: %s\n", pc.SpecialInstructions)
	}

	if len(pc.History) > 0 {
		b.WriteString("\nCONVERSACIÓN RECIENTE:\n")
		for _, h := range pc.History {
			fmt.Fprintf(&b, "Inquilino: %s\n", h.Body)
			if h.Reply != "" {
				fmt.Fprintf(&b, "Asistente: %s\n", h.Reply)
			}
		}
	}

	fmt.Fprintf(&b, "\nMENSAJE: %q\n\n", message)
	b.WriteString("Responde directamente si puedes. Solo marca needsAttention: true para emergencias o reparaciones.\n\n")
	b.WriteString("Responde en JSON:\n")
	b.WriteString("{\n")
	b.WriteString("  \"message\": \"Tu respuesta (máximo 400 caracteres)\",\n")
	b.WriteString("  \"category\": \"URGENT|MAINTENANCE|PAYMENT|INQUIRY\",\n")
	b.WriteString("  \"needsAttention\": true o false\n")
	b.WriteString("}")

	return b.String()
}

// FormatRent renders a rent amount without trailing zeros, so 15000.0
// reads as "15000".
func FormatRent(rent float64) string {
	if rent == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(rent, 'f', -1, 64)
}

func dayString(day int) string {
	if day == 0 {
		return ""
	}
	return strconv.Itoa(day)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
