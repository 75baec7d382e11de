package services

import (
	"strings"
	"testing"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

func TestBuildPromptContext(t *testing.T) {
	tenant := &domain.Tenant{
		ID:   1,
		Name: "María",
		Property: &domain.Property{
			Address:             "Av. Reforma 100",
			MonthlyRent:         15000,
			RentDueDay:          5,
			LandlordName:        "Don Roberto",
			SpecialInstructions: "No mascotas",
		},
	}
	history := []domain.Message{
		{Direction: domain.DirectionIncoming, Body: "hola", Reply: "Hola María"},
		{Direction: domain.DirectionOutgoing, Body: "seguimiento"},
		{Direction: domain.DirectionIncoming, Body: "gracias", Reply: "De nada"},
	}

	pc := BuildPromptContext(tenant, history)

	if pc.TenantName != "María" || pc.PropertyAddress != "Av. Reforma 100" {
		t.Errorf("tenant/property fields not copied: %+v", pc)
	}
	if pc.MonthlyRent != 15000 || pc.RentDueDay != 5 {
		t.Errorf("rent fields not copied: %+v", pc)
	}
	if pc.LandlordName != "Don Roberto" || pc.SpecialInstructions != "No mascotas" {
		t.Errorf("landlord fields not copied: %+v", pc)
	}

	// Outgoing follow-ups are not part of the transcript.
	if len(pc.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(pc.History))
	}
	if pc.History[0].Body != "hola" || pc.History[1].Body != "gracias" {
		t.Errorf("history order wrong: %+v", pc.History)
	}
}

func TestBuildPromptContext_NoProperty(t *testing.T) {
	pc := BuildPromptContext(&domain.Tenant{Name: "Luis"}, nil)
	if pc.TenantName != "Luis" {
		t.Errorf("tenant name = %q", pc.TenantName)
	}
	if pc.PropertyAddress != "" || pc.MonthlyRent != 0 {
		t.Errorf("property fields should stay zero: %+v", pc)
	}
}

func TestRenderUserPrompt(t *testing.T) {
	pc := testPromptContext()
	pc.History = []domain.HistoryEntry{{Body: "hola", Reply: "Hola María"}}

	prompt := RenderUserPrompt(pc, "¿cuándo vence la renta?")

	for _, fragment := range []string{
		"María",
		"Av. Reforma 100",
		"$15000 MXN",
		"Día de pago: 5",
		"Don Roberto",
		"¿cuándo vence la renta?",
		"needsAttention",
		"URGENT|MAINTENANCE|PAYMENT|INQUIRY",
		"CONVERSACIÓN RECIENTE",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

// Prompt construction must be deterministic so it can be tested apart
// from the generative call.
func TestRenderUserPrompt_Deterministic(t *testing.T) {
	pc := testPromptContext()
	first := RenderUserPrompt(pc, "hola")
	for i := 0; i < 3; i++ {
		if RenderUserPrompt(pc, "hola") != first {
			t.Fatal("RenderUserPrompt is not deterministic")
		}
	}
}

func TestRenderUserPrompt_MissingFields(t *testing.T) {
	prompt := RenderUserPrompt(&domain.PromptContext{TenantName: "Luis"}, "hola")
	if !strings.Contains(prompt, "N/A") {
		t.Error("missing property fields should render as N/A")
	}
	if strings.Contains(prompt, "Instrucciones especiales") {
		t.Error("empty special instructions should be omitted")
	}
}

func TestFormatRent(t *testing.T) {
	tests := []struct {
		rent float64
		want string
	}{
		{15000, "15000"},
		{12500.50, "12500.5"},
		{0, "N/A"},
	}
	for _, tt := range tests {
		if got := FormatRent(tt.rent); got != tt.want {
			t.Errorf("FormatRent(%v) = %q, want %q", tt.rent, got, tt.want)
		}
	}
}
