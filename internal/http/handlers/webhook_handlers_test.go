package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/s0ph13d3f45w/landlord-ai/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postWebhook(t *testing.T, handler *WebhookHandlers, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/webhook/whatsapp", handler.Inbound)

	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookHandlers_Inbound(t *testing.T) {
	webhookSvc := mocks.NewMockWebhookService()
	var gotFrom, gotBody string
	webhookSvc.HandleInboundFunc = func(ctx context.Context, from, body string) string {
		gotFrom, gotBody = from, body
		return "Tu renta es $15000 MXN y se paga el día 5 de cada mes."
	}
	handler := NewWebhookHandlers(webhookSvc)

	w := postWebhook(t, handler, url.Values{
		"From": {"whatsapp:+525551234567"},
		"Body": {"¿Cuándo se paga la renta?"},
	})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/xml") {
		t.Errorf("content type = %q, want text/xml", ct)
	}
	if gotFrom != "whatsapp:+525551234567" || gotBody != "¿Cuándo se paga la renta?" {
		t.Errorf("pipeline received from=%q body=%q", gotFrom, gotBody)
	}

	payload := w.Body.String()
	if !strings.Contains(payload, "<Response>") {
		t.Errorf("payload is not TwiML: %s", payload)
	}
	if got := strings.Count(payload, "<Message>"); got != 1 {
		t.Errorf("payload has %d <Message> elements, want 1:\n%s", got, payload)
	}
	if !strings.Contains(payload, "Tu renta es $15000 MXN") {
		t.Errorf("payload missing reply text:\n%s", payload)
	}
}

func TestWebhookHandlers_Inbound_EmptyFormStillReplies(t *testing.T) {
	webhookSvc := mocks.NewMockWebhookService()
	webhookSvc.HandleInboundFunc = func(ctx context.Context, from, body string) string {
		if from != "" || body != "" {
			t.Errorf("expected empty form fields, got from=%q body=%q", from, body)
		}
		return "Error: datos incompletos"
	}
	handler := NewWebhookHandlers(webhookSvc)

	w := postWebhook(t, handler, url.Values{})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 even for incomplete requests", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error: datos incompletos") {
		t.Errorf("payload = %s", w.Body.String())
	}
}
