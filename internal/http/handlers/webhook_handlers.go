package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/twiml"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// WebhookHandlers handles inbound WhatsApp webhook requests
type WebhookHandlers struct {
	webhookSvc domain.WebhookService
}

// NewWebhookHandlers creates new webhook handlers
func NewWebhookHandlers(webhookSvc domain.WebhookService) *WebhookHandlers {
	return &WebhookHandlers{webhookSvc: webhookSvc}
}

// Inbound handles one webhook delivery. The response is always HTTP 200
// with a single TwiML <Message>; errors are expressed as reply text,
// never as status codes.
func (h *WebhookHandlers) Inbound(c *gin.Context) {
	body := c.PostForm("Body")
	from := c.PostForm("From")

	reply := h.webhookSvc.HandleInbound(c.Request.Context(), from, body)

	xml, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: reply},
	})
	if err != nil {
		// twiml rendering failing on a plain body should not happen;
		// keep the contract of one well-formed payload anyway.
		log.Printf("webhook: twiml render failed: %v", err)
		xml = "<?xml version=\"1.0\" encoding=\"UTF-8\"?><Response><Message>" + replyRenderError + "</Message></Response>"
	}

	c.Data(http.StatusOK, "text/xml", []byte(xml))
}

const replyRenderError = "Disculpa, hubo un error."
