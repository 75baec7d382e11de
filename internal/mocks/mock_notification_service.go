package mocks

import (
	"sync"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// SentMessage records one outbound send for assertions
type SentMessage struct {
	To   string
	Body string
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendWhatsAppFunc func(to, body string) error
	SendEmailFunc    func(to, subject, body string) error

	mu sync.Mutex
	// Sent records every WhatsApp send attempt. The urgent follow-up
	// timer appends from its own goroutine, so concurrent readers must
	// use SentCopy.
	Sent []SentMessage
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendWhatsApp sends a WhatsApp message
func (m *MockNotificationService) SendWhatsApp(to, body string) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, SentMessage{To: to, Body: body})
	m.mu.Unlock()
	if m.SendWhatsAppFunc != nil {
		return m.SendWhatsAppFunc(to, body)
	}
	return nil
}

// SentCopy returns a snapshot of recorded sends, safe to call while
// sends may still be in flight.
func (m *MockNotificationService) SentCopy() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.Sent))
	copy(out, m.Sent)
	return out
}

// SendEmail sends an email message
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	return nil
}

var _ domain.NotificationService = (*MockNotificationService)(nil)
