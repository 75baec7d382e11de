package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// RecapService sends each landlord a daily WhatsApp summary of the
// day's tenant messages. It runs as a detached background loop;
// delivery failures are logged and never retried.
type RecapService struct {
	landlordRepo  domain.LandlordRepository
	messageRepo   domain.MessageRepository
	notifications domain.NotificationService
	hour          int
	now           func() time.Time
}

// NewRecapService creates a new recap service. hour is the local hour
// (0-23) at which the recap goes out.
func NewRecapService(landlordRepo domain.LandlordRepository, messageRepo domain.MessageRepository, notifications domain.NotificationService, hour int) *RecapService {
	if hour < 0 || hour > 23 {
		hour = 20
	}
	return &RecapService{
		landlordRepo:  landlordRepo,
		messageRepo:   messageRepo,
		notifications: notifications,
		hour:          hour,
		now:           time.Now,
	}
}

// Run blocks until ctx is cancelled, sending recaps once per day.
func (s *RecapService) Run(ctx context.Context) {
	for {
		next := s.nextRun(s.now())
		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.SendRecaps(ctx)
		}
	}
}

// SendRecaps composes and sends today's summary for every landlord.
func (s *RecapService) SendRecaps(ctx context.Context) {
	landlords, err := s.landlordRepo.ListAll(ctx)
	if err != nil {
		log.Printf("recap: landlord listing failed: %v", err)
		return
	}

	startOfDay := s.startOfDay(s.now())
	for i := range landlords {
		landlord := &landlords[i]
		if landlord.Phone == "" {
			continue
		}

		messages, err := s.messageRepo.ListSince(ctx, landlord.ID, startOfDay)
		if err != nil {
			log.Printf("recap: message listing failed for landlord %d: %v", landlord.ID, err)
			continue
		}
		if len(messages) == 0 {
			continue
		}

		if err := s.notifications.SendWhatsApp(landlord.Phone, ComposeRecap(landlord.Name, messages)); err != nil {
			log.Printf("recap: send failed for landlord %d: %v", landlord.ID, err)
		}
	}
}

// ComposeRecap renders the daily summary text for one landlord.
func ComposeRecap(landlordName string, messages []domain.MessageWithTenant) string {
	var urgent, maintenance, payment, inquiry int
	var flagged []string

	for _, m := range messages {
		if m.Direction != domain.DirectionIncoming {
			continue
		}
		switch m.Category {
		case domain.CategoryUrgent:
			urgent++
		case domain.CategoryMaintenance:
			maintenance++
		case domain.CategoryPayment:
			payment++
		default:
			inquiry++
		}
		if m.NeedsAttention {
			flagged = append(flagged, fmt.Sprintf("- %s (%s): %s", m.TenantName, m.PropertyAddress, m.Body))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Resumen del día para %s\n", landlordName)
	fmt.Fprintf(&b, "Urgentes: %d | Mantenimiento: %d | Pagos: %d | Consultas: %d\n", urgent, maintenance, payment, inquiry)
	if len(flagged) > 0 {
		b.WriteString("\nRequieren tu atención:\n")
		b.WriteString(strings.Join(flagged, "\n"))
	}
	return b.String()
}

// nextRun returns the next instant at the configured hour after now.
func (s *RecapService) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *RecapService) startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
