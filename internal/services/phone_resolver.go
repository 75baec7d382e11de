package services

import (
	"context"
	"errors"
	"strings"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// PhoneResolverImpl implements domain.PhoneResolver. Inbound numbers
// arrive in inconsistent formats and the directory does not store a
// canonical form, so the resolver tries an ordered list of candidate
// representations and stops at the first match.
type PhoneResolverImpl struct {
	tenantRepo  domain.TenantRepository
	countryCode string
}

// NewPhoneResolver creates a new phone resolver. countryCode is the
// fixed prefix tried when adding or removing a country code, e.g. "+52".
func NewPhoneResolver(tenantRepo domain.TenantRepository, countryCode string) *PhoneResolverImpl {
	return &PhoneResolverImpl{
		tenantRepo:  tenantRepo,
		countryCode: countryCode,
	}
}

// Candidates returns the ordered, deduplicated list of phone
// representations tried against the directory for a raw sender
// identity.
func (r *PhoneResolverImpl) Candidates(rawFrom string) []string {
	phone := strings.TrimPrefix(rawFrom, "whatsapp:")
	digits := keepDigits(phone)

	raw := []string{
		phone,
		strings.TrimPrefix(phone, r.countryCode),
		r.countryCode + strings.TrimPrefix(strings.TrimPrefix(phone, r.countryCode), "+"),
		digits,
		"+" + digits,
	}

	seen := make(map[string]bool, len(raw))
	candidates := make([]string, 0, len(raw))
	for _, c := range raw {
		if c == "" || c == "+" || seen[c] {
			continue
		}
		seen[c] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// Resolve implements domain.PhoneResolver. Each candidate is queried
// independently; the first exact match wins.
func (r *PhoneResolverImpl) Resolve(ctx context.Context, rawFrom string) (*domain.Tenant, error) {
	for _, candidate := range r.Candidates(rawFrom) {
		tenant, err := r.tenantRepo.FindByPhone(ctx, candidate)
		if err == nil {
			return tenant, nil
		}
		if !errors.Is(err, domain.ErrTenantNotFound) {
			return nil, err
		}
	}
	return nil, domain.ErrTenantNotFound
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var _ domain.PhoneResolver = (*PhoneResolverImpl)(nil)
