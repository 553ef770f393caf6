package testutil

import (
	"time"

	"github.com/alexanderramin/rickshaw/internal/domain"
	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/google/uuid"
)

type QuoteOption func(*domain.Quote)

func WithLanguage(lang string) QuoteOption {
	return func(q *domain.Quote) {
		q.Language = lang
	}
}

func WithCreatedAt(t time.Time) QuoteOption {
	return func(q *domain.Quote) {
		q.CreatedAt = t
	}
}

// NewTestQuote builds an English quote priced with the default tariff.
func NewTestQuote(distance int, opts ...QuoteOption) *domain.Quote {
	tariff := pricing.DefaultTariff()
	q := &domain.Quote{
		ID:        uuid.New().String(),
		Distance:  distance,
		Repayment: tariff.ComputeRepayment(distance),
		Language:  "en",
		Band:      string(tariff.BandFor(distance)),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}
