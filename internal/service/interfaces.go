package service

import (
	"context"

	"github.com/alexanderramin/rickshaw/internal/domain"
)

// QuoteService records estimates pinned during the current session.
type QuoteService interface {
	Pin(ctx context.Context, req PinRequest) (*domain.Quote, error)
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	List(ctx context.Context) ([]*domain.Quote, error)
	Delete(ctx context.Context, id string) error
}

// PinRequest carries only the distance; the repayment is always priced by
// the service so a stored quote cannot disagree with the tariff.
type PinRequest struct {
	Distance int
	Language string
}
