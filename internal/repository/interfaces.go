package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/rickshaw/internal/domain"
)

var ErrNotFound = errors.New("not found")

type QuoteRepo interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	// List returns quotes newest first.
	List(ctx context.Context) ([]*domain.Quote, error)
	Count(ctx context.Context) (int, error)
	// DeleteOldest removes all but the newest keep quotes.
	DeleteOldest(ctx context.Context, keep int) (int, error)
	Delete(ctx context.Context, id string) error
}
