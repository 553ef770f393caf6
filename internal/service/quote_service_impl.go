package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rickshaw/internal/db"
	"github.com/alexanderramin/rickshaw/internal/domain"
	"github.com/alexanderramin/rickshaw/internal/i18n"
	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/alexanderramin/rickshaw/internal/repository"
	"github.com/google/uuid"
)

// DefaultQuoteLimit caps how many pinned quotes a session keeps.
const DefaultQuoteLimit = 20

type quoteService struct {
	quotes   repository.QuoteRepo
	uow      db.UnitOfWork
	tariff   pricing.Tariff
	limit    int
	observer UseCaseObserver
	now      func() time.Time
}

func NewQuoteService(quotes repository.QuoteRepo, uow db.UnitOfWork, tariff pricing.Tariff, observers ...UseCaseObserver) QuoteService {
	return &quoteService{
		quotes:   quotes,
		uow:      uow,
		tariff:   tariff,
		limit:    DefaultQuoteLimit,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *quoteService) Pin(ctx context.Context, req PinRequest) (q *domain.Quote, err error) {
	startedAt := time.Now()
	defer func() {
		fields := map[string]any{"distance": req.Distance, "language": req.Language}
		if q != nil {
			fields["repayment"] = q.Repayment
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "quote.pin",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	quote := &domain.Quote{
		ID:        uuid.New().String(),
		Distance:  req.Distance,
		Repayment: s.tariff.ComputeRepayment(req.Distance),
		Language:  string(i18n.ParseLanguage(req.Language)),
		Band:      string(s.tariff.BandFor(req.Distance)),
		CreatedAt: s.now(),
	}
	if err := quote.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txQuotes := repository.NewSQLiteQuoteRepo(tx)
		if err := txQuotes.Create(ctx, quote); err != nil {
			return err
		}
		if _, err := txQuotes.DeleteOldest(ctx, s.limit); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pinning quote: %w", err)
	}
	return quote, nil
}

func (s *quoteService) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	return s.quotes.GetByID(ctx, id)
}

func (s *quoteService) List(ctx context.Context) ([]*domain.Quote, error) {
	return s.quotes.List(ctx)
}

func (s *quoteService) Delete(ctx context.Context, id string) error {
	return s.quotes.Delete(ctx, id)
}
