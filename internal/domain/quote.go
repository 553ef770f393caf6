package domain

import (
	"errors"
	"time"
)

// Quote is an estimate the user pinned during the current session.
type Quote struct {
	ID        string
	Distance  int
	Repayment int
	Language  string
	Band      string
	CreatedAt time.Time
}

var ErrInvalidQuote = errors.New("invalid quote")

// Validate checks the invariants a stored quote must hold.
func (q *Quote) Validate() error {
	if q.ID == "" {
		return errors.Join(ErrInvalidQuote, errors.New("missing id"))
	}
	if q.Distance < 0 {
		return errors.Join(ErrInvalidQuote, errors.New("negative distance"))
	}
	if q.Repayment <= 0 {
		return errors.Join(ErrInvalidQuote, errors.New("repayment must be positive"))
	}
	return nil
}
