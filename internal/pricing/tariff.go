package pricing

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultFixedFee     = 8000
	DefaultRatePerKm    = 10
	DefaultMinRepayment = 10000
	DefaultMaxRepayment = 40000
)

var ErrInvalidTariff = errors.New("invalid tariff")

// Tariff holds the constants of the distance-based repayment formula.
type Tariff struct {
	FixedFee     int `yaml:"fixed_fee"`
	RatePerKm    int `yaml:"rate_per_km"`
	MinRepayment int `yaml:"min_repayment"`
	MaxRepayment int `yaml:"max_repayment"`
}

func DefaultTariff() Tariff {
	return Tariff{
		FixedFee:     DefaultFixedFee,
		RatePerKm:    DefaultRatePerKm,
		MinRepayment: DefaultMinRepayment,
		MaxRepayment: DefaultMaxRepayment,
	}
}

// Validate reports whether the tariff produces a well-formed repayment curve.
func (t Tariff) Validate() error {
	if t.RatePerKm <= 0 {
		return fmt.Errorf("%w: rate per km must be positive, got %d", ErrInvalidTariff, t.RatePerKm)
	}
	if t.MinRepayment < 0 {
		return fmt.Errorf("%w: minimum repayment must not be negative, got %d", ErrInvalidTariff, t.MinRepayment)
	}
	if t.MinRepayment > t.MaxRepayment {
		return fmt.Errorf("%w: minimum repayment %d exceeds maximum %d", ErrInvalidTariff, t.MinRepayment, t.MaxRepayment)
	}
	return nil
}

// ComputeRepayment maps a monthly distance to a monthly repayment.
// Any integer input is accepted; the result is always inside
// [MinRepayment, MaxRepayment].
func (t Tariff) ComputeRepayment(distance int) int {
	base := float64(t.FixedFee) + float64(t.RatePerKm)*float64(distance)
	withMinimum := math.Max(base, float64(t.MinRepayment))
	capped := math.Min(withMinimum, float64(t.MaxRepayment))
	return int(math.Round(capped))
}

// ComputeRepayment uses the default tariff.
func ComputeRepayment(distance int) int {
	return DefaultTariff().ComputeRepayment(distance)
}

// FloorBreakpoint returns the smallest distance at which the linear
// formula reaches the minimum repayment.
func (t Tariff) FloorBreakpoint() int {
	return t.breakpoint(t.MinRepayment)
}

// CeilingBreakpoint returns the smallest distance at which the
// repayment is capped.
func (t Tariff) CeilingBreakpoint() int {
	return t.breakpoint(t.MaxRepayment)
}

func (t Tariff) breakpoint(amount int) int {
	if t.RatePerKm <= 0 {
		return 0
	}
	d := math.Ceil(float64(amount-t.FixedFee) / float64(t.RatePerKm))
	if d < 0 {
		return 0
	}
	return int(d)
}
