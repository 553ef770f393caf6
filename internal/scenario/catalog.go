package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/rickshaw/internal/pricing"
)

var ErrInvalidCatalog = errors.New("invalid scenario catalog")

// Entry is a curated illustrative repayment plan. DurationMonths is
// hand-picked and is not derived from the pricing formula.
type Entry struct {
	Payment        int `yaml:"payment"`
	DurationMonths int `yaml:"duration_months"`
}

// Catalog is an immutable list of entries ordered by ascending payment.
type Catalog struct {
	entries []Entry
}

var defaultEntries = []Entry{
	{Payment: 10000, DurationMonths: 48},
	{Payment: 17500, DurationMonths: 28},
	{Payment: 25000, DurationMonths: 20},
	{Payment: 32500, DurationMonths: 15},
	{Payment: 40000, DurationMonths: 12},
}

// DefaultCatalog spans the default tariff from floor to ceiling.
func DefaultCatalog() Catalog {
	c, _ := NewCatalog(defaultEntries)
	return c
}

// NewCatalog copies entries after checking they are positive and strictly
// ascending by payment.
func NewCatalog(entries []Entry) (Catalog, error) {
	if len(entries) == 0 {
		return Catalog{}, fmt.Errorf("%w: no entries", ErrInvalidCatalog)
	}
	for i, e := range entries {
		if e.Payment <= 0 || e.DurationMonths <= 0 {
			return Catalog{}, fmt.Errorf("%w: entry %d must have positive payment and duration", ErrInvalidCatalog, i)
		}
		if i > 0 && e.Payment <= entries[i-1].Payment {
			return Catalog{}, fmt.Errorf("%w: entry %d payment %d is not above %d", ErrInvalidCatalog, i, e.Payment, entries[i-1].Payment)
		}
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return Catalog{entries: out}, nil
}

func (c Catalog) Len() int { return len(c.entries) }

func (c Catalog) At(i int) Entry { return c.entries[i] }

// Entries returns a copy of the catalog contents.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// FindClosest returns the index of the entry whose payment is nearest to
// target. Ties keep the earliest entry. Returns -1 for an empty catalog.
func (c Catalog) FindClosest(target int) int {
	if len(c.entries) == 0 {
		return -1
	}
	// Entries are ascending, so clamping keeps every difference in range.
	target = min(max(target, c.entries[0].Payment), c.entries[len(c.entries)-1].Payment)
	best := -1
	bestDiff := math.MaxInt
	for i, e := range c.entries {
		diff := absInt(e.Payment - target)
		if diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best
}

// ImpliedDistance inverts the linear region of the tariff for display.
// Clamping is deliberately ignored, so the result can differ from the
// distance the slider would need to produce this payment.
func ImpliedDistance(e Entry, t pricing.Tariff) int {
	if t.RatePerKm <= 0 {
		return 0
	}
	d := math.Round(float64(e.Payment-t.FixedFee) / float64(t.RatePerKm))
	return int(math.Max(d, 0))
}

// Divergence is how far the tariff's repayment at the implied distance
// lands from the entry's payment. Zero means the illustration agrees with
// the live calculator.
func Divergence(e Entry, t pricing.Tariff) int {
	return t.ComputeRepayment(ImpliedDistance(e, t)) - e.Payment
}

// Fraction positions the payment on a [0,1] track spanning the tariff's
// repayment range.
func Fraction(e Entry, t pricing.Tariff) float64 {
	span := t.MaxRepayment - t.MinRepayment
	if span <= 0 {
		return 1
	}
	f := float64(e.Payment-t.MinRepayment) / float64(span)
	return math.Min(math.Max(f, 0), 1)
}

// Tone buckets a payment for coloring its slide.
type Tone string

const (
	ToneFloor   Tone = "floor"
	ToneMid     Tone = "mid"
	ToneCeiling Tone = "ceiling"
)

func ToneFor(e Entry, t pricing.Tariff) Tone {
	switch {
	case e.Payment <= t.MinRepayment:
		return ToneFloor
	case e.Payment < t.MaxRepayment:
		return ToneMid
	default:
		return ToneCeiling
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
