package pricing

// Band classifies a distance by the region of the repayment curve it falls in.
type Band string

const (
	BandFloor   Band = "floor"
	BandLinear  Band = "linear"
	BandCeiling Band = "ceiling"
)

// BandFor returns the curve region for distance. Distances below the floor
// breakpoint pay the minimum, distances at or past the ceiling breakpoint
// pay the maximum.
func (t Tariff) BandFor(distance int) Band {
	switch {
	case distance < t.FloorBreakpoint():
		return BandFloor
	case distance < t.CeilingBreakpoint():
		return BandLinear
	default:
		return BandCeiling
	}
}
