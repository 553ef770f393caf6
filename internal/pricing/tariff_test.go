package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRepayment_KnownPoints(t *testing.T) {
	tests := []struct {
		name     string
		distance int
		want     int
	}{
		{"zero hits floor", 0, 10000},
		{"floor breakpoint", 200, 10000},
		{"linear region", 1000, 18000},
		{"just past floor", 201, 10010},
		{"ceiling breakpoint", 3200, 40000},
		{"slider max clamps", 3800, 40000},
		{"above ceiling clamps", 4000, 40000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeRepayment(tt.distance))
		})
	}
}

func TestComputeRepayment_OutOfRangeInputIsClamped(t *testing.T) {
	assert.Equal(t, DefaultMinRepayment, ComputeRepayment(-500))
	assert.Equal(t, DefaultMaxRepayment, ComputeRepayment(1_000_000))
}

func TestComputeRepayment_BoundedAndMonotonic(t *testing.T) {
	tariff := DefaultTariff()
	prev := tariff.ComputeRepayment(0)
	for d := 0; d <= 4000; d++ {
		got := tariff.ComputeRepayment(d)
		require.GreaterOrEqual(t, got, tariff.MinRepayment, "distance %d", d)
		require.LessOrEqual(t, got, tariff.MaxRepayment, "distance %d", d)
		require.GreaterOrEqual(t, got, prev, "repayment decreased at distance %d", d)
		prev = got
	}
}

func TestTariff_Breakpoints(t *testing.T) {
	tariff := DefaultTariff()
	assert.Equal(t, 200, tariff.FloorBreakpoint())
	assert.Equal(t, 3200, tariff.CeilingBreakpoint())

	generous := Tariff{FixedFee: 12000, RatePerKm: 10, MinRepayment: 10000, MaxRepayment: 40000}
	assert.Equal(t, 0, generous.FloorBreakpoint())
}

func TestTariff_BandFor(t *testing.T) {
	tariff := DefaultTariff()
	assert.Equal(t, BandFloor, tariff.BandFor(0))
	assert.Equal(t, BandFloor, tariff.BandFor(199))
	assert.Equal(t, BandLinear, tariff.BandFor(200))
	assert.Equal(t, BandLinear, tariff.BandFor(3199))
	assert.Equal(t, BandCeiling, tariff.BandFor(3200))
	assert.Equal(t, BandCeiling, tariff.BandFor(3800))
}

func TestTariff_Validate(t *testing.T) {
	require.NoError(t, DefaultTariff().Validate())

	zeroRate := DefaultTariff()
	zeroRate.RatePerKm = 0
	assert.ErrorIs(t, zeroRate.Validate(), ErrInvalidTariff)

	inverted := DefaultTariff()
	inverted.MinRepayment = 50000
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidTariff)
}
