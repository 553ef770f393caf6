package estimator

import (
	"testing"

	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/alexanderramin/rickshaw/internal/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notification struct {
	distance  int
	repayment int
}

// newTestController mounts a default controller and records notifications.
func newTestController(t *testing.T, initial int) (*Controller, *[]notification) {
	t.Helper()
	var seen []notification
	opts := DefaultOptions()
	opts.InitialDistance = initial
	c, err := New(opts, func(d, r int) {
		seen = append(seen, notification{distance: d, repayment: r})
	})
	require.NoError(t, err)
	return c, &seen
}

func TestNew_ClampsInitialDistanceWithoutNotifying(t *testing.T) {
	c, seen := newTestController(t, 99999)
	assert.Equal(t, slider.DefaultMaxDistance, c.Distance())
	assert.Equal(t, 1.0, c.SliderPosition())
	assert.Empty(t, *seen)

	c, _ = newTestController(t, -10)
	assert.Equal(t, 0, c.Distance())
	assert.Equal(t, pricing.DefaultMinRepayment, c.Repayment())
}

func TestNew_RejectsMisconfiguredRange(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDistance = opts.LowRange
	_, err := New(opts, nil)
	assert.ErrorIs(t, err, slider.ErrInvalidRange)

	opts = DefaultOptions()
	opts.Quantum = 0
	_, err = New(opts, nil)
	assert.Error(t, err)
}

func TestSetDistance_UpdatesDerivedStateAndNotifies(t *testing.T) {
	c, seen := newTestController(t, 0)

	c.SetDistance(1000)

	assert.Equal(t, 1000, c.Distance())
	assert.Equal(t, 0.5, c.SliderPosition())
	assert.Equal(t, 18000, c.Repayment())
	require.Len(t, *seen, 1)
	assert.Equal(t, notification{1000, 18000}, (*seen)[0])
}

func TestSetDistance_Clamps(t *testing.T) {
	c, seen := newTestController(t, 500)

	c.SetDistance(-1)
	assert.Equal(t, 0, c.Distance())

	c.SetDistance(5000)
	assert.Equal(t, c.MaxDistance(), c.Distance())
	assert.Equal(t, 40000, c.Repayment())
	assert.Len(t, *seen, 2)
}

func TestSetPosition_SnapsToIntegerDistance(t *testing.T) {
	c, seen := newTestController(t, 0)

	c.SetPosition(0.2503)

	// 0.2503 / 0.5 * 1000 = 500.6, rounds to 501.
	assert.Equal(t, 501, c.Distance())
	assert.InDelta(t, 0.2505, c.SliderPosition(), 1e-12)
	require.Len(t, *seen, 1)
	assert.Equal(t, 501, (*seen)[0].distance)
}

func TestSetPosition_ClampsAndKeepsConsistency(t *testing.T) {
	c, _ := newTestController(t, 0)

	c.SetPosition(1.5)
	assert.Equal(t, c.MaxDistance(), c.Distance())
	assert.Equal(t, 1.0, c.SliderPosition())

	c.SetPosition(-0.5)
	assert.Equal(t, 0, c.Distance())
	assert.Equal(t, 0.0, c.SliderPosition())
}

func TestSetPosition_UpperSegment(t *testing.T) {
	c, _ := newTestController(t, 0)
	c.SetPosition(0.75)
	assert.Equal(t, 2400, c.Distance())
}

func TestNudgePosition(t *testing.T) {
	c, _ := newTestController(t, 1000)
	c.NudgePosition(0.01)
	assert.Equal(t, 1056, c.Distance())
	c.NudgePosition(-0.01)
	assert.Equal(t, 1000, c.Distance())
}

func TestIncrementDecrement_AlignedSteps(t *testing.T) {
	c, _ := newTestController(t, 100)

	c.Increment()
	assert.Equal(t, 105, c.Distance())
	c.Decrement()
	assert.Equal(t, 100, c.Distance())
}

func TestIncrementDecrement_RoundTripFromAlignedStarts(t *testing.T) {
	c, _ := newTestController(t, 0)
	for d := 0; d < c.MaxDistance(); d += c.Quantum() {
		if d == 0 {
			continue
		}
		c.SetDistance(d)
		c.Increment()
		c.Decrement()
		require.Equal(t, d, c.Distance(), "start %d", d)
	}
}

func TestIncrement_SnapsUnalignedDistanceFirst(t *testing.T) {
	c, _ := newTestController(t, 7)

	c.Increment()
	assert.Equal(t, 15, c.Distance())
	assert.Zero(t, c.Distance()%c.Quantum())

	c.Increment()
	assert.Equal(t, 20, c.Distance())
}

func TestDecrement_SnapsUnalignedDistanceFirst(t *testing.T) {
	c, _ := newTestController(t, 13)

	c.Decrement()
	assert.Equal(t, 5, c.Distance())

	c.Decrement()
	assert.Equal(t, 0, c.Distance())
}

func TestIncrement_AtMaximumIsIdempotentAndNotifies(t *testing.T) {
	c, seen := newTestController(t, slider.DefaultMaxDistance)

	c.Increment()
	c.Increment()

	assert.Equal(t, slider.DefaultMaxDistance, c.Distance())
	require.Len(t, *seen, 2)
	assert.Equal(t, notification{slider.DefaultMaxDistance, 40000}, (*seen)[1])
}

func TestDecrement_AtZeroIsIdempotentAndNotifies(t *testing.T) {
	c, seen := newTestController(t, 0)

	c.Decrement()

	assert.Equal(t, 0, c.Distance())
	require.Len(t, *seen, 1)
	assert.Equal(t, notification{0, 10000}, (*seen)[0])
}

func TestIncrement_SaturatesBelowMaximum(t *testing.T) {
	c, _ := newTestController(t, slider.DefaultMaxDistance-2)
	c.Increment()
	assert.Equal(t, slider.DefaultMaxDistance, c.Distance())
}

func TestDrag_TogglesPresentationOnly(t *testing.T) {
	c, seen := newTestController(t, 400)

	c.DragStart()
	assert.True(t, c.SliderActive())
	assert.Equal(t, 400, c.Distance())

	c.DragEnd()
	assert.False(t, c.SliderActive())
	assert.Empty(t, *seen)
}

func TestReset_RemountsState(t *testing.T) {
	c, seen := newTestController(t, 400)
	c.DragStart()

	c.Reset(1000)

	assert.Equal(t, State{Distance: 1000, SliderPosition: 0.5}, c.State())
	assert.Empty(t, *seen)
}

func TestController_LargerMaximum(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDistance = 4000
	c, err := New(opts, nil)
	require.NoError(t, err)

	c.SetDistance(4000)
	assert.Equal(t, 4000, c.Distance())
	assert.Equal(t, pricing.BandCeiling, c.Band())
	c.SetListener(nil)
	c.Increment()
	assert.Equal(t, 4000, c.Distance())
}
