// Package estimator holds the interactive state behind the estimator screen.
//
// The Controller owns the current distance. Slider position and repayment
// are projections of it and are recomputed on every transition, so they
// can never drift out of sync with the distance.
package estimator

import (
	"fmt"
	"math"

	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/alexanderramin/rickshaw/internal/slider"
)

// DefaultQuantum is the increment/decrement step in kilometers.
const DefaultQuantum = 5

// Listener is notified with the distance and repayment after every
// distance-changing transition, including no-op steps at a boundary.
type Listener func(distance, repayment int)

// Options configures a Controller.
type Options struct {
	Tariff          pricing.Tariff
	MaxDistance     int
	LowRange        int
	Quantum         int
	InitialDistance int
}

// DefaultOptions returns the production configuration.
func DefaultOptions() Options {
	return Options{
		Tariff:      pricing.DefaultTariff(),
		MaxDistance: slider.DefaultMaxDistance,
		LowRange:    slider.DefaultLowRange,
		Quantum:     DefaultQuantum,
	}
}

// State is the controller's persistent record.
type State struct {
	Distance       int
	SliderPosition float64
	SliderActive   bool
}

// Controller is the estimator state machine. It is not safe for concurrent
// use; all transitions are expected on the UI event loop.
type Controller struct {
	tariff   pricing.Tariff
	mapping  slider.Mapping
	quantum  int
	state    State
	listener Listener
}

// New validates opts and mounts a controller at opts.InitialDistance,
// clamped to the valid range. The listener is not called during mounting.
func New(opts Options, listener Listener) (*Controller, error) {
	mapping, err := slider.NewMapping(opts.LowRange, opts.MaxDistance)
	if err != nil {
		return nil, fmt.Errorf("configuring slider: %w", err)
	}
	if opts.Quantum <= 0 {
		return nil, fmt.Errorf("configuring steps: quantum must be positive, got %d", opts.Quantum)
	}
	c := &Controller{
		tariff:   opts.Tariff,
		mapping:  mapping,
		quantum:  opts.Quantum,
		listener: listener,
	}
	c.Reset(opts.InitialDistance)
	return c, nil
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

func (c *Controller) Distance() int           { return c.state.Distance }
func (c *Controller) SliderPosition() float64 { return c.state.SliderPosition }
func (c *Controller) SliderActive() bool      { return c.state.SliderActive }
func (c *Controller) MaxDistance() int        { return c.mapping.MaxDistance() }
func (c *Controller) Quantum() int            { return c.quantum }
func (c *Controller) Tariff() pricing.Tariff  { return c.tariff }

// Repayment is derived from the current distance on every call.
func (c *Controller) Repayment() int {
	return c.tariff.ComputeRepayment(c.state.Distance)
}

// Band reports the repayment curve region of the current distance.
func (c *Controller) Band() pricing.Band {
	return c.tariff.BandFor(c.state.Distance)
}

// SetListener replaces the change listener. A nil listener disables
// notifications.
func (c *Controller) SetListener(l Listener) { c.listener = l }

// Reset remounts the controller at initial without notifying.
func (c *Controller) Reset(initial int) {
	d := c.clampDistance(initial)
	c.state = State{
		Distance:       d,
		SliderPosition: c.mapping.DistanceToPosition(float64(d)),
	}
}

// SetDistance stores value clamped to [0, MaxDistance].
func (c *Controller) SetDistance(value int) {
	d := c.clampDistance(value)
	c.state.Distance = d
	c.state.SliderPosition = c.mapping.DistanceToPosition(float64(d))
	c.notify()
}

// SetPosition converts a control position to the nearest integer distance.
// The stored position is re-derived from that distance, so the control
// snaps to an integer-distance point.
func (c *Controller) SetPosition(position float64) {
	if math.IsNaN(position) {
		position = c.state.SliderPosition
	}
	p := math.Min(math.Max(position, 0), 1)
	c.SetDistance(int(math.Round(c.mapping.PositionToDistance(p))))
}

// NudgePosition moves the control by delta positions from where it is now.
func (c *Controller) NudgePosition(delta float64) {
	c.SetPosition(c.mapping.Snap(c.state.SliderPosition + delta))
}

// Increment aligns an off-grid distance up to the next multiple of the
// quantum and then steps up by one quantum, saturating at MaxDistance.
func (c *Controller) Increment() {
	d := c.state.Distance
	if rem := d % c.quantum; rem != 0 {
		d += c.quantum - rem
	}
	c.SetDistance(d + c.quantum)
}

// Decrement aligns an off-grid distance down to the previous multiple of
// the quantum and then steps down by one quantum, saturating at zero.
func (c *Controller) Decrement() {
	d := c.state.Distance
	d -= d % c.quantum
	c.SetDistance(d - c.quantum)
}

// DragStart and DragEnd only affect presentation.
func (c *Controller) DragStart() { c.state.SliderActive = true }
func (c *Controller) DragEnd()   { c.state.SliderActive = false }

func (c *Controller) clampDistance(v int) int {
	return min(max(v, 0), c.mapping.MaxDistance())
}

func (c *Controller) notify() {
	if c.listener != nil {
		c.listener(c.state.Distance, c.Repayment())
	}
}
