// Package slider maps distances onto a normalized control position using a
// two-segment piecewise-linear curve. The first half of the control covers
// [0, lowRange] so low distances get finer resolution.
package slider

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Breakpoint is the control position that corresponds to lowRange.
	Breakpoint = 0.5

	// Step is the smallest position increment the control produces.
	Step = 0.001

	DefaultLowRange    = 1000
	DefaultMaxDistance = 3800
)

var ErrInvalidRange = errors.New("invalid slider range")

// Mapping converts between distance and control position.
type Mapping struct {
	lowRange    float64
	maxDistance float64
}

// NewMapping validates the breakpoint configuration. maxDistance must be
// strictly greater than lowRange, otherwise the upper segment has zero width.
func NewMapping(lowRange, maxDistance int) (Mapping, error) {
	if lowRange <= 0 {
		return Mapping{}, fmt.Errorf("%w: low range must be positive, got %d", ErrInvalidRange, lowRange)
	}
	if maxDistance <= lowRange {
		return Mapping{}, fmt.Errorf("%w: max distance %d must exceed low range %d", ErrInvalidRange, maxDistance, lowRange)
	}
	return Mapping{lowRange: float64(lowRange), maxDistance: float64(maxDistance)}, nil
}

func (m Mapping) LowRange() int    { return int(m.lowRange) }
func (m Mapping) MaxDistance() int { return int(m.maxDistance) }

// DistanceToPosition returns the control position for distance d.
func (m Mapping) DistanceToPosition(d float64) float64 {
	d = clamp(d, 0, m.maxDistance)
	if d <= m.lowRange {
		return d / m.lowRange * Breakpoint
	}
	return Breakpoint + (d-m.lowRange)/(m.maxDistance-m.lowRange)*(1-Breakpoint)
}

// PositionToDistance is the inverse of DistanceToPosition.
func (m Mapping) PositionToDistance(p float64) float64 {
	p = clamp(p, 0, 1)
	if p <= Breakpoint {
		return p / Breakpoint * m.lowRange
	}
	return m.lowRange + (p-Breakpoint)/(1-Breakpoint)*(m.maxDistance-m.lowRange)
}

// Snap quantizes p to the control granularity.
func (m Mapping) Snap(p float64) float64 {
	return clamp(math.Round(p/Step)*Step, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
