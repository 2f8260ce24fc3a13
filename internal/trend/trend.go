// Package trend classifies the direction of change between two values.
package trend

import (
	"fmt"
	"math"

	"github.com/blackwell-systems/zenscore/internal/health"
)

// Threshold is the minimum relative change (5%) that counts as movement.
const Threshold = 0.05

// denominatorFloor guards percent-change calculations against a zero or
// near-zero previous value.
const denominatorFloor = 0.01

// Tag is the direction of a metric between two observations.
//
// When the comparison is made with lowerIsBetter set, Increasing means
// "improving" and Decreasing means "declining" rather than the raw
// direction of the value.
type Tag int

const (
	Stable Tag = iota
	Increasing
	Decreasing
)

// String returns the lowercase tag name.
func (t Tag) String() string {
	switch t {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	case Stable:
		return "stable"
	default:
		return fmt.Sprintf("tag(%d)", int(t))
	}
}

// Symbol returns an arrow for the tag.
func (t Tag) Symbol() string {
	switch t {
	case Increasing:
		return "↑"
	case Decreasing:
		return "↓"
	default:
		return "→"
	}
}

// Color returns the hex color (without '#') associated with the tag.
func (t Tag) Color() string {
	switch t {
	case Increasing:
		return "22c55e"
	case Decreasing:
		return "ef4444"
	default:
		return "eab308"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(b []byte) error {
	switch string(b) {
	case "increasing":
		*t = Increasing
	case "decreasing":
		*t = Decreasing
	case "stable":
		*t = Stable
	default:
		return fmt.Errorf("unknown trend tag %q", string(b))
	}
	return nil
}

// Classify compares current against previous. Changes smaller than 5% of
// previous are Stable. Otherwise the tag follows the raw direction, or the
// inverted direction when lowerIsBetter is set.
func Classify(previous, current float64, lowerIsBetter bool) Tag {
	change := math.Abs(current-previous) / math.Max(previous, denominatorFloor)
	if change < Threshold {
		return Stable
	}
	if lowerIsBetter {
		if current < previous {
			return Increasing
		}
		return Decreasing
	}
	if current > previous {
		return Increasing
	}
	return Decreasing
}

// ClassifyMetric classifies using the metric's own polarity.
func ClassifyMetric(m health.Metric, previous, current float64) Tag {
	return Classify(previous, current, m.LowerIsBetter())
}

// PercentChange returns the signed change from previous to current as a
// percentage of previous. A zero previous value is floored at 0.01, so the
// result can be very large; that is expected.
func PercentChange(previous, current float64) float64 {
	return (current - previous) / math.Max(previous, denominatorFloor) * 100
}
