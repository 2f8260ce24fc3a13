// Package acquire turns raw health samples into daily snapshots. It fans out
// one fetch per (day, kind) pair over a bounded worker pool and joins them
// before the snapshots are handed to aggregation.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrUnknownKind is returned by ParseKind for an unrecognised sample kind.
var ErrUnknownKind = errors.New("unknown sample kind")

// ErrInvalidSample is returned by Sample.Validate.
var ErrInvalidSample = errors.New("invalid sample")

// Kind identifies a raw sample type.
type Kind string

const (
	KindSleep        Kind = "sleep"         // hours, or an interval
	KindRestingHR    Kind = "resting_hr"    // bpm
	KindHRV          Kind = "hrv"           // ms (SDNN)
	KindActiveEnergy Kind = "active_energy" // kcal
	KindSteps        Kind = "steps"         // count
)

// Kinds lists every sample kind in collection order.
var Kinds = []Kind{KindSleep, KindRestingHR, KindHRV, KindActiveEnergy, KindSteps}

// ParseKind maps a user-supplied name to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Sample is one raw measurement. Point readings have Start == End.
type Sample struct {
	Kind  Kind
	Start time.Time
	End   time.Time
	Value float64
}

// Validate rejects negative or non-finite values and intervals that end
// before they start.
func (s Sample) Validate() error {
	if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) || s.Value < 0 {
		return fmt.Errorf("%s value %v: %w", s.Kind, s.Value, ErrInvalidSample)
	}
	if s.End.Before(s.Start) {
		return fmt.Errorf("%s ends before it starts: %w", s.Kind, ErrInvalidSample)
	}
	return nil
}

// Hours returns the sleep contributed by s: the interval length when it has
// one, otherwise its value in hours.
func (s Sample) Hours() float64 {
	if s.End.After(s.Start) {
		return s.End.Sub(s.Start).Hours()
	}
	return s.Value
}

// Source supplies raw samples whose start lies in [from, to).
type Source interface {
	Samples(ctx context.Context, kind Kind, from, to time.Time) ([]Sample, error)
}
