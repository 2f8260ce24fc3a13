package health

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidMetric is returned when a metric value is negative, NaN or
// infinite.
var ErrInvalidMetric = errors.New("invalid metric value")

// DateLayout is the calendar-day layout used for display and JSON.
const DateLayout = "2006-01-02"

// Metrics holds the four raw daily measurements.
type Metrics struct {
	Sleep        float64 `json:"sleep_hours"`
	RestingHR    float64 `json:"resting_hr"`
	HRV          float64 `json:"hrv"`
	ActivityLoad float64 `json:"activity_load"`
}

// Validate checks that every measurement is a finite, non-negative number.
func (m Metrics) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"sleep", m.Sleep},
		{"resting_hr", m.RestingHR},
		{"hrv", m.HRV},
		{"activity_load", m.ActivityLoad},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%s = %v: %w", f.name, f.value, ErrInvalidMetric)
		}
	}
	return nil
}

// Snapshot is one calendar day of measurements together with its derived
// recovery score. It is immutable; the score is computed once in NewSnapshot.
type Snapshot struct {
	id      uuid.UUID
	date    time.Time
	metrics Metrics
	score   float64
}

// NewSnapshot validates the metrics, normalizes date to midnight in its own
// location and computes the recovery score.
func NewSnapshot(date time.Time, m Metrics) (Snapshot, error) {
	if err := m.Validate(); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		id:      uuid.New(),
		date:    Day(date),
		metrics: m,
		score:   ComputeRecoveryScore(m.Sleep, m.RestingHR, m.HRV, m.ActivityLoad),
	}, nil
}

// MustSnapshot is like NewSnapshot but panics on invalid input. Intended for
// tests and fixed fixtures.
func MustSnapshot(date time.Time, m Metrics) Snapshot {
	s, err := NewSnapshot(date, m)
	if err != nil {
		panic(err)
	}
	return s
}

// Day truncates t to midnight in t's location.
func Day(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

// ID returns the snapshot's record identifier.
func (s Snapshot) ID() uuid.UUID { return s.id }

// Date returns the calendar day of the snapshot.
func (s Snapshot) Date() time.Time { return s.date }

// Metrics returns the raw measurements.
func (s Snapshot) Metrics() Metrics { return s.metrics }

// RecoveryScore returns the derived 0-100 score.
func (s Snapshot) RecoveryScore() float64 { return s.score }

// Status returns the recovery bucket for the score.
func (s Snapshot) Status() Status { return StatusFor(s.score) }

// Color returns the hex color tag for the score's bucket.
func (s Snapshot) Color() string { return s.Status().Color() }

// IsZero reports whether s is the zero Snapshot.
func (s Snapshot) IsZero() bool { return s.date.IsZero() && s.id == uuid.Nil }

// Equal reports whether two snapshots describe the same day and values.
// The record ID is ignored.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.date.Equal(o.date) && s.metrics == o.metrics && s.score == o.score
}

type snapshotJSON struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Metrics       Metrics `json:"metrics"`
	RecoveryScore float64 `json:"recovery_score"`
	Status        Status  `json:"status"`
	Color         string  `json:"color"`
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotJSON{
		ID:            s.id.String(),
		Date:          s.date.Format(DateLayout),
		Metrics:       s.metrics,
		RecoveryScore: s.score,
		Status:        s.Status(),
		Color:         s.Color(),
	})
}
