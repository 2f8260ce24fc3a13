// Package health provides the daily snapshot model and the recovery score
// calculation.
package health

import "fmt"

// Metric identifies one of the tracked daily measurements.
type Metric int

const (
	MetricSleep Metric = iota
	MetricRestingHR
	MetricHRV
	MetricActivityLoad
	MetricRecoveryScore
)

// InputMetrics lists the four raw input metrics in their canonical order.
var InputMetrics = []Metric{MetricSleep, MetricRestingHR, MetricHRV, MetricActivityLoad}

// AllMetrics lists every metric including the derived recovery score.
var AllMetrics = []Metric{MetricSleep, MetricRestingHR, MetricHRV, MetricActivityLoad, MetricRecoveryScore}

// String returns the metric's machine name.
func (m Metric) String() string {
	switch m {
	case MetricSleep:
		return "sleep"
	case MetricRestingHR:
		return "resting_hr"
	case MetricHRV:
		return "hrv"
	case MetricActivityLoad:
		return "activity_load"
	case MetricRecoveryScore:
		return "recovery_score"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// DisplayName returns the human-readable name used in reports and insights.
func (m Metric) DisplayName() string {
	switch m {
	case MetricSleep:
		return "sleep duration"
	case MetricRestingHR:
		return "resting heart rate"
	case MetricHRV:
		return "HRV"
	case MetricActivityLoad:
		return "activity load"
	case MetricRecoveryScore:
		return "recovery score"
	default:
		return m.String()
	}
}

// Unit returns the display unit for the metric.
func (m Metric) Unit() string {
	switch m {
	case MetricSleep:
		return "h"
	case MetricRestingHR:
		return "bpm"
	case MetricHRV:
		return "ms"
	default:
		return ""
	}
}

// LowerIsBetter reports whether a decrease in this metric is an improvement.
// Only resting heart rate has that polarity.
func (m Metric) LowerIsBetter() bool {
	return m == MetricRestingHR
}

// Of extracts the metric's value from a snapshot.
func (m Metric) Of(s Snapshot) float64 {
	switch m {
	case MetricSleep:
		return s.metrics.Sleep
	case MetricRestingHR:
		return s.metrics.RestingHR
	case MetricHRV:
		return s.metrics.HRV
	case MetricActivityLoad:
		return s.metrics.ActivityLoad
	case MetricRecoveryScore:
		return s.score
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
