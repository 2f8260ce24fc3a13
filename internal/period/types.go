// Package period aggregates daily snapshots into weekly, monthly and
// two-month summaries with averages, extrema, sub-periods and trend tags.
package period

import (
	"time"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/trend"
)

// Window lengths in days.
const (
	WeekDays     = 7
	MonthDays    = 30
	TwoMonthDays = 60
)

// Kind names the window a summary covers.
type Kind string

const (
	KindWeek     Kind = "week"
	KindMonth    Kind = "month"
	KindTwoMonth Kind = "two_month"
	KindCustom   Kind = "custom"
)

// KindFor returns the Kind matching a window length.
func KindFor(windowDays int) Kind {
	switch windowDays {
	case WeekDays:
		return KindWeek
	case MonthDays:
		return KindMonth
	case TwoMonthDays:
		return KindTwoMonth
	default:
		return KindCustom
	}
}

// Days returns the window length for a named kind, or 0 for KindCustom.
func (k Kind) Days() int {
	switch k {
	case KindWeek:
		return WeekDays
	case KindMonth:
		return MonthDays
	case KindTwoMonth:
		return TwoMonthDays
	default:
		return 0
	}
}

// Averages holds the per-metric means over a window.
type Averages struct {
	Sleep         float64 `json:"sleep"`
	RestingHR     float64 `json:"resting_hr"`
	HRV           float64 `json:"hrv"`
	ActivityLoad  float64 `json:"activity_load"`
	RecoveryScore float64 `json:"recovery_score"`
}

// Of returns the average for a metric.
func (a Averages) Of(m health.Metric) float64 {
	switch m {
	case health.MetricSleep:
		return a.Sleep
	case health.MetricRestingHR:
		return a.RestingHR
	case health.MetricHRV:
		return a.HRV
	case health.MetricActivityLoad:
		return a.ActivityLoad
	case health.MetricRecoveryScore:
		return a.RecoveryScore
	default:
		return 0
	}
}

// Trends holds the per-metric trend tags. RecoveryScore is the overall trend.
type Trends struct {
	Sleep         trend.Tag `json:"sleep"`
	RestingHR     trend.Tag `json:"resting_hr"`
	HRV           trend.Tag `json:"hrv"`
	ActivityLoad  trend.Tag `json:"activity_load"`
	RecoveryScore trend.Tag `json:"recovery_score"`
}

// Of returns the trend tag for a metric.
func (t Trends) Of(m health.Metric) trend.Tag {
	switch m {
	case health.MetricSleep:
		return t.Sleep
	case health.MetricRestingHR:
		return t.RestingHR
	case health.MetricHRV:
		return t.HRV
	case health.MetricActivityLoad:
		return t.ActivityLoad
	case health.MetricRecoveryScore:
		return t.RecoveryScore
	default:
		return trend.Stable
	}
}

// Basis records what the trend tags of a summary were compared against.
type Basis string

const (
	// BasisPrevious means the tags compare against the preceding period.
	BasisPrevious Basis = "previous"
	// BasisSplit means the tags compare the first and second half of the window.
	BasisSplit Basis = "split"
	// BasisNone means there was nothing to compare; all tags are Stable.
	BasisNone Basis = "none"
)

// Extrema holds the best and worst days of a non-empty window.
type Extrema struct {
	BestRecoveryDay  health.Snapshot `json:"best_recovery_day"`
	WorstRecoveryDay health.Snapshot `json:"worst_recovery_day"`
	LongestSleep     float64         `json:"longest_sleep"`
	ShortestSleep    float64         `json:"shortest_sleep"`
}

// Summary is the aggregate of the daily snapshots inside a window.
type Summary struct {
	Kind       Kind              `json:"kind"`
	WindowDays int               `json:"window_days"`
	Start      time.Time         `json:"start"`
	End        time.Time         `json:"end"`
	Snapshots  []health.Snapshot `json:"snapshots"`
	Averages   Averages          `json:"averages"`
	Trends     Trends            `json:"trends"`
	TrendBasis Basis             `json:"trend_basis"`

	// Extrema is nil when the window has no snapshots.
	Extrema *Extrema `json:"extrema,omitempty"`

	// Subperiods are weekly summaries for a month and monthly summaries for
	// a two-month window. A week has none.
	Subperiods []*Summary `json:"subperiods,omitempty"`
}

// IsEmpty reports whether the window contains no snapshots.
func (s *Summary) IsEmpty() bool {
	return s == nil || len(s.Snapshots) == 0
}

// Midpoint returns the day offset at which the window is split into halves.
func (s *Summary) Midpoint() int {
	return s.WindowDays / 2
}
