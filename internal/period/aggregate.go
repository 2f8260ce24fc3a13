package period

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/trend"
)

// Input contract violations reported by Aggregate.
var (
	ErrInvalidWindow = errors.New("window must be at least one day")
	ErrUnsorted      = errors.New("snapshots are not in chronological order")
	ErrDuplicateDay  = errors.New("more than one snapshot for the same day")
	ErrOutOfWindow   = errors.New("snapshot outside the summary window")
)

// Option configures Aggregate.
type Option func(*options)

type options struct {
	previous *Summary
}

// WithPrevious makes the trend tags compare against the preceding period's
// averages instead of splitting the window in half.
func WithPrevious(prev *Summary) Option {
	return func(o *options) {
		o.previous = prev
	}
}

// Weekly aggregates a 7-day window ending on now.
func Weekly(snapshots []health.Snapshot, now time.Time, opts ...Option) (*Summary, error) {
	return Aggregate(snapshots, WeekDays, now, opts...)
}

// Monthly aggregates a 30-day window ending on now, with weekly sub-periods.
func Monthly(snapshots []health.Snapshot, now time.Time, opts ...Option) (*Summary, error) {
	return Aggregate(snapshots, MonthDays, now, opts...)
}

// TwoMonth aggregates a 60-day window ending on now, with two monthly
// sub-periods.
func TwoMonth(snapshots []health.Snapshot, now time.Time, opts ...Option) (*Summary, error) {
	return Aggregate(snapshots, TwoMonthDays, now, opts...)
}

// Bounds returns the first and last day of a window of windowDays ending on
// now. Both ends are inclusive, so the window spans windowDays+1 calendar
// days.
func Bounds(windowDays int, now time.Time) (start, end time.Time) {
	end = health.Day(now)
	start = end.AddDate(0, 0, -windowDays)
	return start, end
}

// Aggregate reduces chronologically ordered snapshots, at most one per day,
// into a Summary for the window [now-windowDays, now]. An empty input is
// valid and yields zero averages and no extrema.
func Aggregate(snapshots []health.Snapshot, windowDays int, now time.Time, opts ...Option) (*Summary, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("window of %d days: %w", windowDays, ErrInvalidWindow)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	start, end := Bounds(windowDays, now)
	if err := checkOrder(snapshots, start, windowDays); err != nil {
		return nil, err
	}

	owned := make([]health.Snapshot, len(snapshots))
	copy(owned, snapshots)

	s := &Summary{
		Kind:       KindFor(windowDays),
		WindowDays: windowDays,
		Start:      start,
		End:        end,
		Snapshots:  owned,
		Averages:   AveragesOf(owned),
		Extrema:    extremaOf(owned),
	}

	subs, err := decompose(s)
	if err != nil {
		return nil, err
	}
	s.Subperiods = subs

	s.Trends, s.TrendBasis = trendsFor(s, o.previous)
	return s, nil
}

// checkOrder rejects input that is unsorted, repeats a day, or falls outside
// the window.
func checkOrder(snapshots []health.Snapshot, start time.Time, windowDays int) error {
	prev := -1
	for _, snap := range snapshots {
		off := DayOffset(start, snap.Date())
		if off < 0 || off > windowDays {
			return fmt.Errorf("%s not in %s..%s: %w",
				snap.Date().Format(health.DateLayout),
				start.Format(health.DateLayout),
				start.AddDate(0, 0, windowDays).Format(health.DateLayout),
				ErrOutOfWindow)
		}
		switch {
		case off == prev:
			return fmt.Errorf("%s: %w", snap.Date().Format(health.DateLayout), ErrDuplicateDay)
		case off < prev:
			return fmt.Errorf("%s after a later day: %w", snap.Date().Format(health.DateLayout), ErrUnsorted)
		}
		prev = off
	}
	return nil
}

// DayOffset returns the number of calendar days from start to day. Only the
// civil dates are compared; clock time and zone offsets are ignored.
func DayOffset(start, day time.Time) int {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := day.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// decompose builds the sub-period summaries. Windows longer than a month
// split at day 30 into monthly windows; windows longer than a week and up to
// a month split into ceil(WindowDays/7) weeks by dayOffset/7. The last
// sub-period ends on the parent's End and also holds offset WindowDays.
func decompose(s *Summary) ([]*Summary, error) {
	type part struct {
		from int
		kind Kind
	}

	var parts []part
	switch {
	case s.WindowDays > MonthDays:
		parts = []part{{0, KindMonth}, {MonthDays, KindMonth}}
	case s.WindowDays > WeekDays:
		weeks := (s.WindowDays + WeekDays - 1) / WeekDays
		for i := 0; i < weeks; i++ {
			parts = append(parts, part{i * WeekDays, KindWeek})
		}
	default:
		return nil, nil
	}

	subs := make([]*Summary, 0, len(parts))
	var prev *Summary
	for i, p := range parts {
		last := i == len(parts)-1
		to := s.WindowDays
		if !last {
			to = parts[i+1].from
		}

		var subset []health.Snapshot
		for _, snap := range s.Snapshots {
			off := DayOffset(s.Start, snap.Date())
			if off >= p.from && (off < to || (last && off == to)) {
				subset = append(subset, snap)
			}
		}

		var opts []Option
		if prev != nil {
			opts = append(opts, WithPrevious(prev))
		}
		sub, err := Aggregate(subset, to-p.from, s.Start.AddDate(0, 0, to), opts...)
		if err != nil {
			return nil, fmt.Errorf("sub-period %d: %w", i+1, err)
		}
		sub.Kind = p.kind
		subs = append(subs, sub)
		prev = sub
	}
	return subs, nil
}

// trendsFor tags every metric, either against prev or by comparing the two
// halves of the window.
func trendsFor(s *Summary, prev *Summary) (Trends, Basis) {
	if prev != nil {
		if prev.IsEmpty() || s.IsEmpty() {
			return Trends{}, BasisNone
		}
		return compare(prev.Averages, s.Averages), BasisPrevious
	}

	first, second := Split(s, s.Midpoint())
	if len(first) == 0 || len(second) == 0 {
		return Trends{}, BasisNone
	}
	return compare(AveragesOf(first), AveragesOf(second)), BasisSplit
}

func compare(before, after Averages) Trends {
	var t Trends
	for _, m := range health.AllMetrics {
		tag := trend.ClassifyMetric(m, before.Of(m), after.Of(m))
		switch m {
		case health.MetricSleep:
			t.Sleep = tag
		case health.MetricRestingHR:
			t.RestingHR = tag
		case health.MetricHRV:
			t.HRV = tag
		case health.MetricActivityLoad:
			t.ActivityLoad = tag
		case health.MetricRecoveryScore:
			t.RecoveryScore = tag
		}
	}
	return t
}

// Split partitions a summary's snapshots into those before day offset and
// those on or after it.
func Split(s *Summary, offset int) (first, second []health.Snapshot) {
	for _, snap := range s.Snapshots {
		if DayOffset(s.Start, snap.Date()) < offset {
			first = append(first, snap)
		} else {
			second = append(second, snap)
		}
	}
	return first, second
}

// AveragesOf computes per-metric means with a denominator of max(n, 1), so
// an empty slice averages to zero.
func AveragesOf(snapshots []health.Snapshot) Averages {
	n := float64(max(len(snapshots), 1))
	mean := func(m health.Metric) float64 {
		return floats.Sum(values(snapshots, m)) / n
	}
	return Averages{
		Sleep:         mean(health.MetricSleep),
		RestingHR:     mean(health.MetricRestingHR),
		HRV:           mean(health.MetricHRV),
		ActivityLoad:  mean(health.MetricActivityLoad),
		RecoveryScore: mean(health.MetricRecoveryScore),
	}
}

func extremaOf(snapshots []health.Snapshot) *Extrema {
	if len(snapshots) == 0 {
		return nil
	}
	scores := values(snapshots, health.MetricRecoveryScore)
	sleep := values(snapshots, health.MetricSleep)
	return &Extrema{
		BestRecoveryDay:  snapshots[floats.MaxIdx(scores)],
		WorstRecoveryDay: snapshots[floats.MinIdx(scores)],
		LongestSleep:     floats.Max(sleep),
		ShortestSleep:    floats.Min(sleep),
	}
}

func values(snapshots []health.Snapshot, m health.Metric) []float64 {
	out := make([]float64, len(snapshots))
	for i, snap := range snapshots {
		out[i] = m.Of(snap)
	}
	return out
}
