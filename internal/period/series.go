package period

import "github.com/blackwell-systems/zenscore/internal/health"

// LabelFormat selects how Labels renders each day.
type LabelFormat int

const (
	LabelWeekday    LabelFormat = iota // Mon, Tue, Wed
	LabelDayOfMonth                    // 1, 2, 3
	LabelMonthDay                      // Jan 1, Jan 2
)

// Series returns the chronological values of one metric, for charting.
func Series(s *Summary, m health.Metric) []float64 {
	if s == nil {
		return nil
	}
	return values(s.Snapshots, m)
}

// Labels returns one date label per snapshot, aligned with Series.
func Labels(s *Summary, format LabelFormat) []string {
	if s == nil {
		return nil
	}
	layout := "Mon"
	switch format {
	case LabelDayOfMonth:
		layout = "2"
	case LabelMonthDay:
		layout = "Jan 2"
	}
	out := make([]string, len(s.Snapshots))
	for i, snap := range s.Snapshots {
		out[i] = snap.Date().Format(layout)
	}
	return out
}
