// Package insight composes the plain-language narrative shown alongside
// weekly and monthly summaries.
package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/period"
	"github.com/blackwell-systems/zenscore/internal/trend"
)

// Percent-change bands for the score-change sentences.
const (
	weeklyBand  = 3.0
	monthlyBand = 5.0
)

// InsufficientMonthlyData is returned by Monthly when either half of the
// month has no snapshots.
const InsufficientMonthlyData = "Insufficient data for monthly analysis."

// Weekly composes the weekly narrative. previous may be nil, in which case
// absolute levels are reported instead of changes.
func Weekly(current, previous *period.Summary) string {
	if current == nil {
		current = &period.Summary{}
	}
	avg := current.Averages
	var parts []string

	if previous != nil {
		change := trend.PercentChange(previous.Averages.RecoveryScore, avg.RecoveryScore)
		switch {
		case change > weeklyBand:
			parts = append(parts, fmt.Sprintf("Your recovery score improved by %.1f%% this week.", change))
		case change < -weeklyBand:
			parts = append(parts, fmt.Sprintf("Your recovery score decreased by %.1f%% this week.", math.Abs(change)))
		default:
			parts = append(parts, "Your recovery score remained stable this week.")
		}
	} else {
		parts = append(parts, fmt.Sprintf("Your average recovery score this week is %.1f.", avg.RecoveryScore))
	}

	parts = append(parts, fmt.Sprintf("Your best metric this week was %s.", BestMetric(avg).DisplayName()))

	if advice := weakestAdvice(avg); advice != "" {
		parts = append(parts, advice)
	}

	parts = append(parts, fmt.Sprintf("Overall, your wellness is %s.", direction(avg, previous)))
	return strings.Join(parts, " ")
}

// BestMetric returns the input metric with the highest value once each is
// normalized to 0-100. Ties go to the earlier of sleep, HRV, resting HR,
// activity load.
func BestMetric(a period.Averages) health.Metric {
	candidates := []struct {
		metric health.Metric
		score  float64
	}{
		{health.MetricSleep, math.Min(a.Sleep/health.TargetSleepHours*100, 100)},
		{health.MetricHRV, math.Min(a.HRV/health.TargetHRV*100, 100)},
		{health.MetricRestingHR, restingHRComparable(a.RestingHR)},
		{health.MetricActivityLoad, math.Min(math.Max(a.ActivityLoad/500*100, 0), 100)},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best.metric
}

// restingHRComparable peaks at 55 bpm and loses 2 points per bpm either side.
func restingHRComparable(bpm float64) float64 {
	if bpm <= 0 {
		return 0
	}
	return math.Max(100-math.Abs(bpm-55)*2, 0)
}

// weakestAdvice is a first-match chain, not a ranking.
func weakestAdvice(a period.Averages) string {
	switch {
	case a.Sleep < 6.5:
		return "Focus on improving sleep duration for better recovery."
	case a.HRV < 40:
		return "Your HRV could be improved with stress management techniques."
	case a.RestingHR > 70:
		return "Consider cardiovascular exercise to lower your resting heart rate."
	case a.ActivityLoad < 250:
		return "Increasing daily activity could boost your overall wellness."
	}
	return ""
}

func direction(a period.Averages, previous *period.Summary) string {
	if previous == nil {
		switch {
		case a.RecoveryScore >= 75:
			return "excellent"
		case a.RecoveryScore >= 60:
			return "good"
		default:
			return "progressing"
		}
	}
	switch delta := a.RecoveryScore - previous.Averages.RecoveryScore; {
	case delta > weeklyBand:
		return "improving"
	case delta < -weeklyBand:
		return "declining"
	default:
		return "stable"
	}
}

// Monthly compares the first and second half of a month and names the
// factors that improved.
func Monthly(month *period.Summary) string {
	if month == nil {
		return InsufficientMonthlyData
	}
	first, second := period.Split(month, month.Midpoint())
	if len(first) == 0 || len(second) == 0 {
		return InsufficientMonthlyData
	}
	before, after := period.AveragesOf(first), period.AveragesOf(second)

	var parts []string
	change := trend.PercentChange(before.RecoveryScore, after.RecoveryScore)
	switch {
	case change > monthlyBand:
		parts = append(parts, fmt.Sprintf("Your recovery score improved by %.1f%% this month.", change))
	case change < -monthlyBand:
		parts = append(parts, fmt.Sprintf("Your recovery score decreased by %.1f%% this month.", math.Abs(change)))
	default:
		parts = append(parts, "Your recovery score remained consistent this month.")
	}

	var factors []string
	if after.Sleep > before.Sleep+0.3 {
		factors = append(factors, "consistent sleep patterns")
	}
	if after.HRV > before.HRV+5 {
		factors = append(factors, "increased HRV")
	}
	if after.RestingHR < before.RestingHR-2 {
		factors = append(factors, "lower resting heart rate")
	}
	if len(factors) > 0 {
		parts = append(parts, strings.Join(factors, " and ")+" contributed to better overall recovery.")
	}
	return strings.Join(parts, " ")
}
