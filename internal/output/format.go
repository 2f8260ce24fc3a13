package output

import (
	"fmt"

	"github.com/blackwell-systems/zenscore/internal/health"
)

// FormatSleep renders fractional hours as "7h 30m". Minutes are truncated.
func FormatSleep(hours float64) string {
	if hours < 0 {
		hours = 0
	}
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%dh %dm", h, m)
}

// ActivityLevel buckets an activity load as Low, Moderate or High.
func ActivityLevel(load float64) string {
	switch {
	case load < 250:
		return "Low"
	case load < 500:
		return "Moderate"
	default:
		return "High"
	}
}

// FormatMetric renders a metric value with its unit.
func FormatMetric(m health.Metric, v float64) string {
	switch m {
	case health.MetricSleep:
		return FormatSleep(v)
	case health.MetricRestingHR:
		return fmt.Sprintf("%.0f bpm", v)
	case health.MetricHRV:
		return fmt.Sprintf("%.0f ms", v)
	case health.MetricActivityLoad:
		return fmt.Sprintf("%.0f (%s)", v, ActivityLevel(v))
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
