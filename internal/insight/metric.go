package insight

import (
	"fmt"
	"math"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/trend"
)

// Metric returns a one-line insight for a single metric. Sleep is judged by
// its change from previous; the others by their current level. Callers with
// no earlier period pass current as previous.
func Metric(m health.Metric, current, previous float64) string {
	switch m {
	case health.MetricSleep:
		change := trend.PercentChange(previous, current)
		switch {
		case change > 5:
			return fmt.Sprintf("Your sleep improved by %.1f%%. Continue maintaining your bedtime routine for optimal recovery.", change)
		case change < -5:
			return fmt.Sprintf("Your sleep decreased by %.1f%%. Try going to bed 30 minutes earlier.", math.Abs(change))
		default:
			return "Your sleep duration is stable. Keep up your current routine."
		}

	case health.MetricRestingHR:
		switch {
		case current > 0 && current < 60:
			return "Your RHR is trending lower, indicating improved cardiovascular fitness and recovery capacity."
		case current > 70:
			return "Your RHR is elevated. Consider stress management techniques and adequate rest."
		default:
			return "Your resting heart rate is in a healthy range."
		}

	case health.MetricHRV:
		switch {
		case current >= 60:
			return "Strong HRV score suggests your nervous system is well-balanced. Great time for training."
		case current < 40:
			return "Lower HRV indicates stress or fatigue. Prioritize recovery and stress management."
		default:
			return "Your HRV is moderate. Balance training with adequate recovery."
		}

	case health.MetricActivityLoad:
		switch {
		case current >= health.ActivityBandLow && current <= health.ActivityBandHigh:
			return "Your training load is balanced. This is an optimal activity level for recovery."
		case current < health.ActivityBandLow:
			return "Your activity is low. Consider adding light movement or a moderate workout."
		default:
			return "High activity load detected. Ensure you're getting adequate recovery."
		}
	}
	return ""
}
