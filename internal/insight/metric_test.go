package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackwell-systems/zenscore/internal/health"
)

func TestMetric(t *testing.T) {
	tests := []struct {
		name     string
		metric   health.Metric
		current  float64
		previous float64
		want     string
	}{
		{"sleep up", health.MetricSleep, 7, 6.5, "Your sleep improved by 7.7%. Continue maintaining your bedtime routine for optimal recovery."},
		{"sleep down", health.MetricSleep, 6, 7, "Your sleep decreased by 14.3%. Try going to bed 30 minutes earlier."},
		{"sleep stable", health.MetricSleep, 7, 7, "Your sleep duration is stable. Keep up your current routine."},
		{"rhr low", health.MetricRestingHR, 55, 0, "Your RHR is trending lower, indicating improved cardiovascular fitness and recovery capacity."},
		{"rhr missing", health.MetricRestingHR, 0, 0, "Your resting heart rate is in a healthy range."},
		{"rhr elevated", health.MetricRestingHR, 75, 0, "Your RHR is elevated. Consider stress management techniques and adequate rest."},
		{"rhr normal", health.MetricRestingHR, 65, 0, "Your resting heart rate is in a healthy range."},
		{"hrv strong", health.MetricHRV, 60, 0, "Strong HRV score suggests your nervous system is well-balanced. Great time for training."},
		{"hrv low", health.MetricHRV, 39, 0, "Lower HRV indicates stress or fatigue. Prioritize recovery and stress management."},
		{"hrv moderate", health.MetricHRV, 50, 0, "Your HRV is moderate. Balance training with adequate recovery."},
		{"activity balanced", health.MetricActivityLoad, 600, 0, "Your training load is balanced. This is an optimal activity level for recovery."},
		{"activity low", health.MetricActivityLoad, 299, 0, "Your activity is low. Consider adding light movement or a moderate workout."},
		{"activity high", health.MetricActivityLoad, 601, 0, "High activity load detected. Ensure you're getting adequate recovery."},
		{"recovery score has none", health.MetricRecoveryScore, 80, 70, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Metric(tt.metric, tt.current, tt.previous))
		})
	}
}
