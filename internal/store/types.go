// Package store provides SQLite persistence for raw health samples and the
// daily scores computed from them.
package store

import "time"

// SampleRow is one raw measurement. Point samples have Start == End.
type SampleRow struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Value     float64   `json:"value"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyScoreRow is a persisted daily snapshot.
type DailyScoreRow struct {
	ID            string    `json:"id"`
	Day           string    `json:"day"`
	SleepHours    float64   `json:"sleep_hours"`
	RestingHR     float64   `json:"resting_hr"`
	HRV           float64   `json:"hrv"`
	ActivityLoad  float64   `json:"activity_load"`
	RecoveryScore float64   `json:"recovery_score"`
	Status        string    `json:"status"`
	SavedAt       time.Time `json:"saved_at"`
}
