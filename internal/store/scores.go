package store

import (
	"time"

	"github.com/blackwell-systems/zenscore/internal/health"
)

// SaveDailyScore records a computed snapshot. Saving the same day again
// replaces the values and keeps the first ID.
func (db *DB) SaveDailyScore(s health.Snapshot) error {
	m := s.Metrics()
	_, err := db.conn.Exec(
		`INSERT INTO daily_scores
		(id, day, sleep_hours, resting_hr, hrv, activity_load, recovery_score, status, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			sleep_hours = excluded.sleep_hours,
			resting_hr = excluded.resting_hr,
			hrv = excluded.hrv,
			activity_load = excluded.activity_load,
			recovery_score = excluded.recovery_score,
			status = excluded.status,
			saved_at = excluded.saved_at`,
		s.ID().String(), s.Date().Format(health.DateLayout),
		m.Sleep, m.RestingHR, m.HRV, m.ActivityLoad,
		s.RecoveryScore(), string(s.Status()), formatTime(time.Now()),
	)
	return err
}

// DailyScores returns saved scores for days in [from, to] inclusive, given
// as calendar days, oldest first.
func (db *DB) DailyScores(from, to time.Time) ([]DailyScoreRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, day, sleep_hours, resting_hr, hrv, activity_load, recovery_score, status, saved_at
		FROM daily_scores
		WHERE day >= ? AND day <= ?
		ORDER BY day`,
		from.Format(health.DateLayout), to.Format(health.DateLayout),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DailyScoreRow
	for rows.Next() {
		var r DailyScoreRow
		var savedAt string
		if err := rows.Scan(&r.ID, &r.Day, &r.SleepHours, &r.RestingHR, &r.HRV,
			&r.ActivityLoad, &r.RecoveryScore, &r.Status, &savedAt); err != nil {
			return nil, err
		}
		r.SavedAt, _ = parseTime(savedAt)
		result = append(result, r)
	}
	return result, rows.Err()
}
