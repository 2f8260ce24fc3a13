package store

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// InsertSample inserts a raw sample and returns its ID.
func (db *DB) InsertSample(s *SampleRow) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO samples (kind, start_at, end_at, value, source, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		s.Kind, formatTime(s.Start), formatTime(s.End), s.Value, s.Source, formatTime(time.Now()),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertSamples inserts all samples in a single transaction. Either every
// row is stored or none is.
func (db *DB) InsertSamples(samples []SampleRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO samples (kind, start_at, end_at, value, source, created_at) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := formatTime(time.Now())
	for i, s := range samples {
		if _, err := stmt.Exec(s.Kind, formatTime(s.Start), formatTime(s.End), s.Value, s.Source, now); err != nil {
			return fmt.Errorf("sample %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// Samples returns the samples of one kind whose start lies in [from, to),
// ordered by start time.
func (db *DB) Samples(kind string, from, to time.Time) ([]SampleRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, kind, start_at, end_at, value, source, created_at
		FROM samples
		WHERE kind = ? AND start_at >= ? AND start_at < ?
		ORDER BY start_at, id`,
		kind, formatTime(from), formatTime(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SampleRow
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// CountSamples returns the number of stored samples of kind, or of every
// kind when kind is empty.
func (db *DB) CountSamples(kind string) (int, error) {
	var n int
	var err error
	if kind == "" {
		err = db.conn.QueryRow("SELECT COUNT(*) FROM samples").Scan(&n)
	} else {
		err = db.conn.QueryRow("SELECT COUNT(*) FROM samples WHERE kind = ?", kind).Scan(&n)
	}
	return n, err
}

func scanSample(rows *sql.Rows) (SampleRow, error) {
	var s SampleRow
	var start, end, created string
	if err := rows.Scan(&s.ID, &s.Kind, &start, &end, &s.Value, &s.Source, &created); err != nil {
		return s, err
	}
	var err error
	if s.Start, err = parseTime(start); err != nil {
		return s, fmt.Errorf("sample %d start: %w", s.ID, err)
	}
	if s.End, err = parseTime(end); err != nil {
		return s, fmt.Errorf("sample %d end: %w", s.ID, err)
	}
	s.CreatedAt, _ = parseTime(created)
	return s, nil
}
