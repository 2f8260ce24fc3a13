package health

// Status is the recovery bucket a score falls into.
type Status string

const (
	StatusExcellent Status = "Excellent"
	StatusGood      Status = "Good"
	StatusModerate  Status = "Moderate"
	StatusPoor      Status = "Poor"
	StatusVeryPoor  Status = "Very Poor"
)

// StatusFor buckets a recovery score. Lower bounds are inclusive; the top
// bucket includes 100.
func StatusFor(score float64) Status {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusModerate
	case score >= 20:
		return StatusPoor
	default:
		return StatusVeryPoor
	}
}

// Label returns the display label, e.g. "Good Recovery".
func (s Status) Label() string {
	return string(s) + " Recovery"
}

// Color returns the hex color tag (without '#') for the bucket.
func (s Status) Color() string {
	switch s {
	case StatusExcellent:
		return "10b981"
	case StatusGood:
		return "22c55e"
	case StatusModerate:
		return "eab308"
	case StatusPoor:
		return "f97316"
	default:
		return "ef4444"
	}
}
