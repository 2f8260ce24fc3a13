package health

import "math"

// Component ceilings for the recovery score. They sum to 100.
const (
	MaxSleepPoints     = 25.0
	MaxRestingHRPoints = 25.0
	MaxHRVPoints       = 30.0
	MaxActivityPoints  = 20.0
)

// Reference values used by the component formulas.
const (
	TargetSleepHours = 8.0
	OptimalHRLow     = 50.0
	OptimalHRHigh    = 60.0
	TargetHRV        = 100.0
	ActivityBandLow  = 300.0
	ActivityBandHigh = 600.0
)

// ComputeRecoveryScore calculates a 0-100 recovery score from the four daily
// metrics. It never fails: zero or out-of-range inputs lower the score.
//
// Scoring breakdown:
//   - Sleep:       0-25 points, linear up to 8 hours
//   - Resting HR:  0-25 points, full inside 50-60 bpm, -0.5 per bpm outside
//   - HRV:         0-30 points, linear up to 100 ms
//   - Activity:    0-20 points, full inside 300-600, penalised either side
func ComputeRecoveryScore(sleep, restingHR, hrv, activity float64) float64 {
	total := sleepPoints(sleep) +
		restingHRPoints(restingHR) +
		hrvPoints(hrv) +
		activityPoints(activity)
	return clamp(total, 0, 100)
}

// sleepPoints scores sleep duration in hours.
func sleepPoints(hours float64) float64 {
	return clamp(hours/TargetSleepHours*MaxSleepPoints, 0, MaxSleepPoints)
}

// restingHRPoints scores resting heart rate; 0 means no reading.
func restingHRPoints(bpm float64) float64 {
	switch {
	case bpm <= 0 || math.IsNaN(bpm):
		return 0
	case bpm >= OptimalHRLow && bpm <= OptimalHRHigh:
		return MaxRestingHRPoints
	case bpm < OptimalHRLow:
		return math.Max(MaxRestingHRPoints-(OptimalHRLow-bpm)*0.5, 0)
	default:
		return math.Max(MaxRestingHRPoints-(bpm-OptimalHRHigh)*0.5, 0)
	}
}

// hrvPoints scores SDNN heart-rate variability in milliseconds.
func hrvPoints(ms float64) float64 {
	return clamp(ms/TargetHRV*MaxHRVPoints, 0, MaxHRVPoints)
}

// activityPoints scores the composite activity load.
func activityPoints(load float64) float64 {
	switch {
	case math.IsNaN(load) || load <= 0:
		return 0
	case load >= ActivityBandLow && load <= ActivityBandHigh:
		return MaxActivityPoints
	case load < ActivityBandLow:
		return load / ActivityBandLow * MaxActivityPoints
	default:
		return math.Max(MaxActivityPoints-((load-ActivityBandHigh)/100.0)*2, 0)
	}
}

// clamp bounds v to [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
