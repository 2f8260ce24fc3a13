package suggest

import "github.com/blackwell-systems/zenscore/internal/period"

// Rule thresholds, compared against period averages.
const (
	shortSleepHours   = 7.0
	ampleSleepHours   = 8.0
	highHRV           = 60.0
	lowHRV            = 40.0
	elevatedRestingHR = 65.0
	lowRestingHR      = 60.0
	lowActivityLoad   = 300.0
	highActivityLoad  = 700.0
)

// SleepRule asks for more sleep below 7 hours and praises 8 hours or more.
func SleepRule(s *period.Summary) []Recommendation {
	switch avg := s.Averages.Sleep; {
	case avg < shortSleepHours:
		return []Recommendation{{
			Icon:        IconActivityLoad,
			Title:       "Improve Sleep Duration",
			Description: "Go to bed 30 minutes earlier to boost recovery. Aim for 7-9 hours per night.",
			Priority:    10,
		}}
	case avg >= ampleSleepHours:
		return []Recommendation{{
			Icon:        IconActivityLoad,
			Title:       "Excellent Sleep",
			Description: "Your sleep duration is optimal. Maintain your current bedtime routine.",
			Priority:    5,
		}}
	}
	return nil
}

// HRVRule suggests hard training when HRV is high and stress management when
// it is low.
func HRVRule(s *period.Summary) []Recommendation {
	switch avg := s.Averages.HRV; {
	case avg >= highHRV:
		return []Recommendation{{
			Icon:        IconStrength,
			Title:       "High Intensity Training",
			Description: "This is a great day for moderate to high-intensity training. Your HRV indicates good recovery.",
			Priority:    8,
		}}
	case avg < lowHRV:
		return []Recommendation{{
			Icon:        IconBreathWork,
			Title:       "Stress Management",
			Description: "Consider stress-management or breath-work. Your HRV suggests elevated stress levels.",
			Priority:    9,
		}}
	}
	return nil
}

// RestingHRRule suggests relaxation when resting heart rate is elevated and
// praises a low one.
func RestingHRRule(s *period.Summary) []Recommendation {
	switch avg := s.Averages.RestingHR; {
	case avg > elevatedRestingHR:
		return []Recommendation{{
			Icon:        IconBreathWork,
			Title:       "Lower Resting Heart Rate",
			Description: "Your RHR is elevated. Try 10 minutes of meditation or deep breathing daily.",
			Priority:    8,
		}}
	case avg < lowRestingHR:
		return []Recommendation{{
			Icon:        IconActivityLoad,
			Title:       "Strong Cardiovascular Health",
			Description: "Your RHR is trending lower, indicating improved recovery and fitness.",
			Priority:    6,
		}}
	}
	return nil
}

// ActivityRule always contributes exactly one recommendation: more movement,
// a rest day, or praise for a balanced load.
func ActivityRule(s *period.Summary) []Recommendation {
	switch avg := s.Averages.ActivityLoad; {
	case avg < lowActivityLoad:
		return []Recommendation{{
			Icon:        IconActivityLoad,
			Title:       "Increase Activity",
			Description: "Aim for at least 5,000 more steps today. Light movement aids recovery.",
			Priority:    7,
		}}
	case avg > highActivityLoad:
		return []Recommendation{{
			Icon:        IconActivityLoad,
			Title:       "Recovery Day Needed",
			Description: "Your activity load is high. Consider a rest day or active recovery session.",
			Priority:    9,
		}}
	default:
		return []Recommendation{{
			Icon:        IconStrength,
			Title:       "Balanced Training Load",
			Description: "Try a 30-minute resistance workout. Your recovery score indicates you're ready for moderate intensity.",
			Priority:    6,
		}}
	}
}

// HydrationRule is always present.
func HydrationRule(*period.Summary) []Recommendation {
	return []Recommendation{{
		Icon:        IconStayHydrated,
		Title:       "Stay Hydrated",
		Description: "Drink at least 2.5L of water today to support cellular recovery and metabolic function.",
		Priority:    5,
	}}
}

// SunlightRule is always present.
func SunlightRule(*period.Summary) []Recommendation {
	return []Recommendation{{
		Icon:        IconMorningSunlight,
		Title:       "Morning Sunlight",
		Description: "Get 10-15 minutes of natural light exposure to regulate your circadian rhythm and boost energy.",
		Priority:    4,
	}}
}
