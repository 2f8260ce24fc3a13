// Package suggest provides the recommendation engine and its rule table.
package suggest

import "github.com/blackwell-systems/zenscore/internal/period"

// MaxRecommendations caps the list returned by Engine.Generate.
const MaxRecommendations = 6

// Icon names attached to recommendations, matching the asset names used by
// the display layer.
const (
	IconActivityLoad    = "recommendations_activity_load"
	IconStrength        = "recommendations_light_strength_training"
	IconBreathWork      = "recommendations_breath_work_session"
	IconStayHydrated    = "recommendations_stay_hydrated"
	IconMorningSunlight = "recommendations_morning_sunlight"
)

// Recommendation is one actionable suggestion. Higher Priority ranks first.
type Recommendation struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// Rule examines a period summary and produces zero or more
// recommendations. Rules read only the summary's averages.
type Rule func(s *period.Summary) []Recommendation
