package suggest

import "github.com/blackwell-systems/zenscore/internal/period"

// Engine runs every registered rule against a summary and returns the
// highest-priority recommendations.
type Engine struct {
	rules []Rule
	limit int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimit caps the number of recommendations returned. Values outside
// 1..MaxRecommendations are ignored.
func WithLimit(n int) Option {
	return func(e *Engine) {
		if n >= 1 && n <= MaxRecommendations {
			e.limit = n
		}
	}
}

// NewEngine creates an engine with the built-in rules registered in table
// order. Table order breaks priority ties.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules: []Rule{
			SleepRule,
			HRVRule,
			RestingHRRule,
			ActivityRule,
			HydrationRule,
			SunlightRule,
		},
		limit: MaxRecommendations,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate evaluates every rule against s and returns the collected
// recommendations ranked by priority, truncated to the engine's limit.
// A nil summary is treated as an empty one.
func (e *Engine) Generate(s *period.Summary) []Recommendation {
	if s == nil {
		s = &period.Summary{}
	}
	var all []Recommendation
	for _, rule := range e.rules {
		all = append(all, rule(s)...)
	}
	ranked := Rank(all)
	if len(ranked) > e.limit {
		ranked = ranked[:e.limit]
	}
	return ranked
}
