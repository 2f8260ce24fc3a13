package suggest

import "sort"

// Rank returns a copy of recs sorted by Priority in descending order.
// Equal priorities keep their input order.
func Rank(recs []Recommendation) []Recommendation {
	sorted := make([]Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}
