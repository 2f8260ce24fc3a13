package suggest

import (
	"testing"
	"time"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/period"
)

func summaryOf(sleep, rhr, hrv, activity float64) *period.Summary {
	return &period.Summary{
		Averages: period.Averages{
			Sleep:        sleep,
			RestingHR:    rhr,
			HRV:          hrv,
			ActivityLoad: activity,
		},
	}
}

func titles(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Engine.Generate ---

func TestGenerate_PoorWeek(t *testing.T) {
	recs := NewEngine().Generate(summaryOf(6, 70, 35, 200))

	want := []string{
		"Improve Sleep Duration",
		"Stress Management",
		"Lower Resting Heart Rate",
		"Increase Activity",
		"Stay Hydrated",
		"Morning Sunlight",
	}
	if got := titles(recs); !equalStrings(got, want) {
		t.Fatalf("titles = %v, want %v", got, want)
	}

	wantPriorities := []int{10, 9, 8, 7, 5, 4}
	for i, r := range recs {
		if r.Priority != wantPriorities[i] {
			t.Errorf("%s priority = %d, want %d", r.Title, r.Priority, wantPriorities[i])
		}
	}
}

func TestGenerate_TiesKeepRuleOrder(t *testing.T) {
	recs := NewEngine().Generate(summaryOf(8.5, 55, 70, 800))

	want := []string{
		"Recovery Day Needed",
		"High Intensity Training",
		"Strong Cardiovascular Health",
		"Excellent Sleep",
		"Stay Hydrated",
		"Morning Sunlight",
	}
	if got := titles(recs); !equalStrings(got, want) {
		t.Fatalf("titles = %v, want %v", got, want)
	}
}

func TestGenerate_NeverMoreThanMax(t *testing.T) {
	engine := NewEngine()
	for _, sleep := range []float64{0, 6.9, 7, 7.9, 8, 10} {
		for _, rhr := range []float64{0, 45, 59.9, 60, 65, 65.1, 90} {
			for _, hrv := range []float64{0, 39.9, 40, 59.9, 60, 120} {
				for _, act := range []float64{0, 299, 300, 700, 701, 2000} {
					recs := engine.Generate(summaryOf(sleep, rhr, hrv, act))
					if len(recs) > MaxRecommendations {
						t.Fatalf("got %d recommendations for (%v,%v,%v,%v)", len(recs), sleep, rhr, hrv, act)
					}
					if !hasTitle(recs, "Stay Hydrated") || !hasTitle(recs, "Morning Sunlight") {
						t.Fatalf("always-on rules missing for (%v,%v,%v,%v): %v",
							sleep, rhr, hrv, act, titles(recs))
					}
					for i := 1; i < len(recs); i++ {
						if recs[i].Priority > recs[i-1].Priority {
							t.Fatalf("not sorted: %v", recs)
						}
					}
				}
			}
		}
	}
}

func TestGenerate_WithLimit(t *testing.T) {
	recs := NewEngine(WithLimit(3)).Generate(summaryOf(6, 70, 35, 200))
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}
	if recs[0].Title != "Improve Sleep Duration" {
		t.Errorf("first = %q", recs[0].Title)
	}

	// Out-of-range limits are ignored.
	for _, n := range []int{0, -1, 7} {
		recs := NewEngine(WithLimit(n)).Generate(summaryOf(6, 70, 35, 200))
		if len(recs) != MaxRecommendations {
			t.Errorf("WithLimit(%d): len = %d, want %d", n, len(recs), MaxRecommendations)
		}
	}
}

func TestGenerate_NilSummary(t *testing.T) {
	recs := NewEngine().Generate(nil)
	want := []string{
		"Improve Sleep Duration",
		"Stress Management",
		"Increase Activity",
		"Strong Cardiovascular Health",
		"Stay Hydrated",
		"Morning Sunlight",
	}
	if got := titles(recs); !equalStrings(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
}

func TestGenerate_ZeroHeartReadings(t *testing.T) {
	recs := NewEngine().Generate(summaryOf(7.5, 0, 0, 450))
	want := []string{
		"Stress Management",
		"Strong Cardiovascular Health",
		"Balanced Training Load",
		"Stay Hydrated",
		"Morning Sunlight",
	}
	if got := titles(recs); !equalStrings(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
}

func TestGenerate_FromAggregatedWeek(t *testing.T) {
	now := time.Date(2026, time.March, 31, 20, 0, 0, 0, time.UTC)
	start, _ := period.Bounds(period.WeekDays, now)

	var snaps []health.Snapshot
	for i := 0; i < 7; i++ {
		snaps = append(snaps, health.MustSnapshot(start.AddDate(0, 0, i+1), health.Metrics{
			Sleep: 6, RestingHR: 70, HRV: 35, ActivityLoad: 200,
		}))
	}
	week, err := period.Weekly(snaps, now)
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	if week.Averages.Sleep != 6 {
		t.Errorf("average sleep = %v, want 6", week.Averages.Sleep)
	}

	recs := NewEngine().Generate(week)
	if recs[0].Title != "Improve Sleep Duration" || recs[0].Priority != 10 {
		t.Errorf("first = %+v", recs[0])
	}
	if recs[1].Title != "Stress Management" || recs[1].Priority != 9 {
		t.Errorf("second = %+v", recs[1])
	}
	hydration, sunlight := indexOf(recs, "Stay Hydrated"), indexOf(recs, "Morning Sunlight")
	if hydration < 2 || sunlight < 2 {
		t.Errorf("sleep and stress advice should rank ahead of reminders: %v", titles(recs))
	}
}

// --- Rank ---

func TestRank_DoesNotModifyInput(t *testing.T) {
	in := []Recommendation{{Title: "a", Priority: 1}, {Title: "b", Priority: 9}}
	out := Rank(in)
	if in[0].Title != "a" {
		t.Error("Rank modified its input")
	}
	if out[0].Title != "b" {
		t.Errorf("out[0] = %q, want b", out[0].Title)
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("Rank(nil) = %v", got)
	}
}

func hasTitle(recs []Recommendation, title string) bool {
	return indexOf(recs, title) >= 0
}

func indexOf(recs []Recommendation, title string) int {
	for i, r := range recs {
		if r.Title == title {
			return i
		}
	}
	return -1
}
