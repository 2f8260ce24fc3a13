package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/output"
	"github.com/blackwell-systems/zenscore/internal/period"
	"github.com/blackwell-systems/zenscore/internal/suggest"
	"github.com/blackwell-systems/zenscore/internal/trend"
)

func (e *env) section(title string) {
	fmt.Println(output.Section(title, e.cfg.Output.Width-2))
	fmt.Println()
}

// renderHeadline prints the average score bar and status of a summary.
func renderHeadline(s *period.Summary) {
	score := s.Averages.RecoveryScore
	fmt.Printf(" %s  %s\n", output.ScoreBar(score, 20), output.Status(health.StatusFor(score)))
	fmt.Printf(" %s\n\n", output.StyleMuted.Render(fmt.Sprintf("%d day(s) with data, %s", len(s.Snapshots), span(s))))
}

// renderAverages prints one row per input metric with its average and trend.
func renderAverages(s *period.Summary) {
	tbl := output.NewTable("Metric", "Average", "Trend")
	for _, m := range health.InputMetrics {
		tbl.AddRow(m.DisplayName(), output.FormatMetric(m, s.Averages.Of(m)), trendOrNA(s, s.Trends.Of(m)))
	}
	tbl.AddRow("recovery score", fmt.Sprintf("%.1f", s.Averages.RecoveryScore), trendOrNA(s, s.Trends.RecoveryScore))
	fmt.Print(indent(tbl.Render()))
	fmt.Println()
}

func trendOrNA(s *period.Summary, tag trend.Tag) string {
	if s.TrendBasis == period.BasisNone {
		return output.StyleMuted.Render("n/a")
	}
	return output.Trend(tag)
}

// renderDays prints one row per snapshot.
func renderDays(s *period.Summary, format period.LabelFormat) {
	if s.IsEmpty() {
		return
	}
	labels := period.Labels(s, format)
	tbl := output.NewTable("Day", "Score", "Status", "Sleep", "RHR", "HRV", "Activity")
	for i, snap := range s.Snapshots {
		m := snap.Metrics()
		tbl.AddRow(
			labels[i],
			fmt.Sprintf("%.0f", snap.RecoveryScore()),
			output.Hex(string(snap.Status()), snap.Color()),
			output.FormatSleep(m.Sleep),
			fmt.Sprintf("%.0f", m.RestingHR),
			fmt.Sprintf("%.0f", m.HRV),
			fmt.Sprintf("%.0f", m.ActivityLoad),
		)
	}
	fmt.Print(indent(tbl.Render()))
	fmt.Println()
}

func renderExtrema(s *period.Summary) {
	x := s.Extrema
	if x == nil {
		return
	}
	fmt.Printf(" %s %s (%.0f)\n", output.StyleLabel.Render("Best recovery day"),
		x.BestRecoveryDay.Date().Format("Mon Jan 2"), x.BestRecoveryDay.RecoveryScore())
	fmt.Printf(" %s %s (%.0f)\n", output.StyleLabel.Render("Worst recovery day"),
		x.WorstRecoveryDay.Date().Format("Mon Jan 2"), x.WorstRecoveryDay.RecoveryScore())
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Longest sleep"), output.FormatSleep(x.LongestSleep))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Shortest sleep"), output.FormatSleep(x.ShortestSleep))
	fmt.Println()
}

func renderInsight(text string) {
	fmt.Printf(" %s\n\n", text)
}

func renderRecommendations(recs []suggest.Recommendation) {
	for i, r := range recs {
		fmt.Printf(" #%d %s %s\n", i+1, stylePriority(r.Priority), output.StyleBold.Render(r.Title))
		fmt.Printf("    %s\n", r.Description)
		fmt.Println()
	}
}

func stylePriority(priority int) string {
	label := fmt.Sprintf("[%d]", priority)
	switch {
	case priority >= 9:
		return output.StyleError.Render(label)
	case priority >= 7:
		return output.StyleWarning.Render(label)
	default:
		return output.StyleMuted.Render(label)
	}
}

func indent(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
