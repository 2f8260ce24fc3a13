package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/insight"
	"github.com/blackwell-systems/zenscore/internal/output"
	"github.com/blackwell-systems/zenscore/internal/period"
	"github.com/blackwell-systems/zenscore/internal/trend"
)

var trendsDate string

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Two-month trends per metric",
	Long: `Compare the two 30-day halves of the 60 days ending today (or --date)
and tag each metric as increasing, decreasing or stable. Resting heart rate
is tagged as increasing when it improves, that is when it goes down.`,
	Args: cobra.NoArgs,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().StringVar(&trendsDate, "date", "", "Last day of the window (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(trendsCmd)
}

type metricTrend struct {
	Metric  health.Metric `json:"metric"`
	Earlier float64       `json:"earlier"`
	Later   float64       `json:"later"`
	Change  float64       `json:"change_percent"`
	Trend   trend.Tag     `json:"trend"`
	Insight string        `json:"insight,omitempty"`
}

type trendsReport struct {
	Summary *period.Summary `json:"summary"`
	Metrics []metricTrend   `json:"metrics"`
}

func runTrends(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	now, err := parseDay(trendsDate, e.loc, e.now())
	if err != nil {
		return err
	}

	s, err := e.summarize(cmd.Context(), period.TwoMonthDays, now)
	if err != nil {
		return err
	}

	report := trendsReport{Summary: s, Metrics: metricTrends(s)}

	if flagJSON {
		return writeJSON(report)
	}

	e.section("Trends  " + span(s))
	if s.TrendBasis == period.BasisNone {
		fmt.Println(" Not enough data yet: both 30-day halves need at least one day with samples.")
		return nil
	}

	tbl := output.NewTable("Metric", "Earlier", "Later", "Change", "Trend")
	for _, mt := range report.Metrics {
		tbl.AddRow(
			mt.Metric.DisplayName(),
			output.FormatMetric(mt.Metric, mt.Earlier),
			output.FormatMetric(mt.Metric, mt.Later),
			output.Change(mt.Change, mt.Metric.LowerIsBetter()),
			output.Trend(mt.Trend),
		)
	}
	fmt.Print(indent(tbl.Render()))
	fmt.Println()

	for _, mt := range report.Metrics {
		if mt.Insight != "" {
			fmt.Printf(" %s %s\n", output.StyleBold.Render(mt.Metric.DisplayName()+":"), mt.Insight)
		}
	}
	fmt.Println()
	return nil
}

// metricTrends compares the two monthly halves of a two-month summary.
func metricTrends(s *period.Summary) []metricTrend {
	if len(s.Subperiods) != 2 {
		return nil
	}
	earlier, later := s.Subperiods[0].Averages, s.Subperiods[1].Averages
	out := make([]metricTrend, 0, len(health.AllMetrics))
	for _, m := range health.AllMetrics {
		prev, cur := earlier.Of(m), later.Of(m)
		out = append(out, metricTrend{
			Metric:  m,
			Earlier: prev,
			Later:   cur,
			Change:  trend.PercentChange(prev, cur),
			Trend:   s.Trends.Of(m),
			Insight: insight.Metric(m, cur, prev),
		})
	}
	return out
}
