package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/insight"
	"github.com/blackwell-systems/zenscore/internal/output"
)

var (
	scoreDate   string
	scoreNoSave bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show a day's recovery score",
	Long: `Compute the recovery score for today (or --date) from the recorded
samples, show the per-metric breakdown, and save it to the score history.`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreDate, "date", "", "Day to score (YYYY-MM-DD, default today)")
	scoreCmd.Flags().BoolVar(&scoreNoSave, "no-save", false, "Do not record the score in history")
	rootCmd.AddCommand(scoreCmd)
}

type scoreReport struct {
	Snapshot health.Snapshot   `json:"snapshot"`
	Insights map[string]string `json:"insights"`
	Saved    bool              `json:"saved"`
}

func runScore(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	day, err := parseDay(scoreDate, e.loc, e.now())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	c := e.collector()
	snap, samples, err := c.DaySamples(ctx, day)
	if err != nil {
		return fmt.Errorf("collecting %s: %w", day.Format(health.DateLayout), err)
	}
	prev, err := c.Day(ctx, day.AddDate(0, 0, -1))
	if err != nil {
		return fmt.Errorf("collecting previous day: %w", err)
	}

	report := scoreReport{Snapshot: snap, Insights: dayInsights(snap, prev)}

	hasData := samples > 0
	if hasData && !scoreNoSave {
		if err := e.db.SaveDailyScore(snap); err != nil {
			return fmt.Errorf("saving score: %w", err)
		}
		report.Saved = true
	}

	if flagJSON {
		return writeJSON(report)
	}

	e.section("Recovery Score  " + day.Format("Mon Jan 2, 2006"))
	if !hasData {
		fmt.Println(" No samples recorded for this day. Use 'zenscore log' or 'zenscore import'.")
		return nil
	}

	fmt.Printf(" %s  %s\n\n", output.ScoreBar(snap.RecoveryScore(), 20), output.Status(snap.Status()))

	tbl := output.NewTable("Metric", "Value", "Insight")
	for _, metric := range health.InputMetrics {
		tbl.AddRow(metric.DisplayName(), output.FormatMetric(metric, metric.Of(snap)), report.Insights[metric.String()])
	}
	fmt.Print(indent(tbl.Render()))
	return nil
}

// dayInsights returns one line per input metric. Sleep is compared with the
// previous day when it has a reading.
func dayInsights(cur, prev health.Snapshot) map[string]string {
	out := make(map[string]string, len(health.InputMetrics))
	for _, m := range health.InputMetrics {
		before := m.Of(prev)
		if before == 0 {
			before = m.Of(cur)
		}
		out[m.String()] = insight.Metric(m, m.Of(cur), before)
	}
	return out
}
