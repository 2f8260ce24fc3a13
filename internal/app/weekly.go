package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/zenscore/internal/insight"
	"github.com/blackwell-systems/zenscore/internal/period"
	"github.com/blackwell-systems/zenscore/internal/suggest"
)

var weeklyDate string

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Weekly summary, insight and recommendations",
	Long: `Summarize the week ending today (or --date): average score and metrics,
trends against the previous week, a daily breakdown, a written insight and
the top recommendations.`,
	Args: cobra.NoArgs,
	RunE: runWeekly,
}

func init() {
	weeklyCmd.Flags().StringVar(&weeklyDate, "date", "", "Last day of the week (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(weeklyCmd)
}

type weeklyReport struct {
	Summary         *period.Summary          `json:"summary"`
	Previous        *period.Averages         `json:"previous_averages,omitempty"`
	Insight         string                   `json:"insight"`
	Recommendations []suggest.Recommendation `json:"recommendations"`
}

func runWeekly(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	now, err := parseDay(weeklyDate, e.loc, e.now())
	if err != nil {
		return err
	}

	cur, prev, err := e.weekPair(cmd.Context(), now)
	if err != nil {
		return err
	}

	report := weeklyReport{Summary: cur}
	if prev.IsEmpty() {
		prev = nil
	} else {
		report.Previous = &prev.Averages
	}
	report.Insight = insight.Weekly(cur, prev)
	report.Recommendations = suggest.NewEngine(suggest.WithLimit(e.cfg.Recommendations.Limit)).Generate(cur)

	if flagJSON {
		return writeJSON(report)
	}

	e.section("Weekly Summary  " + span(cur))
	if cur.IsEmpty() {
		fmt.Println(" No samples recorded this week. Use 'zenscore log' or 'zenscore import'.")
		return nil
	}
	renderHeadline(cur)
	renderAverages(cur)
	renderDays(cur, period.LabelWeekday)

	e.section("Insight")
	renderInsight(report.Insight)

	e.section("Recommendations")
	renderRecommendations(report.Recommendations)
	return nil
}
