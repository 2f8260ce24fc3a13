package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/zenscore/internal/insight"
	"github.com/blackwell-systems/zenscore/internal/output"
	"github.com/blackwell-systems/zenscore/internal/period"
)

var monthlyDate string

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Monthly summary with weekly breakdown",
	Long: `Summarize the 30 days ending today (or --date): averages, week-by-week
breakdown, best and worst days, and how the second half of the month
compares with the first.`,
	Args: cobra.NoArgs,
	RunE: runMonthly,
}

func init() {
	monthlyCmd.Flags().StringVar(&monthlyDate, "date", "", "Last day of the month window (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(monthlyCmd)
}

type monthlyReport struct {
	Summary *period.Summary `json:"summary"`
	Insight string          `json:"insight"`
}

func runMonthly(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	now, err := parseDay(monthlyDate, e.loc, e.now())
	if err != nil {
		return err
	}

	month, err := e.summarize(cmd.Context(), period.MonthDays, now)
	if err != nil {
		return err
	}
	report := monthlyReport{Summary: month, Insight: insight.Monthly(month)}

	if flagJSON {
		return writeJSON(report)
	}

	e.section("Monthly Summary  " + span(month))
	if month.IsEmpty() {
		fmt.Println(" No samples recorded in the last 30 days.")
		return nil
	}
	renderHeadline(month)
	renderAverages(month)

	e.section("Weekly Breakdown")
	renderWeeks(month)

	e.section("Highlights")
	renderExtrema(month)

	e.section("Insight")
	renderInsight(report.Insight)
	return nil
}

func renderWeeks(month *period.Summary) {
	tbl := output.NewTable("Week", "Days", "Score", "Sleep", "HRV", "Trend")
	for i, w := range month.Subperiods {
		tag := output.StyleMuted.Render("n/a")
		if w.TrendBasis != period.BasisNone {
			tag = output.Trend(w.Trends.RecoveryScore)
		}
		score := "-"
		if !w.IsEmpty() {
			score = fmt.Sprintf("%.0f", w.Averages.RecoveryScore)
		}
		tbl.AddRow(
			fmt.Sprintf("%d  %s", i+1, span(w)),
			fmt.Sprintf("%d", len(w.Snapshots)),
			score,
			output.FormatSleep(w.Averages.Sleep),
			fmt.Sprintf("%.0f", w.Averages.HRV),
			tag,
		)
	}
	fmt.Print(indent(tbl.Render()))
	fmt.Println()
}
