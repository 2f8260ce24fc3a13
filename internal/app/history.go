package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/output"
)

var historyDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Previously saved daily scores",
	Long:  `List the daily scores recorded by 'zenscore score' over the last N days.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 30, "Number of days to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	if historyDays <= 0 {
		return fmt.Errorf("--days must be positive, got %d", historyDays)
	}

	today := health.Day(e.now())
	rows, err := e.db.DailyScores(today.AddDate(0, 0, -historyDays+1), today)
	if err != nil {
		return fmt.Errorf("querying history: %w", err)
	}

	if flagJSON {
		return writeJSON(rows)
	}

	e.section("Score History")
	if len(rows) == 0 {
		fmt.Println(" No saved scores yet. Run 'zenscore score' to record one.")
		return nil
	}

	tbl := output.NewTable("Day", "Score", "Status", "Sleep", "RHR", "HRV", "Activity")
	for _, r := range rows {
		tbl.AddRow(
			r.Day,
			output.ScoreBar(r.RecoveryScore, 10),
			r.Status,
			output.FormatSleep(r.SleepHours),
			fmt.Sprintf("%.0f", r.RestingHR),
			fmt.Sprintf("%.0f", r.HRV),
			fmt.Sprintf("%.0f", r.ActivityLoad),
		)
	}
	fmt.Print(indent(tbl.Render()))
	return nil
}
