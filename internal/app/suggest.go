package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/zenscore/internal/period"
	"github.com/blackwell-systems/zenscore/internal/suggest"
)

var (
	suggestPeriod string
	suggestLimit  int
	suggestDate   string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ranked recommendations for a period",
	Long: `Evaluate the recommendation rules against the averages of the chosen
period and print them from highest to lowest priority.`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestPeriod, "period", "week", "Period to evaluate (week, month, two_month)")
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "Maximum number of recommendations (default from config)")
	suggestCmd.Flags().StringVar(&suggestDate, "date", "", "Last day of the period (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	days := period.Kind(suggestPeriod).Days()
	if days == 0 {
		return fmt.Errorf("unknown period %q (want week, month or two_month)", suggestPeriod)
	}

	now, err := parseDay(suggestDate, e.loc, e.now())
	if err != nil {
		return err
	}

	s, err := e.summarize(cmd.Context(), days, now)
	if err != nil {
		return err
	}

	limit := e.cfg.Recommendations.Limit
	if suggestLimit > 0 {
		limit = suggestLimit
	}
	recs := suggest.NewEngine(suggest.WithLimit(limit)).Generate(s)

	if flagJSON {
		return writeJSON(recs)
	}

	e.section("Recommendations  " + span(s))
	if s.IsEmpty() {
		fmt.Println(" No samples recorded in this period; showing general advice.")
		fmt.Println()
	}
	renderRecommendations(recs)
	return nil
}
