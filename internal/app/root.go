// Package app contains the Cobra command tree for zenscore.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "zenscore",
	Short: "Daily recovery scores and wellness trends from your health data",
	Long: `zenscore turns raw sleep, heart-rate, HRV and activity samples into a
daily 0-100 recovery score, aggregates them into weekly, monthly and
two-month summaries, and explains the trends with plain-language insights
and ranked recommendations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("zenscore", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  log       Record a single health sample")
		fmt.Println("  import    Bulk-load samples from a CSV file")
		fmt.Println("  score     Show a day's recovery score")
		fmt.Println("  weekly    Weekly summary, insight and recommendations")
		fmt.Println("  monthly   Monthly summary with weekly breakdown")
		fmt.Println("  trends    Two-month trends per metric")
		fmt.Println("  suggest   Ranked recommendations for a period")
		fmt.Println("  history   Previously saved daily scores")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/zenscore/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
