package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/zenscore/internal/acquire"
	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/output"
)

var (
	logDate   string
	logStart  string
	logEnd    string
	logSource string
)

var logCmd = &cobra.Command{
	Use:   "log <kind> [value]",
	Short: "Record a single health sample",
	Long: `Record one raw sample in the zenscore database. Kinds:

  sleep          hours, or an interval given with --start and --end
  resting_hr     beats per minute
  hrv            heart-rate variability (SDNN), milliseconds
  active_energy  kilocalories
  steps          step count

Examples:
  zenscore log sleep 7.5
  zenscore log sleep --start 2026-03-09T23:10:00+01:00 --end 2026-03-10T06:40:00+01:00
  zenscore log resting_hr 58 --date 2026-03-10
  zenscore log steps 8400`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Day the sample belongs to (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVar(&logStart, "start", "", "Sample start time (RFC 3339)")
	logCmd.Flags().StringVar(&logEnd, "end", "", "Sample end time (RFC 3339)")
	logCmd.Flags().StringVar(&logSource, "source", "manual", "Source label stored with the sample")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	sample, err := buildLogSample(args, e.now(), e.loc)
	if err != nil {
		return err
	}

	row := sample.Row(logSource)
	id, err := e.db.InsertSample(&row)
	if err != nil {
		return fmt.Errorf("inserting sample: %w", err)
	}

	if flagJSON {
		return writeJSON(map[string]any{
			"id":    id,
			"kind":  sample.Kind,
			"start": sample.Start,
			"end":   sample.End,
			"value": sample.Value,
		})
	}

	value := strconv.FormatFloat(sample.Value, 'f', -1, 64)
	if sample.Kind == acquire.KindSleep {
		value = output.FormatSleep(sample.Hours())
	}
	fmt.Printf("Logged %s = %s on %s\n", sample.Kind, value, sample.Start.In(e.loc).Format(health.DateLayout))
	return nil
}

// buildLogSample turns the log command's arguments and flags into a
// validated sample.
func buildLogSample(args []string, now time.Time, loc *time.Location) (acquire.Sample, error) {
	kind, err := acquire.ParseKind(args[0])
	if err != nil {
		return acquire.Sample{}, err
	}

	s := acquire.Sample{Kind: kind}

	switch {
	case logStart != "":
		if s.Start, err = time.Parse(time.RFC3339, logStart); err != nil {
			return s, fmt.Errorf("parsing --start: %w", err)
		}
		s.End = s.Start
		if logEnd != "" {
			if s.End, err = time.Parse(time.RFC3339, logEnd); err != nil {
				return s, fmt.Errorf("parsing --end: %w", err)
			}
		}
	case logDate != "":
		day, err := parseDay(logDate, loc, now)
		if err != nil {
			return s, err
		}
		s.Start = day.Add(12 * time.Hour)
		s.End = s.Start
	default:
		s.Start = now
		s.End = now
	}

	switch {
	case len(args) == 2:
		if s.Value, err = strconv.ParseFloat(args[1], 64); err != nil {
			return s, fmt.Errorf("parsing value %q: %w", args[1], err)
		}
	case kind == acquire.KindSleep && s.End.After(s.Start):
		s.Value = s.Hours()
	default:
		return s, fmt.Errorf("a value is required for %s", kind)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
