package app

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/zenscore/internal/acquire"
	"github.com/blackwell-systems/zenscore/internal/store"
)

var importSource string

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-load samples from a CSV file",
	Long: `Import raw samples from a CSV file with the columns

  kind,start,end,value

where start and end are RFC 3339 timestamps (end may be empty for point
readings). A header row is optional. The whole file is rejected if any row
is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importSource, "source", "", "Source label stored with each sample (default: file name)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	samples, err := readSamplesCSV(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	source := importSource
	if source == "" {
		source = filepath.Base(path)
	}
	rows := make([]store.SampleRow, len(samples))
	for i, s := range samples {
		rows[i] = s.Row(source)
	}
	if err := e.db.InsertSamples(rows); err != nil {
		return fmt.Errorf("storing samples: %w", err)
	}

	if flagJSON {
		return writeJSON(map[string]any{"file": path, "imported": len(rows)})
	}
	fmt.Printf("Imported %d sample(s) from %s\n", len(rows), path)
	return nil
}

// readSamplesCSV parses kind,start,end,value records. The first record is
// skipped when it is a header.
func readSamplesCSV(r io.Reader) ([]acquire.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var samples []acquire.Sample
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if first && strings.EqualFold(strings.TrimSpace(rec[0]), "kind") {
			continue
		}
		s, err := parseSampleRecord(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func parseSampleRecord(rec []string) (acquire.Sample, error) {
	kind, err := acquire.ParseKind(rec[0])
	if err != nil {
		return acquire.Sample{}, err
	}
	s := acquire.Sample{Kind: kind}

	if s.Start, err = time.Parse(time.RFC3339, strings.TrimSpace(rec[1])); err != nil {
		return s, fmt.Errorf("parsing start: %w", err)
	}
	s.End = s.Start
	if end := strings.TrimSpace(rec[2]); end != "" {
		if s.End, err = time.Parse(time.RFC3339, end); err != nil {
			return s, fmt.Errorf("parsing end: %w", err)
		}
	}

	raw := strings.TrimSpace(rec[3])
	switch {
	case raw != "":
		if s.Value, err = strconv.ParseFloat(raw, 64); err != nil {
			return s, fmt.Errorf("parsing value %q: %w", raw, err)
		}
	case kind == acquire.KindSleep && s.End.After(s.Start):
		s.Value = s.Hours()
	default:
		return s, fmt.Errorf("missing value for %s", kind)
	}

	return s, s.Validate()
}
