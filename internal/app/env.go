package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/blackwell-systems/zenscore/internal/acquire"
	"github.com/blackwell-systems/zenscore/internal/config"
	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/output"
	"github.com/blackwell-systems/zenscore/internal/period"
	"github.com/blackwell-systems/zenscore/internal/store"
)

// env bundles what every command needs once config is loaded.
type env struct {
	cfg    *config.Config
	db     *store.DB
	loc    *time.Location
	logger *log.Logger
}

// setup loads and validates config, configures color, and opens the
// database. The caller must call close.
func setup() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("loading time zone: %w", err)
	}

	if flagNoColor || !cfg.Output.Color || !output.IsTerminal(os.Stdout) {
		output.SetNoColor(true)
	}

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	e := &env{cfg: cfg, db: db, loc: loc}
	if flagVerbose {
		e.logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return e, nil
}

func (e *env) close() {
	if err := e.db.Close(); err != nil {
		log.Printf("Warning: closing database: %v", err)
	}
}

func (e *env) now() time.Time {
	return time.Now().In(e.loc)
}

func (e *env) collector() *acquire.Collector {
	return acquire.NewCollector(acquire.FromStore(e.db),
		acquire.WithWorkers(e.cfg.Acquisition.Workers),
		acquire.WithStepWeight(e.cfg.Acquisition.StepWeight),
		acquire.WithLocation(e.loc),
		acquire.WithLogger(e.logger),
		acquire.SkipEmptyDays(),
	)
}

// summarize collects the window ending on now and aggregates it. Days with
// no samples at all are left out.
func (e *env) summarize(ctx context.Context, windowDays int, now time.Time, opts ...period.Option) (*period.Summary, error) {
	start, end := period.Bounds(windowDays, now)
	snaps, err := e.collector().Range(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("collecting samples: %w", err)
	}
	s, err := period.Aggregate(snaps, windowDays, now, opts...)
	if err != nil {
		return nil, fmt.Errorf("aggregating %d days: %w", windowDays, err)
	}
	return s, nil
}

// weekPair returns the current week compared against the week before it.
func (e *env) weekPair(ctx context.Context, now time.Time) (current, previous *period.Summary, err error) {
	start, _ := period.Bounds(period.WeekDays, now)
	previous, err = e.summarize(ctx, period.WeekDays, start.AddDate(0, 0, -1))
	if err != nil {
		return nil, nil, fmt.Errorf("previous week: %w", err)
	}
	current, err = e.summarize(ctx, period.WeekDays, now, period.WithPrevious(previous))
	if err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

// parseDay parses a YYYY-MM-DD flag value in loc, or returns today when raw
// is empty.
func parseDay(raw string, loc *time.Location, now time.Time) (time.Time, error) {
	if raw == "" {
		return health.Day(now), nil
	}
	t, err := time.ParseInLocation(health.DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", raw, err)
	}
	return t, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func span(s *period.Summary) string {
	return fmt.Sprintf("%s – %s", s.Start.Format("Jan 2"), s.End.Format("Jan 2"))
}
