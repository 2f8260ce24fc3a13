package acquire

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/zenscore/internal/health"
)

// DefaultWorkers bounds concurrent fetches when WithWorkers is not given.
const DefaultWorkers = 8

// Collector builds daily snapshots from a Source.
type Collector struct {
	src        Source
	workers    int
	stepWeight float64
	loc        *time.Location
	logger     *log.Logger
	skipEmpty  bool
}

// Option configures a Collector.
type Option func(*Collector)

// WithWorkers sets the maximum number of concurrent fetches.
func WithWorkers(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithStepWeight sets the steps multiplier used for activity load.
func WithStepWeight(w float64) Option {
	return func(c *Collector) {
		if w >= 0 {
			c.stepWeight = w
		}
	}
}

// WithLocation sets the time zone that defines calendar-day boundaries.
func WithLocation(loc *time.Location) Option {
	return func(c *Collector) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithLogger enables warnings and progress lines.
func WithLogger(l *log.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.logger = l
		}
	}
}

// SkipEmptyDays makes Range omit days for which the source returned no
// samples of any kind. Day is unaffected.
func SkipEmptyDays() Option {
	return func(c *Collector) {
		c.skipEmpty = true
	}
}

// NewCollector creates a collector reading from src.
func NewCollector(src Source, opts ...Option) *Collector {
	c := &Collector{
		src:        src,
		workers:    DefaultWorkers,
		stepWeight: DefaultStepWeight,
		loc:        time.Local,
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Day builds the snapshot for the calendar day containing day.
func (c *Collector) Day(ctx context.Context, day time.Time) (health.Snapshot, error) {
	snap, _, err := c.DaySamples(ctx, day)
	return snap, err
}

// DaySamples is like Day and also returns how many raw samples the day had.
// A zero count means no data, as opposed to measurements that are zero.
func (c *Collector) DaySamples(ctx context.Context, day time.Time) (health.Snapshot, int, error) {
	snaps, totals, err := c.collect(ctx, day, day, false)
	if err != nil {
		return health.Snapshot{}, 0, err
	}
	return snaps[0], totals[0], nil
}

// Range builds one snapshot per calendar day from the day containing from
// through the day containing to, both inclusive, oldest first. The first
// failing fetch cancels the rest.
func (c *Collector) Range(ctx context.Context, from, to time.Time) ([]health.Snapshot, error) {
	snaps, _, err := c.collect(ctx, from, to, c.skipEmpty)
	return snaps, err
}

// collect returns the snapshots together with each one's raw sample count.
func (c *Collector) collect(ctx context.Context, from, to time.Time, skipEmpty bool) ([]health.Snapshot, []int, error) {
	first := c.startOfDay(from)
	last := c.startOfDay(to)
	if last.Before(first) {
		return nil, nil, fmt.Errorf("range ends %s before it starts %s",
			last.Format(health.DateLayout), first.Format(health.DateLayout))
	}

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	values := make([]dayValues, len(days))
	counts := make([][numKinds]int, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, day := range days {
		next := day.AddDate(0, 0, 1)
		for k, kind := range Kinds {
			g.Go(func() error {
				samples, err := c.src.Samples(gctx, kind, day, next)
				if err != nil {
					return fmt.Errorf("fetching %s for %s: %w", kind, day.Format(health.DateLayout), err)
				}
				// Each task owns its own slot.
				values[i][k] = reduce(kind, samples)
				counts[i][k] = len(samples)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	snaps := make([]health.Snapshot, 0, len(days))
	totals := make([]int, 0, len(days))
	for i, day := range days {
		total := sum(counts[i][:])
		if total == 0 {
			c.logger.Printf("Warning: no samples for %s", day.Format(health.DateLayout))
			if skipEmpty {
				continue
			}
		}
		snap, err := health.NewSnapshot(day, values[i].metrics(c.stepWeight))
		if err != nil {
			return nil, nil, fmt.Errorf("building snapshot for %s: %w", day.Format(health.DateLayout), err)
		}
		snaps = append(snaps, snap)
		totals = append(totals, total)
	}
	c.logger.Printf("collected %d day(s) from %s to %s", len(days),
		first.Format(health.DateLayout), last.Format(health.DateLayout))
	return snaps, totals, nil
}

func (c *Collector) startOfDay(t time.Time) time.Time {
	return health.Day(t.In(c.loc))
}

func sum(counts []int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}
