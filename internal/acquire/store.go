package acquire

import (
	"context"
	"time"

	"github.com/blackwell-systems/zenscore/internal/store"
)

// storeSource reads samples recorded in the local database.
type storeSource struct {
	db *store.DB
}

// FromStore returns a Source backed by db.
func FromStore(db *store.DB) Source {
	return &storeSource{db: db}
}

func (s *storeSource) Samples(ctx context.Context, kind Kind, from, to time.Time) ([]Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.db.Samples(string(kind), from, to)
	if err != nil {
		return nil, err
	}
	out := make([]Sample, len(rows))
	for i, r := range rows {
		out[i] = Sample{Kind: Kind(r.Kind), Start: r.Start, End: r.End, Value: r.Value}
	}
	return out, nil
}

// Row converts a sample into its storage form.
func (s Sample) Row(source string) store.SampleRow {
	return store.SampleRow{Kind: string(s.Kind), Start: s.Start, End: s.End, Value: s.Value, Source: source}
}
