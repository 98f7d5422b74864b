package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"regionchart/internal/metrics"
	"regionchart/internal/source"
)

// LoadOptions configures Load and Build. Zero values fall back to the
// defaults of the regional export.
type LoadOptions struct {
	BaseYear int
	Clean    CleanOptions
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.BaseYear == 0 {
		o.BaseYear = DefaultBaseYear
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	o.Clean = o.Clean.withDefaults()
	return o
}

// Load reads key from src and turns it into a Dataset. Read failures come
// back as *InputLoadError; bad content as *MalformedInputError or
// *MalformedRowError.
func Load(ctx context.Context, src source.Source, key string, opts LoadOptions) (*Dataset, error) {
	opts = opts.withDefaults()
	start := time.Now()
	log := opts.Logger.With(zap.String("source", key), zap.String("driver", string(src.Driver())))
	log.Info("loading dataset")

	raw, err := src.Read(ctx, key)
	if err != nil {
		err = &InputLoadError{Source: key, Err: err}
		opts.Metrics.ObserveLoad(time.Since(start), 0, err)
		return nil, err
	}
	log.Debug("source read", zap.Int("bytes", len(raw)), zap.Duration("elapsed", time.Since(start)))

	ds, err := Build(string(raw), key, opts)
	opts.Metrics.ObserveLoad(time.Since(start), recordCount(ds), err)
	if err != nil {
		return nil, err
	}

	log.Info("dataset loaded",
		zap.String("dataset_id", ds.ID.String()),
		zap.Int("records", len(ds.Records)),
		zap.Int("min_year", ds.MinYear),
		zap.Int("max_year", ds.MaxYear),
		zap.Duration("elapsed", time.Since(start)),
	)
	return ds, nil
}

// Build cleans and parses raw text that is already in memory.
func Build(raw, name string, opts LoadOptions) (*Dataset, error) {
	opts = opts.withDefaults()

	cleaned, err := Clean(raw, opts.Clean)
	if err != nil {
		return nil, err
	}
	records, err := ParseRecords(cleaned, opts.BaseYear)
	if err != nil {
		return nil, err
	}
	return NewDataset(name, opts.BaseYear, records), nil
}

func recordCount(ds *Dataset) int {
	if ds == nil {
		return 0
	}
	return len(ds.Records)
}
