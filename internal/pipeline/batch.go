package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	"github.com/couchcryptid/mrms-cf-etl/internal/observability"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of converting one file in a Batch.
type Result struct {
	Path     string
	Grid     domain.ConvertedGrid
	Err      error
	Duration time.Duration
}

// Batch converts and loads files with at most workers conversions in
// flight. Each file is independent: a failure is logged, counted and
// reported in its Result without stopping the others. Results are returned
// in input order.
func Batch(ctx context.Context, conv *Converter, loader BatchLoader, notices []domain.FileNotice, workers int, logger *slog.Logger, metrics *observability.Metrics) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(notices))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, n := range notices {
		g.Go(func() error {
			results[i] = convertOne(ctx, conv, loader, n)
			r := &results[i]
			if r.Err != nil {
				reason := ErrorReason(r.Err)
				metrics.ConvertErrors.WithLabelValues(reason).Inc()
				logger.Error("convert failed", "path", n.Path, "reason", reason, "error", r.Err)
				return nil
			}
			metrics.GridsProduced.Inc()
			logger.Info("converted",
				"path", n.Path,
				"product", r.Grid.Product.CFName,
				"output", r.Grid.OutputPath,
				"duration", r.Duration,
			)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers report through results
	return results
}

func convertOne(ctx context.Context, conv *Converter, loader BatchLoader, n domain.FileNotice) Result {
	start := time.Now()
	res := Result{Path: n.Path}
	res.Grid, res.Err = conv.ConvertFile(ctx, n)
	if res.Err == nil {
		res.Err = loader.LoadBatch(ctx, []domain.ConvertedGrid{res.Grid})
	}
	res.Duration = time.Since(start)
	return res
}
