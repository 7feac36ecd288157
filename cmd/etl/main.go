package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/mrms-cf-etl/internal/adapter/catalog"
	"github.com/couchcryptid/mrms-cf-etl/internal/adapter/gridfile"
	httpadapter "github.com/couchcryptid/mrms-cf-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/mrms-cf-etl/internal/adapter/kafka"
	"github.com/couchcryptid/mrms-cf-etl/internal/config"
	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	"github.com/couchcryptid/mrms-cf-etl/internal/observability"
	"github.com/couchcryptid/mrms-cf-etl/internal/pipeline"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	table := product.Default()
	if cfg.ProductTablePath != "" {
		table, err = product.LoadFile(cfg.ProductTablePath)
		if err != nil {
			logger.Error("failed to load product table", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("product table loaded", "entries", table.Len(), "path", cfg.ProductTablePath)
	lookup := product.NewCached(table, cfg.ProductCacheSize, func(result string) {
		metrics.ProductCache.WithLabelValues(result).Inc()
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loaders := pipeline.FanoutLoader{gridfile.NewWriter(logger)}

	// The catalog is optional (CATALOG_PATH).
	var grids httpadapter.GridLister
	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.Open(ctx, cfg.CatalogPath, logger)
		if err != nil {
			logger.Error("failed to open catalog", "error", err)
			os.Exit(1)
		}
		loaders = append(loaders, cat)
		grids = cat
	} else {
		logger.Info("grid catalog disabled")
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	loaders = append(loaders, writer)

	converter := pipeline.NewConverter(lookup, domain.OutputOptions{
		Dir:      cfg.OutputDir,
		FAA:      cfg.FAAOutput,
		Compress: cfg.CompressOutput,
	}, cfg.ByteSwap, logger, metrics)

	p := pipeline.New(reader, converter, loaders, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, grids, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	pipelineDone := make(chan struct{})
	go func() {
		defer close(pipelineDone)
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	closers := []namedCloser{{"kafka reader", reader}, {"kafka writer", writer}}
	if cat != nil {
		closers = append(closers, namedCloser{"catalog", cat})
	}
	drainAndClose(shutdownCtx, logger, pipelineDone, closers)

	logger.Info("shutdown complete")
}

type namedCloser struct {
	name string
	c    io.Closer
}

// drainAndClose waits for the pipeline to return, or for ctx to expire, and
// then closes the adapters in order. Sinks stay open until the in-flight
// batch has been loaded.
func drainAndClose(ctx context.Context, logger *slog.Logger, pipelineDone <-chan struct{}, closers []namedCloser) {
	select {
	case <-pipelineDone:
	case <-ctx.Done():
		logger.Warn("pipeline did not stop before shutdown timeout")
	}
	for _, nc := range closers {
		if err := nc.c.Close(); err != nil {
			logger.Error("close error", "adapter", nc.name, "error", err)
		}
	}
}
