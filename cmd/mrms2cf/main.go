// Command mrms2cf converts MRMS Cartesian binary files into CF grid files
// without Kafka. Each file is converted independently; the exit status is
// non-zero when any file fails.
//
// Usage:
//
//	go run ./cmd/mrms2cf [-swap] [-faa] [-out dir] [-workers n] [-nocompress] \
//	  [-products table.yaml] [-catalog grids.db] file...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/couchcryptid/mrms-cf-etl/internal/adapter/catalog"
	"github.com/couchcryptid/mrms-cf-etl/internal/adapter/gridfile"
	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	"github.com/couchcryptid/mrms-cf-etl/internal/observability"
	"github.com/couchcryptid/mrms-cf-etl/internal/pipeline"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
)

type options struct {
	swap       bool
	faa        bool
	outDir     string
	workers    int
	noCompress bool
	products   string
	catalog    string
	logLevel   string
	files      []string
}

func main() {
	var o options
	flag.BoolVar(&o.swap, "swap", false, "input files are big-endian")
	flag.BoolVar(&o.faa, "faa", false, "add a leading time dimension of size 1")
	flag.StringVar(&o.outDir, "out", "./output", "output directory")
	flag.IntVar(&o.workers, "workers", 4, "files converted concurrently")
	flag.BoolVar(&o.noCompress, "nocompress", false, "do not gzip output files")
	flag.StringVar(&o.products, "products", "", "optional YAML product table")
	flag.StringVar(&o.catalog, "catalog", "", "optional sqlite catalog to record conversions in")
	flag.StringVar(&o.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()
	o.files = flag.Args()

	if len(o.files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code, err := run(ctx, o)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mrms2cf:", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run(ctx context.Context, o options) (int, error) {
	logger := observability.NewCLILogger(o.logLevel)
	metrics := observability.NewUnregisteredMetrics()

	table := product.Default()
	if o.products != "" {
		var err error
		if table, err = product.LoadFile(o.products); err != nil {
			return 1, err
		}
	}
	lookup := product.NewCached(table, 64, func(result string) {
		metrics.ProductCache.WithLabelValues(result).Inc()
	})

	loaders := pipeline.FanoutLoader{gridfile.NewWriter(logger)}
	if o.catalog != "" {
		cat, err := catalog.Open(ctx, o.catalog, logger)
		if err != nil {
			return 1, err
		}
		defer cat.Close()
		loaders = append(loaders, cat)
	}

	conv := pipeline.NewConverter(lookup, domain.OutputOptions{
		Dir:      o.outDir,
		FAA:      o.faa,
		Compress: !o.noCompress,
	}, o.swap, logger, metrics)

	notices := make([]domain.FileNotice, len(o.files))
	for i, f := range o.files {
		notices[i] = domain.FileNotice{Path: f, Swap: o.swap}
	}

	start := time.Now()
	results := pipeline.Batch(ctx, conv, loaders, notices, o.workers, logger, metrics)
	return summarize(results, time.Since(start)), nil
}

// summarize prints one line per file and returns the exit code.
func summarize(results []pipeline.Result, elapsed time.Duration) int {
	var failed int
	var cells int64
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", r.Path, r.Err)
			continue
		}
		f := r.Grid.Field
		cells += int64(f.NX * f.NY * f.NZ)
		fmt.Printf("ok   %s -> %s (%s, %dx%dx%d, %s)\n",
			r.Path, r.Grid.OutputPath, r.Grid.Product.CFName, f.NX, f.NY, f.NZ, r.Duration.Round(time.Millisecond))
	}

	fmt.Printf("\n%d converted, %d failed, %s cells in %s\n",
		len(results)-failed, failed, humanize.Comma(cells), elapsed.Round(time.Millisecond))
	if failed > 0 {
		return 1
	}
	return 0
}
