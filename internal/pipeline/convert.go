package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/couchcryptid/mrms-cf-etl/internal/observability"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
	"github.com/couchcryptid/mrms-cf-etl/internal/source"
)

// Converter implements Transformer: it opens the announced file, decodes it
// and matches it to a product.
type Converter struct {
	lookup      product.Lookup
	opts        domain.OutputOptions
	defaultSwap bool
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewConverter creates a Converter. defaultSwap applies to notices that do
// not say whether the file needs byte swapping.
func NewConverter(lookup product.Lookup, opts domain.OutputOptions, defaultSwap bool, logger *slog.Logger, metrics *observability.Metrics) *Converter {
	return &Converter{
		lookup:      lookup,
		opts:        opts,
		defaultSwap: defaultSwap,
		logger:      logger,
		metrics:     metrics,
	}
}

func (c *Converter) Convert(ctx context.Context, raw domain.RawEvent) (domain.ConvertedGrid, error) {
	notice, err := domain.ParseFileNotice(raw, c.defaultSwap)
	if err != nil {
		return domain.ConvertedGrid{}, err
	}
	return c.ConvertFile(ctx, notice)
}

// ConvertFile decodes one MRMS file. The first error wins; nothing is
// retried or guessed.
func (c *Converter) ConvertFile(ctx context.Context, notice domain.FileNotice) (domain.ConvertedGrid, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConvertedGrid{}, err
	}

	start := time.Now()
	field, err := decodeFile(notice)
	if err != nil {
		return domain.ConvertedGrid{}, err
	}
	c.metrics.DecodeDuration.Observe(time.Since(start).Seconds())
	c.metrics.DecodedCells.Add(float64(len(field.Grid)))

	field.VarName = product.Normalize(field.VarName)
	field.VarUnit = product.Normalize(field.VarUnit)
	info, ok := c.lookup.Find(field.VarName, field.VarUnit)
	if !ok {
		return domain.ConvertedGrid{}, fmt.Errorf("%s: %w: name=%q unit=%q",
			notice.Path, product.ErrUnknownProduct, field.VarName, field.VarUnit)
	}

	g := domain.NewConvertedGrid(notice.Path, field, info, c.opts)
	c.logger.Debug("file decoded",
		"path", notice.Path,
		"product", info.CFName,
		"nx", field.NX,
		"ny", field.NY,
		"nz", field.NZ,
		"valid_time", field.Time(),
		"radars", len(field.Radars),
	)
	return g, nil
}

func decodeFile(notice domain.FileNotice) (*mrms.Field, error) {
	st, err := source.Open(notice.Path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	field, err := mrms.Decode(st, notice.Swap)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", notice.Path, err)
	}
	return field, nil
}

// ErrorReason maps a conversion error to the metric label used for it.
func ErrorReason(err error) string {
	switch {
	case errors.Is(err, mrms.ErrStreamOpen):
		return "open"
	case errors.Is(err, mrms.ErrTruncated):
		return "truncated"
	case errors.Is(err, mrms.ErrInvalidDimension):
		return "dimension"
	case errors.Is(err, mrms.ErrZeroScale):
		return "zero_scale"
	case errors.Is(err, mrms.ErrInvalidCount):
		return "count"
	case errors.Is(err, product.ErrUnknownProduct):
		return "unknown_product"
	case errors.Is(err, domain.ErrEmptyNotice):
		return "notice"
	default:
		return "other"
	}
}
