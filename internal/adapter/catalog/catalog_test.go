package catalog

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(context.Background(), ":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func grid(t *testing.T, name string, validTime int64) domain.ConvertedGrid {
	t.Helper()
	info, ok := product.Default().Find(name, "")
	require.True(t, ok, name)
	f := &mrms.Field{
		VarName:   name,
		NX:        3,
		NY:        2,
		NZ:        1,
		NWLat:     55,
		NWLon:     -130,
		DX:        0.01,
		DY:        0.01,
		Heights:   []float64{500},
		Radars:    []string{"KEAX", "KTWX"},
		ValidTime: validTime,
		Grid:      make([]float32, 6),
	}
	return domain.NewConvertedGrid("/in/"+name+".bin", f, info, domain.OutputOptions{Dir: "/out"})
}

func TestLoadBatchAndRecent(t *testing.T) {
	c := openTest(t)
	ctx := context.Background()

	grids := []domain.ConvertedGrid{
		grid(t, "CREF", 1000),
		grid(t, "CREF", 3000),
		grid(t, "VIL", 2000),
	}
	require.NoError(t, c.LoadBatch(ctx, grids))

	all, err := c.Recent(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, time.Unix(3000, 0).UTC(), all[0].ValidTime)
	assert.Equal(t, "VIL", all[1].Product)
	assert.Equal(t, time.Unix(1000, 0).UTC(), all[2].ValidTime)

	cref, err := c.Recent(ctx, "CREF", 1)
	require.NoError(t, err)
	require.Len(t, cref, 1)
	e := cref[0]
	assert.Equal(t, grids[1].ID, e.ID)
	assert.Equal(t, 3, e.NX)
	assert.Equal(t, 2, e.NY)
	assert.Equal(t, 1, e.NZ)
	assert.InDelta(t, 55, e.NWLat, 0)
	assert.InDelta(t, -130, e.NWLon, 0)
	assert.Equal(t, []string{"KEAX", "KTWX"}, e.Radars)
	assert.Equal(t, grids[1].OutputPath, e.OutputPath)
	assert.Equal(t, "/in/CREF.bin", e.Source)
}

func TestLoadBatch_UpsertsSameGrid(t *testing.T) {
	c := openTest(t)
	ctx := context.Background()

	first := grid(t, "CREF", 1000)
	require.NoError(t, c.LoadBatch(ctx, []domain.ConvertedGrid{first}))

	again := grid(t, "CREF", 1000)
	again.Source = "/in/replayed.bin"
	require.NoError(t, c.LoadBatch(ctx, []domain.ConvertedGrid{again}))

	rows, err := c.Recent(ctx, "CREF", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, "/in/replayed.bin", rows[0].Source)
}

func TestLoadBatch_Empty(t *testing.T) {
	c := openTest(t)
	require.NoError(t, c.LoadBatch(context.Background(), nil))

	rows, err := c.Recent(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestForecastSecondsStored(t *testing.T) {
	c := openTest(t)
	ctx := context.Background()
	require.NoError(t, c.LoadBatch(ctx, []domain.ConvertedGrid{grid(t, "CREF_30MIN_FCST", 1000)}))

	rows, err := c.Recent(ctx, "CREF_30MIN_FCST", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1800), rows[0].ForecastSeconds)
}

func TestOpen_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	c, err := Open(ctx, path, logger)
	require.NoError(t, err)
	require.NoError(t, c.LoadBatch(ctx, []domain.ConvertedGrid{grid(t, "MEHS", 42)}))
	require.NoError(t, c.Close())

	reopened, err := Open(ctx, path, logger)
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.Recent(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "MEHS", rows[0].Product)
}

func TestLoadBatch_CancelledContext(t *testing.T) {
	c := openTest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.LoadBatch(ctx, []domain.ConvertedGrid{grid(t, "CREF", 1)})
	require.Error(t, err)
}
