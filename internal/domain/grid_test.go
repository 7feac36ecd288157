package domain

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testValidTime = 1372962600 // 2013-07-04 18:30:00 UTC

func testField(nz int, heights ...float64) *mrms.Field {
	return &mrms.Field{
		VarName:      "mosaicked_refl",
		VarUnit:      "dbz",
		Radars:       []string{"KEAX", "KTWX"},
		VarScale:     10,
		MissingValue: -999,
		NWLon:        -97,
		NWLat:        38,
		NX:           2,
		NY:           2,
		NZ:           nz,
		DX:           0.01,
		DY:           0.01,
		Heights:      heights,
		ValidTime:    testValidTime,
		Grid:         make([]float32, 4*nz),
	}
}

func findProduct(t *testing.T, name string) product.Info {
	t.Helper()
	info, ok := product.Default().Find(name, "")
	require.True(t, ok, name)
	return info
}

func TestNewCFTime(t *testing.T) {
	t.Run("analysis uses epoch units", func(t *testing.T) {
		ct := NewCFTime(testField(1, 500), findProduct(t, "CREF"))
		assert.Equal(t, EpochTimeUnits, ct.Units)
		assert.Equal(t, int64(testValidTime), ct.Value)
	})

	t.Run("forecast is referenced to valid time", func(t *testing.T) {
		ct := NewCFTime(testField(1, 500), findProduct(t, "CREF_30MIN_FCST"))
		assert.Equal(t, "seconds since 2013-07-04 18:30:00", ct.Units)
		assert.Equal(t, int64(1800), ct.Value)
	})

	t.Run("3D forecast falls back to epoch", func(t *testing.T) {
		ct := NewCFTime(testField(2, 500, 750), findProduct(t, "CREF_30MIN_FCST"))
		assert.Equal(t, EpochTimeUnits, ct.Units)
	})
}

func TestRangeFoldedValue(t *testing.T) {
	assert.InDelta(t, -1000, RangeFoldedValue(-999), 0)
	assert.InDelta(t, -100, RangeFoldedValue(-99), 0)
}

func TestHeightDir(t *testing.T) {
	cases := []struct {
		height float64
		want   string
	}{
		{500, "00.50"},
		{1000, "01.00"},
		{9750, "09.75"},
		{10000, "10.00"},
		{12000, "12.00"},
	}
	for _, tc := range cases {
		got, ok := HeightDir("MREFL", testField(1, tc.height))
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "height %v", tc.height)
	}

	_, ok := HeightDir("CREF", testField(1, 500))
	assert.False(t, ok, "2D product has no height dir")

	_, ok = HeightDir("MREFL", testField(2, 500, 750))
	assert.False(t, ok, "full 3D mosaic has no height dir")
}

func TestOutputPath(t *testing.T) {
	f := testField(1, 500)

	assert.Equal(t, filepath.Join("out", "CREF", "20130704-183000.grid.gz"), OutputPath("out", "CREF", f, true))
	assert.Equal(t, filepath.Join("out", "CREF", "20130704-183000.grid"), OutputPath("out", "CREF", f, false))
	assert.Equal(t, filepath.Join("out", "MREFL", "00.50", "20130704-183000.grid"), OutputPath("out", "MREFL", f, false))
}

func TestGridID(t *testing.T) {
	a := GridID("MREFL", testField(1, 500))
	b := GridID("MREFL", testField(1, 500))
	assert.Equal(t, a, b, "same inputs give same id")
	assert.Len(t, a, 36)

	assert.NotEqual(t, a, GridID("MREFL", testField(1, 750)))
	assert.NotEqual(t, a, GridID("CREF", testField(1, 500)))

	later := testField(1, 500)
	later.ValidTime += 120
	assert.NotEqual(t, a, GridID("MREFL", later))
}

func TestNewConvertedGrid(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { SetClock(nil) })

	f := testField(1, 500)
	info := findProduct(t, "mosaicked_refl")
	g := NewConvertedGrid("/data/in.bin.gz", f, info, OutputOptions{Dir: "/out", FAA: true, Compress: true})

	assert.Equal(t, GridID("MREFL", f), g.ID)
	assert.Equal(t, "/data/in.bin.gz", g.Source)
	assert.Equal(t, filepath.Join("/out", "MREFL", "00.50", "20130704-183000.grid.gz"), g.OutputPath)
	assert.InDelta(t, -1000, g.RangeFolded, 0)
	assert.Equal(t, fixed, g.ConvertedAt)
	assert.True(t, g.FAA)
}

func TestDimensions(t *testing.T) {
	g := ConvertedGrid{Field: testField(1, 500)}
	assert.Equal(t, []Dimension{{"lat", 2}, {"lon", 2}}, g.Dimensions())

	g.FAA = true
	assert.Equal(t, []Dimension{{"time", 1}, {"lat", 2}, {"lon", 2}}, g.Dimensions())

	g.Field = testField(3, 500, 750, 1000)
	assert.Equal(t, []Dimension{{"time", 1}, {"ht", 3}, {"lat", 2}, {"lon", 2}}, g.Dimensions())
}

func TestSerializeGridEvent(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })

	g := NewConvertedGrid("in.bin", testField(1, 500), findProduct(t, "SHI"), OutputOptions{Dir: "out"})
	out, err := SerializeGridEvent(g)
	require.NoError(t, err)

	assert.Equal(t, []byte(g.ID), out.Key)
	assert.Equal(t, "SHI", out.Headers["product"])
	assert.Equal(t, "2013-07-04T18:30:00Z", out.Headers["valid_time"])

	var ev GridEvent
	require.NoError(t, json.Unmarshal(out.Value, &ev))
	assert.Equal(t, g.ID, ev.ID)
	assert.Equal(t, "Severe Hail Index", ev.LongName)
	assert.Empty(t, ev.Unit, "unit none is written empty")
	assert.Equal(t, "mosaicked_refl", ev.SourceVar)
	assert.Equal(t, []string{"KEAX", "KTWX"}, ev.Radars)
	assert.InDelta(t, -999, ev.MissingValue, 0)
	assert.InDelta(t, -1000, ev.RangeFolded, 0)
	assert.Equal(t, EpochTimeUnits, ev.TimeUnits)
	assert.Equal(t, int64(testValidTime), ev.TimeValue)
}
