package pipeline_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// fixtureHeader is a 3x2 single-level composite reflectivity grid valid at
// 2013-07-04 18:30:00 UTC.
func fixtureHeader(name, unit string) *mrms.FileHeader {
	return &mrms.FileHeader{
		Year:         2013,
		Month:        7,
		Day:          4,
		Hour:         18,
		Minute:       30,
		NX:           3,
		NY:           2,
		NZ:           1,
		MapScale:     1000,
		NWLonScaled:  -97000,
		NWLatScaled:  38000,
		DXScaled:     10,
		DYScaled:     10,
		DXYScale:     1000,
		Heights:      []int32{500},
		HeightScale:  1,
		VarName:      name,
		VarUnit:      unit,
		VarScale:     10,
		MissingValue: -999,
		Radars:       []string{"KEAX", "KTWX"},
	}
}

// fixtureSamples are stored south-first: row 0 is the southern edge.
var fixtureSamples = []int16{10, 20, 30, 40, 50, 60}

// fixtureGrid is fixtureSamples unscaled and flipped north-first.
var fixtureGrid = []float32{4, 5, 6, 1, 2, 3}

func writeFixture(t *testing.T, dir, file string, h *mrms.FileHeader, swap, compress bool) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, mrms.Encode(&buf, h, fixtureSamples, swap))

	data := buf.Bytes()
	if compress {
		var gz bytes.Buffer
		zw := gzip.NewWriter(&gz)
		_, err := zw.Write(data)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		data = gz.Bytes()
	}
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
