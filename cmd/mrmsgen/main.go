// Command mrmsgen writes a synthetic MRMS Cartesian binary file for fixtures
// and demos. The grid holds a single storm cell centred on the domain with a
// ring of missing values along the edges, so output is reproducible for a
// given set of flags.
//
// Usage:
//
//	go run ./cmd/mrmsgen \
//	  -out testdata/CREF.bin.gz -gzip \
//	  -product CREF -unit dBZ -nx 700 -ny 350
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"

	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
)

const (
	mapScale    = 1000
	dxyScale    = 100000
	heightScale = 1
)

type options struct {
	out      string
	name     string
	unit     string
	nx, ny   int
	nz       int
	valid    time.Time
	nwLon    float64
	nwLat    float64
	cellDeg  float64
	scale    int
	missing  int
	peak     float64
	radars   []string
	swap     bool
	compress bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the synthetic MRMS file")
	name := flag.String("product", "CREF", "MRMS variable name")
	unit := flag.String("unit", "dBZ", "MRMS variable unit")
	nx := flag.Int("nx", 70, "number of columns")
	ny := flag.Int("ny", 35, "number of rows")
	nz := flag.Int("nz", 1, "number of levels")
	valid := flag.String("time", "2013-07-04T18:30:00Z", "valid time (RFC 3339)")
	nwLon := flag.Float64("nw-lon", -100.0, "north-west corner longitude")
	nwLat := flag.Float64("nw-lat", 40.0, "north-west corner latitude")
	cell := flag.Float64("cell", 0.01, "cell size in degrees")
	scale := flag.Int("scale", 10, "variable scale")
	missing := flag.Int("missing", -999, "missing value (stored)")
	peak := flag.Float64("peak", 65, "peak value at the cell centre (unscaled)")
	radars := flag.String("radars", "KTLX,KINX,KVNX", "comma-separated radar ids")
	swap := flag.Bool("swap", false, "write big-endian")
	compress := flag.Bool("gzip", false, "gzip the output")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	t, err := time.Parse(time.RFC3339, *valid)
	if err != nil {
		return fmt.Errorf("parse -time: %w", err)
	}

	opts := options{
		out:      *out,
		name:     *name,
		unit:     *unit,
		nx:       *nx,
		ny:       *ny,
		nz:       *nz,
		valid:    t.UTC(),
		nwLon:    *nwLon,
		nwLat:    *nwLat,
		cellDeg:  *cell,
		scale:    *scale,
		missing:  *missing,
		peak:     *peak,
		radars:   splitRadars(*radars),
		swap:     *swap,
		compress: *compress,
	}

	n, err := generate(opts)
	if err != nil {
		return err
	}
	log.Printf("wrote %s: %s (%dx%dx%d %s [%s] at %s)", opts.out, humanize.Bytes(uint64(n)),
		opts.nx, opts.ny, opts.nz, opts.name, opts.unit, opts.valid.Format(time.RFC3339))
	return nil
}

func splitRadars(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func header(o options) *mrms.FileHeader {
	heights := make([]int32, o.nz)
	for k := range heights {
		heights[k] = int32(500 + 250*k)
	}
	return &mrms.FileHeader{
		Year:         int32(o.valid.Year()),
		Month:        int32(o.valid.Month()),
		Day:          int32(o.valid.Day()),
		Hour:         int32(o.valid.Hour()),
		Minute:       int32(o.valid.Minute()),
		Second:       int32(o.valid.Second()),
		NX:           int32(o.nx),
		NY:           int32(o.ny),
		NZ:           int32(o.nz),
		MapScale:     mapScale,
		NWLonScaled:  int32(math.Round(o.nwLon * mapScale)),
		NWLatScaled:  int32(math.Round(o.nwLat * mapScale)),
		DXScaled:     int32(math.Round(o.cellDeg * dxyScale)),
		DYScaled:     int32(math.Round(o.cellDeg * dxyScale)),
		DXYScale:     dxyScale,
		Heights:      heights,
		HeightScale:  heightScale,
		VarName:      o.name,
		VarUnit:      o.unit,
		VarScale:     int32(o.scale),
		MissingValue: int32(o.missing),
		Radars:       o.radars,
	}
}

// samples builds the payload in stored (south-first) order: a cone peaking
// at the domain centre, fading with height, with missing edges.
func samples(o options) []int16 {
	out := make([]int16, o.nx*o.ny*o.nz)
	cx, cy := float64(o.nx-1)/2, float64(o.ny-1)/2
	radius := math.Max(math.Min(cx, cy), 1)
	for k := 0; k < o.nz; k++ {
		fade := 1 - float64(k)/float64(o.nz+1)
		for j := 0; j < o.ny; j++ {
			for i := 0; i < o.nx; i++ {
				idx := k*o.nx*o.ny + j*o.nx + i
				if i == 0 || j == 0 || i == o.nx-1 || j == o.ny-1 {
					out[idx] = int16(o.missing)
					continue
				}
				d := math.Hypot(float64(i)-cx, float64(j)-cy) / radius
				v := math.Max(o.peak*(1-d), 0) * fade
				out[idx] = int16(math.Round(v * float64(o.scale)))
			}
		}
	}
	return out
}

func generate(o options) (int64, error) {
	h := header(o)
	if err := h.Validate(); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(o.out), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(o.out)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", o.out, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	var w io.Writer = bw
	var zw *gzip.Writer
	if o.compress {
		zw = gzip.NewWriter(bw)
		w = zw
	}
	if err := mrms.Encode(w, h, samples(o), o.swap); err != nil {
		return 0, fmt.Errorf("encode: %w", err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return 0, fmt.Errorf("gzip close: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flush: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return st.Size(), f.Close()
}
