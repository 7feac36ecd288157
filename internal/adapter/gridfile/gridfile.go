// Package gridfile writes converted grids to disk as self-describing files:
// one JSON header line followed by little-endian float32 samples, the whole
// stream gzip-compressed when the output path ends in ".gz".
package gridfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/couchcryptid/mrms-cf-etl/internal/source"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
)

// Format identifies the file layout in the header line.
const Format = "mrms-cf-grid/1"

// ErrBadHeader is returned when a file does not start with a grid header.
var ErrBadHeader = errors.New("gridfile: invalid header")

// Header is the metadata line at the top of every grid file. Attribute
// names follow CF conventions.
type Header struct {
	Format       string             `json:"format"`
	ID           string             `json:"id"`
	Variable     string             `json:"variable"`
	LongName     string             `json:"long_name"`
	Units        string             `json:"units"`
	Dimensions   []domain.Dimension `json:"dimensions"`
	Time         domain.CFTime      `json:"time"`
	ValidTime    time.Time          `json:"valid_time"`
	NWLat        float64            `json:"nw_lat"`
	NWLon        float64            `json:"nw_lon"`
	DX           float64            `json:"lat_lon_grid_spacing_lon"`
	DY           float64            `json:"lat_lon_grid_spacing_lat"`
	Heights      []float64          `json:"heights"`
	MissingValue float32            `json:"missing_value"`
	RangeFolded  float32            `json:"range_folded_value"`
	Radars       []string           `json:"radars,omitempty"`
	Source       string             `json:"source"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Cells is the number of samples that follow the header.
func (h Header) Cells() int {
	n := 1
	for _, d := range h.Dimensions {
		n *= d.Size
	}
	return n
}

// NewHeader describes a converted grid.
func NewHeader(g domain.ConvertedGrid) Header {
	f := g.Field
	return Header{
		Format:       Format,
		ID:           g.ID,
		Variable:     g.Product.CFName,
		LongName:     g.Product.CFLongName,
		Units:        g.Product.OutputUnit(),
		Dimensions:   g.Dimensions(),
		Time:         g.Time,
		ValidTime:    f.Time(),
		NWLat:        f.NWLat,
		NWLon:        f.NWLon,
		DX:           f.DX,
		DY:           f.DY,
		Heights:      f.Heights,
		MissingValue: float32(f.MissingValue),
		RangeFolded:  g.RangeFolded,
		Radars:       f.Radars,
		Source:       g.Source,
		CreatedAt:    g.ConvertedAt,
	}
}

// Writer stores grids under their OutputPath. It implements the pipeline's
// batch loader.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a grid file writer.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// LoadBatch writes every grid in order and stops at the first failure.
func (w *Writer) LoadBatch(ctx context.Context, grids []domain.ConvertedGrid) error {
	for i := range grids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := w.Write(grids[i]); err != nil {
			return err
		}
	}
	return nil
}

// Write creates the grid's directory and file and returns the number of
// bytes stored. The file appears under its final name only once complete.
func (w *Writer) Write(g domain.ConvertedGrid) (int64, error) {
	dir := filepath.Dir(g.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".grid-*")
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after rename

	cw := &countingWriter{w: tmp}
	if err := Encode(cw, g, strings.HasSuffix(g.OutputPath, ".gz")); err != nil {
		tmp.Close() //nolint:errcheck // reporting the encode error
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), g.OutputPath); err != nil {
		return 0, fmt.Errorf("rename output file: %w", err)
	}

	w.logger.Info("grid written",
		"path", g.OutputPath,
		"product", g.Product.CFName,
		"cells", humanize.Comma(int64(len(g.Field.Grid))),
		"size", humanize.Bytes(uint64(cw.n)),
	)
	return cw.n, nil
}

// Encode writes the header line and samples to out.
func Encode(out io.Writer, g domain.ConvertedGrid, compress bool) error {
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(out)
		gz.Name = filepath.Base(strings.TrimSuffix(g.OutputPath, ".gz"))
		gz.ModTime = g.ConvertedAt
		out = gz
	}
	bw := bufio.NewWriterSize(out, 64<<10)

	h := NewHeader(g)
	if h.Cells() != len(g.Field.Grid) {
		return fmt.Errorf("gridfile: %d samples for %d cells", len(g.Field.Grid), h.Cells())
	}
	line, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode grid header: %w", err)
	}
	bw.Write(line)     //nolint:errcheck // sticky; checked at Flush
	bw.WriteByte('\n') //nolint:errcheck // sticky; checked at Flush

	var buf [4]byte
	for _, v := range g.Field.Grid {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		bw.Write(buf[:]) //nolint:errcheck // sticky; checked at Flush
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("finish gzip stream: %w", err)
		}
	}
	return nil
}

// ReadFile opens a grid file, compressed or not.
func ReadFile(path string) (Header, []float32, error) {
	st, err := source.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer st.Close()
	return Decode(st)
}

// Decode reads a header line and its samples from r.
func Decode(r io.Reader) (Header, []float32, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	var h Header
	if err := json.Unmarshal(bytes.TrimSpace(line), &h); err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if h.Format != Format {
		return Header{}, nil, fmt.Errorf("%w: format %q", ErrBadHeader, h.Format)
	}

	if err := checkDimensions(h.Dimensions); err != nil {
		return Header{}, nil, err
	}

	// Grow with the samples actually present rather than the declared count.
	n := h.Cells()
	data := make([]float32, 0, min(n, readChunk))
	var buf [4]byte
	for len(data) < n {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return Header{}, nil, fmt.Errorf("read sample %d of %d: %w", len(data), n, err)
		}
		data = append(data, math.Float32frombits(binary.LittleEndian.Uint32(buf[:])))
	}
	return h, data, nil
}

// readChunk caps the initial sample buffer in Decode.
const readChunk = 64 << 10

// maxCells bounds the product of the dimension sizes.
const maxCells = mrms.MaxColumns * mrms.MaxRows * mrms.MaxLevels

func checkDimensions(dims []domain.Dimension) error {
	if len(dims) == 0 {
		return fmt.Errorf("%w: no dimensions", ErrBadHeader)
	}
	cells := 1
	for _, d := range dims {
		if d.Size < 1 || d.Size > maxCells/cells {
			return fmt.Errorf("%w: dimension %s=%d", ErrBadHeader, d.Name, d.Size)
		}
		cells *= d.Size
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
