package mrms

import (
	"io"
	"time"
)

// Field is a fully decoded MRMS grid. Grid is north-first: row 0 of every
// level is the northern edge and index k*NX*NY + j*NX + i addresses level k,
// row j, column i.
type Field struct {
	VarName      string
	VarUnit      string
	Radars       []string
	VarScale     int32
	MissingValue int32
	NWLon        float64
	NWLat        float64
	NX, NY, NZ   int
	DX, DY       float64
	Heights      []float64
	ValidTime    int64

	// PayloadOffset is the byte offset at which the samples started.
	PayloadOffset int64
	Grid          []float32
}

// Time returns the valid time as a UTC time.Time.
func (f *Field) Time() time.Time {
	return time.Unix(f.ValidTime, 0).UTC()
}

// Is3D reports whether the field has more than one vertical level.
func (f *Field) Is3D() bool { return f.NZ > 1 }

// Raw is the undecorated result of reading a file: the header and the
// samples in stored, south-first order.
type Raw struct {
	Header  *RawHeader
	Samples []int16
}

// DecodeRaw reads the header and payload without unscaling or reorienting.
// It performs no I/O beyond sequential reads from r.
func DecodeRaw(r io.Reader, swap bool) (*Raw, error) {
	s := newStream(r, swap)
	h, err := readHeader(s)
	if err != nil {
		return nil, err
	}
	samples, err := readSamples(s, h.Cells())
	if err != nil {
		return nil, err
	}
	return &Raw{Header: h, Samples: samples}, nil
}

// Decode reads one MRMS Cartesian binary product from r and returns it with
// the grid unscaled and reoriented north-first. It holds no state between
// calls and may run concurrently on distinct readers.
func Decode(r io.Reader, swap bool) (*Field, error) {
	raw, err := DecodeRaw(r, swap)
	if err != nil {
		return nil, err
	}
	return raw.Field()
}

// Field unscales and reorients the samples into a Field.
func (raw *Raw) Field() (*Field, error) {
	h := raw.Header
	nx, ny, nz := int(h.NX), int(h.NY), int(h.NZ)
	grid, err := Orient(raw.Samples, nx, ny, nz, h.VarScale)
	if err != nil {
		return nil, err
	}
	return &Field{
		VarName:       h.VarName,
		VarUnit:       h.VarUnit,
		Radars:        h.Radars,
		VarScale:      h.VarScale,
		MissingValue:  h.MissingValue,
		NWLon:         h.NWLon,
		NWLat:         h.NWLat,
		NX:            nx,
		NY:            ny,
		NZ:            nz,
		DX:            h.DX,
		DY:            h.DY,
		Heights:       h.Heights,
		ValidTime:     h.EpochSeconds(),
		PayloadOffset: h.PayloadOffset(),
		Grid:          grid,
	}, nil
}
