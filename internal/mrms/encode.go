package mrms

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// FileHeader holds header values as they are stored on disk: scaled integers
// and raw labels. It is the input to Encode.
type FileHeader struct {
	Year, Month, Day     int32
	Hour, Minute, Second int32
	NX, NY, NZ           int32
	MapScale             int32
	NWLonScaled          int32
	NWLatScaled          int32
	DXScaled, DYScaled   int32
	DXYScale             int32
	Heights              []int32
	HeightScale          int32
	VarName              string
	VarUnit              string
	VarScale             int32
	MissingValue         int32
	Radars               []string
}

// Validate checks the label widths and that the height list matches NZ.
func (h *FileHeader) Validate() error {
	if len(h.VarName) > NameLen {
		return fmt.Errorf("%w: varname %q (max %d)", ErrLabelTooLong, h.VarName, NameLen)
	}
	if len(h.VarUnit) > UnitLen {
		return fmt.Errorf("%w: varunit %q (max %d)", ErrLabelTooLong, h.VarUnit, UnitLen)
	}
	for _, id := range h.Radars {
		if len(id) > RadarLen {
			return fmt.Errorf("%w: radar %q (max %d)", ErrLabelTooLong, id, RadarLen)
		}
	}
	if int(h.NZ) != len(h.Heights) {
		return fmt.Errorf("%w: nz=%d with %d heights", ErrInvalidDimension, h.NZ, len(h.Heights))
	}
	return nil
}

// encoder writes little-endian fields, or big-endian ones when swap is set.
// The first write error sticks and suppresses later writes.
type encoder struct {
	w     *bufio.Writer
	order binary.ByteOrder
	err   error
}

func (e *encoder) bytes(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *encoder) int32(v int32) {
	var b [4]byte
	e.order.PutUint32(b[:], uint32(v))
	e.bytes(b[:])
}

func (e *encoder) int16(v int16) {
	var b [2]byte
	e.order.PutUint16(b[:], uint16(v))
	e.bytes(b[:])
}

func (e *encoder) text(s string, width int) {
	b := make([]byte, width)
	copy(b, s)
	e.bytes(b)
}

// Encode writes h followed by samples (south-first) in the MRMS Cartesian
// binary layout. With swap set the output is big endian, so it decodes with
// the same swap flag.
func Encode(w io.Writer, h *FileHeader, samples []int16, swap bool) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if len(samples) != int(h.NX)*int(h.NY)*int(h.NZ) {
		return fmt.Errorf("%w: have %d samples for %dx%dx%d grid", ErrInvalidDimension, len(samples), h.NX, h.NY, h.NZ)
	}

	e := &encoder{w: bufio.NewWriter(w), order: binary.LittleEndian}
	if swap {
		e.order = binary.BigEndian
	}

	for _, v := range []int32{h.Year, h.Month, h.Day, h.Hour, h.Minute, h.Second, h.NX, h.NY, h.NZ} {
		e.int32(v)
	}
	e.text("LL  ", 4)
	e.int32(h.MapScale)
	e.int32(0) // trulat1
	e.int32(0) // trulat2
	e.int32(0) // trulon
	e.int32(h.NWLonScaled)
	e.int32(h.NWLatScaled)
	e.int32(0) // xy_scale
	e.int32(h.DXScaled)
	e.int32(h.DYScaled)
	e.int32(h.DXYScale)
	for _, z := range h.Heights {
		e.int32(z)
	}
	e.int32(h.HeightScale)
	for i := 0; i < reservedWords; i++ {
		e.int32(0)
	}
	e.text(h.VarName, NameWidth)
	e.text(h.VarUnit, UnitWidth)
	e.int32(h.VarScale)
	e.int32(h.MissingValue)
	e.int32(int32(len(h.Radars)))
	for _, id := range h.Radars {
		e.text(id, RadarWidth)
	}
	for _, v := range samples {
		e.int16(v)
	}

	if e.err != nil {
		return fmt.Errorf("encode mrms: %w", e.err)
	}
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("encode mrms: %w", err)
	}
	return nil
}
