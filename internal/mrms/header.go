package mrms

import "fmt"

// Widths of the fixed character fields and the number of usable characters in
// each. The last byte of the name and unit fields is always a terminator.
const (
	NameWidth  = 20
	NameLen    = 19
	UnitWidth  = 6
	UnitLen    = 5
	RadarWidth = 4
	RadarLen   = 4

	reservedWords = 10

	// FixedHeaderSize is the header length excluding the per-level heights and
	// the per-radar identifiers.
	FixedHeaderSize = 162
)

// RawHeader mirrors the header fields in file order after unscaling.
type RawHeader struct {
	Year, Month, Day     int32
	Hour, Minute, Second int32
	NX, NY, NZ           int32
	MapScale             int32
	NWLon, NWLat         float64
	DX, DY               float64
	DXYScale             int32
	Heights              []float64
	HeightScale          int32
	VarName              string
	VarUnit              string
	VarScale             int32
	MissingValue         int32
	Radars               []string
}

// Cells returns the number of samples the payload must hold.
func (h *RawHeader) Cells() int {
	return int(h.NX) * int(h.NY) * int(h.NZ)
}

// PayloadOffset returns the byte offset at which the samples begin.
func (h *RawHeader) PayloadOffset() int64 {
	return FixedHeaderSize + 4*int64(len(h.Heights)) + RadarWidth*int64(len(h.Radars))
}

// EpochSeconds returns the valid time encoded in the header.
func (h *RawHeader) EpochSeconds() int64 {
	return EpochSeconds(h.Year, h.Month, h.Day, h.Hour, h.Minute, h.Second)
}

// readHeader consumes the header from s. Counts are validated before the
// records they gate are read, so a corrupt count cannot drive an allocation.
func readHeader(s *stream) (*RawHeader, error) {
	h := &RawHeader{}
	var err error

	for _, f := range []struct {
		dst  *int32
		name string
	}{
		{&h.Year, "year"}, {&h.Month, "month"}, {&h.Day, "day"},
		{&h.Hour, "hour"}, {&h.Minute, "minute"}, {&h.Second, "second"},
		{&h.NX, "nx"}, {&h.NY, "ny"}, {&h.NZ, "nz"},
	} {
		if *f.dst, err = s.int32(f.name); err != nil {
			return nil, err
		}
	}
	if err := checkDimensions(h.NX, h.NY, h.NZ); err != nil {
		return nil, err
	}

	if err := s.skip(4, "projection"); err != nil {
		return nil, err
	}
	if h.MapScale, err = s.int32("map_scale"); err != nil {
		return nil, err
	}
	// Deprecated projection parameters are consumed as stored, never swapped.
	for _, name := range []string{"trulat1", "trulat2", "trulon"} {
		if _, err := s.rawUint32(name); err != nil {
			return nil, err
		}
	}

	lon, err := s.int32("nw_lon")
	if err != nil {
		return nil, err
	}
	lat, err := s.int32("nw_lat")
	if err != nil {
		return nil, err
	}
	if _, err := s.rawUint32("xy_scale"); err != nil {
		return nil, err
	}
	dx, err := s.int32("dx")
	if err != nil {
		return nil, err
	}
	dy, err := s.int32("dy")
	if err != nil {
		return nil, err
	}
	if h.DXYScale, err = s.int32("dxy_scale"); err != nil {
		return nil, err
	}
	if h.MapScale == 0 {
		return nil, fmt.Errorf("%w: map_scale", ErrZeroScale)
	}
	if h.DXYScale == 0 {
		return nil, fmt.Errorf("%w: dxy_scale", ErrZeroScale)
	}
	h.NWLon = float64(lon) / float64(h.MapScale)
	h.NWLat = float64(lat) / float64(h.MapScale)
	h.DX = float64(dx) / float64(h.DXYScale)
	h.DY = float64(dy) / float64(h.DXYScale)

	h.Heights = make([]float64, 0, h.NZ)
	for k := int32(0); k < h.NZ; k++ {
		z, err := s.int32("height")
		if err != nil {
			return nil, err
		}
		h.Heights = append(h.Heights, float64(z))
	}
	if h.HeightScale, err = s.int32("height_scale"); err != nil {
		return nil, err
	}
	if h.HeightScale != 0 && h.HeightScale != 1 {
		for k := range h.Heights {
			h.Heights[k] /= float64(h.HeightScale)
		}
	}

	if err := s.skip(4*reservedWords, "reserved"); err != nil {
		return nil, err
	}

	if h.VarName, err = s.text(NameWidth, NameLen, "varname"); err != nil {
		return nil, err
	}
	if h.VarUnit, err = s.text(UnitWidth, UnitLen, "varunit"); err != nil {
		return nil, err
	}
	if h.VarScale, err = s.int32("var_scale"); err != nil {
		return nil, err
	}
	if h.MissingValue, err = s.int32("missing_value"); err != nil {
		return nil, err
	}

	nradars, err := s.int32("nradars")
	if err != nil {
		return nil, err
	}
	if nradars < 0 || nradars > MaxRadars {
		return nil, fmt.Errorf("%w: nradars=%d (max %d)", ErrInvalidCount, nradars, MaxRadars)
	}
	h.Radars = make([]string, 0, nradars)
	for i := int32(0); i < nradars; i++ {
		id, err := s.text(RadarWidth, RadarLen, "radar")
		if err != nil {
			return nil, err
		}
		h.Radars = append(h.Radars, id)
	}

	return h, nil
}

func checkDimensions(nx, ny, nz int32) error {
	switch {
	case nx < 1 || nx > MaxColumns:
		return fmt.Errorf("%w: nx=%d", ErrInvalidDimension, nx)
	case ny < 1 || ny > MaxRows:
		return fmt.Errorf("%w: ny=%d", ErrInvalidDimension, ny)
	case nz < 1 || nz > MaxLevels:
		return fmt.Errorf("%w: nz=%d", ErrInvalidDimension, nz)
	}
	return nil
}
