package mrms

import "errors"

// Decode failures. Callers branch on these with errors.Is; the wrapped message
// carries the field or offset that failed.
var (
	ErrStreamOpen       = errors.New("mrms: cannot open stream")
	ErrTruncated        = errors.New("mrms: truncated stream")
	ErrInvalidDimension = errors.New("mrms: invalid grid dimension")
	ErrInvalidCount     = errors.New("mrms: record count out of range")
	ErrZeroScale        = errors.New("mrms: zero scale factor")
	ErrLabelTooLong     = errors.New("mrms: label exceeds field width")
)

// Upper bounds applied to header counts before any record they gate is read.
const (
	MaxColumns = 1 << 16
	MaxRows    = 1 << 16
	MaxLevels  = 256
	MaxRadars  = 4096
)
