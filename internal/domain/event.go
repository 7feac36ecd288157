package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// FileNotice announces an MRMS binary file ready for conversion.
type FileNotice struct {
	Path string `json:"path"`
	Swap bool   `json:"swap"`
}

// CFTime is the CF time coordinate written with a grid.
type CFTime struct {
	Units string `json:"units"`
	Value int64  `json:"value"`
}

// Dimension is one named axis of an output variable.
type Dimension struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// ConvertedGrid is a decoded field matched to its product, ready for output.
type ConvertedGrid struct {
	ID          string
	Source      string
	Field       *mrms.Field
	Product     product.Info
	Time        CFTime
	RangeFolded float32
	FAA         bool
	OutputPath  string
	ConvertedAt time.Time
}

// GridEvent is the summary published to the sink topic after a grid has
// been written.
type GridEvent struct {
	ID              string    `json:"id"`
	Product         string    `json:"product"`
	LongName        string    `json:"long_name"`
	Unit            string    `json:"unit"`
	SourceVar       string    `json:"source_var"`
	SourceUnit      string    `json:"source_unit"`
	ValidTime       time.Time `json:"valid_time"`
	TimeUnits       string    `json:"time_units"`
	TimeValue       int64     `json:"time_value"`
	ForecastSeconds int64     `json:"forecast_seconds,omitempty"`
	NX              int       `json:"nx"`
	NY              int       `json:"ny"`
	NZ              int       `json:"nz"`
	NWLat           float64   `json:"nw_lat"`
	NWLon           float64   `json:"nw_lon"`
	DX              float64   `json:"dx"`
	DY              float64   `json:"dy"`
	Heights         []float64 `json:"heights"`
	Radars          []string  `json:"radars,omitempty"`
	MissingValue    float32   `json:"missing_value"`
	RangeFolded     float32   `json:"range_folded_value"`
	Source          string    `json:"source"`
	OutputPath      string    `json:"output_path"`
	ConvertedAt     time.Time `json:"converted_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
