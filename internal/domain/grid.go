package domain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
	"github.com/google/uuid"
)

// EpochTimeUnits is the CF time unit for grids that are not forecasts.
const EpochTimeUnits = "seconds since 1970-1-1 0:0:0"

// gridNamespace seeds the SHA-1 grid ids.
var gridNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:mrms-cf-etl:grid"))

// sliceProducts are the 3D mosaics whose single-level slices are filed under
// a height subdirectory.
var sliceProducts = map[string]bool{
	"MREFL":  true,
	"MKDP":   true,
	"MRHOHV": true,
	"MSPW":   true,
	"MZDR":   true,
}

// OutputOptions controls where and how converted grids are written.
type OutputOptions struct {
	Dir      string
	FAA      bool
	Compress bool
}

// NewConvertedGrid matches a decoded field with its product entry and derives
// everything the sinks need: id, CF time, output path and range-folded value.
func NewConvertedGrid(source string, field *mrms.Field, info product.Info, opts OutputOptions) ConvertedGrid {
	return ConvertedGrid{
		ID:          GridID(info.CFName, field),
		Source:      source,
		Field:       field,
		Product:     info,
		Time:        NewCFTime(field, info),
		RangeFolded: RangeFoldedValue(field.MissingValue),
		FAA:         opts.FAA,
		OutputPath:  OutputPath(opts.Dir, info.CFName, field, opts.Compress),
		ConvertedAt: clock.Now().UTC(),
	}
}

// NewCFTime returns the time coordinate for a field. 2D forecast products
// are referenced to their valid time and carry the forecast length; all
// other grids count seconds from the Unix epoch.
func NewCFTime(field *mrms.Field, info product.Info) CFTime {
	if info.IsForecast() && !field.Is3D() {
		return CFTime{
			Units: "seconds since " + field.Time().Format(time.DateTime),
			Value: info.ForecastSeconds,
		}
	}
	return CFTime{Units: EpochTimeUnits, Value: field.ValidTime}
}

// RangeFoldedValue is the sentinel written for range-folded cells.
func RangeFoldedValue(missing int32) float32 {
	return float32(missing) - 1
}

// OutputPath builds <dir>/<cf_name>[/<height km>]/<YYYYMMDD-HHMMSS>.grid[.gz].
func OutputPath(dir, cfName string, field *mrms.Field, compress bool) string {
	name := field.Time().Format("20060102-150405") + ".grid"
	if compress {
		name += ".gz"
	}
	if sub, ok := HeightDir(cfName, field); ok {
		return filepath.Join(dir, cfName, sub, name)
	}
	return filepath.Join(dir, cfName, name)
}

// HeightDir returns the subdirectory for a single-level slice of a 3D
// mosaic, named by the level height in kilometers: 500 m -> "00.50",
// 12000 m -> "12.00".
func HeightDir(cfName string, field *mrms.Field) (string, bool) {
	if field.NZ != 1 || len(field.Heights) == 0 || !sliceProducts[cfName] {
		return "", false
	}
	h := field.Heights[0]
	km := strconv.FormatFloat(h/1000, 'f', 2, 64)
	if h < 10000 {
		return "0" + km, true
	}
	return km, true
}

// GridID derives a deterministic id from product, valid time, first level
// and level count. Reconverting the same file yields the same id.
func GridID(cfName string, field *mrms.Field) string {
	var h0 float64
	if len(field.Heights) > 0 {
		h0 = field.Heights[0]
	}
	key := fmt.Sprintf("%s|%d|%.2f|%d", cfName, field.ValidTime, h0, field.NZ)
	return uuid.NewSHA1(gridNamespace, []byte(key)).String()
}

// Dimensions lists the output variable's axes, slowest first. FAA layout
// adds a leading time axis of length one.
func (g ConvertedGrid) Dimensions() []Dimension {
	dims := make([]Dimension, 0, 4)
	if g.FAA {
		dims = append(dims, Dimension{Name: "time", Size: 1})
	}
	if g.Field.Is3D() {
		dims = append(dims, Dimension{Name: "ht", Size: g.Field.NZ})
	}
	return append(dims,
		Dimension{Name: "lat", Size: g.Field.NY},
		Dimension{Name: "lon", Size: g.Field.NX},
	)
}

// Event summarizes the grid for the sink topic.
func (g ConvertedGrid) Event() GridEvent {
	f := g.Field
	return GridEvent{
		ID:              g.ID,
		Product:         g.Product.CFName,
		LongName:        g.Product.CFLongName,
		Unit:            g.Product.OutputUnit(),
		SourceVar:       f.VarName,
		SourceUnit:      f.VarUnit,
		ValidTime:       f.Time(),
		TimeUnits:       g.Time.Units,
		TimeValue:       g.Time.Value,
		ForecastSeconds: g.Product.ForecastSeconds,
		NX:              f.NX,
		NY:              f.NY,
		NZ:              f.NZ,
		NWLat:           f.NWLat,
		NWLon:           f.NWLon,
		DX:              f.DX,
		DY:              f.DY,
		Heights:         f.Heights,
		Radars:          f.Radars,
		MissingValue:    float32(f.MissingValue),
		RangeFolded:     g.RangeFolded,
		Source:          g.Source,
		OutputPath:      g.OutputPath,
		ConvertedAt:     g.ConvertedAt,
	}
}

// SerializeGridEvent marshals a grid's event for the sink topic, keyed by
// grid id.
func SerializeGridEvent(g ConvertedGrid) (OutputEvent, error) {
	ev := g.Event()
	data, err := json.Marshal(ev)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize grid event: %w", err)
	}
	return OutputEvent{
		Key:   []byte(ev.ID),
		Value: data,
		Headers: map[string]string{
			"product":    ev.Product,
			"valid_time": ev.ValidTime.Format(time.RFC3339),
		},
	}, nil
}
