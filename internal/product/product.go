// Package product maps MRMS variable name/unit pairs to the CF names, units
// and forecast offsets used for output.
package product

import (
	"errors"
	"strings"
)

// ErrUnknownProduct is returned when no table entry matches a decoded
// name/unit pair.
var ErrUnknownProduct = errors.New("product not found in reference table")

// Undefined marks a numeric attribute the reference data leaves open.
const Undefined float32 = 12345.0

// Info describes one product. VarName and VarUnit are the labels found in
// MRMS headers after Normalize.
type Info struct {
	VarName         string  `yaml:"var_name"`
	VarUnit         string  `yaml:"var_unit"`
	VarMissing      float32 `yaml:"var_missing"`
	VarNoCoverage   float32 `yaml:"var_no_coverage"`
	ForecastSeconds int64   `yaml:"forecast_seconds"`
	CFName          string  `yaml:"cf_name"`
	CFUnit          string  `yaml:"cf_unit"`
	CFLongName      string  `yaml:"cf_long_name"`
}

// Matches reports whether the entry applies to a decoded name and unit. An
// empty unit matches any entry with the same name.
func (p Info) Matches(name, unit string) bool {
	if p.VarName != name {
		return false
	}
	return unit == "" || p.VarUnit == unit
}

// OutputUnit returns the CF unit to write; "none" is written as empty.
func (p Info) OutputUnit() string {
	if p.CFUnit == "none" {
		return ""
	}
	return p.CFUnit
}

// IsForecast reports whether the product's valid time lies ahead of its
// reference time.
func (p Info) IsForecast() bool { return p.ForecastSeconds > 0 }

// Lookup finds product metadata for a decoded name/unit pair.
type Lookup interface {
	Find(name, unit string) (Info, bool)
}

// Table is an ordered list of products; the first match wins.
type Table struct {
	entries []Info
}

// NewTable returns a table over entries, searched in order.
func NewTable(entries []Info) *Table {
	return &Table{entries: entries}
}

// Default returns the built-in reference table.
func Default() *Table {
	return NewTable(defaultEntries())
}

// Find returns the first entry matching name and unit. An empty name never
// matches.
func (t *Table) Find(name, unit string) (Info, bool) {
	if name == "" {
		return Info{}, false
	}
	for _, p := range t.entries {
		if p.Matches(name, unit) {
			return p, true
		}
	}
	return Info{}, false
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Normalize turns a header label into a lookup key. Surrounding spaces are
// dropped and inner spaces become underscores. Trailing underscores are then
// removed, and a leading underscore only when it is the last one left.
//
//	"  mosaicked refl " -> "mosaicked_refl"
//	"_a_b"              -> "_a_b"
func Normalize(label string) string {
	s := label
	for {
		i := strings.IndexByte(s, ' ')
		if i < 0 {
			break
		}
		switch {
		case len(s) <= 1:
			s = ""
		case i == 0:
			s = s[1:]
		case i == len(s)-1:
			s = s[:len(s)-1]
		default:
			s = s[:i] + "_" + s[i+1:]
		}
	}
	for strings.LastIndexByte(s, '_') == 0 {
		s = s[1:]
	}
	for len(s) > 0 && strings.LastIndexByte(s, '_') == len(s)-1 {
		s = s[:len(s)-1]
	}
	return s
}
