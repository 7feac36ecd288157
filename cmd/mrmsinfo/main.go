// Command mrmsinfo decodes MRMS Cartesian binary files and prints their
// header, the matching product entry, and a pass/fail integrity report.
//
// Usage:
//
//	go run ./cmd/mrmsinfo [-swap] [-products table.yaml] file...
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
	"github.com/couchcryptid/mrms-cf-etl/internal/source"
)

// phase tracks pass/fail for one check on one file.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	swap := flag.Bool("swap", false, "input files are big-endian")
	products := flag.String("products", "", "optional YAML product table")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	table := product.Default()
	if *products != "" {
		var err error
		table, err = product.LoadFile(*products)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if code := run(flag.Args(), *swap, table); code != 0 {
		os.Exit(code)
	}
}

func run(paths []string, swap bool, table product.Lookup) int {
	failed := 0
	for _, path := range paths {
		if !inspect(path, swap, table) {
			failed++
		}
	}

	fmt.Println()
	if failed == 0 {
		fmt.Printf("All %d files passed.\n", len(paths))
		return 0
	}
	fmt.Printf("%d of %d files FAILED.\n", failed, len(paths))
	return 1
}

func inspect(path string, swap bool, table product.Lookup) bool {
	fmt.Printf("\n== %s ==\n", path)

	decode := &phase{name: "Decode header and payload"}
	field, compressed, err := decodeFile(path, swap)
	if err != nil {
		decode.errorf("%v", err)
		return report([]*phase{decode})
	}

	printHeader(field, compressed)

	lookup := &phase{name: "Product lookup"}
	name, unit := product.Normalize(field.VarName), product.Normalize(field.VarUnit)
	if info, ok := table.Find(name, unit); ok {
		fmt.Printf(" CF product = %s [%s] %q", info.CFName, info.OutputUnit(), info.CFLongName)
		if info.IsForecast() {
			fmt.Printf(" (forecast +%ds)", info.ForecastSeconds)
		}
		fmt.Println()
	} else {
		lookup.errorf("no entry for name=%q unit=%q", name, unit)
	}

	return report([]*phase{decode, lookup, checkGrid(field)})
}

func decodeFile(path string, swap bool) (*mrms.Field, bool, error) {
	s, err := source.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer s.Close()

	field, err := mrms.Decode(s, swap)
	if err != nil {
		return nil, s.Compressed, err
	}
	return field, s.Compressed, nil
}

func printHeader(f *mrms.Field, compressed bool) {
	fmt.Println("Binary Header Info:")
	fmt.Printf(" variable name = %s\n", f.VarName)
	fmt.Printf(" variable unit = %s\n", f.VarUnit)
	fmt.Printf(" number of radars = %d\n", len(f.Radars))
	fmt.Printf(" radars = %s\n", strings.Join(f.Radars, " "))
	fmt.Printf(" variable scale = %d\n", f.VarScale)
	fmt.Printf(" missing value = %d\n", f.MissingValue)
	fmt.Printf(" NW latitude = %g\n", f.NWLat)
	fmt.Printf(" NW longitude = %g\n", f.NWLon)
	fmt.Printf(" columns x rows x levels = %d x %d x %d (%s cells)\n",
		f.NX, f.NY, f.NZ, humanize.Comma(int64(f.NX*f.NY*f.NZ)))
	fmt.Printf(" cell size (deg lat, deg lon) = %g, %g\n", f.DY, f.DX)
	fmt.Printf(" level heights (m MSL) = %s\n", formatHeights(f.Heights))
	fmt.Printf(" time = %s UTC (%d epoch seconds)\n", f.Time().Format("01/02/2006 150405"), f.ValidTime)
	fmt.Printf(" payload offset = %d bytes", f.PayloadOffset)
	if compressed {
		fmt.Print(" (gzip)")
	}
	fmt.Println()
}

func formatHeights(hs []float64) string {
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = fmt.Sprintf("%g", h)
	}
	return strings.Join(parts, " ")
}

// checkGrid reports non-finite values and prints the value range of cells
// that carry data.
func checkGrid(f *mrms.Field) *phase {
	p := &phase{name: "Grid values"}
	if want := f.NX * f.NY * f.NZ; len(f.Grid) != want {
		p.errorf("grid has %d cells, header declares %d", len(f.Grid), want)
		return p
	}

	missing := float32(f.MissingValue) / float32(f.VarScale)
	folded := float32(f.MissingValue-1) / float32(f.VarScale)
	var nMissing, nFolded int
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range f.Grid {
		switch {
		case math.IsNaN(float64(v)) || math.IsInf(float64(v), 0):
			if len(p.errors) < 10 {
				p.errorf("cell %d is not finite", i)
			}
		case v == missing:
			nMissing++
		case v == folded:
			nFolded++
		default:
			lo = math.Min(lo, float64(v))
			hi = math.Max(hi, float64(v))
		}
	}

	fmt.Printf(" missing cells = %s, range-folded cells = %s\n",
		humanize.Comma(int64(nMissing)), humanize.Comma(int64(nFolded)))
	if !math.IsInf(lo, 1) {
		fmt.Printf(" data range = [%g, %g]\n", lo, hi)
	}
	return p
}

func report(phases []*phase) bool {
	fmt.Println()
	ok := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			ok = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}
	for _, p := range phases {
		for i, e := range p.errors {
			fmt.Printf("  [%s %d] %s\n", p.name, i+1, e)
		}
	}
	return ok
}
