package product

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"mosaicked_refl":    "mosaicked_refl",
		"  mosaicked refl ": "mosaicked_refl",
		"MESH ":             "MESH",
		"a b ":              "a_b",
		"a  ":               "a",
		"_x_":               "_x",
		"_a_b":              "_a_b",
		"_ab":               "ab",
		"__":                "",
		"x _":               "x",
		" Precip Water":     "Precip_Water",
		"":                  "",
		"   ":               "",
		"dBZ":               "dBZ",
		"a\tb ":             "a\tb",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestTable_FindExactMatch(t *testing.T) {
	info, ok := Default().Find("mosaicked_refl", "dbz")
	require.True(t, ok)
	assert.Equal(t, "MREFL", info.CFName)
	assert.Equal(t, "dBZ", info.CFUnit)
	assert.Equal(t, "Mosaicked Reflectivity", info.CFLongName)
	assert.InDelta(t, -99, info.VarMissing, 0)
	assert.InDelta(t, -999, info.VarNoCoverage, 0)
	assert.False(t, info.IsForecast())
}

func TestTable_EmptyUnitMatchesAnyUnit(t *testing.T) {
	info, ok := Default().Find("CREF", "")
	require.True(t, ok)
	assert.Equal(t, "CREF", info.CFName)
}

func TestTable_UnitMismatch(t *testing.T) {
	_, ok := Default().Find("CREF", "mm")
	assert.False(t, ok)
}

func TestTable_EmptyNameNeverMatches(t *testing.T) {
	tbl := NewTable([]Info{{VarName: "", VarUnit: "", CFName: "BLANK"}})
	_, ok := tbl.Find("", "")
	assert.False(t, ok)
}

func TestTable_FirstMatchWins(t *testing.T) {
	tbl := NewTable([]Info{
		{VarName: "X", VarUnit: "mm", CFName: "FIRST"},
		{VarName: "X", VarUnit: "mm", CFName: "SECOND"},
	})
	info, ok := tbl.Find("X", "mm")
	require.True(t, ok)
	assert.Equal(t, "FIRST", info.CFName)
}

func TestTable_ForecastProducts(t *testing.T) {
	for _, name := range []string{"CREF_30MIN_FCST", "VIL_30MIN_FCST", "LTG_30MIN_PROB"} {
		info, ok := Default().Find(name, "")
		require.True(t, ok, name)
		assert.Equal(t, int64(1800), info.ForecastSeconds, name)
		assert.True(t, info.IsForecast(), name)
	}
}

func TestTable_DefaultIsComplete(t *testing.T) {
	tbl := Default()
	assert.Equal(t, 95, tbl.Len())

	info, ok := tbl.Find("RADCOVERID", "flag")
	require.True(t, ok)
	assert.Equal(t, Undefined, info.VarNoCoverage)
}

func TestInfo_OutputUnit(t *testing.T) {
	info, ok := Default().Find("SHI", "none")
	require.True(t, ok)
	assert.Equal(t, "none", info.CFUnit)
	assert.Empty(t, info.OutputUnit())

	info, ok = Default().Find("VIL", "kg/m2")
	require.True(t, ok)
	assert.Equal(t, "kg/m2", info.OutputUnit())
}

// --- YAML override tests ---

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := writeTable(t, `
products:
  - var_name: mosaicked_refl
    var_unit: dbz
    cf_name: REFL3D
    cf_unit: dBZ
    cf_long_name: Custom Reflectivity
  - var_name: NEW_FIELD
    var_unit: m
    var_missing: -5
    forecast_seconds: 900
    cf_name: NEW_FIELD
    cf_unit: meters
`)
	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Len()+2, tbl.Len())

	info, ok := tbl.Find("mosaicked_refl", "dbz")
	require.True(t, ok)
	assert.Equal(t, "REFL3D", info.CFName)

	info, ok = tbl.Find("NEW_FIELD", "m")
	require.True(t, ok)
	assert.InDelta(t, -5, info.VarMissing, 0)
	assert.Equal(t, Undefined, info.VarNoCoverage)
	assert.Equal(t, int64(900), info.ForecastSeconds)

	_, ok = tbl.Find("CREF", "dBZ")
	assert.True(t, ok, "defaults still present")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_RejectsIncompleteEntries(t *testing.T) {
	_, err := LoadFile(writeTable(t, "products:\n  - var_unit: mm\n    cf_name: X\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "var_name is required")

	_, err = LoadFile(writeTable(t, "products:\n  - var_name: X\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cf_name is required")
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	_, err := LoadFile(writeTable(t, "products: [\n"))
	require.Error(t, err)
}

// --- Cached tests ---

type countingLookup struct {
	mu    sync.Mutex
	calls int
	inner Lookup
}

func (c *countingLookup) Find(name, unit string) (Info, bool) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.inner.Find(name, unit)
}

func TestCached_HitAfterMiss(t *testing.T) {
	inner := &countingLookup{inner: Default()}
	var results []string
	cached := NewCached(inner, 4, func(r string) { results = append(results, r) })

	a, ok := cached.Find("VIL", "kg/m2")
	require.True(t, ok)
	b, ok := cached.Find("VIL", "kg/m2")
	require.True(t, ok)

	assert.Equal(t, a, b)
	assert.Equal(t, 1, inner.calls, "should only call inner once")
	assert.Equal(t, []string{CacheMiss, CacheHit}, results)
}

func TestCached_UnknownNotCached(t *testing.T) {
	inner := &countingLookup{inner: Default()}
	cached := NewCached(inner, 4, nil)

	_, ok := cached.Find("NOPE", "x")
	assert.False(t, ok)
	_, ok = cached.Find("NOPE", "x")
	assert.False(t, ok)

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 0, cached.Len())
}

func TestCached_UnitIsPartOfKey(t *testing.T) {
	inner := &countingLookup{inner: Default()}
	cached := NewCached(inner, 4, nil)

	_, _ = cached.Find("CREF", "dBZ")
	_, _ = cached.Find("CREF", "")

	assert.Equal(t, 2, inner.calls)
}

func TestCached_ConcurrentFind(t *testing.T) {
	cached := NewCached(Default(), 2, nil)
	names := []string{"CREF", "VIL", "MEHS", "SHI"}

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, ok := cached.Find(names[i%len(names)], "")
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, cached.Len(), 2)
}

// --- LRU cache unit tests ---

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", Info{CFName: "A"})
	c.put("b", Info{CFName: "B"})
	c.put("c", Info{CFName: "C"}) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	got, ok := c.get("c")
	assert.True(t, ok)
	assert.Equal(t, "C", got.CFName)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", Info{CFName: "A"})
	c.put("b", Info{CFName: "B"})
	c.get("a")
	c.put("c", Info{CFName: "C"})

	_, ok := c.get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", Info{CFName: "A1"})
	c.put("a", Info{CFName: "A2"})

	got, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", got.CFName)
}
