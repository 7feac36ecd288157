package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func readAll(t *testing.T, s *Stream) []byte {
	t.Helper()
	var out bytes.Buffer
	_, err := out.ReadFrom(s)
	require.NoError(t, err)
	return out.Bytes()
}

func TestOpen_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.bin")
	require.NoError(t, os.WriteFile(path, []byte("raw mrms bytes"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.False(t, s.Compressed)
	assert.Equal(t, "raw mrms bytes", string(readAll(t, s)))
}

func TestOpen_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CREF.bin.gz")
	require.NoError(t, os.WriteFile(path, gzipped(t, []byte("inflated")), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.True(t, s.Compressed)
	assert.Equal(t, "inflated", string(readAll(t, s)))
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.gz"))
	require.ErrorIs(t, err, mrms.ErrStreamOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_CorruptGzipHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte{0x1f, 0x8b, 0x00}, 0o644))

	_, err := Open(path)
	require.ErrorIs(t, err, mrms.ErrStreamOpen)
}

func TestNewReader_Empty(t *testing.T) {
	s, err := NewReader(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.False(t, s.Compressed)
	assert.Empty(t, readAll(t, s))
	assert.NoError(t, s.Close())
}
