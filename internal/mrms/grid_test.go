package mrms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipRows_TwiceRestoresInput(t *testing.T) {
	for _, dims := range [][3]int{{1, 1, 1}, {2, 2, 1}, {3, 4, 2}, {5, 1, 3}, {1, 7, 2}} {
		nx, ny, nz := dims[0], dims[1], dims[2]
		src := sequence(nx * ny * nz)

		once, err := FlipRows(src, nx, ny, nz)
		require.NoError(t, err)
		twice, err := FlipRows(once, nx, ny, nz)
		require.NoError(t, err)

		assert.Equal(t, src, twice, "dims %v", dims)
	}
}

func TestFlipRows_KeepsLevelsApart(t *testing.T) {
	// Two levels of 2 columns by 3 rows.
	src := []int{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}
	got, err := FlipRows(src, 2, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{
		5, 6, 3, 4, 1, 2,
		11, 12, 9, 10, 7, 8,
	}, got)
}

func TestOrient(t *testing.T) {
	samples := []int16{10, 20, 30, 40}
	got, err := Orient(samples, 2, 2, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4, 1, 2}, got)
	assert.Equal(t, []int16{10, 20, 30, 40}, samples, "source must not be mutated")
}

func TestOrient_MatchesFlipThenDivide(t *testing.T) {
	nx, ny, nz := 4, 3, 2
	samples := sequence(nx * ny * nz)
	flipped, err := FlipRows(samples, nx, ny, nz)
	require.NoError(t, err)

	got, err := Orient(samples, nx, ny, nz, -4)
	require.NoError(t, err)
	for i, v := range flipped {
		assert.Equal(t, float32(v)/float32(-4), got[i], "index %d", i)
	}
}

func TestOrient_MissingSentinelIsScaledLikeAnyValue(t *testing.T) {
	got, err := Orient([]int16{-999}, 1, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []float32{-99.9}, got)
}

func TestOrient_ZeroScale(t *testing.T) {
	got, err := Orient([]int16{1, 2}, 2, 1, 1, 0)
	require.ErrorIs(t, err, ErrZeroScale)
	assert.Nil(t, got)
}

func TestOrient_LengthMismatch(t *testing.T) {
	_, err := Orient([]int16{1, 2, 3}, 2, 2, 1, 1)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = FlipRows([]int16{1}, 0, 1, 1)
	require.ErrorIs(t, err, ErrInvalidDimension)
}
