package mrms

import "fmt"

// FlipRows reverses the row order of every level of a row-major grid laid
// out level, row, column. Applying it twice returns the original ordering.
func FlipRows[T any](src []T, nx, ny, nz int) ([]T, error) {
	if err := checkGridLen(len(src), nx, ny, nz); err != nil {
		return nil, err
	}
	dst := make([]T, len(src))
	plane := nx * ny
	for k := 0; k < nz; k++ {
		base := k * plane
		for j := 0; j < ny; j++ {
			from := base + j*nx
			to := base + (ny-1-j)*nx
			copy(dst[to:to+nx], src[from:from+nx])
		}
	}
	return dst, nil
}

// Orient converts south-first samples into a north-first grid, dividing each
// sample by scale. The source slice is left untouched.
func Orient(samples []int16, nx, ny, nz int, scale int32) ([]float32, error) {
	if scale == 0 {
		return nil, fmt.Errorf("%w: var_scale", ErrZeroScale)
	}
	if err := checkGridLen(len(samples), nx, ny, nz); err != nil {
		return nil, err
	}
	out := make([]float32, len(samples))
	div := float32(scale)
	plane := nx * ny
	for k := 0; k < nz; k++ {
		base := k * plane
		for j := 0; j < ny; j++ {
			src := samples[base+j*nx : base+(j+1)*nx]
			dst := out[base+(ny-1-j)*nx : base+(ny-j)*nx]
			for i, v := range src {
				dst[i] = float32(v) / div
			}
		}
	}
	return out, nil
}

func checkGridLen(n, nx, ny, nz int) error {
	if nx < 1 || ny < 1 || nz < 1 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimension, nx, ny, nz)
	}
	if n != nx*ny*nz {
		return fmt.Errorf("%w: have %d samples for %dx%dx%d grid", ErrInvalidDimension, n, nx, ny, nz)
	}
	return nil
}
