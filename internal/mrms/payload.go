package mrms

import (
	"encoding/binary"
	"fmt"
)

// payloadChunk bounds the scratch buffer used while reading samples.
const payloadChunk = 64 << 10

// readSamples reads exactly n int16 samples in stored order. The returned
// slice is either complete or nil. It grows as chunks arrive, so a header
// that overstates the payload fails with ErrTruncated at the size of the
// data actually present.
func readSamples(s *stream, n int) ([]int16, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d samples", ErrInvalidDimension, n)
	}
	out := make([]int16, 0, min(n, payloadChunk/2))
	buf := make([]byte, min(2*n, payloadChunk))
	for len(out) < n {
		m := min(n-len(out), len(buf)/2)
		chunk := buf[:2*m]
		if err := s.readFull(chunk, "samples"); err != nil {
			return nil, err
		}
		for i := 0; i < m; i++ {
			v := int16(binary.LittleEndian.Uint16(chunk[2*i:]))
			if s.swap {
				v = swapInt16(v)
			}
			out = append(out, v)
		}
	}
	return out, nil
}
