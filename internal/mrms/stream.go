package mrms

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// stream is a forward-only cursor over an MRMS byte stream. Values are laid out
// in the writer's native order, which for every producer we know of is little
// endian; the swap flag reverses each interpreted field after it is read.
type stream struct {
	r    io.Reader
	swap bool
	pos  int64
	buf  [4]byte
}

func newStream(r io.Reader, swap bool) *stream {
	return &stream{r: r, swap: swap}
}

// Pos returns the number of bytes consumed so far.
func (s *stream) Pos() int64 { return s.pos }

// readFull fills p or reports ErrTruncated together with the field name and
// the offset at which the stream ran dry.
func (s *stream) readFull(p []byte, field string) error {
	n, err := io.ReadFull(s.r, p)
	s.pos += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %s at offset %d: want %d bytes, got %d", ErrTruncated, field, s.pos-int64(n), len(p), n)
		}
		return fmt.Errorf("read %s at offset %d: %w", field, s.pos-int64(n), err)
	}
	return nil
}

// rawUint32 reads four bytes without applying the swap flag.
func (s *stream) rawUint32(field string) (uint32, error) {
	if err := s.readFull(s.buf[:4], field); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(s.buf[:4]), nil
}

// int32 reads a signed 32-bit field, swapping it when requested.
func (s *stream) int32(field string) (int32, error) {
	u, err := s.rawUint32(field)
	if err != nil {
		return 0, err
	}
	v := int32(u)
	if s.swap {
		v = swapInt32(v)
	}
	return v, nil
}

// skip consumes n bytes that carry no meaning for the decoder.
func (s *stream) skip(n int, field string) error {
	if n <= len(s.buf) {
		return s.readFull(s.buf[:n], field)
	}
	return s.readFull(make([]byte, n), field)
}

// text reads a fixed-width character field of width bytes and returns at most
// limit characters, cut at the first NUL. Single-byte elements are unaffected
// by the swap flag.
func (s *stream) text(width, limit int, field string) (string, error) {
	b := make([]byte, width)
	if err := s.readFull(b, field); err != nil {
		return "", err
	}
	return boundedText(b, limit), nil
}

// boundedText returns the printable prefix of raw: at most limit bytes and
// nothing from the first NUL on.
func boundedText(raw []byte, limit int) string {
	if len(raw) > limit {
		raw = raw[:limit]
	}
	for i, c := range raw {
		if c == 0 {
			return string(raw[:i])
		}
	}
	return string(raw)
}
