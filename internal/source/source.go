// Package source opens MRMS files for sequential reading, inflating gzip
// members transparently.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Stream is an open MRMS byte stream.
type Stream struct {
	io.Reader
	closers []io.Closer
	// Compressed reports whether the underlying file was gzip-wrapped.
	Compressed bool
}

// Close releases the decompressor and the file.
func (s *Stream) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Open opens path and sniffs the gzip magic bytes. Failures wrap
// mrms.ErrStreamOpen.
func Open(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mrms.ErrStreamOpen, err)
	}
	s, err := wrap(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", mrms.ErrStreamOpen, path, err)
	}
	s.closers = append(s.closers, f)
	return s, nil
}

// NewReader wraps an in-memory or network stream the same way Open wraps a
// file. The caller keeps ownership of r.
func NewReader(r io.Reader) (*Stream, error) {
	s, err := wrap(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mrms.ErrStreamOpen, err)
	}
	return s, nil
}

func wrap(r io.Reader) (*Stream, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if !bytes.Equal(head, gzipMagic) {
		return &Stream{Reader: br}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("gzip header: %w", err)
	}
	return &Stream{Reader: zr, closers: []io.Closer{zr}, Compressed: true}, nil
}
