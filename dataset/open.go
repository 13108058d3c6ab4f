package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how a training file is encoded on disk.
type Compression int

const (
	// Plain is uncompressed text.
	Plain Compression = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Zstd is a Zstandard frame stream.
	Zstd
	// LZ4 is an LZ4 frame stream.
	LZ4
)

// String returns a short lowercase name.
func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "plain"
	}
}

// CompressionFor maps a file path to its Compression by extension
// (case-insensitive).
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return Plain
	}
}

// Load opens path, decompresses it according to its extension and parses it
// with Read.
//
// Errors:
//   - ErrFileNotFound, ErrPermissionDenied, ErrOpen from opening the file.
//   - ErrDecompress for a corrupt compressed stream.
//   - *ParseError (ErrParse) from Read.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%s: %w", path, ErrPermissionDenied)
	case err != nil:
		return nil, fmt.Errorf("%s: %w: %w", path, ErrOpen, err)
	}
	defer f.Close()

	rc, err := NewDecompressor(f, CompressionFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer rc.Close()

	ds, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// NewDecompressor wraps r so that reads yield decompressed bytes. Stream
// errors from a compressed source are reported as ErrDecompress. Closing the
// result does not close r.
func NewDecompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrDecompress, err)
		}

		return &streamReader{r: zr, closer: zr.Close, codec: c}, nil
	case Zstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
		}

		return &streamReader{r: zr, closer: func() error { zr.Close(); return nil }, codec: c}, nil
	case LZ4:
		return &streamReader{r: lz4.NewReader(r), codec: c}, nil
	default:
		return io.NopCloser(r), nil
	}
}

// streamReader tags decoder errors with ErrDecompress.
type streamReader struct {
	r      io.Reader
	closer func() error
	codec  Compression
}

func (s *streamReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w: %s: %w", ErrDecompress, s.codec, err)
	}

	return n, err
}

func (s *streamReader) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer()
}
