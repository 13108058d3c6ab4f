package dataset_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/logit/dataset"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "0,0\n1,0\n2,1\n3,1\n"

// writeFile stores data under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

// compress encodes sample with the codec matching c.
func compress(t *testing.T, c dataset.Compression, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case dataset.Gzip:
		w = gzip.NewWriter(&buf)
	case dataset.Zstd:
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = zw
	case dataset.LZ4:
		w = lz4.NewWriter(&buf)
	default:
		t.Fatalf("no codec for %v", c)
	}
	_, err := io.WriteString(w, data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// TestLoad_Plain reads an uncompressed file.
func TestLoad_Plain(t *testing.T) {
	ds, err := dataset.Load(writeFile(t, "train.txt", []byte(sample)))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}}, ds.X)
	assert.Equal(t, []float64{0, 0, 1, 1}, ds.Y)
}

// TestLoad_Compressed round-trips every supported codec and checks that the
// parsed values (and so the fingerprint) match the plain file.
func TestLoad_Compressed(t *testing.T) {
	plain, err := dataset.Load(writeFile(t, "train.csv", []byte(sample)))
	require.NoError(t, err)

	tests := []struct {
		name string
		c    dataset.Compression
	}{
		{"train.csv.gz", dataset.Gzip},
		{"train.csv.zst", dataset.Zstd},
		{"train.csv.ZSTD", dataset.Zstd},
		{"train.csv.lz4", dataset.LZ4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.c, dataset.CompressionFor(tc.name))

			ds, err := dataset.Load(writeFile(t, tc.name, compress(t, tc.c, sample)))
			require.NoError(t, err)
			assert.Equal(t, plain.X, ds.X)
			assert.Equal(t, plain.Y, ds.Y)
			assert.Equal(t, plain.Fingerprint(), ds.Fingerprint())
		})
	}
}

// TestLoad_CorruptCompressed surfaces ErrDecompress.
func TestLoad_CorruptCompressed(t *testing.T) {
	for _, name := range []string{"bad.gz", "bad.zst", "bad.lz4"} {
		_, err := dataset.Load(writeFile(t, name, []byte("definitely not compressed")))
		assert.ErrorIs(t, err, dataset.ErrDecompress, name)
	}
}

// TestLoad_NotFound maps a missing path to ErrFileNotFound.
func TestLoad_NotFound(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, dataset.ErrFileNotFound)
}

// TestLoad_PermissionDenied maps an unreadable file to ErrPermissionDenied.
func TestLoad_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := writeFile(t, "locked.csv", []byte(sample))
	require.NoError(t, os.Chmod(path, 0o000))

	_, err := dataset.Load(path)
	assert.ErrorIs(t, err, dataset.ErrPermissionDenied)
}

// TestLoad_ParseErrorKeepsPath wraps parse errors with the file path.
func TestLoad_ParseErrorKeepsPath(t *testing.T) {
	path := writeFile(t, "bad.csv", []byte("1,0\n2,x\n"))

	_, err := dataset.Load(path)
	require.ErrorIs(t, err, dataset.ErrParse)
	assert.Contains(t, err.Error(), path)
}

// TestCompressionString covers the codec names.
func TestCompressionString(t *testing.T) {
	assert.Equal(t, "plain", dataset.Plain.String())
	assert.Equal(t, "gzip", dataset.Gzip.String())
	assert.Equal(t, "zstd", dataset.Zstd.String())
	assert.Equal(t, "lz4", dataset.LZ4.String())
	assert.Equal(t, dataset.Plain, dataset.CompressionFor("data.csv"))
	assert.Equal(t, dataset.Plain, dataset.CompressionFor("data"))
}
