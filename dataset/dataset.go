package dataset

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/logit/matrix"
)

// Dataset is a parsed training set.
//
//   - X holds one row per usable line; X[i][0] is the bias 1.0.
//   - Y holds the label of each row, in the same order.
//   - Skipped counts input lines dropped for having no comma.
type Dataset struct {
	X       [][]float64
	Y       []float64
	Skipped int
}

// Len returns the number of training rows.
func (d *Dataset) Len() int { return len(d.X) }

// Features returns the row width including the bias column, or 0 when empty.
func (d *Dataset) Features() int {
	if len(d.X) == 0 {
		return 0
	}

	return len(d.X[0])
}

// Dense packs X into a new matrix.Dense. NaN or ±Inf features are rejected
// by the default matrix numeric policy.
func (d *Dataset) Dense() (*matrix.Dense, error) {
	m, err := matrix.FromRows(d.X)
	if err != nil {
		return nil, fmt.Errorf("dataset: dense: %w", err)
	}

	return m, nil
}

// Flat returns X flattened in row-major order together with the row width.
// The slice is a copy.
func (d *Dataset) Flat() ([]float64, int) {
	n := d.Features()
	out := make([]float64, 0, len(d.X)*n)
	for _, row := range d.X {
		out = append(out, row...)
	}

	return out, n
}

// Fingerprint returns an xxhash64 digest of the parsed values: row count,
// width, every X value in row-major order, then every label. Values are
// hashed by their IEEE-754 bits, so -0 and 0 differ and NaN payloads matter.
// Two files that parse to the same numbers share a fingerprint regardless of
// formatting, compression or skipped lines.
func (d *Dataset) Fingerprint() uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, 8*(d.Features()+2))

	buf = binary.LittleEndian.AppendUint64(buf, uint64(d.Len()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(d.Features()))
	_, _ = h.Write(buf)

	for _, row := range d.X {
		buf = buf[:0]
		for _, v := range row {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
		_, _ = h.Write(buf)
	}

	buf = buf[:0]
	for _, v := range d.Y {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	_, _ = h.Write(buf)

	return h.Sum64()
}
