package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/logit/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats describes one non-bias feature column.
type ColumnStats struct {
	Column int     // index into a row of X (>= 1)
	Mean   float64 // arithmetic mean
	StdDev float64 // sample standard deviation; 0 for a single row
	Min    float64
	Max    float64
}

// Summary returns statistics for every non-bias column, in column order.
// It returns nil for an empty dataset or one with no features.
func (d *Dataset) Summary() []ColumnStats {
	n := d.Features()
	if d.Len() == 0 || n < 2 {
		return nil
	}

	out := make([]ColumnStats, 0, n-1)
	col := make([]float64, d.Len())
	for j := 1; j < n; j++ {
		for i, row := range d.X {
			col[i] = row[j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if d.Len() < 2 || math.IsNaN(std) {
			std = 0
		}
		out = append(out, ColumnStats{
			Column: j,
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(col),
			Max:    floats.Max(col),
		})
	}

	return out
}

// Scaler holds the per-column shift and scale applied by Standardize.
// Index 0 (bias) is the identity: Means[0] = 0, StdDevs[0] = 1.
type Scaler struct {
	Means   []float64
	StdDevs []float64
}

// Transform standardises row in place: (v − mean)/std for every column with
// a positive std, v − mean for constant columns. The bias column is left
// untouched.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(row) != len(s.Means).
func (s *Scaler) Transform(row []float64) error {
	if err := matrix.ValidateVecLen(row, len(s.Means)); err != nil {
		return fmt.Errorf("dataset: transform: %w", err)
	}
	for j := 1; j < len(row); j++ {
		row[j] -= s.Means[j]
		if s.StdDevs[j] > 0 {
			row[j] /= s.StdDevs[j]
		}
	}

	return nil
}

// Unscale maps a parameter vector fitted on standardised rows back to the
// original feature units, so that theta·x_raw equals theta_std·Transform(x_raw).
// The bias absorbs the shift of every column. theta is not modified.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(theta) != len(s.Means).
func (s *Scaler) Unscale(theta []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(theta, len(s.Means)); err != nil {
		return nil, fmt.Errorf("dataset: unscale: %w", err)
	}
	out := make([]float64, len(theta))
	out[0] = theta[0]
	for j := 1; j < len(theta); j++ {
		w := theta[j]
		if s.StdDevs[j] > 0 {
			w /= s.StdDevs[j]
		}
		out[j] = w
		out[0] -= w * s.Means[j]
	}

	return out, nil
}

// Standardize z-scores every non-bias column of X in place and returns the
// Scaler that was applied, so the same transform can be applied to new rows.
//
// Errors:
//   - ErrEmpty when the dataset has no rows.
func (d *Dataset) Standardize() (*Scaler, error) {
	if d.Len() == 0 {
		return nil, ErrEmpty
	}

	n := d.Features()
	sc := &Scaler{
		Means:   make([]float64, n),
		StdDevs: make([]float64, n),
	}
	sc.StdDevs[0] = 1
	for _, cs := range d.Summary() {
		sc.Means[cs.Column] = cs.Mean
		sc.StdDevs[cs.Column] = cs.StdDev
	}

	for _, row := range d.X {
		if err := sc.Transform(row); err != nil {
			return nil, err
		}
	}

	return sc, nil
}
