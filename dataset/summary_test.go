package dataset_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/logit/dataset"
	"github.com/katalvlaran/logit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummary reports per-column statistics, skipping the bias.
func TestSummary(t *testing.T) {
	ds := mustRead(t, "1,10,0\n2,10,0\n3,10,1\n")

	s := ds.Summary()
	require.Len(t, s, 2)

	assert.Equal(t, 1, s[0].Column)
	assert.InDelta(t, 2.0, s[0].Mean, 1e-12)
	assert.InDelta(t, 1.0, s[0].StdDev, 1e-12) // sample std of 1,2,3
	assert.Equal(t, 1.0, s[0].Min)
	assert.Equal(t, 3.0, s[0].Max)

	assert.Equal(t, 2, s[1].Column)
	assert.InDelta(t, 10.0, s[1].Mean, 1e-12)
	assert.Zero(t, s[1].StdDev)
}

// TestSummary_Degenerate covers empty, bias-only and single-row sets.
func TestSummary_Degenerate(t *testing.T) {
	assert.Nil(t, mustRead(t, "").Summary())
	assert.Nil(t, (&dataset.Dataset{X: [][]float64{{1}}, Y: []float64{0}}).Summary())

	s := mustRead(t, "5,1\n").Summary()
	require.Len(t, s, 1)
	assert.Equal(t, 5.0, s[0].Mean)
	assert.Zero(t, s[0].StdDev)
}

// TestStandardize z-scores in place and returns a reusable scaler.
func TestStandardize(t *testing.T) {
	ds := mustRead(t, "1,10,0\n2,10,0\n3,10,1\n")

	sc, err := ds.Standardize()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 10}, sc.Means)
	assert.InDelta(t, 1.0, sc.StdDevs[1], 1e-12)
	assert.Equal(t, 1.0, sc.StdDevs[0])

	for i, want := range []float64{-1, 0, 1} {
		assert.Equal(t, 1.0, ds.X[i][0], "bias untouched")
		assert.InDelta(t, want, ds.X[i][1], 1e-12)
		assert.Zero(t, ds.X[i][2], "constant column is centred only")
	}

	row := []float64{1, 4, 12}
	require.NoError(t, sc.Transform(row))
	assert.InDelta(t, 2.0, row[1], 1e-12)
	assert.InDelta(t, 2.0, row[2], 1e-12)

	err = sc.Transform([]float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScaler_Unscale maps standardised parameters back to raw units.
func TestScaler_Unscale(t *testing.T) {
	ds := mustRead(t, "1,10,0\n2,10,0\n3,10,1\n")
	raw := [][]float64{{1, 1, 10}, {1, 2.5, 10}, {1, 7, 10}}

	sc, err := ds.Standardize()
	require.NoError(t, err)

	theta := []float64{0.5, 2, 3}
	orig, err := sc.Unscale(theta)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 2, 3}, theta, "input untouched")
	assert.InDelta(t, 2.0, orig[1], 1e-12)
	assert.InDelta(t, 3.0, orig[2], 1e-12)
	assert.InDelta(t, 0.5-4-30, orig[0], 1e-12)

	for _, row := range raw {
		want := orig[0] + orig[1]*row[1] + orig[2]*row[2]
		z := append([]float64(nil), row...)
		require.NoError(t, sc.Transform(z))
		assert.InDelta(t, want, theta[0]+theta[1]*z[1]+theta[2]*z[2], 1e-9)
	}

	_, err = sc.Unscale([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestStandardize_Empty refuses an empty set.
func TestStandardize_Empty(t *testing.T) {
	_, err := mustRead(t, "").Standardize()
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}

// TestStandardize_Finite keeps single-row data finite.
func TestStandardize_Finite(t *testing.T) {
	ds := mustRead(t, "7,3,1\n")

	_, err := ds.Standardize()
	require.NoError(t, err)
	for _, v := range ds.X[0] {
		assert.False(t, math.IsNaN(v))
	}
	assert.Equal(t, []float64{1, 0, 0}, ds.X[0])
}
