package logistic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/logit/matrix"
	"gonum.org/v1/gonum/floats"
)

// Fit runs batch gradient descent for logistic regression.
//
// Algorithm Outline (per iteration, exactly `iterations` times by default):
//  1. Hypothesis pass: for every row i, s_i = Σ_j θ_j·x_ij and h_i = σ(s_i).
//     The pass reads only the θ of the previous iteration.
//  2. Update pass: for every feature j, g_j = Σ_i (h_i − y_i)·x_ij and
//     θ_j ← θ_j − alpha·g_j/m. Every g_j reads the complete h.
//
// theta is the initial guess; it is updated in place and a copy of the
// final values is returned. iterations == 0 returns a copy of theta unchanged.
//
// Errors (checked in this order, before theta is touched):
//   - ErrShapeMismatch      — len(x) != len(y).
//   - ErrEmptyTrainingSet   — len(x) == 0.
//   - ErrNoFeatures         — len(theta) == 0.
//   - ErrFeatureMismatch    — some row width != len(theta).
//   - ErrInvalidAlpha       — alpha NaN, ±Inf or <= 0.
//   - ErrNegativeIterations — iterations < 0.
//
// Complexity:
//
//	Time   = O(iterations·m·n)
//	Memory = O(m) for the hypothesis vector
func Fit(x [][]float64, y []float64, alpha float64, theta []float64, iterations int, opts ...Option) ([]float64, error) {
	if err := validateFit(x, y, alpha, theta, iterations); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	descend(x, y, alpha, theta, iterations, &o)

	out := make([]float64, len(theta))
	copy(out, theta)

	return out, nil
}

// FitDense is Fit over a matrix.Dense design matrix. Rows are read through
// no-copy views; x itself is never modified.
func FitDense(x *matrix.Dense, y []float64, alpha float64, theta []float64, iterations int, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("FitDense: %w", err)
	}

	return Fit(x.RowSlices(), y, alpha, theta, iterations, opts...)
}

// descend is the update loop. Inputs are assumed validated.
func descend(x [][]float64, y []float64, alpha float64, theta []float64, iterations int, o *Options) {
	m := len(x)
	n := len(theta)
	mf := float64(m)
	h := make([]float64, m) // hypothesis vector, reused across iterations

	var (
		i, j, iter int
		g, step    float64
		maxStep    float64
	)
	for iter = 1; iter <= iterations; iter++ {
		// Hypothesis pass: complete before any θ_j changes.
		for i = 0; i < m; i++ {
			h[i] = Sigmoid(clampScore(floats.Dot(theta, x[i]), o.scoreClamp))
		}

		// Update pass.
		maxStep = 0
		for j = 0; j < n; j++ {
			g = 0
			for i = 0; i < m; i++ {
				g += (h[i] - y[i]) * x[i][j]
			}
			step = alpha * g / mf
			theta[j] -= step
			if a := math.Abs(step); a > maxStep {
				maxStep = a
			}
		}

		if o.onIteration != nil {
			o.onIteration(iter, theta)
		}
		if o.tolerance > 0 && maxStep < o.tolerance {
			return
		}
	}
}

// validateFit checks every Fit precondition; see Fit for the order.
func validateFit(x [][]float64, y []float64, alpha float64, theta []float64, iterations int) error {
	if err := validateTraining(x, y, theta); err != nil {
		return err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return fmt.Errorf("alpha=%g: %w", alpha, ErrInvalidAlpha)
	}
	if iterations < 0 {
		return fmt.Errorf("iterations=%d: %w", iterations, ErrNegativeIterations)
	}

	return nil
}

// validateTraining checks the labelled-data preconditions shared by Fit,
// Cost and Accuracy.
func validateTraining(x [][]float64, y []float64, theta []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%d rows, %d labels: %w", len(x), len(y), ErrShapeMismatch)
	}
	if len(x) == 0 {
		return ErrEmptyTrainingSet
	}

	return validateDesign(x, theta)
}

// validateDesign checks that theta is non-empty and every row matches it.
func validateDesign(x [][]float64, theta []float64) error {
	if len(theta) == 0 {
		return ErrNoFeatures
	}
	if err := matrix.ValidateRowWidths(x, len(theta)); err != nil {
		return fmt.Errorf("%w: %w", ErrFeatureMismatch, err)
	}

	return nil
}
