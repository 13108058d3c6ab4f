package logistic

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// costEpsilon keeps log() finite when a hypothesis saturates at 0 or 1.
const costEpsilon = 1e-15

// Cost returns the mean cross-entropy of theta on (x, y):
//
//	J(θ) = −(1/m) Σ_i [ y_i·log(h_i) + (1−y_i)·log(1−h_i) ]
//
// with h_i clipped to [1e-15, 1−1e-15]. Shape errors match Fit's.
func Cost(x [][]float64, y []float64, theta []float64) (float64, error) {
	if err := validateTraining(x, y, theta); err != nil {
		return 0, err
	}

	var sum float64
	for i, row := range x {
		h := Sigmoid(floats.Dot(theta, row))
		h = math.Min(math.Max(h, costEpsilon), 1-costEpsilon)
		sum -= y[i]*math.Log(h) + (1-y[i])*math.Log(1-h)
	}

	return sum / float64(len(x)), nil
}

// Predict returns h_i = σ(θ·x_i) for every row of x.
// An empty x yields an empty, non-nil slice.
func Predict(x [][]float64, theta []float64) ([]float64, error) {
	if err := validateDesign(x, theta); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, row := range x {
		out[i] = Sigmoid(floats.Dot(theta, row))
	}

	return out, nil
}

// Accuracy returns the fraction of rows where (h_i >= threshold) agrees with
// (y_i >= 0.5).
func Accuracy(x [][]float64, y []float64, theta []float64, threshold float64) (float64, error) {
	if err := validateTraining(x, y, theta); err != nil {
		return 0, err
	}

	var correct int
	for i, row := range x {
		if (Sigmoid(floats.Dot(theta, row)) >= threshold) == (y[i] >= 0.5) {
			correct++
		}
	}

	return float64(correct) / float64(len(x)), nil
}

// DecisionBoundary returns the feature value x where θ0 + θ1·x = 0 for a
// single-feature model.
//
// Errors:
//   - ErrNoFeatures when len(theta) != 2.
//   - ErrDegenerateBoundary when θ1 == 0.
func DecisionBoundary(theta []float64) (float64, error) {
	if len(theta) != 2 {
		return 0, ErrNoFeatures
	}
	if theta[1] == 0 {
		return 0, ErrDegenerateBoundary
	}

	return -theta[0] / theta[1], nil
}
