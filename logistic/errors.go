package logistic

import "errors"

// Sentinel errors. Callers match with errors.Is; call sites may wrap them
// with row/feature context.
var (
	// ErrShapeMismatch indicates that the number of rows in X differs from len(y).
	ErrShapeMismatch = errors.New("logistic: rows of X and length of y differ")

	// ErrEmptyTrainingSet indicates zero training rows (the update divides by m).
	ErrEmptyTrainingSet = errors.New("logistic: empty training set")

	// ErrNoFeatures indicates an empty parameter vector, or a parameter vector
	// of the wrong length for a helper that requires a specific one.
	ErrNoFeatures = errors.New("logistic: parameter vector has wrong length")

	// ErrFeatureMismatch indicates a row of X whose width differs from len(theta).
	ErrFeatureMismatch = errors.New("logistic: row width differs from parameter count")

	// ErrInvalidAlpha indicates a learning rate that is NaN, ±Inf or not positive.
	ErrInvalidAlpha = errors.New("logistic: learning rate must be finite and > 0")

	// ErrNegativeIterations indicates iterations < 0.
	ErrNegativeIterations = errors.New("logistic: iterations must be >= 0")

	// ErrDegenerateBoundary indicates a zero slope coefficient, so no finite
	// decision boundary exists.
	ErrDegenerateBoundary = errors.New("logistic: decision boundary undefined for zero slope")
)
