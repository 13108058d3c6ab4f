// Package logistic fits binary logistic-regression parameters with batch
// gradient descent.
//
// 🚀 What is it?
//
//	Given a feature matrix X (bias column 1.0 first), labels y ∈ {0,1},
//	a learning rate alpha and an iteration count, Fit repeats
//	  1. h_i = σ(θ·x_i) for every row (complete pass, old θ)
//	  2. θ_j ← θ_j − alpha · Σ_i (h_i − y_i)·x_ij / m  for every feature
//	exactly `iterations` times and returns the resulting θ.
//
// ✨ Key features:
//   - batch updates: the whole hypothesis vector is computed before θ moves
//   - θ is mutated in place and also returned as an independent copy
//   - sentinel errors for every shape violation; θ is untouched on error
//   - optional score clamping, optional tolerance-based early exit and a
//     per-iteration hook (all off by default)
//   - Cost, Predict, Accuracy and DecisionBoundary helpers for reporting
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/logit/logistic"
//
//	theta := make([]float64, len(x[0]))
//	fitted, err := logistic.Fit(x, y, 0.01, theta, 6500)
//
// Performance:
//
//   - Time:   O(iterations · m · n)
//   - Memory: O(m) for the hypothesis vector
//
// Fit performs no I/O and keeps no global state; independent calls may run
// concurrently as long as they do not share a θ buffer.
package logistic
