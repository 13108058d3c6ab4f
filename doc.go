// Package logit fits binary logistic-regression models with batch gradient
// descent — a small, deterministic numeric toolkit with no hidden state.
//
// 🚀 What is logit?
//
//	A pure-Go module that takes a labelled training file and produces the
//	parameter vector θ minimising the logistic cost:
//		• Loading: comma-separated text, optionally gzip/zstd/lz4 compressed
//		• Fitting: fixed-iteration batch gradient descent
//		• Reporting: cost, accuracy and decision boundary helpers
//
// ✨ Why choose logit?
//
//   - Deterministic – same input, bitwise-identical θ
//   - Safe – every shape violation is a sentinel error, never a panic or NaN
//   - Concurrent-friendly – no globals; run independent fits in parallel
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/    — row-major Dense storage, sentinel errors & validators
//	logistic/  — Fit, Sigmoid, Cost, Predict, Accuracy, DecisionBoundary
//	dataset/   — Load/Read training files, fingerprint, summary, standardize
//	cmd/logit  — command-line driver
//
// Quick example:
//
//	ds, _ := dataset.Load("exams.csv")
//	theta, err := logistic.Fit(ds.X, ds.Y, 0.01, make([]float64, ds.Features()), 6500)
//
//	go install github.com/katalvlaran/logit/cmd/logit@latest
package logit
