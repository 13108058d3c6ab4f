package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/logit/dataset"
	"github.com/katalvlaran/logit/logistic"
)

// run loads path, fits theta from zeros and prints the non-bias parameters
// to stdout. With cfg.Standardize the fit runs on z-scored features and the
// printed parameters are mapped back to the original units. Every error is returned unchanged to the caller and is fatal.
func run(path string, cfg config, stdout io.Writer, log *slog.Logger) error {
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance < 0 {
		return &UsageError{msg: fmt.Sprintf("tolerance must be finite and >= 0, got %v", cfg.Tolerance)}
	}
	log.Info("reading data", "path", path, "compression", dataset.CompressionFor(path))

	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}
	log.Info("loaded dataset",
		"rows", ds.Len(),
		"features", max(ds.Features()-1, 0),
		"skipped_lines", ds.Skipped,
		"fingerprint", fmt.Sprintf("%016x", ds.Fingerprint()))
	for _, cs := range ds.Summary() {
		log.Debug("feature", "column", cs.Column, "mean", cs.Mean, "stddev", cs.StdDev, "min", cs.Min, "max", cs.Max)
	}

	// An empty set is left for the engine to reject with its own error.
	var sc *dataset.Scaler
	if cfg.Standardize && ds.Len() > 0 {
		if sc, err = ds.Standardize(); err != nil {
			return err
		}
		log.Info("standardized features", "means", sc.Means[1:], "stddevs", sc.StdDevs[1:])
	}

	opts := []logistic.Option{logistic.WithTolerance(cfg.Tolerance)}
	if cfg.Verbose {
		every := progressEvery(cfg.Iterations)
		opts = append(opts, logistic.WithIterationHook(func(iter int, theta []float64) {
			if iter%every == 0 {
				c, err := logistic.Cost(ds.X, ds.Y, theta)
				if err != nil {
					log.Warn("progress cost", "iteration", iter, "error", err)
					return
				}
				log.Debug("progress", "iteration", iter, "cost", c)
			}
		}))
	}

	theta := make([]float64, ds.Features())
	start := time.Now()
	fitted, err := logistic.Fit(ds.X, ds.Y, cfg.Alpha, theta, cfg.Iterations, opts...)
	if err != nil {
		return err
	}

	cost, err := logistic.Cost(ds.X, ds.Y, fitted)
	if err != nil {
		return err
	}
	acc, err := logistic.Accuracy(ds.X, ds.Y, fitted, 0.5)
	if err != nil {
		return err
	}
	log.Info("fit complete", "elapsed", time.Since(start), "cost", cost, "accuracy", acc, "bias", fitted[0])

	// Reported thetas are always in the units of the input file.
	if sc != nil {
		log.Info("standardized thetas", "thetas", fitted[1:], "bias", fitted[0])
		if fitted, err = sc.Unscale(fitted); err != nil {
			return err
		}
		log.Info("thetas in original units", "bias", fitted[0])
	}

	_, err = fmt.Fprintf(stdout,
		"Found thetas using Gradient Descent with learning speed %v and %d number of iterations: %v\n",
		cfg.Alpha, cfg.Iterations, fitted[1:])

	return err
}

// progressEvery picks a hook stride giving about ten progress lines.
func progressEvery(iterations int) int {
	if iterations < 10 {
		return 1
	}

	return iterations / 10
}
