package logistic

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultScoreClamp disables clamping of the linear score s = θ·x.
	DefaultScoreClamp = 0.0

	// DefaultTolerance disables early exit: Fit runs exactly `iterations` times.
	DefaultTolerance = 0.0
)

const (
	panicScoreClampInvalid = "logistic: WithScoreClamp: limit must be finite, non-negative"
	panicToleranceInvalid  = "logistic: WithTolerance: tol must be finite, non-negative"
)

// IterationHook observes θ after iteration iter (1-based) has been applied.
// theta aliases the caller's buffer and must not be retained or modified.
type IterationHook func(iter int, theta []float64)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	scoreClamp  float64       // > 0 clamps s to [-scoreClamp, scoreClamp]
	tolerance   float64       // > 0 enables early exit on max |Δθ_j| < tolerance
	onIteration IterationHook // nil by default
}

// WithScoreClamp clamps every linear score to [-limit, limit] before the
// exponential. A limit of 0 disables clamping.
//
// Panics if limit is negative, NaN or ±Inf.
func WithScoreClamp(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 0 {
		panic(panicScoreClampInvalid)
	}

	return func(o *Options) { o.scoreClamp = limit }
}

// WithTolerance enables an early exit once the largest absolute parameter
// update of an iteration drops below tol. A tol of 0 keeps the fixed
// iteration count.
//
// Panics if tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithIterationHook registers fn to run after every completed update.
func WithIterationHook(fn IterationHook) Option {
	return func(o *Options) { o.onIteration = fn }
}

func defaultOptions() Options {
	return Options{
		scoreClamp: DefaultScoreClamp,
		tolerance:  DefaultTolerance,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
