package logistic

import "math"

// Sigmoid returns the logistic function 1/(1+e^(-s)).
//
// For s < 0 the algebraically equal e^s/(1+e^s) is used so that e^(-s) is
// never evaluated for large negative scores; the result stays in [0, 1]
// without producing NaN for any finite s.
func Sigmoid(s float64) float64 {
	if s >= 0 {
		return 1 / (1 + math.Exp(-s))
	}
	e := math.Exp(s)

	return e / (1 + e)
}

// clampScore limits s to [-limit, limit]; limit <= 0 means no clamping.
func clampScore(s, limit float64) float64 {
	if limit <= 0 {
		return s
	}
	if s > limit {
		return limit
	}
	if s < -limit {
		return -limit
	}

	return s
}
