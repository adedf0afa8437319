package biquad

import "math"

// RawCoefficients are the cookbook coefficients before division by a0:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (A0 + A1*z^-1 + A2*z^-2)
type RawCoefficients struct {
	B0, B1, B2 float64
	A0, A1, A2 float64
}

// Identity returns the passthrough transfer function H(z) = 1.
func Identity() RawCoefficients {
	return RawCoefficients{B0: 1, A0: 1}
}

// Normalize divides every coefficient by A0. A zero or non-finite A0
// yields the zero filter.
func (r RawCoefficients) Normalize() Coefficients {
	if r.A0 == 0 || math.IsNaN(r.A0) || math.IsInf(r.A0, 0) {
		return Coefficients{}
	}

	return Coefficients{
		B0: r.B0 / r.A0,
		B1: r.B1 / r.A0,
		B2: r.B2 / r.A0,
		A1: r.A1 / r.A0,
		A2: r.A2 / r.A0,
	}
}

// Coefficients holds the a0-normalized transfer function used by the
// recursion:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}
