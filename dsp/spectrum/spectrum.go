package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	if len(dst) == 0 {
		return
	}

	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	if len(dst) == 0 {
		return
	}

	vecmath.Power(dst, re, im)
}

// PhaseFromParts computes arg(X[k]) in radians into dst.
func PhaseFromParts(dst, re, im []float64) {
	for i := range dst {
		dst[i] = math.Atan2(im[i], re[i])
	}
}
