package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceRelNearlyEqual is RequireSliceNearlyEqual with a tolerance
// relative to the peak magnitude of want (floored at 1), so near-zero bins
// of a large signal are judged against the signal scale.
func RequireSliceRelNearlyEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	RequireSliceNearlyEqual(t, got, want, rel*math.Max(1, PeakAbs(want)))
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// PeakAbs returns the largest absolute value in data.
func PeakAbs(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}
	return maxDiff, nil
}

// Negated returns a copy of data with every element sign-flipped.
func Negated(data []float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = -v
	}
	return out
}
