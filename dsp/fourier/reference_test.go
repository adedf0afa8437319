package fourier

import (
	"math/cmplx"
	"testing"

	godsp "github.com/mjibson/go-dsp/fft"
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-dspkit/internal/testutil"
)

func TestFFTMatchesGoDSP(t *testing.T) {
	const n = 512

	f, err := NewFFT(n, 44100)
	if err != nil {
		t.Fatalf("NewFFT() error = %v", err)
	}

	x := testutil.DeterministicNoise(3, 1, n)
	if _, err := f.Forward(x); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	ref := godsp.FFTReal(x)
	wantRe := make([]float64, n)
	wantIm := make([]float64, n)

	for i, c := range ref {
		wantRe[i] = real(c)
		wantIm[i] = imag(c)
	}

	testutil.RequireSliceRelNearlyEqual(t, f.Real(), wantRe, 1e-9)
	testutil.RequireSliceRelNearlyEqual(t, f.Imag(), wantIm, 1e-9)
}

func TestRFFTMatchesGonum(t *testing.T) {
	const n = 256

	r, err := NewRFFT(n, 44100)
	if err != nil {
		t.Fatalf("NewRFFT() error = %v", err)
	}

	x := testutil.DeterministicNoise(5, 1, n)

	spec, err := r.Forward(x)
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	coeffs := gonumfourier.NewFFT(n).Coefficients(nil, x)
	want := make([]float64, n/2)

	for i := range want {
		want[i] = 2 / float64(n) * cmplx.Abs(coeffs[i])
	}

	testutil.RequireSliceRelNearlyEqual(t, spec, want, 1e-9)
}
