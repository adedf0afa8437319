package fourier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-dspkit/internal/testutil"
)

func TestNewPlanValidation(t *testing.T) {
	for _, size := range []int{0, 1, 10} {
		_, err := NewPlan(size, 44100)
		if !errors.Is(err, ErrInvalidBufferSize) {
			t.Fatalf("NewPlan(%d) error = %v, want ErrInvalidBufferSize", size, err)
		}
	}
}

func TestPlanMatchesFFT(t *testing.T) {
	for _, n := range []int{8, 64, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			p, err := NewPlan(n, 44100)
			if err != nil {
				t.Fatalf("NewPlan() error = %v", err)
			}

			f, err := NewFFT(n, 44100)
			if err != nil {
				t.Fatalf("NewFFT() error = %v", err)
			}

			x := testutil.MultiSine(n, 1, 3, n/8)

			pSpec, err := p.Forward(x)
			if err != nil {
				t.Fatalf("Plan Forward() error = %v", err)
			}

			fSpec, err := f.Forward(x)
			if err != nil {
				t.Fatalf("FFT Forward() error = %v", err)
			}

			testutil.RequireSliceRelNearlyEqual(t, pSpec, fSpec, 1e-9)
			testutil.RequireSliceRelNearlyEqual(t, p.Real(), f.Real(), 1e-9)
			testutil.RequireSliceRelNearlyEqual(t, p.Imag(), f.Imag(), 1e-9)
		})
	}
}

func TestPlanRoundTrip(t *testing.T) {
	p, err := NewPlan(256, 44100)
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}

	x := testutil.DeterministicNoise(11, 0.5, 256)
	if _, err := p.Forward(x); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	got, err := p.Inverse(p.Real(), p.Imag())
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}

	testutil.RequireSliceRelNearlyEqual(t, got, x, 1e-9)
}
