package fourier

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-dspkit/dsp/core"
	"github.com/cwbudde/algo-dspkit/internal/testutil"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{in: "fft", want: AlgorithmFFT},
		{in: "RFFT", want: AlgorithmRFFT},
		{in: " dft ", want: AlgorithmDFT},
		{in: "plan", want: AlgorithmPlan},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q) error = %v", tt.in, err)
		}

		if got != tt.want {
			t.Fatalf("ParseAlgorithm(%q) = %v, want %v", tt.in, got, tt.want)
		}

		if round, _ := ParseAlgorithm(got.String()); round != got {
			t.Fatalf("String() of %v does not parse back", got)
		}
	}

	if _, err := ParseAlgorithm("wavelet"); err == nil {
		t.Fatal("ParseAlgorithm(wavelet) expected error")
	}
}

func TestNewAllAlgorithmsAgree(t *testing.T) {
	cfg := core.ApplyProcessorOptions(core.WithBufferSize(128), core.WithSampleRate(12800))
	x := testutil.MultiSine(cfg.BufferSize, 4, 20)

	var want []float64

	for _, alg := range []Algorithm{AlgorithmFFT, AlgorithmRFFT, AlgorithmDFT, AlgorithmPlan} {
		tr, err := NewFromConfig(alg, cfg)
		if err != nil {
			t.Fatalf("NewFromConfig(%v) error = %v", alg, err)
		}

		if tr.BufferSize() != 128 || tr.SampleRate() != 12800 || tr.BandWidth() != 100 {
			t.Fatalf("%v: size/rate/bandwidth = %d/%v/%v", alg, tr.BufferSize(), tr.SampleRate(), tr.BandWidth())
		}

		spec, err := tr.Forward(x)
		if err != nil {
			t.Fatalf("%v: Forward() error = %v", alg, err)
		}

		if want == nil {
			want = append([]float64(nil), spec...)
		} else {
			testutil.RequireSliceRelNearlyEqual(t, spec, want, 1e-9)
		}

		if tr.PeakFrequency() != 450 && tr.PeakFrequency() != 2050 {
			t.Fatalf("%v: peak frequency = %v, want 450 or 2050", alg, tr.PeakFrequency())
		}
	}
}

func TestNewUnknownAlgorithm(t *testing.T) {
	if _, err := New(Algorithm(99), 8, 44100); err == nil {
		t.Fatal("New(unknown) expected error")
	}

	if got := Algorithm(99).String(); got != "Algorithm(99)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestNewPropagatesSizeErrors(t *testing.T) {
	if _, err := New(AlgorithmRFFT, 12, 44100); !errors.Is(err, ErrInvalidBufferSize) {
		t.Fatalf("New(rfft, 12) error = %v, want ErrInvalidBufferSize", err)
	}

	if _, err := New(AlgorithmDFT, 12, 44100); err != nil {
		t.Fatalf("New(dft, 12) error = %v, want nil", err)
	}
}

func TestForwardAcceptsOwnBuffers(t *testing.T) {
	const n = 64

	x := testutil.DeterministicNoise(11, 1, n)

	for _, alg := range []Algorithm{AlgorithmFFT, AlgorithmRFFT, AlgorithmDFT, AlgorithmPlan} {
		ref, err := New(alg, n, 48000)
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}

		refSpec, err := ref.Forward(x)
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}

		buffers := map[string]func(Transformer) []float64{
			"real": Transformer.Real,
			"imag": Transformer.Imag,
		}
		if alg == AlgorithmRFFT {
			buffers["coefficients"] = func(tr Transformer) []float64 { return tr.(*RFFT).Coefficients() }
		}

		for name, buf := range buffers {
			tr, err := New(alg, n, 48000)
			if err != nil {
				t.Fatalf("%s: %v", alg, err)
			}

			in := buf(tr)
			copy(in, x)

			spec, err := tr.Forward(in)
			if err != nil {
				t.Fatalf("%s/%s: %v", alg, name, err)
			}

			testutil.RequireSliceNearlyEqual(t, spec, refSpec, 1e-12)
			testutil.RequireSliceNearlyEqual(t, tr.Real(), ref.Real(), 1e-12)
			testutil.RequireSliceNearlyEqual(t, tr.Imag(), ref.Imag(), 1e-12)
		}
	}
}
