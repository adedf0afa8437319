package fourier

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// Transformer is the behavior shared by every forward transform.
type Transformer interface {
	// Forward transforms exactly BufferSize samples and returns the
	// magnitude spectrum of BufferSize/2 bins. The returned slice is owned
	// by the transform.
	Forward(samples []float64) ([]float64, error)

	BufferSize() int
	SampleRate() float64
	BandWidth() float64
	Real() []float64
	Imag() []float64
	Spectrum() []float64
	Peak() float64
	PeakBin() int
	PeakFrequency() float64
	BandFrequency(index int) float64
	ResetPeak()
}

var (
	_ Transformer = (*DFT)(nil)
	_ Transformer = (*FFT)(nil)
	_ Transformer = (*RFFT)(nil)
	_ Transformer = (*Plan)(nil)
)

// Algorithm selects a Transformer implementation.
type Algorithm int

const (
	AlgorithmFFT Algorithm = iota
	AlgorithmRFFT
	AlgorithmDFT
	AlgorithmPlan
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmFFT:
		return "fft"
	case AlgorithmRFFT:
		return "rfft"
	case AlgorithmDFT:
		return "dft"
	case AlgorithmPlan:
		return "plan"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name back to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fft":
		return AlgorithmFFT, nil
	case "rfft":
		return AlgorithmRFFT, nil
	case "dft":
		return AlgorithmDFT, nil
	case "plan":
		return AlgorithmPlan, nil
	default:
		return 0, fmt.Errorf("fourier: unknown algorithm %q", name)
	}
}

// New builds the transform selected by alg.
func New(alg Algorithm, bufferSize int, sampleRate float64) (Transformer, error) {
	switch alg {
	case AlgorithmFFT:
		return NewFFT(bufferSize, sampleRate)
	case AlgorithmRFFT:
		return NewRFFT(bufferSize, sampleRate)
	case AlgorithmDFT:
		return NewDFT(bufferSize, sampleRate)
	case AlgorithmPlan:
		return NewPlan(bufferSize, sampleRate)
	default:
		return nil, fmt.Errorf("fourier: unknown algorithm %v", alg)
	}
}

// NewFromConfig builds the transform selected by alg using the buffer size
// and sample rate of cfg.
func NewFromConfig(alg Algorithm, cfg core.ProcessorConfig) (Transformer, error) {
	return New(alg, cfg.BufferSize, cfg.SampleRate)
}

func checkInput(name string, samples []float64, want int) error {
	if len(samples) != want {
		return fmt.Errorf("%s: got %d samples, want %d: %w", name, len(samples), want, core.ErrSizeMismatch)
	}

	return nil
}
