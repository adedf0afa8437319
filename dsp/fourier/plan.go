package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-dspkit/dsp/core"
	"github.com/cwbudde/algo-dspkit/dsp/spectrum"
)

// Plan delegates the complex transform to an algo-fft plan. It produces the
// same Real/Imag/Spectrum as FFT and is the fastest choice for large sizes.
type Plan struct {
	*spectrum.State

	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewPlan creates a Plan for blocks of bufferSize samples. bufferSize must be
// a power of two and at least 2.
func NewPlan(bufferSize int, sampleRate float64) (*Plan, error) {
	if bufferSize < 2 || !core.IsPowerOfTwo(bufferSize) {
		return nil, fmt.Errorf("%w: plan needs a power of two >= 2, got %d", ErrInvalidBufferSize, bufferSize)
	}

	state, err := spectrum.NewState(bufferSize, sampleRate)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(bufferSize)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}

	return &Plan{
		State: state,
		plan:  plan,
		in:    make([]complex128, bufferSize),
		out:   make([]complex128, bufferSize),
	}, nil
}

// Forward transforms samples into Real and Imag and returns the magnitude
// spectrum.
func (p *Plan) Forward(samples []float64) ([]float64, error) {
	if err := checkInput("plan", samples, p.BufferSize()); err != nil {
		return nil, err
	}

	for i, v := range samples {
		p.in[i] = complex(v, 0)
	}

	if err := p.plan.Forward(p.out, p.in); err != nil {
		return nil, fmt.Errorf("fourier: forward FFT failed: %w", err)
	}

	re, im := p.Real(), p.Imag()
	for i, c := range p.out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return p.Compute(), nil
}

// Inverse reconstructs the time-domain real signal from a full complex
// spectrum. The result is a new slice.
func (p *Plan) Inverse(specRe, specIm []float64) ([]float64, error) {
	n := p.BufferSize()
	if err := checkInput("plan inverse real", specRe, n); err != nil {
		return nil, err
	}
	if err := checkInput("plan inverse imag", specIm, n); err != nil {
		return nil, err
	}

	for i := range p.in {
		p.in[i] = complex(specRe[i], specIm[i])
	}

	if err := p.plan.Inverse(p.out, p.in); err != nil {
		return nil, fmt.Errorf("fourier: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i, c := range p.out {
		out[i] = real(c)
	}

	return out, nil
}
