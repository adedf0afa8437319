package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dspkit/dsp/spectrum"
)

// DFT evaluates the discrete Fourier transform directly in O(n^2) time.
//
// The imaginary accumulator follows the +sin convention, so Imag holds the
// negated imaginary parts of FFT for the same input. Magnitudes agree.
type DFT struct {
	*spectrum.State

	sinTable []float64
	cosTable []float64
}

// NewDFT creates a DFT for blocks of bufferSize samples. bufferSize must be
// even and at least 2.
func NewDFT(bufferSize int, sampleRate float64) (*DFT, error) {
	if bufferSize < 2 || bufferSize%2 != 0 {
		return nil, fmt.Errorf("%w: dft needs an even size >= 2, got %d", ErrInvalidBufferSize, bufferSize)
	}

	state, err := spectrum.NewState(bufferSize, sampleRate)
	if err != nil {
		return nil, err
	}

	// Entry m holds the angle 2*pi*m/N. The index i*n used by Forward is
	// reduced modulo the table length, which is a multiple of N.
	length := bufferSize / 2 * bufferSize
	d := &DFT{
		State:    state,
		sinTable: make([]float64, length),
		cosTable: make([]float64, length),
	}

	step := 2 * math.Pi / float64(bufferSize)
	for m := range length {
		angle := step * float64(m%bufferSize)
		d.sinTable[m] = math.Sin(angle)
		d.cosTable[m] = math.Cos(angle)
	}

	return d, nil
}

// Forward computes all BufferSize bins into Real and Imag and returns the
// magnitude spectrum. samples may alias Real or Imag.
func (d *DFT) Forward(samples []float64) ([]float64, error) {
	if err := checkInput("dft", samples, d.BufferSize()); err != nil {
		return nil, err
	}

	in := stage(samples)
	defer scratch.Put(in)

	src := in.Samples()
	re, im := d.Real(), d.Imag()
	length := len(d.cosTable)

	for i := range re {
		var sumRe, sumIm float64

		k := 0
		for _, x := range src {
			sumRe += d.cosTable[k] * x
			sumIm += d.sinTable[k] * x

			k += i
			if k >= length {
				k -= length
			}
		}

		re[i] = sumRe
		im[i] = sumIm
	}

	return d.Compute(), nil
}
