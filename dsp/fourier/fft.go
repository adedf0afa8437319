package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dspkit/dsp/buffer"
	"github.com/cwbudde/algo-dspkit/dsp/core"
	"github.com/cwbudde/algo-dspkit/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// scratch backs the input copies used by Forward and the bit-reversed
// copies used by Inverse.
var scratch = buffer.NewPool()

// stage copies samples into pooled scratch, so a caller may pass one of the
// instance's own buffers (Real, Imag, Coefficients) as input. Release the
// result with scratch.Put.
func stage(samples []float64) *buffer.Buffer {
	b := scratch.Get(len(samples))
	copy(b.Samples(), samples)

	return b
}

// FFT is an iterative radix-2 complex transform for power-of-two sizes.
type FFT struct {
	*spectrum.State

	reverseTable []int
	sinTable     []float64
	cosTable     []float64
}

// NewFFT creates an FFT for blocks of bufferSize samples. bufferSize must be
// a power of two and at least 2.
func NewFFT(bufferSize int, sampleRate float64) (*FFT, error) {
	if bufferSize < 2 || !core.IsPowerOfTwo(bufferSize) {
		return nil, fmt.Errorf("%w: fft needs a power of two >= 2, got %d", ErrInvalidBufferSize, bufferSize)
	}

	state, err := spectrum.NewState(bufferSize, sampleRate)
	if err != nil {
		return nil, err
	}

	f := &FFT{
		State:        state,
		reverseTable: bitReverseTable(bufferSize),
		sinTable:     make([]float64, bufferSize),
		cosTable:     make([]float64, bufferSize),
	}

	// Entry k is the unit step e^{-j*pi/k} of the stage whose butterflies
	// span k. Index 0 is never used by a stage and is pinned to angle 0.
	for k := 1; k < bufferSize; k++ {
		f.sinTable[k] = math.Sin(-math.Pi / float64(k))
		f.cosTable[k] = math.Cos(-math.Pi / float64(k))
	}
	f.cosTable[0] = 1

	return f, nil
}

// bitReverseTable builds the permutation by doubling: each round appends
// the previous half with the next lower bit set.
func bitReverseTable(n int) []int {
	table := make([]int, n)

	limit, bit := 1, n>>1
	for limit < n {
		for i := range limit {
			table[i+limit] = table[i] + bit
		}

		limit <<= 1
		bit >>= 1
	}

	return table
}

// ReverseTable returns the bit-reversal permutation. The slice is owned by
// the FFT.
func (f *FFT) ReverseTable() []int { return f.reverseTable }

// Forward transforms samples into Real and Imag and returns the magnitude
// spectrum. samples may alias Real or Imag.
func (f *FFT) Forward(samples []float64) ([]float64, error) {
	if err := checkInput("fft", samples, f.BufferSize()); err != nil {
		return nil, err
	}

	in := stage(samples)
	defer scratch.Put(in)

	src := in.Samples()
	re, im := f.Real(), f.Imag()
	for i, r := range f.reverseTable {
		re[i] = src[r]
	}
	core.Zero(im)

	f.butterflies(re, im)

	return f.Compute(), nil
}

// Inverse reconstructs the time-domain real signal from a full complex
// spectrum. specRe and specIm are left untouched; the result is a new
// slice.
func (f *FFT) Inverse(specRe, specIm []float64) ([]float64, error) {
	n := f.BufferSize()
	if err := checkInput("fft inverse real", specRe, n); err != nil {
		return nil, err
	}
	if err := checkInput("fft inverse imag", specIm, n); err != nil {
		return nil, err
	}

	reBuf := scratch.Get(n)
	imBuf := scratch.Get(n)
	defer scratch.Put(reBuf)
	defer scratch.Put(imBuf)

	re, im := reBuf.Samples(), imBuf.Samples()

	// Conjugating the input turns the forward butterflies into the inverse.
	for i, r := range f.reverseTable {
		re[i] = specRe[r]
		im[i] = -specIm[r]
	}

	f.butterflies(re, im)

	out := make([]float64, n)
	vecmath.ScaleBlock(out, re, 1/float64(n))

	return out, nil
}

// InverseSelf inverts the spectrum currently held in Real and Imag.
func (f *FFT) InverseSelf() []float64 {
	out, _ := f.Inverse(f.Real(), f.Imag())
	return out
}

// butterflies runs the radix-2 stages over bit-reversed data in place.
func (f *FFT) butterflies(re, im []float64) {
	n := len(re)

	for halfSize := 1; halfSize < n; halfSize <<= 1 {
		stepRe := f.cosTable[halfSize]
		stepIm := f.sinTable[halfSize]
		curRe, curIm := 1.0, 0.0

		for fftStep := 0; fftStep < halfSize; fftStep++ {
			for i := fftStep; i < n; i += halfSize << 1 {
				off := i + halfSize
				tr := curRe*re[off] - curIm*im[off]
				ti := curRe*im[off] + curIm*re[off]

				re[off] = re[i] - tr
				im[off] = im[i] - ti
				re[i] += tr
				im[i] += ti
			}

			curRe, curIm = curRe*stepRe-curIm*stepIm, curRe*stepIm+curIm*stepRe
		}
	}
}
