package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dspkit/dsp/core"
	"github.com/cwbudde/algo-dspkit/dsp/spectrum"
)

// RFFT is a radix-2 transform specialized for real input. It runs the
// decimation-in-time stages on half-complex blocks, so every butterfly
// works on real arithmetic only.
//
// After Forward, Coefficients holds the packed result
// [Re0, Re1, ..., Re(N/2), Im(N/2-1), ..., Im1] and Real/Imag hold the
// full conjugate-symmetric spectrum in the same sign convention as FFT.
type RFFT struct {
	*spectrum.State

	trans        []float64
	reverseTable []int
	sinTable     []float64
	cosTable     []float64
}

// NewRFFT creates an RFFT for blocks of bufferSize samples. bufferSize must
// be a power of two and at least 2.
func NewRFFT(bufferSize int, sampleRate float64) (*RFFT, error) {
	if bufferSize < 2 || !core.IsPowerOfTwo(bufferSize) {
		return nil, fmt.Errorf("%w: rfft needs a power of two >= 2, got %d", ErrInvalidBufferSize, bufferSize)
	}

	state, err := spectrum.NewState(bufferSize, sampleRate)
	if err != nil {
		return nil, err
	}

	quarter := bufferSize / 4
	r := &RFFT{
		State:        state,
		trans:        make([]float64, bufferSize),
		reverseTable: bitReverseTable(bufferSize),
		sinTable:     make([]float64, quarter),
		cosTable:     make([]float64, quarter),
	}

	step := 2 * math.Pi / float64(bufferSize)
	for k := range quarter {
		r.sinTable[k] = math.Sin(step * float64(k))
		r.cosTable[k] = math.Cos(step * float64(k))
	}

	return r, nil
}

// ReverseBinPermute writes source into dest in bit-reversed order. Both
// slices must hold BufferSize samples and must not overlap.
func (r *RFFT) ReverseBinPermute(dest, source []float64) error {
	n := r.BufferSize()
	if err := checkInput("rfft permute dest", dest, n); err != nil {
		return err
	}
	if err := checkInput("rfft permute source", source, n); err != nil {
		return err
	}

	for i, idx := range r.reverseTable {
		dest[i] = source[idx]
	}

	return nil
}

// Coefficients returns the half-complex packed result of the last Forward.
// The slice is owned by the RFFT.
func (r *RFFT) Coefficients() []float64 { return r.trans }

// Forward transforms samples and returns the magnitude spectrum. samples may
// alias Coefficients, Real or Imag.
func (r *RFFT) Forward(samples []float64) ([]float64, error) {
	if err := checkInput("rfft", samples, r.BufferSize()); err != nil {
		return nil, err
	}

	in := stage(samples)
	defer scratch.Put(in)

	if err := r.ReverseBinPermute(r.trans, in.Samples()); err != nil {
		return nil, err
	}

	r.transform(r.trans)
	r.unpack()

	return r.Compute(), nil
}

// transform runs the half-complex stages in place. A block of size 2M holds
// the even-sample half spectrum in [0, M) and the odd-sample half spectrum
// in [M, 2M), each in packed layout; the stage merges them into the packed
// spectrum of the whole block.
func (r *RFFT) transform(x []float64) {
	n := len(x)

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		quarter := half >> 1
		stride := n / size

		for start := 0; start < n; start += size {
			b := x[start : start+size]

			e0, o0 := b[0], b[half]
			b[0] = e0 + o0
			b[half] = e0 - o0

			if half < 2 {
				continue
			}

			// Bin size/4: the even Nyquist term stays, the odd one rotates
			// by -j into the imaginary slot.
			b[half+quarter] = -b[half+quarter]

			for k := 1; k < quarter; k++ {
				c := r.cosTable[k*stride]
				s := r.sinTable[k*stride]

				er, ei := b[k], b[half-k]
				or, oi := b[half+k], b[size-k]

				tr := c*or + s*oi
				ti := c*oi - s*or

				b[k] = er + tr
				b[size-k] = ei + ti
				b[half-k] = er - tr
				b[half+k] = ti - ei
			}
		}
	}
}

// unpack expands the packed result into the full Real and Imag buffers.
func (r *RFFT) unpack() {
	n := r.BufferSize()
	half := n / 2
	re, im := r.Real(), r.Imag()
	x := r.trans

	re[0], im[0] = x[0], 0
	re[half], im[half] = x[half], 0

	for k := 1; k < half; k++ {
		re[k], im[k] = x[k], x[n-k]
		re[n-k], im[n-k] = x[k], -x[n-k]
	}
}
