package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidSize reports a buffer size that is not a positive even number.
	ErrInvalidSize = errors.New("spectrum: invalid buffer size")
	// ErrInvalidSampleRate reports a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("spectrum: invalid sample rate")
)

// State owns the buffers of one transform instance. It is not safe for
// concurrent use; each transform holds its own State.
type State struct {
	bufferSize int
	sampleRate float64
	bandWidth  float64

	real     []float64
	imag     []float64
	spectrum []float64

	peak    float64
	peakBin int
}

// NewState allocates the real, imaginary and spectrum buffers for a
// transform of bufferSize samples taken at sampleRate Hz.
func NewState(bufferSize int, sampleRate float64) (*State, error) {
	if bufferSize < 2 || bufferSize%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, bufferSize)
	}

	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	return &State{
		bufferSize: bufferSize,
		sampleRate: sampleRate,
		bandWidth:  2 * sampleRate / float64(bufferSize) / 2,
		real:       make([]float64, bufferSize),
		imag:       make([]float64, bufferSize),
		spectrum:   make([]float64, bufferSize/2),
	}, nil
}

// BufferSize returns the transform length.
func (s *State) BufferSize() int { return s.bufferSize }

// SampleRate returns the sample rate in Hz.
func (s *State) SampleRate() float64 { return s.sampleRate }

// BandWidth returns the width of one bin in Hz.
func (s *State) BandWidth() float64 { return s.bandWidth }

// Real returns the real part buffer. The slice is owned by the State and
// overwritten by the next transform call.
func (s *State) Real() []float64 { return s.real }

// Imag returns the imaginary part buffer. The slice is owned by the State
// and overwritten by the next transform call.
func (s *State) Imag() []float64 { return s.imag }

// Spectrum returns the magnitude spectrum computed by the last Compute.
func (s *State) Spectrum() []float64 { return s.spectrum }

// Peak returns the largest magnitude observed since construction or the
// last ResetPeak.
func (s *State) Peak() float64 { return s.peak }

// PeakBin returns the bin index at which Peak was observed.
func (s *State) PeakBin() int { return s.peakBin }

// PeakFrequency returns the middle frequency of PeakBin in Hz.
func (s *State) PeakFrequency() float64 { return s.BandFrequency(s.peakBin) }

// ResetPeak clears the running peak tracker.
func (s *State) ResetPeak() {
	s.peak = 0
	s.peakBin = 0
}

// BandFrequency returns the middle frequency of bin index in Hz.
func (s *State) BandFrequency(index int) float64 {
	return s.bandWidth*float64(index) + s.bandWidth/2
}

// Compute derives the magnitude spectrum from the real and imaginary
// buffers: (2/N)*|X[i]| for i in [0, N/2). Any magnitude above the running
// peak updates Peak and PeakBin. The returned slice is the State's own
// spectrum buffer.
func (s *State) Compute() []float64 {
	half := s.bufferSize / 2

	MagnitudeFromParts(s.spectrum, s.real[:half], s.imag[:half])
	vecmath.ScaleBlock(s.spectrum, s.spectrum, 2/float64(s.bufferSize))

	for i, mag := range s.spectrum {
		if mag > s.peak {
			s.peak = mag
			s.peakBin = i
		}
	}

	return s.spectrum
}

// PowerSpectrum returns the squared normalized magnitude of each bin as a
// new slice. It does not touch the peak tracker.
func (s *State) PowerSpectrum() []float64 {
	half := s.bufferSize / 2
	out := make([]float64, half)
	PowerFromParts(out, s.real[:half], s.imag[:half])

	scale := 2 / float64(s.bufferSize)
	vecmath.ScaleBlock(out, out, scale*scale)

	return out
}

// Phase returns arg(X[i]) in radians for i in [0, N/2) as a new slice.
func (s *State) Phase() []float64 {
	half := s.bufferSize / 2
	out := make([]float64, half)
	PhaseFromParts(out, s.real[:half], s.imag[:half])

	return out
}
