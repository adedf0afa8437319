package buffer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-dspkit/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidChannel reports a channel selector outside Left, Right and Mix.
var ErrInvalidChannel = errors.New("buffer: invalid channel")

// Channel selects which part of an interleaved stereo buffer to extract.
type Channel int

const (
	// Left selects the even-indexed samples.
	Left Channel = iota
	// Right selects the odd-indexed samples.
	Right
	// Mix averages left and right.
	Mix
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Mix:
		return "mix"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel maps "left", "right" or "mix" (any case) to a Channel.
func ParseChannel(name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "mix", "mono":
		return Mix, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidChannel, name)
	}
}

// Invert returns a phase-inverted copy of samples.
func Invert(samples []float64) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}

	vecmath.ScaleBlock(out, samples, -1)

	return out
}

// Deinterleave extracts one channel from an interleaved stereo buffer.
// The input length must be even.
func Deinterleave(ch Channel, interleaved []float64) ([]float64, error) {
	if len(interleaved)%2 != 0 {
		return nil, fmt.Errorf("deinterleave odd length %d: %w", len(interleaved), core.ErrSizeMismatch)
	}

	frames := len(interleaved) / 2

	switch ch {
	case Left, Right:
		out := make([]float64, frames)
		offset := int(ch)
		for i := range out {
			out[i] = interleaved[2*i+offset]
		}

		return out, nil
	case Mix:
		left := make([]float64, frames)
		right := make([]float64, frames)
		for i := range left {
			left[i] = interleaved[2*i]
			right[i] = interleaved[2*i+1]
		}

		if frames > 0 {
			vecmath.AddBlockInPlace(left, right)
			vecmath.ScaleBlock(left, left, 0.5)
		}

		return left, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannel, int(ch))
	}
}

// Interleave merges two equally long channels into one stereo buffer.
func Interleave(left, right []float64) ([]float64, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("interleave %d/%d samples: %w", len(left), len(right), core.ErrSizeMismatch)
	}

	out := make([]float64, 2*len(left))
	for i := range left {
		out[2*i] = left[i]
		out[2*i+1] = right[i]
	}

	return out, nil
}

// MixSampleBuffers adds b to a, optionally negating b first, and divides
// the sum by volumeCorrection. A zero volumeCorrection leaves the sum
// unscaled. Both buffers must have the same length.
func MixSampleBuffers(a, b []float64, negate bool, volumeCorrection float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("mix %d/%d samples: %w", len(a), len(b), core.ErrSizeMismatch)
	}

	out := make([]float64, len(a))
	if len(a) == 0 {
		return out, nil
	}

	sign := 1.0
	if negate {
		sign = -1
	}

	if volumeCorrection == 0 {
		volumeCorrection = 1
	}

	vecmath.ScaleBlock(out, b, sign)
	vecmath.AddBlockInPlace(out, a)
	vecmath.ScaleBlock(out, out, 1/volumeCorrection)

	return out, nil
}

// RMS returns the root mean square of samples, or 0 for an empty slice.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))
}

// Peak returns the largest absolute sample value, or 0 for an empty slice.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return floats.Norm(samples, math.Inf(1))
}
