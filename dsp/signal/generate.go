// Package signal generates deterministic test signals sized for a
// transform or filter block.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/cwbudde/algo-dspkit/dsp/buffer"
	"github.com/cwbudde/algo-dspkit/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidParameter reports a non-positive length, sample rate or
// negative amplitude.
var ErrInvalidParameter = errors.New("signal: invalid parameter")

// Waveform names a signal shape produced by Generator.Generate.
type Waveform string

const (
	WaveSine    Waveform = "sine"
	WaveNoise   Waveform = "noise"
	WaveImpulse Waveform = "impulse"
	WaveDC      Waveform = "dc"
)

// ParseWaveform maps a case-insensitive name to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	w := Waveform(strings.ToLower(strings.TrimSpace(name)))
	switch w {
	case WaveSine, WaveNoise, WaveImpulse, WaveDC:
		return w, nil
	default:
		return "", fmt.Errorf("%w: unknown waveform %q", ErrInvalidParameter, name)
	}
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used by WhiteNoise.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator from processor options and
// generator-specific options.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

func (g *Generator) check(name string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %s samples must be > 0: %d", ErrInvalidParameter, name, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: %s sample rate must be > 0: %f", ErrInvalidParameter, name, g.cfg.SampleRate)
	}
	return nil
}

// Sine generates a sine wave starting at phase 0.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// MultiSine sums one sine of the given amplitude per frequency.
func (g *Generator) MultiSine(freqsHz []float64, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("multisine", samples); err != nil {
		return nil, err
	}
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("%w: multisine needs at least one frequency", ErrInvalidParameter)
	}
	out := make([]float64, samples)
	for _, f := range freqsHz {
		tone, err := g.Sine(f, amplitude, samples)
		if err != nil {
			return nil, err
		}
		vecmath.AddBlockInPlace(out, tone)
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := g.check("noise", samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %f", ErrInvalidParameter, amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse generates a single sample of the given amplitude at position 0.
func (g *Generator) Impulse(amplitude float64, samples int) ([]float64, error) {
	if err := g.check("impulse", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	out[0] = amplitude
	return out, nil
}

// DC generates a constant signal.
func (g *Generator) DC(value float64, samples int) ([]float64, error) {
	if err := g.check("dc", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

// Generate produces one block of BufferSize samples of the given waveform.
// freqHz is only used by WaveSine.
func (g *Generator) Generate(w Waveform, freqHz, amplitude float64) ([]float64, error) {
	n := g.cfg.BufferSize
	switch w {
	case WaveSine:
		return g.Sine(freqHz, amplitude, n)
	case WaveNoise:
		return g.WhiteNoise(amplitude, n)
	case WaveImpulse:
		return g.Impulse(amplitude, n)
	case WaveDC:
		return g.DC(amplitude, n)
	default:
		return nil, fmt.Errorf("%w: unknown waveform %q", ErrInvalidParameter, w)
	}
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: normalize target peak must be >= 0: %f", ErrInvalidParameter, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: normalize input must not be empty", ErrInvalidParameter)
	}

	out := make([]float64, len(data))
	maxAbs := buffer.Peak(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
