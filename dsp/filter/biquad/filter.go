package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// ChannelState is the Direct Form I delay line of one channel.
type ChannelState struct {
	X1, X2 float64 // previous inputs
	Y1, Y2 float64 // previous outputs
}

// State holds the delay lines of both channels. Mono processing uses Left.
type State struct {
	Left, Right ChannelState
}

// Filter is a configurable biquad with persistent left and right delay
// registers. Obtain one from New or NewFromConfig; a zero Filter stays
// unconfigured until SetConfig succeeds. It is not safe for concurrent use.
type Filter struct {
	cfg        Config
	configured bool

	raw  RawCoefficients
	norm Coefficients

	left, right ChannelState
}

// New returns a passthrough Filter of type t. The type and sample rate are
// recorded in its Config; coefficients stay at identity until a setter is
// called.
func New(t FilterType, sampleRate float64) (*Filter, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFilterType, int(t))
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidConfig, sampleRate)
	}

	f := &Filter{cfg: DefaultConfig(t, sampleRate)}
	f.raw = Identity()
	f.norm = f.raw.Normalize()

	return f, nil
}

// NewFromConfig returns a configured Filter. Q and shelf slope are clamped
// to their valid ranges.
func NewFromConfig(cfg Config) (*Filter, error) {
	f := &Filter{}
	if err := f.SetConfig(cfg); err != nil {
		return nil, err
	}

	return f, nil
}

// SetConfig replaces every parameter at once and recomputes the
// coefficients. On error the filter is left untouched.
func (f *Filter) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	return f.apply(cfg.clamped())
}

// apply designs cfg and commits it. Delay registers are kept so parameter
// changes do not interrupt a running stream. An invalid cfg commits nothing.
func (f *Filter) apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	raw, err := Design(cfg)
	if err != nil {
		return err
	}

	f.cfg = cfg
	f.raw = raw
	f.norm = raw.Normalize()
	f.configured = true

	return nil
}

// update applies a setter to a copy of the current config. For filters from
// New or NewFromConfig the result is always valid; a zero Filter has no
// sample rate, so its setters leave it unconfigured until SetConfig.
func (f *Filter) update(mutate func(*Config)) {
	cfg := f.cfg
	mutate(&cfg)
	_ = f.apply(cfg.clamped())
}

// SetFilterType switches the transfer function. An unsupported type returns
// ErrUnsupportedFilterType and leaves the filter unchanged.
func (f *Filter) SetFilterType(t FilterType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedFilterType, int(t))
	}

	f.update(func(c *Config) { c.Type = t })

	return nil
}

// SetSampleRate sets the sample rate in Hz. Non-positive values are ignored
// but still recompute the current design.
func (f *Filter) SetSampleRate(sampleRate float64) {
	f.update(func(c *Config) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			c.SampleRate = sampleRate
		}
	})
}

// SetQ selects the Q parameterization. q is clamped to [MinQ, MaxQ].
func (f *Filter) SetQ(q float64) {
	f.update(func(c *Config) {
		c.Q = q
		c.Parameterization = ParamQ
	})
}

// SetBandwidth selects the bandwidth parameterization. bw is in octaves
// between the -3 dB points (midpoint gain for peaking EQ); non-positive
// values keep the previous bandwidth.
func (f *Filter) SetBandwidth(bw float64) {
	f.update(func(c *Config) {
		if bw > 0 {
			c.Bandwidth = bw
		}
		c.Parameterization = ParamBandwidth
	})
}

// SetShelfSlope selects the shelf-slope parameterization. s is clamped to
// [MinShelfSlope, MaxShelfSlope].
func (f *Filter) SetShelfSlope(s float64) {
	f.update(func(c *Config) {
		c.ShelfSlope = s
		c.Parameterization = ParamShelfSlope
	})
}

// SetCenterFrequency sets the center, corner or shelf midpoint frequency in
// Hz. Non-positive values are ignored.
func (f *Filter) SetCenterFrequency(freq float64) {
	f.update(func(c *Config) {
		if freq > 0 && !math.IsInf(freq, 0) {
			c.CenterFrequency = freq
		}
	})
}

// SetGainDB sets the gain in dB used by the peaking and shelving types.
func (f *Filter) SetGainDB(gainDB float64) {
	f.update(func(c *Config) { c.GainDB = gainDB })
}

// Type returns the configured filter type.
func (f *Filter) Type() FilterType { return f.cfg.Type }

// Config returns a copy of the current parameters.
func (f *Filter) Config() Config { return f.cfg }

// Configured reports whether any setter has run. An unconfigured filter is
// a passthrough.
func (f *Filter) Configured() bool { return f.configured }

// Coefficients returns the raw coefficients before normalization.
func (f *Filter) Coefficients() RawCoefficients { return f.raw }

// Normalized returns the a0-normalized coefficients used by the recursion.
func (f *Filter) Normalized() Coefficients { return f.norm }

// step runs one Direct Form I update on ch.
func (f *Filter) step(ch *ChannelState, x float64) float64 {
	c := &f.norm
	y := c.B0*x + c.B1*ch.X1 + c.B2*ch.X2 - c.A1*ch.Y1 - c.A2*ch.Y2

	ch.X2, ch.X1 = ch.X1, x
	ch.Y2, ch.Y1 = ch.Y1, y

	return y
}

// ProcessSample filters one sample through the left channel.
func (f *Filter) ProcessSample(x float64) float64 {
	return f.step(&f.left, x)
}

// Process filters samples through the left channel and returns a new
// slice. Consecutive calls continue the same stream.
func (f *Filter) Process(samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = f.step(&f.left, x)
	}

	return out
}

// ProcessBlock filters buf in place through the left channel.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.step(&f.left, x)
	}
}

// ProcessStereo filters interleaved [L0, R0, L1, R1, ...] samples with
// independent left and right delay lines and returns a new slice. An odd
// length returns core.ErrSizeMismatch without touching any state.
func (f *Filter) ProcessStereo(samples []float64) ([]float64, error) {
	if len(samples)%2 != 0 {
		return nil, fmt.Errorf("biquad: stereo buffer has odd length %d: %w", len(samples), core.ErrSizeMismatch)
	}

	out := make([]float64, len(samples))
	for i := 0; i < len(samples); i += 2 {
		out[i] = f.step(&f.left, samples[i])
		out[i+1] = f.step(&f.right, samples[i+1])
	}

	return out, nil
}

// Reset clears both delay lines.
func (f *Filter) Reset() {
	f.left = ChannelState{}
	f.right = ChannelState{}
}

// State returns a snapshot of both delay lines.
func (f *Filter) State() State {
	return State{Left: f.left, Right: f.right}
}

// SetState restores a snapshot taken by State.
func (f *Filter) SetState(s State) {
	f.left = s.Left
	f.right = s.Right
}
