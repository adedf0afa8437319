package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// Parameter limits applied by the setters and NewFromConfig.
const (
	MinQ          = 0.001
	MaxQ          = 115.0
	MinShelfSlope = 0.0001
	MaxShelfSlope = 5.0
)

// Config holds every parameter the coefficient derivation depends on.
// Only the width parameter selected by Parameterization is used.
type Config struct {
	Type             FilterType       `yaml:"type" mapstructure:"type"`
	Parameterization Parameterization `yaml:"parameterization" mapstructure:"parameterization"`
	CenterFrequency  float64          `yaml:"center_frequency" mapstructure:"center_frequency"`
	SampleRate       float64          `yaml:"sample_rate" mapstructure:"sample_rate"`
	Q                float64          `yaml:"q" mapstructure:"q"`
	Bandwidth        float64          `yaml:"bandwidth" mapstructure:"bandwidth"`
	ShelfSlope       float64          `yaml:"shelf_slope" mapstructure:"shelf_slope"`
	GainDB           float64          `yaml:"gain_db" mapstructure:"gain_db"`
}

// DefaultConfig returns the parameters a new Filter starts from: 3 kHz
// center, 12 dB gain, Q of 1, one octave bandwidth and unit shelf slope.
func DefaultConfig(t FilterType, sampleRate float64) Config {
	return Config{
		Type:             t,
		Parameterization: ParamQ,
		CenterFrequency:  3000,
		SampleRate:       sampleRate,
		Q:                1,
		Bandwidth:        1,
		ShelfSlope:       1,
		GainDB:           12,
	}
}

// Validate reports whether the config can be designed.
func (c Config) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedFilterType, int(c.Type))
	}

	if !c.Parameterization.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedParameterization, int(c.Parameterization))
	}

	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidConfig, c.SampleRate)
	}

	if !(c.CenterFrequency > 0) || math.IsInf(c.CenterFrequency, 0) {
		return fmt.Errorf("%w: center frequency must be > 0: %f", ErrInvalidConfig, c.CenterFrequency)
	}

	if !(c.Bandwidth > 0) && c.Parameterization == ParamBandwidth {
		return fmt.Errorf("%w: bandwidth must be > 0: %f", ErrInvalidConfig, c.Bandwidth)
	}

	return nil
}

// clamped returns c with Q and shelf slope limited to their valid ranges.
func (c Config) clamped() Config {
	c.Q = core.Clamp(c.Q, MinQ, MaxQ)
	c.ShelfSlope = core.Clamp(c.ShelfSlope, MinShelfSlope, MaxShelfSlope)

	return c
}
