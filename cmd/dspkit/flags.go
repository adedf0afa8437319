package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-dspkit/dsp/filter/biquad"
)

func addFilterFlags(fs *pflag.FlagSet) {
	defaults := biquad.DefaultConfig(biquad.Lowpass, 0)

	fs.String("type", defaults.Type.String(), "filter type: lowpass, highpass, bandpass-skirt, bandpass-peak, notch, allpass, peaking, lowshelf, highshelf")
	fs.String("param", "", "width parameter: q, bandwidth or shelf-slope (inferred from the width flag when empty)")
	fs.Float64("frequency", defaults.CenterFrequency, "center, corner or shelf frequency in Hz")
	fs.Float64("q", defaults.Q, "quality factor")
	fs.Float64("bandwidth", defaults.Bandwidth, "bandwidth in octaves")
	fs.Float64("shelf-slope", defaults.ShelfSlope, "shelf slope")
	fs.Float64("gain", defaults.GainDB, "gain in dB for peaking and shelving types")
}

// filterConfig assembles a biquad.Config from flags, environment and the
// config file. sampleRate overrides the configured rate when positive.
func (a *app) filterConfig(sampleRate float64) (biquad.Config, error) {
	ft := biquad.Lowpass
	if name := a.v.GetString("filter.type"); name != "" {
		parsed, err := biquad.ParseFilterType(name)
		if err != nil {
			return biquad.Config{}, err
		}
		ft = parsed
	}

	if sampleRate <= 0 {
		sampleRate = a.v.GetFloat64("sample_rate")
	}

	cfg := biquad.DefaultConfig(ft, sampleRate)

	values := map[string]*float64{
		"filter.center_frequency": &cfg.CenterFrequency,
		"filter.q":                &cfg.Q,
		"filter.bandwidth":        &cfg.Bandwidth,
		"filter.shelf_slope":      &cfg.ShelfSlope,
		"filter.gain_db":          &cfg.GainDB,
	}
	for key, dst := range values {
		if a.v.IsSet(key) {
			*dst = a.v.GetFloat64(key)
		}
	}

	switch name := a.v.GetString("filter.parameterization"); {
	case name != "":
		p, err := biquad.ParseParameterization(name)
		if err != nil {
			return biquad.Config{}, err
		}
		cfg.Parameterization = p
	case a.v.IsSet("filter.bandwidth"):
		cfg.Parameterization = biquad.ParamBandwidth
	case a.v.IsSet("filter.shelf_slope"):
		cfg.Parameterization = biquad.ParamShelfSlope
	}

	if err := cfg.Validate(); err != nil {
		return biquad.Config{}, fmt.Errorf("filter config: %w", err)
	}

	return cfg, nil
}
