package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dspkit/dsp/buffer"
	"github.com/cwbudde/algo-dspkit/dsp/filter/biquad"
)

func (a *app) newFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <in.wav> <out.wav>",
		Short: "Run a biquad filter over a mono or stereo WAV file",
		Long: `filter designs a cookbook biquad at the input file's sample rate and
streams every sample through it. Stereo files use independent left and
right delay lines. The output keeps the input's channel count and bit
depth; samples beyond full scale are clipped.`,
		Args: cobra.ExactArgs(2),
		RunE: a.runFilter,
	}

	addFilterFlags(cmd.Flags())

	return cmd
}

func (a *app) runFilter(_ *cobra.Command, args []string) error {
	in, outPath := args[0], args[1]

	c, err := readWAV(in)
	if err != nil {
		return err
	}

	cfg, err := a.filterConfig(float64(c.SampleRate))
	if err != nil {
		return err
	}

	f, err := biquad.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	if !f.IsStable() {
		a.log.WithField("poles", f.PoleZeroPair().Poles).Warn("filter design is unstable")
	}

	var out []float64

	switch c.Channels {
	case 1:
		out = f.Process(c.Samples)
	case 2:
		if out, err = f.ProcessStereo(c.Samples); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %d channels", errUnsupportedWAV, c.Channels)
	}

	if peak := buffer.Peak(out); peak > 1 {
		a.log.WithField("peak", peak).Warn("output exceeds full scale and will be clipped")
	}

	result := *c
	result.Samples = out

	if err := writeWAV(outPath, &result); err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"input":     in,
		"output":    outPath,
		"type":      cfg.Type.String(),
		"frequency": cfg.CenterFrequency,
		"channels":  c.Channels,
		"frames":    c.Frames(),
		"rms_in":    buffer.RMS(c.Samples),
		"rms_out":   buffer.RMS(out),
	}).Info("filter applied")

	return nil
}
