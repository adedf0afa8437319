package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dspkit/dsp/filter/biquad"
)

func (a *app) newResponseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the frequency response, poles and zeros of a biquad design",
		Args:  cobra.NoArgs,
		RunE:  a.runResponse,
	}

	fs := cmd.Flags()
	addFilterFlags(fs)
	fs.Int("points", 16, "number of log-spaced frequencies")
	fs.Float64("min-freq", 20, "lowest frequency in Hz")
	fs.Float64("max-freq", 20000, "highest frequency in Hz (limited to Nyquist)")

	return cmd
}

func (a *app) runResponse(cmd *cobra.Command, _ []string) error {
	cfg, err := a.filterConfig(0)
	if err != nil {
		return err
	}

	f, err := biquad.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	freqs, err := logFrequencies(
		a.v.GetFloat64("min_freq"),
		math.Min(a.v.GetFloat64("max_freq"), cfg.SampleRate/2),
		a.v.GetInt("points"),
	)
	if err != nil {
		return err
	}

	a.log.WithField("type", cfg.Type.String()).Debug("computing frequency response")

	return printResponse(cmd.OutOrStdout(), f, freqs)
}

// logFrequencies returns n frequencies spaced evenly on a log scale from lo
// to hi inclusive.
func logFrequencies(lo, hi float64, n int) ([]float64, error) {
	if lo <= 0 || hi < lo {
		return nil, fmt.Errorf("invalid frequency range %g..%g Hz", lo, hi)
	}

	if n < 1 {
		return nil, fmt.Errorf("invalid number of points %d", n)
	}

	if n == 1 {
		return []float64{lo}, nil
	}

	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return out, nil
}

func printResponse(w io.Writer, f *biquad.Filter, freqs []float64) error {
	cfg := f.Config()
	c := f.Normalized()

	fmt.Fprintf(w, "%s at %.2f Hz, fs %.0f Hz\n", cfg.Type, cfg.CenterFrequency, cfg.SampleRate)
	fmt.Fprintf(w, "b: %.6f %.6f %.6f\n", c.B0, c.B1, c.B2)
	fmt.Fprintf(w, "a: 1 %.6f %.6f\n\n", c.A1, c.A2)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude [dB]\tPhase [deg]\n")
	fmt.Fprintf(tw, "--------------\t--------------\t-----------\n")

	for _, freq := range freqs {
		h := f.Response(freq)
		mag := cmplx.Abs(h)

		fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\n", freq, 20*math.Log10(mag), cmplx.Phase(h)*180/math.Pi)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	pz := f.PoleZeroPair()
	fmt.Fprintf(w, "\npoles: %s, %s\n", formatRoot(pz.Poles[0]), formatRoot(pz.Poles[1]))
	fmt.Fprintf(w, "zeros: %s, %s\n", formatRoot(pz.Zeros[0]), formatRoot(pz.Zeros[1]))
	_, err := fmt.Fprintf(w, "stable: %t\n", f.IsStable())

	return err
}

func formatRoot(z complex128) string {
	return fmt.Sprintf("%.4f%+.4fj", real(z), imag(z))
}
