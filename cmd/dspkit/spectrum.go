package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dspkit/dsp/buffer"
	"github.com/cwbudde/algo-dspkit/dsp/core"
	"github.com/cwbudde/algo-dspkit/dsp/fourier"
	"github.com/cwbudde/algo-dspkit/dsp/signal"
	"github.com/cwbudde/algo-vecmath"
)

func (a *app) newSpectrumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum [file.wav]",
		Short: "Print the averaged magnitude spectrum of a WAV file or a generated signal",
		Long: `spectrum splits the input into blocks of --buffer-size samples (the last
block zero-padded), transforms each block and prints the strongest bins
of the averaged magnitude spectrum. Without a file it analyzes one block
of the --waveform signal at --sample-rate.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSpectrum,
	}

	fs := cmd.Flags()
	fs.String("algorithm", "fft", "transform: fft, rfft, dft or plan")
	fs.String("channel", "mix", "channel of stereo input: left, right or mix")
	fs.Int("top", 8, "number of strongest bins to print (0 prints all)")
	fs.String("waveform", string(signal.WaveSine), "generated signal when no file is given: sine, noise, impulse or dc")
	fs.Float64("tone", 1000, "frequency of the generated sine in Hz")
	fs.Float64("amplitude", 1, "amplitude of the generated signal")
	fs.Int64("seed", 1, "seed of the generated noise")

	return cmd
}

func (a *app) runSpectrum(cmd *cobra.Command, args []string) error {
	alg, err := fourier.ParseAlgorithm(a.v.GetString("algorithm"))
	if err != nil {
		return err
	}

	bufferSize := a.v.GetInt("buffer_size")

	var (
		samples    []float64
		sampleRate float64
		source     string
	)

	if len(args) == 1 {
		source = args[0]

		c, err := readWAV(source)
		if err != nil {
			return err
		}

		ch, err := buffer.ParseChannel(a.v.GetString("channel"))
		if err != nil {
			return err
		}

		if samples, err = c.mono(ch); err != nil {
			return err
		}

		sampleRate = float64(c.SampleRate)
	} else {
		sampleRate = a.v.GetFloat64("sample_rate")

		w, err := signal.ParseWaveform(a.v.GetString("waveform"))
		if err != nil {
			return err
		}

		gen := signal.NewGenerator(
			[]core.ProcessorOption{core.WithSampleRate(sampleRate), core.WithBufferSize(bufferSize)},
			signal.WithSeed(a.v.GetInt64("seed")),
		)

		if samples, err = gen.Generate(w, a.v.GetFloat64("tone"), a.v.GetFloat64("amplitude")); err != nil {
			return err
		}

		source = string(w)
	}

	tr, err := fourier.New(alg, bufferSize, sampleRate)
	if err != nil {
		return err
	}

	avg, frames, err := averageSpectrum(tr, samples)
	if err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"source":      source,
		"algorithm":   alg.String(),
		"buffer_size": bufferSize,
		"sample_rate": sampleRate,
		"frames":      frames,
	}).Info("spectrum computed")

	return printSpectrum(cmd.OutOrStdout(), tr, avg, a.v.GetInt("top"))
}

// averageSpectrum transforms consecutive blocks of samples and returns the
// mean magnitude per bin. The transform's peak tracker spans all blocks.
func averageSpectrum(tr fourier.Transformer, samples []float64) ([]float64, int, error) {
	if len(samples) == 0 {
		return nil, 0, errors.New("spectrum: no samples to analyze")
	}

	n := tr.BufferSize()
	block := make([]float64, n)
	sum := make([]float64, n/2)

	frames := 0
	for start := 0; start < len(samples); start += n {
		core.Zero(block)
		copy(block, samples[start:])

		spec, err := tr.Forward(block)
		if err != nil {
			return nil, 0, err
		}

		vecmath.AddBlockInPlace(sum, spec)
		frames++
	}

	vecmath.ScaleBlock(sum, sum, 1/float64(frames))

	return sum, frames, nil
}

func printSpectrum(w io.Writer, tr fourier.Transformer, avg []float64, top int) error {
	if _, err := fmt.Fprintf(w, "peak %.6f at bin %d (%.2f Hz)\n", tr.Peak(), tr.PeakBin(), tr.PeakFrequency()); err != nil {
		return err
	}

	bins := make([]int, len(avg))
	for i := range bins {
		bins[i] = i
	}

	if top > 0 && top < len(bins) {
		sort.SliceStable(bins, func(i, j int) bool { return avg[bins[i]] > avg[bins[j]] })
		bins = bins[:top]
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFrequency [Hz]\tMagnitude\tLevel [dB]\n")
	fmt.Fprintf(tw, "---\t--------------\t---------\t----------\n")

	for _, bin := range bins {
		fmt.Fprintf(tw, "%d\t%.2f\t%.6f\t%.2f\n", bin, tr.BandFrequency(bin), avg[bin], core.LinearToDB(avg[bin]))
	}

	return tw.Flush()
}
