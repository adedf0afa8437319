package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dspkit/dsp/buffer"
	"github.com/cwbudde/algo-dspkit/dsp/filter/biquad"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func sine(freq, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func writeTestWAV(t *testing.T, name string, c *clip) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, writeWAV(path, c))

	return path
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dspkit dev"), "got %q", out)
}

func TestConfigCommandDefaults(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)

	var s settings
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))

	assert.Equal(t, "info", s.LogLevel)
	assert.InDelta(t, 44100.0, s.SampleRate, 0)
	assert.Equal(t, 1024, s.BufferSize)
	assert.Equal(t, "fft", s.Algorithm)
	assert.Equal(t, "mix", s.Channel)
	assert.Equal(t, biquad.DefaultConfig(biquad.Lowpass, 44100), s.Filter)
}

func TestConfigCommandFlagsWin(t *testing.T) {
	out, _, err := execute(t, "config",
		"--sample-rate", "48000",
		"--type", "peaking",
		"--frequency", "250",
		"--bandwidth", "2",
		"--gain", "-3",
	)
	require.NoError(t, err)

	var s settings
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))

	assert.InDelta(t, 48000.0, s.SampleRate, 0)
	assert.Equal(t, biquad.PeakingEQ, s.Filter.Type)
	assert.Equal(t, biquad.ParamBandwidth, s.Filter.Parameterization)
	assert.InDelta(t, 250.0, s.Filter.CenterFrequency, 0)
	assert.InDelta(t, 2.0, s.Filter.Bandwidth, 0)
	assert.InDelta(t, -3.0, s.Filter.GainDB, 0)
	assert.InDelta(t, 48000.0, s.Filter.SampleRate, 0)
}

func TestConfigCommandEnvironment(t *testing.T) {
	t.Setenv("DSPKIT_BUFFER_SIZE", "256")
	t.Setenv("DSPKIT_FILTER_Q", "4")

	out, _, err := execute(t, "config")
	require.NoError(t, err)

	var s settings
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))

	assert.Equal(t, 256, s.BufferSize)
	assert.InDelta(t, 4.0, s.Filter.Q, 0)
}

func TestConfigCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dspkit.yaml")
	content := `sample_rate: 22050
algorithm: rfft
filter:
  type: highshelf
  shelf_slope: 0.5
  gain_db: 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, _, err := execute(t, "config", "--config", path, "--gain", "-6")
	require.NoError(t, err)

	var s settings
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))

	assert.InDelta(t, 22050.0, s.SampleRate, 0)
	assert.Equal(t, "rfft", s.Algorithm)
	assert.Equal(t, biquad.HighShelf, s.Filter.Type)
	assert.Equal(t, biquad.ParamShelfSlope, s.Filter.Parameterization)
	assert.InDelta(t, 0.5, s.Filter.ShelfSlope, 0)
	assert.InDelta(t, -6.0, s.Filter.GainDB, 0)
}

func TestConfigCommandRejectsUnknownType(t *testing.T) {
	_, _, err := execute(t, "config", "--type", "comb")
	require.ErrorIs(t, err, biquad.ErrUnsupportedFilterType)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "version", "--log-level", "loud")
	require.Error(t, err)
}

func TestSpectrumGeneratedSine(t *testing.T) {
	for _, alg := range []string{"fft", "rfft", "dft", "plan"} {
		t.Run(alg, func(t *testing.T) {
			out, _, err := execute(t, "spectrum",
				"--algorithm", alg,
				"--sample-rate", "8000",
				"--buffer-size", "64",
				"--tone", "1000",
				"--top", "3",
			)
			require.NoError(t, err)
			assert.Contains(t, out, "at bin 8 (1062.50 Hz)")

			// header, separator and three rows
			lines := strings.Split(strings.TrimSpace(out), "\n")
			assert.Len(t, lines, 6)
		})
	}
}

func TestSpectrumMagnitudeNormalization(t *testing.T) {
	out, _, err := execute(t, "spectrum",
		"--sample-rate", "8000",
		"--buffer-size", "64",
		"--tone", "1000",
		"--amplitude", "0.5",
		"--top", "1",
	)
	require.NoError(t, err)
	assert.Regexp(t, `1062\.50\s+0\.500000\s+-6\.02`, out)
}

func TestSpectrumUnknownAlgorithm(t *testing.T) {
	_, _, err := execute(t, "spectrum", "--algorithm", "wavelet")
	require.Error(t, err)
}

func TestSpectrumInvalidBufferSize(t *testing.T) {
	_, _, err := execute(t, "spectrum", "--buffer-size", "100")
	require.Error(t, err)
}

func TestSpectrumWAVChannels(t *testing.T) {
	const sr = 8000

	left := sine(1000, sr, 0.5, 256)
	right := sine(2000, sr, 0.5, 256)
	stereo, err := buffer.Interleave(left, right)
	require.NoError(t, err)

	path := writeTestWAV(t, "stereo.wav", &clip{SampleRate: sr, Channels: 2, BitDepth: 16, Samples: stereo})

	out, stderr, err := execute(t, "spectrum", path, "--buffer-size", "64", "--channel", "left")
	require.NoError(t, err)
	assert.Contains(t, out, "at bin 8 ")
	assert.Contains(t, stderr, "frames=4")

	out, _, err = execute(t, "spectrum", path, "--buffer-size", "64", "--channel", "right")
	require.NoError(t, err)
	assert.Contains(t, out, "at bin 16 ")

	_, _, err = execute(t, "spectrum", path, "--channel", "center")
	require.ErrorIs(t, err, buffer.ErrInvalidChannel)
}

func TestFilterCommandMono(t *testing.T) {
	const sr = 8000

	in := writeTestWAV(t, "in.wav", &clip{SampleRate: sr, Channels: 1, BitDepth: 16, Samples: sine(3000, sr, 0.5, 800)})
	out := filepath.Join(t.TempDir(), "out.wav")

	_, _, err := execute(t, "filter", in, out, "--type", "lowpass", "--frequency", "200", "--q", "0.707")
	require.NoError(t, err)

	src, err := readWAV(in)
	require.NoError(t, err)
	got, err := readWAV(out)
	require.NoError(t, err)

	assert.Equal(t, sr, got.SampleRate)
	assert.Equal(t, 1, got.Channels)
	assert.Equal(t, 16, got.BitDepth)
	assert.Equal(t, src.Frames(), got.Frames())
	assert.Less(t, buffer.RMS(got.Samples), 0.1*buffer.RMS(src.Samples))
}

func TestFilterCommandStereo(t *testing.T) {
	const sr = 8000

	left := sine(100, sr, 0.5, 800)
	right := sine(3000, sr, 0.5, 800)
	stereo, err := buffer.Interleave(left, right)
	require.NoError(t, err)

	in := writeTestWAV(t, "in.wav", &clip{SampleRate: sr, Channels: 2, BitDepth: 24, Samples: stereo})
	out := filepath.Join(t.TempDir(), "out.wav")

	_, _, err = execute(t, "filter", in, out, "--frequency", "500")
	require.NoError(t, err)

	got, err := readWAV(out)
	require.NoError(t, err)
	require.Equal(t, 2, got.Channels)
	assert.Equal(t, 24, got.BitDepth)

	l, err := buffer.Deinterleave(buffer.Left, got.Samples)
	require.NoError(t, err)
	r, err := buffer.Deinterleave(buffer.Right, got.Samples)
	require.NoError(t, err)

	// 100 Hz passes the 500 Hz lowpass, 3 kHz does not.
	assert.Greater(t, buffer.RMS(l), 0.3)
	assert.Less(t, buffer.RMS(r), 0.05)
}

func TestFilterCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "filter", filepath.Join(dir, "missing.wav"), filepath.Join(dir, "out.wav"))
	require.Error(t, err)
}

func TestResponseCommand(t *testing.T) {
	out, _, err := execute(t, "response",
		"--sample-rate", "48000",
		"--type", "lowpass",
		"--frequency", "1000",
		"--q", "0.707",
		"--points", "5",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "lowpass at 1000.00 Hz, fs 48000 Hz")
	assert.Contains(t, out, "Frequency [Hz]")
	assert.Contains(t, out, "20.00 ")
	assert.Contains(t, out, "20000.00 ")
	assert.Contains(t, out, "stable: true")
}

func TestResponseCommandClampsToNyquist(t *testing.T) {
	out, _, err := execute(t, "response", "--sample-rate", "8000", "--points", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "4000.00 ")
	assert.NotContains(t, out, "20000.00")
}

func TestLogFrequencies(t *testing.T) {
	freqs, err := logFrequencies(10, 1000, 3)
	require.NoError(t, err)
	require.Len(t, freqs, 3)
	assert.InDelta(t, 10.0, freqs[0], 1e-9)
	assert.InDelta(t, 100.0, freqs[1], 1e-9)
	assert.InDelta(t, 1000.0, freqs[2], 1e-9)

	_, err = logFrequencies(0, 100, 4)
	require.Error(t, err)
	_, err = logFrequencies(100, 10, 4)
	require.Error(t, err)
	_, err = logFrequencies(10, 100, 0)
	require.Error(t, err)
}
