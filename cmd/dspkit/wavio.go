package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-dspkit/dsp/buffer"
	"github.com/cwbudde/algo-dspkit/dsp/core"
)

const wavFormatPCM = 1

var errUnsupportedWAV = errors.New("unsupported wav file")

// clip is a decoded PCM file with samples scaled to [-1, 1).
type clip struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []float64 // interleaved
}

// Frames returns the number of sample frames.
func (c *clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// mono returns one channel of the clip. Mono clips are returned as is.
func (c *clip) mono(ch buffer.Channel) ([]float64, error) {
	switch c.Channels {
	case 1:
		return c.Samples, nil
	case 2:
		return buffer.Deinterleave(ch, c.Samples)
	default:
		return nil, fmt.Errorf("%w: %d channels", errUnsupportedWAV, c.Channels)
	}
}

func checkBitDepth(bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d-bit PCM", errUnsupportedWAV, bitDepth)
	}
}

func readWAV(path string) (*clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wav file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s is not a valid wav file", errUnsupportedWAV, path)
	}

	bitDepth := int(dec.BitDepth)
	if err := checkBitDepth(bitDepth); err != nil {
		return nil, err
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("error reading PCM %s: %w", path, err)
	}

	scale := 1 / math.Ldexp(1, bitDepth-1)
	samples := make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = float64(v) * scale
	}

	return &clip{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   bitDepth,
		Samples:    samples,
	}, nil
}

func writeWAV(path string, c *clip) error {
	if err := checkBitDepth(c.BitDepth); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}

	full := math.Ldexp(1, c.BitDepth-1) - 1
	data := make([]int, len(c.Samples))
	for i, v := range c.Samples {
		data[i] = int(math.Round(core.Clamp(v, -1, 1) * full))
	}

	enc := wav.NewEncoder(f, c.SampleRate, c.BitDepth, c.Channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: c.Channels, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: c.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing PCM %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("error finalizing %s: %w", path, err)
	}

	return f.Close()
}
