package core

import "fmt"

// ProcessorConfig defines common DSP processing settings shared by
// transforms, filters and signal generators.
type ProcessorConfig struct {
	SampleRate float64
	BufferSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline and streaming use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		BufferSize: 1024,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBufferSize sets the transform buffer size. Non-positive values are ignored.
func WithBufferSize(bufferSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if bufferSize > 0 {
			cfg.BufferSize = bufferSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// BandWidth returns the width of one spectrum bin in Hz.
func (c ProcessorConfig) BandWidth() float64 {
	if c.BufferSize <= 0 {
		return 0
	}

	return c.SampleRate / float64(c.BufferSize)
}

// Validate reports whether the config can drive a power-of-two transform.
func (c ProcessorConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %f", c.SampleRate)
	}

	if !IsPowerOfTwo(c.BufferSize) {
		return fmt.Errorf("buffer size must be a power of two: %d", c.BufferSize)
	}

	return nil
}
