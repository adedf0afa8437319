package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBufferSize(256),
	)

	fmt.Printf("sampleRate=%.0f bufferSize=%d bandWidth=%.3f\n", cfg.SampleRate, cfg.BufferSize, cfg.BandWidth())

	// Output:
	// sampleRate=44100 bufferSize=256 bandWidth=172.266
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)
	buf[2], buf[3] = 3, 4
	fmt.Println(buf)

	core.Negate(buf[2:])
	core.Zero(buf[:2])
	fmt.Println(buf)

	// Output:
	// [1 2 3 4]
	// [0 0 -3 -4]
}
