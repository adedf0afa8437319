// Command dspkit runs spectra and biquad filters over WAV files.
//
// Usage:
//
//	dspkit [global flags] <command> [flags] [args]
//
// Examples:
//
//	dspkit spectrum --algorithm rfft --top 5 take1.wav
//	dspkit spectrum --waveform sine --tone 1000
//	dspkit filter --type highpass --frequency 80 in.wav out.wav
//	dspkit response --type peaking --frequency 2500 --gain -4 --q 2
//	dspkit config --config dspkit.yaml
//
// Every flag can also be set in a YAML config file or through a DSPKIT_
// environment variable (DSPKIT_SAMPLE_RATE, DSPKIT_FILTER_TYPE, ...).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
