// Package buffer provides a reusable float64 buffer type and pool for
// allocation-friendly DSP processing, plus the elementwise helpers used
// around the transforms and filters: sign inversion, interleaved-stereo
// de-interleaving and interleaving, buffer mixing, RMS and peak.
//
// All DSP functions accept raw []float64 slices; Buffer is an optional
// convenience that helps callers manage scratch memory in hot paths.
package buffer
