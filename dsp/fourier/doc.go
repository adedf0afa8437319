// Package fourier provides forward transforms of real-valued sample blocks
// into a one-sided magnitude spectrum.
//
// Four interchangeable transforms are available:
//
//   - DFT: direct O(n^2) evaluation from precomputed sin/cos tables.
//   - FFT: iterative radix-2 complex transform with bit-reversal and a
//     per-stage trigonometric recurrence. Also provides the inverse.
//   - RFFT: radix-2 real-input transform working on a half-complex packing,
//     roughly half the arithmetic of FFT.
//   - Plan: complex transform delegated to the algo-fft planner.
//
// Each transform embeds a [spectrum.State], so Real, Imag, Spectrum, Peak
// and PeakBin are available directly on the transform value. Transforms are
// not safe for concurrent use; create one per goroutine.
package fourier
