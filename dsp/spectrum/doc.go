// Package spectrum holds the state shared by the Fourier transforms in
// dsp/fourier: per-instance real/imaginary buffers, the derived magnitude
// spectrum and a running peak tracker.
//
// The package does not implement a transform itself. Transforms fill
// [State.Real] and [State.Imag] and call [State.Compute], which derives the
// normalized magnitude of the first bufferSize/2 bins and updates the peak.
// The peak is the maximum ever observed on the instance until
// [State.ResetPeak] is called.
package spectrum
