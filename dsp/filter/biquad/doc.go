// Package biquad provides a configurable second-order IIR ("biquad") filter
// built on the RBJ audio EQ cookbook.
//
// A [Filter] holds a [Config] (filter type, parameterization, center
// frequency, sample rate, Q/bandwidth/shelf slope and gain), derives
// [RawCoefficients] from it through [Design], and processes samples in
// Direct Form I with persistent per-channel delay registers. Every setter
// recomputes the coefficients from scratch. A Filter that has never been
// configured is an exact passthrough.
//
// [Coefficients] is the a0-normalized form used by the recursion and by the
// analysis helpers (frequency response, impulse response, poles and zeros).
package biquad
