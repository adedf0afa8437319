package core

import "errors"

// ErrSizeMismatch reports an input buffer whose length does not fit the
// configured processor, such as a transform fed the wrong number of samples
// or an interleaved stereo buffer with an odd length.
var ErrSizeMismatch = errors.New("dsp: buffer size mismatch")
