package fourier

import "errors"

// ErrInvalidBufferSize reports a transform length the algorithm cannot
// handle: odd or smaller than 2 for DFT, not a power of two for the fast
// transforms.
var ErrInvalidBufferSize = errors.New("fourier: invalid buffer size")
