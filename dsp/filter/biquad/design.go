package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// Design derives the cookbook coefficients for cfg. It is a pure function
// of the config.
func Design(cfg Config) (RawCoefficients, error) {
	if !cfg.Type.Valid() {
		return RawCoefficients{}, fmt.Errorf("%w: %d", ErrUnsupportedFilterType, int(cfg.Type))
	}

	a := gainFactor(cfg.Type, cfg.GainDB)
	w0 := 2 * math.Pi * cfg.CenterFrequency / cfg.SampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)

	alpha, err := alphaFor(cfg, w0, sw, a)
	if err != nil {
		return RawCoefficients{}, err
	}

	switch cfg.Type {
	case Lowpass:
		return RawCoefficients{
			B0: (1 - cw) / 2,
			B1: 1 - cw,
			B2: (1 - cw) / 2,
			A0: 1 + alpha,
			A1: -2 * cw,
			A2: 1 - alpha,
		}, nil
	case Highpass:
		return RawCoefficients{
			B0: (1 + cw) / 2,
			B1: -(1 + cw),
			B2: (1 + cw) / 2,
			A0: 1 + alpha,
			A1: -2 * cw,
			A2: 1 - alpha,
		}, nil
	case BandpassConstantSkirt:
		return RawCoefficients{
			B0: sw / 2,
			B1: 0,
			B2: -sw / 2,
			A0: 1 + alpha,
			A1: -2 * cw,
			A2: 1 - alpha,
		}, nil
	case BandpassConstantPeak:
		return RawCoefficients{
			B0: alpha,
			B1: 0,
			B2: -alpha,
			A0: 1 + alpha,
			A1: -2 * cw,
			A2: 1 - alpha,
		}, nil
	case Notch:
		return RawCoefficients{
			B0: 1,
			B1: -2 * cw,
			B2: 1,
			A0: 1 + alpha,
			A1: -2 * cw,
			A2: 1 - alpha,
		}, nil
	case Allpass:
		return RawCoefficients{
			B0: 1 - alpha,
			B1: -2 * cw,
			B2: 1 + alpha,
			A0: 1 + alpha,
			A1: -2 * cw,
			A2: 1 - alpha,
		}, nil
	case PeakingEQ:
		return RawCoefficients{
			B0: 1 + alpha*a,
			B1: -2 * cw,
			B2: 1 - alpha*a,
			A0: 1 + alpha/a,
			A1: -2 * cw,
			A2: 1 - alpha/a,
		}, nil
	case LowShelf:
		beta := 2 * math.Sqrt(a) * alpha

		return RawCoefficients{
			B0: a * ((a + 1) - (a-1)*cw + beta),
			B1: 2 * a * ((a - 1) - (a+1)*cw),
			B2: a * ((a + 1) - (a-1)*cw - beta),
			A0: (a + 1) + (a-1)*cw + beta,
			A1: -2 * ((a - 1) + (a+1)*cw),
			A2: (a + 1) + (a-1)*cw - beta,
		}, nil
	default: // HighShelf
		beta := 2 * math.Sqrt(a) * alpha

		return RawCoefficients{
			B0: a * ((a + 1) + (a-1)*cw + beta),
			B1: -2 * a * ((a - 1) + (a+1)*cw),
			B2: a * ((a + 1) + (a-1)*cw - beta),
			A0: (a + 1) - (a-1)*cw + beta,
			A1: 2 * ((a - 1) - (a+1)*cw),
			A2: (a + 1) - (a-1)*cw - beta,
		}, nil
	}
}

// gainFactor returns A: 10^(g/40) for the gain-bearing types, the square
// root of the linear amplitude otherwise.
func gainFactor(t FilterType, gainDB float64) float64 {
	if t.usesShelfGain() {
		return math.Pow(10, gainDB/40)
	}

	return math.Sqrt(core.DBToLinear(gainDB))
}

func alphaFor(cfg Config, w0, sw, a float64) (float64, error) {
	switch cfg.Parameterization {
	case ParamQ:
		return sw / (2 * cfg.Q), nil
	case ParamBandwidth:
		return sw * core.Sinh(math.Ln2/2*cfg.Bandwidth*w0/sw), nil
	case ParamShelfSlope:
		// Slopes steeper than the gain allows would take the root of a
		// negative number; they saturate at the steepest valid slope.
		k := (a+1/a)*(1/cfg.ShelfSlope-1) + 2
		return sw / 2 * math.Sqrt(math.Max(k, 0)), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedParameterization, int(cfg.Parameterization))
	}
}
