package biquad

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFilterType reports a FilterType outside the nine
	// cookbook designs.
	ErrUnsupportedFilterType = errors.New("biquad: unsupported filter type")
	// ErrUnsupportedParameterization reports an unknown Parameterization.
	ErrUnsupportedParameterization = errors.New("biquad: unsupported parameterization")
	// ErrInvalidConfig reports a non-positive sample rate or frequency.
	ErrInvalidConfig = errors.New("biquad: invalid config")
)

// FilterType selects one of the cookbook transfer functions.
type FilterType int

const (
	Lowpass FilterType = iota
	Highpass
	// BandpassConstantSkirt has a peak gain of Q.
	BandpassConstantSkirt
	// BandpassConstantPeak has a 0 dB peak gain.
	BandpassConstantPeak
	Notch
	Allpass
	PeakingEQ
	LowShelf
	HighShelf
)

var filterTypeNames = [...]string{
	Lowpass:               "lowpass",
	Highpass:              "highpass",
	BandpassConstantSkirt: "bandpass-skirt",
	BandpassConstantPeak:  "bandpass-peak",
	Notch:                 "notch",
	Allpass:               "allpass",
	PeakingEQ:             "peaking",
	LowShelf:              "lowshelf",
	HighShelf:             "highshelf",
}

// FilterTypes lists every supported type in declaration order.
func FilterTypes() []FilterType {
	out := make([]FilterType, len(filterTypeNames))
	for i := range out {
		out[i] = FilterType(i)
	}

	return out
}

// Valid reports whether t is one of the nine supported types.
func (t FilterType) Valid() bool {
	return t >= Lowpass && t <= HighShelf
}

// String returns the lowercase name used by ParseFilterType.
func (t FilterType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FilterType(%d)", int(t))
	}

	return filterTypeNames[t]
}

// usesShelfGain reports whether the gain factor uses the 40 dB convention.
func (t FilterType) usesShelfGain() bool {
	return t == PeakingEQ || t == LowShelf || t == HighShelf
}

// MarshalText implements encoding.TextMarshaler.
func (t FilterType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFilterType, int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FilterType) UnmarshalText(text []byte) error {
	parsed, err := ParseFilterType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// ParseFilterType maps a case-insensitive name back to a FilterType.
// Underscores and dashes are interchangeable.
func ParseFilterType(name string) (FilterType, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range filterTypeNames {
		if n == key {
			return FilterType(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFilterType, name)
}

// Parameterization selects which width parameter drives alpha.
type Parameterization int

const (
	ParamQ Parameterization = iota
	ParamBandwidth
	ParamShelfSlope
)

// Valid reports whether p is a known parameterization.
func (p Parameterization) Valid() bool {
	return p >= ParamQ && p <= ParamShelfSlope
}

// String returns the lowercase name used by ParseParameterization.
func (p Parameterization) String() string {
	switch p {
	case ParamQ:
		return "q"
	case ParamBandwidth:
		return "bandwidth"
	case ParamShelfSlope:
		return "shelf-slope"
	default:
		return fmt.Sprintf("Parameterization(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Parameterization) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedParameterization, int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Parameterization) UnmarshalText(text []byte) error {
	parsed, err := ParseParameterization(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

// ParseParameterization maps a case-insensitive name back to a
// Parameterization.
func ParseParameterization(name string) (Parameterization, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "q":
		return ParamQ, nil
	case "bandwidth", "bw":
		return ParamBandwidth, nil
	case "shelf-slope", "s":
		return ParamShelfSlope, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedParameterization, name)
	}
}
