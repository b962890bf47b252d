// SPDX-License-Identifier: MIT

package camera

import "sort"

// Recognised intrinsic parameter keys.
const (
	KeyAperture  = "A"   // effective aperture diameter (mm); 0 means pinhole
	KeyDim       = "dim" // sensor size (pixels), pair
	KeyFocal     = "f"   // focal length (mm)
	KeyPrincipal = "o"   // principal point (pixels), pair
	KeyPixel     = "s"   // pixel size (mm), pair or scalar
	KeySubject   = "zS"  // focus distance (mm)
)

// ParamKeys lists the recognised intrinsic keys in sorted order.
var ParamKeys = []string{KeyAperture, KeyDim, KeyFocal, KeyPrincipal, KeyPixel, KeySubject}

// Params holds the intrinsic parameters of a camera.
// A zero Principal is replaced by the sensor centre at validation time when
// the "o" key was never set.
type Params struct {
	A   float64
	Dim [2]float64
	F   float64
	O   [2]float64
	S   [2]float64
	ZS  float64

	hasO bool
}

// ParseParams builds Params from a loosely typed map, keeping only the
// recognised keys and returning the ignored ones (sorted) for diagnostics.
// A scalar "s" is broadcast to both axes.
func ParseParams(raw map[string]any) (Params, []string, error) {
	var (
		p       Params
		ignored []string
	)
	for key, v := range raw {
		err := p.Set(key, v)
		switch {
		case err == nil:
		case isUnknown(err):
			ignored = append(ignored, key)
		default:
			return Params{}, nil, err
		}
	}
	sort.Strings(ignored)

	return p, ignored, nil
}

// Set assigns one intrinsic parameter.
// Errors: ErrUnknownParam, ErrBadParamValue (both wrapped with the key).
func (p *Params) Set(key string, v any) error {
	switch key {
	case KeyAperture, KeyFocal, KeySubject:
		f, ok := toFloat(v)
		if !ok {
			return paramErrorf(key, ErrBadParamValue)
		}
		switch key {
		case KeyAperture:
			p.A = f
		case KeyFocal:
			p.F = f
		default:
			p.ZS = f
		}
	case KeyDim, KeyPrincipal, KeyPixel:
		pair, ok := toPair(v, key == KeyPixel)
		if !ok {
			return paramErrorf(key, ErrBadParamValue)
		}
		switch key {
		case KeyDim:
			p.Dim = pair
		case KeyPrincipal:
			p.O, p.hasO = pair, true
		default:
			p.S = pair
		}
	default:
		return paramErrorf(key, ErrUnknownParam)
	}

	return nil
}

// Principal returns the principal point, defaulting to the sensor centre.
func (p Params) Principal() [2]float64 {
	if p.hasO {
		return p.O
	}

	return [2]float64{p.Dim[0] / 2, p.Dim[1] / 2}
}

// Validate checks that p can describe a camera.
func (p Params) Validate() error {
	if p.F <= 0 {
		return paramErrorf(KeyFocal, ErrInvalidParams)
	}
	if p.Dim[0] <= 0 || p.Dim[1] <= 0 {
		return paramErrorf(KeyDim, ErrInvalidParams)
	}
	if p.S[0] <= 0 || p.S[1] <= 0 {
		return paramErrorf(KeyPixel, ErrInvalidParams)
	}
	if p.A < 0 || p.ZS < 0 {
		return paramErrorf(KeyAperture, ErrInvalidParams)
	}

	return nil
}
