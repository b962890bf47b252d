// SPDX-License-Identifier: MIT

// Package tensor: functional configuration of the numeric policy.
// Defaults are documented constants; WithX constructors panic only on
// nonsensical values (programmer error).

package tensor

import "math"

// DefaultEpsilon is the element-wise tolerance used by Equal/NotEqual.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "tensor: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration of a Tensor.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance used when comparing tensors.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
