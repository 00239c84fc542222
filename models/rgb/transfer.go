// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import "math"

// GammaEncoding returns the transfer function from linear to
// encoded values of a pure power law with the given gamma: v^(1/gamma).
func GammaEncoding(gamma float64) TransferFunc {
	return func(v float64) float64 {
		return math.Pow(v, 1/gamma)
	}
}

// GammaDecoding returns the transfer function from encoded to
// linear values of a pure power law with the given gamma: v^gamma.
func GammaDecoding(gamma float64) TransferFunc {
	return func(v float64) float64 {
		return math.Pow(v, gamma)
	}
}

// LogCParams are the parameters of an ARRI ALEXA Log C curve, for
// one camera firmware, exposure index and signal convention:
//
//	t = C log10(A v + B) + D   for v > Cut
//	t = E v + F                otherwise
type LogCParams struct {
	Cut, A, B, C, D, E, F float64
}

// LogCEI800 are the Log C parameters of SUP 3.x firmware at
// exposure index 800, for linear scene exposure factor values.
var LogCEI800 = LogCParams{
	Cut: 0.010591,
	A:   5.555556,
	B:   0.052272,
	C:   0.247190,
	D:   0.385537,
	E:   5.367655,
	F:   0.092809,
}

// Encode converts the given linear scene exposure factor value
// to a Log C encoded value.
func (p *LogCParams) Encode(v float64) float64 {
	if v > p.Cut {
		return p.C*math.Log10(p.A*v+p.B) + p.D
	}
	return p.E*v + p.F
}

// Decode converts the given Log C encoded value back to a
// linear scene exposure factor value.
func (p *LogCParams) Decode(t float64) float64 {
	if t > p.E*p.Cut+p.F {
		return (math.Pow(10, (t-p.D)/p.C) - p.B) / p.A
	}
	return (t - p.F) / p.E
}

// LogCEncoding is the Log C transfer function from linear to
// encoded values, with the [LogCEI800] parameters.
func LogCEncoding(v float64) float64 {
	return LogCEI800.Encode(v)
}

// LogCDecoding is the Log C transfer function from encoded to
// linear values, with the [LogCEI800] parameters.
func LogCDecoding(t float64) float64 {
	return LogCEI800.Decode(t)
}
