// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"cogentcore.org/colour/base/errors"
	"cogentcore.org/colour/colorimetry"
	"gonum.org/v1/gonum/mat"
)

// whitepointOf returns the CIE 1931 2 degree chromaticity coordinates
// of the given illuminant. It panics if there is no such illuminant.
func whitepointOf(illuminant string) []float64 {
	xy := colorimetry.MustWhitepoint(colorimetry.CIE1931, illuminant)
	return xy[:]
}

// EktaSpacePS5Primaries are the primaries of the Ekta Space PS 5 colourspace.
var EktaSpacePS5Primaries = [3][2]float64{
	{0.6947368421052631, 0.30526315789473685},
	{0.26000000000000001, 0.69999999999999996},
	{0.10972850678733032, 0.0045248868778280547},
}

// EktaSpacePS5 is the Ekta Space PS 5 colourspace (Joseph Holmes),
// with a D50 whitepoint, matrices derived from its primaries and a
// 2.2 gamma transfer function.
var EktaSpacePS5 = errors.Must1(NewColourspace(
	"Ekta Space PS 5",
	EktaSpacePS5Primaries,
	whitepointOf("D50"),
	"D50",
	nil, nil,
	GammaEncoding(2.2),
	GammaDecoding(2.2),
))

// ALEXAWideGamutPrimaries are the primaries of the ALEXA Wide Gamut colourspace.
var ALEXAWideGamutPrimaries = [3][2]float64{
	{0.6840, 0.3130},
	{0.2210, 0.8480},
	{0.0861, -0.1020},
}

// ALEXAWideGamut is the ARRI ALEXA Wide Gamut colourspace (ARRI, ALEXA
// Log C Curve, Usage in VFX, 2012) with a D65 whitepoint, the published
// matrices and the Log C transfer functions.
var ALEXAWideGamut = errors.Must1(NewColourspace(
	"ALEXA Wide Gamut",
	ALEXAWideGamutPrimaries,
	whitepointOf("D65"),
	"D65",
	mat.NewDense(3, 3, []float64{
		0.638008, 0.214704, 0.097744,
		0.291954, 0.823841, -0.115795,
		0.002798, -0.067034, 1.153294,
	}),
	mat.NewDense(3, 3, []float64{
		1.789066, -0.482534, -0.200076,
		-0.639849, 1.396400, 0.194432,
		-0.041532, 0.082335, 0.878868,
	}),
	LogCEncoding,
	LogCDecoding,
))
