// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prismatic implements the Prismatic colourspace
// (Shirley and Hart, The prismatic color space for RGB computations, 2015):
// a lightness L, the maximum of the RGB components, and the rgb
// chromaticity, the components divided by their sum.
package prismatic

import (
	"cogentcore.org/colour/base/batch"
	"gonum.org/v1/gonum/mat"
)

// FromRGB converts RGB values to Prismatic L, r, g, b values.
// The chromaticity of black (zero sum) is 0, 0, 0.
func FromRGB(r, g, b float64) (l, pr, pg, pb float64) {
	l = max(r, g, b)
	s := 0.0
	if sum := r + g + b; sum != 0 {
		s = 1 / sum
	}
	return l, s * r, s * g, s * b
}

// ToRGB converts Prismatic L, r, g, b values back to RGB values.
// A zero maximum chromaticity component gives black.
func ToRGB(l, pr, pg, pb float64) (r, g, b float64) {
	m := max(pr, pg, pb)
	if m == 0 {
		return 0, 0, 0
	}
	f := l / m
	return f * pr, f * pg, f * pb
}

// Saturate returns the Prismatic values with the saturation of the
// chromaticity scaled by s around the achromatic point 1/3: s = 0 gives
// a grey of the same lightness and s = 1 leaves the values unchanged.
func Saturate(l, pr, pg, pb, s float64) (float64, float64, float64, float64) {
	const grey = 1.0 / 3
	return l, grey + s*(pr-grey), grey + s*(pg-grey), grey + s*(pb-grey)
}

// FromRGBBatch converts a 3 x n batch of RGB values, one sample per
// column, to the 4 x n batch of Prismatic L, r, g, b values.
// It returns a [errors.ShapeError] if rgb does not have 3 rows.
func FromRGBBatch(rgb mat.Matrix) (*mat.Dense, error) {
	if err := batch.Check("prismatic.FromRGBBatch", rgb, 3); err != nil {
		return nil, err
	}
	_, n := rgb.Dims()
	out := mat.NewDense(4, n, nil)
	for j := range n {
		c := batch.Col3(rgb, j)
		l, r, g, b := FromRGB(c[0], c[1], c[2])
		out.SetCol(j, []float64{l, r, g, b})
	}
	return out, nil
}

// ToRGBBatch converts a 4 x n batch of Prismatic L, r, g, b values,
// one sample per column, to the 3 x n batch of RGB values.
// It returns a [errors.ShapeError] if lrgb does not have 4 rows.
func ToRGBBatch(lrgb mat.Matrix) (*mat.Dense, error) {
	if err := batch.Check("prismatic.ToRGBBatch", lrgb, 4); err != nil {
		return nil, err
	}
	_, n := lrgb.Dims()
	out := mat.NewDense(3, n, nil)
	for j := range n {
		c := batch.Col4(lrgb, j)
		r, g, b := ToRGB(c[0], c[1], c[2], c[3])
		out.SetCol(j, []float64{r, g, b})
	}
	return out, nil
}
