// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"fmt"

	"cogentcore.org/colour/base/errors"
	"cogentcore.org/colour/colorimetry"
	"gonum.org/v1/gonum/mat"
)

// NormalisedPrimaryMatrix returns the normalised primary matrix converting
// linear RGB values of the colourspace with the given primaries and
// whitepoint, as chromaticity coordinates (x, y), to XYZ tristimulus
// values (SMPTE RP 177-1993). It returns a [errors.DomainError] if a y
// coordinate is zero or the primaries are linearly dependent.
func NormalisedPrimaryMatrix(primaries [3][2]float64, whitepoint [2]float64) (*mat.Dense, error) {
	const op = "rgb.NormalisedPrimaryMatrix"
	if whitepoint[1] == 0 {
		return nil, &errors.DomainError{Op: op, Param: "whitepoint y", Value: whitepoint[1]}
	}
	pm := mat.NewDense(3, 3, nil)
	for j, p := range primaries {
		if p[1] == 0 {
			return nil, &errors.DomainError{Op: op, Param: "primary y", Value: p[1]}
		}
		xyz := colorimetry.XYToXYZ(p)
		pm.SetCol(j, xyz[:])
	}
	inv, err := Invert(pm)
	if err != nil {
		return nil, fmt.Errorf("%s: primaries: %w", op, err)
	}
	w := colorimetry.XYToXYZ(whitepoint)
	var s mat.VecDense
	s.MulVec(inv, mat.NewVecDense(3, w[:]))

	var npm mat.Dense
	npm.Mul(pm, mat.NewDiagDense(3, []float64{s.AtVec(0), s.AtVec(1), s.AtVec(2)}))
	return &npm, nil
}

// Invert returns the inverse of the given square matrix. It returns a
// [errors.DomainError] holding the condition number if the matrix is
// singular or too ill-conditioned to be inverted accurately.
func Invert(m mat.Matrix) (*mat.Dense, error) {
	var inv mat.Dense
	err := inv.Inverse(m)
	if err == nil {
		return &inv, nil
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		return nil, &errors.DomainError{Op: "rgb.Invert", Param: "matrix condition number", Value: float64(cond)}
	}
	return nil, fmt.Errorf("rgb.Invert: %w: %w", errors.ErrDomain, err)
}
