// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hpe implements the Hunt-Pointer-Estevez transform from
// CIE XYZ tristimulus values to LMS cone responses, normalized to
// the equal-energy illuminant, as used by the Hunt and RLAB color
// appearance models (Fairchild, Color Appearance Models, 2013).
package hpe

import (
	"cogentcore.org/colour/base/batch"
	"cogentcore.org/colour/base/errors"
	"gonum.org/v1/gonum/mat"
)

// hpeData is the row-major Hunt-Pointer-Estevez matrix.
var hpeData = [9]float64{
	0.38971, 0.68898, -0.07868,
	-0.22981, 1.18340, 0.04641,
	0.00000, 0.00000, 1.00000,
}

var (
	hpeMatrix = mat.NewDense(3, 3, hpeData[:])

	hpeInverse = func() *mat.Dense {
		var inv mat.Dense
		errors.Must(inv.Inverse(hpeMatrix))
		return &inv
	}()
)

// Matrix returns a copy of the Hunt-Pointer-Estevez matrix.
func Matrix() *mat.Dense {
	return mat.DenseCopyOf(hpeMatrix)
}

// InverseMatrix returns a copy of the inverse of [Matrix].
func InverseMatrix() *mat.Dense {
	return mat.DenseCopyOf(hpeInverse)
}

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the Hunt-Pointer-Estevez transform.
func XYZToLMS(x, y, z float64) (l, m, s float64) {
	l = 0.38971*x + 0.68898*y + -0.07868*z
	m = -0.22981*x + 1.18340*y + 0.04641*z
	s = z
	return
}

// LMSToXYZ converts Long, Medium, Short cone-based responses back to XYZ,
// inverting the Hunt-Pointer-Estevez transform.
func LMSToXYZ(l, m, s float64) (x, y, z float64) {
	v := batch.MulVec3(hpeInverse, [3]float64{l, m, s})
	return v[0], v[1], v[2]
}

// XYZToLMSBatch converts a 3 x n batch of XYZ tristimulus values,
// one sample per column, to the 3 x n batch of cone responses.
// It returns a [errors.ShapeError] if xyz does not have 3 rows.
func XYZToLMSBatch(xyz mat.Matrix) (*mat.Dense, error) {
	if err := batch.Check("hpe.XYZToLMSBatch", xyz, 3); err != nil {
		return nil, err
	}
	var lms mat.Dense
	lms.Mul(hpeMatrix, xyz)
	return &lms, nil
}
