// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch provides helpers for batches of colour vectors stored
// as gonum matrices, with one sample per column: a batch of n tristimulus
// values is a 3 x n matrix. A single sample is a batch of one.
package batch

import (
	"cogentcore.org/colour/base/errors"
	"gonum.org/v1/gonum/mat"
)

// Check returns a [errors.ShapeError] attributed to op unless m has
// the given number of rows and at least one column.
func Check(op string, m mat.Matrix, rows int) error {
	r, c := m.Dims()
	if r != rows || c == 0 {
		return &errors.ShapeError{Op: op, Rows: r, Cols: c, Want: rows}
	}
	return nil
}

// New returns a rows x n batch with the given samples as its columns.
// Every sample must have rows components, and there must be at least
// one sample: gonum does not support empty matrices.
func New(rows int, samples ...[]float64) *mat.Dense {
	d := mat.NewDense(rows, len(samples), nil)
	for j, s := range samples {
		d.SetCol(j, s[:rows])
	}
	return d
}

// Of3 returns a 3 x n batch of the given 3-component samples.
// It panics when given no samples.
func Of3(samples ...[3]float64) *mat.Dense {
	d := mat.NewDense(3, len(samples), nil)
	for j, s := range samples {
		d.Set(0, j, s[0])
		d.Set(1, j, s[1])
		d.Set(2, j, s[2])
	}
	return d
}

// Col3 returns column j of the 3 x n batch m.
func Col3(m mat.Matrix, j int) [3]float64 {
	return [3]float64{m.At(0, j), m.At(1, j), m.At(2, j)}
}

// Col4 returns column j of the 4 x n batch m.
func Col4(m mat.Matrix, j int) [4]float64 {
	return [4]float64{m.At(0, j), m.At(1, j), m.At(2, j), m.At(3, j)}
}

// MulVec3 returns the product of the 3 x 3 matrix a and the vector v.
func MulVec3(a mat.Matrix, v [3]float64) [3]float64 {
	var out mat.VecDense
	out.MulVec(a, mat.NewVecDense(3, v[:]))
	return [3]float64{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}
