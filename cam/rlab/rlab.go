// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rlab implements the RLAB color appearance model
// (Fairchild, Refinement of the RLAB color space, 1996; Fairchild,
// Color Appearance Models, 3rd edition, 2013).
//
// Tristimulus values are in domain [0, 100], not [0, 1].
//
// Only the hue angle is computed: the hue composition of the
// published model is not implemented.
package rlab

import (
	"math"

	"cogentcore.org/colour/base/batch"
	"cogentcore.org/colour/base/errors"
	"gonum.org/v1/gonum/mat"
)

var nan = math.NaN()

// rMatrix transforms adapted cone responses into the reference space.
var rMatrix = mat.NewDense(3, 3, []float64{
	1.9569, -1.1882, 0.2313,
	0.3612, 0.6388, 0.0000,
	0.0000, 0.0000, 1.0000,
})

// RMatrix returns a copy of the matrix R transforming adapted
// cone responses into the RLAB reference space.
func RMatrix() *mat.Dense {
	return mat.DenseCopyOf(rMatrix)
}

// Spec holds the RLAB appearance correlates of one stimulus.
type Spec struct {

	// Hue is the hue angle h in degrees, in [0, 360).
	Hue float64

	// Chroma is the correlate of achromatic chroma C.
	Chroma float64

	// Saturation is the correlate of saturation s, Chroma / Lightness.
	// It is NaN or infinite when the lightness is zero.
	Saturation float64

	// Lightness is the correlate of lightness L.
	Lightness float64

	// A is the red-green chromatic response a.
	A float64

	// B is the yellow-blue chromatic response b.
	B float64
}

// Specs holds the RLAB appearance correlates of a batch of stimuli,
// one element per stimulus in each field.
type Specs struct {
	Hue        []float64
	Chroma     []float64
	Saturation []float64
	Lightness  []float64
	A          []float64
	B          []float64
}

func newSpecs(n int) *Specs {
	return &Specs{
		Hue:        make([]float64, n),
		Chroma:     make([]float64, n),
		Saturation: make([]float64, n),
		Lightness:  make([]float64, n),
		A:          make([]float64, n),
		B:          make([]float64, n),
	}
}

// Len returns the number of stimuli.
func (sp *Specs) Len() int {
	return len(sp.Hue)
}

// At returns the correlates of stimulus i.
func (sp *Specs) At(i int) *Spec {
	return &Spec{
		Hue:        sp.Hue[i],
		Chroma:     sp.Chroma[i],
		Saturation: sp.Saturation[i],
		Lightness:  sp.Lightness[i],
		A:          sp.A[i],
		B:          sp.B[i],
	}
}

func (sp *Specs) set(i int, s *Spec) {
	sp.Hue[i] = s.Hue
	sp.Chroma[i] = s.Chroma
	sp.Saturation[i] = s.Saturation
	sp.Lightness[i] = s.Lightness
	sp.A[i] = s.A
	sp.B[i] = s.B
}

// FromXYZ returns the RLAB correlates of the given XYZ tristimulus
// value, in domain [0, 100], under the given viewing conditions.
// It evaluates a batch of one through [FromXYZBatch].
func FromXYZ(x, y, z float64, vw *View) (*Spec, error) {
	sp, err := FromXYZBatch(batch.Of3([3]float64{x, y, z}), vw)
	if err != nil {
		return nil, err
	}
	return sp.At(0), nil
}

// FromXYZBatch returns the RLAB correlates of a 3 x n batch of XYZ
// tristimulus values, one stimulus per column, in domain [0, 100],
// under the given viewing conditions. It returns a [errors.ShapeError]
// if xyz does not have 3 rows, and a [errors.DomainError] for a nil view.
// If the view has not been updated yet, the derived values are computed
// on a copy, so vw is never modified and can be shared.
func FromXYZBatch(xyz mat.Matrix, vw *View) (*Specs, error) {
	if err := batch.Check("rlab.FromXYZBatch", xyz, 3); err != nil {
		return nil, err
	}
	if vw == nil {
		return nil, &errors.DomainError{Op: "rlab.FromXYZBatch", Param: "view", Value: nil}
	}
	if vw.projection == nil {
		cp := *vw
		if err := cp.Update(); err != nil {
			return nil, err
		}
		vw = &cp
	}
	_, n := xyz.Dims()
	sp := newSpecs(n)
	for j := range n {
		ref := batch.MulVec3(vw.Project(j), batch.Col3(xyz, j))
		sp.set(j, FromReference(ref, vw.Sigma))
	}
	return sp, nil
}

// XYZToRLAB returns the RLAB correlates of the given stimulus XYZ under
// the reference white XYZ white (both in domain [0, 100]), the absolute
// adapting luminance yn in cd/m^2, the surround exponent sigma, and the
// discounting-the-illuminant factor d in domain [0, 1].
func XYZToRLAB(xyz, white [3]float64, yn, sigma, d float64) (*Spec, error) {
	vw, err := NewView(white, yn, sigma, d)
	if err != nil {
		return nil, err
	}
	return FromXYZ(xyz[0], xyz[1], xyz[2], vw)
}

// FromReference returns the RLAB correlates of the given tristimulus
// value in the reference space, with the given surround exponent.
func FromReference(ref [3]float64, sigma float64) *Spec {
	xs := math.Pow(ref[0], sigma)
	ys := math.Pow(ref[1], sigma)
	zs := math.Pow(ref[2], sigma)

	s := &Spec{}
	s.Lightness = 100 * ys
	s.A = 430 * (xs - ys)
	s.B = 170 * (ys - zs)
	s.Hue = SanitizeDegrees(math.Atan2(s.B, s.A) * 180 / math.Pi)
	s.Chroma = math.Hypot(s.A, s.B)
	s.Saturation = s.Chroma / s.Lightness
	return s
}

// SanitizeDegrees ensures that the given angle in degrees
// is within [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
