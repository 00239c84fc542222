// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rlab

import (
	"math"

	"cogentcore.org/colour/base/errors"
	"cogentcore.org/colour/cam/hpe"
	"gonum.org/v1/gonum/mat"
)

// View represents the viewing conditions under which a stimulus is
// perceived: the reference white, the adapting luminance, the surround
// and the degree of discounting of the illuminant. The adaptation
// computed from them by [View.Update] is shared by every stimulus
// evaluated under the view.
type View struct {

	// White is the XYZ tristimulus value of the reference white,
	// in domain [0, 100].
	White [3]float64

	// AdaptingLuminance is the absolute adapting luminance Y_n in cd/m^2.
	AdaptingLuminance float64

	// Sigma is the exponent of the relative luminance of the surround,
	// see [ViewingConditions] and [Surround.Sigma] for reference values.
	Sigma float64

	// Discount is the discounting-the-illuminant factor D in domain [0, 1]:
	// 1 for hard-copy images (the illuminant is fully discounted), 0 for
	// soft-copy displays (no discounting).
	Discount float64

	// LMSWhite is the cone response to the reference white. Computed by Update.
	LMSWhite [3]float64

	// Adaptation holds the diagonal of the chromatic adaptation matrix A
	// (one factor per cone). Computed by Update.
	Adaptation [3]float64

	// projection transforms XYZ into the reference space: R . A . HPE.
	projection *mat.Dense
}

// NewView returns a new view with the given reference white XYZ,
// adapting luminance, surround exponent and discounting factor,
// with all derived values computed.
func NewView(white [3]float64, adaptingLuminance, sigma, discount float64) (*View, error) {
	vw := &View{White: white, AdaptingLuminance: adaptingLuminance, Sigma: sigma, Discount: discount}
	if err := vw.Update(); err != nil {
		return nil, err
	}
	return vw, nil
}

// NewSurroundView is like [NewView] with the surround exponent
// of the given reference viewing condition.
func NewSurroundView(white [3]float64, adaptingLuminance float64, surround Surround, discount float64) (*View, error) {
	return NewView(white, adaptingLuminance, surround.Sigma(), discount)
}

// Update computes the derived values from the main parameters.
// It must be called after changing any of them. It returns a
// [errors.DomainError] if the adapting luminance is not positive, or
// if a cone response to the reference white (or their sum) is zero.
// It writes to the view, so it must not run concurrently with its use.
func (vw *View) Update() error {
	if !(vw.AdaptingLuminance > 0) {
		return &errors.DomainError{Op: "rlab.View.Update", Param: "adapting luminance", Value: vw.AdaptingLuminance}
	}
	ln, mn, sn := hpe.XYZToLMS(vw.White[0], vw.White[1], vw.White[2])
	vw.LMSWhite = [3]float64{ln, mn, sn}
	for _, c := range vw.LMSWhite {
		if c == 0 {
			return &errors.DomainError{Op: "rlab.View.Update", Param: "reference white cone response", Value: c}
		}
	}
	sum := ln + mn + sn
	if sum == 0 {
		return &errors.DomainError{Op: "rlab.View.Update", Param: "reference white cone response sum", Value: sum}
	}

	yn3 := math.Cbrt(vw.AdaptingLuminance)
	for i, c := range vw.LMSWhite {
		// cone response relative to the equal-energy illuminant
		e := 3 * c / sum
		p := (1 + yn3 + e) / (1 + yn3 + 1/e)
		vw.Adaptation[i] = (p + vw.Discount*(1-p)) / c
	}

	var ra mat.Dense
	ra.Mul(rMatrix, mat.NewDiagDense(3, vw.Adaptation[:]))
	var proj mat.Dense
	proj.Mul(&ra, hpe.Matrix())
	vw.projection = &proj
	return nil
}

// Project returns the matrix projecting the XYZ tristimulus value
// of sample i of a batch into the RLAB reference space. Every sample
// currently shares the adaptation of the view; the sample index
// lets batch evaluation stay per sample if that changes.
// The returned matrix must not be modified.
func (vw *View) Project(i int) mat.Matrix {
	return vw.projection
}
