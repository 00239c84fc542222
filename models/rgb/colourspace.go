// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rgb defines RGB colourspaces: their primaries, whitepoint,
// the matrices converting linear RGB values to and from CIE XYZ
// tristimulus values, and the transfer functions between linear and
// encoded values. It provides the Ekta Space PS 5 and ALEXA Wide
// Gamut colourspaces.
package rgb

import (
	"log/slog"

	"cogentcore.org/colour/base/batch"
	"cogentcore.org/colour/base/errors"
	"gonum.org/v1/gonum/mat"
)

// TransferFunc maps a single component value, e.g. from
// linear values to encoded values.
type TransferFunc func(v float64) float64

// Colourspace is an RGB colourspace. It is immutable once constructed
// with [NewColourspace], so it can be shared freely.
type Colourspace struct {
	name       string
	primaries  [3][2]float64
	whitepoint []float64
	illuminant string
	toXYZ      *mat.Dense
	fromXYZ    *mat.Dense
	encode     TransferFunc
	decode     TransferFunc
}

// NewColourspace returns a new colourspace with the given name,
// chromaticity coordinates (x, y) of the red, green and blue primaries,
// whitepoint (chromaticity coordinates, or tristimulus values),
// whitepoint illuminant name, and transfer functions from linear to
// encoded values and back. The 3 x 3 toXYZ and fromXYZ matrices convert
// linear RGB to XYZ and back; a nil toXYZ is derived from the primaries and
// the whitepoint with [NormalisedPrimaryMatrix], and a nil fromXYZ is the
// inverse of toXYZ. The matrices are copied.
func NewColourspace(name string, primaries [3][2]float64, whitepoint []float64, illuminant string, toXYZ, fromXYZ mat.Matrix, encode, decode TransferFunc) (*Colourspace, error) {
	op := "rgb.NewColourspace " + name
	if len(whitepoint) != 2 && len(whitepoint) != 3 {
		return nil, &errors.ShapeError{Op: op + " whitepoint", Rows: len(whitepoint), Cols: 1, Want: 2}
	}
	if encode == nil {
		return nil, &errors.DomainError{Op: op, Param: "encoding function", Value: nil}
	}
	if decode == nil {
		return nil, &errors.DomainError{Op: op, Param: "decoding function", Value: nil}
	}
	cs := &Colourspace{name: name, primaries: primaries, illuminant: illuminant, encode: encode, decode: decode}
	cs.whitepoint = append([]float64(nil), whitepoint...)

	if toXYZ == nil {
		xy, err := whitepointXY(op, whitepoint)
		if err != nil {
			return nil, err
		}
		npm, err := NormalisedPrimaryMatrix(primaries, xy)
		if err != nil {
			return nil, err
		}
		cs.toXYZ = npm
	} else {
		if err := checkSquare(op+" toXYZ", toXYZ); err != nil {
			return nil, err
		}
		cs.toXYZ = mat.DenseCopyOf(toXYZ)
	}

	if fromXYZ == nil {
		inv, err := Invert(cs.toXYZ)
		if err != nil {
			return nil, err
		}
		cs.fromXYZ = inv
	} else {
		if err := checkSquare(op+" fromXYZ", fromXYZ); err != nil {
			return nil, err
		}
		cs.fromXYZ = mat.DenseCopyOf(fromXYZ)
	}
	slog.Debug("rgb: defined colourspace", "name", name, "illuminant", illuminant)
	return cs, nil
}

// whitepointXY returns the chromaticity coordinates of the given
// whitepoint, given either as (x, y) or as XYZ tristimulus values.
func whitepointXY(op string, whitepoint []float64) ([2]float64, error) {
	if len(whitepoint) == 2 {
		return [2]float64{whitepoint[0], whitepoint[1]}, nil
	}
	sum := whitepoint[0] + whitepoint[1] + whitepoint[2]
	if sum == 0 {
		return [2]float64{}, &errors.DomainError{Op: op, Param: "whitepoint tristimulus sum", Value: sum}
	}
	return [2]float64{whitepoint[0] / sum, whitepoint[1] / sum}, nil
}

func checkSquare(op string, m mat.Matrix) error {
	if r, c := m.Dims(); r != 3 || c != 3 {
		return &errors.ShapeError{Op: op, Rows: r, Cols: c, Want: 3}
	}
	return nil
}

// Name returns the name of the colourspace.
func (cs *Colourspace) Name() string { return cs.name }

// String returns the name of the colourspace.
func (cs *Colourspace) String() string { return cs.name }

// Primaries returns the chromaticity coordinates (x, y)
// of the red, green and blue primaries.
func (cs *Colourspace) Primaries() [3][2]float64 { return cs.primaries }

// Whitepoint returns a copy of the whitepoint, as chromaticity
// coordinates (x, y) or as tristimulus values.
func (cs *Colourspace) Whitepoint() []float64 {
	return append([]float64(nil), cs.whitepoint...)
}

// Illuminant returns the name of the illuminant of the whitepoint.
func (cs *Colourspace) Illuminant() string { return cs.illuminant }

// ToXYZMatrix returns a copy of the matrix converting linear RGB to XYZ.
func (cs *Colourspace) ToXYZMatrix() *mat.Dense { return mat.DenseCopyOf(cs.toXYZ) }

// FromXYZMatrix returns a copy of the matrix converting XYZ to linear RGB.
func (cs *Colourspace) FromXYZMatrix() *mat.Dense { return mat.DenseCopyOf(cs.fromXYZ) }

// Encode applies the transfer function from linear to encoded values.
func (cs *Colourspace) Encode(v float64) float64 { return cs.encode(v) }

// Decode applies the transfer function from encoded to linear values.
func (cs *Colourspace) Decode(v float64) float64 { return cs.decode(v) }

// EncodeRGB applies [Colourspace.Encode] to each component.
func (cs *Colourspace) EncodeRGB(rgb [3]float64) [3]float64 {
	return [3]float64{cs.encode(rgb[0]), cs.encode(rgb[1]), cs.encode(rgb[2])}
}

// DecodeRGB applies [Colourspace.Decode] to each component.
func (cs *Colourspace) DecodeRGB(rgb [3]float64) [3]float64 {
	return [3]float64{cs.decode(rgb[0]), cs.decode(rgb[1]), cs.decode(rgb[2])}
}

// RGBToXYZ converts linear RGB values to XYZ tristimulus values.
func (cs *Colourspace) RGBToXYZ(rgb [3]float64) [3]float64 {
	return batch.MulVec3(cs.toXYZ, rgb)
}

// XYZToRGB converts XYZ tristimulus values to linear RGB values.
func (cs *Colourspace) XYZToRGB(xyz [3]float64) [3]float64 {
	return batch.MulVec3(cs.fromXYZ, xyz)
}

// RGBToXYZBatch converts a 3 x n batch of linear RGB values,
// one sample per column, to XYZ tristimulus values.
func (cs *Colourspace) RGBToXYZBatch(rgb mat.Matrix) (*mat.Dense, error) {
	if err := batch.Check("rgb.RGBToXYZBatch", rgb, 3); err != nil {
		return nil, err
	}
	var xyz mat.Dense
	xyz.Mul(cs.toXYZ, rgb)
	return &xyz, nil
}

// XYZToRGBBatch converts a 3 x n batch of XYZ tristimulus values,
// one sample per column, to linear RGB values.
func (cs *Colourspace) XYZToRGBBatch(xyz mat.Matrix) (*mat.Dense, error) {
	if err := batch.Check("rgb.XYZToRGBBatch", xyz, 3); err != nil {
		return nil, err
	}
	var rgb mat.Dense
	rgb.Mul(cs.fromXYZ, xyz)
	return &rgb, nil
}
