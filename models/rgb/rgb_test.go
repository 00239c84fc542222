// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"math"
	"testing"

	"cogentcore.org/colour/base/batch"
	"cogentcore.org/colour/base/errors"
	"cogentcore.org/colour/base/tolassert"
	"cogentcore.org/colour/colorimetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var identity = mat.NewDiagDense(3, []float64{1, 1, 1})

func TestDatasetInvariants(t *testing.T) {
	tests := []struct {
		cs  *Colourspace
		tol float64
	}{
		{EktaSpacePS5, 1e-10},
		// the published matrices have 6 significant digits
		{ALEXAWideGamut, 2e-6},
	}
	for _, test := range tests {
		var id mat.Dense
		id.Mul(test.cs.ToXYZMatrix(), test.cs.FromXYZMatrix())
		assert.True(t, mat.EqualApprox(&id, identity, test.tol), "%s: %v", test.cs, mat.Formatted(&id))

		for i := 0; i <= 100; i++ {
			v := float64(i) / 100
			tolassert.Equal(t, v, test.cs.Encode(test.cs.Decode(v)), test.cs.Name())
			tolassert.Equal(t, v, test.cs.Decode(test.cs.Encode(v)), test.cs.Name())
		}
	}
}

func TestEktaSpacePS5(t *testing.T) {
	cs := EktaSpacePS5
	assert.Equal(t, "Ekta Space PS 5", cs.Name())
	assert.Equal(t, "D50", cs.Illuminant())
	assert.Equal(t, []float64{0.3457, 0.3585}, cs.Whitepoint())
	assert.Equal(t, EktaSpacePS5Primaries, cs.Primaries())

	want := mat.NewDense(3, 3, []float64{
		0.5943368569464554, 0.2729448091890746, 0.09701401029403768,
		0.2611480129007153, 0.7348514093552008, 0.004000577744084029,
		0, 0.041991509106011515, 0.7831130934044485,
	})
	assert.True(t, mat.EqualApprox(cs.ToXYZMatrix(), want, 1e-10), "%v", mat.Formatted(cs.ToXYZMatrix()))

	wantInv := mat.NewDense(3, 3, []float64{
		2.003366029182928, -0.7301386940683847, -0.24445204349229946,
		-0.7121546200220876, 1.6207656869468199, 0.07994372336443835,
		0.03818662650823672, -0.0869074948118493, 1.2726680869038227,
	})
	assert.True(t, mat.EqualApprox(cs.FromXYZMatrix(), wantInv, 1e-10))

	tolassert.Equal(t, math.Pow(0.5, 1/2.2), cs.Encode(0.5))
	tolassert.Equal(t, math.Pow(0.5, 2.2), cs.Decode(0.5))

	// white maps to the whitepoint
	xyz := cs.RGBToXYZ([3]float64{1, 1, 1})
	tolassert.Equal(t, 0.3457/0.3585, xyz[0])
	tolassert.Equal(t, 1, xyz[1])
	tolassert.Equal(t, (1-0.3457-0.3585)/0.3585, xyz[2])
}

func TestALEXAWideGamut(t *testing.T) {
	cs := ALEXAWideGamut
	assert.Equal(t, "ALEXA Wide Gamut", cs.String())
	assert.Equal(t, "D65", cs.Illuminant())
	assert.Equal(t, []float64{0.3127, 0.329}, cs.Whitepoint())
	assert.Equal(t, 0.638008, cs.ToXYZMatrix().At(0, 0))
	assert.Equal(t, 1.789066, cs.FromXYZMatrix().At(0, 0))

	// the published matrix agrees with the one derived from the primaries
	npm, err := NormalisedPrimaryMatrix(cs.Primaries(), [2]float64{0.3127, 0.329})
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(npm, cs.ToXYZMatrix(), 1e-6), "%v", mat.Formatted(npm))

	tolassert.Equal(t, 0.391007, cs.Encode(0.18))
	tolassert.Equal(t, 0.092809, cs.Encode(0))
	tolassert.Equal(t, 0.18, cs.Decode(0.391007))
	tolassert.Equal(t, 0.513383396, cs.Decode(0.5))

	enc := cs.EncodeRGB([3]float64{0.18, 0, 1})
	tolassert.Equal(t, 0.391007, enc[0])
	tolassert.Equal(t, 0.092809, enc[1])
	tolassert.Equal(t, 0.570631558, enc[2])
	dec := cs.DecodeRGB(enc)
	tolassert.Equal(t, 0.18, dec[0])
	tolassert.Equal(t, 0, dec[1])
	tolassert.Equal(t, 1, dec[2])
}

func TestConversions(t *testing.T) {
	cs := EktaSpacePS5
	rgbs := [][3]float64{{0.25, 0.5, 0.75}, {1, 0, 0}, {0.1, 0.9, 0.3}}
	xyz, err := cs.RGBToXYZBatch(batch.Of3(rgbs...))
	require.NoError(t, err)
	back, err := cs.XYZToRGBBatch(xyz)
	require.NoError(t, err)
	for j, rgb := range rgbs {
		c := batch.Col3(xyz, j)
		s := cs.RGBToXYZ(rgb)
		tolassert.EqualSlice(t, s[:], c[:], 1e-12)
		r := cs.XYZToRGB(c)
		tolassert.EqualSlice(t, rgb[:], r[:], 1e-10)
		b := batch.Col3(back, j)
		tolassert.EqualSlice(t, rgb[:], b[:], 1e-10)
	}

	_, err = cs.RGBToXYZBatch(mat.NewDense(4, 1, nil))
	assert.ErrorIs(t, err, errors.ErrShape)
	_, err = cs.XYZToRGBBatch(mat.NewDense(2, 1, nil))
	assert.ErrorIs(t, err, errors.ErrShape)
}

func TestImmutable(t *testing.T) {
	m := ALEXAWideGamut.ToXYZMatrix()
	m.Set(0, 0, 0)
	assert.Equal(t, 0.638008, ALEXAWideGamut.ToXYZMatrix().At(0, 0))
	w := ALEXAWideGamut.Whitepoint()
	w[0] = 0
	assert.Equal(t, 0.3127, ALEXAWideGamut.Whitepoint()[0])

	src := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	wp := []float64{0.3127, 0.329}
	cs, err := NewColourspace("Test", ALEXAWideGamutPrimaries, wp, "D65", src, nil, GammaEncoding(1), GammaDecoding(1))
	require.NoError(t, err)
	src.Set(0, 0, 5)
	wp[0] = 1
	assert.Equal(t, 1.0, cs.ToXYZMatrix().At(0, 0))
	assert.Equal(t, 1.0, cs.FromXYZMatrix().At(0, 0))
	assert.Equal(t, 0.3127, cs.Whitepoint()[0])
}

func TestNewColourspaceErrors(t *testing.T) {
	enc, dec := GammaEncoding(2.2), GammaDecoding(2.2)
	_, err := NewColourspace("Bad", EktaSpacePS5Primaries, []float64{0.3}, "", nil, nil, enc, dec)
	assert.ErrorIs(t, err, errors.ErrShape)

	_, err = NewColourspace("Bad", EktaSpacePS5Primaries, []float64{0.3457, 0.3585}, "D50", mat.NewDense(2, 3, nil), nil, enc, dec)
	assert.ErrorIs(t, err, errors.ErrShape)

	_, err = NewColourspace("Bad", EktaSpacePS5Primaries, []float64{0.3457, 0.3585}, "D50", nil, mat.NewDense(3, 2, nil), enc, dec)
	assert.ErrorIs(t, err, errors.ErrShape)

	// all primaries on one line
	line := [3][2]float64{{0.1, 0.1}, {0.2, 0.2}, {0.3, 0.3}}
	_, err = NewColourspace("Bad", line, []float64{0.3127, 0.329}, "D65", nil, nil, enc, dec)
	assert.ErrorIs(t, err, errors.ErrDomain)

	_, err = NormalisedPrimaryMatrix([3][2]float64{{0.6, 0}, {0.3, 0.6}, {0.15, 0.06}}, [2]float64{0.3127, 0.329})
	assert.ErrorIs(t, err, errors.ErrDomain)
	_, err = NormalisedPrimaryMatrix(EktaSpacePS5Primaries, [2]float64{0.3127, 0})
	assert.ErrorIs(t, err, errors.ErrDomain)

	_, err = Invert(mat.NewDense(3, 3, nil))
	assert.ErrorIs(t, err, errors.ErrDomain)

	_, err = NewColourspace("Bad", EktaSpacePS5Primaries, []float64{0, 0, 0}, "", nil, nil, enc, dec)
	assert.ErrorIs(t, err, errors.ErrDomain)

	_, err = NewColourspace("Bad", EktaSpacePS5Primaries, []float64{0.3457, 0.3585}, "D50", nil, nil, nil, dec)
	assert.ErrorIs(t, err, errors.ErrDomain)
	_, err = NewColourspace("Bad", EktaSpacePS5Primaries, []float64{0.3457, 0.3585}, "D50", nil, nil, enc, nil)
	assert.ErrorIs(t, err, errors.ErrDomain)
}

func TestTristimulusWhitepoint(t *testing.T) {
	xy := colorimetry.MustWhitepoint(colorimetry.CIE1931, "D65")
	xyz := colorimetry.XYToXYZ(xy)
	enc, dec := LogCEncoding, LogCDecoding

	fromXY, err := NewColourspace("xy", ALEXAWideGamutPrimaries, xy[:], "D65", nil, nil, enc, dec)
	require.NoError(t, err)
	fromXYZ, err := NewColourspace("XYZ", ALEXAWideGamutPrimaries, xyz[:], "D65", nil, nil, enc, dec)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(fromXY.ToXYZMatrix(), fromXYZ.ToXYZMatrix(), 1e-12), "%v", mat.Formatted(fromXYZ.ToXYZMatrix()))
	assert.True(t, mat.EqualApprox(fromXY.FromXYZMatrix(), fromXYZ.FromXYZMatrix(), 1e-10))
	assert.Len(t, fromXYZ.Whitepoint(), 3)

	// the scale of the tristimulus values does not matter
	scaled := []float64{95.047, 100, 108.883}
	cs, err := NewColourspace("scaled", ALEXAWideGamutPrimaries, scaled, "D65", nil, nil, enc, dec)
	require.NoError(t, err)
	white := cs.RGBToXYZ([3]float64{1, 1, 1})
	sum := scaled[0] + scaled[1] + scaled[2]
	tolassert.Equal(t, scaled[0]/sum/(scaled[1]/sum), white[0])
	tolassert.Equal(t, 1, white[1])
}

func TestLogCParams(t *testing.T) {
	p := LogCEI800
	at := p.E*p.Cut + p.F
	// both segments meet at the cut
	tolassert.EqualTol(t, at, p.C*math.Log10(p.A*p.Cut+p.B)+p.D, 1e-6)
	tolassert.Equal(t, p.Cut, p.Decode(at))
	tolassert.Equal(t, -p.F/p.E, LogCDecoding(0))
	tolassert.Equal(t, 0.570631558, LogCEncoding(1))
}
