// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorimetry provides the chromaticity coordinates of the
// CIE standard illuminants, looked up by observer and illuminant name.
// Names are case-insensitive. The table is read once, at package
// initialization, from an embedded TOML file and is read-only thereafter.
package colorimetry

import (
	_ "embed"
	"fmt"
	"log/slog"

	"cogentcore.org/colour/base/errors"
	"cogentcore.org/colour/base/foldmap"
	"github.com/pelletier/go-toml/v2"
)

// Standard observer names.
const (
	CIE1931 = "CIE 1931 2 Degree Standard Observer"
	CIE1964 = "CIE 1964 10 Degree Standard Observer"
)

//go:embed illuminants.toml
var illuminantsTOML []byte

// Observer is the set of illuminant chromaticities for one standard observer.
type Observer struct {

	// Name is the name of the standard observer, e.g. [CIE1931].
	Name string

	// Illuminants maps illuminant names, e.g. "D65", to chromaticity
	// coordinates (x, y).
	Illuminants *foldmap.Map[[2]float64]
}

// Observers maps standard observer names to their illuminants.
var Observers = errors.Must1(ParseIlluminants(illuminantsTOML))

type illuminantsFile struct {
	Observer []struct {
		Name       string `toml:"name"`
		Illuminant []struct {
			Name string     `toml:"name"`
			XY   [2]float64 `toml:"xy"`
		} `toml:"illuminant"`
	} `toml:"observer"`
}

// ParseIlluminants parses an illuminant table in the TOML format of
// the embedded table: an array of observer tables, each holding an
// array of illuminant tables with a name and xy chromaticity coordinates.
func ParseIlluminants(b []byte) (*foldmap.Map[*Observer], error) {
	var f illuminantsFile
	if err := toml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("colorimetry: parsing illuminants: %w", err)
	}
	obs := make([]foldmap.KeyValue[*Observer], 0, len(f.Observer))
	for _, o := range f.Observer {
		if o.Name == "" {
			return nil, errors.New("colorimetry: observer without a name")
		}
		ills := make([]foldmap.KeyValue[[2]float64], 0, len(o.Illuminant))
		for _, il := range o.Illuminant {
			if il.XY[1] == 0 {
				return nil, &errors.DomainError{Op: "colorimetry.ParseIlluminants", Param: o.Name + " " + il.Name + " y", Value: il.XY[1]}
			}
			ills = append(ills, foldmap.KeyValue[[2]float64]{Key: il.Name, Value: il.XY})
		}
		obs = append(obs, foldmap.KeyValue[*Observer]{Key: o.Name, Value: &Observer{Name: o.Name, Illuminants: foldmap.Make(ills)}})
		slog.Debug("colorimetry: loaded observer", "observer", o.Name, "illuminants", len(ills))
	}
	return foldmap.Make(obs), nil
}

// Whitepoint returns the chromaticity coordinates (x, y) of the given
// illuminant for the given standard observer. It returns a
// [errors.LookupError] if either name is unknown.
func Whitepoint(observer, illuminant string) ([2]float64, error) {
	obs, ok := Observers.ValueByKeyTry(observer)
	if !ok {
		return [2]float64{}, &errors.LookupError{Kind: "observer", Name: observer}
	}
	xy, ok := obs.Illuminants.ValueByKeyTry(illuminant)
	if !ok {
		return [2]float64{}, &errors.LookupError{Kind: "illuminant", Name: illuminant}
	}
	return xy, nil
}

// MustWhitepoint is like [Whitepoint] but logs and panics on an unknown
// name. It is intended for the initialization of package-level datasets,
// for which a missing illuminant is fatal.
func MustWhitepoint(observer, illuminant string) [2]float64 {
	xy, err := Whitepoint(observer, illuminant)
	errors.Must(errors.Log(err))
	return xy
}

// XYToXYZ converts chromaticity coordinates (x, y) to
// tristimulus values with a luminance Y of 1.
func XYToXYZ(xy [2]float64) [3]float64 {
	x, y := xy[0], xy[1]
	return [3]float64{x / y, 1, (1 - x - y) / y}
}
