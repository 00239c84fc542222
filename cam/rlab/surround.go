// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rlab

import (
	"strconv"

	"cogentcore.org/colour/base/errors"
	"cogentcore.org/colour/base/foldmap"
)

// Surround is one of the reference viewing conditions of the RLAB model,
// describing the relative luminance of the surround.
type Surround int32

const (
	// Average is an average surround, e.g. reflection prints.
	Average Surround = iota

	// Dim is a dim surround, e.g. television or CRT displays.
	Dim

	// Dark is a dark surround, e.g. projected transparencies.
	Dark

	surroundN
)

// ViewingConditions maps the reference viewing condition names to the
// exponent sigma of the relative luminance of the surround. Lookup
// is case-insensitive.
var ViewingConditions = foldmap.Make([]foldmap.KeyValue[float64]{
	{Key: "Average", Value: 1 / 2.3},
	{Key: "Dim", Value: 1 / 2.9},
	{Key: "Dark", Value: 1 / 3.5},
})

// SurroundValues returns all possible values of [Surround].
func SurroundValues() []Surround {
	return []Surround{Average, Dim, Dark}
}

// String returns the name of the surround, e.g. "Average".
func (s Surround) String() string {
	if s < 0 || s >= surroundN {
		return "Surround(" + strconv.Itoa(int(s)) + ")"
	}
	return ViewingConditions.KeyByIndex(int(s))
}

// Sigma returns the exponent sigma of the relative luminance
// of the surround, or NaN for an invalid value.
func (s Surround) Sigma() float64 {
	if s < 0 || s >= surroundN {
		return nan
	}
	return ViewingConditions.ValueByIndex(int(s))
}

// ParseSurround returns the [Surround] with the given case-insensitive
// name, or a [errors.LookupError] if there is none.
func ParseSurround(name string) (Surround, error) {
	for _, s := range SurroundValues() {
		if foldmap.Fold(s.String()) == foldmap.Fold(name) {
			return s, nil
		}
	}
	return Average, &errors.LookupError{Kind: "viewing condition", Name: name}
}

// Sigma returns the surround exponent of the viewing condition with the
// given case-insensitive name, or a [errors.LookupError] if there is none.
func Sigma(name string) (float64, error) {
	sigma, ok := ViewingConditions.ValueByKeyTry(name)
	if !ok {
		return 0, &errors.LookupError{Kind: "viewing condition", Name: name}
	}
	return sigma, nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Surround) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Surround) UnmarshalText(text []byte) error {
	v, err := ParseSurround(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
