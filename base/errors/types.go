// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
)

var (
	// ErrShape is matched by every [ShapeError].
	ErrShape = New("shape mismatch")

	// ErrDomain is matched by every [DomainError].
	ErrDomain = New("value outside of the domain of the formula")

	// ErrNotFound is matched by every [LookupError].
	ErrNotFound = New("not found")
)

// ShapeError is returned when an input array does not have the
// component count of the vectors a transform operates on.
type ShapeError struct {

	// Op is the name of the operation that rejected the input.
	Op string

	// Rows and Cols are the dimensions of the rejected input.
	Rows, Cols int

	// Want is the number of components (rows) the operation expects.
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: input has shape (%d, %d), want (%d, n) with n > 0", e.Op, e.Rows, e.Cols, e.Want)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// DomainError is returned when a parameter makes a formula
// mathematically undefined, such as a zero divisor.
type DomainError struct {
	Op    string
	Param string

	// Value is the offending value, usually a float64.
	Value any
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v", e.Op, e.Param, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// LookupError is returned when a named entry, such as an
// illuminant or an observer, does not exist.
type LookupError struct {

	// Kind is the kind of entry, e.g. "observer".
	Kind string

	// Name is the requested name.
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }
