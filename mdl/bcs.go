// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/gobam/gobam/sym"
)

// BcKind distinguishes the kinds of boundary conditions
type BcKind int

// boundary condition kinds
const (
	Dirichlet BcKind = iota
	Neumann
)

// String returns the name of the boundary condition kind
func (o BcKind) String() string {
	switch o {
	case Dirichlet:
		return "Dirichlet"
	case Neumann:
		return "Neumann"
	}
	return "unknown"
}

// Bc holds one boundary condition: a symbolic value and its kind
type Bc struct {
	Value sym.Expr
	Kind  BcKind
}

// BcPair holds the boundary conditions at both ends of the primary axis
type BcPair struct {
	Left  Bc // particle centre (r = 0)
	Right Bc // particle surface
}
