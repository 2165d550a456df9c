// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"strings"

	"github.com/gobam/gobam/inp"
	"github.com/gobam/gobam/sym"
)

// Submodel defines the lifecycle every physical submodel implements. The
// methods must be called in the order listed:
//
//	GetFundamentalVariables  declares new unknowns; reads nothing
//	GetCoupledVariables      reads previously declared variables and adds
//	                         derived quantities only
//	SetRhs, SetBoundaryConditions, SetInitialConditions
//	                         bind exactly one equation per declared unknown
//	                         and must not introduce new variable names
//
// Violating the order produces missing-key panics from Variables.Get.
type Submodel interface {
	GetFundamentalVariables() Variables
	GetCoupledVariables(vars Variables) Variables
	SetRhs(vars Variables)
	SetBoundaryConditions(vars Variables)
	SetInitialConditions(vars Variables)
	Equations() *EqSet
}

// EqSet holds the equation dictionaries populated by one submodel (or merged
// from all of them), keyed by the declared unknowns
type EqSet struct {
	Rhs                map[*sym.Variable]sym.Expr // time-derivative expressions
	Algebraic          map[*sym.Variable]sym.Expr // algebraic constraints
	BoundaryConditions map[*sym.Variable]*BcPair  // left/right boundary conditions
	InitialConditions  map[*sym.Variable]sym.Expr // initial values
}

// NewEqSet returns a new set of empty equation dictionaries
func NewEqSet() *EqSet {
	return &EqSet{
		Rhs:                make(map[*sym.Variable]sym.Expr),
		Algebraic:          make(map[*sym.Variable]sym.Expr),
		BoundaryConditions: make(map[*sym.Variable]*BcPair),
		InitialConditions:  make(map[*sym.Variable]sym.Expr),
	}
}

// Base holds the data shared by all submodels: the electrode domain, the phase
// within the electrode, the per-electrode options and the phase parameter
// bundle. Concrete submodels embed Base.
type Base struct {
	Dom   string                // electrode domain, lowercase: "negative" or "positive"
	Phase string                // phase of the particle: "primary" or "secondary"
	Opts  *inp.ElectrodeOptions // per-electrode model options
	Par   *inp.Phase            // phase parameter bundle (read-only)
	Eqs   *EqSet                // equations populated by the Set* calls
}

// NewBase returns a new Base with allocated equation dictionaries
func NewBase(domain, phase string, opts *inp.ElectrodeOptions, par *inp.Phase) Base {
	return Base{Dom: domain, Phase: phase, Opts: opts, Par: par, Eqs: NewEqSet()}
}

// Cap returns the capitalised domain name used as variable-name prefix;
// e.g. "Negative"
func (o *Base) Cap() string {
	if o.Dom == "" {
		return ""
	}
	return strings.ToUpper(o.Dom[:1]) + o.Dom[1:]
}

// Ph returns the phase prefix spliced into variable names: empty for the
// primary phase, "secondary " for the secondary phase of a blended electrode
func (o *Base) Ph() string {
	if o.Phase == "primary" || o.Phase == "" {
		return ""
	}
	return o.Phase + " "
}

// Equations returns the equation dictionaries of this submodel
func (o *Base) Equations() *EqSet { return o.Eqs }
