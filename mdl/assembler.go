// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
)

// assembly stages
const (
	stageNew = iota
	stageFundamentals
	stageCoupled
	stageEquations
)

// Assembler drives the submodel lifecycle through its three stages:
// fundamentals, coupling, equations. Each stage must be called exactly once
// and in order; the stage guard turns an out-of-order call into an immediate
// panic instead of a confusing missing-key failure later on.
//
// Coupling runs in a single pass in registration order: a submodel that needs
// a variable not yet produced must be registered after its producer. Any
// failure leaves the dictionary partially populated and must be treated as
// fatal to the whole model build.
type Assembler struct {
	subs  []Submodel
	vars  Variables
	stage int
}

// NewAssembler returns a new assembler over the given submodels, in
// registration order
func NewAssembler(subs ...Submodel) *Assembler {
	return &Assembler{subs: subs, vars: Variables{}}
}

// Fundamentals collects the unknowns declared by every submodel
func (o *Assembler) Fundamentals() Variables {
	if o.stage != stageNew {
		chk.Panic("assembler: Fundamentals must be the first stage")
	}
	o.stage = stageFundamentals
	for _, s := range o.subs {
		o.vars.Join(s.GetFundamentalVariables())
	}
	return o.vars
}

// Couple runs the coupling pass in registration order. The extra dictionary
// holds quantities produced outside this assembly (temperature, interfacial
// current density, particle radius) that the submodels consume.
func (o *Assembler) Couple(extra Variables) Variables {
	if o.stage != stageFundamentals {
		chk.Panic("assembler: Couple must follow Fundamentals")
	}
	o.stage = stageCoupled
	o.vars.Join(extra)
	for _, s := range o.subs {
		o.vars = s.GetCoupledVariables(o.vars)
	}
	return o.vars
}

// Equations populates and merges the equation dictionaries of every submodel
func (o *Assembler) Equations() *EqSet {
	if o.stage != stageCoupled {
		chk.Panic("assembler: Equations must follow Couple")
	}
	o.stage = stageEquations
	eqs := NewEqSet()
	for _, s := range o.subs {
		s.SetRhs(o.vars)
		s.SetBoundaryConditions(o.vars)
		s.SetInitialConditions(o.vars)
		merge(eqs, s.Equations())
	}
	return eqs
}

// Variables returns the accumulated variable dictionary
func (o *Assembler) Variables() Variables { return o.vars }

// merge copies the equations of src into dst, guarding against two submodels
// binding equations to the same unknown
func merge(dst, src *EqSet) {
	for u, e := range src.Rhs {
		if _, ok := dst.Rhs[u]; ok {
			chk.Panic("assembler: two submodels set rhs of %q", u.Name)
		}
		dst.Rhs[u] = e
	}
	for u, e := range src.Algebraic {
		if _, ok := dst.Algebraic[u]; ok {
			chk.Panic("assembler: two submodels set algebraic equation of %q", u.Name)
		}
		dst.Algebraic[u] = e
	}
	for u, bcs := range src.BoundaryConditions {
		if _, ok := dst.BoundaryConditions[u]; ok {
			chk.Panic("assembler: two submodels set boundary conditions of %q", u.Name)
		}
		dst.BoundaryConditions[u] = bcs
	}
	for u, e := range src.InitialConditions {
		if _, ok := dst.InitialConditions[u]; ok {
			chk.Panic("assembler: two submodels set initial conditions of %q", u.Name)
		}
		dst.InitialConditions[u] = e
	}
}
