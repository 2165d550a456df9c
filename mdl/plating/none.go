// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plating

import (
	"github.com/cpmech/gosl/io"

	"github.com/gobam/gobam/inp"
	"github.com/gobam/gobam/mdl"
	"github.com/gobam/gobam/sym"
)

// NoPlating implements the stub submodel for the case without lithium
// plating: it publishes the plating quantities other submodels may look up,
// all identically zero, and binds no equations
type NoPlating struct {
	mdl.Base
}

// register model
func init() {
	allocators["none"] = func(domain string, opts *inp.ElectrodeOptions, par *inp.Phase) Model {
		return NewNoPlating(domain, opts, par)
	}
}

// NewNoPlating returns a new no-plating submodel
func NewNoPlating(domain string, opts *inp.ElectrodeOptions, par *inp.Phase) *NoPlating {
	return &NoPlating{Base: mdl.NewBase(domain, "primary", opts, par)}
}

// GetFundamentalVariables publishes the zero-valued plating quantities
func (o *NoPlating) GetFundamentalVariables() mdl.Variables {
	Dom, dom := o.Cap(), o.Dom
	edom := io.Sf("%s electrode", dom)
	zero := sym.BroadcastFull(0, sym.D(edom, "current collector"))
	zeroXav := sym.BroadcastFull(0, sym.D("current collector"))
	return mdl.Variables{
		io.Sf("%s lithium plating concentration [mol.m-3]", Dom):                       zero,
		io.Sf("X-averaged %s lithium plating concentration [mol.m-3]", dom):            zeroXav,
		io.Sf("%s lithium plating interfacial current density [A.m-2]", Dom):            zero,
		io.Sf("X-averaged %s lithium plating interfacial current density [A.m-2]", dom): zeroXav,
		io.Sf("Loss of lithium to %s lithium plating [mol]", dom):                      sym.Num(0),
	}
}

// GetCoupledVariables adds nothing
func (o *NoPlating) GetCoupledVariables(vars mdl.Variables) mdl.Variables {
	return vars
}

// SetRhs binds nothing; there is no plating unknown
func (o *NoPlating) SetRhs(vars mdl.Variables) {}

// SetBoundaryConditions binds nothing
func (o *NoPlating) SetBoundaryConditions(vars mdl.Variables) {}

// SetInitialConditions binds nothing
func (o *NoPlating) SetInitialConditions(vars mdl.Variables) {}
