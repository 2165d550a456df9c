// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"github.com/cpmech/gosl/io"

	"github.com/gobam/gobam/inp"
	"github.com/gobam/gobam/mdl"
	"github.com/gobam/gobam/sym"
)

// MSMR implements molar conservation in particles within the Multi-Species
// Multi-Reaction framework. The fundamental unknown is the particle potential
// U, not the concentration: the stoichiometry is recovered through the
// nonlinear relation X(U) and the concentration follows as c = X·c_max. The
// diffusive flux in potential space is
//
//	Ns = c_max·X·(1-X)·(F/(Rg·T))·D(c)·∇U
//
// and the governing equation divides the conservation law by the Jacobian
// dX/dU to evolve the potential directly:
//
//	∂U/∂t = -(1/R²)·∇·Ns / (c_max·dX/dU)
type MSMR struct {
	Particle
}

// register model
func init() {
	allocators["msmr"] = func(domain, phase string, opts *inp.ElectrodeOptions, par *inp.Phase) Model {
		return NewMSMR(domain, phase, opts, par)
	}
}

// NewMSMR returns a new MSMR diffusion submodel
func NewMSMR(domain, phase string, opts *inp.ElectrodeOptions, par *inp.Phase) *MSMR {
	return &MSMR{Particle: NewParticle(domain, phase, opts, par)}
}

// stateKey returns the dictionary key of the declared potential unknown of
// this representation branch
func (o *MSMR) stateKey() string {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	switch o.Repr {
	case reprXav:
		return io.Sf("X-averaged %s %sparticle potential [V]", dom, ph)
	case reprDist:
		return io.Sf("%s %sparticle potential distribution [V]", Dom, ph)
	case reprDistXav:
		return io.Sf("X-averaged %s %sparticle potential distribution [V]", dom, ph)
	}
	return io.Sf("%s %sparticle potential [V]", Dom, ph)
}

// GetFundamentalVariables declares the potential unknown of this branch and
// publishes the standard potential, stoichiometry, concentration and
// differential stoichiometry forms derived from it
func (o *MSMR) GetFundamentalVariables() mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	pdom, sdom, edom := o.pdom(), o.sdom(), o.edom()
	cmax := sym.Num(o.Par.CMax)
	vars := mdl.Variables{}

	var U sym.Expr
	switch o.Repr {

	case reprFull:
		U = sym.NewVar(io.Sf("%s %sparticle potential [V]", Dom, ph), sym.D(pdom, edom, ccdom))

	case reprXav:
		// the unknown lives on the collapsed electrode axis; consumers that
		// need the full domain get it back through a broadcast
		Uxav := sym.NewVar(io.Sf("X-averaged %s %sparticle potential [V]", dom, ph), sym.D(pdom, ccdom))
		U = sym.BroadcastSecondary(Uxav, edom)

	case reprDist, reprDistXav:
		var Udist *sym.Variable
		var R *sym.Coord
		if o.Repr == reprDist {
			Udist = sym.NewVar(io.Sf("%s %sparticle potential distribution [V]", Dom, ph), sym.D(pdom, sdom, edom, ccdom))
			R = sym.NewCoord(io.Sf("R_%c", o.Dom[0]), sym.D(sdom, edom, ccdom))
		} else {
			Udist = sym.NewVar(io.Sf("X-averaged %s %sparticle potential distribution [V]", dom, ph), sym.D(pdom, sdom, ccdom))
			R = sym.NewCoord(io.Sf("R_%c", o.Dom[0]), sym.D(sdom, ccdom))
		}
		vars.Join(o.distributionVariables(R))
		fvKey := io.Sf("%s volume-weighted %sparticle-size distribution [m-1]", Dom, ph)
		if o.Repr == reprDistXav {
			fvKey = io.Sf("X-averaged %s volume-weighted %sparticle-size distribution [m-1]", dom, ph)
		}
		fv := vars.Get(fvKey)

		// size-resolved forms
		vars.Join(o.potentialDistributionVariables(Udist))
		Xdist := o.Par.X(Udist)
		vars.Join(o.concentrationDistributionVariables(sym.Mul(Xdist, cmax), Xdist))
		vars.Join(o.diffStoichDistributionVariables(o.Par.DXDU(Udist)))

		// size-averaged potential, in volume-weighted space: particle volume
		// fraction, not particle count, is what conserves total lithium
		U = sym.NewIntegral(Udist, fv, R)
		if o.Repr == reprDistXav {
			U = sym.BroadcastSecondary(U, edom)
		}
	}

	// size-independent forms
	vars.Join(o.potentialVariables(U))
	X := o.Par.X(U)
	vars.Join(o.concentrationVariables(sym.Mul(X, cmax), X))
	vars.Join(o.diffStoichVariables(o.Par.DXDU(U)))
	return vars
}

// GetCoupledVariables builds the diffusive flux and the governing equation in
// potential space and publishes the diffusivity and flux forms
func (o *MSMR) GetCoupledVariables(vars mdl.Variables) mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	pdom, sdom, edom := o.pdom(), o.sdom(), o.edom()

	var X, dXdU, U, T, Rn, Rbn, j sym.Expr
	switch o.Repr {

	case reprFull:
		X = vars.Get(io.Sf("%s %sparticle stoichiometry", Dom, ph))
		dXdU = vars.Get(io.Sf("%s %sparticle differential stoichiometry [V-1]", Dom, ph))
		U = vars.Get(io.Sf("%s %sparticle potential [V]", Dom, ph))
		T = sym.BroadcastPrimary(vars.Get(io.Sf("%s electrode temperature [K]", Dom)), pdom)
		Rn = vars.Get(io.Sf("%s %sparticle radius", Dom, ph))
		j = vars.Get(io.Sf("%s electrode %sinterfacial current density [A.m-2]", Dom, ph))
		Rbn = Rn

	case reprXav:
		X = vars.Get(io.Sf("X-averaged %s %sparticle stoichiometry", dom, ph))
		dXdU = vars.Get(io.Sf("X-averaged %s %sparticle differential stoichiometry [V-1]", dom, ph))
		U = vars.Get(io.Sf("X-averaged %s %sparticle potential [V]", dom, ph))
		T = sym.BroadcastPrimary(vars.Get(io.Sf("X-averaged %s electrode temperature [K]", dom)), pdom)
		Rn = sym.Num(1)
		j = vars.Get(io.Sf("X-averaged %s electrode %sinterfacial current density [A.m-2]", dom, ph))
		Rbn = Rn

	case reprDist:
		Rn = vars.Get(io.Sf("%s %sparticle sizes", Dom, ph))
		Rbn = sym.BroadcastPrimary(Rn, pdom)
		X = vars.Get(io.Sf("%s %sparticle stoichiometry distribution", Dom, ph))
		dXdU = vars.Get(io.Sf("%s %sparticle differential stoichiometry distribution [V-1]", Dom, ph))
		U = vars.Get(io.Sf("%s %sparticle potential distribution [V]", Dom, ph))
		// broadcast T to the size domain, then again into the particles
		T = sym.BroadcastPrimary(vars.Get(io.Sf("%s electrode temperature [K]", Dom)), sdom)
		T = sym.BroadcastPrimary(T, pdom)
		j = vars.Get(io.Sf("%s electrode %sinterfacial current density distribution [A.m-2]", Dom, ph))

	case reprDistXav:
		Rn = vars.Get(io.Sf("%s %sparticle sizes", Dom, ph))
		Rbn = sym.BroadcastPrimary(Rn, pdom)
		X = vars.Get(io.Sf("X-averaged %s %sparticle stoichiometry distribution", dom, ph))
		dXdU = vars.Get(io.Sf("X-averaged %s %sparticle differential stoichiometry distribution [V-1]", dom, ph))
		U = vars.Get(io.Sf("X-averaged %s %sparticle potential distribution [V]", dom, ph))
		T = sym.BroadcastPrimary(vars.Get(io.Sf("X-averaged %s electrode temperature [K]", dom)), sdom)
		T = sym.BroadcastPrimary(T, pdom)
		j = vars.Get(io.Sf("X-averaged %s electrode %sinterfacial current density distribution [A.m-2]", dom, ph))
	}

	// flux in potential space; the diffusivity takes the concentration, not
	// the stoichiometry
	cmax := sym.Num(o.Par.CMax)
	one := sym.Num(1)
	Deff := o.effectiveDiffusivity(sym.Mul(X, cmax), T)
	f := sym.Div(sym.Num(o.Par.F), sym.Mul(sym.Num(o.Par.Rg), T))
	Ns := sym.Prod(cmax, X, sym.Sub(one, X), f, Deff, sym.Grad(U))

	// governing equation and surface flux condition
	vars.Set(io.Sf("%s %sparticle rhs [V.s-1]", Dom, ph),
		sym.Neg(sym.Div(sym.Div(sym.Div(sym.Diverg(Ns), sym.Pow(Rbn, 2)), cmax), dXdU)))
	vars.Set(io.Sf("%s %sparticle bc [V.m-1]", Dom, ph),
		sym.Div(sym.Div(sym.Mul(j, Rn), sym.Num(o.Par.F)),
			sym.Surf(sym.Prod(cmax, X, sym.Sub(one, X), f, Deff))))

	// size-resolved flux forms, then volume-to-area averaging over the sizes
	if o.Repr == reprDist || o.Repr == reprDistXav {
		vars.Join(o.diffusivityDistributionVariables(Deff))
		vars.Join(o.fluxDistributionVariables(Ns))
		R := vars.Get(io.Sf("%s %sparticle sizes [m]", Dom, ph)).(*sym.Coord)
		fa := o.Par.FaDist(R)
		Deff = sym.NewIntegral(Deff, fa, R)
		Ns = sym.NewIntegral(Ns, fa, R)
	}
	if o.Repr == reprXav || o.Repr == reprDistXav {
		Deff = sym.BroadcastSecondary(Deff, edom)
		Ns = sym.BroadcastSecondary(Ns, edom)
	}
	vars.Join(o.diffusivityVariables(Deff))
	vars.Join(o.fluxVariables(Ns))
	return vars
}

// SetRhs binds the potential-evolution equation to the declared unknown
func (o *MSMR) SetRhs(vars mdl.Variables) {
	U := vars.GetVar(o.stateKey())
	o.Eqs.Rhs[U] = vars.Get(io.Sf("%s %sparticle rhs [V.s-1]", o.Cap(), o.Ph()))
}

// SetBoundaryConditions binds zero flux at the particle centre and the
// rearranged interfacial flux continuity at the surface
func (o *MSMR) SetBoundaryConditions(vars mdl.Variables) {
	U := vars.GetVar(o.stateKey())
	rbc := vars.Get(io.Sf("%s %sparticle bc [V.m-1]", o.Cap(), o.Ph()))
	o.Eqs.BoundaryConditions[U] = &mdl.BcPair{
		Left:  mdl.Bc{Value: sym.Num(0), Kind: mdl.Neumann},
		Right: mdl.Bc{Value: rbc, Kind: mdl.Neumann},
	}
}

// SetInitialConditions binds the initial potential
func (o *MSMR) SetInitialConditions(vars mdl.Variables) {
	U := vars.GetVar(o.stateKey())
	o.Eqs.InitialConditions[U] = sym.Num(o.Par.UInit)
}
