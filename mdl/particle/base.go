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

// ccdom is the outermost aggregation domain
const ccdom = "current collector"

// repr identifies the representation of the particle state. It is resolved
// once at construction from the size-distribution and x-average options so
// that the lifecycle methods dispatch on a single tag instead of re-branching
// on two booleans everywhere.
type repr int

const (
	reprFull    repr = iota // resolved along the electrode, single particle size
	reprXav                 // x-averaged, single particle size
	reprDist                // resolved along the electrode, particle-size distribution
	reprDistXav             // x-averaged, particle-size distribution
)

// Particle holds the data and variable-publishing helpers shared by all
// particle submodels. Every published quantity appears in up to six standard
// forms (raw, x-averaged, r-averaged, fully averaged, surface, x-averaged
// surface) so that downstream submodels never need to know which
// representation branch produced them.
type Particle struct {
	mdl.Base
	Repr repr
}

// NewParticle returns the shared particle base with the representation
// resolved from the electrode options
func NewParticle(domain, phase string, opts *inp.ElectrodeOptions, par *inp.Phase) Particle {
	r := reprFull
	switch {
	case opts.SizeDistribution && opts.XAverage:
		r = reprDistXav
	case opts.SizeDistribution:
		r = reprDist
	case opts.XAverage:
		r = reprXav
	}
	return Particle{Base: mdl.NewBase(domain, phase, opts, par), Repr: r}
}

// domain names /////////////////////////////////////////////////////////////////////////////////////

// pdom returns the particle domain; e.g. "negative particle"
func (o *Particle) pdom() string { return io.Sf("%s %sparticle", o.Dom, o.Ph()) }

// sdom returns the particle-size domain; e.g. "negative particle size"
func (o *Particle) sdom() string { return io.Sf("%s %sparticle size", o.Dom, o.Ph()) }

// edom returns the electrode domain; e.g. "negative electrode"
func (o *Particle) edom() string { return io.Sf("%s electrode", o.Dom) }

// standard forms ///////////////////////////////////////////////////////////////////////////////////

// stdForms publishes the six standard representations of a particle quantity.
// The name convention is load-bearing: other submodels look these keys up
// verbatim.
func (o *Particle) stdForms(quantity, unit string, e sym.Expr) mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	surf := sym.Surf(e)
	xav := sym.XAverage(e)
	return mdl.Variables{
		io.Sf("%s %sparticle %s%s", Dom, ph, quantity, unit):                e,
		io.Sf("X-averaged %s %sparticle %s%s", dom, ph, quantity, unit):     xav,
		io.Sf("R-averaged %s %sparticle %s%s", dom, ph, quantity, unit):     sym.RAverage(e),
		io.Sf("Average %s %sparticle %s%s", dom, ph, quantity, unit):        sym.RAverage(xav),
		io.Sf("%s %sparticle surface %s%s", Dom, ph, quantity, unit):        surf,
		io.Sf("X-averaged %s %sparticle surface %s%s", dom, ph, quantity, unit): sym.XAverage(surf),
	}
}

// potentialVariables publishes the standard forms of the particle potential
// plus its extrema
func (o *Particle) potentialVariables(U sym.Expr) mdl.Variables {
	dom, ph := o.Dom, o.Ph()
	vars := o.stdForms("potential", " [V]", U)
	vars.Set(io.Sf("Minimum %s %sparticle potential [V]", dom, ph), sym.MinOf(U))
	vars.Set(io.Sf("Maximum %s %sparticle potential [V]", dom, ph), sym.MaxOf(U))
	vars.Set(io.Sf("Minimum %s %sparticle surface potential [V]", dom, ph), sym.MinOf(sym.Surf(U)))
	vars.Set(io.Sf("Maximum %s %sparticle surface potential [V]", dom, ph), sym.MaxOf(sym.Surf(U)))
	return vars
}

// concentrationVariables publishes the standard forms of the particle
// concentration and stoichiometry
func (o *Particle) concentrationVariables(cs, X sym.Expr) mdl.Variables {
	vars := o.stdForms("concentration", " [mol.m-3]", cs)
	vars.Join(o.stdForms("stoichiometry", "", X))
	return vars
}

// diffStoichVariables publishes the standard forms of the differential
// stoichiometry dX/dU
func (o *Particle) diffStoichVariables(dXdU sym.Expr) mdl.Variables {
	return o.stdForms("differential stoichiometry", " [V-1]", dXdU)
}

// diffusivityVariables publishes the effective diffusivity forms
func (o *Particle) diffusivityVariables(D sym.Expr) mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	surf := sym.Surf(D)
	return mdl.Variables{
		io.Sf("%s %sparticle effective diffusivity [m2.s-1]", Dom, ph):                    D,
		io.Sf("X-averaged %s %sparticle effective diffusivity [m2.s-1]", dom, ph):         sym.XAverage(D),
		io.Sf("%s %sparticle surface effective diffusivity [m2.s-1]", Dom, ph):            surf,
		io.Sf("X-averaged %s %sparticle surface effective diffusivity [m2.s-1]", dom, ph): sym.XAverage(surf),
	}
}

// fluxVariables publishes the diffusive flux forms
func (o *Particle) fluxVariables(N sym.Expr) mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	return mdl.Variables{
		io.Sf("%s %sparticle flux [mol.m-2.s-1]", Dom, ph):            N,
		io.Sf("X-averaged %s %sparticle flux [mol.m-2.s-1]", dom, ph): sym.XAverage(N),
	}
}

// size-distribution forms //////////////////////////////////////////////////////////////////////////

// distributionVariables publishes the particle-size axis and its weighting
// densities. The dimensional sizes entry holds the coordinate itself; size
// integrals run over it.
func (o *Particle) distributionVariables(R *sym.Coord) mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	Rn := sym.Div(R, sym.Num(o.Par.RTyp))
	fa := o.Par.FaDist(R)
	fv := o.Par.FvDist(R)

	// full and x-averaged density forms depend on whether the size axis still
	// carries the electrode level
	faFull, fvFull := sym.Expr(fa), sym.Expr(fv)
	faXav, fvXav := sym.XAverage(fa), sym.XAverage(fv)
	if !R.Domains().Has(sym.Secondary, o.edom()) {
		faXav, fvXav = fa, fv
		faFull = sym.BroadcastSecondary(fa, o.edom())
		fvFull = sym.BroadcastSecondary(fv, o.edom())
	}

	return mdl.Variables{
		io.Sf("%s %sparticle sizes", Dom, ph):     Rn,
		io.Sf("%s %sparticle sizes [m]", Dom, ph): R,
		io.Sf("%s area-weighted %sparticle-size distribution [m-1]", Dom, ph):              faFull,
		io.Sf("X-averaged %s area-weighted %sparticle-size distribution [m-1]", dom, ph):   faXav,
		io.Sf("%s volume-weighted %sparticle-size distribution [m-1]", Dom, ph):            fvFull,
		io.Sf("X-averaged %s volume-weighted %sparticle-size distribution [m-1]", dom, ph): fvXav,
	}
}

// distributionForms reconstructs the standard size-resolved representations of
// a quantity from whichever domain signature it carries. Four signatures occur
// in practice; they differ in which levels (particle, electrode) the input
// still resolves.
func (o *Particle) distributionForms(e sym.Expr) (dist, xavDist, surfDist, surfXavDist sym.Expr) {
	dm := e.Domains()
	pdom, sdom, edom := o.pdom(), o.sdom(), o.edom()
	switch {

	// size-resolved surface value, already x-averaged
	case dm.Has(sym.Primary, sdom) && !dm.Has(sym.Secondary, edom):
		xavDist = sym.BroadcastPrimary(e, pdom)
		surfXavDist = e
		surfDist = sym.BroadcastSecondary(e, edom)
		dist = sym.BroadcastPrimary(surfDist, pdom)

	// resolved within particles, x-averaged
	case dm.Has(sym.Primary, pdom) && !dm.Has(sym.Tertiary, edom):
		xavDist = e
		surfXavDist = sym.Surf(e)
		surfDist = sym.BroadcastSecondary(surfXavDist, edom)
		dist = sym.BroadcastTertiary(e, edom)

	// size-resolved surface value along the electrode
	case dm.Has(sym.Primary, sdom) && dm.Has(sym.Secondary, edom):
		surfDist = e
		surfXavDist = sym.XAverage(e)
		xavDist = sym.BroadcastPrimary(surfXavDist, pdom)
		dist = sym.BroadcastPrimary(surfDist, pdom)

	// fully resolved: particle / size / electrode / current collector
	default:
		dist = e
		// Averaging over the tertiary (electrode) level is not implemented.
		// Publish the 0.5 placeholder instead; do not "fix" this without
		// confirming the intended semantics.
		xavDist = sym.BroadcastFull(0.5, sym.D(pdom, sdom, ccdom))
		surfDist = sym.Surf(e)
		surfXavDist = sym.XAverage(surfDist)
	}
	return
}

// stdDistForms publishes the six standard forms of a size-resolved quantity
func (o *Particle) stdDistForms(quantity, unit string, e sym.Expr) mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	dist, xavDist, surfDist, surfXavDist := o.distributionForms(e)
	ravDist := sym.RAverage(dist)
	return mdl.Variables{
		io.Sf("%s %sparticle %s distribution%s", Dom, ph, quantity, unit):                dist,
		io.Sf("X-averaged %s %sparticle %s distribution%s", dom, ph, quantity, unit):     xavDist,
		io.Sf("R-averaged %s %sparticle %s distribution%s", dom, ph, quantity, unit):     ravDist,
		io.Sf("Average %s %sparticle %s distribution%s", dom, ph, quantity, unit):        sym.XAverage(ravDist),
		io.Sf("%s %sparticle surface %s distribution%s", Dom, ph, quantity, unit):        surfDist,
		io.Sf("X-averaged %s %sparticle surface %s distribution%s", dom, ph, quantity, unit): surfXavDist,
	}
}

// potentialDistributionVariables publishes the size-resolved potential forms
func (o *Particle) potentialDistributionVariables(U sym.Expr) mdl.Variables {
	return o.stdDistForms("potential", " [V]", U)
}

// concentrationDistributionVariables publishes the size-resolved
// concentration and stoichiometry forms
func (o *Particle) concentrationDistributionVariables(cs, X sym.Expr) mdl.Variables {
	vars := o.stdDistForms("concentration", " [mol.m-3]", cs)
	vars.Join(o.stdDistForms("stoichiometry", "", X))
	return vars
}

// diffStoichDistributionVariables publishes the size-resolved differential
// stoichiometry forms
func (o *Particle) diffStoichDistributionVariables(dXdU sym.Expr) mdl.Variables {
	return o.stdDistForms("differential stoichiometry", " [V-1]", dXdU)
}

// diffusivityDistributionVariables publishes the size-resolved diffusivity forms
func (o *Particle) diffusivityDistributionVariables(D sym.Expr) mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	return mdl.Variables{
		io.Sf("%s %sparticle effective diffusivity distribution [m2.s-1]", Dom, ph):        D,
		io.Sf("X-averaged %s %sparticle effective diffusivity distribution [m2.s-1]", dom, ph): sym.XAverage(D),
	}
}

// fluxDistributionVariables publishes the size-resolved flux forms
func (o *Particle) fluxDistributionVariables(N sym.Expr) mdl.Variables {
	Dom, dom, ph := o.Cap(), o.Dom, o.Ph()
	return mdl.Variables{
		io.Sf("%s %sparticle flux distribution [mol.m-2.s-1]", Dom, ph):            N,
		io.Sf("X-averaged %s %sparticle flux distribution [mol.m-2.s-1]", dom, ph): sym.XAverage(N),
	}
}

// effectiveDiffusivity returns the effective diffusivity as a function of
// concentration (not stoichiometry) and temperature
func (o *Particle) effectiveDiffusivity(c, T sym.Expr) sym.Expr {
	return o.Par.Deff(c, T)
}
