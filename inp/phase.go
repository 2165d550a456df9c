// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input layer: the material database, the phase
// parameter bundles consumed by the submodels and the model options file
package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/gobam/gobam/sym"
)

// Phase holds the read-only parameter bundle of one particle phase within an
// electrode. The stoichiometry relation follows the single-reaction MSMR form
//
//	X(U) = Xj / (1 + exp((U - U0)·F / (W·Rg·Tref)))
//
// so the stoichiometry is recovered from the potential, never the other way
// around. Symbolic accessors return sym.Fn applications carrying scalar
// callbacks used only by the probe.
type Phase struct {

	// input
	CMax  float64 // maximum lithium concentration in the particle [mol/m³]
	UInit float64 // initial particle potential [V]
	U0    float64 // MSMR standard electrode potential of the reaction [V]
	W     float64 // MSMR ideality (disorder) factor
	Xj    float64 // total site occupancy of the reaction
	DRef  float64 // reference diffusivity [m²/s]
	RTyp  float64 // typical particle radius [m]
	SdR   float64 // lognormal spread of the particle-size distribution

	// physical constants
	F    float64 // Faraday constant [C/mol]
	Rg   float64 // gas constant [J/(mol·K)]
	Tref float64 // reference temperature [K]
}

// Init initialises the bundle from material parameters
func (o *Phase) Init(prms utl.Params) (err error) {

	// defaults
	o.Xj = 1.0
	o.W = 1.0
	o.RTyp = 1e-6
	o.SdR = 0.3
	o.F = 96485.33212
	o.Rg = 8.314462618
	o.Tref = 298.15

	// connect parameters
	prms.Connect(&o.CMax, "cmax", "cmax phase parameters")
	prms.Connect(&o.UInit, "uinit", "uinit phase parameters")
	prms.Connect(&o.U0, "u0", "u0 phase parameters")
	prms.Connect(&o.W, "w", "w phase parameters")
	prms.Connect(&o.Xj, "xj", "xj phase parameters")
	prms.Connect(&o.DRef, "dref", "dref phase parameters")
	prms.Connect(&o.RTyp, "rtyp", "rtyp phase parameters")
	prms.Connect(&o.SdR, "sdr", "sdr phase parameters")

	// check
	if o.CMax <= 0 {
		return chk.Err("phase parameters: 'cmax' must be given and positive")
	}
	if o.DRef <= 0 {
		return chk.Err("phase parameters: 'dref' must be given and positive")
	}
	return
}

// X returns the stoichiometry as a function of the potential
func (o *Phase) X(U sym.Expr) sym.Expr {
	return sym.NewFn("X", func(args ...float64) float64 {
		return o.Xj / (1.0 + math.Exp((args[0]-o.U0)*o.F/(o.W*o.Rg*o.Tref)))
	}, U)
}

// DXDU returns the differential stoichiometry dX/dU, the Jacobian of the
// potential-space formulation
func (o *Phase) DXDU(U sym.Expr) sym.Expr {
	return sym.NewFn("dXdU", func(args ...float64) float64 {
		g := o.F / (o.W * o.Rg * o.Tref)
		e := math.Exp((args[0] - o.U0) * g)
		return -o.Xj * g * e / ((1.0 + e) * (1.0 + e))
	}, U)
}

// Deff returns the effective diffusivity as a function of concentration and
// temperature. Note: concentration, not stoichiometry.
func (o *Phase) Deff(c, T sym.Expr) sym.Expr {
	return sym.NewFn("D", func(args ...float64) float64 {
		return o.DRef
	}, c, T)
}

// lognormal returns the lognormal density with median RTyp and spread SdR
func (o *Phase) lognormal(r float64) float64 {
	if r <= 0 {
		return 0
	}
	z := math.Log(r/o.RTyp) / o.SdR
	return math.Exp(-z*z/2.0) / (r * o.SdR * math.Sqrt(2.0*math.Pi))
}

// FaDist returns the area-weighted particle-size distribution density [1/m],
// normalised by the second moment of the lognormal size density
func (o *Phase) FaDist(R sym.Expr) sym.Expr {
	return sym.NewFn("f_a", func(args ...float64) float64 {
		r := args[0]
		m2 := o.RTyp * o.RTyp * math.Exp(2.0*o.SdR*o.SdR)
		return o.lognormal(r) * r * r / m2
	}, R)
}

// FvDist returns the volume-weighted particle-size distribution density
// [1/m], normalised by the third moment of the lognormal size density. Volume
// weighting, not particle count, is what conserves total lithium.
func (o *Phase) FvDist(R sym.Expr) sym.Expr {
	return sym.NewFn("f_v", func(args ...float64) float64 {
		r := args[0]
		m3 := o.RTyp * o.RTyp * o.RTyp * math.Exp(4.5*o.SdR*o.SdR)
		return o.lognormal(r) * r * r * r / m3
	}, R)
}
