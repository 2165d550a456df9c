// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gobam/gobam/sym"
)

// expectPanic runs f and fails the test if it does not panic
func expectPanic(tst *testing.T, msg string, f func()) {
	defer func() {
		if recover() == nil {
			tst.Errorf("%s: must panic\n", msg)
		}
	}()
	f()
}

func Test_vars01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vars01. dictionary guards")

	vars := Variables{}
	u := sym.NewVar("Negative particle potential [V]", sym.D("negative particle", "negative electrode", "current collector"))
	vars.Set("Negative particle potential [V]", u)

	// reads of existing keys succeed
	if vars.Get("Negative particle potential [V]") != sym.Expr(u) {
		tst.Errorf("Get must return the stored expression\n")
		return
	}
	if vars.GetVar("Negative particle potential [V]") != u {
		tst.Errorf("GetVar must return the stored variable\n")
		return
	}

	// a missing key is a hard assembly-time error
	expectPanic(tst, "missing key", func() {
		vars.Get("Positive particle potential [V]")
	})

	// silent overwrites are forbidden
	expectPanic(tst, "overwrite", func() {
		vars.Set("Negative particle potential [V]", sym.Num(0))
	})

	// derived quantities are not unknowns
	vars.Set("derived", sym.Mul(u, sym.Num(2)))
	expectPanic(tst, "derived as unknown", func() {
		vars.GetVar("derived")
	})
}

func Test_bcs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs01. boundary condition kinds")

	chk.String(tst, Dirichlet.String(), "Dirichlet")
	chk.String(tst, Neumann.String(), "Neumann")
	chk.String(tst, BcKind(99).String(), "unknown")
}

// flat is a minimal submodel for assembler tests: one unknown with a trivial
// decay equation
type flat struct {
	Base
}

func newflat() *flat {
	return &flat{Base: NewBase("negative", "primary", nil, nil)}
}

func (o *flat) GetFundamentalVariables() Variables {
	u := sym.NewVar("Negative test quantity", sym.D("negative electrode", "current collector"))
	return Variables{"Negative test quantity": u}
}

func (o *flat) GetCoupledVariables(vars Variables) Variables {
	u := vars.Get("Negative test quantity")
	vars.Set("Negative test quantity doubled", sym.Mul(sym.Num(2), u))
	return vars
}

func (o *flat) SetRhs(vars Variables) {
	u := vars.GetVar("Negative test quantity")
	o.Eqs.Rhs[u] = sym.Neg(u)
}

func (o *flat) SetBoundaryConditions(vars Variables) {
	u := vars.GetVar("Negative test quantity")
	o.Eqs.BoundaryConditions[u] = &BcPair{
		Left:  Bc{Value: sym.Num(0), Kind: Neumann},
		Right: Bc{Value: sym.Num(0), Kind: Neumann},
	}
}

func (o *flat) SetInitialConditions(vars Variables) {
	u := vars.GetVar("Negative test quantity")
	o.Eqs.InitialConditions[u] = sym.Num(1)
}

func Test_asm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm01. staged assembly")

	asm := NewAssembler(newflat())
	asm.Fundamentals()
	asm.Couple(Variables{})
	eqs := asm.Equations()
	if len(eqs.Rhs) != 1 {
		tst.Errorf("rhs must have exactly one entry\n")
		return
	}
	if len(asm.Variables()) != 2 {
		tst.Errorf("dictionary must hold the unknown and the derived quantity\n")
		return
	}
}

func Test_asm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm02. stage order enforcement")

	expectPanic(tst, "coupling before fundamentals", func() {
		NewAssembler(newflat()).Couple(Variables{})
	})
	expectPanic(tst, "equations before coupling", func() {
		asm := NewAssembler(newflat())
		asm.Fundamentals()
		asm.Equations()
	})
	expectPanic(tst, "fundamentals twice", func() {
		asm := NewAssembler(newflat())
		asm.Fundamentals()
		asm.Fundamentals()
	})

	// two submodels binding the same unknown is a merge error
	expectPanic(tst, "duplicate unknown", func() {
		asm := NewAssembler(newflat(), newflat())
		asm.Fundamentals()
	})
}
