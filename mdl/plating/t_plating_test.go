// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plating

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gobam/gobam/inp"
	"github.com/gobam/gobam/mdl"
)

func Test_none01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("none01. no-plating stub, both electrodes")

	for _, dom := range []string{"negative", "positive"} {
		model, err := New("none", dom, &inp.ElectrodeOptions{}, nil)
		if err != nil {
			tst.Errorf("cannot allocate no-plating submodel: %v\n", err)
			return
		}

		asm := mdl.NewAssembler(model)
		asm.Fundamentals()
		asm.Couple(mdl.Variables{})
		eqs := asm.Equations()
		vars := asm.Variables()

		// all published quantities exist and are identically zero
		Dom := io.Sf("%c%s", dom[0]-'a'+'A', dom[1:])
		for _, key := range []string{
			io.Sf("%s lithium plating concentration [mol.m-3]", Dom),
			io.Sf("X-averaged %s lithium plating concentration [mol.m-3]", dom),
			io.Sf("%s lithium plating interfacial current density [A.m-2]", Dom),
			io.Sf("X-averaged %s lithium plating interfacial current density [A.m-2]", dom),
			io.Sf("Loss of lithium to %s lithium plating [mol]", dom),
		} {
			chk.Float64(tst, io.Sf("%s: %s", dom, key), 1e-15, vars.Get(key).Probe(nil), 0)
		}

		// the stub binds no equations
		if len(eqs.Rhs) != 0 || len(eqs.Algebraic) != 0 {
			tst.Errorf("%s: no-plating must bind no equations\n", dom)
			return
		}
		if len(eqs.BoundaryConditions) != 0 || len(eqs.InitialConditions) != 0 {
			tst.Errorf("%s: no-plating must bind no conditions\n", dom)
			return
		}
	}
}

func Test_none02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("none02. full-domain quantities carry the electrode signature")

	model, err := New("none", "negative", &inp.ElectrodeOptions{}, nil)
	if err != nil {
		tst.Errorf("cannot allocate no-plating submodel: %v\n", err)
		return
	}
	vars := model.GetFundamentalVariables()
	c := vars.Get("Negative lithium plating concentration [mol.m-3]")
	chk.Strings(tst, "primary", c.Domain(), []string{"negative electrode"})
	cxav := vars.Get("X-averaged negative lithium plating concentration [mol.m-3]")
	chk.Strings(tst, "x-averaged primary", cxav.Domain(), []string{"current collector"})
	loss := vars.Get("Loss of lithium to negative lithium plating [mol]")
	if len(loss.Domain()) != 0 {
		tst.Errorf("lithium loss must be a plain scalar\n")
		return
	}
}

func Test_db01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("db01. model database")

	if _, err := New("unknown", "negative", &inp.ElectrodeOptions{}, nil); err == nil {
		tst.Errorf("allocating an unknown model must fail\n")
		return
	}
}
