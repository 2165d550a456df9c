// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gobam/gobam/inp"
	"github.com/gobam/gobam/mdl"
	"github.com/gobam/gobam/mdl/particle"
	"github.com/gobam/gobam/mdl/plating"
	"github.com/gobam/gobam/sym"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	matfn, _ := io.ArgToFilename(0, "inp/data/cell", ".mat", false)
	optfn, _ := io.ArgToFilename(1, "inp/data/cell", ".yml", false)
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGobam -- symbolic battery model assembly\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"materials database", "matfn", matfn,
			"model options", "optfn", optfn,
			"show messages", "verbose", verbose,
		))
	}

	// read input files
	mdb, err := inp.ReadMat(".", matfn)
	if err != nil {
		chk.Panic("cannot read materials database:\n%v", err)
	}
	opts, err := inp.ReadOptions(".", optfn)
	if err != nil {
		chk.Panic("cannot read model options:\n%v", err)
	}

	// assemble both electrodes
	for _, electrode := range []struct {
		dom   string
		eopts *inp.ElectrodeOptions
	}{
		{"negative", &opts.Negative},
		{"positive", &opts.Positive},
	} {
		dom, eopts := electrode.dom, electrode.eopts

		// submodels
		mat := mdb.Get(eopts.Material)
		if mat == nil {
			chk.Panic("material %q is not in the database", eopts.Material)
		}
		diffu, err := particle.New(eopts.Particle, dom, "primary", eopts, mat.Phase)
		if err != nil {
			chk.Panic("cannot allocate particle submodel:\n%v", err)
		}
		plate, err := plating.New(eopts.Plating, dom, eopts, mat.Phase)
		if err != nil {
			chk.Panic("cannot allocate plating submodel:\n%v", err)
		}

		// three-stage assembly
		asm := mdl.NewAssembler(diffu, plate)
		asm.Fundamentals()
		asm.Couple(externalStubs(dom, eopts))
		eqs := asm.Equations()

		// report
		if verbose {
			io.PfYel("\n%s electrode: %d variables\n", dom, len(asm.Variables()))
			for _, key := range asm.Variables().Keys() {
				io.Pf("  %s\n", key)
			}
			for u, rhs := range eqs.Rhs {
				io.Pf("\nd(%s)/dt = %v\n", u.Name, rhs)
			}
			for u, bcs := range eqs.BoundaryConditions {
				io.Pf("bcs(%s): left: %v (%v)  right: %v (%v)\n", u.Name,
					bcs.Left.Value, bcs.Left.Kind, bcs.Right.Value, bcs.Right.Kind)
			}
			for u, ic := range eqs.InitialConditions {
				io.Pf("ic(%s) = %v\n", u.Name, ic)
			}
		}
	}
}

// externalStubs builds the quantities that submodels outside this assembly
// would produce (temperature, interfacial current density, particle radius),
// in the representation the chosen branch consumes
func externalStubs(dom string, eopts *inp.ElectrodeOptions) mdl.Variables {
	Dom := io.Sf("%c%s", dom[0]-'a'+'A', dom[1:])
	edom := io.Sf("%s electrode", dom)
	sdom := io.Sf("%s particle size", dom)
	cc := "current collector"
	vars := mdl.Variables{}
	stub := func(key string, dm sym.Dmap) {
		vars.Set(key, sym.NewVar(key, dm))
	}
	switch {
	case !eopts.SizeDistribution && !eopts.XAverage:
		stub(io.Sf("%s electrode temperature [K]", Dom), sym.D(edom, cc))
		stub(io.Sf("%s electrode interfacial current density [A.m-2]", Dom), sym.D(edom, cc))
		vars.Set(io.Sf("%s particle radius", Dom), sym.BroadcastFull(1, sym.D(edom, cc)))
	case !eopts.SizeDistribution && eopts.XAverage:
		stub(io.Sf("X-averaged %s electrode temperature [K]", dom), sym.D(cc))
		stub(io.Sf("X-averaged %s electrode interfacial current density [A.m-2]", dom), sym.D(cc))
	case eopts.SizeDistribution && !eopts.XAverage:
		stub(io.Sf("%s electrode temperature [K]", Dom), sym.D(edom, cc))
		stub(io.Sf("%s electrode interfacial current density distribution [A.m-2]", Dom), sym.D(sdom, edom, cc))
	default:
		stub(io.Sf("X-averaged %s electrode temperature [K]", dom), sym.D(cc))
		stub(io.Sf("X-averaged %s electrode interfacial current density distribution [A.m-2]", dom), sym.D(sdom, cc))
	}
	return vars
}
