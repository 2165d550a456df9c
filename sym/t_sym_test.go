// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_dmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dmap01. signatures and level shifts")

	u := NewVar("u", D("negative particle", "negative electrode", "current collector"))
	chk.Strings(tst, "domain", u.Domain(), []string{"negative particle"})
	chk.Strings(tst, "secondary", u.Domains().Levels[Secondary], []string{"negative electrode"})

	// surface extraction removes the primary level
	s := Surf(u)
	chk.Strings(tst, "surf: primary", s.Domain(), []string{"negative electrode"})
	chk.Strings(tst, "surf: secondary", s.Domains().Levels[Secondary], []string{"current collector"})

	// x-averaging removes the electrode level wherever it sits
	xav := XAverage(u)
	chk.Strings(tst, "xav: primary", xav.Domain(), []string{"negative particle"})
	chk.Strings(tst, "xav: secondary", xav.Domains().Levels[Secondary], []string{"current collector"})

	// r-averaging removes the primary level
	rav := RAverage(u)
	chk.Strings(tst, "rav: primary", rav.Domain(), []string{"negative electrode"})

	// primary broadcast pushes existing levels down
	t := NewVar("t", D("negative electrode", "current collector"))
	tb := BroadcastPrimary(t, "negative particle")
	chk.Strings(tst, "broadcast: primary", tb.Domain(), []string{"negative particle"})
	chk.Strings(tst, "broadcast: secondary", tb.Domains().Levels[Secondary], []string{"negative electrode"})
	chk.Strings(tst, "broadcast: tertiary", tb.Domains().Levels[Tertiary], []string{"current collector"})
}

func Test_dmap02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dmap02. broadcast idempotence and undo rules")

	u := NewVar("u", D("negative particle", "negative electrode", "current collector"))

	// broadcasting to a level already occupied is a no-op
	if b := BroadcastPrimary(u, "negative particle"); b != Expr(u) {
		tst.Errorf("primary broadcast to occupied level must return the receiver\n")
		return
	}
	if b := BroadcastSecondary(u, "negative electrode"); b != Expr(u) {
		tst.Errorf("secondary broadcast to occupied level must return the receiver\n")
		return
	}

	// averaging a broadcast that created the averaged level undoes it
	uxav := NewVar("uxav", D("negative particle", "current collector"))
	ub := BroadcastSecondary(uxav, "negative electrode")
	if XAverage(ub) != Expr(uxav) {
		tst.Errorf("x-average of a secondary electrode broadcast must return the child\n")
		return
	}
	te := NewVar("te", D("negative electrode", "current collector"))
	tb := BroadcastPrimary(te, "negative particle")
	if RAverage(tb) != Expr(te) {
		tst.Errorf("r-average of a primary broadcast must return the child\n")
		return
	}
	if Surf(tb) != Expr(te) {
		tst.Errorf("surface value of a primary broadcast must return the child\n")
		return
	}
}

func Test_dmap03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dmap03. surface extraction commutes with x-averaging")

	u := NewVar("u", D("negative particle", "negative electrode", "current collector"))
	a := Surf(XAverage(u))
	b := XAverage(Surf(u))
	if !a.Equal(b) {
		tst.Errorf("surf(x-average(u)) != x-average(surf(u)):\n  %v\n  %v\n", a, b)
		return
	}
	chk.Strings(tst, "commuted domain", a.Domain(), []string{"current collector"})
}

func Test_integral01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integral01. weighted integral removes the axis level")

	ud := NewVar("ud", D("negative particle", "negative particle size", "negative electrode", "current collector"))
	R := NewCoord("R_n", D("negative particle size", "negative electrode", "current collector"))
	w := NewFn("f_v", func(args ...float64) float64 { return 2.0 }, R)
	in := NewIntegral(ud, w, R)
	chk.Strings(tst, "primary", in.Domain(), []string{"negative particle"})
	chk.Strings(tst, "secondary", in.Domains().Levels[Secondary], []string{"negative electrode"})
	chk.Strings(tst, "tertiary", in.Domains().Levels[Tertiary], []string{"current collector"})
	if len(in.Domains().Levels[Quaternary]) != 0 {
		tst.Errorf("quaternary level must be empty after size integration\n")
		return
	}

	// the probe collapses the integral to weight * child
	res := in.Probe(Env{"ud": 3.0, "R_n": 1.0})
	chk.Float64(tst, "probe", 1e-15, res, 6.0)
}

func Test_probe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("probe01. scalar probe of composite expressions")

	u := NewVar("u", D("negative particle", "negative electrode", "current collector"))
	X := NewFn("X", func(args ...float64) float64 { return args[0] / 2.0 }, u)
	e := Mul(X, Sub(Num(1), X))
	res := e.Probe(Env{"u": 1.0})
	chk.Float64(tst, "X(1-X)", 1e-15, res, 0.25)

	// spatial operators are the identity on the probe
	res = Surf(XAverage(Grad(e))).Probe(Env{"u": 1.0})
	chk.Float64(tst, "surf(xav(grad))", 1e-15, res, 0.25)

	// arithmetic
	chk.Float64(tst, "pow", 1e-15, Pow(Num(3), 2).Probe(nil), 9.0)
	chk.Float64(tst, "neg", 1e-15, Neg(Num(2)).Probe(nil), -2.0)
	chk.Float64(tst, "div", 1e-15, Div(Num(1), Num(4)).Probe(nil), 0.25)
	chk.Float64(tst, "prod", 1e-15, Prod(Num(2), Num(3), Num(4)).Probe(nil), 24.0)
}

func Test_equal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equal01. structural equality")

	dm := D("negative particle", "negative electrode", "current collector")
	a := NewVar("u", dm)
	b := NewVar("u", dm)
	c := NewVar("u", D("negative particle", "current collector"))
	if !a.Equal(b) {
		tst.Errorf("variables with equal name and signature must be equal\n")
		return
	}
	if a.Equal(c) {
		tst.Errorf("variables with different signatures must not be equal\n")
		return
	}
	if !Mul(a, Num(2)).Equal(Mul(b, Num(2))) {
		tst.Errorf("equal trees must compare equal\n")
		return
	}
	if Mul(a, Num(2)).Equal(Mul(a, Num(3))) {
		tst.Errorf("different trees must not compare equal\n")
		return
	}
}
