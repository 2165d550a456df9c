// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/io"
)

// Broadcast ////////////////////////////////////////////////////////////////////////////////////////

// full marks a broadcast built from scratch rather than by extending a level
const full = -1

// Broadcast extends the domain signature of its child by one level. A
// broadcast value is constant along the new axis. Level tells which level was
// created (Primary, Secondary, Tertiary) or 'full' for a from-scratch
// broadcast of a scalar.
type Broadcast struct {
	Child Expr
	Level int
	Dom   string
	dm    Dmap
}

// BroadcastPrimary broadcasts e to a new primary domain, pushing the existing
// levels down by one. Broadcasting to a level e already occupies is a no-op.
func BroadcastPrimary(e Expr, dom string) Expr {
	if e.Domains().Has(Primary, dom) {
		return e
	}
	return &Broadcast{Child: e, Level: Primary, Dom: dom, dm: e.Domains().insert(Primary, []string{dom})}
}

// BroadcastSecondary broadcasts e to a new secondary domain
func BroadcastSecondary(e Expr, dom string) Expr {
	if e.Domains().Has(Secondary, dom) {
		return e
	}
	return &Broadcast{Child: e, Level: Secondary, Dom: dom, dm: e.Domains().insert(Secondary, []string{dom})}
}

// BroadcastTertiary broadcasts e to a new tertiary domain
func BroadcastTertiary(e Expr, dom string) Expr {
	if e.Domains().Has(Tertiary, dom) {
		return e
	}
	return &Broadcast{Child: e, Level: Tertiary, Dom: dom, dm: e.Domains().insert(Tertiary, []string{dom})}
}

// BroadcastFull broadcasts a constant onto a full domain signature
func BroadcastFull(v float64, dm Dmap) Expr {
	return &Broadcast{Child: Num(v), Level: full, dm: dm}
}

func (o *Broadcast) Domain() []string      { return o.dm.Domain() }
func (o *Broadcast) Domains() Dmap         { return o.dm }
func (o *Broadcast) Probe(env Env) float64 { return o.Child.Probe(env) }
func (o *Broadcast) String() string {
	if o.Level == full {
		return io.Sf("broadcast%v(%s)", o.dm, o.Child.String())
	}
	return io.Sf("broadcast{%s:%s}(%s)", levelnames[o.Level], o.Dom, o.Child.String())
}
func (o *Broadcast) Equal(other Expr) bool {
	b, ok := other.(*Broadcast)
	return ok && o.Level == b.Level && o.Dom == b.Dom && o.dm.Equal(b.dm) && o.Child.Equal(b.Child)
}

// Average //////////////////////////////////////////////////////////////////////////////////////////

// Average removes one level of the domain signature of its child by averaging
// over it: Kind 'x' averages over the electrode-thickness level, Kind 'r' over
// the primary (particle-radius) level
type Average struct {
	Kind  byte // 'x' or 'r'
	Child Expr
	dm    Dmap
}

// XAverage averages e over the electrode-thickness axis, wherever that level
// sits in the signature. Averaging an expression with no electrode level is
// left untouched (the inconsistency surfaces at discretisation time).
// Averaging a broadcast that created the electrode level undoes the broadcast.
func XAverage(e Expr) Expr {
	lev := e.Domains().electrodeLevel()
	if lev < 0 {
		return e
	}
	if b, ok := e.(*Broadcast); ok && b.Level == lev {
		return b.Child
	}
	return &Average{Kind: 'x', Child: e, dm: e.Domains().drop(lev)}
}

// RAverage averages e over the primary (particle-radius) level. Averaging a
// primary broadcast undoes the broadcast.
func RAverage(e Expr) Expr {
	if b, ok := e.(*Broadcast); ok && b.Level == Primary {
		return b.Child
	}
	return &Average{Kind: 'r', Child: e, dm: e.Domains().drop(Primary)}
}

func (o *Average) Domain() []string      { return o.dm.Domain() }
func (o *Average) Domains() Dmap         { return o.dm }
func (o *Average) Probe(env Env) float64 { return o.Child.Probe(env) }
func (o *Average) String() string        { return io.Sf("%c-average(%s)", o.Kind, o.Child.String()) }
func (o *Average) Equal(other Expr) bool {
	b, ok := other.(*Average)
	return ok && o.Kind == b.Kind && o.Child.Equal(b.Child)
}

// Surface //////////////////////////////////////////////////////////////////////////////////////////

// Surface extracts the value of its child at the particle surface, removing
// the primary level of the signature
type Surface struct {
	Child Expr
	dm    Dmap
}

// Surf returns the surface value of e. Surface extraction commutes with
// x-averaging; the constructor keeps the surface operator innermost so that
// surf(x-average(e)) and x-average(surf(e)) build identical trees. The surface
// value of a primary broadcast is the broadcast child itself.
func Surf(e Expr) Expr {
	if a, ok := e.(*Average); ok && a.Kind == 'x' {
		return XAverage(Surf(a.Child))
	}
	if b, ok := e.(*Broadcast); ok && b.Level == Primary {
		return b.Child
	}
	return &Surface{Child: e, dm: e.Domains().drop(Primary)}
}

func (o *Surface) Domain() []string      { return o.dm.Domain() }
func (o *Surface) Domains() Dmap         { return o.dm }
func (o *Surface) Probe(env Env) float64 { return o.Child.Probe(env) }
func (o *Surface) String() string        { return io.Sf("surf(%s)", o.Child.String()) }
func (o *Surface) Equal(other Expr) bool {
	b, ok := other.(*Surface)
	return ok && o.Child.Equal(b.Child)
}

// Gradient and Divergence //////////////////////////////////////////////////////////////////////////

// Gradient is the spatial gradient along the primary axis; domain-preserving
type Gradient struct {
	Child Expr
}

// Grad returns the gradient of e along its primary axis
func Grad(e Expr) Expr { return &Gradient{Child: e} }

func (o *Gradient) Domain() []string      { return o.Child.Domain() }
func (o *Gradient) Domains() Dmap         { return o.Child.Domains() }
func (o *Gradient) Probe(env Env) float64 { return o.Child.Probe(env) }
func (o *Gradient) String() string        { return io.Sf("grad(%s)", o.Child.String()) }
func (o *Gradient) Equal(other Expr) bool {
	b, ok := other.(*Gradient)
	return ok && o.Child.Equal(b.Child)
}

// Divergence is the spatial divergence along the primary axis; domain-preserving
type Divergence struct {
	Child Expr
}

// Diverg returns the divergence of e along its primary axis
func Diverg(e Expr) Expr { return &Divergence{Child: e} }

func (o *Divergence) Domain() []string      { return o.Child.Domain() }
func (o *Divergence) Domains() Dmap         { return o.Child.Domains() }
func (o *Divergence) Probe(env Env) float64 { return o.Child.Probe(env) }
func (o *Divergence) String() string        { return io.Sf("div(%s)", o.Child.String()) }
func (o *Divergence) Equal(other Expr) bool {
	b, ok := other.(*Divergence)
	return ok && o.Child.Equal(b.Child)
}

// Integral /////////////////////////////////////////////////////////////////////////////////////////

// Integral is the weighted integral of its child over one spatial axis,
//
//	∫ weight · child  d(axis)
//
// removing the level of the signature occupied by the axis domain
type Integral struct {
	Child  Expr
	Weight Expr
	Axis   *Coord
	dm     Dmap
}

// NewIntegral integrates e weighted by w over the given axis
func NewIntegral(e, w Expr, axis *Coord) *Integral {
	dm := e.Domains()
	if len(axis.Domain()) == 1 {
		for i := 0; i < nlevels; i++ {
			if dm.Has(i, axis.Domain()[0]) {
				dm = dm.drop(i)
				break
			}
		}
	}
	return &Integral{Child: e, Weight: w, Axis: axis, dm: dm}
}

func (o *Integral) Domain() []string { return o.dm.Domain() }
func (o *Integral) Domains() Dmap    { return o.dm }
func (o *Integral) Probe(env Env) float64 {
	return o.Weight.Probe(env) * o.Child.Probe(env)
}
func (o *Integral) String() string {
	return io.Sf("integral(%s * %s, d%s)", o.Weight.String(), o.Child.String(), o.Axis.Name)
}
func (o *Integral) Equal(other Expr) bool {
	b, ok := other.(*Integral)
	return ok && o.Axis.Equal(b.Axis) && o.Weight.Equal(b.Weight) && o.Child.Equal(b.Child)
}

// Extremum /////////////////////////////////////////////////////////////////////////////////////////

// Extremum is the minimum or maximum of its child over all of its domains;
// the result carries an empty signature
type Extremum struct {
	Kind  byte // 'm' (minimum) or 'M' (maximum)
	Child Expr
}

// MinOf returns the minimum of e over all of its domains
func MinOf(e Expr) Expr { return &Extremum{Kind: 'm', Child: e} }

// MaxOf returns the maximum of e over all of its domains
func MaxOf(e Expr) Expr { return &Extremum{Kind: 'M', Child: e} }

func (o *Extremum) Domain() []string      { return nil }
func (o *Extremum) Domains() Dmap         { return Dmap{} }
func (o *Extremum) Probe(env Env) float64 { return o.Child.Probe(env) }
func (o *Extremum) String() string {
	if o.Kind == 'm' {
		return io.Sf("min(%s)", o.Child.String())
	}
	return io.Sf("max(%s)", o.Child.String())
}
func (o *Extremum) Equal(other Expr) bool {
	b, ok := other.(*Extremum)
	return ok && o.Kind == b.Kind && o.Child.Equal(b.Child)
}
