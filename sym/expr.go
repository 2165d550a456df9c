// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Env maps variable names to the representative values used when probing an
// expression. See Expr.Probe.
type Env map[string]float64

// Expr defines a node of a symbolic expression tree. Nodes are immutable and
// carry a domain signature. Probe collapses every spatial operator (broadcast,
// average, surface value, gradient, divergence) to the identity and evaluates
// the remaining scalar expression; it exists for tests and sanity checks only
// and is NOT a discretisation.
type Expr interface {
	Domain() []string       // primary-level domain
	Domains() Dmap          // full domain signature
	String() string         // compact human-readable form
	Equal(other Expr) bool  // structural equality
	Probe(env Env) float64  // scalar probe; see above
}

// Scalar ///////////////////////////////////////////////////////////////////////////////////////////

// Scalar is a constant with an empty domain signature
type Scalar struct {
	V float64
}

// Num returns a new scalar constant
func Num(v float64) *Scalar { return &Scalar{V: v} }

func (o *Scalar) Domain() []string { return nil }
func (o *Scalar) Domains() Dmap    { return Dmap{} }
func (o *Scalar) String() string   { return io.Sf("%g", o.V) }
func (o *Scalar) Probe(env Env) float64 {
	return o.V
}
func (o *Scalar) Equal(other Expr) bool {
	b, ok := other.(*Scalar)
	return ok && o.V == b.V
}

// Variable /////////////////////////////////////////////////////////////////////////////////////////

// Variable is a named symbolic unknown. Identity is structural: name plus
// domain signature. Variables are the keys of the rhs, algebraic, boundary and
// initial condition dictionaries.
type Variable struct {
	Name string
	dm   Dmap
}

// NewVar returns a new variable over the given domain signature
func NewVar(name string, dm Dmap) *Variable { return &Variable{Name: name, dm: dm} }

func (o *Variable) Domain() []string { return o.dm.Domain() }
func (o *Variable) Domains() Dmap    { return o.dm }
func (o *Variable) String() string   { return o.Name }
func (o *Variable) Probe(env Env) float64 {
	v, ok := env[o.Name]
	if !ok {
		chk.Panic("probe: no value for variable %q in environment", o.Name)
	}
	return v
}
func (o *Variable) Equal(other Expr) bool {
	b, ok := other.(*Variable)
	return ok && o.Name == b.Name && o.dm.Equal(b.dm)
}

// Coord ////////////////////////////////////////////////////////////////////////////////////////////

// Coord is a spatial coordinate symbol; e.g. the particle-size axis R
type Coord struct {
	Name string
	dm   Dmap
}

// NewCoord returns a new spatial coordinate over the given domain signature
func NewCoord(name string, dm Dmap) *Coord { return &Coord{Name: name, dm: dm} }

func (o *Coord) Domain() []string { return o.dm.Domain() }
func (o *Coord) Domains() Dmap    { return o.dm }
func (o *Coord) String() string   { return o.Name }
func (o *Coord) Probe(env Env) float64 {
	v, ok := env[o.Name]
	if !ok {
		chk.Panic("probe: no value for coordinate %q in environment", o.Name)
	}
	return v
}
func (o *Coord) Equal(other Expr) bool {
	b, ok := other.(*Coord)
	return ok && o.Name == b.Name && o.dm.Equal(b.dm)
}

// Fn ///////////////////////////////////////////////////////////////////////////////////////////////

// Fn is a named symbolic function application; e.g. the stoichiometry relation
// X(U) or the diffusivity D(c,T). The attached callback evaluates the function
// on the scalar probe and plays no role in the symbolic layer.
type Fn struct {
	Name string
	Args []Expr
	F    func(args ...float64) float64
	dm   Dmap
}

// NewFn returns a new function application. The domain signature is inherited
// from the first argument carrying one.
func NewFn(name string, f func(args ...float64) float64, args ...Expr) *Fn {
	var dm Dmap
	for _, a := range args {
		if a.Domains().Ndim() > 0 {
			dm = a.Domains()
			break
		}
	}
	return &Fn{Name: name, Args: args, F: f, dm: dm}
}

func (o *Fn) Domain() []string { return o.dm.Domain() }
func (o *Fn) Domains() Dmap    { return o.dm }
func (o *Fn) String() string {
	args := make([]string, len(o.Args))
	for i, a := range o.Args {
		args[i] = a.String()
	}
	return io.Sf("%s(%s)", o.Name, strings.Join(args, ","))
}
func (o *Fn) Probe(env Env) float64 {
	if o.F == nil {
		return math.NaN()
	}
	args := make([]float64, len(o.Args))
	for i, a := range o.Args {
		args[i] = a.Probe(env)
	}
	return o.F(args...)
}
func (o *Fn) Equal(other Expr) bool {
	b, ok := other.(*Fn)
	if !ok || o.Name != b.Name || len(o.Args) != len(b.Args) {
		return false
	}
	for i := range o.Args {
		if !o.Args[i].Equal(b.Args[i]) {
			return false
		}
	}
	return true
}

// Bin //////////////////////////////////////////////////////////////////////////////////////////////

// Bin is a binary arithmetic operation. The domain signature is inherited from
// the first operand carrying one; operand compatibility is not checked here
// (see the domain-algebra contract: malformed combinations surface downstream).
type Bin struct {
	Op   byte // one of '+' '-' '*' '/' '^'
	A, B Expr
	dm   Dmap
}

func newbin(op byte, a, b Expr) *Bin {
	dm := a.Domains()
	if dm.Ndim() == 0 {
		dm = b.Domains()
	}
	return &Bin{Op: op, A: a, B: b, dm: dm}
}

// Add returns a + b
func Add(a, b Expr) Expr { return newbin('+', a, b) }

// Sub returns a - b
func Sub(a, b Expr) Expr { return newbin('-', a, b) }

// Mul returns a * b
func Mul(a, b Expr) Expr { return newbin('*', a, b) }

// Div returns a / b
func Div(a, b Expr) Expr { return newbin('/', a, b) }

// Pow returns a raised to the constant power n
func Pow(a Expr, n float64) Expr { return newbin('^', a, Num(n)) }

// Neg returns -a
func Neg(a Expr) Expr { return newbin('*', Num(-1), a) }

// Prod folds a list of factors into nested multiplications
func Prod(factors ...Expr) Expr {
	res := factors[0]
	for _, f := range factors[1:] {
		res = Mul(res, f)
	}
	return res
}

func (o *Bin) Domain() []string { return o.dm.Domain() }
func (o *Bin) Domains() Dmap    { return o.dm }
func (o *Bin) String() string {
	return io.Sf("(%s %c %s)", o.A.String(), o.Op, o.B.String())
}
func (o *Bin) Probe(env Env) float64 {
	a, b := o.A.Probe(env), o.B.Probe(env)
	switch o.Op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	case '^':
		return math.Pow(a, b)
	}
	chk.Panic("probe: unknown operator %q", string(o.Op))
	return 0
}
func (o *Bin) Equal(other Expr) bool {
	b, ok := other.(*Bin)
	return ok && o.Op == b.Op && o.A.Equal(b.A) && o.B.Equal(b.B)
}
