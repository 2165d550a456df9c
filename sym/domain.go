// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements the symbolic expression kernel and the domain algebra
// used to compose battery models. Expressions are immutable trees tagged with a
// domain signature; operators (broadcast, average, surface value, gradient,
// divergence, integral) only rearrange the signature and never evaluate
// anything numerically. Discretisation happens elsewhere.
package sym

import (
	"strings"

	"github.com/cpmech/gosl/io"
)

// domain hierarchy levels
const (
	Primary = iota
	Secondary
	Tertiary
	Quaternary
	nlevels
)

// levelnames holds the names of the domain hierarchy levels
var levelnames = []string{"primary", "secondary", "tertiary", "quaternary"}

// Dmap holds the domain signature of an expression: the list of domain names
// occupied at each hierarchy level. Primary is the innermost (finest) level;
// e.g. a potential resolved within particles, along the electrode and over the
// current collector has
//
//	Dmap{Primary: ["negative particle"], Secondary: ["negative electrode"], Tertiary: ["current collector"]}
type Dmap struct {
	Levels [nlevels][]string
}

// D builds a domain signature from domain names given innermost first
func D(doms ...string) (dm Dmap) {
	for i, d := range doms {
		if i >= nlevels {
			break
		}
		dm.Levels[i] = []string{d}
	}
	return
}

// Domain returns the primary-level domain
func (o Dmap) Domain() []string { return o.Levels[Primary] }

// Ndim returns the number of occupied levels
func (o Dmap) Ndim() (n int) {
	for _, l := range o.Levels {
		if len(l) > 0 {
			n++
		}
	}
	return
}

// Equal compares two signatures level by level
func (o Dmap) Equal(other Dmap) bool {
	for i := 0; i < nlevels; i++ {
		a, b := o.Levels[i], other.Levels[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// Has tells whether level i holds exactly the given domain
func (o Dmap) Has(i int, dom string) bool {
	return len(o.Levels[i]) == 1 && o.Levels[i][0] == dom
}

// insert places dom at level i, pushing this and all deeper levels down by one.
// Anything pushed beyond the quaternary level is silently discarded; malformed
// combinations surface as inconsistent results at discretisation time.
func (o Dmap) insert(i int, dom []string) (dm Dmap) {
	for k := 0; k < i; k++ {
		dm.Levels[k] = o.Levels[k]
	}
	dm.Levels[i] = dom
	for k := i; k < nlevels-1; k++ {
		dm.Levels[k+1] = o.Levels[k]
	}
	return
}

// drop removes level i, pulling all deeper levels up by one
func (o Dmap) drop(i int) (dm Dmap) {
	for k := 0; k < i; k++ {
		dm.Levels[k] = o.Levels[k]
	}
	for k := i; k < nlevels-1; k++ {
		dm.Levels[k] = o.Levels[k+1]
	}
	return
}

// electrodeLevel returns the index of the level holding an electrode domain,
// or -1 if the signature has none. This is the level removed by x-averaging.
func (o Dmap) electrodeLevel() int {
	for i, l := range o.Levels {
		if len(l) == 1 && strings.HasSuffix(l[0], "electrode") {
			return i
		}
	}
	return -1
}

// String returns a compact representation; e.g. "(negative particle / negative electrode / current collector)"
func (o Dmap) String() string {
	var parts []string
	for _, l := range o.Levels {
		if len(l) > 0 {
			parts = append(parts, strings.Join(l, ","))
		}
	}
	return io.Sf("(%s)", strings.Join(parts, " / "))
}
