// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl defines the contract shared by all physical submodels: the
// variable dictionary they extend, the equation dictionaries they populate and
// the staged assembler that drives their lifecycle in the right order.
package mdl

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/gobam/gobam/sym"
)

// Variables maps human-readable, unit-annotated variable names
// (e.g. "Negative particle potential [V]") to symbolic expressions. It is
// accumulated incrementally during one assembly pass and only ever extended.
type Variables map[string]sym.Expr

// Get returns the expression stored under key. A missing key is a hard
// assembly-time error: either the submodel producing it was registered after
// its consumer, or the lifecycle calls ran out of order.
func (o Variables) Get(key string) sym.Expr {
	e, ok := o[key]
	if !ok {
		chk.Panic("variable %q is not in the dictionary; the submodel producing it must run first (check registration order)", key)
	}
	return e
}

// GetVar returns the variable stored under key, which must be a declared
// unknown and not a derived quantity
func (o Variables) GetVar(key string) *sym.Variable {
	u, ok := o.Get(key).(*sym.Variable)
	if !ok {
		chk.Panic("variable %q is a derived quantity, not a declared unknown", key)
	}
	return u
}

// Set stores an expression under key. Names must be globally unique across
// submodels; overwriting an existing entry is a hard error because a silent
// overwrite would leave the model with two inconsistent definitions.
func (o Variables) Set(key string, e sym.Expr) {
	if _, ok := o[key]; ok {
		chk.Panic("variable %q is already in the dictionary; submodels must publish globally unique names", key)
	}
	o[key] = e
}

// Join copies all entries of other into this dictionary, with the same
// uniqueness guard as Set
func (o Variables) Join(other Variables) {
	for key, e := range other {
		o.Set(key, e)
	}
}

// Keys returns all variable names, sorted
func (o Variables) Keys() (keys []string) {
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}
