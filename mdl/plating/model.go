// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package plating implements submodels for lithium plating at the
// particle/electrolyte interface
package plating

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gobam/gobam/inp"
	"github.com/gobam/gobam/mdl"
)

// Model defines lithium plating submodels
type Model interface {
	mdl.Submodel
}

// New plating submodel
func New(name, domain string, opts *inp.ElectrodeOptions, par *inp.Phase) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'plating' database", name)
	}
	return allocator(domain, opts, par), nil
}

// allocators holds all available models
var allocators = map[string]func(domain string, opts *inp.ElectrodeOptions, par *inp.Phase) Model{}
