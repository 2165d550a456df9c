// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package particle implements submodels for lithium transport within electrode
// particles
package particle

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gobam/gobam/inp"
	"github.com/gobam/gobam/mdl"
)

// Model defines particle submodels
type Model interface {
	mdl.Submodel
}

// New particle submodel
func New(name, domain, phase string, opts *inp.ElectrodeOptions, par *inp.Phase) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'particle' database", name)
	}
	return allocator(domain, phase, opts, par), nil
}

// allocators holds all available models
var allocators = map[string]func(domain, phase string, opts *inp.ElectrodeOptions, par *inp.Phase) Model{}
