// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// ElectrodeOptions holds the model options of one electrode
type ElectrodeOptions struct {
	Particle         string `yaml:"particle"`         // particle submodel; e.g. "msmr"
	Material         string `yaml:"material"`         // material name in the .mat database
	Plating          string `yaml:"plating"`          // lithium plating submodel; e.g. "none"
	SizeDistribution bool   `yaml:"sizeDistribution"` // particle-size distribution on the secondary domain
	XAverage         bool   `yaml:"xAverage"`         // collapse the electrode-thickness axis
}

// Options holds the model options of the whole cell
type Options struct {
	Negative ElectrodeOptions `yaml:"negative"`
	Positive ElectrodeOptions `yaml:"positive"`
}

// ReadOptions reads model options from a YAML file
func ReadOptions(dir, fn string) (opts *Options, err error) {

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	opts = new(Options)
	err = yaml.Unmarshal(b, opts)
	if err != nil {
		return nil, chk.Err("cannot parse options file %q:\n%v", fn, err)
	}

	// defaults
	setdefaults(&opts.Negative)
	setdefaults(&opts.Positive)
	return
}

// setdefaults fills in missing electrode options
func setdefaults(e *ElectrodeOptions) {
	if e.Particle == "" {
		e.Particle = "msmr"
	}
	if e.Plating == "" {
		e.Plating = "none"
	}
}
