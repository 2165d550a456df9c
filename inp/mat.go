// Copyright 2026 The Gobam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "phase"
	Model string     `json:"model"` // name of particle submodel; e.g. "msmr"
	Extra string     `json:"extra"` // extra information about this material
	Prms  utl.Params `json:"prms"`  // prms holds all parameters for this material

	// derived
	Phase *Phase // pointer to the initialised phase parameter bundle
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Phases map[string]*Material // subset with materials of type "phase"
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot parse materials file %q:\n%v", fn, err)
	}

	// initialise phases
	mdb.Phases = make(map[string]*Material)
	for _, mat := range mdb.Materials {
		if mat.Type != "phase" {
			continue
		}
		mat.Phase = new(Phase)
		err = mat.Phase.Init(mat.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise phase parameters of material %q:\n%v", mat.Name, err)
		}
		mdb.Phases[mat.Name] = mat
	}
	return
}

// Get returns a material by name; nil if not found
func (o *MatDb) Get(name string) *Material {
	return o.Phases[name]
}
