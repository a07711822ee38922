// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/tbenthompson/tectosaur-fmm/fmm"
	"github.com/tbenthompson/tectosaur-fmm/kernel"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc string `json:"desc"` // description of simulation
	Ndim int    `json:"ndim"` // spatial dimension: 2 or 3
}

// KernelData holds the kernel selection and its named parameters
type KernelData struct {
	Name string   `json:"name"` // kernel name; e.g. "laplaceS"
	Prms fun.Prms `json:"prms"` // named parameters; e.g. {"n":"mu", "v":1.0}
}

// FMMData holds the parameters of the fast evaluation
type FMMData struct {
	InnerR   float64 `json:"inner_r"`   // inner surface radius factor
	OuterR   float64 `json:"outer_r"`   // outer surface radius factor
	Order    int     `json:"order"`     // expansion order
	Eps      float64 `json:"eps"`       // pseudoinverse truncation tolerance
	NperCell int     `json:"npercell"`  // maximum number of points per leaf
}

// SetDefault sets default values
func (o *FMMData) SetDefault() {
	o.InnerR = 0.75
	o.OuterR = 2.5
	o.Order = 4
	o.Eps = fmm.EPSDEFAULT
	o.NperCell = 50
}

// Simulation holds all input data
type Simulation struct {
	Data   Data       `json:"data"`   // global information
	Kernel KernelData `json:"kernel"` // kernel selection
	FMM    FMMData    `json:"fmm"`    // fast evaluation parameters
}

// ReadSim reads all simulation data from a .sim JSON file
//  Note: returns nil on errors
func ReadSim(dir, fn string) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		io.PfRed("sim: cannot read simulation file %s/%s\n%v\n", dir, fn, err)
		return nil
	}

	// set default values
	o.FMM.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		io.PfRed("sim: cannot unmarshal simulation file %s/%s\n%v\n", dir, fn, err)
		return nil
	}
	return &o
}

// FMMConfig resolves the kernel from the registry, orders the named
// parameters into the kernel's params vector and validates the whole
// configuration
func (o *Simulation) FMMConfig() (*fmm.FMMConfig, error) {
	k := kernel.Get(o.Kernel.Name, o.Data.Ndim)
	if k == nil {
		return nil, chk.Err("configuration: cannot find kernel %q (%dD)", o.Kernel.Name, o.Data.Ndim)
	}

	// parameters, in the order declared by the kernel
	prms := make([]float64, len(k.PrmNames))
	for i, name := range k.PrmNames {
		found := false
		for _, p := range o.Kernel.Prms {
			if p.N == name {
				prms[i] = p.V
				found = true
			}
		}
		if !found {
			return nil, chk.Err("configuration: kernel %q needs parameter %q", o.Kernel.Name, name)
		}
	}

	cfg, err := fmm.NewConfig(o.Kernel.Name, o.Data.Ndim, o.FMM.InnerR, o.FMM.OuterR, o.FMM.Order, prms)
	if err != nil {
		return nil, err
	}
	if o.FMM.Eps > 0 {
		cfg.Eps = o.FMM.Eps
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
