// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read laplace3d deck")

	sim := ReadSim("data", "laplace3d.sim")
	if sim == nil {
		tst.Errorf("cannot read sim file\n")
		return
	}
	io.Pforan("sim = %+v\n", sim)
	chk.IntAssert(sim.Data.Ndim, 3)
	chk.StrAssert(sim.Kernel.Name, "laplaceS")
	chk.IntAssert(sim.FMM.Order, 6)
	chk.Scalar(tst, "eps", 1e-17, sim.FMM.Eps, 1e-8)

	cfg, err := sim.FMMConfig()
	if err != nil {
		tst.Errorf("FMMConfig failed: %v\n", err)
		return
	}
	chk.StrAssert(cfg.Kernel.Name, "laplaceS")
	chk.IntAssert(cfg.TensorDim(), 1)
	chk.Scalar(tst, "cfg.eps", 1e-17, cfg.Eps, 1e-8)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. read stokes2d deck with named parameters")

	sim := ReadSim("data", "stokes2d.sim")
	if sim == nil {
		tst.Errorf("cannot read sim file\n")
		return
	}
	cfg, err := sim.FMMConfig()
	if err != nil {
		tst.Errorf("FMMConfig failed: %v\n", err)
		return
	}
	chk.IntAssert(cfg.TensorDim(), 2)
	chk.Vector(tst, "prms", 1e-17, cfg.Prms, []float64{1.25})

	// missing parameter
	sim.Kernel.Prms = nil
	if _, err = sim.FMMConfig(); err == nil {
		tst.Errorf("FMMConfig must fail on missing viscosity\n")
		return
	}

	// unknown kernel
	sim.Kernel.Name = "nosuch"
	if _, err = sim.FMMConfig(); err == nil {
		tst.Errorf("FMMConfig must fail on unknown kernel\n")
		return
	}
}
