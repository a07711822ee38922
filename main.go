// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"math"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/tbenthompson/tectosaur-fmm/fmm"
	"github.com/tbenthompson/tectosaur-fmm/inp"
	"github.com/tbenthompson/tectosaur-fmm/kernel"
	"github.com/tbenthompson/tectosaur-fmm/tree"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.Pf("\ntectosaur-fmm -- kernel independent fast multipole evaluation\n\n")

	// simulation filenamepath
	flag.Parse()
	fnamepath := "inp/data/laplace3d.sim"
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	}

	// other options
	npts := 2000
	checkdirect := true
	if len(flag.Args()) > 1 {
		npts = io.Atoi(flag.Arg(1))
	}
	if len(flag.Args()) > 2 {
		checkdirect = io.Atob(flag.Arg(2))
	}

	// read deck and resolve configuration
	sim := inp.ReadSim(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if sim == nil {
		chk.Panic("cannot read simulation file %q", fnamepath)
	}
	cfg, err := sim.FMMConfig()
	if err != nil {
		chk.Panic("cannot set up configuration:\n%v", err)
	}
	io.Pf("%s: kernel=%q ndim=%d order=%d npts=%d\n", sim.Data.Desc, cfg.Kernel.Name, sim.Data.Ndim, cfg.Order, npts)

	// random cloud in the unit cube with unit normals
	ndim := sim.Data.Ndim
	rand.Seed(0)
	pts := make([][]float64, npts)
	nrm := make([][]float64, npts)
	for i := 0; i < npts; i++ {
		pts[i] = make([]float64, ndim)
		nrm[i] = make([]float64, ndim)
		for d := 0; d < ndim; d++ {
			pts[i][d] = rand.Float64()
		}
		nrm[i][ndim-1] = 1.0
	}

	// trees
	t0 := time.Now()
	obsTree, err := tree.NewTree(ndim, pts, nrm, sim.FMM.NperCell)
	if err != nil {
		chk.Panic("cannot build observation tree:\n%v", err)
	}
	srcTree, err := tree.NewTree(ndim, pts, nrm, sim.FMM.NperCell)
	if err != nil {
		chk.Panic("cannot build source tree:\n%v", err)
	}
	io.Pf("trees built in %v (%d nodes, max height %d)\n", time.Since(t0), len(srcTree.Nodes), srcTree.MaxHeight)

	// plan
	t0 = time.Now()
	plan, err := fmm.NewPlan(obsTree, srcTree, cfg)
	if err != nil {
		chk.Panic("cannot build plan:\n%v", err)
	}
	io.Pf("plan built in %v\n", time.Since(t0))
	io.Pf("  P2P:%-8d M2P:%-8d P2L:%-8d M2L:%-8d\n", plan.P2P.N(), plan.M2P.N(), plan.P2L.N(), plan.M2L.N())

	// evaluate with a density of ones
	x := make([]float64, plan.TensorDim()*npts)
	for i := range x {
		x[i] = 1.0
	}
	t0 = time.Now()
	y, err := plan.MatVec(x)
	if err != nil {
		chk.Panic("matvec failed:\n%v", err)
	}
	io.Pf("fast matvec done in %v\n", time.Since(t0))

	// compare against the quadratic-cost reference
	if checkdirect {
		t0 = time.Now()
		ref, err := kernel.MfDirectEval(cfg.Kernel.Name, ndim, obsTree.Pts, obsTree.Normals, srcTree.Pts, srcTree.Normals, cfg.Prms, x)
		if err != nil {
			chk.Panic("direct evaluation failed:\n%v", err)
		}
		io.Pf("direct matvec done in %v\n", time.Since(t0))
		num, den := 0.0, 0.0
		for i := range ref {
			num = math.Max(num, math.Abs(y[i]-ref[i]))
			den = math.Max(den, math.Abs(ref[i]))
		}
		io.Pf("relative error (inf norm) = %v\n", num/den)
	}
}
