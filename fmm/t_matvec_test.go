// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmm

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tbenthompson/tectosaur-fmm/kernel"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// relErr computes the infinity-norm relative error between y and ref
func relErr(y, ref []float64) float64 {
	num, den := 0.0, 0.0
	for i := range ref {
		num = math.Max(num, math.Abs(y[i]-ref[i]))
		den = math.Max(den, math.Abs(ref[i]))
	}
	if den == 0 {
		return num
	}
	return num / den
}

// fmmVsDirect builds a colocated plan over one cloud, applies a random
// density and returns the relative error against the direct reference
func fmmVsDirect(tst *testing.T, kname string, ndim, n, nPerCell, order int, eps float64, prms []float64) float64 {
	pts, ns := randCloud(ndim, n, int64(1000+n*ndim+order))
	obsTree, srcTree := buildPair(tst, ndim, pts, ns, nPerCell)
	cfg, err := NewConfig(kname, ndim, 0.75, 2.5, order, prms)
	if err != nil {
		tst.Fatalf("NewConfig failed: %v\n", err)
	}
	cfg.Eps = eps
	p, err := NewPlan(obsTree, srcTree, cfg)
	if err != nil {
		tst.Fatalf("NewPlan failed: %v\n", err)
	}

	x := make([]float64, p.TensorDim()*n)
	for i := range x {
		x[i] = rand.Float64() - 0.5
	}
	y, err := p.MatVec(x)
	if err != nil {
		tst.Fatalf("MatVec failed: %v\n", err)
	}
	ref, err := kernel.MfDirectEval(kname, ndim, obsTree.Pts, obsTree.Normals, srcTree.Pts, srcTree.Normals, prms, x)
	if err != nil {
		tst.Fatalf("MfDirectEval failed: %v\n", err)
	}
	return relErr(y, ref)
}

func Test_matvec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matvec01. 3D Laplace accuracy vs direct")

	res := fmmVsDirect(tst, "laplaceS", 3, 600, 50, 6, 1e-8, nil)
	io.Pforan("relative error (laplaceS, order 6) = %v\n", res)
	if res > 1e-3 {
		tst.Errorf("relative error %v exceeds 1e-3\n", res)
		return
	}

	errD := fmmVsDirect(tst, "laplaceD", 3, 400, 40, 6, 1e-8, nil)
	io.Pforan("relative error (laplaceD, order 6) = %v\n", errD)
	if errD > 5e-3 {
		tst.Errorf("relative error %v exceeds 5e-3\n", errD)
		return
	}
}

func Test_matvec02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matvec02. 2D colocated trees")

	// the circle pattern has only order points, so 2D runs need higher order
	res := fmmVsDirect(tst, "laplaceS", 2, 500, 30, 20, 1e-10, nil)
	io.Pforan("relative error (laplaceS 2D, order 20) = %v\n", res)
	if res > 1e-3 {
		tst.Errorf("relative error %v exceeds 1e-3\n", res)
		return
	}

	errS := fmmVsDirect(tst, "stokesD", 2, 300, 30, 20, 1e-10, nil)
	io.Pforan("relative error (stokesD 2D, order 20) = %v\n", errS)
	if errS > 5e-3 {
		tst.Errorf("relative error %v exceeds 5e-3\n", errS)
		return
	}
}

func Test_matvec03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matvec03. 3D Stokeslet accuracy vs direct")

	res := fmmVsDirect(tst, "stokesU", 3, 300, 40, 6, 1e-8, []float64{1.3})
	io.Pforan("relative error (stokesU, order 6) = %v\n", res)
	if res > 5e-3 {
		tst.Errorf("relative error %v exceeds 5e-3\n", res)
		return
	}
}

func Test_matvec04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matvec04. error decreases with order")

	errs := make([]float64, 0, 3)
	for _, order := range []int{2, 4, 6} {
		e := fmmVsDirect(tst, "laplaceS", 3, 300, 30, order, 1e-10, nil)
		io.Pforan("order %d: relative error = %v\n", order, e)
		errs = append(errs, e)
	}
	if errs[2] >= errs[0] {
		tst.Errorf("error did not decrease from order 2 (%v) to order 6 (%v)\n", errs[0], errs[2])
		return
	}
	if errs[2] > 1e-3 {
		tst.Errorf("order 6 error %v exceeds 1e-3\n", errs[2])
		return
	}
}

func Test_matvec05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matvec05. linearity")

	pts, ns := randCloud(3, 200, 17)
	obsTree, srcTree := buildPair(tst, 3, pts, ns, 20)
	cfg, err := NewConfig("laplaceS", 3, 0.75, 2.5, 4, nil)
	if err != nil {
		tst.Errorf("NewConfig failed: %v\n", err)
		return
	}
	p, err := NewPlan(obsTree, srcTree, cfg)
	if err != nil {
		tst.Errorf("NewPlan failed: %v\n", err)
		return
	}

	x := make([]float64, 200)
	z := make([]float64, 200)
	for i := range x {
		x[i] = rand.Float64() - 0.5
		z[i] = rand.Float64() - 0.5
	}
	α, β := 2.5, -1.25

	// matvec(alpha x + beta z)
	xz := make([]float64, 200)
	for i := range xz {
		xz[i] = α*x[i] + β*z[i]
	}
	yxz, err := p.MatVec(xz)
	if err != nil {
		tst.Errorf("MatVec failed: %v\n", err)
		return
	}

	// alpha matvec(x) + beta matvec(z)
	yx, err := p.MatVec(x)
	if err != nil {
		tst.Errorf("MatVec failed: %v\n", err)
		return
	}
	yz, err := p.MatVec(z)
	if err != nil {
		tst.Errorf("MatVec failed: %v\n", err)
		return
	}
	ref := make([]float64, len(yx))
	for i := range ref {
		ref[i] = α*yx[i] + β*yz[i]
	}
	chk.Vector(tst, "linearity", 1e-10, yxz, ref)
}

func Test_matvec06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matvec06. permutation invariance")

	n := 250
	pts, ns := randCloud(3, n, 99)
	obsTree, srcTree := buildPair(tst, 3, pts, ns, 25)
	cfg, err := NewConfig("laplaceS", 3, 0.75, 2.5, 6, nil)
	if err != nil {
		tst.Errorf("NewConfig failed: %v\n", err)
		return
	}
	cfg.Eps = 1e-10
	p, err := NewPlan(obsTree, srcTree, cfg)
	if err != nil {
		tst.Errorf("NewPlan failed: %v\n", err)
		return
	}

	// density in the caller's original ordering, permuted into tree order
	xorig := make([]float64, n)
	for i := range xorig {
		xorig[i] = rand.Float64() - 0.5
	}
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = xorig[srcTree.OrigIdxs[i]]
	}
	y, err := p.MatVec(x)
	if err != nil {
		tst.Errorf("MatVec failed: %v\n", err)
		return
	}

	// undoing the permutation reproduces the direct evaluation on the
	// original ordering
	yorig := make([]float64, n)
	for i := 0; i < n; i++ {
		yorig[obsTree.OrigIdxs[i]] = y[i]
	}
	ref, err := kernel.MfDirectEval("laplaceS", 3, pts, ns, pts, ns, nil, xorig)
	if err != nil {
		tst.Errorf("MfDirectEval failed: %v\n", err)
		return
	}
	if e := relErr(yorig, ref); e > 1e-3 {
		tst.Errorf("relative error %v exceeds 1e-3\n", e)
		return
	}
}

func Test_sparse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse01. assembled near field equals matrix-free P2P")

	pts, ns := randCloud(3, 150, 3)
	obsTree, srcTree := buildPair(tst, 3, pts, ns, 15)
	cfg, err := NewConfig("laplaceS", 3, 0.75, 2.5, 4, nil)
	if err != nil {
		tst.Errorf("NewConfig failed: %v\n", err)
		return
	}
	p, err := NewPlan(obsTree, srcTree, cfg)
	if err != nil {
		tst.Errorf("NewPlan failed: %v\n", err)
		return
	}

	x := make([]float64, 150)
	for i := range x {
		x[i] = rand.Float64() - 0.5
	}
	ref := p.P2PEval(x)

	t := p.P2PSparse()
	io.Pforan("near-field nnz = %v\n", p.P2PNnz())
	y := make([]float64, 150)
	la.SpMatVecMulAdd(y, 1, t.ToMatrix(nil), x)
	chk.Vector(tst, "sparse vs matrix-free", 1e-13, y, ref)
}
