// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// one is the constant kernel: every pair interacts with strength 1.
// Useful for testing that each interaction is counted exactly once
func oneBlk(p *Problem, i, j int, blk []float64) {
	blk[0] = 1.0
}

// laplaceS2 is the 2D Laplace single layer potential: log(r)/(2 pi)
func laplaceS2(p *Problem, i, j int, blk []float64) {
	r := dist2(p.ObsPts[i], p.SrcPts[j])
	if r == 0 {
		blk[0] = 0
		return
	}
	blk[0] = math.Log(r) / (2.0 * math.Pi)
}

// laplaceS3 is the 3D Laplace single layer potential: 1/(4 pi r)
func laplaceS3(p *Problem, i, j int, blk []float64) {
	r := dist3(p.ObsPts[i], p.SrcPts[j])
	if r == 0 {
		blk[0] = 0
		return
	}
	blk[0] = 1.0 / (4.0 * math.Pi * r)
}

// laplaceD2 is the 2D Laplace double layer potential: (d.n_src)/(2 pi r^2)
func laplaceD2(p *Problem, i, j int, blk []float64) {
	obs, src, ns := p.ObsPts[i], p.SrcPts[j], p.SrcNs[j]
	dx := obs[0] - src[0]
	dy := obs[1] - src[1]
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		blk[0] = 0
		return
	}
	blk[0] = (dx*ns[0] + dy*ns[1]) / (2.0 * math.Pi * r2)
}

// laplaceD3 is the 3D Laplace double layer potential: (d.n_src)/(4 pi r^3)
func laplaceD3(p *Problem, i, j int, blk []float64) {
	obs, src, ns := p.ObsPts[i], p.SrcPts[j], p.SrcNs[j]
	dx := obs[0] - src[0]
	dy := obs[1] - src[1]
	dz := obs[2] - src[2]
	r2 := dx*dx + dy*dy + dz*dz
	if r2 == 0 {
		blk[0] = 0
		return
	}
	r := math.Sqrt(r2)
	blk[0] = (dx*ns[0] + dy*ns[1] + dz*ns[2]) / (4.0 * math.Pi * r2 * r)
}

func dist2(a, b []float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return math.Sqrt(dx*dx + dy*dy)
}

func dist3(a, b []float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func init() {
	register(&Kernel{Name: "one", Ndim: 2, TensorDim: 1, Blk: oneBlk})
	register(&Kernel{Name: "one", Ndim: 3, TensorDim: 1, Blk: oneBlk})
	register(&Kernel{Name: "laplaceS", Ndim: 2, TensorDim: 1, Blk: laplaceS2})
	register(&Kernel{Name: "laplaceS", Ndim: 3, TensorDim: 1, Blk: laplaceS3})
	register(&Kernel{Name: "laplaceD", Ndim: 2, TensorDim: 1, Blk: laplaceD2})
	register(&Kernel{Name: "laplaceD", Ndim: 3, TensorDim: 1, Blk: laplaceD3})
}
