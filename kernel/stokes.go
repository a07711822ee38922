// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// stokesU2 is the 2D Stokes single layer (Stokeslet) velocity kernel:
//  U_ab = (1/(4 pi mu)) * (-delta_ab log(r) + d_a d_b / r^2)
func stokesU2(p *Problem, i, j int, blk []float64) {
	μ := p.Prms[0]
	obs, src := p.ObsPts[i], p.SrcPts[j]
	dx := obs[0] - src[0]
	dy := obs[1] - src[1]
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		for k := 0; k < 4; k++ {
			blk[k] = 0
		}
		return
	}
	c := 1.0 / (4.0 * math.Pi * μ)
	lg := -0.5 * math.Log(r2)
	blk[0] = c * (lg + dx*dx/r2)
	blk[1] = c * (dx * dy / r2)
	blk[2] = c * (dy * dx / r2)
	blk[3] = c * (lg + dy*dy/r2)
}

// stokesU3 is the 3D Stokes single layer (Stokeslet) velocity kernel:
//  U_ab = (1/(8 pi mu)) * (delta_ab / r + d_a d_b / r^3)
func stokesU3(p *Problem, i, j int, blk []float64) {
	μ := p.Prms[0]
	obs, src := p.ObsPts[i], p.SrcPts[j]
	d := []float64{obs[0] - src[0], obs[1] - src[1], obs[2] - src[2]}
	r2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
	if r2 == 0 {
		for k := 0; k < 9; k++ {
			blk[k] = 0
		}
		return
	}
	r := math.Sqrt(r2)
	c := 1.0 / (8.0 * math.Pi * μ)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			v := d[a] * d[b] / (r2 * r)
			if a == b {
				v += 1.0 / r
			}
			blk[a*3+b] = c * v
		}
	}
}

// stokesD2 is the 2D Stokes double layer (stresslet) velocity kernel:
//  D_ab = (1/pi) * d_a d_b (d.n_src) / r^4
func stokesD2(p *Problem, i, j int, blk []float64) {
	obs, src, ns := p.ObsPts[i], p.SrcPts[j], p.SrcNs[j]
	dx := obs[0] - src[0]
	dy := obs[1] - src[1]
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		for k := 0; k < 4; k++ {
			blk[k] = 0
		}
		return
	}
	c := (dx*ns[0] + dy*ns[1]) / (math.Pi * r2 * r2)
	blk[0] = c * dx * dx
	blk[1] = c * dx * dy
	blk[2] = c * dy * dx
	blk[3] = c * dy * dy
}

// stokesD3 is the 3D Stokes double layer (stresslet) velocity kernel:
//  D_ab = (3/(4 pi)) * d_a d_b (d.n_src) / r^5
func stokesD3(p *Problem, i, j int, blk []float64) {
	obs, src, ns := p.ObsPts[i], p.SrcPts[j], p.SrcNs[j]
	d := []float64{obs[0] - src[0], obs[1] - src[1], obs[2] - src[2]}
	r2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
	if r2 == 0 {
		for k := 0; k < 9; k++ {
			blk[k] = 0
		}
		return
	}
	r := math.Sqrt(r2)
	c := 3.0 * (d[0]*ns[0] + d[1]*ns[1] + d[2]*ns[2]) / (4.0 * math.Pi * r2 * r2 * r)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			blk[a*3+b] = c * d[a] * d[b]
		}
	}
}

func init() {
	register(&Kernel{Name: "stokesU", Ndim: 2, TensorDim: 2, PrmNames: []string{"mu"}, Blk: stokesU2})
	register(&Kernel{Name: "stokesU", Ndim: 3, TensorDim: 3, PrmNames: []string{"mu"}, Blk: stokesU3})
	register(&Kernel{Name: "stokesD", Ndim: 2, TensorDim: 2, Blk: stokesD2})
	register(&Kernel{Name: "stokesD", Ndim: 3, TensorDim: 3, Blk: stokesD3})
}
