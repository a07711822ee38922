// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements pairwise interaction kernels and their
// dense / matrix-free evaluation
package kernel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Problem defines one n-body interaction problem: observation and source
// point clouds with unit normals, plus kernel parameters
type Problem struct {
	ObsPts [][]float64 // observation points
	ObsNs  [][]float64 // observation normals
	SrcPts [][]float64 // source points
	SrcNs  [][]float64 // source normals
	Prms   []float64   // kernel parameters
}

// BlkFunc computes the TensorDim x TensorDim interaction block between
// observation point i and source point j (row-major into blk)
type BlkFunc func(p *Problem, i, j int, blk []float64)

// Kernel implements one translation-invariant pairwise kernel
type Kernel struct {
	Name      string   // name; e.g. "laplaceS"
	Ndim      int      // spatial dimension: 2 or 3
	TensorDim int      // per-point block size; e.g. 1 for Laplace, Ndim for Stokes velocity
	PrmNames  []string // names of required parameters, in order
	Blk       BlkFunc  // pairwise block callback function
}

// factory holds all kernels available, keyed by name and dimension
var factory = make(map[string]*Kernel)

func kkey(name string, ndim int) string {
	return io.Sf("%s:%dd", name, ndim)
}

func register(k *Kernel) {
	factory[kkey(k.Name, k.Ndim)] = k
}

// Get returns an existent kernel
//  Note: returns nil if the kernel is unknown
func Get(name string, ndim int) *Kernel {
	k, ok := factory[kkey(name, ndim)]
	if !ok {
		return nil
	}
	return k
}

// CheckPrms validates the length of the parameters vector
func (o *Kernel) CheckPrms(prms []float64) error {
	if len(prms) != len(o.PrmNames) {
		return chk.Err("configuration: kernel %q (%dD) takes %d parameter(s) %v, got %d", o.Name, o.Ndim, len(o.PrmNames), o.PrmNames, len(prms))
	}
	return nil
}

// F performs the dense evaluation, writing the
// (TensorDim*n_obs) x (TensorDim*n_src) interaction matrix into out (row-major)
func (o *Kernel) F(p *Problem, out []float64) {
	td := o.TensorDim
	nobs, nsrc := len(p.ObsPts), len(p.SrcPts)
	ncol := td * nsrc
	blk := make([]float64, td*td)
	for i := 0; i < nobs; i++ {
		for j := 0; j < nsrc; j++ {
			o.Blk(p, i, j, blk)
			for a := 0; a < td; a++ {
				for b := 0; b < td; b++ {
					out[(i*td+a)*ncol+j*td+b] = blk[a*td+b]
				}
			}
		}
	}
}

// MfF performs the matrix-free application, accumulating K(obs,src)*in into
// out. Target values are added to, never assigned
func (o *Kernel) MfF(p *Problem, out, in []float64) {
	td := o.TensorDim
	nobs, nsrc := len(p.ObsPts), len(p.SrcPts)
	blk := make([]float64, td*td)
	for i := 0; i < nobs; i++ {
		for j := 0; j < nsrc; j++ {
			o.Blk(p, i, j, blk)
			for a := 0; a < td; a++ {
				for b := 0; b < td; b++ {
					out[i*td+a] += blk[a*td+b] * in[j*td+b]
				}
			}
		}
	}
}
