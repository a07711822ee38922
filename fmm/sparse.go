// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmm

import (
	"github.com/tbenthompson/tectosaur-fmm/kernel"

	"github.com/cpmech/gosl/la"
)

// P2PNnz returns the number of entries an assembled near field holds
func (o *Plan) P2PNnz() (nnz int) {
	td := o.TensorDim()
	for i := 0; i < o.P2P.N(); i++ {
		nobs := o.P2P.ObsNEnd[i] - o.P2P.ObsNStart[i]
		nsrc := o.P2P.SrcNEnd[i] - o.P2P.SrcNStart[i]
		nnz += td * td * nobs * nsrc
	}
	return
}

// P2PSparse assembles the direct near-field interactions into a sparse
// triplet matrix of size (T*n_obs) x (T*n_src). Krylov callers can reuse the
// assembled near field across many matvecs instead of re-evaluating the
// kernel
func (o *Plan) P2PSparse() *la.Triplet {
	td := o.TensorDim()
	t := new(la.Triplet)
	t.Init(td*o.ObsTree.NPts(), td*o.SrcTree.NPts(), o.P2PNnz())
	for i := 0; i < o.P2P.N(); i++ {
		obsN := &o.ObsTree.Nodes[o.P2P.ObsNIdx[i]]
		srcN := &o.SrcTree.Nodes[o.P2P.SrcNIdx[i]]
		nobs := obsN.End - obsN.Start
		nsrc := srcN.End - srcN.Start
		if nobs == 0 || nsrc == 0 {
			continue
		}
		blk := make([]float64, td*td*nobs*nsrc)
		o.Cfg.Kernel.F(&kernel.Problem{
			ObsPts: o.ObsTree.Pts[obsN.Start:obsN.End],
			ObsNs:  o.ObsTree.Normals[obsN.Start:obsN.End],
			SrcPts: o.SrcTree.Pts[srcN.Start:srcN.End],
			SrcNs:  o.SrcTree.Normals[srcN.Start:srcN.End],
			Prms:   o.Cfg.Prms,
		}, blk)
		ncol := td * nsrc
		for r := 0; r < td*nobs; r++ {
			for c := 0; c < ncol; c++ {
				t.Put(td*obsN.Start+r, td*srcN.Start+c, blk[r*ncol+c])
			}
		}
	}
	return t
}
