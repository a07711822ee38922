// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmm

import (
	"github.com/tbenthompson/tectosaur-fmm/geo"
	"github.com/tbenthompson/tectosaur-fmm/kernel"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// interactPts accumulates the kernel application from one source group into
// one observation group. Offsets are point indices; the tensor stride is
// applied here. All kernel applications add into out
func (o *Plan) interactPts(out, in []float64, obsPts, obsNs [][]float64, obsStart int, srcPts, srcNs [][]float64, srcStart int) {
	if len(obsPts) == 0 || len(srcPts) == 0 {
		return
	}
	td := o.TensorDim()
	o.Cfg.Kernel.MfF(&kernel.Problem{
		ObsPts: obsPts,
		ObsNs:  obsNs,
		SrcPts: srcPts,
		SrcNs:  srcNs,
		Prms:   o.Cfg.Prms,
	}, out[td*obsStart:], in[td*srcStart:])
}

// p2mApply gathers leaf source points onto the leaves' outer check surfaces
func (o *Plan) p2mApply(mult, in []float64) {
	for i := 0; i < o.P2M.N(); i++ {
		srcN := &o.SrcTree.Nodes[o.P2M.SrcNIdx[i]]
		check := geo.InscribeSurf(srcN.Bounds, o.Cfg.OuterR, o.Surf)
		o.interactPts(mult, in,
			check, o.Surf, srcN.Idx*len(o.Surf),
			o.SrcTree.Pts[srcN.Start:srcN.End], o.SrcTree.Normals[srcN.Start:srcN.End], srcN.Start)
	}
}

// m2mApply translates child equivalent densities onto parent check surfaces
// for all parents at the given height
func (o *Plan) m2mApply(mult []float64, level int) {
	op := &o.M2M[level]
	for i := 0; i < op.N(); i++ {
		parentN := &o.SrcTree.Nodes[op.ObsNIdx[i]]
		childN := &o.SrcTree.Nodes[op.SrcNIdx[i]]
		check := geo.InscribeSurf(parentN.Bounds, o.Cfg.OuterR, o.Surf)
		equiv := geo.InscribeSurf(childN.Bounds, o.Cfg.InnerR, o.Surf)
		o.interactPts(mult, mult,
			check, o.Surf, parentN.Idx*len(o.Surf),
			equiv, o.Surf, childN.Idx*len(o.Surf))
	}
}

// p2lApply gathers distant small source groups directly onto observation
// nodes' inner check surfaces
func (o *Plan) p2lApply(loc, in []float64) {
	for i := 0; i < o.P2L.N(); i++ {
		obsN := &o.ObsTree.Nodes[o.P2L.ObsNIdx[i]]
		srcN := &o.SrcTree.Nodes[o.P2L.SrcNIdx[i]]
		check := geo.InscribeSurf(obsN.Bounds, o.Cfg.InnerR, o.Surf)
		o.interactPts(loc, in,
			check, o.Surf, obsN.Idx*len(o.Surf),
			o.SrcTree.Pts[srcN.Start:srcN.End], o.SrcTree.Normals[srcN.Start:srcN.End], srcN.Start)
	}
}

// m2lApply translates source equivalent densities onto observation nodes'
// inner check surfaces; the far-field workhorse
func (o *Plan) m2lApply(loc, mult []float64) {
	for i := 0; i < o.M2L.N(); i++ {
		obsN := &o.ObsTree.Nodes[o.M2L.ObsNIdx[i]]
		srcN := &o.SrcTree.Nodes[o.M2L.SrcNIdx[i]]
		check := geo.InscribeSurf(obsN.Bounds, o.Cfg.InnerR, o.Surf)
		equiv := geo.InscribeSurf(srcN.Bounds, o.Cfg.InnerR, o.Surf)
		o.interactPts(loc, mult,
			check, o.Surf, obsN.Idx*len(o.Surf),
			equiv, o.Surf, srcN.Idx*len(o.Surf))
	}
}

// l2lApply translates parent equivalent densities onto child check surfaces
// for all children at the given depth
func (o *Plan) l2lApply(loc []float64, level int) {
	op := &o.L2L[level]
	for i := 0; i < op.N(); i++ {
		childN := &o.ObsTree.Nodes[op.ObsNIdx[i]]
		parentN := &o.ObsTree.Nodes[op.SrcNIdx[i]]
		check := geo.InscribeSurf(childN.Bounds, o.Cfg.InnerR, o.Surf)
		equiv := geo.InscribeSurf(parentN.Bounds, o.Cfg.OuterR, o.Surf)
		o.interactPts(loc, loc,
			check, o.Surf, childN.Idx*len(o.Surf),
			equiv, o.Surf, parentN.Idx*len(o.Surf))
	}
}

// p2pApply computes the direct near field
func (o *Plan) p2pApply(out, in []float64) {
	for i := 0; i < o.P2P.N(); i++ {
		obsN := &o.ObsTree.Nodes[o.P2P.ObsNIdx[i]]
		srcN := &o.SrcTree.Nodes[o.P2P.SrcNIdx[i]]
		o.interactPts(out, in,
			o.ObsTree.Pts[obsN.Start:obsN.End], o.ObsTree.Normals[obsN.Start:obsN.End], obsN.Start,
			o.SrcTree.Pts[srcN.Start:srcN.End], o.SrcTree.Normals[srcN.Start:srcN.End], srcN.Start)
	}
}

// m2pApply evaluates source equivalent densities directly at small distant
// observation groups
func (o *Plan) m2pApply(out, mult []float64) {
	for i := 0; i < o.M2P.N(); i++ {
		obsN := &o.ObsTree.Nodes[o.M2P.ObsNIdx[i]]
		srcN := &o.SrcTree.Nodes[o.M2P.SrcNIdx[i]]
		equiv := geo.InscribeSurf(srcN.Bounds, o.Cfg.InnerR, o.Surf)
		o.interactPts(out, mult,
			o.ObsTree.Pts[obsN.Start:obsN.End], o.ObsTree.Normals[obsN.Start:obsN.End], obsN.Start,
			equiv, o.Surf, srcN.Idx*len(o.Surf))
	}
}

// l2pApply evaluates leaf local equivalent densities at the leaves' points
func (o *Plan) l2pApply(out, loc []float64) {
	for i := 0; i < o.L2P.N(); i++ {
		obsN := &o.ObsTree.Nodes[o.L2P.ObsNIdx[i]]
		equiv := geo.InscribeSurf(obsN.Bounds, o.Cfg.OuterR, o.Surf)
		o.interactPts(out, loc,
			o.ObsTree.Pts[obsN.Start:obsN.End], o.ObsTree.Normals[obsN.Start:obsN.End], obsN.Start,
			equiv, o.Surf, obsN.Idx*len(o.Surf))
	}
}

// uc2eApply replaces the check values of all source nodes at the given
// height with equivalent densities, using the dense operator of each node's
// depth
func (o *Plan) uc2eApply(mult []float64, level int) {
	nrows := o.NRows()
	tmp := make([]float64, nrows)
	for i := 0; i < o.UC2E[level].N(); i++ {
		nodeIdx := o.UC2E[level].SrcNIdx[i]
		op := o.UC2EOps[o.SrcTree.Nodes[nodeIdx].Depth]
		vals := mult[nodeIdx*nrows : (nodeIdx+1)*nrows]
		la.MatVecMul(tmp, 1, op, vals)
		la.VecCopy(vals, 1, tmp)
	}
}

// dc2eApply replaces the check values of all observation nodes at the given
// depth with equivalent densities
func (o *Plan) dc2eApply(loc []float64, level int) {
	nrows := o.NRows()
	tmp := make([]float64, nrows)
	for i := 0; i < o.DC2E[level].N(); i++ {
		nodeIdx := o.DC2E[level].ObsNIdx[i]
		op := o.DC2EOps[o.ObsTree.Nodes[nodeIdx].Depth]
		vals := loc[nodeIdx*nrows : (nodeIdx+1)*nrows]
		la.MatVecMul(tmp, 1, op, vals)
		la.VecCopy(vals, 1, tmp)
	}
}

// MatVec evaluates the potential at every observation point due to the
// density x on the source points. The phases are strictly ordered: upward
// pass, far-field translations, downward pass, near field.
//  Note: x follows the permuted source ordering and the result follows the
//  permuted observation ordering; use the trees' OrigIdxs to map back
func (o *Plan) MatVec(x []float64) ([]float64, error) {
	td := o.TensorDim()
	if len(x) != td*o.SrcTree.NPts() {
		return nil, chk.Err("usage: density vector has length %d, want %d", len(x), td*o.SrcTree.NPts())
	}
	y := make([]float64, td*o.ObsTree.NPts())
	ns := len(o.Surf)
	mult := make([]float64, td*ns*len(o.SrcTree.Nodes))
	loc := make([]float64, td*ns*len(o.ObsTree.Nodes))

	// upward pass over source heights: gather check values, then convert to
	// equivalent densities level by level
	for h := 0; h <= o.SrcTree.MaxHeight; h++ {
		if h == 0 {
			o.p2mApply(mult, x)
		} else {
			o.m2mApply(mult, h)
		}
		o.uc2eApply(mult, h)
	}

	// far-field translations
	o.m2lApply(loc, mult)
	o.p2lApply(loc, x)

	// downward pass over observation depths
	for d := 0; d <= o.ObsTree.MaxHeight; d++ {
		if d > 0 {
			o.l2lApply(loc, d)
		}
		o.dc2eApply(loc, d)
	}

	// near field and evaluation at the points
	o.l2pApply(y, loc)
	o.m2pApply(y, mult)
	o.p2pApply(y, x)
	return y, nil
}

// P2PEval applies only the direct near-field list; testing/debugging aid
func (o *Plan) P2PEval(x []float64) []float64 {
	y := make([]float64, o.TensorDim()*o.ObsTree.NPts())
	o.p2pApply(y, x)
	return y
}

// P2MEval runs the full upward pass and returns the equivalent densities on
// all source nodes; testing/debugging aid
func (o *Plan) P2MEval(x []float64) []float64 {
	mult := make([]float64, o.TensorDim()*len(o.Surf)*len(o.SrcTree.Nodes))
	for h := 0; h <= o.SrcTree.MaxHeight; h++ {
		if h == 0 {
			o.p2mApply(mult, x)
		} else {
			o.m2mApply(mult, h)
		}
		o.uc2eApply(mult, h)
	}
	return mult
}

// M2PEval evaluates given multipole densities at the observation points via
// the M2P list only; testing/debugging aid
func (o *Plan) M2PEval(mult []float64) []float64 {
	y := make([]float64, o.TensorDim()*o.ObsTree.NPts())
	o.m2pApply(y, mult)
	return y
}
