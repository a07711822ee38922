// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmm

import (
	"github.com/tbenthompson/tectosaur-fmm/geo"
	"github.com/tbenthompson/tectosaur-fmm/tree"

	"github.com/cpmech/gosl/chk"
)

// MatrixFreeOp is one interaction list: parallel arrays of directed node-node
// interactions, each identified by the nodes' point ranges and arena indices
type MatrixFreeOp struct {
	ObsNStart []int
	ObsNEnd   []int
	ObsNIdx   []int
	SrcNStart []int
	SrcNEnd   []int
	SrcNIdx   []int
}

// Insert appends one observation/source node pair
func (o *MatrixFreeOp) Insert(obsN, srcN *tree.Node) {
	o.ObsNStart = append(o.ObsNStart, obsN.Start)
	o.ObsNEnd = append(o.ObsNEnd, obsN.End)
	o.ObsNIdx = append(o.ObsNIdx, obsN.Idx)
	o.SrcNStart = append(o.SrcNStart, srcN.Start)
	o.SrcNEnd = append(o.SrcNEnd, srcN.End)
	o.SrcNIdx = append(o.SrcNIdx, srcN.Idx)
}

// N returns the number of entries
func (o *MatrixFreeOp) N() int {
	return len(o.ObsNIdx)
}

// Plan is a prepared fast matvec: two trees, the interaction lists produced
// by the dual-tree traversal and the collectors, and the per-level dense
// check-to-equivalent operators
type Plan struct {
	ObsTree *tree.Tree
	SrcTree *tree.Tree
	Cfg     *FMMConfig
	Surf    [][]float64 // surface pattern on the unit sphere/circle

	P2M MatrixFreeOp
	M2M []MatrixFreeOp // indexed by the parent's height
	P2L MatrixFreeOp
	M2L MatrixFreeOp
	L2L []MatrixFreeOp // indexed by the child's depth
	P2P MatrixFreeOp
	M2P MatrixFreeOp
	L2P MatrixFreeOp

	UC2E []MatrixFreeOp // upward check-to-equivalent diagonal, by height
	DC2E []MatrixFreeOp // downward check-to-equivalent diagonal, by depth

	UC2EOps [][][]float64 // upward per-level dense operators, by depth
	DC2EOps [][][]float64 // downward per-level dense operators, by depth
}

// NewPlan builds a plan for the pair of trees: per-level translation
// operators, up/down collection lists and the dual-tree interaction lists
func NewPlan(obsTree, srcTree *tree.Tree, cfg *FMMConfig) (*Plan, error) {

	// validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if obsTree.Ndim != srcTree.Ndim {
		return nil, chk.Err("configuration: observation tree is %dD but source tree is %dD", obsTree.Ndim, srcTree.Ndim)
	}
	if obsTree.Ndim != cfg.Kernel.Ndim {
		return nil, chk.Err("configuration: trees are %dD but kernel %q is %dD", obsTree.Ndim, cfg.Kernel.Name, cfg.Kernel.Ndim)
	}

	o := &Plan{
		ObsTree: obsTree,
		SrcTree: srcTree,
		Cfg:     cfg,
		Surf:    geo.SurroundingSurface(srcTree.Ndim, cfg.Order),
	}
	o.M2M = make([]MatrixFreeOp, srcTree.MaxHeight+1)
	o.UC2E = make([]MatrixFreeOp, srcTree.MaxHeight+1)
	o.L2L = make([]MatrixFreeOp, obsTree.MaxHeight+1)
	o.DC2E = make([]MatrixFreeOp, obsTree.MaxHeight+1)

	if err := o.buildOps(); err != nil {
		return nil, err
	}
	o.upCollect(o.SrcTree.Root())
	o.downCollect(o.ObsTree.Root())
	o.traverse(o.ObsTree.Root(), o.SrcTree.Root())
	return o, nil
}

// TensorDim returns the per-point block size of the kernel
func (o *Plan) TensorDim() int {
	return o.Cfg.TensorDim()
}

// NSurf returns the number of surface pattern points
func (o *Plan) NSurf() int {
	return len(o.Surf)
}

// NRows returns the size of one node's surface value block
func (o *Plan) NRows() int {
	return o.TensorDim() * len(o.Surf)
}
