// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmm

import "github.com/tbenthompson/tectosaur-fmm/tree"

// upCollect gathers the upward-pass lists in post-order over the source
// tree: every node converts its check values (UC2E, keyed by height so all
// children are complete first), leaves gather from their points (P2M) and
// interior nodes gather from their children (M2M, keyed by the parent's
// height)
func (o *Plan) upCollect(srcN *tree.Node) {
	o.UC2E[srcN.Height].Insert(srcN, srcN)
	if srcN.IsLeaf {
		o.P2M.Insert(srcN, srcN)
		return
	}
	for _, c := range srcN.Children {
		childN := &o.SrcTree.Nodes[c]
		o.upCollect(childN)
		o.M2M[srcN.Height].Insert(srcN, childN)
	}
}

// downCollect gathers the downward-pass lists in pre-order over the
// observation tree: every node converts its check values (DC2E, keyed by
// depth so parents are complete first), leaves scatter to their points
// (L2P) and children receive from their parents (L2L, keyed by the child's
// depth)
func (o *Plan) downCollect(obsN *tree.Node) {
	o.DC2E[obsN.Depth].Insert(obsN, obsN)
	if obsN.IsLeaf {
		o.L2P.Insert(obsN, obsN)
		return
	}
	for _, c := range obsN.Children {
		childN := &o.ObsTree.Nodes[c]
		o.L2L[childN.Depth].Insert(childN, obsN)
		o.downCollect(childN)
	}
}
