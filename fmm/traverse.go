// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmm

import (
	"github.com/tbenthompson/tectosaur-fmm/geo"
	"github.com/tbenthompson/tectosaur-fmm/tree"
)

// MACSAFETY shrinks the geometric acceptance boundary to guard against
// round-off at the exact non-intersection limit of the check surfaces
const MACSAFETY = 0.98

// traverse walks the two trees simultaneously, classifying every visited
// node pair into one of the interaction lists. Well-separated pairs go to
// the approximate operators; touching leaf pairs go to the direct near
// field; anything else splits the larger side and recurses
func (o *Plan) traverse(obsN, srcN *tree.Node) {
	rSrc := srcN.Bounds.R()
	rObs := obsN.Bounds.R()
	sep := geo.Dist(obsN.Bounds.Center, srcN.Bounds.Center)

	// if outer_r*r_src + inner_r*r_obs is less than the separation, the check
	// surfaces of the two cells do not intersect and the approximation is safe
	if o.Cfg.OuterR*rSrc+o.Cfg.InnerR*rObs < MACSAFETY*sep {

		// with fewer points than surface pattern points on either side, the
		// direct operators are cheaper than materialising an expansion
		smallSrc := srcN.End-srcN.Start < len(o.Surf)
		smallObs := obsN.End-obsN.Start < len(o.Surf)
		switch {
		case smallSrc && smallObs:
			o.P2P.Insert(obsN, srcN)
		case smallObs:
			o.M2P.Insert(obsN, srcN)
		case smallSrc:
			o.P2L.Insert(obsN, srcN)
		default:
			o.M2L.Insert(obsN, srcN)
		}
		return
	}

	if srcN.IsLeaf && obsN.IsLeaf {
		o.P2P.Insert(obsN, srcN)
		return
	}

	splitSrc := (rObs < rSrc && !srcN.IsLeaf) || obsN.IsLeaf
	if splitSrc {
		for _, c := range srcN.Children {
			o.traverse(obsN, &o.SrcTree.Nodes[c])
		}
	} else {
		for _, c := range obsN.Children {
			o.traverse(&o.ObsTree.Nodes[c], srcN)
		}
	}
}
