// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tree implements adaptive quadtrees/octrees over point clouds
package tree

import (
	"math"

	"github.com/tbenthompson/tectosaur-fmm/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Node is one cell of an adaptive 2^d-tree. Nodes live in the arena of the
// owning tree and reference their children by index
type Node struct {
	Start    int      // first point (half-open range into the permuted arrays)
	End      int      // one past the last point
	Bounds   geo.Cube // geometric subcell; exactly GetSubcell of the parent bounds
	IsLeaf   bool     // no children
	Idx      int      // index of this node in the arena (DFS order)
	Depth    int      // 0 at the root
	Height   int      // 0 at leaves
	Children []int    // 2^ndim child indices; nil for leaves
}

// Tree holds an adaptive 2^d-tree over a point cloud. The tree owns a
// permuted copy of the points and normals; OrigIdxs maps the permuted
// ordering back to the caller's ordering
type Tree struct {
	Ndim      int         // spatial dimension: 2 or 3
	Pts       [][]float64 // permuted points
	Normals   [][]float64 // permuted normals
	OrigIdxs  []int       // OrigIdxs[i] is the original index of permuted point i
	Nodes     []Node      // arena; Nodes[0] is the root
	MaxHeight int         // height of the root
}

// NewTree builds an adaptive tree by recursive subdivision. A cell with more
// than nPerCell points is split into its 2^ndim geometric subcells; cells at
// zero width stop subdividing regardless of occupancy
func NewTree(ndim int, pts, normals [][]float64, nPerCell int) (*Tree, error) {

	// validate
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("configuration: ndim must be 2 or 3, got %d", ndim)
	}
	if len(pts) != len(normals) {
		return nil, chk.Err("configuration: %d points but %d normals", len(pts), len(normals))
	}
	if nPerCell < 1 {
		return nil, chk.Err("configuration: nPerCell must be positive, got %d", nPerCell)
	}
	for i, p := range pts {
		for d := 0; d < ndim; d++ {
			if math.IsNaN(p[d]) || math.IsInf(p[d], 0) {
				return nil, chk.Err("geometry: point %d has non-finite coordinate %v", i, p[d])
			}
		}
	}

	// the tree owns a permuted copy
	o := &Tree{Ndim: ndim}
	o.Pts = make([][]float64, len(pts))
	o.Normals = make([][]float64, len(pts))
	for i := range pts {
		o.Pts[i] = append([]float64{}, pts[i][:ndim]...)
		o.Normals[i] = append([]float64{}, normals[i][:ndim]...)
	}
	o.OrigIdxs = utl.IntRange(len(pts))

	// recursive construction and post-order height pass
	bounds := geo.BoundingBox(ndim, o.Pts)
	o.build(0, len(o.Pts), bounds, 0, nPerCell)
	o.setHeight(0)
	o.MaxHeight = o.Nodes[0].Height
	return o, nil
}

// Root returns the root node
func (o *Tree) Root() *Node {
	return &o.Nodes[0]
}

// NPts returns the number of points
func (o *Tree) NPts() int {
	return len(o.Pts)
}

// build appends the node covering [start,end) and recurses into its subcells.
// Child bounds are the exact geometric subcells of the parent bounds, never
// re-fitted to the child points
func (o *Tree) build(start, end int, bounds geo.Cube, depth, nPerCell int) int {
	idx := len(o.Nodes)
	o.Nodes = append(o.Nodes, Node{Start: start, End: end, Bounds: bounds, Idx: idx, Depth: depth})
	if end-start <= nPerCell || bounds.Width == 0 {
		o.Nodes[idx].IsLeaf = true
		return idx
	}
	nsub := 1 << uint(o.Ndim)
	children := make([]int, nsub)
	cur := start
	for ci := 0; ci < nsub; ci++ {
		split := o.partition(cur, end, bounds, ci)
		children[ci] = o.build(cur, split, geo.GetSubcell(bounds, ci), depth+1, nPerCell)
		cur = split
	}
	o.Nodes[idx].Children = children
	return idx
}

// partition moves the points of [start,end) belonging to subcell ci to the
// front of the range, permuting points, normals and original indices
// identically, and returns the split position
func (o *Tree) partition(start, end int, bounds geo.Cube, ci int) int {
	split := start
	for i := start; i < end; i++ {
		if geo.FindContainingSubcell(bounds, o.Pts[i]) == ci {
			o.Pts[i], o.Pts[split] = o.Pts[split], o.Pts[i]
			o.Normals[i], o.Normals[split] = o.Normals[split], o.Normals[i]
			o.OrigIdxs[i], o.OrigIdxs[split] = o.OrigIdxs[split], o.OrigIdxs[i]
			split++
		}
	}
	return split
}

// setHeight fills Height in a post-order pass
func (o *Tree) setHeight(idx int) int {
	n := &o.Nodes[idx]
	if n.IsLeaf {
		n.Height = 0
		return 0
	}
	h := 0
	for _, c := range n.Children {
		hc := o.setHeight(c)
		if hc > h {
			h = hc
		}
	}
	o.Nodes[idx].Height = 1 + h
	return 1 + h
}
