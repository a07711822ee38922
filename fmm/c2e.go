// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmm

import (
	"math"

	"github.com/tbenthompson/tectosaur-fmm/geo"
	"github.com/tbenthompson/tectosaur-fmm/kernel"
	"github.com/tbenthompson/tectosaur-fmm/tree"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// C2ESolve builds the dense check-to-equivalent operator for one cube: the
// truncated pseudoinverse of the kernel matrix from the equivalent surface
// (radius equivR) to the check surface (radius checkR)
func C2ESolve(k *kernel.Kernel, surf [][]float64, bounds geo.Cube, checkR, equivR, eps float64, prms []float64) ([][]float64, error) {
	checkSurf := geo.InscribeSurf(bounds, checkR, surf)
	equivSurf := geo.InscribeSurf(bounds, equivR, surf)
	nrows := k.TensorDim * len(surf)

	// equivalent-to-check kernel matrix; the surface pattern doubles as the
	// unit normals of its own points
	e2c := make([]float64, nrows*nrows)
	k.F(&kernel.Problem{
		ObsPts: checkSurf,
		ObsNs:  surf,
		SrcPts: equivSurf,
		SrcNs:  surf,
		Prms:   prms,
	}, e2c)

	return pseudoInv(e2c, nrows, eps)
}

// pseudoInv computes the rank-revealing pseudoinverse of the n x n row-major
// matrix a, truncating singular values below eps times the largest one.
// An all-zero matrix (degenerate zero-width cube) yields the zero operator
func pseudoInv(a []float64, n int, eps float64) ([][]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(n, n, a), mat.SVDThin); !ok {
		return nil, chk.Err("numeric: SVD of the %dx%d equivalent-to-check matrix failed", n, n)
	}
	s := svd.Values(nil)
	if s[0] == 0 {
		return la.MatAlloc(n, n), nil
	}
	rank := 0
	for _, σ := range s {
		if σ > eps*s[0] {
			rank++
		}
	}
	if rank == 0 {
		return nil, chk.Err("numeric: equivalent-to-check matrix has no singular value above eps=%v", eps)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// pinv = V * diag(1/sigma) * U^T
	pinv := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for r := 0; r < rank; r++ {
				sum += v.At(i, r) * u.At(j, r) / s[r]
			}
			pinv[i][j] = sum
		}
	}
	return pinv, nil
}

// buildOps computes the per-level check-to-equivalent operators for the
// upward (check at OuterR, equivalent at InnerR) and downward (roles
// swapped) passes. The kernel is translation invariant, so one operator per
// level suffices; levels are independent and solved concurrently
func (o *Plan) buildOps() error {
	o.UC2EOps = make([][][]float64, o.SrcTree.MaxHeight+1)
	o.DC2EOps = make([][][]float64, o.ObsTree.MaxHeight+1)
	var eg errgroup.Group
	for i := range o.UC2EOps {
		i := i
		eg.Go(func() (err error) {
			bounds := o.levelCube(o.SrcTree, i)
			o.UC2EOps[i], err = C2ESolve(o.Cfg.Kernel, o.Surf, bounds, o.Cfg.OuterR, o.Cfg.InnerR, o.Cfg.Eps, o.Cfg.Prms)
			return
		})
	}
	for i := range o.DC2EOps {
		i := i
		eg.Go(func() (err error) {
			bounds := o.levelCube(o.ObsTree, i)
			o.DC2EOps[i], err = C2ESolve(o.Cfg.Kernel, o.Surf, bounds, o.Cfg.InnerR, o.Cfg.OuterR, o.Cfg.Eps, o.Cfg.Prms)
			return
		})
	}
	return eg.Wait()
}

// levelCube returns the origin-centred reference cube of a tree level
func (o *Plan) levelCube(t *tree.Tree, level int) geo.Cube {
	width := t.Root().Bounds.Width / math.Pow(2.0, float64(level))
	return geo.Cube{Center: make([]float64, t.Ndim), Width: width}
}
