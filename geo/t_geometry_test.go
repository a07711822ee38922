// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_geom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom01. vector primitives")

	a := []float64{1, 2, 2}
	b := []float64{1, 0, -2}
	chk.Scalar(tst, "a.b", 1e-17, Dot(a, b), -3)
	chk.Vector(tst, "a-b", 1e-17, Sub(a, b), []float64{0, 2, 4})
	chk.Scalar(tst, "|a|", 1e-15, Hypot(a), 3)
	chk.Scalar(tst, "dist", 1e-15, Dist(a, b), math.Sqrt(0+4+16))
}

func Test_geom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom02. bounding box")

	pts := [][]float64{
		{0, 0},
		{2, 0},
		{0, 2},
		{2, 2},
	}
	box := BoundingBox(2, pts)
	chk.Vector(tst, "center", 1e-15, box.Center, []float64{1, 1})
	chk.Scalar(tst, "width", 1e-15, box.Width, 1)
	chk.Scalar(tst, "R", 1e-15, box.R(), math.Sqrt2)
	for _, p := range pts {
		if !InBox(box, p) {
			tst.Errorf("point %v outside bounding box\n", p)
			return
		}
	}

	// degenerate: all points coincide
	box = BoundingBox(2, [][]float64{{1, 1}, {1, 1}})
	chk.Scalar(tst, "width (coincident)", 1e-17, box.Width, 0)

	// empty cloud
	box = BoundingBox(3, nil)
	chk.Scalar(tst, "width (empty)", 1e-17, box.Width, 0)
	chk.Vector(tst, "center (empty)", 1e-17, box.Center, []float64{0, 0, 0})
}

func Test_geom03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom03. subcell indexing")

	for _, ndim := range []int{2, 3} {
		box := Cube{make([]float64, ndim), 1.0}
		rand.Seed(int64(ndim) + 123)
		nsub := 1 << uint(ndim)
		for i := 0; i < 100; i++ {
			p := make([]float64, ndim)
			for d := 0; d < ndim; d++ {
				p[d] = -1.0 + 2.0*rand.Float64()
			}
			ci := FindContainingSubcell(box, p)
			if ci < 0 || ci >= nsub {
				tst.Errorf("child index %d out of range\n", ci)
				return
			}
			sub := GetSubcell(box, ci)
			chk.Scalar(tst, io.Sf("sub.width (ndim=%d)", ndim), 1e-15, sub.Width, 0.5)
			if !InBox(sub, p) {
				tst.Errorf("point %v not in its subcell %d (%v)\n", p, ci, sub.Center)
				return
			}
		}

		// subcells partition the parent: distinct centres
		for i := 0; i < nsub; i++ {
			for j := i + 1; j < nsub; j++ {
				si, sj := GetSubcell(box, i), GetSubcell(box, j)
				if Dist(si.Center, sj.Center) < 1e-15 {
					tst.Errorf("subcells %d and %d coincide\n", i, j)
					return
				}
			}
		}
	}
}

func Test_surf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf01. surrounding surface")

	// 2D: unit circle
	s2 := SurroundingSurface(2, 8)
	chk.IntAssert(len(s2), 8)
	for _, p := range s2 {
		chk.Scalar(tst, "|p| (2D)", 1e-15, Hypot(p), 1)
	}

	// 3D: unit sphere
	s3 := SurroundingSurface(3, 4)
	chk.IntAssert(len(s3), 32)
	sum := make([]float64, 3)
	for _, p := range s3 {
		chk.Scalar(tst, "|p| (3D)", 1e-14, Hypot(p), 1)
		for d := 0; d < 3; d++ {
			sum[d] += p[d]
		}
	}

	// uniformity: centroid close to the origin
	for d := 0; d < 3; d++ {
		chk.Scalar(tst, "centroid", 0.15, sum[d]/float64(len(s3)), 0)
	}
}

func Test_surf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf02. inscribed surface")

	box := Cube{[]float64{1, 2, 3}, 0.5}
	surf := SurroundingSurface(3, 3)
	r := 2.5
	ins := InscribeSurf(box, r, surf)
	chk.IntAssert(len(ins), len(surf))
	for _, p := range ins {
		chk.Scalar(tst, "radius", 1e-14, Dist(p, box.Center), r*box.Width)
	}
}
