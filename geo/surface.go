// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "math"

// SurroundingSurface returns a pattern of points uniformly distributed over
// the unit circle (ndim=2) or the unit sphere (ndim=3). The pattern is
// computed once per plan and rescaled into cubes with InscribeSurf.
//  2D: order points at uniform angles
//  3D: 2*order*order points along a Fibonacci spiral
func SurroundingSurface(ndim, order int) (surf [][]float64) {
	if ndim == 2 {
		surf = make([][]float64, order)
		for i := 0; i < order; i++ {
			θ := 2.0 * math.Pi * float64(i) / float64(order)
			surf[i] = []float64{math.Cos(θ), math.Sin(θ)}
		}
		return
	}
	n := 2 * order * order
	surf = make([][]float64, n)
	Φ := math.Pi * (3.0 - math.Sqrt(5.0)) // golden angle
	for i := 0; i < n; i++ {
		z := 1.0 - (2.0*float64(i)+1.0)/float64(n)
		ρ := math.Sqrt(1.0 - z*z)
		θ := Φ * float64(i)
		surf[i] = []float64{ρ * math.Cos(θ), ρ * math.Sin(θ), z}
	}
	return
}

// InscribeSurf rescales and translates the unit surface pattern into cube b
// at radius r*b.Width
func InscribeSurf(b Cube, r float64, surf [][]float64) (res [][]float64) {
	ndim := len(b.Center)
	res = make([][]float64, len(surf))
	for i, s := range surf {
		p := make([]float64, ndim)
		for d := 0; d < ndim; d++ {
			p[d] = b.Center[d] + r*b.Width*s[d]
		}
		res[i] = p
	}
	return
}
