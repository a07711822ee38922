// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import "math"

// PointSource computes the potential field of a single point source with
// the free-space Laplace Green's function
//
//	2D:  q * log(r) / (2 pi)
//	3D:  q / (4 pi r)
type PointSource struct {
	X []float64 // source location
	Q float64   // source strength
}

// Pot returns the potential at x
func (o PointSource) Pot(x []float64) float64 {
	r := 0.0
	for d := 0; d < len(o.X); d++ {
		r += (x[d] - o.X[d]) * (x[d] - o.X[d])
	}
	r = math.Sqrt(r)
	if len(o.X) == 2 {
		return o.Q * math.Log(r) / (2.0 * math.Pi)
	}
	return o.Q / (4.0 * math.Pi * r)
}

// SumPot returns the superposed potential of many point sources at x
func SumPot(sources []PointSource, x []float64) (res float64) {
	for _, s := range sources {
		res += s.Pot(x)
	}
	return
}
