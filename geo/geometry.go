// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the cube geometry used by the adaptive trees
package geo

import "math"

// BOXTOL is the tolerance for point-in-cube checks
const BOXTOL = 1e-14

// Dot computes the dot product between two vectors
func Dot(a, b []float64) (res float64) {
	for d := 0; d < len(a); d++ {
		res += a[d] * b[d]
	}
	return
}

// Sub computes the difference a - b
func Sub(a, b []float64) (res []float64) {
	res = make([]float64, len(a))
	for d := 0; d < len(a); d++ {
		res[d] = a[d] - b[d]
	}
	return
}

// Hypot computes the Euclidean norm of v
func Hypot(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Dist computes the Euclidean distance between a and b
func Dist(a, b []float64) (res float64) {
	for d := 0; d < len(a); d++ {
		res += (a[d] - b[d]) * (a[d] - b[d])
	}
	return math.Sqrt(res)
}

// Cube is an axis-aligned cube with side 2*Width
type Cube struct {
	Center []float64 // centre coordinates
	Width  float64   // half of the side length
}

// R returns the enclosing radius; i.e. the distance from the centre to a corner
func (o Cube) R() float64 {
	return o.Width * math.Sqrt(float64(len(o.Center)))
}

// BoundingBox computes the smallest cube centred at the centre of mass that
// encloses all points
func BoundingBox(ndim int, pts [][]float64) Cube {
	center := make([]float64, ndim)
	if len(pts) == 0 {
		return Cube{center, 0}
	}
	for _, p := range pts {
		for d := 0; d < ndim; d++ {
			center[d] += p[d]
		}
	}
	for d := 0; d < ndim; d++ {
		center[d] /= float64(len(pts))
	}
	width := 0.0
	for _, p := range pts {
		for d := 0; d < ndim; d++ {
			width = math.Max(width, math.Abs(p[d]-center[d]))
		}
	}
	return Cube{center, width}
}

// GetSubcell returns the idx-th of the 2^ndim uniform subdivisions of b.
// Bit d of idx (most significant first) selects the upper half along dimension d
func GetSubcell(b Cube, idx int) Cube {
	ndim := len(b.Center)
	newWidth := b.Width / 2.0
	newCenter := make([]float64, ndim)
	for d := 0; d < ndim; d++ {
		bit := (idx >> uint(ndim-1-d)) & 1
		newCenter[d] = b.Center[d] + (float64(bit)*2.0-1.0)*newWidth
	}
	return Cube{newCenter, newWidth}
}

// FindContainingSubcell returns the index of the subcell of b holding pt
func FindContainingSubcell(b Cube, pt []float64) (idx int) {
	ndim := len(b.Center)
	for d := 0; d < ndim; d++ {
		if pt[d] > b.Center[d] {
			idx++
		}
		if d < ndim-1 {
			idx = idx << 1
		}
	}
	return
}

// InBox tells whether pt lies within b, up to floating point tolerance
func InBox(b Cube, pt []float64) bool {
	for d := 0; d < len(b.Center); d++ {
		if math.Abs(pt[d]-b.Center[d]) >= (1.0+BOXTOL)*b.Width {
			return false
		}
	}
	return true
}
