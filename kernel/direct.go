// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/cpmech/gosl/chk"

// DirectEval computes the dense interaction matrix between two point clouds.
// The result has TensorDim*n_obs rows and TensorDim*n_src columns (row-major).
// This is the quadratic-cost reference used to validate fast evaluations
func DirectEval(name string, ndim int, obsPts, obsNs, srcPts, srcNs [][]float64, prms []float64) ([]float64, error) {
	k := Get(name, ndim)
	if k == nil {
		return nil, chk.Err("configuration: cannot find kernel %q (%dD)", name, ndim)
	}
	if err := k.CheckPrms(prms); err != nil {
		return nil, err
	}
	p := &Problem{obsPts, obsNs, srcPts, srcNs, prms}
	out := make([]float64, k.TensorDim*k.TensorDim*len(obsPts)*len(srcPts))
	k.F(p, out)
	return out, nil
}

// MfDirectEval applies the interaction matrix to a density vector x without
// materialising the matrix; the quadratic-cost reference matvec
func MfDirectEval(name string, ndim int, obsPts, obsNs, srcPts, srcNs [][]float64, prms []float64, x []float64) ([]float64, error) {
	k := Get(name, ndim)
	if k == nil {
		return nil, chk.Err("configuration: cannot find kernel %q (%dD)", name, ndim)
	}
	if err := k.CheckPrms(prms); err != nil {
		return nil, err
	}
	if len(x) != k.TensorDim*len(srcPts) {
		return nil, chk.Err("usage: density vector has length %d, want %d", len(x), k.TensorDim*len(srcPts))
	}
	p := &Problem{obsPts, obsNs, srcPts, srcNs, prms}
	out := make([]float64, k.TensorDim*len(obsPts))
	k.MfF(p, out, x)
	return out, nil
}
