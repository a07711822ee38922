// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fmm implements the kernel-independent fast multipole method:
// dual-tree interaction planning and matrix-free evaluation
package fmm

import (
	"github.com/tbenthompson/tectosaur-fmm/kernel"

	"github.com/cpmech/gosl/chk"
)

// EPSDEFAULT is the default truncation tolerance of the check-to-equivalent
// pseudoinverse. Double precision kernels usually admit a much smaller value
const EPSDEFAULT = 1e-5

// FMMConfig holds the parameters defining one plan
type FMMConfig struct {
	InnerR float64        // radius of the inner surface, as a fraction of the cube width
	OuterR float64        // radius of the outer surface, as a fraction of the cube width
	Order  int            // expansion order controlling the surface point count
	Eps    float64        // pseudoinverse truncation tolerance
	Kernel *kernel.Kernel // pairwise kernel
	Prms   []float64      // kernel parameters
}

// NewConfig returns a configuration with the kernel resolved from the
// registry and the default pseudoinverse tolerance
func NewConfig(kname string, ndim int, innerR, outerR float64, order int, prms []float64) (*FMMConfig, error) {
	k := kernel.Get(kname, ndim)
	if k == nil {
		return nil, chk.Err("configuration: cannot find kernel %q (%dD)", kname, ndim)
	}
	o := &FMMConfig{
		InnerR: innerR,
		OuterR: outerR,
		Order:  order,
		Eps:    EPSDEFAULT,
		Kernel: k,
		Prms:   prms,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks the configuration invariants
func (o *FMMConfig) Validate() error {
	if o.Kernel == nil {
		return chk.Err("configuration: kernel is not set")
	}
	if o.Order < 1 {
		return chk.Err("configuration: order must be positive, got %d", o.Order)
	}
	if !(o.InnerR < o.OuterR) {
		return chk.Err("configuration: inner_r=%v must be smaller than outer_r=%v", o.InnerR, o.OuterR)
	}
	if o.InnerR <= 0 {
		return chk.Err("configuration: inner_r=%v must be positive", o.InnerR)
	}
	if o.Eps <= 0 || o.Eps >= 1 {
		return chk.Err("configuration: eps=%v must be within (0,1)", o.Eps)
	}
	return o.Kernel.CheckPrms(o.Prms)
}

// TensorDim returns the per-point block size of the kernel
func (o *FMMConfig) TensorDim() int {
	return o.Kernel.TensorDim
}
