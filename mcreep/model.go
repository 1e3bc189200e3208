// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mcreep implements constitutive (flow-law) models for steady-state creep
package mcreep

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines steady-state creep flow laws
//  StrainRate computes ε̇ for a given absolute temperature T [K] and
//  normalized shear stress s = σ/μ
type Model interface {
	Init(prms fun.Prms) error        // Init initialises this structure
	GetPrms() fun.Prms               // gets (an example) of parameters
	StrainRate(T, s float64) float64 // StrainRate returns ε̇ [1/s]
	Nexp() float64                   // Nexp returns the stress exponent n
}

// New returns a new creep model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mcreep' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
