// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcreep

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// DislocationCreep implements the power-law flow equation for
// lattice-diffusion controlled dislocation creep
//  ε̇ = μ b Dl s³ exp(-Hl/(R T)) / (kB T)
type DislocationCreep struct {
	Mu float64 // μ: shear modulus [N/m²]
	Bv float64 // b: Burgers vector [m]
	Dl float64 // Dl: lattice self-diffusion constant [m²/s]
	Hl float64 // Hl: molar activation enthalpy for lattice self diffusion [J/mol]
}

// add model to factory
func init() {
	allocators["dc"] = func() Model { return new(DislocationCreep) }
}

// Init initialises model
func (o *DislocationCreep) Init(prms fun.Prms) (err error) {

	// default values
	o.Mu, o.Bv, o.Dl, o.Hl = MU, BV, DL, HL

	// parameters
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "b":
			o.Bv = p.V
		case "Dl":
			o.Dl = p.V
		case "Hl":
			o.Hl = p.V
		case "w", "V", "d", "Dg", "Hg", "Ac", "Anh", "Tmelt":
		default:
			return chk.Err("dc: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.Mu <= 0 || o.Bv <= 0 || o.Dl <= 0 || o.Hl <= 0 {
		return chk.Err("dc: parameters must be positive: mu=%v, b=%v, Dl=%v, Hl=%v", o.Mu, o.Bv, o.Dl, o.Hl)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o DislocationCreep) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "mu", V: MU},
		&fun.Prm{N: "b", V: BV},
		&fun.Prm{N: "Dl", V: DL},
		&fun.Prm{N: "Hl", V: HL},
	}
}

// Nexp returns the stress exponent
func (o DislocationCreep) Nexp() float64 { return 3 }

// StrainRate computes ε̇ for temperature T [K] and normalized shear stress s = σ/μ
func (o DislocationCreep) StrainRate(T, s float64) float64 {
	return o.Mu * o.Bv * o.Dl * s * s * s * math.Exp(-o.Hl/(RGAS*T)) / (KB * T)
}
