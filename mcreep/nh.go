// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcreep

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// NabarroHerring implements the flow equation for Nabarro-Herring creep;
// i.e. diffusion creep controlled by vacancy flow through the lattice
//  ε̇ = Anh μ Ω Dl s exp(-Hl/(R T)) / (R d² T)
type NabarroHerring struct {
	Anh float64 // Anh: numerical constant
	Mu  float64 // μ: shear modulus [N/m²]
	Vm  float64 // Ω: molar volume of solid [m³/mol]
	Dl  float64 // Dl: lattice self-diffusion constant [m²/s]
	Hl  float64 // Hl: molar activation enthalpy for lattice self diffusion [J/mol]
	Gsz float64 // d: grain size [m]
}

// add model to factory
func init() {
	allocators["nh"] = func() Model { return new(NabarroHerring) }
}

// Init initialises model
func (o *NabarroHerring) Init(prms fun.Prms) (err error) {

	// default values
	o.Anh, o.Mu, o.Vm, o.Dl, o.Hl, o.Gsz = ANH, MU, VM, DL, HL, GSZ

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Anh":
			o.Anh = p.V
		case "mu":
			o.Mu = p.V
		case "V":
			o.Vm = p.V
		case "Dl":
			o.Dl = p.V
		case "Hl":
			o.Hl = p.V
		case "d":
			o.Gsz = p.V
		case "w", "b", "Dg", "Hg", "Ac", "Tmelt":
		default:
			return chk.Err("nh: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.Anh <= 0 || o.Mu <= 0 || o.Vm <= 0 || o.Dl <= 0 || o.Hl <= 0 || o.Gsz <= 0 {
		return chk.Err("nh: parameters must be positive: Anh=%v, mu=%v, V=%v, Dl=%v, Hl=%v, d=%v", o.Anh, o.Mu, o.Vm, o.Dl, o.Hl, o.Gsz)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o NabarroHerring) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Anh", V: ANH},
		&fun.Prm{N: "mu", V: MU},
		&fun.Prm{N: "V", V: VM},
		&fun.Prm{N: "Dl", V: DL},
		&fun.Prm{N: "Hl", V: HL},
		&fun.Prm{N: "d", V: GSZ},
	}
}

// Nexp returns the stress exponent
func (o NabarroHerring) Nexp() float64 { return 1 }

// StrainRate computes ε̇ for temperature T [K] and normalized shear stress s = σ/μ
func (o NabarroHerring) StrainRate(T, s float64) float64 {
	return o.Anh * o.Mu * o.Vm * o.Dl * s * math.Exp(-o.Hl/(RGAS*T)) / (RGAS * o.Gsz * o.Gsz * T)
}
