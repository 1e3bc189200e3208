// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcreep

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Coble implements the flow equation for Coble creep; i.e. diffusion creep
// controlled by vacancy flow along grain boundaries
//  ε̇ = Ac μ Ω Dg w s exp(-Hg/(R T)) / (R d³ T)
type Coble struct {
	Ac  float64 // Ac: numerical constant
	Mu  float64 // μ: shear modulus [N/m²]
	Vm  float64 // Ω: molar volume of solid [m³/mol]
	Dg  float64 // Dg: grain-boundary self-diffusion constant [m²/s]
	Wb  float64 // w: grain boundary thickness [m]
	Hg  float64 // Hg: molar activation enthalpy for grain-boundary diffusion [J/mol]
	Gsz float64 // d: grain size [m]
}

// add model to factory
func init() {
	allocators["cc"] = func() Model { return new(Coble) }
}

// Init initialises model
func (o *Coble) Init(prms fun.Prms) (err error) {

	// default values
	o.Ac, o.Mu, o.Vm, o.Dg, o.Wb, o.Hg, o.Gsz = ACC, MU, VM, DG, WB, HG, GSZ

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Ac":
			o.Ac = p.V
		case "mu":
			o.Mu = p.V
		case "V":
			o.Vm = p.V
		case "Dg":
			o.Dg = p.V
		case "w":
			o.Wb = p.V
		case "Hg":
			o.Hg = p.V
		case "d":
			o.Gsz = p.V
		case "b", "Dl", "Hl", "Anh", "Tmelt":
		default:
			return chk.Err("cc: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.Ac <= 0 || o.Mu <= 0 || o.Vm <= 0 || o.Dg <= 0 || o.Wb <= 0 || o.Hg <= 0 || o.Gsz <= 0 {
		return chk.Err("cc: parameters must be positive: Ac=%v, mu=%v, V=%v, Dg=%v, w=%v, Hg=%v, d=%v", o.Ac, o.Mu, o.Vm, o.Dg, o.Wb, o.Hg, o.Gsz)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Coble) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Ac", V: ACC},
		&fun.Prm{N: "mu", V: MU},
		&fun.Prm{N: "V", V: VM},
		&fun.Prm{N: "Dg", V: DG},
		&fun.Prm{N: "w", V: WB},
		&fun.Prm{N: "Hg", V: HG},
		&fun.Prm{N: "d", V: GSZ},
	}
}

// Nexp returns the stress exponent
func (o Coble) Nexp() float64 { return 1 }

// StrainRate computes ε̇ for temperature T [K] and normalized shear stress s = σ/μ
func (o Coble) StrainRate(T, s float64) float64 {
	return o.Ac * o.Mu * o.Vm * o.Dg * o.Wb * s * math.Exp(-o.Hg/(RGAS*T)) / (RGAS * o.Gsz * o.Gsz * o.Gsz * T)
}
