// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcreep

// Default constants for the quartz flow laws (Passchier and Trouw, 1996)
const (
	KB    = 1.38062e-23 // kB: Boltzmann constant [J/K]
	RGAS  = 8.3143      // R: gas constant [J/(mol·K)]
	WB    = 1e-9        // w: grain boundary thickness [m]
	VM    = 2.6e-5      // Ω: molar volume of solid [m³/mol]
	BV    = 5e-10       // b: Burgers vector [m]
	GSZ   = 1e-5        // d: grain size [m]
	MU    = 42e9        // μ: shear modulus of quartz [N/m²]
	DL    = 2.9e-5      // Dl: lattice self-diffusion constant [m²/s]
	DG    = 3e-8        // Dg: grain-boundary self-diffusion constant [m²/s]
	HL    = 243e3       // Hl: molar activation enthalpy, lattice diffusion [J/mol]
	HG    = 113e3       // Hg: molar activation enthalpy, grain-boundary diffusion [J/mol]
	ACC   = 141         // Ac: numerical constant, Coble creep
	ANH   = 16          // Anh: numerical constant, Nabarro-Herring creep
	TMELT = 1550        // Tm: melting temperature of quartz [K]
)
