// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dmm computes and renders deformation mechanism maps
package dmm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the mesh of (homologous temperature, normalized shear stress)
// sample points; immutable once constructed
type Grid struct {

	// input
	Nt, Ns int     // number of temperature and stress samples
	Tmelt  float64 // Tm: melting temperature [K]

	// axes
	Th []float64 // homologous temperature axis T/Tm [nt]
	Ls []float64 // log10(σ/μ) axis [ns]

	// mesh matrices [ns][nt]
	X [][]float64
	Y [][]float64
}

// NewGrid allocates the mesh
//  thmin, thmax -- homologous temperature range
//  lsmin, lsmax -- log10(σ/μ) range
func NewGrid(thmin, thmax, lsmin, lsmax, tmelt float64, nt, ns int) (*Grid, error) {
	if nt < 2 || ns < 2 {
		return nil, chk.Err("grid needs at least 2 points along each axis. nt=%d, ns=%d", nt, ns)
	}
	if thmin <= 0 || thmax <= thmin || thmax > 1 {
		return nil, chk.Err("homologous temperature range [%g, %g] is invalid", thmin, thmax)
	}
	if lsmax <= lsmin {
		return nil, chk.Err("log10 stress range [%g, %g] is invalid", lsmin, lsmax)
	}
	if tmelt <= 0 {
		return nil, chk.Err("melting temperature %g must be positive", tmelt)
	}
	o := &Grid{Nt: nt, Ns: ns, Tmelt: tmelt}
	o.Th = utl.LinSpace(thmin, thmax, nt)
	o.Ls = utl.LinSpace(lsmin, lsmax, ns)
	o.X = la.MatAlloc(ns, nt)
	o.Y = la.MatAlloc(ns, nt)
	for j := 0; j < ns; j++ {
		for i := 0; i < nt; i++ {
			o.X[j][i] = o.Th[i]
			o.Y[j][i] = o.Ls[j]
		}
	}
	return o, nil
}

// Temp returns the absolute temperature at column i [K]
func (o Grid) Temp(i int) float64 { return o.Th[i] * o.Tmelt }

// Stress returns the normalized shear stress σ/μ at row j
func (o Grid) Stress(j int) float64 { return math.Pow(10, o.Ls[j]) }
