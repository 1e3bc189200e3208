// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"

	"github.com/geomech/defmap/mcreep"
)

// Mechanism pairs a name with an initialised creep model
type Mechanism struct {
	Name  string       // mechanism description. ex: dislocation creep
	Model mcreep.Model // initialised flow-law model
}

// Field holds the strain-rate surfaces computed over a grid
type Field struct {

	// input
	Grid  *Grid        // the sampling grid
	Mechs []*Mechanism // the competing mechanisms

	// results
	Rates [][][]float64 // ε̇ per mechanism [nmech][ns][nt]
	Max   [][]float64   // operative (maximum) ε̇ [ns][nt]
	Dom   [][]int       // index of dominant mechanism [ns][nt]
}

// NewField evaluates all mechanisms over the grid and derives the
// operative (maximum) strain-rate surface
func NewField(g *Grid, mechs []*Mechanism) (*Field, error) {
	if len(mechs) < 1 {
		return nil, chk.Err("at least one mechanism is required")
	}
	o := &Field{Grid: g, Mechs: mechs}

	// strain-rate surfaces
	o.Rates = utl.Deep3alloc(len(mechs), g.Ns, g.Nt)
	for k, mech := range mechs {
		for j := 0; j < g.Ns; j++ {
			for i := 0; i < g.Nt; i++ {
				o.Rates[k][j][i] = mech.Model.StrainRate(g.Temp(i), g.Stress(j))
			}
		}
	}

	// operative surface
	o.Max = la.MatAlloc(g.Ns, g.Nt)
	o.Dom = make([][]int, g.Ns)
	for j := 0; j < g.Ns; j++ {
		o.Dom[j] = make([]int, g.Nt)
		for i := 0; i < g.Nt; i++ {
			kmax := 0
			for k := 1; k < len(mechs); k++ {
				if o.Rates[k][j][i] > o.Rates[kmax][j][i] {
					kmax = k
				}
			}
			o.Max[j][i] = o.Rates[kmax][j][i]
			o.Dom[j][i] = kmax
		}
	}
	return o, nil
}

// Bands counts the grid points falling into each band defined by the
// ascending levels; len(levels)+1 counters are returned
func (o *Field) Bands(levels []float64) []int {
	counts := make([]int, len(levels)+1)
	for j := 0; j < o.Grid.Ns; j++ {
		for i := 0; i < o.Grid.Nt; i++ {
			idx := 0
			for _, level := range levels {
				if o.Max[j][i] >= level {
					idx++
				}
			}
			counts[idx]++
		}
	}
	return counts
}

// ContourLevels returns nlevels strain-rate levels geometrically spaced
// between srmin and srmax (ascending)
func ContourLevels(srmin, srmax float64, nlevels int) []float64 {
	exps := utl.LinSpace(math.Log10(srmin), math.Log10(srmax), nlevels)
	levels := make([]float64, nlevels)
	for i, e := range exps {
		levels[i] = math.Pow(10, e)
	}
	return levels
}

// Boundary holds the locus where two mechanisms predict equal strain rates
// while no other mechanism exceeds them
type Boundary struct {
	A, B int       // mechanism indices
	X    []float64 // homologous temperatures
	Y    []float64 // log10(σ/μ) values
}

// Boundaries finds the dominance boundaries between all pairs of mechanisms
func (o *Field) Boundaries() (bnds []*Boundary, err error) {
	for a := 0; a < len(o.Mechs); a++ {
		for b := a + 1; b < len(o.Mechs); b++ {
			bnd := o.boundary(a, b)
			if len(bnd.X) > 1 {
				bnds = append(bnds, bnd)
			}
		}
	}
	return
}

// boundary computes the equal-rate locus of the pair (a, b). For pairs with
// different stress exponents the root lies along the stress axis, one root
// per temperature column; otherwise the rates can only cross along the
// temperature axis, one root per stress row
func (o *Field) boundary(a, b int) (bnd *Boundary) {
	bnd = &Boundary{A: a, B: b}
	g := o.Grid
	ma, mb := o.Mechs[a].Model, o.Mechs[b].Model
	lsmin, lsmax := g.Ls[0], g.Ls[g.Ns-1]
	thmin, thmax := g.Th[0], g.Th[g.Nt-1]

	if math.Abs(ma.Nexp()-mb.Nexp()) > 1e-10 {
		for i := 0; i < g.Nt; i++ {
			T := g.Temp(i)
			ls, err := equalRate(func(ls float64) float64 {
				s := math.Pow(10, ls)
				return math.Log(ma.StrainRate(T, s)) - math.Log(mb.StrainRate(T, s))
			}, 0.5*(lsmin+lsmax))
			if err != nil || ls < lsmin || ls > lsmax {
				continue // no crossing within range at this temperature
			}
			if !o.operative(a, b, g.Th[i], ls) {
				continue
			}
			bnd.X = append(bnd.X, g.Th[i])
			bnd.Y = append(bnd.Y, ls)
		}
		return
	}

	for j := 0; j < g.Ns; j++ {
		s := g.Stress(j)
		th, err := equalRate(func(th float64) float64 {
			return math.Log(ma.StrainRate(th*g.Tmelt, s)) - math.Log(mb.StrainRate(th*g.Tmelt, s))
		}, 0.5*(thmin+thmax))
		if err != nil || th < thmin || th > thmax {
			continue
		}
		if !o.operative(a, b, th, g.Ls[j]) {
			continue
		}
		bnd.X = append(bnd.X, th)
		bnd.Y = append(bnd.Y, g.Ls[j])
	}
	return
}

// operative tells whether no third mechanism exceeds the pair (a, b) at (th, ls)
func (o *Field) operative(a, b int, th, ls float64) bool {
	T, s := th*o.Grid.Tmelt, math.Pow(10, ls)
	ra := o.Mechs[a].Model.StrainRate(T, s)
	for k := range o.Mechs {
		if k == a || k == b {
			continue
		}
		if o.Mechs[k].Model.StrainRate(T, s) > ra*(1.0+1e-8) {
			return false
		}
	}
	return true
}

// equalRate solves f(x) = 0 with Newton's method
func equalRate(f func(x float64) float64, x0 float64) (root float64, err error) {
	var nls num.NlSolver
	defer nls.Clean()
	ffcn := func(fx, x []float64) (e error) {
		fx[0] = f(x[0])
		return
	}
	jfcn := func(dfdx [][]float64, x []float64) (e error) {
		dfdx[0][0], _ = num.DerivCentral(func(t float64, args ...interface{}) float64 {
			return f(t)
		}, x[0], 1e-3)
		return
	}
	res := []float64{x0}
	nls.Init(1, ffcn, nil, jfcn, true, false, nil)
	err = nls.Solve(res, true)
	root = res[0]
	return
}
