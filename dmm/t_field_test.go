// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/geomech/defmap/mcreep"
)

// quartzMechs allocates the three quartz mechanisms with literature constants
func quartzMechs(tst *testing.T) []*Mechanism {
	var mechs []*Mechanism
	for _, m := range []struct{ name, model string }{
		{"dislocation creep", "dc"},
		{"Nabarro-Herring creep", "nh"},
		{"Coble creep", "cc"},
	} {
		mdl, err := mcreep.New(m.model)
		if err != nil {
			tst.Errorf("cannot allocate model %q:\n%v", m.model, err)
			return nil
		}
		err = mdl.Init(nil)
		if err != nil {
			tst.Errorf("cannot initialise model %q:\n%v", m.model, err)
			return nil
		}
		mechs = append(mechs, &Mechanism{Name: m.name, Model: mdl})
	}
	return mechs
}

// quartzField computes the default quartz field on a npts×npts grid
func quartzField(tst *testing.T, npts int) *Field {
	mechs := quartzMechs(tst)
	if mechs == nil {
		return nil
	}
	g, err := NewGrid(0.2, 1.0, -6, 0, mcreep.TMELT, npts, npts)
	if err != nil {
		tst.Errorf("cannot allocate grid:\n%v", err)
		return nil
	}
	f, err := NewField(g, mechs)
	if err != nil {
		tst.Errorf("cannot compute field:\n%v", err)
		return nil
	}
	return f
}

func Test_field01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field01. operative surface and dominance")

	f := quartzField(tst, 101)
	if f == nil {
		return
	}
	g := f.Grid

	// max surface is the pointwise maximum and dominance is consistent
	for j := 0; j < g.Ns; j++ {
		for i := 0; i < g.Nt; i++ {
			for k := range f.Mechs {
				if f.Rates[k][j][i] > f.Max[j][i] {
					tst.Errorf("max surface is not the maximum @ (%d,%d)", j, i)
					return
				}
			}
			if f.Rates[f.Dom[j][i]][j][i] != f.Max[j][i] {
				tst.Errorf("dominant mechanism does not match max surface @ (%d,%d)", j, i)
				return
			}
		}
	}

	// strain rate increases with stress along every column
	for k := range f.Mechs {
		for i := 0; i < g.Nt; i++ {
			for j := 1; j < g.Ns; j++ {
				if f.Rates[k][j][i] <= f.Rates[k][j-1][i] {
					tst.Errorf("%s: ε̇ is not increasing with stress @ column %d", f.Mechs[k].Name, i)
					return
				}
			}
		}
	}

	// dominance at reference points: dislocation creep at high stress,
	// Coble at low temperature, Nabarro-Herring near melting
	dom := func(th, ls float64) int {
		T, s := th*g.Tmelt, math.Pow(10, ls)
		kmax := 0
		rmax := f.Mechs[0].Model.StrainRate(T, s)
		for k := 1; k < len(f.Mechs); k++ {
			if r := f.Mechs[k].Model.StrainRate(T, s); r > rmax {
				kmax, rmax = k, r
			}
		}
		return kmax
	}
	chk.IntAssert(dom(0.8, -1), 0)
	chk.IntAssert(dom(0.95, -5), 1)
	chk.IntAssert(dom(0.5, -5), 2)
	chk.IntAssert(dom(0.3, -5.5), 2)
}

func Test_field02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field02. contour levels and bands")

	levels := ContourLevels(1e-15, 1e-6, 10)
	chk.IntAssert(len(levels), 10)
	chk.Scalar(tst, "first level", 1e-27, levels[0], 1e-15)
	chk.Scalar(tst, "last level", 1e-18, levels[9], 1e-6)
	for i := 1; i < len(levels); i++ {
		chk.Scalar(tst, io.Sf("ratio %d", i), 1e-12, levels[i]/levels[i-1], 10)
	}

	f := quartzField(tst, 101)
	if f == nil {
		return
	}

	// the levels partition the field into len(levels)+1 bands,
	// all present in the default quartz map
	counts := f.Bands(levels)
	chk.IntAssert(len(counts), 11)
	total := 0
	for b, cnt := range counts {
		if cnt == 0 {
			tst.Errorf("band %d is empty", b)
			return
		}
		total += cnt
	}
	chk.IntAssert(total, f.Grid.Ns*f.Grid.Nt)
}

func Test_field03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field03. mechanism boundaries")

	f := quartzField(tst, 101)
	if f == nil {
		return
	}

	bnds, err := f.Boundaries()
	if err != nil {
		tst.Errorf("cannot compute boundaries:\n%v", err)
		return
	}
	chk.IntAssert(len(bnds), 3)

	find := func(a, b int) *Boundary {
		for _, bnd := range bnds {
			if bnd.A == a && bnd.B == b {
				return bnd
			}
		}
		tst.Errorf("boundary (%d,%d) is missing", a, b)
		return nil
	}

	// dislocation / Nabarro-Herring: the rate ratio does not depend on
	// temperature, so the boundary is a horizontal line
	dcnh := find(0, 1)
	if dcnh == nil {
		return
	}
	if len(dcnh.X) < 10 {
		tst.Errorf("dc-nh boundary has too few points: %d", len(dcnh.X))
		return
	}
	for _, y := range dcnh.Y {
		chk.Scalar(tst, "dc-nh level", 1e-6, y, -3.9298141020802295)
	}

	// Nabarro-Herring / Coble: both laws are linear in stress, so the
	// boundary is a vertical line at the diffusion crossover temperature
	nhcc := find(1, 2)
	if nhcc == nil {
		return
	}
	if len(nhcc.X) < 10 {
		tst.Errorf("nh-cc boundary has too few points: %d", len(nhcc.X))
		return
	}
	for _, x := range nhcc.X {
		chk.Scalar(tst, "nh-cc crossover", 1e-6, x, 0.725304822771897)
	}

	// dislocation / Coble: curved boundary, clipped where Nabarro-Herring
	// takes over; check the point at T/Tm = 0.6
	dccc := find(0, 2)
	if dccc == nil {
		return
	}
	found := false
	for p, x := range dccc.X {
		if math.Abs(x-0.6) < 1e-8 {
			chk.Scalar(tst, "dc-cc @ 0.6", 1e-6, dccc.Y[p], -3.2990946143049964)
			found = true
		}
	}
	if !found {
		tst.Errorf("dc-cc boundary has no point at T/Tm = 0.6")
		return
	}

	// past the diffusion crossover Nabarro-Herring beats the dc=cc pair,
	// so the dc-cc boundary must stop there
	for _, x := range dccc.X {
		if x > 0.725304822771897+1e-6 {
			tst.Errorf("dc-cc boundary extends past the Nabarro-Herring crossover: T/Tm=%g", x)
			return
		}
	}

	// at every boundary point the two rates agree and no third mechanism wins
	for _, bnd := range bnds {
		ma, mb := f.Mechs[bnd.A].Model, f.Mechs[bnd.B].Model
		for p := range bnd.X {
			T, s := bnd.X[p]*f.Grid.Tmelt, math.Pow(10, bnd.Y[p])
			ra, rb := ma.StrainRate(T, s), mb.StrainRate(T, s)
			chk.Scalar(tst, io.Sf("equal rates (%d,%d)", bnd.A, bnd.B), 1e-6*ra, ra, rb)
			for k := range f.Mechs {
				if k == bnd.A || k == bnd.B {
					continue
				}
				if f.Mechs[k].Model.StrainRate(T, s) > ra*(1.0+1e-6) {
					tst.Errorf("boundary (%d,%d) point %d is not operative", bnd.A, bnd.B, p)
					return
				}
			}
		}
	}
}
