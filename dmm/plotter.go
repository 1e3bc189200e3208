// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmm

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Plotter draws deformation mechanism maps
type Plotter struct {
	ClrA     string  // first color of the contour gradient (hex)
	ClrB     string  // last color of the contour gradient (hex)
	BndClr   string  // mechanism boundary line color (hex)
	BndAlpha float64 // mechanism boundary line alpha
	Title    string  // figure title
	AxLblX   string  // x-axis label. "" => use default
	AxLblY   string  // y-axis label. "" => use default
	LblSz    int     // font size of contour level labels
	PngRes   int     // resolution for .png files
	UseEps   bool    // save eps figure instead of png
	SaveDir  string  // directory to put figure
	SaveFnk  string  // figure filename key
}

// SetFig sets figure space for plotting
func (o *Plotter) SetFig(prop, width float64) {
	plt.Reset()
	if o.PngRes < 150 {
		o.PngRes = 150
	}
	if o.UseEps {
		plt.SetForEps(prop, width)
	} else {
		plt.SetForPng(prop, width, o.PngRes)
	}
}

// Draw plots the strain-rate contours, the mechanism boundaries and the
// contour level labels
func (o *Plotter) Draw(f *Field, levels []float64) (err error) {
	g := f.Grid

	// operative surface in log10; levels become exponents
	zz := la.MatAlloc(g.Ns, g.Nt)
	for j := 0; j < g.Ns; j++ {
		for i := 0; i < g.Nt; i++ {
			zz[j][i] = math.Log10(f.Max[j][i])
		}
	}
	lvls := make([]string, len(levels))
	for i, level := range levels {
		lvls[i] = io.Sf("%g", levelExp(level))
	}
	clrs := Gradient(o.ClrA, o.ClrB, len(levels))
	qclrs := make([]string, len(clrs))
	for i, c := range clrs {
		qclrs[i] = io.Sf("'%s'", c)
	}
	plt.ContourSimple(g.X, g.Y, zz, io.Sf("colors=[%s], levels=[%s], linewidths=[1.2], clip_on=0",
		strings.Join(qclrs, ","), strings.Join(lvls, ",")))

	// legend with one entry per level, fastest first; the proxy lines sit
	// outside the axis limits
	lbls := legendLabels(levels)
	xo := []float64{g.Th[0] - 1, g.Th[0] - 1}
	yo := []float64{g.Ls[0] - 1, g.Ls[0] - 1}
	for k, lbl := range lbls {
		plt.Plot(xo, yo, io.Sf("'-', color='%s', label=r'%s'", clrs[len(levels)-1-k], lbl))
	}

	// mechanism boundaries
	bnds, err := f.Boundaries()
	if err != nil {
		return
	}
	for _, bnd := range bnds {
		plt.Plot(bnd.X, bnd.Y, io.Sf("'k-', color='%s', alpha=%g, clip_on=0", o.BndClr, o.BndAlpha))
	}

	// level labels
	o.labels(f, levels, zz)

	// decorations
	xl, yl := o.AxLblX, o.AxLblY
	if xl == "" {
		xl = "Homologous Temperature $T/T_m$"
	}
	if yl == "" {
		yl = "Shear Stress $\\log_{10}(\\sigma/\\mu)$"
	}
	if o.Title != "" {
		plt.SupTitle(o.Title, "size=10")
	}
	plt.Gll(xl, yl, "leg_loc='upper right'")
	plt.AxisLims([]float64{g.Th[0], g.Th[g.Nt-1], g.Ls[0], g.Ls[g.Ns-1]})
	return
}

// labels writes one ε̇ label per level, next to where the level crosses a
// column close to the hot side of the map
func (o *Plotter) labels(f *Field, levels []float64, zz [][]float64) {
	g := f.Grid
	sz := o.LblSz
	if sz < 1 {
		sz = 8
	}
	i := g.Nt - 1 - g.Nt/10
	if i < 0 {
		i = 0
	}
	for _, level := range levels {
		e := levelExp(level)
		for j := 1; j < g.Ns; j++ {
			if zz[j-1][i] < e && zz[j][i] >= e {
				plt.Text(g.Th[i], g.Ls[j], io.Sf("$10^{%g}$", e), io.Sf("size=%d", sz))
				break
			}
		}
	}
}

// levelExp returns the decade exponent of a contour level; near-integer
// values are snapped so the Pow/Log10 round trip cannot leak into label text
func levelExp(level float64) float64 {
	e := math.Log10(level)
	if r := math.Floor(e + 0.5); math.Abs(e-r) < 1e-9 {
		return r
	}
	return e
}

// legendLabels returns one strain-rate label per contour level, fastest
// level first to match the legend order of the map
func legendLabels(levels []float64) []string {
	lbls := make([]string, len(levels))
	for i, level := range levels {
		lbls[len(levels)-1-i] = io.Sf("$10^{%g}$", levelExp(level))
	}
	return lbls
}

// Save saves the figure, or shows it if show==true
func (o *Plotter) Save(show bool) {
	if show {
		plt.Show()
		return
	}
	ext := ".png"
	if o.UseEps {
		ext = ".eps"
	}
	plt.SaveD(o.SaveDir, o.SaveFnk+ext)
}

// Gradient interpolates n colors between the two hex endpoints
func Gradient(ca, cb string, n int) []string {
	a := drawing.ColorFromHex(strings.TrimPrefix(ca, "#"))
	b := drawing.ColorFromHex(strings.TrimPrefix(cb, "#"))
	lerp := func(u, v uint8, t float64) uint8 {
		return uint8(float64(u) + t*(float64(v)-float64(u)) + 0.5)
	}
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = io.Sf("#%02x%02x%02x", lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t))
	}
	return colors
}
