// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. mesh construction")

	g, err := NewGrid(0.2, 1.0, -6, 0, 1550, 5, 4)
	if err != nil {
		tst.Errorf("cannot allocate grid:\n%v", err)
		return
	}

	chk.IntAssert(g.Nt, 5)
	chk.IntAssert(g.Ns, 4)
	chk.Vector(tst, "Th", 1e-15, g.Th, []float64{0.2, 0.4, 0.6, 0.8, 1.0})
	chk.Vector(tst, "Ls", 1e-15, g.Ls, []float64{-6, -4, -2, 0})

	// mesh matrices
	chk.IntAssert(len(g.X), 4)
	chk.IntAssert(len(g.X[0]), 5)
	chk.Scalar(tst, "X[0][2]", 1e-15, g.X[0][2], 0.6)
	chk.Scalar(tst, "X[3][2]", 1e-15, g.X[3][2], 0.6)
	chk.Scalar(tst, "Y[1][0]", 1e-15, g.Y[1][0], -4)
	chk.Scalar(tst, "Y[1][4]", 1e-15, g.Y[1][4], -4)

	// physical values
	chk.Scalar(tst, "Temp(3)", 1e-12, g.Temp(3), 0.8*1550)
	chk.Scalar(tst, "Stress(1)", 1e-19, g.Stress(1), 1e-4)
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. invalid ranges")

	checks := []struct {
		msg                               string
		thmin, thmax, lsmin, lsmax, tmelt float64
		nt, ns                            int
	}{
		{"too few points", 0.2, 1.0, -6, 0, 1550, 1, 10},
		{"non-positive temperature", 0, 1.0, -6, 0, 1550, 10, 10},
		{"inverted temperature range", 0.9, 0.2, -6, 0, 1550, 10, 10},
		{"superheated temperature", 0.2, 1.2, -6, 0, 1550, 10, 10},
		{"inverted stress range", 0.2, 1.0, 0, -6, 1550, 10, 10},
		{"non-positive melting temperature", 0.2, 1.0, -6, 0, 0, 10, 10},
	}
	for _, c := range checks {
		_, err := NewGrid(c.thmin, c.thmax, c.lsmin, c.lsmax, c.tmelt, c.nt, c.ns)
		if err == nil {
			tst.Errorf("%s: NewGrid must fail", c.msg)
			return
		}
		io.Pforan("%s: %v\n", c.msg, err)
	}
}
