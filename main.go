// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/geomech/defmap/dmm"
	"github.com/geomech/defmap/inp"
	"github.com/geomech/defmap/mcreep"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	simfnpath, _ := io.ArgToFilename(0, "data/quartz", ".sim", true)
	verbose := io.ArgToBool(1, true)
	show := io.ArgToBool(2, false)
	erasePrev := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nDefmap -- deformation mechanism maps\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"simulation filename path", "simfnpath", simfnpath,
			"show messages", "verbose", verbose,
			"show figure instead of saving", "show", show,
			"erase previous results", "erasePrev", erasePrev,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// simulation data
	sim := inp.ReadSim(simfnpath, erasePrev)
	err := sim.Validate()
	if err != nil {
		chk.Panic("invalid simulation data:\n%v", err)
	}

	// grid
	grid, err := dmm.NewGrid(sim.Grid.ThMin, sim.Grid.ThMax, sim.Grid.LsMin, sim.Grid.LsMax, sim.Tmelt, sim.Grid.Npts, sim.Grid.Npts)
	if err != nil {
		chk.Panic("cannot allocate grid:\n%v", err)
	}

	// mechanisms
	var mechs []*dmm.Mechanism
	for _, mech := range sim.Mechs {
		mat := sim.Mdb.Get(mech.Mat)
		if mat == nil {
			chk.Panic("cannot find material %q", mech.Mat)
		}
		model, err := mcreep.New(mech.Model)
		if err != nil {
			chk.Panic("cannot allocate model %q:\n%v", mech.Model, err)
		}
		err = model.Init(mat.Prms)
		if err != nil {
			chk.Panic("cannot initialise model %q:\n%v", mech.Model, err)
		}
		mechs = append(mechs, &dmm.Mechanism{Name: mech.Name, Model: model})
	}

	// strain-rate field
	field, err := dmm.NewField(grid, mechs)
	if err != nil {
		chk.Panic("cannot compute strain-rate field:\n%v", err)
	}

	// plot
	levels := dmm.ContourLevels(sim.Levels.SrMin, sim.Levels.SrMax, sim.Levels.Nlevels)
	plotter := dmm.Plotter{
		ClrA:     sim.Plot.ClrA,
		ClrB:     sim.Plot.ClrB,
		BndClr:   sim.Plot.BndClr,
		BndAlpha: sim.Plot.BndAlpha,
		Title:    sim.Plot.Title,
		PngRes:   sim.Data.PngRes,
		UseEps:   sim.Data.UseEps,
		SaveDir:  sim.DirOut,
		SaveFnk:  sim.Key,
	}
	plotter.SetFig(sim.Data.Prop, sim.Data.Width)
	err = plotter.Draw(field, levels)
	if err != nil {
		chk.Panic("cannot draw map:\n%v", err)
	}
	plotter.Save(show)
}
