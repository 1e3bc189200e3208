// Copyright 2026 The Defmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/geomech/defmap/mcreep"
)

// Data holds global data for simulations
type Data struct {
	Desc    string  `json:"desc"`    // description of simulation
	Matfile string  `json:"matfile"` // materials file path
	DirOut  string  `json:"dirout"`  // directory for output; e.g. /tmp/defmap
	UseEps  bool    `json:"useeps"`  // save eps figure instead of png
	PngRes  int     `json:"pngres"`  // resolution for .png files
	Prop    float64 `json:"prop"`    // figure height/width proportion
	Width   float64 `json:"width"`   // figure width
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.PngRes = 150
	o.Prop = 0.75
	o.Width = 500
}

// GridData holds the definition of the (T/Tm, log10(σ/μ)) sampling grid
type GridData struct {
	Npts  int     `json:"npts"`  // number of points along each axis
	ThMin float64 `json:"thmin"` // minimum homologous temperature
	ThMax float64 `json:"thmax"` // maximum homologous temperature
	LsMin float64 `json:"lsmin"` // minimum log10(σ/μ)
	LsMax float64 `json:"lsmax"` // maximum log10(σ/μ)
}

// SetDefault sets default values
func (o *GridData) SetDefault() {
	o.Npts = 1000
	o.ThMin, o.ThMax = 0.2, 1.0
	o.LsMin, o.LsMax = -6, 0
}

// LevelsData holds the definition of the strain-rate contour levels
type LevelsData struct {
	Nlevels int     `json:"nlevels"` // number of contour levels
	SrMin   float64 `json:"srmin"`   // lowest strain-rate level [1/s]
	SrMax   float64 `json:"srmax"`   // highest strain-rate level [1/s]
}

// SetDefault sets default values
func (o *LevelsData) SetDefault() {
	o.Nlevels = 10
	o.SrMin, o.SrMax = 1e-15, 1e-6
}

// PlotData holds plot style data
type PlotData struct {
	ClrA     string  `json:"clra"`     // first color of the contour gradient (hex)
	ClrB     string  `json:"clrb"`     // last color of the contour gradient (hex)
	BndClr   string  `json:"bndclr"`   // mechanism boundary line color (hex)
	BndAlpha float64 `json:"bndalpha"` // mechanism boundary line alpha
	Title    string  `json:"title"`    // figure title
}

// SetDefault sets default values
func (o *PlotData) SetDefault() {
	o.ClrA, o.ClrB = "#0000ff", "#008000"
	o.BndClr, o.BndAlpha = "#000000", 0.75
}

// MechData holds the definition of one deformation mechanism
type MechData struct {
	Name  string `json:"name"`  // mechanism description. ex: dislocation creep
	Model string `json:"model"` // flow-law model name. ex: dc, nh, cc
	Mat   string `json:"mat"`   // material name
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data        `json:"data"`       // global simulation data
	Grid   GridData    `json:"grid"`       // sampling grid
	Levels LevelsData  `json:"levels"`     // contour levels
	Plot   PlotData    `json:"plot"`       // plot style
	Mechs  []*MechData `json:"mechanisms"` // deformation mechanisms

	// derived
	Key    string  // simulation key; e.g. quartz.sim => quartz
	DirOut string  // directory to save results
	Mdb    *MatDb  // materials database
	Tmelt  float64 // melting temperature [K]
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasefiles bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Data.SetDefault()
	o.Grid.SetDefault()
	o.Levels.SetDefault()
	o.Plot.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/defmap/" + o.Key
	}

	// create directory and erase previous results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// read materials database
	o.Mdb, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		chk.Panic("ReadSim: cannot read materials file:\n%v", err)
	}

	// melting temperature from the first mechanism's material
	o.Tmelt = mcreep.TMELT
	if len(o.Mechs) > 0 {
		if mat := o.Mdb.Get(o.Mechs[0].Mat); mat != nil {
			if prm := mat.Prms.Find("Tmelt"); prm != nil {
				o.Tmelt = prm.V
			}
		}
	}
	return &o
}

// Validate checks ranges and constants; all errors here are configuration errors
func (o *Simulation) Validate() (err error) {
	if o.Grid.Npts < 2 {
		return chk.Err("grid: npts must be at least 2. npts=%d is invalid", o.Grid.Npts)
	}
	if o.Grid.ThMin <= 0 || o.Grid.ThMax <= o.Grid.ThMin || o.Grid.ThMax > 1.0 {
		return chk.Err("grid: homologous temperature range [%g, %g] is invalid; need 0 < thmin < thmax <= 1", o.Grid.ThMin, o.Grid.ThMax)
	}
	if o.Grid.LsMax <= o.Grid.LsMin || o.Grid.LsMax > 0 {
		return chk.Err("grid: log10 stress range [%g, %g] is invalid; need lsmin < lsmax <= 0", o.Grid.LsMin, o.Grid.LsMax)
	}
	if o.Levels.Nlevels < 2 {
		return chk.Err("levels: nlevels must be at least 2. nlevels=%d is invalid", o.Levels.Nlevels)
	}
	if o.Levels.SrMin <= 0 || o.Levels.SrMax <= o.Levels.SrMin {
		return chk.Err("levels: strain-rate range [%g, %g] is invalid; need 0 < srmin < srmax", o.Levels.SrMin, o.Levels.SrMax)
	}
	if o.Plot.BndAlpha < 0 || o.Plot.BndAlpha > 1 {
		return chk.Err("plot: bndalpha=%g is invalid; need 0 <= bndalpha <= 1", o.Plot.BndAlpha)
	}
	if o.Tmelt <= 0 {
		return chk.Err("materials: melting temperature Tmelt=%g must be positive", o.Tmelt)
	}
	if len(o.Mechs) < 1 {
		return chk.Err("at least one mechanism must be defined")
	}
	for _, mech := range o.Mechs {
		if o.Mdb.Get(mech.Mat) == nil {
			return chk.Err("mechanism %q: material %q is not available in materials database", mech.Name, mech.Mat)
		}
	}
	return
}
