// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command planarsim is a host-embedding demo: it loads a scene JSON file,
// runs a fixed number of ticks, and prints the resulting flat state. The
// top level recovers and reports any panic; CreateScene and Tick otherwise
// report failures through ordinary error returns.
package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/planarfem/solver"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	scenefile, _ := io.ArgToFilename(0, "scene", ".json", true)
	nsteps := io.ArgToInt(1, 100)
	dt := io.ArgToFloat(2, 0.01)
	verbose := io.ArgToBool(3, false)

	io.Pf("\n%s\n", io.ArgsTable(
		"scene file", "scenefile", scenefile,
		"number of ticks", "nsteps", nsteps,
		"time step", "dt", dt,
		"verbose", "verbose", verbose,
	))

	solver.Verbose = verbose

	if err := run(scenefile, nsteps, dt); err != nil {
		chk.Panic("%v", err)
	}
}

func run(scenefile string, nsteps int, dt float64) error {
	b, err := utl.ReadFile(scenefile)
	if err != nil {
		return chk.Err("cannot read scene file %q: %v", scenefile, err)
	}

	s, err := solver.Create(string(b))
	if err != nil {
		return chk.Err("cannot create solver: %v", err)
	}

	state := s.InitialState()
	extForces := make([]float64, s.N())
	for step := 0; step < nsteps; step++ {
		if err := s.Tick(state, extForces, dt); err != nil {
			return chk.Err("tick %d failed: %v", step, err)
		}
	}

	io.Pf("\nfinal state (stride-2, interleaved q, q̇):\n%v\n", state)
	return nil
}
