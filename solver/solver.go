// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver is the library's public façade: create a Solver from a
// scene, then tick it repeatedly against a caller-owned flat state buffer.
package solver

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/planarfem/integrate"
	"github.com/cpmech/planarfem/mech"
	"github.com/cpmech/planarfem/sceneio"
	"github.com/cpmech/planarfem/topo"
)

// Verbose enables per-tick tracing to stdout. Off by default.
var Verbose = false

// Solver owns an immutable scene and its derived topology index. It holds
// no per-tick state of its own; the caller's flat state buffer is borrowed
// mutably for exactly the duration of one Tick call.
type Solver struct {
	scene      *mech.Scene
	idx        *topo.Index
	rungeKutta bool
	initial    []float64 // flat stride-2 initial state, index order
}

// Create parses sceneJSON and builds a Solver.
func Create(sceneJSON string) (*Solver, error) {
	doc, err := sceneio.ParseBytes([]byte(sceneJSON))
	if err != nil {
		return nil, err
	}
	return CreateScene(doc.Scene, doc.InitialStates, doc.RungeKutta)
}

// CreateScene builds a Solver directly from an already-constructed scene,
// bypassing JSON ingestion. initialStates maps frame id to (q, q̇); a frame
// absent from the map starts at (0, 0).
func CreateScene(scene *mech.Scene, initialStates map[string][2]float64, rungeKutta bool) (*Solver, error) {
	idx := topo.Build(scene.Roots())
	n := idx.N()
	initial := make([]float64, 2*n)
	for i, f := range idx.Sorted {
		st := initialStates[f.ID()]
		initial[2*i] = st[0]
		initial[2*i+1] = st[1]
	}
	return &Solver{scene: scene, idx: idx, rungeKutta: rungeKutta, initial: initial}, nil
}

// N returns the number of frames (generalized coordinates) in the scene.
func (s *Solver) N() int { return s.idx.N() }

// InitialState returns a fresh copy of the flat stride-2 state the scene's
// per-frame "initialState" fields describe (zeros for frames that omitted
// it), for the caller to seed its own buffer with.
func (s *Solver) InitialState() []float64 {
	out := make([]float64, len(s.initial))
	copy(out, s.initial)
	return out
}

// Tick advances state (length 2n, interleaved q, q̇) by dt, reading
// extForces (length n; a shorter or empty slice defaults the remainder to
// 0). On error the state buffer is left unchanged.
func (s *Solver) Tick(state, extForces []float64, dt float64) error {
	n := s.idx.N()
	if len(state) != 2*n {
		return chk.Err("solver: tick state length must be %d (2*%d frames); got %d", 2*n, n, len(state))
	}
	if n == 0 {
		return nil // an empty scene has no state to advance
	}

	q, qd := unpack(state)
	ext := make([]float64, n)
	copy(ext, extForces)

	var err error
	if s.rungeKutta {
		err = integrate.StepRK4(s.idx, s.scene, q, qd, ext, dt)
	} else {
		err = integrate.StepEuler(s.idx, s.scene, q, qd, ext, dt)
	}
	if err != nil {
		return err
	}

	if Verbose {
		io.PfWhite("tick: dt=%.6f q[0]=%.6f qd[0]=%.6f\n", dt, q[0], qd[0])
	}

	pack(state, q, qd)
	return nil
}

// Dispose releases the solver. Go's garbage collector reclaims everything
// once the caller drops its last reference; this exists for parity with
// host bindings that must free resources explicitly.
func (s *Solver) Dispose() {}

func unpack(state []float64) (q, qd []float64) {
	n := len(state) / 2
	q = make([]float64, n)
	qd = make([]float64, n)
	for i := 0; i < n; i++ {
		q[i] = state[2*i]
		qd[i] = state[2*i+1]
	}
	return q, qd
}

func pack(state, q, qd []float64) {
	for i := range q {
		state[2*i] = q[i]
		state[2*i+1] = qd[i]
	}
}
