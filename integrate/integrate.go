// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"github.com/cpmech/planarfem/assembly"
	"github.com/cpmech/planarfem/kin"
	"github.com/cpmech/planarfem/mech"
	"github.com/cpmech/planarfem/topo"
)

// Accel computes q̈ for the given state by running one kinematics pass,
// assembling (M, f), and solving M·q̈ = f.
func Accel(idx *topo.Index, scene *mech.Scene, q, qd, extForces []float64) ([]float64, error) {
	pass, err := kin.Compute(idx, q, qd)
	if err != nil {
		return nil, err
	}
	M, f, err := assembly.Build(idx, pass, scene, qd, extForces)
	if err != nil {
		return nil, err
	}
	return solveSymmetric(M, f)
}

// StepEuler advances (q, qd) by dt using forward-Euler-of-accelerations.
// On a solve failure q and qd are left unmodified.
func StepEuler(idx *topo.Index, scene *mech.Scene, q, qd, extForces []float64, dt float64) error {
	qdd, err := Accel(idx, scene, q, qd, extForces)
	if err != nil {
		return err
	}
	n := idx.N()
	for i := 0; i < n; i++ {
		q[i] += qd[i] * dt
		qd[i] += qdd[i] * dt
	}
	return nil
}

// StepRK4 advances (q, qd) by dt using the standard fourth-order
// Runge-Kutta refinement (the classical 4-stage form). On any stage's
// solve failure q and qd are left unmodified.
func StepRK4(idx *topo.Index, scene *mech.Scene, q, qd, extForces []float64, dt float64) error {
	n := idx.N()

	stage := func(q, qd []float64) (dq, dqd []float64, err error) {
		qdd, err := Accel(idx, scene, q, qd, extForces)
		if err != nil {
			return nil, nil, err
		}
		return qd, qdd, nil
	}

	combine := func(base, delta []float64, scale float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = base[i] + scale*delta[i]
		}
		return out
	}

	k1q, k1qd, err := stage(q, qd)
	if err != nil {
		return err
	}
	q2 := combine(q, k1q, dt/2)
	qd2 := combine(qd, k1qd, dt/2)
	k2q, k2qd, err := stage(q2, qd2)
	if err != nil {
		return err
	}
	q3 := combine(q, k2q, dt/2)
	qd3 := combine(qd, k2qd, dt/2)
	k3q, k3qd, err := stage(q3, qd3)
	if err != nil {
		return err
	}
	q4 := combine(q, k3q, dt)
	qd4 := combine(qd, k3qd, dt)
	k4q, k4qd, err := stage(q4, qd4)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		q[i] += (dt / 6) * (k1q[i] + 2*k2q[i] + 2*k3q[i] + k4q[i])
		qd[i] += (dt / 6) * (k1qd[i] + 2*k2qd[i] + 2*k3qd[i] + k4qd[i])
	}
	return nil
}
