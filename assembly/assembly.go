// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly builds the symmetric coefficient matrix M and force
// vector f from an already-computed kinematics pass. Both routines depend
// only on already-computed kinematics and weight positions; iteration
// order does not affect the result.
package assembly

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/planarfem/kin"
	"github.com/cpmech/planarfem/mech"
	"github.com/cpmech/planarfem/topo"
)

// Build assembles M (n x n, symmetric) and f (length n) for the current
// kinematics pass. qd is the generalized-velocity vector (frame-index
// order); extForces is the caller-supplied per-frame external force
// (length n; a shorter slice contributes 0 for the missing frames).
func Build(idx *topo.Index, pass *kin.Pass, scene *mech.Scene, qd, extForces []float64) (M [][]float64, f []float64, err error) {
	n := idx.N()
	M = la.MatAlloc(n, n)
	f = make([]float64, n)

	for r := 0; r < n; r++ {
		for c := r; c < n; c++ {
			if !idx.IsDescendant(r, c) {
				continue
			}
			var sum float64
			for _, k := range idx.Descendants(c) {
				lo, hi := pass.WeightOffsets[k], pass.WeightOffsets[k+1]
				for wi := lo; wi < hi; wi++ {
					pw := pass.WeightPos[wi]
					vr := mech.MulVec3(pass.V[r], pw)
					vc := mech.MulVec3(pass.V[c], pw)
					sum += mech.Dot3(vr, vc)
				}
			}
			M[r][c] = sum
		}
	}
	// symmetrize: fill lower triangle from upper.
	for r := 0; r < n; r++ {
		for c := 0; c < r; c++ {
			M[r][c] = M[c][r]
		}
	}

	g := scene.Gravity()
	for r := 0; r < n; r++ {
		var sum float64
		for _, k := range idx.Descendants(r) {
			frame := idx.Sorted[k]
			lo, hi := pass.WeightOffsets[k], pass.WeightOffsets[k+1]
			weights := frame.Weights()
			for wi := lo; wi < hi; wi++ {
				w := weights[wi-lo]
				pw := pass.WeightPos[wi]
				vr := mech.MulVec3(pass.V[r], pw)
				asumP := mech.MulVec3(pass.Asum[k], pw)
				vsumP := mech.MulVec3(pass.Vsum[k], pw)
				inertial := mech.ScaleVec3(-w.Mass, asumP)
				damping := mech.ScaleVec3(-w.Drag, vsumP)
				gravity := mech.ScaleVec3(w.Mass, g)
				rhs := mech.AddVec3(mech.AddVec3(inertial, damping), gravity)
				sum += mech.Dot3(vr, rhs)
			}
		}
		resistanceTerm := -qd[r] * idx.Sorted[r].Resistance()
		externalTerm := extForce(extForces, r)
		f[r] = resistanceTerm + sum + externalTerm
	}
	return M, f, nil
}

// extForce returns the external force for frame r, defaulting to 0 if the
// caller's slice is shorter than r+1.
func extForce(extForces []float64, r int) float64 {
	if r < len(extForces) {
		return extForces[r]
	}
	return 0
}
