// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kin computes, fresh each tick (or RK4 sub-stage), the per-frame
// global position/velocity/acceleration transforms and weight world
// positions that the assembly layer needs. All outputs are indexed by
// frame index (topo.Index.Sorted order) and are discarded at the end of
// the pass that produced them.
package kin

import (
	"github.com/cpmech/planarfem/mech"
	"github.com/cpmech/planarfem/topo"
)

// Pass holds one kinematics evaluation.
type Pass struct {
	P    []mech.Mat3 // global position transform, per frame
	Pinv []mech.Mat3 // inverse of P
	V    []mech.Mat3 // global velocity transform
	A    []mech.Mat3 // global acceleration transform
	Vsum []mech.Mat3 // cumulative velocity-weighted V along root->frame path
	Asum []mech.Mat3 // cumulative second-order kinematic term

	WeightPos     []mech.Vec3 // world position of each weight, flat, block per frame
	WeightOffsets []int       // WeightOffsets[i]..WeightOffsets[i+1] is frame i's block; len n+1
}

// Compute runs one kinematics pass over the topology. q and qd are
// generalized coordinate/velocity slices indexed by frame index (idx.Sorted
// order, i.e. already unpacked from the flat state vector).
func Compute(idx *topo.Index, q, qd []float64) (*Pass, error) {
	n := idx.N()
	p := &Pass{
		P:    make([]mech.Mat3, n),
		Pinv: make([]mech.Mat3, n),
		V:    make([]mech.Mat3, n),
		A:    make([]mech.Mat3, n),
		Vsum: make([]mech.Mat3, n),
		Asum: make([]mech.Mat3, n),
	}

	// P, Pinv, V, A, Vsum, Asum must be produced in index order: index i's
	// parent (a strictly smaller index, by the sort invariant) is already
	// resolved by the time we reach i.
	for i, f := range idx.Sorted {
		qi, qdi := q[i], qd[i]
		L := f.LocalPos(qi)
		Lp := f.LocalVel(qi)
		Lpp := f.LocalAccel(qi)

		parent, hasParent := idx.ParentIndex(i)
		if hasParent {
			p.P[i] = mech.MulMat3(p.P[parent], L)
		} else {
			p.P[i] = L
		}

		Pinv, err := mech.InverseMat3(p.P[i], MinDet)
		if err != nil {
			return nil, ErrSingular(f.ID(), err)
		}
		p.Pinv[i] = Pinv

		var Vi, Ai mech.Mat3
		if hasParent {
			Vi = mech.MulMat3(mech.MulMat3(p.P[parent], Lp), Pinv)
			Ai = mech.MulMat3(mech.MulMat3(p.P[parent], Lpp), Pinv)
		} else {
			Vi = mech.MulMat3(Lp, Pinv)
			Ai = mech.MulMat3(Lpp, Pinv)
		}
		p.V[i] = Vi
		p.A[i] = Ai

		qdiV := scaleMat3(qdi, Vi)
		if hasParent {
			p.Vsum[i] = addMat3(p.Vsum[parent], qdiV)
			// Asum[i] = Asum[parent] + qd^2*A[i] + 2*qd*Vsum[parent]*V[i]
			term2 := scaleMat3(qdi*qdi, Ai)
			term3 := scaleMat3(2*qdi, mech.MulMat3(p.Vsum[parent], Vi))
			p.Asum[i] = addMat3(addMat3(p.Asum[parent], term2), term3)
		} else {
			p.Vsum[i] = qdiV
			p.Asum[i] = scaleMat3(qdi*qdi, Ai)
		}
	}

	computeWeightPositions(idx, p)
	return p, nil
}

// computeWeightPositions fills WeightPos/WeightOffsets: for each weight w on
// frame i, P[i]*(w.Pos, 1).
func computeWeightPositions(idx *topo.Index, p *Pass) {
	n := idx.N()
	offsets := make([]int, n+1)
	for i, f := range idx.Sorted {
		offsets[i+1] = offsets[i] + len(f.Weights())
	}
	positions := make([]mech.Vec3, offsets[n])
	for i, f := range idx.Sorted {
		for k, w := range f.Weights() {
			local := mech.Vec3{w.Pos[0], w.Pos[1], 1}
			positions[offsets[i]+k] = mech.MulVec3(p.P[i], local)
		}
	}
	p.WeightPos = positions
	p.WeightOffsets = offsets
}

func scaleMat3(alpha float64, m mech.Mat3) mech.Mat3 {
	out := mech.NewMat3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = alpha * m[i][j]
		}
	}
	return out
}

func addMat3(a, b mech.Mat3) mech.Mat3 {
	out := mech.NewMat3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}
