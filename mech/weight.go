// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mech implements the data model of a 2D kinematic scene: point
// masses (Weight) attached to single-degree-of-freedom rigid links (Frame),
// collected into a forest (Scene).
package mech

import "github.com/cpmech/gosl/chk"

// Weight is a point mass attached to a Frame in the frame's local
// coordinates. Weights are immutable once installed in a Scene.
type Weight struct {
	Mass float64    // mass >= 0
	Drag float64    // viscous drag on world-space velocity, >= 0
	Pos  [2]float64 // position in the owning frame's local coordinates
}

// NewWeight validates and returns a Weight. mass and drag must be >= 0.
func NewWeight(mass, drag float64, pos [2]float64) (Weight, error) {
	if mass < 0 {
		return Weight{}, chk.Err("weight mass must be >= 0; got %g", mass)
	}
	if drag < 0 {
		return Weight{}, chk.Err("weight drag must be >= 0; got %g", drag)
	}
	return Weight{Mass: mass, Drag: drag, Pos: pos}, nil
}
