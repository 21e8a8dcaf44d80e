// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate turns one tick's (M, f) system into an advanced state:
// a symmetric linear solve for q̈, then either a forward-Euler step or an
// opt-in fourth-order Runge-Kutta refinement.
package integrate

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// ErrSingularSystem is returned when M·q̈ = f has no direct solution.
func ErrSingularSystem(cause error) error {
	return chk.Err("integrate: coefficient matrix is singular: %v", cause)
}

// solveSymmetric solves M·x = f for x. M is attempted via Cholesky first
// (the cheap path for a symmetric positive-definite system, which a
// well-formed scene's mass matrix always is); LU is the fallback when
// Cholesky rejects M. A singular M (e.g. a frame whose subtree carries no
// weights) fails both and is reported as ErrSingularSystem.
func solveSymmetric(M [][]float64, f []float64) ([]float64, error) {
	n := len(f)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, M[i][j])
		}
	}
	rhs := mat.NewVecDense(n, f)

	var chol mat.Cholesky
	if chol.Factorize(sym) {
		var x mat.VecDense
		if err := chol.SolveVecTo(&x, rhs); err == nil {
			return x.RawVector().Data, nil
		}
	}

	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dense.Set(i, j, M[i][j])
		}
	}
	var lu mat.LU
	lu.Factorize(dense)
	if ok := lu.Cond() < 1/1e-13; !ok {
		return nil, ErrSingularSystem(chk.Err("condition number too large"))
	}
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, rhs); err != nil {
		return nil, ErrSingularSystem(err)
	}
	return x.RawVector().Data, nil
}
