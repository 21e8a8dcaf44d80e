package mech

import "github.com/cpmech/gosl/la"

// Mat3 is a 3x3 homogeneous transform matrix: rows/cols 0,1 are the linear
// part, row/col 2 is the homogeneous (translation) row/column.
type Mat3 = [][]float64

// Vec3 is a homogeneous 2D point/vector (x, y, w).
type Vec3 = []float64

// NewMat3 allocates a zeroed 3x3 matrix.
func NewMat3() Mat3 {
	return la.MatAlloc(3, 3)
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	m := NewMat3()
	m[0][0], m[1][1], m[2][2] = 1, 1, 1
	return m
}

// MulMat3 returns a*b (matrix product of two 3x3 matrices).
func MulMat3(a, b Mat3) Mat3 {
	c := NewMat3()
	la.MatMul(c, 1, a, b)
	return c
}

// MulVec3 returns a*v (transform applied to a homogeneous 3-vector).
func MulVec3(a Mat3, v Vec3) Vec3 {
	out := make(Vec3, 3)
	la.MatVecMul(out, 1, a, v)
	return out
}

// InverseMat3 returns the inverse of m. Returns an error if m is singular
// (determinant below mindet).
func InverseMat3(m Mat3, mindet float64) (Mat3, error) {
	inv := NewMat3()
	_, err := la.MatInv(inv, m, mindet)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Dot3 returns the Euclidean dot product of two homogeneous 3-vectors
// (all three components participate, matching the spec's ⟨·,·⟩ definition
// over already-homogeneous weight-position vectors).
func Dot3(u, v Vec3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// ScaleVec3 returns alpha*v.
func ScaleVec3(alpha float64, v Vec3) Vec3 {
	return Vec3{alpha * v[0], alpha * v[1], alpha * v[2]}
}

// AddVec3 returns u+v.
func AddVec3(u, v Vec3) Vec3 {
	return Vec3{u[0] + v[0], u[1] + v[1], u[2] + v[2]}
}
