package kin

import "github.com/cpmech/gosl/chk"

// MinDet is the determinant tolerance below which a position transform is
// considered singular.
const MinDet = 1e-13

// ErrSingular reports that a frame's position transform could not be
// inverted.
func ErrSingular(frameID string, cause error) error {
	return chk.Err("kinematics: position transform for frame %q is singular: %v", frameID, cause)
}
