package mech

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestSceneGravityConvention(t *testing.T) {
	chk.PrintTitle("scene gravity convention")
	s, err := NewScene(DefaultGravity, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := s.Gravity()
	chk.Scalar(t, "gx", 1e-15, g[0], 0)
	chk.Scalar(t, "gy", 1e-15, g[1], -10)
	chk.Scalar(t, "gw", 1e-15, g[2], 0)
}

func TestSceneRejectsDuplicateIDs(t *testing.T) {
	child, _ := NewRotationalFrame("dup", 0, [2]float64{0, 0}, nil, nil)
	root, _ := NewRotationalFrame("dup", 0, [2]float64{0, 0}, nil, []Frame{child})
	_, err := NewScene(10, []Frame{root})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestWeightRejectsNegativeMass(t *testing.T) {
	if _, err := NewWeight(-1, 0, [2]float64{0, 0}); err == nil {
		t.Fatal("expected negative-mass error")
	}
}

func TestWeightRejectsNegativeDrag(t *testing.T) {
	if _, err := NewWeight(1, -1, [2]float64{0, 0}); err == nil {
		t.Fatal("expected negative-drag error")
	}
}

func TestFrameRejectsNegativeResistance(t *testing.T) {
	if _, err := NewRotationalFrame("x", -1, [2]float64{0, 0}, nil, nil); err == nil {
		t.Fatal("expected negative-resistance error")
	}
}

func TestFrameRejectsEmptyID(t *testing.T) {
	if _, err := NewRotationalFrame("", 0, [2]float64{0, 0}, nil, nil); err == nil {
		t.Fatal("expected empty-id error")
	}
}
