package mech

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Frame is one kinematic link: a single generalized coordinate, zero or
// more child frames, and zero or more point masses. Frame is a closed,
// tagged variant: the only two concrete kinds are *TrackFrame and
// *RotationalFrame. Dispatch is per-frame, per-tick; accessors are total
// (no error return) — construction-time validation happens once, in
// NewTrackFrame/NewRotationalFrame (id, resistance) and NewScene (unique
// ids).
type Frame interface {
	ID() string
	Resistance() float64
	Children() []Frame
	Weights() []Weight

	// LocalPos returns L(q): the 3x3 homogeneous transform mapping this
	// frame's local coordinates into its parent's local coordinates.
	LocalPos(q float64) Mat3

	// LocalVel returns L'(q) = dL/dq. Bottom row is always zero.
	LocalVel(q float64) Mat3

	// LocalAccel returns L''(q) = d2L/dq2. Bottom row is always zero.
	LocalAccel(q float64) Mat3
}

// frameBase holds the attributes common to every Frame variant.
type frameBase struct {
	id         string
	resistance float64
	pos        [2]float64
	weights    []Weight
	children   []Frame
}

func (b *frameBase) ID() string          { return b.id }
func (b *frameBase) Resistance() float64 { return b.resistance }
func (b *frameBase) Children() []Frame   { return b.children }
func (b *frameBase) Weights() []Weight   { return b.weights }

func newFrameBase(id string, resistance float64, pos [2]float64, weights []Weight, children []Frame) (frameBase, error) {
	if id == "" {
		return frameBase{}, chk.Err("frame id must not be empty")
	}
	if resistance < 0 {
		return frameBase{}, chk.Err("frame %q: resistance must be >= 0; got %g", id, resistance)
	}
	return frameBase{id: id, resistance: resistance, pos: pos, weights: weights, children: children}, nil
}

// TrackFrame translates along a fixed direction (angle) by its generalized
// coordinate q. L(q) = translate(px + q*cos(angle), py + q*sin(angle)).
type TrackFrame struct {
	frameBase
	Angle float64
}

// NewTrackFrame builds a TrackFrame, validating shared attributes.
func NewTrackFrame(id string, resistance, angle float64, pos [2]float64, weights []Weight, children []Frame) (*TrackFrame, error) {
	base, err := newFrameBase(id, resistance, pos, weights, children)
	if err != nil {
		return nil, err
	}
	return &TrackFrame{frameBase: base, Angle: angle}, nil
}

func (f *TrackFrame) LocalPos(q float64) Mat3 {
	m := Identity3()
	m[0][2] = f.pos[0] + q*math.Cos(f.Angle)
	m[1][2] = f.pos[1] + q*math.Sin(f.Angle)
	return m
}

func (f *TrackFrame) LocalVel(q float64) Mat3 {
	m := NewMat3()
	m[0][2] = math.Cos(f.Angle)
	m[1][2] = math.Sin(f.Angle)
	return m
}

func (f *TrackFrame) LocalAccel(q float64) Mat3 {
	// translation is linear in q: second derivative is identically zero.
	return NewMat3()
}

// RotationalFrame rotates about its own origin by its generalized
// coordinate q (an angle), then translates by its fixed offset.
type RotationalFrame struct {
	frameBase
}

// NewRotationalFrame builds a RotationalFrame, validating shared attributes.
func NewRotationalFrame(id string, resistance float64, pos [2]float64, weights []Weight, children []Frame) (*RotationalFrame, error) {
	base, err := newFrameBase(id, resistance, pos, weights, children)
	if err != nil {
		return nil, err
	}
	return &RotationalFrame{frameBase: base}, nil
}

func (f *RotationalFrame) LocalPos(q float64) Mat3 {
	c, s := math.Cos(q), math.Sin(q)
	m := NewMat3()
	m[0][0], m[0][1], m[0][2] = c, -s, f.pos[0]
	m[1][0], m[1][1], m[1][2] = s, c, f.pos[1]
	m[2][2] = 1
	return m
}

func (f *RotationalFrame) LocalVel(q float64) Mat3 {
	c, s := math.Cos(q), math.Sin(q)
	m := NewMat3()
	m[0][0], m[0][1] = -s, -c
	m[1][0], m[1][1] = c, -s
	return m
}

func (f *RotationalFrame) LocalAccel(q float64) Mat3 {
	c, s := math.Cos(q), math.Sin(q)
	m := NewMat3()
	m[0][0], m[0][1] = -c, s
	m[1][0], m[1][1] = -s, -c
	return m
}
