package mech

import "github.com/cpmech/gosl/chk"

// Scene is the forest of root Frames plus a world gravity vector. Scene
// owns the frame tree exclusively; it is immutable once built.
type Scene struct {
	gravity Vec3 // world gravity, homogeneous (gx, gy, 0)
	roots   []Frame
}

// DefaultGravity is the scalar gravity magnitude used when the JSON
// document omits "gravity".
const DefaultGravity = 10.0

// NewScene builds a Scene from an already-constructed forest of roots and a
// scalar gravity magnitude g (mapped to the world vector (0, -g, 0); the
// convention is that local +y is "up").
func NewScene(g float64, roots []Frame) (*Scene, error) {
	if err := checkUniqueIDs(roots); err != nil {
		return nil, err
	}
	return &Scene{gravity: Vec3{0, -g, 0}, roots: roots}, nil
}

// Roots returns the scene's root frames, in declaration order.
func (s *Scene) Roots() []Frame { return s.roots }

// Gravity returns the world gravity vector (gx, gy, 0).
func (s *Scene) Gravity() Vec3 { return s.gravity }

func checkUniqueIDs(roots []Frame) error {
	seen := make(map[string]bool)
	var walk func(f Frame) error
	walk = func(f Frame) error {
		if seen[f.ID()] {
			return chk.Err("duplicate frame id: %q", f.ID())
		}
		seen[f.ID()] = true
		for _, c := range f.Children() {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		if err := walk(r); err != nil {
			return err
		}
	}
	return nil
}
