package sceneio

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// TestParsePositionBoundaryCases checks parsePosition's accepted forms and
// exact error wording.
func TestParsePositionBoundaryCases(t *testing.T) {
	chk.PrintTitle("parse boundary cases")

	pos, err := parsePosition([]byte("[12.0, 34.5]"))
	if err != nil {
		t.Fatal(err)
	}
	chk.Scalar(t, "x", 1e-12, pos[0], 12.0)
	chk.Scalar(t, "y", 1e-12, pos[1], 34.5)

	pos, err = parsePosition([]byte("[12, 34]"))
	if err != nil {
		t.Fatal(err)
	}
	chk.Scalar(t, "x", 1e-12, pos[0], 12.0)
	chk.Scalar(t, "y", 1e-12, pos[1], 34.0)

	_, err = parsePosition([]byte("[true, false]"))
	requireErrContains(t, err, "Expected f64 value; got true")

	_, err = parsePosition([]byte("{}"))
	requireErrContains(t, err, "Expected position array; got {}")

	_, err = parsePosition([]byte("[1.0, 2.0, 3.0]"))
	requireErrContains(t, err, "Expected position array with length 2; got [1.0,2.0,3.0]")
}

func requireErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error containing %q, got nil", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not contain %q", err.Error(), want)
	}
}

func TestParseInvalidFrameType(t *testing.T) {
	chk.PrintTitle("invalid frame type")
	doc := `{"frames":[{"type":"BogusFrame","id":"x"}]}`
	_, err := ParseBytes([]byte(doc))
	requireErrContains(t, err, "Invalid frame type: BogusFrame")
}

func TestParseFullScene(t *testing.T) {
	chk.PrintTitle("parse full scene")
	doc := `{
		"gravity": 9.8,
		"frames": [
			{
				"type": "TrackFrame",
				"id": "cart",
				"angle": 0,
				"initialState": [0.1, 0.2],
				"frames": [
					{
						"type": "RotationalFrame",
						"id": "arm",
						"resistance": 0.05,
						"weights": [
							{"mass": 2, "drag": 0.1, "position": [1, 0]}
						]
					}
				]
			}
		]
	}`
	d, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Scene.Roots()) != 1 {
		t.Fatalf("expected 1 root, got %d", len(d.Scene.Roots()))
	}
	st, ok := d.InitialStates["cart"]
	if !ok {
		t.Fatal("expected an initial state for \"cart\"")
	}
	chk.Scalar(t, "cart q", 1e-12, st[0], 0.1)
	chk.Scalar(t, "cart qd", 1e-12, st[1], 0.2)
	if d.RungeKutta {
		t.Fatal("expected rungeKutta to default to false")
	}
	armSt, ok := d.InitialStates["arm"]
	if !ok {
		t.Fatal("expected a default initial state for \"arm\"")
	}
	chk.Scalar(t, "arm q default", 1e-12, armSt[0], 0)
	chk.Scalar(t, "arm qd default", 1e-12, armSt[1], 0)
}

func TestParseDefaultsGravity(t *testing.T) {
	chk.PrintTitle("parse defaults gravity")
	d, err := ParseBytes([]byte(`{"frames":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	chk.Scalar(t, "gravity y", 1e-12, d.Scene.Gravity()[1], -10)
}

func TestParseMissingTypeField(t *testing.T) {
	chk.PrintTitle("parse missing type field")
	_, err := ParseBytes([]byte(`{"frames":[{"id":"x"}]}`))
	if err == nil {
		t.Fatal("expected an error for a frame missing \"type\"")
	}
}

func TestParseDuplicateFrameIDsRejected(t *testing.T) {
	chk.PrintTitle("parse duplicate frame ids rejected")
	doc := `{"frames":[
		{"type":"RotationalFrame","id":"dup"},
		{"type":"RotationalFrame","id":"dup"}
	]}`
	_, err := ParseBytes([]byte(doc))
	if err == nil {
		t.Fatal("expected duplicate frame ids to be rejected")
	}
}
