// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneio decodes a scene JSON document into a mech.Scene plus the
// per-frame initial (q, q̇) state and the rungeKutta toggle. Decoding is
// hand-rolled over json.RawMessage (not a single json.Unmarshal into a
// tagged struct) so that every malformed field produces a precise,
// structured error message naming the offending value.
package sceneio

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/planarfem/mech"
)

// Document is the decoded scene document.
type Document struct {
	Scene         *mech.Scene
	InitialStates map[string][2]float64 // per frame id; absent id means (0,0)
	RungeKutta    bool
}

// Parse reads and decodes the scene document at path.
func Parse(path string) (*Document, error) {
	b, err := utl.ReadFile(path)
	if err != nil {
		return nil, chk.Err("sceneio: cannot read %q: %v", path, err)
	}
	return ParseBytes(b)
}

// ParseBytes decodes a scene document from raw JSON bytes.
func ParseBytes(data []byte) (*Document, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, chk.Err("Expected JSON object; got %s", compact(data))
	}

	gravity := mech.DefaultGravity
	if g, ok := obj["gravity"]; ok {
		v, err := parseF64(g)
		if err != nil {
			return nil, err
		}
		gravity = v
	}

	rungeKutta := false
	if r, ok := obj["rungeKutta"]; ok {
		if err := json.Unmarshal(r, &rungeKutta); err != nil {
			return nil, chk.Err("Expected bool value; got %s", compact(r))
		}
	}

	initialStates := make(map[string][2]float64)
	var roots []mech.Frame
	if fr, ok := obj["frames"]; ok {
		elems, err := parseArray(fr)
		if err != nil {
			return nil, err
		}
		for _, el := range elems {
			f, err := parseFrame(el, initialStates)
			if err != nil {
				return nil, err
			}
			roots = append(roots, f)
		}
	}

	scene, err := mech.NewScene(gravity, roots)
	if err != nil {
		return nil, err
	}
	return &Document{Scene: scene, InitialStates: initialStates, RungeKutta: rungeKutta}, nil
}

func parseFrame(raw json.RawMessage, initialStates map[string][2]float64) (mech.Frame, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, chk.Err("Expected JSON object; got %s", compact(raw))
	}

	typeRaw, ok := obj["type"]
	if !ok {
		return nil, chk.Err("frame missing required field \"type\": %s", compact(raw))
	}
	var typeName string
	if err := json.Unmarshal(typeRaw, &typeName); err != nil {
		return nil, chk.Err("Invalid frame type: %s", compact(typeRaw))
	}

	idRaw, ok := obj["id"]
	if !ok {
		return nil, chk.Err("frame missing required field \"id\": %s", compact(raw))
	}
	var id string
	if err := json.Unmarshal(idRaw, &id); err != nil {
		return nil, chk.Err("Expected string value; got %s", compact(idRaw))
	}

	pos := [2]float64{0, 0}
	if p, ok := obj["position"]; ok {
		v, err := parsePosition(p)
		if err != nil {
			return nil, err
		}
		pos = v
	}

	resistance := 0.0
	if r, ok := obj["resistance"]; ok {
		v, err := parseF64(r)
		if err != nil {
			return nil, err
		}
		resistance = v
	}

	initState := [2]float64{0, 0}
	if is, ok := obj["initialState"]; ok {
		v, err := parsePosition(is)
		if err != nil {
			return nil, err
		}
		initState = v
	}

	weights, err := parseWeights(obj)
	if err != nil {
		return nil, err
	}

	var children []mech.Frame
	if cr, ok := obj["frames"]; ok {
		elems, err := parseArray(cr)
		if err != nil {
			return nil, err
		}
		for _, el := range elems {
			c, err := parseFrame(el, initialStates)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
	}

	var frame mech.Frame
	switch typeName {
	case "RotationalFrame":
		f, err := mech.NewRotationalFrame(id, resistance, pos, weights, children)
		if err != nil {
			return nil, err
		}
		frame = f
	case "TrackFrame":
		angle := 0.0
		if a, ok := obj["angle"]; ok {
			v, err := parseF64(a)
			if err != nil {
				return nil, err
			}
			angle = v
		}
		f, err := mech.NewTrackFrame(id, resistance, angle, pos, weights, children)
		if err != nil {
			return nil, err
		}
		frame = f
	default:
		return nil, chk.Err("Invalid frame type: %s", typeName)
	}

	initialStates[id] = initState
	return frame, nil
}

func parseWeights(obj map[string]json.RawMessage) ([]mech.Weight, error) {
	wr, ok := obj["weights"]
	if !ok {
		return nil, nil
	}
	elems, err := parseArray(wr)
	if err != nil {
		return nil, err
	}
	weights := make([]mech.Weight, 0, len(elems))
	for _, el := range elems {
		w, err := parseWeight(el)
		if err != nil {
			return nil, err
		}
		weights = append(weights, w)
	}
	return weights, nil
}

func parseWeight(raw json.RawMessage) (mech.Weight, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return mech.Weight{}, chk.Err("Expected JSON object; got %s", compact(raw))
	}
	mass := 1.0
	if m, ok := obj["mass"]; ok {
		v, err := parseF64(m)
		if err != nil {
			return mech.Weight{}, err
		}
		mass = v
	}
	drag := 0.0
	if d, ok := obj["drag"]; ok {
		v, err := parseF64(d)
		if err != nil {
			return mech.Weight{}, err
		}
		drag = v
	}
	pos := [2]float64{0, 0}
	if p, ok := obj["position"]; ok {
		v, err := parsePosition(p)
		if err != nil {
			return mech.Weight{}, err
		}
		pos = v
	}
	return mech.NewWeight(mass, drag, pos)
}

// parseArray decodes raw into a slice of its elements as json.RawMessage,
// reporting a structured error if raw is not a JSON array.
func parseArray(raw json.RawMessage) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, chk.Err("Expected JSON array; got %s", compact(raw))
	}
	return arr, nil
}

// parseF64 decodes raw as a JSON number.
func parseF64(raw json.RawMessage) (float64, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, chk.Err("Expected f64 value; got %s", compact(raw))
	}
	return v, nil
}

// parsePosition decodes raw as a 2-element array of f64: "Expected position
// array; got <json>" if raw is not an array at all, "Expected position
// array with length 2; got <json>" if it is an array of the wrong length,
// and parseF64's own error if an element is not numeric.
func parsePosition(raw json.RawMessage) ([2]float64, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return [2]float64{}, chk.Err("Expected position array; got %s", compact(raw))
	}
	if len(arr) != 2 {
		return [2]float64{}, chk.Err("Expected position array with length 2; got %s", compact(raw))
	}
	var pos [2]float64
	for i, el := range arr {
		v, err := parseF64(el)
		if err != nil {
			return [2]float64{}, err
		}
		pos[i] = v
	}
	return pos, nil
}

// compact re-renders raw without insignificant whitespace, so error
// messages echo a value's canonical form (e.g. "[1.0,2.0,3.0]", not
// "[1.0, 2.0, 3.0]").
func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
