// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo derives, once per solver instantiation, the topology index
// of a scene's frame forest: a depth-sorted linear ordering, an id-to-index
// map, and a per-frame root-to-self index path. The rest of the core
// (kin, assembly, integrate) is expressed entirely in terms of this index —
// frames never carry a parent back-pointer.
package topo

import "github.com/cpmech/planarfem/mech"

// Index is the derived topology of a scene's frame forest.
type Index struct {
	Sorted []mech.Frame   // frames in parent-before-child order
	ByID   map[string]int // frame id -> position in Sorted
	Paths  [][]int        // Paths[i] is the root-to-self index path of frame i
}

// N returns the number of frames (== the number of generalized coordinates).
func (idx *Index) N() int { return len(idx.Sorted) }

// Build derives the topology index for a forest of root frames. It never
// returns an error for a well-formed forest; scene-level validation (unique
// ids) has already happened in mech.NewScene.
func Build(roots []mech.Frame) *Index {
	sorted := sortFrames(roots)
	byID := make(map[string]int, len(sorted))
	for i, f := range sorted {
		byID[f.ID()] = i
	}
	paths := buildPaths(roots, byID)
	return &Index{Sorted: sorted, ByID: byID, Paths: paths}
}

// sortFrames produces a parent-before-child ordering: depth-first visit
// each root, appending each frame *after* recursively visiting its
// children, then reverse the whole list. The result has every parent
// appearing before all of its descendants; because of the reversal, later
// roots' trees come before earlier roots' trees.
func sortFrames(roots []mech.Frame) []mech.Frame {
	var postorder []mech.Frame
	var visit func(f mech.Frame)
	visit = func(f mech.Frame) {
		for _, c := range f.Children() {
			visit(c)
		}
		postorder = append(postorder, f)
	}
	for _, r := range roots {
		visit(r)
	}
	reversed := make([]mech.Frame, len(postorder))
	for i, f := range postorder {
		reversed[len(postorder)-1-i] = f
	}
	return reversed
}

// buildPaths walks the original tree, carrying a path prefix of indices.
// The first visit to a given index wins: this makes the routine robust to
// accidental sharing of a frame between two parents, even though
// well-formed inputs never exhibit that.
func buildPaths(roots []mech.Frame, byID map[string]int) [][]int {
	paths := make([][]int, len(byID))
	var visit func(f mech.Frame, prefix []int)
	visit = func(f mech.Frame, prefix []int) {
		i := byID[f.ID()]
		if paths[i] != nil {
			return
		}
		path := append(append([]int{}, prefix...), i)
		paths[i] = path
		for _, c := range f.Children() {
			visit(c, path)
		}
	}
	for _, r := range roots {
		visit(r, nil)
	}
	return paths
}

// ParentIndex returns the index of frame i's parent, and false if i is a
// root.
func (idx *Index) ParentIndex(i int) (int, bool) {
	p := idx.Paths[i]
	if len(p) < 2 {
		return 0, false
	}
	return p[len(p)-2], true
}

// AncestorContains reports whether path contains index i (linear scan).
func AncestorContains(path []int, i int) bool {
	for _, p := range path {
		if p == i {
			return true
		}
	}
	return false
}

// IsDescendant reports whether frame c is a descendant-or-self of frame r.
func (idx *Index) IsDescendant(r, c int) bool {
	return AncestorContains(idx.Paths[c], r)
}

// Descendants returns all indices j >= i whose path contains i (including i
// itself).
func (idx *Index) Descendants(i int) []int {
	var out []int
	for j := i; j < idx.N(); j++ {
		if AncestorContains(idx.Paths[j], i) {
			out = append(out, j)
		}
	}
	return out
}
