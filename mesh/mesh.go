// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package mesh decodes a Wavefront OBJ stream into positions, UVs, and
// triangles, and derives the 3D-edge adjacency needed to find UV seams.
//
// Package mesh is provided as part of the seamrepair texture tool.
package mesh

import (
	"errors"

	"github.com/galvanized/seamrepair/math/lin"
)

// Sentinel errors surfaced by Parse and the seam detector. All are terminal:
// the caller halts processing rather than attempting partial recovery.
var (
	// ErrMissingUVs is returned when the OBJ stream has no vt directives.
	ErrMissingUVs = errors.New("mesh: obj has no vt (UV) data")
	// ErrNoFaces is returned when the OBJ stream produced no triangles.
	ErrNoFaces = errors.New("mesh: obj has no faces")
	// ErrFaceMissingUV is returned when a face corner lacks a UV index
	// where UVs are required (shared-edge seam detection).
	ErrFaceMissingUV = errors.New("mesh: face corner missing UV index")
)

// Triangle is a single fan-triangulated face. V holds 0-based position
// indices; VT holds 0-based UV indices, or -1 for a corner without a UV.
type Triangle struct {
	V  [3]int
	VT [3]int
}

// Mesh is the decoded, immutable result of parsing an OBJ stream.
type Mesh struct {
	Positions []lin.V3
	UVs       []lin.V2
	Triangles []Triangle
}

// UV returns the UV vertex for triangle corner `corner` (0,1,2), and
// ErrFaceMissingUV if the corner has no UV index.
func (m *Mesh) UV(tri Triangle, corner int) (lin.V2, error) {
	idx := tri.VT[corner]
	if idx < 0 {
		return lin.V2{}, ErrFaceMissingUV
	}
	return m.UVs[idx], nil
}
