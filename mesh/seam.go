// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package mesh

// seam.go detects UV seams: 3D edges shared by exactly two triangles whose
// UV endpoints disagree. Boundary edges (one incident triangle) and
// non-manifold edges (three or more) are skipped; they have no second
// chart to reconcile against.

import (
	"github.com/galvanized/seamrepair/math/lin"
)

// uvDiffEpsilon is the maximum allowed per-component UV delta before two
// triangles are considered to agree on an edge's endpoints.
const uvDiffEpsilon = 1e-6

// SeamSide is one triangle's view of a shared edge: its two endpoints, in
// canonical endpoint order, plus the UV of the triangle's opposite corner
// (used to find the inward direction).
type SeamSide struct {
	UV0 lin.V2
	UV1 lin.V2
	UV2 lin.V2
}

// SeamPair is a detected UV discontinuity: two triangles sharing one 3D
// edge but disagreeing about its UV. A.UV0 and B.UV0 refer to the same
// canonical endpoint, as do A.UV1 and B.UV1.
type SeamPair struct {
	A SeamSide
	B SeamSide
}

type edgeKey struct{ lo, hi int }

type edgeOccurrence struct {
	tri        int
	i0, i1, i2 int // local corner indices: i0,i1 are the edge endpoints, i2 is opposite
}

// BuildSeamPairs canonicalizes mesh positions and returns one SeamPair per
// shared edge whose two incident triangles disagree on UV. Edges without
// exactly two incident triangles are not seams by this definition and are
// skipped.
func BuildSeamPairs(m *Mesh) ([]SeamPair, error) {
	canon := Canonicalize(m.Positions, DefaultEpsilon)

	edges := make(map[edgeKey][]edgeOccurrence)
	corners := [3][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
	for ti, tri := range m.Triangles {
		for _, c := range corners {
			a, b := canon[tri.V[c[0]]], canon[tri.V[c[1]]]
			key := edgeKey{lo: a, hi: b}
			if key.lo > key.hi {
				key.lo, key.hi = key.hi, key.lo
			}
			edges[key] = append(edges[key], edgeOccurrence{tri: ti, i0: c[0], i1: c[1], i2: c[2]})
		}
	}

	var pairs []SeamPair
	for _, occ := range edges {
		if len(occ) != 2 {
			continue
		}
		t0, t1 := m.Triangles[occ[0].tri], m.Triangles[occ[1].tri]
		key0, key1 := canon[t0.V[occ[0].i0]], canon[t0.V[occ[0].i1]]

		side0, err := sideFor(m, t0, occ[0], canon, key0, key1)
		if err != nil {
			return nil, err
		}
		side1, err := sideFor(m, t1, occ[1], canon, key0, key1)
		if err != nil {
			return nil, err
		}

		if side0.UV0.MaxAbsComponent(&side1.UV0) <= uvDiffEpsilon &&
			side0.UV1.MaxAbsComponent(&side1.UV1) <= uvDiffEpsilon {
			continue // same UV on both sides: no seam.
		}
		pairs = append(pairs, SeamPair{A: side0, B: side1})
	}
	return pairs, nil
}

// sideFor builds a SeamSide for triangle tri's view of the edge, reordering
// its endpoints so uv0 corresponds to canonical endpoint key0 and uv1 to
// key1 (matching the other triangle's view of the same edge).
func sideFor(m *Mesh, tri Triangle, occ edgeOccurrence, canon []int, key0, key1 int) (SeamSide, error) {
	uv0, err := m.UV(tri, occ.i0)
	if err != nil {
		return SeamSide{}, err
	}
	uv1, err := m.UV(tri, occ.i1)
	if err != nil {
		return SeamSide{}, err
	}
	uv2, err := m.UV(tri, occ.i2)
	if err != nil {
		return SeamSide{}, err
	}

	pos0 := canon[tri.V[occ.i0]]
	if pos0 != key0 {
		uv0, uv1 = uv1, uv0
	}
	return SeamSide{UV0: uv0, UV1: uv1, UV2: uv2}, nil
}
