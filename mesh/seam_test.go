// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package mesh

import (
	"strings"
	"testing"

	"github.com/galvanized/seamrepair/math/lin"
)

func vv(x, y float64) lin.V2 { return *(&lin.V2{}).SetS(x, y) }

func TestBuildSeamPairsDetectsSplitEdge(t *testing.T) {
	m, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pairs, err := BuildSeamPairs(m)
	if err != nil {
		t.Fatalf("BuildSeamPairs: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	p := pairs[0]
	if p.A.UV0.Aeq(&p.B.UV0) && p.A.UV1.Aeq(&p.B.UV1) {
		t.Errorf("seam pair endpoints should differ in UV")
	}
}

func TestBuildSeamPairsNoSeamWhenUVsMatch(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3
f 1/1 3/3 4/4
`
	m, err := Parse(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pairs, err := BuildSeamPairs(m)
	if err != nil {
		t.Fatalf("BuildSeamPairs: %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("pairs = %d, want 0 (shared UVs, no seam)", len(pairs))
	}
}

func TestBuildSeamPairsSkipsBoundaryEdges(t *testing.T) {
	// A single triangle has 3 boundary edges and no seams.
	obj := `
v 0 0 0
v 1 0 0
v 1 1 0
vt 0 0
vt 1 0
vt 1 1
f 1/1 2/2 3/3
`
	m, err := Parse(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pairs, err := BuildSeamPairs(m)
	if err != nil {
		t.Fatalf("BuildSeamPairs: %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("pairs = %d, want 0 (all edges boundary)", len(pairs))
	}
}

func TestInwardDirPointsAtOppositeCorner(t *testing.T) {
	side := SeamSide{
		UV0: vv(0, 0),
		UV1: vv(1, 0),
		UV2: vv(0.5, 1),
	}
	dir := side.InwardDir()
	if dir.Y <= 0 {
		t.Errorf("inward dir should point towards +Y (opposite corner), got %+v", dir)
	}
}
