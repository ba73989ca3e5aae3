// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/galvanized/seamrepair/math/lin"
)

// DefaultEpsilon is the quantization tolerance used to merge near-duplicate
// 3D positions into a single canonical id.
const DefaultEpsilon = 1e-5

// posKey is the quantized (x,y,z) used to bucket coincident positions.
type posKey struct{ x, y, z int64 }

// Canonicalize assigns each position an integer id by rounding every
// coordinate to the nearest multiple of eps (halves round up); positions
// whose rounded coordinates all match share the same id. Two positions
// closer than eps can still round to different multiples and get different
// ids. Ids are assigned in first-seen order. This lets UV-duplicated vertices (split
// apart to carry different texture coordinates across a seam) be
// recognized as the same node of the 3D adjacency graph.
func Canonicalize(positions []lin.V3, eps float64) []int {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	scale := 1.0 / eps
	table := make(map[posKey]int, len(positions))
	canon := make([]int, len(positions))
	next := 0
	for i, p := range positions {
		key := posKey{
			x: quantize(p.X, scale),
			y: quantize(p.Y, scale),
			z: quantize(p.Z, scale),
		}
		id, ok := table[key]
		if !ok {
			id = next
			table[key] = id
			next++
		}
		canon[i] = id
	}
	return canon
}

func quantize(v, scale float64) int64 {
	return int64(math.Floor(v*scale + 0.5))
}
