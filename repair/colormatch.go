// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package repair

import (
	"github.com/galvanized/seamrepair/math/lin"
	"github.com/galvanized/seamrepair/mesh"
	"github.com/galvanized/seamrepair/raster"
	"github.com/galvanized/seamrepair/stats"
	"github.com/galvanized/seamrepair/texspace"
)

// colorMatch is the (mean_a, mean_b, scale) triple used to map a seam's B
// side onto its A side's color distribution: matched = (col-meanB)*scale+meanA.
type colorMatch struct {
	meanA, meanB, scale [3]float64
}

var identityMatch = colorMatch{scale: [3]float64{1, 1, 1}}

// sampleSeamStats accumulates ns tangential samples at depths [0, maxDepth]
// along both sides of pair into sa (side A) and sb (side B), in pixel space.
func sampleSeamStats(work *raster.Image, pair mesh.SeamPair, w, h int, vFlip bool, ns, maxDepth int, sa, sb *stats.Vec3) {
	dirAPx := texspace.PixelDir(pair.A.InwardDir(), w, h)
	dirBPx := texspace.PixelDir(pair.B.InwardDir(), w, h)

	for si := 0; si < ns; si++ {
		t := (float64(si) + 0.5) / float64(ns)
		edgeA := (&lin.V2{}).Lerp(&pair.A.UV0, &pair.A.UV1, t)
		edgeB := (&lin.V2{}).Lerp(&pair.B.UV0, &pair.B.UV1, t)
		for d := 0; d <= maxDepth; d++ {
			xa, ya := samplePixel(*edgeA, dirAPx, float64(d), w, h, vFlip)
			xb, yb := samplePixel(*edgeB, dirBPx, float64(d), w, h, vFlip)
			sa.Add(work.Bilinear(xa, ya))
			sb.Add(work.Bilinear(xb, yb))
		}
	}
}

// samplePixel returns the pixel coordinates of the point offset `depth`
// pixels inward from edgeUV along dirPx, a direction already expressed in
// pixel space.
func samplePixel(edgeUV lin.V2, dirPx lin.V2, depth float64, w, h int, vFlip bool) (x, y float64) {
	offset := lin.V2{
		X: dirPx.X * depth / float64(w-1),
		Y: dirPx.Y * depth / float64(h-1),
	}
	uv := (&lin.V2{}).Add(&edgeUV, &offset)
	return texspace.ToPixel(*uv, w, h, vFlip)
}

// globalMatch computes the single color mapping shared by every seam under
// color_match=meanvar: ns=18 tangential samples, depths in [0, min(2, band_px-1)].
func globalMatch(work *raster.Image, pairs []mesh.SeamPair, w, h int, vFlip bool, bandPx int) colorMatch {
	var sa, sb stats.Vec3
	maxDepth := minInt(2, maxInt(0, bandPx-1))
	for _, pair := range pairs {
		sampleSeamStats(work, pair, w, h, vFlip, 18, maxDepth, &sa, &sb)
	}
	meanA, meanB, scale := stats.Match(&sa, &sb)
	return colorMatch{meanA: meanA, meanB: meanB, scale: scale}
}

// perSeamMatch computes a color mapping for a single seam under
// color_match=meanvar_edge: ns=24 tangential samples, depths in [0, min(3, band_px-1)].
func perSeamMatch(work *raster.Image, pair mesh.SeamPair, w, h int, vFlip bool, bandPx int) colorMatch {
	var sa, sb stats.Vec3
	maxDepth := minInt(3, maxInt(0, bandPx-1))
	sampleSeamStats(work, pair, w, h, vFlip, 24, maxDepth, &sa, &sb)
	meanA, meanB, scale := stats.Match(&sa, &sb)
	return colorMatch{meanA: meanA, meanB: meanB, scale: scale}
}

func applyMatch(m colorMatch, col [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = (col[i]-m.meanB[i])*m.scale[i] + m.meanA[i]
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
