// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package mask builds the boolean seam-selection mask that gates where the
// band splatter is allowed to write, and decides which detected seams
// participate given that mask.
//
// Package mask is provided as part of the seamrepair texture tool.
package mask

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/galvanized/seamrepair/math/lin"
	"github.com/galvanized/seamrepair/mesh"
	"github.com/galvanized/seamrepair/raster"
	"github.com/galvanized/seamrepair/texspace"
)

// Build resamples src to w x h with nearest-neighbor, converts to
// grayscale, and thresholds at threshold (0..255). When src is nil the
// mask is all-true, matching the no-mask-given case.
func Build(src image.Image, w, h, threshold int) *raster.Mask {
	if src == nil {
		return raster.NewMask(w, h, true)
	}

	resized := image.NewGray(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(resized, resized.Bounds(), src, src.Bounds(), draw.Src, nil)

	m := raster.NewMask(w, h, false)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if int(resized.GrayAt(x, y).Y) >= threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Band dilates m by bandPx iterations of the 3x3 morphological max filter
// so the mask covers the entire synchronization band, not just the
// seam-adjacent pixel.
func Band(m *raster.Mask, bandPx int) *raster.Mask {
	if bandPx <= 0 {
		return m
	}
	return raster.Dilate(m, bandPx)
}

// seamSampleTs are the tangential positions sampled along a seam edge when
// deciding whether it overlaps the selection mask.
var seamSampleTs = []float64{0.1, 0.3, 0.5, 0.7, 0.9}

// Select filters pairs down to the seams that should be repaired. When
// onlyMasked is false every seam is selected; Repair passes it as true only
// when a mask image was given. Otherwise a seam is selected only if at
// least one of the sample points on either side lands inside m.
func Select(pairs []mesh.SeamPair, m *raster.Mask, w, h int, vFlip, onlyMasked bool) []mesh.SeamPair {
	if !onlyMasked {
		return pairs
	}
	var out []mesh.SeamPair
	for _, p := range pairs {
		if overlaps(p.A, m, w, h, vFlip) || overlaps(p.B, m, w, h, vFlip) {
			out = append(out, p)
		}
	}
	return out
}

func overlaps(side mesh.SeamSide, m *raster.Mask, w, h int, vFlip bool) bool {
	for _, t := range seamSampleTs {
		uv := (&lin.V2{}).Lerp(&side.UV0, &side.UV1, t)
		x, y := texspace.ToPixel(*uv, w, h, vFlip)
		px, py := sampleIndex(x, w), sampleIndex(y, h)
		if px < 0 || py < 0 {
			continue
		}
		if m.At(px, py) {
			return true
		}
	}
	return false
}

// sampleIndex rounds v to a pixel index, returning -1 when it falls outside
// [0,n) rather than clamping to the border — an off-image sample is simply
// not tested, matching the reference seam-selection check.
func sampleIndex(v float64, n int) int {
	i := int(math.Floor(v + 0.5))
	if i < 0 || i >= n {
		return -1
	}
	return i
}
