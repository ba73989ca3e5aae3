// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "github.com/galvanized/seamrepair/math/lin"

// Dilate grows mask by `iterations` rounds of a 3x3 max filter. Pixels
// outside the image bounds are treated as unselected, never as wrapped
// neighbors.
func Dilate(m *Mask, iterations int) *Mask {
	cur := cloneMask(m)
	for i := 0; i < iterations; i++ {
		cur = morph3x3(cur, false)
	}
	return cur
}

// erode shrinks mask by `iterations` rounds of a 3x3 min filter. As with
// Dilate, out-of-bounds neighbors read as unselected, which also means a
// shape touching the image border erodes away there.
func erode(m *Mask, iterations int) *Mask {
	cur := cloneMask(m)
	for i := 0; i < iterations; i++ {
		cur = morph3x3(cur, true)
	}
	return cur
}

// morph3x3 applies one round of a 3x3 OR (all=false) or AND (all=true)
// morphological filter.
func morph3x3(m *Mask, all bool) *Mask {
	out := NewMask(m.W, m.H, false)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			acc := all
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := boundedAt(m, x+dx, y+dy)
					if all {
						acc = acc && v
					} else {
						acc = acc || v
					}
				}
			}
			out.Set(x, y, acc)
		}
	}
	return out
}

func boundedAt(m *Mask, x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.At(x, y)
}

func cloneMask(m *Mask) *Mask {
	out := &Mask{W: m.W, H: m.H, Pix: make([]bool, len(m.Pix))}
	copy(out.Pix, m.Pix)
	return out
}

// DistanceAlpha builds a feathering alpha from the erosion distance of hit
// towards its boundary: alpha is 0 right at the edge of the hit region and
// ramps to 1 over featherPx pixels of inward erosion. The erosion runs only
// inside the bounding box of hit expanded by featherPx+2; pixels outside
// that box get alpha 0, matching a crop rather than a whole-buffer erosion.
func DistanceAlpha(hit *Mask, featherPx int) *Scalar {
	alpha := NewScalar(hit.W, hit.H)
	if featherPx <= 0 || !hit.Any() {
		for i, v := range hit.Pix {
			if v {
				alpha.Pix[i] = 1
			}
		}
		return alpha
	}

	x0, y0, x1, y1 := hitBBox(hit)
	pad := featherPx + 2
	x0 = maxInt(0, x0-pad)
	y0 = maxInt(0, y0-pad)
	x1 = minInt(hit.W-1, x1+pad)
	y1 = minInt(hit.H-1, y1+pad)

	dist := make([]float64, len(hit.Pix))
	for i := range dist {
		dist[i] = float64(featherPx)
	}
	curr := cloneMaskROI(hit, x0, y0, x1, y1)
	for k := 0; k < featherPx; k++ {
		if !curr.Any() {
			break
		}
		eroded := erode(curr, 1)
		for i := range dist {
			if curr.Pix[i] && !eroded.Pix[i] {
				dist[i] = float64(k)
			}
		}
		curr = eroded
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			i := y*hit.W + x
			alpha.Pix[i] = lin.Clamp(dist[i]/float64(featherPx), 0, 1)
		}
	}
	return alpha
}

// hitBBox returns the inclusive pixel bounding box of the true pixels of m.
// Callers must check m.Any() first.
func hitBBox(m *Mask) (x0, y0, x1, y1 int) {
	x0, y0 = m.W, m.H
	x1, y1 = -1, -1
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.At(x, y) {
				continue
			}
			if x < x0 {
				x0 = x
			}
			if x > x1 {
				x1 = x
			}
			if y < y0 {
				y0 = y
			}
			if y > y1 {
				y1 = y
			}
		}
	}
	return x0, y0, x1, y1
}

// cloneMaskROI copies m but clears every pixel outside [x0,x1]x[y0,y1],
// so erosion run on the result cannot be influenced by hit pixels beyond
// the crop window.
func cloneMaskROI(m *Mask, x0, y0, x1, y1 int) *Mask {
	out := NewMask(m.W, m.H, false)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			out.Set(x, y, m.At(x, y))
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// WeightAlpha builds a feathering alpha directly from the splat weight
// accumulator: pixels that received more overlapping splats get alpha
// closer to 1.
func WeightAlpha(wacc *Scalar) *Scalar {
	alpha := NewScalar(wacc.W, wacc.H)
	for i, w := range wacc.Pix {
		alpha.Pix[i] = lin.Clamp(w/(w+0.25), 0, 1)
	}
	return alpha
}

// Hit derives the hit region: pixels where the weight accumulator is
// strictly positive.
func Hit(wacc *Scalar) *Mask {
	m := NewMask(wacc.W, wacc.H, false)
	for i, w := range wacc.Pix {
		m.Pix[i] = w > 0
	}
	return m
}
