// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

// BoxFilter averages a with a (2r+1)x(2r+1) box filter using prefix sums,
// padding the edges by replication rather than wrapping. A separable
// horizontal-then-vertical pass keeps the cost linear in pixel count
// regardless of r.
func BoxFilter(a *Scalar, r int) *Scalar {
	if r <= 0 {
		out := NewScalar(a.W, a.H)
		copy(out.Pix, a.Pix)
		return out
	}
	return boxVertical(boxHorizontal(a, r), r)
}

func boxHorizontal(a *Scalar, r int) *Scalar {
	out := NewScalar(a.W, a.H)
	window := 2*r + 1
	row := make([]float64, a.W+2*r)
	prefix := make([]float64, a.W+2*r+1)
	for y := 0; y < a.H; y++ {
		for x := -r; x < a.W+r; x++ {
			row[x+r] = a.At(clampInt(x, a.W), y)
		}
		prefix[0] = 0
		for i, v := range row {
			prefix[i+1] = prefix[i] + v
		}
		for x := 0; x < a.W; x++ {
			out.Set(x, y, (prefix[x+window]-prefix[x])/float64(window))
		}
	}
	return out
}

func boxVertical(a *Scalar, r int) *Scalar {
	out := NewScalar(a.W, a.H)
	window := 2*r + 1
	col := make([]float64, a.H+2*r)
	prefix := make([]float64, a.H+2*r+1)
	for x := 0; x < a.W; x++ {
		for y := -r; y < a.H+r; y++ {
			col[y+r] = a.At(x, clampInt(y, a.H))
		}
		prefix[0] = 0
		for i, v := range col {
			prefix[i+1] = prefix[i] + v
		}
		for y := 0; y < a.H; y++ {
			out.Set(x, y, (prefix[y+window]-prefix[y])/float64(window))
		}
	}
	return out
}

func mulScalar(a, b *Scalar) *Scalar {
	out := NewScalar(a.W, a.H)
	for i := range out.Pix {
		out.Pix[i] = a.Pix[i] * b.Pix[i]
	}
	return out
}
