// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "github.com/galvanized/seamrepair/math/lin"

// Splat distributes one sample to its four neighboring pixels using
// bilinear weights, scaled by w. Each of the four neighbors only receives
// its share when mask is true there; a pixel masked out is left
// untouched, so the accumulator and weight buffer only ever grow where
// the caller has selected.
func Splat(acc *Image, wacc *Scalar, mask *Mask, x, y float64, col [3]float64, w float64) {
	width, height := wacc.W, wacc.H
	if width <= 0 || height <= 0 {
		return
	}
	x = lin.Clamp(x, 0, float64(width-1))
	y = lin.Clamp(y, 0, float64(height-1))
	x0 := int(x)
	y0 := int(y)
	x1 := minInt(x0+1, width-1)
	y1 := minInt(y0+1, height-1)
	tx := x - float64(x0)
	ty := y - float64(y0)

	w00 := (1 - tx) * (1 - ty) * w
	w10 := tx * (1 - ty) * w
	w01 := (1 - tx) * ty * w
	w11 := tx * ty * w

	splatOne(acc, wacc, mask, x0, y0, col, w00)
	splatOne(acc, wacc, mask, x1, y0, col, w10)
	splatOne(acc, wacc, mask, x0, y1, col, w01)
	splatOne(acc, wacc, mask, x1, y1, col, w11)
}

func splatOne(acc *Image, wacc *Scalar, mask *Mask, x, y int, col [3]float64, w float64) {
	if w <= 0 || !mask.At(x, y) {
		return
	}
	acc.Add(x, y, [3]float64{col[0] * w, col[1] * w, col[2] * w})
	wacc.Add(x, y, w)
}
