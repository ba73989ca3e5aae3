// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package texspace converts between UV coordinates and pixel coordinates
// of a W x H texture, honoring the v-flip convention, and converts an
// inward UV direction into a pixel-normalized direction so a band width
// expressed in pixels stays stable regardless of UV anisotropy.
//
// Package texspace is provided as part of the seamrepair texture tool.
package texspace

import "github.com/galvanized/seamrepair/math/lin"

// ToPixel maps UV coordinates to pixel coordinates of a W x H image. When
// vFlip is true (the default DCC convention, v=0 at the bottom), v is
// flipped so image row 0 is the top.
func ToPixel(uv lin.V2, w, h int, vFlip bool) (x, y float64) {
	v := uv.Y
	if vFlip {
		v = 1 - v
	}
	return uv.X * float64(w-1), v * float64(h-1)
}

// PixelDir converts a unit UV-space direction into a unit pixel-space
// direction by scaling componentwise by (w-1,h-1) and renormalizing. This
// keeps a band width specified in pixels from stretching or squashing
// when the texture is non-square or the UV chart is anisotropic.
func PixelDir(dir lin.V2, w, h int) lin.V2 {
	scaled := (&lin.V2{}).Mult(&dir, &lin.V2{X: float64(w - 1), Y: float64(h - 1)})
	scaled.Unit()
	return *scaled
}
