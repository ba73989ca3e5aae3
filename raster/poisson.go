// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

// Laplacian computes the 4-neighbor discrete Laplacian of im using
// edge-replicated padding, so no pixel ever reads a neighbor from the
// opposite edge of the image.
func Laplacian(im *Image) *Image {
	out := NewImage(im.W, im.H)
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			c := im.At(x, y)
			up := im.At(x, edgeClamp(y-1, im.H))
			dn := im.At(x, edgeClamp(y+1, im.H))
			lf := im.At(edgeClamp(x-1, im.W), y)
			rt := im.At(edgeClamp(x+1, im.W), y)
			var l [3]float64
			for k := 0; k < 3; k++ {
				l[k] = -4*c[k] + up[k] + dn[k] + lf[k] + rt[k]
			}
			out.Set(x, y, l)
		}
	}
	return out
}

// PoissonBlend runs a Jacobi relaxation solving Δu = Δguide over the
// region selected by mask, with src providing the Dirichlet boundary
// (and the value used anywhere mask is false). The mask's one-pixel
// border is always forced false: the outermost ring of the region acts
// as the boundary condition, never as unknowns to solve for.
func PoissonBlend(src, guide *Image, mask *Mask, iters int) *Image {
	if iters <= 0 || !mask.Any() {
		return guide
	}
	interior := cloneMask(mask)
	for x := 0; x < interior.W; x++ {
		interior.Set(x, 0, false)
		interior.Set(x, interior.H-1, false)
	}
	for y := 0; y < interior.H; y++ {
		interior.Set(0, y, false)
		interior.Set(interior.W-1, y, false)
	}

	u := NewImage(guide.W, guide.H)
	copy(u.Pix, guide.Pix)
	lap := Laplacian(guide)

	for iter := 0; iter < iters; iter++ {
		next := NewImage(u.W, u.H)
		for y := 0; y < u.H; y++ {
			for x := 0; x < u.W; x++ {
				if !interior.At(x, y) {
					next.Set(x, y, src.At(x, y))
					continue
				}
				up := u.At(x, y-1)
				dn := u.At(x, y+1)
				lf := u.At(x-1, y)
				rt := u.At(x+1, y)
				l := lap.At(x, y)
				var v [3]float64
				for k := 0; k < 3; k++ {
					v[k] = (up[k] + dn[k] + lf[k] + rt[k] - l[k]) / 4
				}
				next.Set(x, y, v)
			}
		}
		u = next
	}
	return u
}

func edgeClamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
