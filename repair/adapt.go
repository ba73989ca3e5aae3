// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package repair

import (
	"image"
	"image/color"

	"github.com/galvanized/seamrepair/colorspace"
	"github.com/galvanized/seamrepair/raster"
)

// decode converts src into the working color space for kind, returning the
// working-space image alongside the source's untouched 8-bit alpha plane
// (row-major, one byte per pixel).
func decode(src image.Image, kind colorspace.Kind) (*raster.Image, []uint8, error) {
	if src == nil {
		return nil, nil, ErrImage
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, nil, ErrImage
	}

	work := raster.NewImage(w, h)
	alpha := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Straight (non-premultiplied) RGB: .RGBA() returns
			// alpha-premultiplied channels, which would darken partially
			// transparent pixels before they ever reach the color-space
			// adapter.
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			rgb := [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
			working, err := colorspace.ToWorking(kind, rgb)
			if err != nil {
				return nil, nil, err
			}
			work.Set(x, y, working)
			alpha[y*w+x] = c.A
		}
	}
	return work, alpha, nil
}

// encode inverts decode: it maps a working-space image back to stored RGB
// via kind's adapter, reattaches the untouched alpha plane, and quantizes
// to 8 bits with round(x*255) clipped to [0,255].
func encode(work *raster.Image, alpha []uint8, kind colorspace.Kind) (*image.RGBA, error) {
	out := image.NewRGBA(image.Rect(0, 0, work.W, work.H))
	for y := 0; y < work.H; y++ {
		for x := 0; x < work.W; x++ {
			rgb, err := colorspace.FromWorking(kind, work.At(x, y))
			if err != nil {
				return nil, err
			}
			out.SetRGBA(x, y, color.RGBA{
				R: quantize(rgb[0]),
				G: quantize(rgb[1]),
				B: quantize(rgb[2]),
				A: alpha[y*work.W+x],
			})
		}
	}
	return out, nil
}

// cloneRGBA copies src pixel-for-pixel into a freshly allocated RGBA image,
// used for the identity (band_px == 0) path so output matches input
// bit-exactly without any color-space round trip.
func cloneRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

func quantize(x float64) uint8 {
	v := x*255 + 0.5
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
