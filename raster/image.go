// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package raster provides the pixel-level primitives the seam repair
// engine is built from: bilinear gather and scatter, box filtering, a
// guided filter, and a Jacobi Poisson solve. The box filter and Laplacian
// stencils use edge-replicated padding; the morphological dilate and erode
// read out-of-bounds neighbors as unselected, so erosion also shrinks a
// shape where it touches the image border. None of these buffers are
// toroidal, so no operation here ever wraps around an edge.
//
// Package raster is provided as part of the seamrepair texture tool.
package raster

import "github.com/galvanized/seamrepair/math/lin"

// Image is an H x W x 3 scalar buffer in some working color space.
type Image struct {
	W, H int
	Pix  []float64 // row-major, 3 floats per pixel
}

// NewImage allocates a zeroed w x h image.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h, Pix: make([]float64, w*h*3)}
}

// At returns the color at (x,y). x and y are not bounds-checked; callers
// must stay within [0,W) x [0,H).
func (im *Image) At(x, y int) [3]float64 {
	i := (y*im.W + x) * 3
	return [3]float64{im.Pix[i], im.Pix[i+1], im.Pix[i+2]}
}

// Set writes the color at (x,y).
func (im *Image) Set(x, y int, c [3]float64) {
	i := (y*im.W + x) * 3
	im.Pix[i], im.Pix[i+1], im.Pix[i+2] = c[0], c[1], c[2]
}

// Add accumulates c into the color at (x,y).
func (im *Image) Add(x, y int, c [3]float64) {
	i := (y*im.W + x) * 3
	im.Pix[i] += c[0]
	im.Pix[i+1] += c[1]
	im.Pix[i+2] += c[2]
}

// Bilinear gathers a color from four neighboring pixels with sub-pixel
// weights. x and y are clamped into the image bounds first, so a sample
// that lands just outside the image reads its edge pixel rather than
// wrapping or reading garbage.
func (im *Image) Bilinear(x, y float64) [3]float64 {
	if im.W <= 0 || im.H <= 0 {
		return [3]float64{}
	}
	x = lin.Clamp(x, 0, float64(im.W-1))
	y = lin.Clamp(y, 0, float64(im.H-1))
	x0 := int(x)
	y0 := int(y)
	x1 := minInt(x0+1, im.W-1)
	y1 := minInt(y0+1, im.H-1)
	tx := x - float64(x0)
	ty := y - float64(y0)

	c00 := im.At(x0, y0)
	c10 := im.At(x1, y0)
	c01 := im.At(x0, y1)
	c11 := im.At(x1, y1)

	var out [3]float64
	for c := 0; c < 3; c++ {
		top := c00[c]*(1-tx) + c10[c]*tx
		bot := c01[c]*(1-tx) + c11[c]*tx
		out[c] = top*(1-ty) + bot*ty
	}
	return out
}

// Scalar is an H x W single-channel buffer, used for weight accumulators,
// alpha, and luminance.
type Scalar struct {
	W, H int
	Pix  []float64
}

// NewScalar allocates a zeroed w x h scalar buffer.
func NewScalar(w, h int) *Scalar {
	return &Scalar{W: w, H: h, Pix: make([]float64, w*h)}
}

// At returns the value at (x,y).
func (s *Scalar) At(x, y int) float64 { return s.Pix[y*s.W+x] }

// Set writes the value at (x,y).
func (s *Scalar) Set(x, y int, v float64) { s.Pix[y*s.W+x] = v }

// Add accumulates v into the value at (x,y).
func (s *Scalar) Add(x, y int, v float64) { s.Pix[y*s.W+x] += v }

// Mask is an H x W boolean buffer.
type Mask struct {
	W, H int
	Pix  []bool
}

// NewMask allocates a w x h mask. When fill is true every pixel starts
// selected.
func NewMask(w, h int, fill bool) *Mask {
	m := &Mask{W: w, H: h, Pix: make([]bool, w*h)}
	if fill {
		for i := range m.Pix {
			m.Pix[i] = true
		}
	}
	return m
}

// At returns whether (x,y) is selected.
func (m *Mask) At(x, y int) bool { return m.Pix[y*m.W+x] }

// Set selects or clears (x,y).
func (m *Mask) Set(x, y int, v bool) { m.Pix[y*m.W+x] = v }

// Any reports whether any pixel is selected.
func (m *Mask) Any() bool {
	for _, v := range m.Pix {
		if v {
			return true
		}
	}
	return false
}

func clampInt(v, n int) int {
	if n == 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func round(x float64) int {
	if x < 0 {
		return int(x - 0.5)
	}
	return int(x + 0.5)
}
