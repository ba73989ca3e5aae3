// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package repair

import (
	"github.com/galvanized/seamrepair/config"
	"github.com/galvanized/seamrepair/math/lin"
	"github.com/galvanized/seamrepair/raster"
)

// rec709Luma are the Rec.709 luminance weights used to derive the guide
// image for edge-aware alpha refinement.
var rec709Luma = [3]float64{0.2126, 0.7152, 0.0722}

// buildAlpha derives the feathering alpha from the weight accumulator,
// optionally sharpening it with a luminance-guided filter.
func buildAlpha(work *raster.Image, wacc *raster.Scalar, hit *raster.Mask, cfg config.Configuration) *raster.Scalar {
	var alpha *raster.Scalar
	switch cfg.AlphaMethod {
	case config.AlphaWacc:
		alpha = raster.WeightAlpha(wacc)
	default:
		alpha = raster.DistanceAlpha(hit, cfg.FeatherPx)
	}

	if cfg.AlphaEdgeAware && cfg.TextureKind != config.Normal {
		guide := luminance(work)
		r := maxInt(1, cfg.FeatherPx)
		refined := raster.GuidedFilter(guide, alpha, r, cfg.GuidedEps)
		for i := range alpha.Pix {
			q := lin.Clamp(refined.Pix[i], 0, 1)
			if q > alpha.Pix[i] {
				alpha.Pix[i] = q
			}
		}
	}
	return alpha
}

func luminance(work *raster.Image) *raster.Scalar {
	out := raster.NewScalar(work.W, work.H)
	for y := 0; y < work.H; y++ {
		for x := 0; x < work.W; x++ {
			c := work.At(x, y)
			l := c[0]*rec709Luma[0] + c[1]*rec709Luma[1] + c[2]*rec709Luma[2]
			out.Set(x, y, lin.Clamp(l, 0, 1))
		}
	}
	return out
}

// composite blends working and repaired by alpha: out = working*(1-a) + repaired*a.
func composite(working, repaired *raster.Image, alpha *raster.Scalar) *raster.Image {
	out := raster.NewImage(working.W, working.H)
	for y := 0; y < working.H; y++ {
		for x := 0; x < working.W; x++ {
			a := alpha.At(x, y)
			wc := working.At(x, y)
			rc := repaired.At(x, y)
			out.Set(x, y, [3]float64{
				wc[0]*(1-a) + rc[0]*a,
				wc[1]*(1-a) + rc[1]*a,
				wc[2]*(1-a) + rc[2]*a,
			})
		}
	}
	return out
}

// reconstruct builds the repaired image: acc/wacc where wacc>0, else the
// working source unchanged.
func reconstruct(working *raster.Image, acc *raster.Image, wacc *raster.Scalar) *raster.Image {
	out := raster.NewImage(working.W, working.H)
	copy(out.Pix, working.Pix)
	for y := 0; y < working.H; y++ {
		for x := 0; x < working.W; x++ {
			w := wacc.At(x, y)
			if w <= 0 {
				continue
			}
			c := acc.At(x, y)
			out.Set(x, y, [3]float64{c[0] / w, c[1] / w, c[2] / w})
		}
	}
	return out
}
