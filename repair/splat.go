// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package repair

import (
	"github.com/galvanized/seamrepair/config"
	"github.com/galvanized/seamrepair/math/lin"
	"github.com/galvanized/seamrepair/mesh"
	"github.com/galvanized/seamrepair/raster"
	"github.com/galvanized/seamrepair/texspace"
)

// splatSeams walks every selected seam and scatters weighted, bilinearly
// gathered samples into acc/wacc, gated by mask. globalCM is the mapping
// used for color_match=meanvar; for meanvar_edge a fresh mapping is
// computed per seam.
func splatSeams(work *raster.Image, acc *raster.Image, wacc *raster.Scalar, mask *raster.Mask, pairs []mesh.SeamPair, cfg config.Configuration, globalCM colorMatch) {
	w, h := work.W, work.H
	doMatch := cfg.ColorMatch != config.ColorMatchNone && cfg.TextureKind != config.Normal

	for _, pair := range pairs {
		dirAPx := texspace.PixelDir(pair.A.InwardDir(), w, h)
		dirBPx := texspace.PixelDir(pair.B.InwardDir(), w, h)

		eA := (&lin.V2{}).Sub(&pair.A.UV1, &pair.A.UV0)
		eB := (&lin.V2{}).Sub(&pair.B.UV1, &pair.B.UV0)
		edgeLenPx := maxFloat(edgeLenPixels(*eA, w, h), edgeLenPixels(*eB, w, h))
		step := cfg.SampleStepPx
		if step < 0.5 {
			step = 0.5
		}
		n := maxInt(8, int(edgeLenPx/step+0.999999))

		cm := globalCM
		if cfg.ColorMatch == config.ColorMatchPerSeam && cfg.TextureKind != config.Normal {
			cm = perSeamMatch(work, pair, w, h, cfg.VFlip, cfg.BandPx)
		}

		for si := 0; si <= n; si++ {
			t := float64(si) / float64(n)
			edgeA := (&lin.V2{}).Lerp(&pair.A.UV0, &pair.A.UV1, t)
			edgeB := (&lin.V2{}).Lerp(&pair.B.UV0, &pair.B.UV1, t)

			for d := 0; d < cfg.BandPx; d++ {
				ww := float64(cfg.BandPx-d) / float64(cfg.BandPx)

				xa, ya := samplePixel(*edgeA, dirAPx, float64(d), w, h, cfg.VFlip)
				xb, yb := samplePixel(*edgeB, dirBPx, float64(d), w, h, cfg.VFlip)

				aIn := inBounds(xa, ya, w, h)
				bIn := inBounds(xb, yb, w, h)
				if !aIn && !bIn {
					continue
				}

				colA := work.Bilinear(xa, ya)
				colB := work.Bilinear(xb, yb)
				if doMatch {
					colB = applyMatch(cm, colB)
				}

				switch cfg.Mode {
				case config.Average:
					col := [3]float64{(colA[0] + colB[0]) / 2, (colA[1] + colB[1]) / 2, (colA[2] + colB[2]) / 2}
					if aIn {
						raster.Splat(acc, wacc, mask, xa, ya, col, ww)
					}
					if bIn {
						raster.Splat(acc, wacc, mask, xb, yb, col, ww)
					}
				case config.AToB:
					if bIn {
						raster.Splat(acc, wacc, mask, xb, yb, colA, ww)
					}
				case config.BToA:
					if aIn {
						raster.Splat(acc, wacc, mask, xa, ya, colB, ww)
					}
				}
			}
		}
	}
}

func edgeLenPixels(e lin.V2, w, h int) float64 {
	px := e.X * float64(w-1)
	py := e.Y * float64(h-1)
	return (&lin.V2{X: px, Y: py}).Len()
}

func inBounds(x, y float64, w, h int) bool {
	return x >= 0 && x <= float64(w-1) && y >= 0 && y <= float64(h-1)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
