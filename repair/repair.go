// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package repair wires the mesh, colorspace, mask, raster, and stats
// packages into the seam-repair pipeline itself: seam detection, mask
// gating, color matching, band splatting, alpha feathering, and the
// optional Poisson blend.
//
// Package repair is provided as part of the seamrepair texture tool.
package repair

import (
	"fmt"
	"image"

	"github.com/galvanized/seamrepair/colorspace"
	"github.com/galvanized/seamrepair/config"
	"github.com/galvanized/seamrepair/mask"
	"github.com/galvanized/seamrepair/mesh"
	"github.com/galvanized/seamrepair/raster"
)

// Repair synchronizes the pixels within cfg.BandPx of every selected UV
// seam of m, in texture, so both sides of each seam agree in color, with
// edge-aware feathering back to the original image. It is a pure function:
// texture and maskSrc are read-only, and a new image is always returned.
func Repair(m *mesh.Mesh, texture image.Image, maskSrc image.Image, cfg config.Configuration) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if texture == nil {
		return nil, ErrImage
	}
	if cfg.BandPx <= 0 {
		return cloneRGBA(texture), nil
	}

	pairs, err := mesh.BuildSeamPairs(m)
	if err != nil {
		return nil, err
	}

	kind := colorspace.Kind(cfg.TextureKind)
	working, alphaPlane, err := decode(texture, kind)
	if err != nil {
		return nil, err
	}
	w, h := working.W, working.H

	rawMask := mask.Build(maskSrc, w, h, cfg.MaskThreshold)
	bandMask := mask.Band(rawMask, cfg.BandPx)
	pairs = mask.Select(pairs, bandMask, w, h, cfg.VFlip, cfg.OnlyMaskedSeams && maskSrc != nil)

	var globalCM colorMatch
	if cfg.ColorMatch == config.ColorMatchGlobal && cfg.TextureKind != config.Normal {
		globalCM = globalMatch(working, pairs, w, h, cfg.VFlip, cfg.BandPx)
	} else {
		globalCM = identityMatch
	}

	acc := raster.NewImage(w, h)
	wacc := raster.NewScalar(w, h)
	splatSeams(working, acc, wacc, bandMask, pairs, cfg, globalCM)

	repaired := reconstruct(working, acc, wacc)
	hit := raster.Hit(wacc)

	outWork := repaired
	if cfg.FeatherPx > 0 && hit.Any() {
		alpha := buildAlpha(working, wacc, hit, cfg)
		outWork = composite(working, repaired, alpha)
	}

	if cfg.PoissonIters > 0 && hit.Any() && cfg.TextureKind != config.Normal {
		outWork = raster.PoissonBlend(working, outWork, hit, cfg.PoissonIters)
	}

	out, err := encode(outWork, alphaPlane, kind)
	if err != nil {
		return nil, fmt.Errorf("repair: %w", err)
	}
	return out, nil
}
