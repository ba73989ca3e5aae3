// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package colorspace converts a texture's stored 8-bit color into the
// working representation the splatter, color statistics, and filters
// operate in, and back again on output.
//
// Package colorspace is provided as part of the seamrepair texture tool.
package colorspace

import (
	"errors"
	"math"
)

// Kind selects the color-space adapter for a texture.
type Kind string

// Supported texture kinds.
const (
	BaseColor Kind = "basecolor" // sRGB encoded color; linearized for working space.
	Data      Kind = "data"      // pass-through, e.g. roughness/metallic/AO packs.
	Normal    Kind = "normal"    // tangent-space normal map; decoded to unit vectors.
)

// Valid reports whether k is one of the recognized texture kinds.
func Valid(k Kind) bool {
	switch k {
	case BaseColor, Data, Normal:
		return true
	}
	return false
}

// ErrInvalidKind is returned by ToWorking/FromWorking for an unrecognized Kind.
var ErrInvalidKind = errors.New("colorspace: texture_kind must be basecolor, data, or normal")

// srgbThreshold is the IEC 61966-2-1 piecewise transfer breakpoint.
const srgbThreshold = 0.0031308

// SRGBToLinear converts one sRGB-encoded channel value in [0,1] to linear
// light.
func SRGBToLinear(x float64) float64 {
	x = clip01(x)
	const a = 0.055
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+a)/(1+a), 2.4)
}

// LinearToSRGB converts one linear-light channel value in [0,1] to sRGB
// encoding using the IEC 61966-2-1 piecewise transfer.
func LinearToSRGB(x float64) float64 {
	x = clip01(x)
	const a = 0.055
	if x <= srgbThreshold {
		return x * 12.92
	}
	return (1+a)*math.Pow(x, 1.0/2.4) - a
}

// ToWorking converts one pixel's stored RGB (8-bit range normalized to
// [0,1]) into the working representation for kind.
func ToWorking(kind Kind, rgb [3]float64) ([3]float64, error) {
	switch kind {
	case BaseColor:
		return [3]float64{SRGBToLinear(rgb[0]), SRGBToLinear(rgb[1]), SRGBToLinear(rgb[2])}, nil
	case Data:
		return rgb, nil
	case Normal:
		return normalRGBToVec(rgb), nil
	default:
		return [3]float64{}, ErrInvalidKind
	}
}

// FromWorking inverts ToWorking, mapping a working-space pixel back to
// storable RGB in [0,1].
func FromWorking(kind Kind, c [3]float64) ([3]float64, error) {
	switch kind {
	case BaseColor:
		return [3]float64{LinearToSRGB(c[0]), LinearToSRGB(c[1]), LinearToSRGB(c[2])}, nil
	case Data:
		return c, nil
	case Normal:
		return normalVecToRGB(c), nil
	default:
		return [3]float64{}, ErrInvalidKind
	}
}

// normalRGBToVec decodes a [0,1] RGB triple into a unit vector, mapping the
// stored [0,1] range back to [-1,1] and renormalizing.
func normalRGBToVec(rgb [3]float64) [3]float64 {
	v := [3]float64{rgb[0]*2 - 1, rgb[1]*2 - 1, rgb[2]*2 - 1}
	return unit(v)
}

// normalVecToRGB renormalizes v and maps it into storable [0,1] RGB.
func normalVecToRGB(v [3]float64) [3]float64 {
	v = unit(v)
	return [3]float64{clip01(v[0]*0.5 + 0.5), clip01(v[1]*0.5 + 0.5), clip01(v[2]*0.5 + 0.5)}
}

func unit(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n < 1e-8 {
		n = 1e-8
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

func clip01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
