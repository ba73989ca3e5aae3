// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package config loads and validates the repair engine's configuration,
// the tagged enumerations and numeric knobs that drive seam selection,
// the band splatter, and the alpha/compositor policies.
//
// Package config is provided as part of the seamrepair texture tool.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TextureKind selects the color-space adapter applied before and after
// the repair pipeline runs.
type TextureKind string

const (
	BaseColor TextureKind = "basecolor"
	Data      TextureKind = "data"
	Normal    TextureKind = "normal"
)

// Mode selects which side(s) of a seam receive the splatted sample.
type Mode string

const (
	Average Mode = "average"
	AToB    Mode = "a_to_b"
	BToA    Mode = "b_to_a"
)

// AlphaMethod selects the feathering policy used by the alpha builder.
type AlphaMethod string

const (
	AlphaDistance AlphaMethod = "distance"
	AlphaWacc     AlphaMethod = "wacc"
)

// ColorMatch selects the color statistics policy used before splatting.
type ColorMatch string

const (
	ColorMatchNone    ColorMatch = "none"
	ColorMatchGlobal  ColorMatch = "meanvar"
	ColorMatchPerSeam ColorMatch = "meanvar_edge"
)

var textureKinds = map[TextureKind]bool{BaseColor: true, Data: true, Normal: true}
var modes = map[Mode]bool{Average: true, AToB: true, BToA: true}
var alphaMethods = map[AlphaMethod]bool{AlphaDistance: true, AlphaWacc: true}
var colorMatches = map[ColorMatch]bool{ColorMatchNone: true, ColorMatchGlobal: true, ColorMatchPerSeam: true}

// Configuration mirrors the tunable knobs of the repair engine, one field
// per enumerated or numeric option the orchestrator consults.
type Configuration struct {
	TextureKind     TextureKind `yaml:"texture_kind"`
	BandPx          int         `yaml:"band_px"`
	SampleStepPx    float64     `yaml:"sample_step_px"`
	FeatherPx       int         `yaml:"feather_px"`
	Mode            Mode        `yaml:"mode"`
	MaskThreshold   int         `yaml:"mask_threshold"`
	OnlyMaskedSeams bool        `yaml:"only_masked_seams"`
	VFlip           bool        `yaml:"v_flip"`
	AlphaMethod     AlphaMethod `yaml:"alpha_method"`
	AlphaEdgeAware  bool        `yaml:"alpha_edge_aware"`
	GuidedEps       float64     `yaml:"guided_eps"`
	ColorMatch      ColorMatch  `yaml:"color_match"`
	PoissonIters    int         `yaml:"poisson_iters"`
}

// Default returns the configuration's documented defaults.
func Default() Configuration {
	return Configuration{
		TextureKind:     BaseColor,
		BandPx:          6,
		SampleStepPx:    1.0,
		FeatherPx:       4,
		Mode:            Average,
		MaskThreshold:   16,
		OnlyMaskedSeams: false,
		VFlip:           true,
		AlphaMethod:     AlphaDistance,
		AlphaEdgeAware:  false,
		GuidedEps:       1e-4,
		ColorMatch:      ColorMatchNone,
		PoissonIters:    0,
	}
}

// Load parses yaml configuration data on top of Default, so an omitted
// field keeps its documented default rather than zeroing out.
func Load(data []byte) (Configuration, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("config: yaml %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Validate rejects unrecognized enumerated values and out-of-domain
// numeric knobs before the orchestrator ever sees them.
func (c Configuration) Validate() error {
	if !textureKinds[c.TextureKind] {
		return fmt.Errorf("%w: texture_kind %q", ErrInvalidConfig, c.TextureKind)
	}
	if !modes[c.Mode] {
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	}
	if !alphaMethods[c.AlphaMethod] {
		return fmt.Errorf("%w: alpha_method %q", ErrInvalidConfig, c.AlphaMethod)
	}
	if !colorMatches[c.ColorMatch] {
		return fmt.Errorf("%w: color_match %q", ErrInvalidConfig, c.ColorMatch)
	}
	if c.BandPx < 0 {
		return fmt.Errorf("%w: band_px must be >= 0, got %d", ErrInvalidConfig, c.BandPx)
	}
	if c.SampleStepPx <= 0 {
		return fmt.Errorf("%w: sample_step_px must be > 0, got %v", ErrInvalidConfig, c.SampleStepPx)
	}
	if c.FeatherPx < 0 {
		return fmt.Errorf("%w: feather_px must be >= 0, got %d", ErrInvalidConfig, c.FeatherPx)
	}
	if c.MaskThreshold < 0 || c.MaskThreshold > 255 {
		return fmt.Errorf("%w: mask_threshold must be in [0,255], got %d", ErrInvalidConfig, c.MaskThreshold)
	}
	if c.GuidedEps < 0 {
		return fmt.Errorf("%w: guided_eps must be >= 0, got %v", ErrInvalidConfig, c.GuidedEps)
	}
	if c.PoissonIters < 0 {
		return fmt.Errorf("%w: poisson_iters must be >= 0, got %d", ErrInvalidConfig, c.PoissonIters)
	}
	return nil
}
