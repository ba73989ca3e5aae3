// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package config

import (
	"errors"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default configuration should validate, got %v", err)
	}
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	cfg, err := Load([]byte("band_px: 10\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BandPx != 10 {
		t.Errorf("band_px = %d, want 10", cfg.BandPx)
	}
	if cfg.Mode != Average {
		t.Errorf("mode = %q, want default %q", cfg.Mode, Average)
	}
	if cfg.SampleStepPx != 1.0 {
		t.Errorf("sample_step_px = %v, want default 1.0", cfg.SampleStepPx)
	}
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	_, err := Load([]byte("mode: sideways\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidateRejectsNegativeBandPx(t *testing.T) {
	cfg := Default()
	cfg.BandPx = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative band_px, got %v", err)
	}
}

func TestValidateRejectsBadMaskThreshold(t *testing.T) {
	cfg := Default()
	cfg.MaskThreshold = 300
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for out-of-range mask_threshold, got %v", err)
	}
}

func TestValidateRejectsUnknownTextureKind(t *testing.T) {
	cfg := Default()
	cfg.TextureKind = "metallic"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown texture_kind, got %v", err)
	}
}
