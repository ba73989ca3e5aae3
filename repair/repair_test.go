// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package repair

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/galvanized/seamrepair/config"
	"github.com/galvanized/seamrepair/math/lin"
	"github.com/galvanized/seamrepair/mesh"
)

// quadMesh builds the S1 scenario mesh: two triangles over a unit square,
// wired so the shared edge (v1,v3) gets different UVs on each side.
func quadMesh() *mesh.Mesh {
	return &mesh.Mesh{
		Positions: []lin.V3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		UVs: []lin.V2{
			{X: 0.10, Y: 0.90},
			{X: 0.90, Y: 0.90},
			{X: 0.90, Y: 0.10},
			{X: 0.10, Y: 0.10},
			{X: 0.10, Y: 0.45},
			{X: 0.90, Y: 0.55},
		},
		Triangles: []mesh.Triangle{
			{V: [3]int{0, 1, 2}, VT: [3]int{0, 1, 2}},
			{V: [3]int{0, 2, 3}, VT: [3]int{4, 5, 3}},
		},
	}
}

// noSeamMesh is the same quad but both triangles agree on UVs everywhere:
// no discontinuity to repair.
func noSeamMesh() *mesh.Mesh {
	return &mesh.Mesh{
		Positions: []lin.V3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		UVs: []lin.V2{
			{X: 0, Y: 1},
			{X: 1, Y: 1},
			{X: 1, Y: 0},
			{X: 0, Y: 0},
		},
		Triangles: []mesh.Triangle{
			{V: [3]int{0, 1, 2}, VT: [3]int{0, 1, 2}},
			{V: [3]int{0, 2, 3}, VT: [3]int{0, 2, 3}},
		},
	}
}

// splitTexture builds a 128x128 opaque RGBA texture, top half one color and
// bottom half another, matching the S1 scenario.
func splitTexture(top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		c := bottom
		if y < 64 {
			c = top
		}
		for x := 0; x < 128; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestIdentityOnEmptyBand(t *testing.T) {
	src := splitTexture(color.RGBA{20, 220, 120, 255}, color.RGBA{220, 20, 160, 255})
	cfg := config.Default()
	cfg.BandPx = 0
	out, err := Repair(quadMesh(), src, nil, cfg)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	outRGBA, ok := out.(*image.RGBA)
	if !ok {
		t.Fatalf("expected *image.RGBA output")
	}
	if !bytes.Equal(outRGBA.Pix, src.Pix) {
		t.Errorf("band_px=0 should return input bit-exactly")
	}
}

func TestAlphaPreservation(t *testing.T) {
	src := splitTexture(color.RGBA{20, 220, 120, 255}, color.RGBA{220, 20, 160, 200})
	cfg := config.Default()
	cfg.BandPx = 6
	out, err := Repair(quadMesh(), src, nil, cfg)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	b := out.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, wantA := src.At(x, y).RGBA()
			_, _, _, gotA := out.At(x, y).RGBA()
			if wantA != gotA {
				t.Fatalf("alpha changed at (%d,%d): got %d want %d", x, y, gotA>>8, wantA>>8)
			}
		}
	}
}

func TestDimensionalInvariance(t *testing.T) {
	src := splitTexture(color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 255})
	cfg := config.Default()
	cfg.BandPx = 6
	out, err := Repair(quadMesh(), src, nil, cfg)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	if out.Bounds().Dx() != 128 || out.Bounds().Dy() != 128 {
		t.Errorf("output dims = %v, want 128x128", out.Bounds())
	}
}

func TestNoSeamIdempotence(t *testing.T) {
	src := splitTexture(color.RGBA{130, 90, 40, 255}, color.RGBA{130, 90, 40, 255})
	cfg := config.Default()
	cfg.BandPx = 6
	out, err := Repair(noSeamMesh(), src, nil, cfg)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	b := out.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			wr, wg, wb, _ := src.At(x, y).RGBA()
			gr, gg, gb, _ := out.At(x, y).RGBA()
			if absInt(int(wr>>8)-int(gr>>8)) > 1 || absInt(int(wg>>8)-int(gg>>8)) > 1 || absInt(int(wb>>8)-int(gb>>8)) > 1 {
				t.Fatalf("no-seam mesh changed pixel (%d,%d): got (%d,%d,%d) want (%d,%d,%d)",
					x, y, gr>>8, gg>>8, gb>>8, wr>>8, wg>>8, wb>>8)
			}
		}
	}
}

func TestSeamBandBlendsBothColors(t *testing.T) {
	top := color.RGBA{20, 220, 120, 255}
	bottom := color.RGBA{220, 20, 160, 255}
	src := splitTexture(top, bottom)
	cfg := config.Default()
	cfg.BandPx = 6
	cfg.Mode = config.Average
	out, err := Repair(quadMesh(), src, nil, cfg)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	// Inside the band just below the seam's midpoint (the edge crosses x=64
	// near y=63.5 and the 6px band reaches about y=69) the output must
	// differ from both pure source colors: it is a blend.
	r, g, b, _ := out.At(64, 66).RGBA()
	isTop := uint8(r>>8) == top.R && uint8(g>>8) == top.G && uint8(b>>8) == top.B
	isBottom := uint8(r>>8) == bottom.R && uint8(g>>8) == bottom.G && uint8(b>>8) == bottom.B
	if isTop || isBottom {
		t.Errorf("pixel near seam should be a blend, got pure (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestNormalMapUnitNorm(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			src.SetRGBA(x, y, color.RGBA{128, 128, 255, 255})
		}
	}
	cfg := config.Default()
	cfg.BandPx = 4
	cfg.TextureKind = config.Normal
	cfg.ColorMatch = config.ColorMatchGlobal // must be ignored for normal maps
	out, err := Repair(quadMesh(), src, nil, cfg)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	b := out.Bounds()
	for y := 0; y < b.Dy(); y += 4 {
		for x := 0; x < b.Dx(); x += 4 {
			r, g, bch, _ := out.At(x, y).RGBA()
			vx := float64(r>>8)/255*2 - 1
			vy := float64(g>>8)/255*2 - 1
			vz := float64(bch>>8)/255*2 - 1
			n := math.Sqrt(vx*vx + vy*vy + vz*vz)
			if math.Abs(n-1) > 1e-2 {
				t.Fatalf("pixel (%d,%d) decoded length %v, want ~1", x, y, n)
			}
		}
	}
}

func TestMaskContainmentRestrictsSeamSelection(t *testing.T) {
	top := color.RGBA{20, 220, 120, 255}
	bottom := color.RGBA{220, 20, 160, 255}
	src := splitTexture(top, bottom)

	maskImg := image.NewGray(image.Rect(0, 0, 128, 128))
	// Leave the mask entirely black: no pixel should qualify.
	cfg := config.Default()
	cfg.BandPx = 6
	cfg.OnlyMaskedSeams = true

	out, err := Repair(quadMesh(), src, maskImg, cfg)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	b := out.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			want := bottom
			if y < 64 {
				want = top
			}
			r, g, bch, _ := out.At(x, y).RGBA()
			if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(bch>>8) != want.B {
				t.Fatalf("pixel (%d,%d) changed despite empty mask: got (%d,%d,%d)", x, y, r>>8, g>>8, bch>>8)
			}
		}
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "sideways"
	if _, err := Repair(quadMesh(), splitTexture(color.RGBA{}, color.RGBA{}), nil, cfg); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

func TestNilTextureRejected(t *testing.T) {
	cfg := config.Default()
	if _, err := Repair(quadMesh(), nil, nil, cfg); err == nil {
		t.Fatalf("expected error for nil texture")
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
