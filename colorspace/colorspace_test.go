// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package colorspace

import (
	"math"
	"testing"
)

func TestSRGBRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.001, 0.0031308, 0.2, 0.5, 0.9, 1.0} {
		lin := SRGBToLinear(x)
		back := LinearToSRGB(lin)
		if math.Abs(back-x) > 1e-6 {
			t.Errorf("round trip %v -> %v -> %v, want ~%v", x, lin, back, x)
		}
	}
}

func TestToWorkingInvalidKind(t *testing.T) {
	if _, err := ToWorking(Kind("bogus"), [3]float64{}); err != ErrInvalidKind {
		t.Errorf("err = %v, want ErrInvalidKind", err)
	}
}

func TestNormalRoundTripIsUnitLength(t *testing.T) {
	rgb := [3]float64{0.5, 0.5, 1.0} // pointing +Z
	v, err := ToWorking(Normal, rgb)
	if err != nil {
		t.Fatalf("ToWorking: %v", err)
	}
	length := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if math.Abs(length-1.0) > 1e-3 {
		t.Errorf("decoded normal length = %v, want ~1", length)
	}
	back, err := FromWorking(Normal, v)
	if err != nil {
		t.Fatalf("FromWorking: %v", err)
	}
	for i := range back {
		if back[i] < 0 || back[i] > 1 {
			t.Errorf("re-encoded normal channel %d = %v out of [0,1]", i, back[i])
		}
	}
}

func TestDataPassThrough(t *testing.T) {
	rgb := [3]float64{0.3, 0.6, 0.9}
	got, err := ToWorking(Data, rgb)
	if err != nil || got != rgb {
		t.Errorf("data kind should pass through unchanged, got %v, err %v", got, err)
	}
}
