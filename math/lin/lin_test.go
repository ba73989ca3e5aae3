// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestAeq(t *testing.T) {
	if !Aeq(1.0, 1.0+Epsilon/2) {
		t.Error("values within epsilon should be almost equal")
	}
	if Aeq(1.0, 1.1) {
		t.Error("values far apart should not be almost equal")
	}
}

func TestAeqZ(t *testing.T) {
	if !AeqZ(Epsilon / 2) {
		t.Error("small values should be almost zero")
	}
	if AeqZ(0.1) {
		t.Error("0.1 is not almost zero")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0,10,0.5) = %v, want 5", got)
	}
}
