// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestV2Perp(t *testing.T) {
	e := (&V2{}).SetS(1, 0)
	n := (&V2{}).Perp(e)
	if !n.Aeq((&V2{}).SetS(0, 1)) {
		t.Errorf("Perp(1,0) = %+v, want (0,1)", n)
	}
}

func TestV2Unit(t *testing.T) {
	v := (&V2{}).SetS(3, 4)
	v.Unit()
	if !Aeq(v.Len(), 1.0) {
		t.Errorf("unit length = %v, want 1", v.Len())
	}
}

func TestV2UnitDegenerate(t *testing.T) {
	v := (&V2{}).SetS(0, 0)
	v.Unit()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("degenerate unit should stay zero, got %+v", v)
	}
}

func TestV2Lerp(t *testing.T) {
	a := (&V2{}).SetS(0, 0)
	b := (&V2{}).SetS(10, 20)
	v := (&V2{}).Lerp(a, b, 0.5)
	if !v.Aeq((&V2{}).SetS(5, 10)) {
		t.Errorf("Lerp = %+v, want (5,10)", v)
	}
}

func TestV2MaxAbsComponent(t *testing.T) {
	a := (&V2{}).SetS(0, 0)
	b := (&V2{}).SetS(0.3, -0.1)
	if got := a.MaxAbsComponent(b); !Aeq(got, 0.3) {
		t.Errorf("MaxAbsComponent = %v, want 0.3", got)
	}
}
