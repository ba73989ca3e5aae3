// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestVec3MeanAndStd(t *testing.T) {
	var s Vec3
	samples := [][3]float64{
		{1, 10, 100},
		{2, 20, 200},
		{3, 30, 300},
	}
	for _, x := range samples {
		s.Add(x)
	}
	mean, std := s.Finalize()
	wantMean := [3]float64{2, 20, 200}
	for i := range mean {
		if math.Abs(mean[i]-wantMean[i]) > 1e-9 {
			t.Errorf("mean[%d] = %v, want %v", i, mean[i], wantMean[i])
		}
	}
	// sample stddev of {1,2,3} is 1.0
	if math.Abs(std[0]-1.0) > 1e-9 {
		t.Errorf("std[0] = %v, want 1.0", std[0])
	}
}

func TestVec3SingleSampleHasZeroVariance(t *testing.T) {
	var s Vec3
	s.Add([3]float64{5, 5, 5})
	_, std := s.Finalize()
	if std != [3]float64{0, 0, 0} {
		t.Errorf("single-sample std = %v, want zero", std)
	}
}

func TestMatchIdentityWhenDistributionsEqual(t *testing.T) {
	var a, b Vec3
	for _, x := range [][3]float64{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}} {
		a.Add(x)
		b.Add(x)
	}
	meanA, meanB, scale := Match(&a, &b)
	if meanA != meanB {
		t.Errorf("equal distributions should have equal means: %v vs %v", meanA, meanB)
	}
	for i, s := range scale {
		if math.Abs(s-1.0) > 1e-6 {
			t.Errorf("scale[%d] = %v, want ~1.0 for equal distributions", i, s)
		}
	}
}
