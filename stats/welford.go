// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package stats accumulates per-channel color statistics on both sides of
// a seam so the splatter can map one side's distribution onto the
// other's before blending.
//
// Package stats is provided as part of the seamrepair texture tool.
package stats

import "math"

// Vec3 is a running Welford accumulator (count, mean, M2) over 3-channel
// samples. It is numerically stable for the small sample counts (tens of
// points per seam) the color matching step uses.
type Vec3 struct {
	n    int
	mean [3]float64
	m2   [3]float64
}

// Add folds one sample into the running statistics.
func (s *Vec3) Add(x [3]float64) {
	s.n++
	n := float64(s.n)
	for i := 0; i < 3; i++ {
		delta := x[i] - s.mean[i]
		s.mean[i] += delta / n
		delta2 := x[i] - s.mean[i]
		s.m2[i] += delta * delta2
	}
}

// Finalize returns the accumulated mean and (sample) standard deviation
// per channel. With fewer than 2 samples the variance is reported as zero.
func (s *Vec3) Finalize() (mean, std [3]float64) {
	mean = s.mean
	if s.n <= 1 {
		return mean, std
	}
	for i := 0; i < 3; i++ {
		variance := s.m2[i] / float64(s.n-1)
		if variance < 0 {
			variance = 0
		}
		std[i] = math.Sqrt(variance)
	}
	return mean, std
}

// Match computes the (meanA, meanB, scale) triple used to map side B's
// color distribution onto side A's: matched = (colB-meanB)*scale + meanA.
func Match(a, b *Vec3) (meanA, meanB, scale [3]float64) {
	var stdA, stdB [3]float64
	meanA, stdA = a.Finalize()
	meanB, stdB = b.Finalize()
	for i := 0; i < 3; i++ {
		scale[i] = stdA[i] / (stdB[i] + 1e-6)
	}
	return meanA, meanB, scale
}
