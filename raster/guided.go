// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

// GuidedFilter smooths p under the edge structure of guide, per He,
// Sun & Tang's guided image filter. It fits a local linear model
// q = a*guide + b in each radius-r window (minimizing squared error
// against p, regularized by eps) and averages the per-window
// coefficients before applying them.
func GuidedFilter(guide, p *Scalar, r int, eps float64) *Scalar {
	meanI := BoxFilter(guide, r)
	meanP := BoxFilter(p, r)
	meanIP := BoxFilter(mulScalar(guide, p), r)
	meanII := BoxFilter(mulScalar(guide, guide), r)

	a := NewScalar(guide.W, guide.H)
	b := NewScalar(guide.W, guide.H)
	for i := range a.Pix {
		covIP := meanIP.Pix[i] - meanI.Pix[i]*meanP.Pix[i]
		varI := meanII.Pix[i] - meanI.Pix[i]*meanI.Pix[i]
		ai := covIP / (varI + eps)
		a.Pix[i] = ai
		b.Pix[i] = meanP.Pix[i] - ai*meanI.Pix[i]
	}

	meanA := BoxFilter(a, r)
	meanB := BoxFilter(b, r)
	q := NewScalar(guide.W, guide.H)
	for i := range q.Pix {
		q.Pix[i] = meanA.Pix[i]*guide.Pix[i] + meanB.Pix[i]
	}
	return q
}
