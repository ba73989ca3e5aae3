// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector provides the 2 and 3 element vector math needed to reason about
// UV charts (V2) and mesh positions (V3).

import "math"

// V2 is a 2 element vector. Used for UV coordinates and pixel-space
// directions.
type V2 struct {
	X float64
	Y float64
}

// V3 is a 3 element vector. Used for mesh positions.
type V3 struct {
	X float64
	Y float64
	Z float64
}

// SetS sets v from individual scalars and returns v.
func (v *V2) SetS(x, y float64) *V2 { v.X, v.Y = x, y; return v }

// GetS returns the float64 values of the vector.
func (v *V2) GetS() (x, y float64) { return v.X, v.Y }

// Set copies a into v and returns v.
func (v *V2) Set(a *V2) *V2 { v.X, v.Y = a.X, a.Y; return v }

// Add sets v = a+b and returns v.
func (v *V2) Add(a, b *V2) *V2 { v.X, v.Y = a.X+b.X, a.Y+b.Y; return v }

// Sub sets v = a-b and returns v.
func (v *V2) Sub(a, b *V2) *V2 { v.X, v.Y = a.X-b.X, a.Y-b.Y; return v }

// Scale sets v = a*s and returns v.
func (v *V2) Scale(a *V2, s float64) *V2 { v.X, v.Y = a.X*s, a.Y*s; return v }

// Mult sets v = a*b componentwise and returns v.
func (v *V2) Mult(a, b *V2) *V2 { v.X, v.Y = a.X*b.X, a.Y*b.Y; return v }

// Dot is the dot product of v and a.
func (v *V2) Dot(a *V2) float64 { return v.X*a.X + v.Y*a.Y }

// Len is the length of v.
func (v *V2) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Unit normalizes v in place and returns v. A vector too short to have a
// meaningful direction is left at zero rather than dividing by a tiny
// length.
func (v *V2) Unit() *V2 {
	ln := v.Len()
	if ln < Epsilon {
		v.X, v.Y = 0, 0
		return v
	}
	v.X, v.Y = v.X/ln, v.Y/ln
	return v
}

// Perp sets v to a rotated 90 degrees counter-clockwise and returns v.
// Used to turn a UV edge direction into an inward-facing normal candidate.
func (v *V2) Perp(a *V2) *V2 { v.X, v.Y = -a.Y, a.X; return v }

// Lerp sets v to the linear interpolation of a to b by ratio and returns v.
func (v *V2) Lerp(a, b *V2, ratio float64) *V2 {
	v.X = Lerp(a.X, b.X, ratio)
	v.Y = Lerp(a.Y, b.Y, ratio)
	return v
}

// Aeq (~=) almost-equals returns true if every element of v is within
// Epsilon of the corresponding element of a.
func (v *V2) Aeq(a *V2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// MaxAbsComponent returns the largest absolute difference between v and a
// across both components. Used to decide whether two UVs diverge.
func (v *V2) MaxAbsComponent(a *V2) float64 {
	return math.Max(math.Abs(v.X-a.X), math.Abs(v.Y-a.Y))
}

// SetS sets v from individual scalars and returns v.
func (v *V3) SetS(x, y, z float64) *V3 { v.X, v.Y, v.Z = x, y, z; return v }

// GetS returns the float64 values of the vector.
func (v *V3) GetS() (x, y, z float64) { return v.X, v.Y, v.Z }
