// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package mesh

import "github.com/galvanized/seamrepair/math/lin"

// InwardDir returns the unit 2D direction, perpendicular to the seam edge
// (UV0,UV1), that points from the edge into this triangle's chart interior
// (towards UV2). A zero-length edge falls back to the direction straight
// at UV2, and finally to the zero vector if even that is degenerate.
func (s SeamSide) InwardDir() lin.V2 {
	e := (&lin.V2{}).Sub(&s.UV1, &s.UV0)
	n := (&lin.V2{}).Perp(e)
	mid := (&lin.V2{}).Lerp(&s.UV0, &s.UV1, 0.5)
	toOpposite := (&lin.V2{}).Sub(&s.UV2, mid)
	if n.Dot(toOpposite) < 0 {
		n.Scale(n, -1)
	}
	if n.Len() >= lin.Epsilon {
		n.Unit()
		return *n
	}
	// Degenerate edge: fall back to the direction towards the opposite corner.
	if toOpposite.Len() >= lin.Epsilon {
		toOpposite.Unit()
		return *toOpposite
	}
	return lin.V2{}
}
