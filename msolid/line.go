// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// Line is a view of two Points already living in a Pool; InternalAngle
// and LineInternalAngle measure the orientation between such pairs.
type Line struct {
	A, B Point
}

// angle returns ln's orientation in radians, measured from A to B.
func (ln Line) angle(pool *Pool) float64 {
	return math.Atan2(ln.B.Y(pool)-ln.A.Y(pool), ln.B.X(pool)-ln.A.X(pool))
}

// wrap folds a radian difference into (-pi, pi] so residuals stay
// continuous across the +-pi branch cut.
func wrap(rad float64) float64 {
	return math.Atan2(math.Sin(rad), math.Cos(rad))
}
