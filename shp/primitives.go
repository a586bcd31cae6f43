// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the closed-form geometric construction
// primitives (PLA, PLAP, PLLP, PLPP, PXY): pure functions turning
// already-known points, lengths and angles into one new point. The
// triangulation compiler (package fem) only ever emits symbolic
// references to these; this package is what actually executes a
// compiled EStack.
package shp

import (
	"math"

	"github.com/kmolyuan/pyslvs-go/ele"
)

// Clockwise is the orientation test the triangulation compiler's main
// loop uses to pick a consistent branch on a triangle:
// cross((c2-c1),(c3-c2)) >= 0. Zero counts as clockwise.
func Clockwise(c1, c2, c3 ele.Coord) bool {
	ux, uy := c2.X-c1.X, c2.Y-c1.Y
	vx, vy := c3.X-c2.X, c3.Y-c2.Y
	return ux*vy-uy*vx >= 0
}

// PLA places a point at distance length from base, at angleDeg degrees
// from horizontal. This is the driver construction.
func PLA(base ele.Coord, length, angleDeg float64) ele.Coord {
	a := angleDeg * math.Pi / 180
	return ele.Coord{X: base.X + length*math.Cos(a), Y: base.Y + length*math.Sin(a)}
}

// PLAP places a point at distance length from base, at angleDeg degrees
// measured relative to the base->pivot direction (rather than the
// horizontal, as PLA does).
func PLAP(base ele.Coord, length, angleDeg float64, pivot ele.Coord) ele.Coord {
	ref := math.Atan2(pivot.Y-base.Y, pivot.X-base.X)
	a := ref + angleDeg*math.Pi/180
	return ele.Coord{X: base.X + length*math.Cos(a), Y: base.Y + length*math.Sin(a)}
}

// PLLP returns the intersection of the circle of radius l0 around c1 and
// the circle of radius l1 around c2, the classic two-length/two-pivot
// triangulation. The tuple vocabulary carries no extra branch flag for
// PLLP (unlike PLPP's op): which of the two roots comes out is entirely a
// function of the (c1, c2) order, always resolving to the "+" normal
// offset relative to the c1->c2 direction. Callers select the other root
// by swapping c1 and c2, which is exactly what the triangulation
// compiler's clockwise-test swap does.
func PLLP(c1 ele.Coord, l0, l1 float64, c2 ele.Coord) ele.Coord {
	dx, dy := c2.X-c1.X, c2.Y-c1.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return ele.Coord{X: math.NaN(), Y: math.NaN()}
	}
	a := (l0*l0 - l1*l1 + d*d) / (2 * d)
	h2 := l0*l0 - a*a
	h := math.Sqrt(h2) // NaN if h2<0: unreachable triangle, propagated to the caller
	ux, uy := dx/d, dy/d
	px, py := c1.X+a*ux, c1.Y+a*uy
	nx, ny := -uy*h, ux*h
	return ele.Coord{X: px + nx, Y: py + ny}
}

// PLPP returns the point at distance l0 from c1, lying on the (infinite)
// line through c2 and c3, projected along that line's direction. op
// selects between the two candidates by their position along the
// c2->c3 direction: false takes the one further back, true the one
// further forward.
func PLPP(c1 ele.Coord, l0 float64, c2, c3 ele.Coord, op bool) ele.Coord {
	ldx, ldy := c3.X-c2.X, c3.Y-c2.Y
	ln := math.Hypot(ldx, ldy)
	if ln == 0 {
		return ele.Coord{X: math.NaN(), Y: math.NaN()}
	}
	ux, uy := ldx/ln, ldy/ln
	wx, wy := c1.X-c2.X, c1.Y-c2.Y
	tProj := wx*ux + wy*uy
	perp2 := wx*wx + wy*wy - tProj*tProj
	half := math.Sqrt(l0*l0 - perp2) // NaN if unreachable
	t := tProj - half
	if op {
		t = tProj + half
	}
	return ele.Coord{X: c2.X + t*ux, Y: c2.Y + t*uy}
}

// PXY translates c1 by axial offsets (lx, ly) measured along its own
// slot direction angleDeg and the perpendicular to it: the construction a
// grounded slider's friends use to slide rigidly along the slot.
func PXY(c1 ele.Coord, lx, ly, angleDeg float64) ele.Coord {
	a := angleDeg * math.Pi / 180
	cx, cy := math.Cos(a), math.Sin(a)
	return ele.Coord{
		X: c1.X + lx*cx - ly*cy,
		Y: c1.Y + lx*cy + ly*cx,
	}
}
