// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// Constraint is one residual contribution the solver drives to zero.
// Residuals may return more than one component (PointOnPoint needs both
// axes); the driver concatenates every constraint's components into one
// objective vector.
type Constraint interface {
	Residuals(pool *Pool) []float64
	Kind() string
}

// PointOnPoint ties two points to the same location, e.g. a slider's
// slot anchor and pin when its offset is zero.
type PointOnPoint struct {
	A, B Point
}

func (c PointOnPoint) Kind() string { return "PointOnPoint" }

func (c PointOnPoint) Residuals(pool *Pool) []float64 {
	return []float64{c.A.X(pool) - c.B.X(pool), c.A.Y(pool) - c.B.Y(pool)}
}

// P2PDistance pins the Euclidean distance between two points to Dist, a
// rigid link's length.
type P2PDistance struct {
	A, B Point
	Dist float64
}

func (c P2PDistance) Kind() string { return "P2PDistance" }

func (c P2PDistance) Residuals(pool *Pool) []float64 {
	dx := c.A.X(pool) - c.B.X(pool)
	dy := c.A.Y(pool) - c.B.Y(pool)
	return []float64{math.Hypot(dx, dy) - c.Dist}
}

// PointOnLine pins Pt to the line through Ln.A-Ln.B, a slider's pin
// confined to its slot line.
type PointOnLine struct {
	Pt Point
	Ln Line
}

func (c PointOnLine) Kind() string { return "PointOnLine" }

func (c PointOnLine) Residuals(pool *Pool) []float64 {
	ax, ay := c.Ln.A.X(pool), c.Ln.A.Y(pool)
	bx, by := c.Ln.B.X(pool), c.Ln.B.Y(pool)
	px, py := c.Pt.X(pool), c.Pt.Y(pool)
	cross := (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	length := math.Hypot(bx-ax, by-ay)
	if length == 0 {
		return []float64{cross}
	}
	return []float64{cross / length}
}

// InternalAngle pins the angle between two lines (L2 measured from L1) to
// AngleRad, used to fix a floating slider's slot relative to a link-mate
// and a P joint's pin-side link relative to its slot.
type InternalAngle struct {
	L1, L2   Line
	AngleRad float64
}

func (c InternalAngle) Kind() string { return "InternalAngle" }

func (c InternalAngle) Residuals(pool *Pool) []float64 {
	diff := wrap(c.L2.angle(pool) - c.L1.angle(pool) - c.AngleRad)
	return []float64{diff}
}

// LineInternalAngle pins a single line's world orientation to AngleRad,
// a slider slot's fixed heading, or a driver's commanded angle.
type LineInternalAngle struct {
	Ln       Line
	AngleRad float64
}

func (c LineInternalAngle) Kind() string { return "LineInternalAngle" }

func (c LineInternalAngle) Residuals(pool *Pool) []float64 {
	return []float64{wrap(c.Ln.angle(pool) - c.AngleRad)}
}
