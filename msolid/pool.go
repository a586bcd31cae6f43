// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid holds the constraint catalogue the numerical solver
// drives to zero: PointOnPoint, P2PDistance, PointOnLine, InternalAngle
// and LineInternalAngle, plus the Pool arena and Point/Line views they
// operate on. Pool replaces a raw-pointer-into-a-growable-list scheme:
// every Point/Line is a pair of stable integer indices into one of
// Pool's three slices, never a captured address, so nothing here can be
// invalidated by the pool growing during build.
package msolid

import "github.com/cpmech/gosl/chk"

// PoolKind selects which of Pool's three disjoint scalar lists a Point's
// coordinates live in.
type PoolKind int

const (
	KindParam PoolKind = iota // unknowns the minimizer may move
	KindConst                 // fixed scalars (grounded coordinates, driver angles in radians)
	KindData                  // externally supplied known coordinates
)

// Pool is the parameter pool: three append-only lists of doubles. Build
// only ever appends; nothing is freed or reordered before solve, so every
// index handed out stays valid for the pool's entire lifetime.
type Pool struct {
	Params    []float64
	Constants []float64
	DataVals  []float64
}

// Push appends v to the list kind selects and returns its stable index.
func (p *Pool) Push(kind PoolKind, v float64) int {
	switch kind {
	case KindParam:
		p.Params = append(p.Params, v)
		return len(p.Params) - 1
	case KindConst:
		p.Constants = append(p.Constants, v)
		return len(p.Constants) - 1
	case KindData:
		p.DataVals = append(p.DataVals, v)
		return len(p.DataVals) - 1
	}
	panic(chk.Err("Pool.Push: unknown PoolKind %d", kind))
}

// Get reads the scalar at (kind, idx).
func (p *Pool) Get(kind PoolKind, idx int) float64 {
	switch kind {
	case KindParam:
		return p.Params[idx]
	case KindConst:
		return p.Constants[idx]
	case KindData:
		return p.DataVals[idx]
	}
	panic(chk.Err("Pool.Get: unknown PoolKind %d", kind))
}

// Set overwrites the scalar at (kind, idx). Used by SetData and
// SetInputs.
func (p *Pool) Set(kind PoolKind, idx int, v float64) {
	switch kind {
	case KindParam:
		p.Params[idx] = v
	case KindConst:
		p.Constants[idx] = v
	case KindData:
		p.DataVals[idx] = v
	default:
		panic(chk.Err("Pool.Set: unknown PoolKind %d", kind))
	}
}

// Point is a stable view of one joint's (x,y): both fields always live in
// the same list.
type Point struct {
	Kind   PoolKind
	XIdx   int
	YIdx   int
}

// X, Y read the point's current coordinates from pool.
func (pt Point) X(pool *Pool) float64 { return pool.Get(pt.Kind, pt.XIdx) }
func (pt Point) Y(pool *Pool) float64 { return pool.Get(pt.Kind, pt.YIdx) }

// PushPoint appends a new (x,y) pair to kind's lists and returns a Point
// view onto it.
func PushPoint(pool *Pool, kind PoolKind, x, y float64) Point {
	return Point{Kind: kind, XIdx: pool.Push(kind, x), YIdx: pool.Push(kind, y)}
}
