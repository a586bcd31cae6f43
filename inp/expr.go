// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp holds the construction-record vocabulary the triangulation
// compiler (package fem) emits and the SolverSystem driver-angle inputs
// it shares with the numerical solver: the Expr tagged record, the
// ordered EStack it accumulates into, and the symbol namespaces (P, L,
// A, S) that vocabulary uses.
package inp

import (
	"fmt"

	"github.com/kmolyuan/pyslvs-go/ele"
)

// Tag discriminates the five construction primitives. Expr is a single
// tagged record, not five interface implementations: the primitives form
// a closed sum type and are modelled as such.
type Tag string

// construction primitives
const (
	TagPLA  Tag = "PLA"  // point from length + angle (driver)
	TagPLAP Tag = "PLAP" // point from length + angle + pivot
	TagPLLP Tag = "PLLP" // point from two lengths + two pivots (triangle)
	TagPLPP Tag = "PLPP" // point from length + projected line
	TagPXY  Tag = "PXY"  // point from two axial offsets
)

// Expr is one construction step: compute Target from already-known
// operands. Which fields are meaningful depends on Tag; unused fields are
// left zero-valued.
type Expr struct {
	Tag        Tag
	C1, C2, C3 string // point operands (joint symbols "Pn" or synthetic "Sn")
	L0, L1     string // length operands
	A          string // angle operand (PLA/PLAP only)
	Op         bool   // PLPP branch selector; unused otherwise
	Target     string // output point symbol
}

// PLA builds a point-from-length-and-angle driver record: target is
// placed at distance L along angle A from base.
func PLA(base, l, a, target string) Expr {
	return Expr{Tag: TagPLA, C1: base, L0: l, A: a, Target: target}
}

// PLAP builds a point-from-length-angle-and-pivot record.
func PLAP(base, l, a, pivot, target string) Expr {
	return Expr{Tag: TagPLAP, C1: base, L0: l, A: a, C2: pivot, Target: target}
}

// PLLP builds a triangle record: target is the intersection of a circle
// of radius l0 around c1 and a circle of radius l1 around c2.
func PLLP(c1, l0, l1, c2, target string) Expr {
	return Expr{Tag: TagPLLP, C1: c1, L0: l0, L1: l1, C2: c2, Target: target}
}

// PLPP builds a point-from-length-and-projected-line record: target is
// at distance l0 from c1, projected onto the line through c2-c3. op
// selects which of the two roots to take.
func PLPP(c1, l0, c2, c3, target string, op bool) Expr {
	return Expr{Tag: TagPLPP, C1: c1, L0: l0, C2: c2, C3: c3, Target: target, Op: op}
}

// PXY builds an axial-offset record: target = c1 + (lx, ly) measured
// along c1's own slot axes.
func PXY(c1, lx, ly, target string) Expr {
	return Expr{Tag: TagPXY, C1: c1, L0: lx, L1: ly, Target: target}
}

// Tuple is the flat string-tuple rendering AsList produces, e.g.
// ("PLLP","P3","L7","L8","P5","P9").
type Tuple []string

// AsList renders e as a flat string tuple. PLA and PLAP both render with
// the literal tag "PLAP": only their arity (4 vs 5 symbols after the tag)
// tells them apart downstream. This merge is kept as documented behavior,
// not treated as a bug to fix.
func (e Expr) AsList() Tuple {
	switch e.Tag {
	case TagPLA:
		return Tuple{"PLAP", e.C1, e.L0, e.A, e.Target}
	case TagPLAP:
		return Tuple{"PLAP", e.C1, e.L0, e.A, e.C2, e.Target}
	case TagPLLP:
		return Tuple{"PLLP", e.C1, e.L0, e.L1, e.C2, e.Target}
	case TagPLPP:
		op := "0"
		if e.Op {
			op = "1"
		}
		return Tuple{"PLPP", e.C1, e.L0, e.C2, e.C3, e.Target, op}
	case TagPXY:
		return Tuple{"PXY", e.C1, e.L0, e.L1, e.Target}
	}
	return nil
}

// EStack is the ordered sequence of construction records the
// triangulation compiler produces; later records may reference symbols
// produced by earlier ones, never the reverse.
type EStack struct {
	exprs  []Expr
	consts map[string]float64 // resolved L/A symbol values, fixed at compile time
	points map[string]ele.Coord // constant point seeds (grounded anchors, synthetic slot points)
}

// Push appends e to the stack.
func (s *EStack) Push(e Expr) { s.exprs = append(s.exprs, e) }

// SetConst records the compile-time value of a length or angle symbol
// (e.g. a rigid link's design length, or a driver's default angle).
func (s *EStack) SetConst(sym string, v float64) {
	if s.consts == nil {
		s.consts = make(map[string]float64)
	}
	s.consts[sym] = v
}

// Const returns the compile-time value recorded for sym, if any.
func (s *EStack) Const(sym string) (float64, bool) {
	v, ok := s.consts[sym]
	return v, ok
}

// SetPoint seeds a constant point symbol (a grounded slot anchor, or a
// synthetic slot-end point from an RP joint's promotion) that no Expr
// ever produces as a Target.
func (s *EStack) SetPoint(sym string, c ele.Coord) {
	if s.points == nil {
		s.points = make(map[string]ele.Coord)
	}
	s.points[sym] = c
}

// Point returns the constant point recorded for sym, if any.
func (s *EStack) Point(sym string) (ele.Coord, bool) {
	c, ok := s.points[sym]
	return c, ok
}

// Len returns the number of pushed records.
func (s *EStack) Len() int { return len(s.exprs) }

// Exprs returns the underlying records in emission order.
func (s *EStack) Exprs() []Expr { return s.exprs }

// AsList renders every record via Expr.AsList, in emission order.
func (s *EStack) AsList() []Tuple {
	out := make([]Tuple, len(s.exprs))
	for i, e := range s.exprs {
		out[i] = e.AsList()
	}
	return out
}

// PSym is the point symbol for joint index n.
func PSym(n int) string { return fmt.Sprintf("P%d", n) }

// SSym is the synthetic slot-endpoint point symbol associated with joint
// index n (the "S" namespace of the Expr record).
func SSym(n int) string { return fmt.Sprintf("S%d", n) }

// SymGen hands out fresh, monotonically increasing length and angle
// symbols. Lengths and angles are independent counters.
type SymGen struct {
	nextL, nextA int
}

// NextL returns the next length symbol, e.g. "L0", "L1", ...
func (g *SymGen) NextL() string {
	s := fmt.Sprintf("L%d", g.nextL)
	g.nextL++
	return s
}

// NextA returns the next angle symbol, e.g. "A0", "A1", ...
func (g *SymGen) NextA() string {
	s := fmt.Sprintf("A%d", g.nextA)
	g.nextA++
	return s
}
