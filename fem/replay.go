// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"strconv"

	"github.com/cpmech/gosl/chk"

	"github.com/kmolyuan/pyslvs-go/ele"
	"github.com/kmolyuan/pyslvs-go/inp"
	"github.com/kmolyuan/pyslvs-go/shp"
)

// Execute replays a compiled stack, producing the Cartesian position of
// every point symbol it touches. angleOverrides lets the caller command a
// different driver angle (in degrees) than the design-time default stored
// at compile time, keyed by the driver's angle symbol. This is how the
// same compiled stack gets reused across an input sweep without
// recompiling. Passing nil reproduces the mechanism's original
// configuration.
//
// The numeric meaning of every L/A symbol was already attached at compile
// time (Compile records it via EStack.SetConst); this function is simply
// the consumer that plays that meaning back.
func Execute(c *Compiled, angleOverrides map[string]float64) (map[string]ele.Coord, error) {
	points := make(map[string]ele.Coord)
	for i, v := range c.Work {
		if v.NoLink() || (v.Type == ele.R && v.Grounded()) {
			points[inp.PSym(i)] = v.C[0]
		}
	}
	for i, v := range c.Work {
		if v.Type != ele.R && v.Grounded() {
			points[anchorSym(i)] = v.C[0]
		}
	}

	resolvePoint := func(sym string) (ele.Coord, error) {
		if p, ok := points[sym]; ok {
			return p, nil
		}
		if p, ok := c.Stack.Point(sym); ok {
			return p, nil
		}
		return ele.Coord{}, chk.Err("Execute: point symbol %q referenced before it was solved", sym)
	}
	resolveScalar := func(sym string) (float64, error) {
		if sym == "" {
			return 0, nil
		}
		if v, ok := angleOverrides[sym]; ok {
			return v, nil
		}
		if v, ok := c.Stack.Const(sym); ok {
			return v, nil
		}
		return 0, chk.Err("Execute: scalar symbol %q has no recorded value", sym)
	}
	angleOf := func(sym string) (float64, error) {
		idx, err := pointIndex(sym)
		if err != nil {
			return 0, err
		}
		return c.Work[idx].Angle, nil
	}

	for _, e := range c.Stack.Exprs() {
		switch e.Tag {
		case inp.TagPLA, inp.TagPLAP:
			base, err := resolvePoint(e.C1)
			if err != nil {
				return nil, err
			}
			l, err := resolveScalar(e.L0)
			if err != nil {
				return nil, err
			}
			a, err := resolveScalar(e.A)
			if err != nil {
				return nil, err
			}
			if e.Tag == inp.TagPLA {
				points[e.Target] = shp.PLA(base, l, a)
			} else {
				pivot, err := resolvePoint(e.C2)
				if err != nil {
					return nil, err
				}
				points[e.Target] = shp.PLAP(base, l, a, pivot)
			}
		case inp.TagPLLP:
			c1, err := resolvePoint(e.C1)
			if err != nil {
				return nil, err
			}
			c2, err := resolvePoint(e.C2)
			if err != nil {
				return nil, err
			}
			l0, err := resolveScalar(e.L0)
			if err != nil {
				return nil, err
			}
			l1, err := resolveScalar(e.L1)
			if err != nil {
				return nil, err
			}
			points[e.Target] = shp.PLLP(c1, l0, l1, c2)
		case inp.TagPLPP:
			c1, err := resolvePoint(e.C1)
			if err != nil {
				return nil, err
			}
			c2, err := resolvePoint(e.C2)
			if err != nil {
				return nil, err
			}
			c3, err := resolvePoint(e.C3)
			if err != nil {
				return nil, err
			}
			l0, err := resolveScalar(e.L0)
			if err != nil {
				return nil, err
			}
			points[e.Target] = shp.PLPP(c1, l0, c2, c3, e.Op)
		case inp.TagPXY:
			c1, err := resolvePoint(e.C1)
			if err != nil {
				return nil, err
			}
			lx, err := resolveScalar(e.L0)
			if err != nil {
				return nil, err
			}
			ly, err := resolveScalar(e.L1)
			if err != nil {
				return nil, err
			}
			angle, err := angleOf(e.C1)
			if err != nil {
				return nil, err
			}
			points[e.Target] = shp.PXY(c1, lx, ly, angle)
		}
	}
	return points, nil
}

// pointIndex parses a "Pn" symbol back into its joint index.
func pointIndex(sym string) (int, error) {
	if len(sym) < 2 || sym[0] != 'P' {
		return 0, chk.Err("Execute: %q is not a point symbol", sym)
	}
	n, err := strconv.Atoi(sym[1:])
	if err != nil {
		return 0, chk.Err("Execute: %q is not a point symbol: %v", sym, err)
	}
	return n, nil
}
