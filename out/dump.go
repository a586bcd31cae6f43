// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out formats a compiled construction stack and a solved
// mechanism's positions as plain text: no rendering or animation layer.
package out

import (
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/kmolyuan/pyslvs-go/ele"
	"github.com/kmolyuan/pyslvs-go/inp"
)

// DumpStack renders every record of stack as one line per tuple, in
// emission order, e.g. "[PLLP P3 L7 L8 P5 P9]".
func DumpStack(stack *inp.EStack) string {
	l := ""
	for _, t := range stack.AsList() {
		l += io.Sf("%v\n", []string(t))
	}
	return l
}

// DumpPositions renders a symbol->position map sorted by symbol, for
// stable, diffable output across runs.
func DumpPositions(points map[string]ele.Coord) string {
	syms := make([]string, 0, len(points))
	for sym := range points {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	l := ""
	for _, sym := range syms {
		c := points[sym]
		l += io.Sf("%s: (%g, %g)\n", sym, c.X, c.Y)
	}
	return l
}

// Print writes DumpStack(stack) to stdout via gosl's io.Pf.
func Print(stack *inp.EStack) { io.Pf("%s", DumpStack(stack)) }

// PrintPositions writes DumpPositions(points) to stdout.
func PrintPositions(points map[string]ele.Coord) { io.Pf("%s", DumpPositions(points)) }
