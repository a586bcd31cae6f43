// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds closed-form position checks for a handful of classic
// mechanisms, a four-bar and a slider-crank, computed independently of
// fem.Compile/fem.Execute. No test in this repository calls them.
package ana

import (
	"math"

	"github.com/kmolyuan/pyslvs-go/ele"
	"github.com/kmolyuan/pyslvs-go/shp"
)

// FourBar is a planar four-bar linkage: O2 and O4 are the fixed ground
// pivots, Input is the crank's length, Coupler connects the crank's tip
// to the rocker's tip, and Output is the rocker's length.
type FourBar struct {
	O2, O4  ele.Coord
	Input   float64
	Coupler float64
	Output  float64
}

// Calc returns the crank-tip (A) and rocker-tip (B) positions for a
// crank angle thetaDeg measured from the positive x-axis at O2.
func (o FourBar) Calc(thetaDeg float64) (a, b ele.Coord) {
	theta := thetaDeg * math.Pi / 180
	a = ele.Coord{X: o.O2.X + o.Input*math.Cos(theta), Y: o.O2.Y + o.Input*math.Sin(theta)}
	b = shp.PLLP(a, o.Coupler, o.Output, o.O4)
	return
}
