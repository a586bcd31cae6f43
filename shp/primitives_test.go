// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/kmolyuan/pyslvs-go/ele"
)

func Test_pla01(tst *testing.T) {

	chk.PrintTitle("pla")

	base := ele.Coord{X: 0, Y: 0}
	p := PLA(base, 10, 30)
	chk.Scalar(tst, "distance", 1e-12, math.Hypot(p.X-base.X, p.Y-base.Y), 10)
	chk.Scalar(tst, "angle", 1e-12, math.Atan2(p.Y, p.X)*180/math.Pi, 30)
}

func Test_pllp01(tst *testing.T) {

	chk.PrintTitle("pllp")

	c1 := ele.Coord{X: 0, Y: 0}
	c2 := ele.Coord{X: 10, Y: 0}
	p := PLLP(c1, 6, 8, c2)
	chk.Scalar(tst, "dist to c1", 1e-9, math.Hypot(p.X-c1.X, p.Y-c1.Y), 6)
	chk.Scalar(tst, "dist to c2", 1e-9, math.Hypot(p.X-c2.X, p.Y-c2.Y), 8)

	swapped := PLLP(c2, 8, 6, c1)
	if math.Abs(p.X-swapped.X) < 1e-9 && math.Abs(p.Y-swapped.Y) < 1e-9 {
		tst.Errorf("swapping c1/c2 (with lengths swapped to match) should select the other root\n")
	}
}

func Test_pxy01(tst *testing.T) {

	chk.PrintTitle("pxy")

	c1 := ele.Coord{X: 1, Y: 2}
	angle := 40.0
	target := PLA(c1, 5, angle+25) // an arbitrary point reachable by axial offsets
	a := angle * math.Pi / 180
	ux, uy := math.Cos(a), math.Sin(a)
	wx, wy := -math.Sin(a), math.Cos(a)
	dx, dy := target.X-c1.X, target.Y-c1.Y
	lx := dx*ux + dy*uy
	ly := dx*wx + dy*wy

	got := PXY(c1, lx, ly, angle)
	chk.Scalar(tst, "pxy.x", 1e-9, got.X, target.X)
	chk.Scalar(tst, "pxy.y", 1e-9, got.Y, target.Y)
}

func Test_clockwise01(tst *testing.T) {

	chk.PrintTitle("clockwise")

	c1 := ele.Coord{X: 0, Y: 0}
	c2 := ele.Coord{X: 1, Y: 0}
	c3 := ele.Coord{X: 1, Y: 1}
	if !Clockwise(c1, c2, c3) {
		tst.Errorf("this triangle's turn should register as clockwise (cross >= 0)\n")
	}
	if Clockwise(c1, c3, c2) {
		tst.Errorf("reversing the turn should flip the orientation test\n")
	}
}
