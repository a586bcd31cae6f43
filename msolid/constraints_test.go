// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_p2pdistance01(tst *testing.T) {

	chk.PrintTitle("p2pdistance")

	pool := &Pool{}
	a := PushPoint(pool, KindConst, 0, 0)
	b := PushPoint(pool, KindConst, 3, 4)

	c := P2PDistance{A: a, B: b, Dist: 5}
	r := c.Residuals(pool)
	chk.Scalar(tst, "residual at exact distance", 1e-12, r[0], 0)

	bad := P2PDistance{A: a, B: b, Dist: 10}
	r2 := bad.Residuals(pool)
	if math.Abs(r2[0]) < 1e-9 {
		tst.Errorf("residual should be non-zero when the distance is wrong\n")
	}
}

func Test_pointonpoint01(tst *testing.T) {

	chk.PrintTitle("pointonpoint")

	pool := &Pool{}
	a := PushPoint(pool, KindParam, 1, 1)
	b := PushPoint(pool, KindConst, 1, 1)

	c := PointOnPoint{A: a, B: b}
	r := c.Residuals(pool)
	chk.Scalar(tst, "rx", 1e-12, r[0], 0)
	chk.Scalar(tst, "ry", 1e-12, r[1], 0)

	pool.Set(KindParam, a.XIdx, 2)
	r = c.Residuals(pool)
	if r[0] == 0 {
		tst.Errorf("residual should move off zero once the points separate\n")
	}
}

func Test_pointonline01(tst *testing.T) {

	chk.PrintTitle("pointonline")

	pool := &Pool{}
	p := PushPoint(pool, KindParam, 5, 0)
	la := PushPoint(pool, KindConst, 0, 0)
	lb := PushPoint(pool, KindConst, 10, 0)

	c := PointOnLine{Pt: p, Ln: Line{A: la, B: lb}}
	r := c.Residuals(pool)
	chk.Scalar(tst, "on the line", 1e-12, r[0], 0)

	pool.Set(KindParam, p.YIdx, 2)
	r = c.Residuals(pool)
	chk.Scalar(tst, "off the line by 2", 1e-12, r[0], 2)
}

func Test_lineinternalangle01(tst *testing.T) {

	chk.PrintTitle("lineinternalangle")

	pool := &Pool{}
	a := PushPoint(pool, KindParam, 0, 0)
	b := PushPoint(pool, KindParam, 1, 1)

	c := LineInternalAngle{Ln: Line{A: a, B: b}, AngleRad: math.Pi / 4}
	r := c.Residuals(pool)
	chk.Scalar(tst, "45deg line vs 45deg target", 1e-12, r[0], 0)
}
