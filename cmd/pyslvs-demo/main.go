// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/kmolyuan/pyslvs-go/ele"
	"github.com/kmolyuan/pyslvs-go/fem"
	"github.com/kmolyuan/pyslvs-go/inp"
)

func main() {
	io.Pf("\npyslvs-go -- planar mechanism kinematics\n\n")

	step := flag.Float64("step", 10, "crank angle step, in degrees")
	flag.Parse()

	npts := int(360 / *step) + 1
	angles := utl.LinSpace(0, 360, npts)

	vpoints := []*ele.VPoint{
		ele.RJoint("ground,L1", 0, 0),
		ele.RJoint("L1,L2", 40, 0),
		ele.RJoint("L2,L3", 40, 30),
		ele.RJoint("ground,L3", 0, 30),
	}
	inputs := []inp.DriverInput{{Base: 0, Node: 1}}

	compiled, err := fem.Compile(vpoints, inputs, nil)
	if err != nil {
		chk.Panic("compile failed: %v", err)
	}
	sym := compiled.DriverSymbols[1]

	for _, theta := range angles {
		positions, err := fem.Execute(compiled, map[string]float64{sym: theta})
		if err != nil {
			chk.Panic("execute failed: %v", err)
		}
		io.Pf("theta=%.1f\n", theta)
		for i := range vpoints {
			p := positions[inp.PSym(i)]
			io.Pf("  P%d: (%.4f, %.4f)\n", i, p.X, p.Y)
		}
	}
}
