// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/kmolyuan/pyslvs-go/ele"
	"github.com/kmolyuan/pyslvs-go/inp"
	"github.com/kmolyuan/pyslvs-go/msolid"
)

func fourbar() []*ele.VPoint {
	return []*ele.VPoint{
		ele.RJoint("ground,L1", 0, 0),
		ele.RJoint("L1,L2", 40, 0),
		ele.RJoint("L2,L3", 40, 30),
		ele.RJoint("ground,L3", 0, 30),
	}
}

// sliderCrank builds a crank (v0 ground pivot, v1 crank pin on L2) driving a
// slider (v2) whose slot is grounded and fixed along the x axis.
func sliderCrank(typ ele.JointType) []*ele.VPoint {
	v0 := ele.RJoint("ground,L1", 0, 0)
	v1 := ele.RJoint("L1,L2", 10, 0)
	v2, err := ele.SliderJoint("ground,L2", typ, 0, 25, 0)
	if err != nil {
		panic(err)
	}
	return []*ele.VPoint{v0, v1, v2}
}

func Test_build01(tst *testing.T) {

	chk.PrintTitle("build")

	vpoints := fourbar()
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, nil); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	if len(sys.Points) != len(vpoints) {
		tst.Errorf("expected one Point per joint, got %d\n", len(sys.Points))
	}
	if len(sys.Constraints) == 0 {
		tst.Errorf("expected at least the link-length constraints to be built\n")
	}
}

func Test_solve_already_satisfied01(tst *testing.T) {

	chk.PrintTitle("solve already satisfied")

	vpoints := fourbar()
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, nil); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}

	drv := &Driver{Silent: true}
	drv.Init(sys)
	status, err := drv.Solve()
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if status != Success {
		tst.Errorf("a configuration that already satisfies every constraint should solve to Success, got %v\n", status)
	}
}

func Test_setinputs_rejects_nondriver01(tst *testing.T) {

	chk.PrintTitle("setinputs rejects non-driver")

	vpoints := fourbar()
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, nil); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	if err := sys.SetInputs(map[int]float64{2: 45}); err == nil {
		tst.Errorf("SetInputs should reject a joint that was never declared a driver\n")
	}
	if err := sys.SetInputs(map[int]float64{1: 45}); err != nil {
		tst.Errorf("SetInputs should accept the declared driver: %v\n", err)
	}
}

func Test_grounded_slider_pin_is_free01(tst *testing.T) {

	chk.PrintTitle("grounded slider pin is a free param")

	vpoints := sliderCrank(ele.RP)
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, nil); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}

	base, ok := sys.slotBase[2]
	if !ok {
		tst.Errorf("expected a slot anchor to be allocated for the grounded slider\n")
		return
	}
	if base.Kind != msolid.KindConst {
		tst.Errorf("a grounded slider's slot anchor should be fixed (KindConst), got %v\n", base.Kind)
	}
	if sys.Points[2].Kind != msolid.KindParam {
		tst.Errorf("a grounded slider's pin must stay free to slide (KindParam), got %v\n", sys.Points[2].Kind)
	}

	drv := &Driver{Silent: true}
	drv.Init(sys)
	status, err := drv.Solve()
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if status != Success {
		tst.Errorf("slider-crank should be solvable from its own design coordinates, got %v\n", status)
	}
}

func Test_slider_offset01(tst *testing.T) {

	chk.PrintTitle("slider offset constraint")

	vpoints := sliderCrank(ele.RP)
	vpoints[2].SetOffset(3)
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, nil); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}

	var found bool
	for _, c := range sys.Constraints {
		if d, ok := c.(msolid.P2PDistance); ok && d.Dist == 3 {
			found = true
		}
	}
	if !found {
		tst.Errorf("expected a P2PDistance(3) offset constraint between the slot anchor and the pin\n")
	}
}

func Test_slider_zero_offset_uses_point_on_point01(tst *testing.T) {

	chk.PrintTitle("slider zero offset uses PointOnPoint")

	vpoints := sliderCrank(ele.RP)
	vpoints[2].SetOffset(0)
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, nil); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}

	var found bool
	for _, c := range sys.Constraints {
		if _, ok := c.(msolid.PointOnPoint); ok {
			found = true
		}
	}
	if !found {
		tst.Errorf("expected a PointOnPoint constraint for a zero-magnitude offset\n")
	}
}

// countKind counts constraints of the given Kind() string.
func countKind(cs []msolid.Constraint, kind string) int {
	n := 0
	for _, c := range cs {
		if c.Kind() == kind {
			n++
		}
	}
	return n
}

func Test_P_vs_RP_orientation_lock01(tst *testing.T) {

	chk.PrintTitle("P joint locks pin-link orientation, RP does not")

	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	rp := sliderCrank(ele.RP)
	sysRP := &SolverSystem{}
	if err := sysRP.Build(rp, inputs, nil); err != nil {
		tst.Errorf("Build (RP) failed: %v\n", err)
		return
	}

	p := sliderCrank(ele.P)
	sysP := &SolverSystem{}
	if err := sysP.Build(p, inputs, nil); err != nil {
		tst.Errorf("Build (P) failed: %v\n", err)
		return
	}

	nRP := countKind(sysRP.Constraints, "InternalAngle")
	nP := countKind(sysP.Constraints, "InternalAngle")
	if nP <= nRP {
		tst.Errorf("a pure P joint with a pin-side link-mate should add an extra InternalAngle lock over RP: RP=%d P=%d\n", nRP, nP)
	}
}

func Test_floating_slider_angle_to_mate01(tst *testing.T) {

	chk.PrintTitle("floating slider locks slot angle to its link mate")

	v0 := ele.RJoint("ground,L1", 0, 0)
	v1 := ele.RJoint("L1,L2", 10, 0)
	slot, err := ele.SliderJoint("L2,L3", ele.RP, 0, 25, 0)
	if err != nil {
		tst.Errorf("SliderJoint failed: %v\n", err)
		return
	}
	mate := ele.RJoint("L2,L4", 25, 10) // shares L2 with the slider's slot link
	vpoints := []*ele.VPoint{v0, v1, slot, mate}
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, nil); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	if countKind(sys.Constraints, "InternalAngle") == 0 {
		tst.Errorf("expected a floating slider to lock its slot angle against a link-mate via InternalAngle\n")
	}
}

func Test_known_data01(tst *testing.T) {

	chk.PrintTitle("known-data coordinates and canonicalized distances")

	vpoints := fourbar()
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	data := &KnownData{
		Coords: map[int]ele.Coord{1: {X: 40, Y: 0}},
		Dists:  map[[2]int]float64{sortPair(2, 1): 30},
	}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, data); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	if !sys.dataIdx[1] {
		tst.Errorf("joint 1 should have been classified as known data\n")
	}
	if sys.Points[1].Kind != msolid.KindData {
		tst.Errorf("joint 1's Point should live in the KindData pool, got %v\n", sys.Points[1].Kind)
	}

	// distance keyed as {1,2} must hit the same entry inserted as {2,1}.
	got := data.distance(1, 2, vpoints)
	if got != 30 {
		tst.Errorf("sortPair should canonicalize (1,2) and (2,1) to the same Dists entry, got %v\n", got)
	}
}

func Test_setdata_rejects_non_data_joint01(tst *testing.T) {

	chk.PrintTitle("setdata rejects a joint that was never classified as data")

	vpoints := fourbar()
	inputs := []inp.DriverInput{{Base: 0, Node: 1, AngleDeg: 0}}

	sys := &SolverSystem{}
	if err := sys.Build(vpoints, inputs, nil); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	if err := sys.SetData(1, ele.Coord{X: 1, Y: 1}); err == nil {
		tst.Errorf("SetData should reject a joint that Build never classified as KindData\n")
	}
}
