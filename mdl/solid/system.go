// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid builds and drives the numerical fallback: a SolverSystem
// that allocates a msolid.Pool per the joint-classification rules and
// assembles the constraint set a BFGS-family minimizer (package-level
// Driver) then drives to zero. This is the path taken when triangulation
// alone cannot place every joint, and the path used to refine a
// triangulated layout against numerical drift after many input sweeps.
package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/kmolyuan/pyslvs-go/ele"
	"github.com/kmolyuan/pyslvs-go/inp"
	"github.com/kmolyuan/pyslvs-go/msolid"
)

// KnownData carries positions and lengths already known before a build:
// joint coordinates (keyed by joint index, e.g. from a prior triangulation
// pass) and link lengths (keyed by an unordered pair of joint indices,
// canonicalized by sortPair so either insertion order hits the same
// entry). A nil *KnownData behaves like one with both maps empty.
type KnownData struct {
	Coords map[int]ele.Coord
	Dists  map[[2]int]float64
}

// sortPair canonicalizes an unordered joint-index pair into a single map
// key, so {a,b} and {b,a} always land on the same KnownData.Dists entry.
func sortPair(a, b int) [2]int {
	if a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}

func (d *KnownData) coord(joint int) (ele.Coord, bool) {
	if d == nil {
		return ele.Coord{}, false
	}
	c, ok := d.Coords[joint]
	return c, ok
}

// distance returns the known length between a and b, if any, else
// measures it from the current design positions and caches the result so
// later lookups (and a caller inspecting d afterwards) see the same
// value future builds would use.
func (d *KnownData) distance(a, b int, vpoints []*ele.VPoint) float64 {
	key := sortPair(a, b)
	if d != nil {
		if v, ok := d.Dists[key]; ok {
			return v
		}
	}
	v := vpoints[a].Distance(vpoints[b])
	if d != nil {
		if d.Dists == nil {
			d.Dists = make(map[[2]int]float64)
		}
		d.Dists[key] = v
	}
	return v
}

// SolverSystem owns one msolid.Pool and the Points/Constraints built
// against it. Build is called once per topology; SetInputs and SetData
// mutate the pool in place afterwards without reallocating anything, so
// repeated solves over an input sweep stay allocation-free.
type SolverSystem struct {
	Pool        *msolid.Pool
	Points      []msolid.Point // pin position (R: its only point; P/RP: the pin)
	Constraints []msolid.Constraint

	slotBase map[int]msolid.Point // P/RP joints: slot anchor (v.C[0])
	slotDir  map[int]msolid.Point // P/RP joints: second point fixing the slot's direction

	driverAngleIdx map[int]int // joint index (driver target) -> pool.Constants index
	dataIdx        map[int]bool // joint index -> true if its Point lives in KindData
}

// Build allocates a fresh pool and constraint set for vpoints under the
// given driver inputs, using data (as filled in from a prior triangulation
// pass, or supplied directly by a caller) to decide which joints and link
// lengths are already known. A nil data treats everything as unresolved,
// i.e. a pure numerical solve from scratch.
func (s *SolverSystem) Build(vpoints []*ele.VPoint, inputs []inp.DriverInput, data *KnownData) error {
	n := len(vpoints)
	s.Pool = &msolid.Pool{}
	s.Points = make([]msolid.Point, n)
	s.Constraints = nil
	s.slotBase = make(map[int]msolid.Point)
	s.slotDir = make(map[int]msolid.Point)
	s.driverAngleIdx = make(map[int]int)
	s.dataIdx = make(map[int]bool)

	for i, v := range vpoints {
		s.allocJoint(vpoints, i, v, data)
	}

	vlinks := ele.LinkMap(vpoints)
	seen := make(map[[2]int]bool)
	for name, joints := range vlinks {
		if name == ele.GroundName || len(joints) < 2 {
			continue
		}
		for a := 0; a < len(joints); a++ {
			for b := a + 1; b < len(joints); b++ {
				i, j := joints[a], joints[b]
				key := sortPair(i, j)
				if seen[key] {
					continue
				}
				seen[key] = true
				if s.dataIdx[i] && s.dataIdx[j] {
					continue // both ends already fully known: nothing left to constrain
				}
				dist := data.distance(i, j, vpoints)
				s.Constraints = append(s.Constraints, msolid.P2PDistance{
					A: s.linkPoint(vpoints[i], i, name),
					B: s.linkPoint(vpoints[j], j, name),
					Dist: dist,
				})
			}
		}
	}

	for i, v := range vpoints {
		if v.Type == ele.R || v.NoLink() || s.dataIdx[i] {
			continue
		}
		s.buildSlider(vpoints, vlinks, i, v)
	}

	for _, d := range inputs {
		idx := s.Pool.Push(msolid.KindConst, d.AngleDeg*math.Pi/180)
		s.driverAngleIdx[d.Node] = idx
		s.Constraints = append(s.Constraints, &driverAngle{
			ln:  msolid.Line{A: s.Points[d.Base], B: s.Points[d.Node]},
			idx: idx,
		})
	}
	return nil
}

// allocJoint assigns v's pin Point (and, for sliders, its slot Points) per
// the parameter allocation rules: no links -> constant; known data ->
// KindData; grounded (with no data) -> constant for a plain R joint, but a
// slider's pin still needs to move along its slot, so it goes to params
// instead, with its slot anchor held constant; floating (no data) ->
// params throughout, except a pin-grounded slider's pin is itself
// grounded and so constant.
func (s *SolverSystem) allocJoint(vpoints []*ele.VPoint, i int, v *ele.VPoint, data *KnownData) {
	if c, ok := data.coord(i); ok {
		s.Points[i] = msolid.PushPoint(s.Pool, msolid.KindData, c.X, c.Y)
		s.dataIdx[i] = true
		return
	}
	if v.NoLink() {
		s.Points[i] = msolid.PushPoint(s.Pool, msolid.KindConst, v.CX(), v.CY())
		return
	}
	if v.Type == ele.R {
		kind := msolid.KindParam
		if v.Grounded() {
			kind = msolid.KindConst
		}
		s.Points[i] = msolid.PushPoint(s.Pool, kind, v.CX(), v.CY())
		return
	}

	// Slider: the slot anchor follows the plain-joint rule above (fixed
	// once grounded, free once floating); the pin always needs at least
	// one free coordinate to slide, unless the pin side is itself
	// grounded.
	baseKind := msolid.KindParam
	if v.Grounded() {
		baseKind = msolid.KindConst
	}
	s.slotBase[i] = msolid.PushPoint(s.Pool, baseKind, v.C[0].X, v.C[0].Y)

	theta := v.Angle * math.Pi / 180
	dirSeed := ele.Coord{X: v.C[0].X + math.Cos(theta), Y: v.C[0].Y + math.Sin(theta)}
	s.slotDir[i] = msolid.PushPoint(s.Pool, msolid.KindParam, dirSeed.X, dirSeed.Y)

	pinKind := msolid.KindParam
	if v.PinGrounded() {
		pinKind = msolid.KindConst
	}
	pin := nudgeOffSingularity(v)
	s.Points[i] = msolid.PushPoint(s.Pool, pinKind, pin.X, pin.Y)
}

// nudgeOffSingularity returns v's pin seed, displaced slightly off the
// slot anchor when an active offset constraint would otherwise start the
// minimizer at (or within rounding of) a zero-length P2PDistance, a
// singular point for its gradient.
func nudgeOffSingularity(v *ele.VPoint) ele.Coord {
	pin := v.C[len(v.C)-1]
	if v.HasOffset && v.TrueOffset() <= 0.1 {
		theta := v.Angle * math.Pi / 180
		return ele.Coord{X: pin.X + 0.1*math.Cos(theta), Y: pin.Y + 0.1*math.Sin(theta)}
	}
	return pin
}

// linkPoint is the Point a link-length constraint should reference for
// joint i on link name: the slot anchor when name is v's slot link,
// otherwise the pin (or the plain position, for an R joint). A
// KindData joint was resolved to a single Point by allocJoint, with no
// separate slot anchor allocated, so it always uses that Point.
func (s *SolverSystem) linkPoint(v *ele.VPoint, i int, name string) msolid.Point {
	if !s.dataIdx[i] && v.Type != ele.R && v.IsSlotLink(name) {
		return s.slotBase[i]
	}
	return s.Points[i]
}

// buildSlider emits the slot-line and pin-confinement constraints for
// slider joint i, plus its offset and P-vs-RP orientation locks.
func (s *SolverSystem) buildSlider(vpoints []*ele.VPoint, vlinks map[string][]int, i int, v *ele.VPoint) {
	slot := msolid.Line{A: s.slotBase[i], B: s.slotDir[i]}

	if v.Grounded() {
		s.Constraints = append(s.Constraints, msolid.LineInternalAngle{
			Ln: slot, AngleRad: v.Angle * math.Pi / 180,
		})
	} else if mate, ok := floatingMate(vlinks, v.Links[0], i); ok {
		angle := (v.SlopeAngle(vpoints[mate], 0, 0) - v.Angle) * math.Pi / 180
		s.Constraints = append(s.Constraints, msolid.InternalAngle{
			L1: slot, L2: msolid.Line{A: s.slotBase[i], B: s.Points[mate]}, AngleRad: angle,
		})
	}

	s.Constraints = append(s.Constraints, msolid.PointOnLine{Pt: s.Points[i], Ln: slot})

	if v.HasOffset {
		if v.Offset == 0 {
			s.Constraints = append(s.Constraints, msolid.PointOnPoint{A: s.slotBase[i], B: s.Points[i]})
		} else {
			s.Constraints = append(s.Constraints, msolid.P2PDistance{
				A: s.slotBase[i], B: s.Points[i], Dist: math.Abs(v.Offset),
			})
		}
	}

	if v.Type != ele.P {
		return
	}
	for _, link := range v.Links[1:] {
		friend, ok := floatingMate(vlinks, link, i)
		if !ok {
			continue
		}
		angle := (v.SlopeAngle(vpoints[friend], 1, 0) - v.Angle) * math.Pi / 180
		s.Constraints = append(s.Constraints, msolid.InternalAngle{
			L1: slot, L2: msolid.Line{A: s.Points[i], B: s.Points[friend]}, AngleRad: angle,
		})
	}
}

// floatingMate returns the first joint on link, other than self, that
// isn't self, if any: the single "link-mate" a floating slot's orientation
// constraint (or a P joint's per-pin-link lock) measures against.
func floatingMate(vlinks map[string][]int, link string, self int) (int, bool) {
	for _, j := range vlinks[link] {
		if j != self {
			return j, true
		}
	}
	return 0, false
}

// driverAngle is a LineInternalAngle whose commanded value lives at a
// known, mutable pool.Constants index so SetInputs can change it without
// touching the Constraints slice.
type driverAngle struct {
	ln  msolid.Line
	idx int
}

func (d *driverAngle) Kind() string { return "LineInternalAngle" }

func (d *driverAngle) Residuals(pool *msolid.Pool) []float64 {
	c := msolid.LineInternalAngle{Ln: d.ln, AngleRad: pool.Get(msolid.KindConst, d.idx)}
	return c.Residuals(pool)
}

// SetInputs commands new driver angles (degrees) without rebuilding the
// system. Any joint not present in driverAngleIdx is rejected: the
// solver never silently reinterprets a non-driver joint as one.
func (s *SolverSystem) SetInputs(angles map[int]float64) error {
	for node, deg := range angles {
		idx, ok := s.driverAngleIdx[node]
		if !ok {
			return chk.Err("SetInputs: joint %d is not a declared driver input", node)
		}
		s.Pool.Set(msolid.KindConst, idx, deg*math.Pi/180)
	}
	return nil
}

// SetData overwrites the known position of a joint previously classified
// KindData (one fem.Compile already solved), e.g. after a fresh
// triangulation pass over the same topology.
func (s *SolverSystem) SetData(joint int, c ele.Coord) error {
	if !s.dataIdx[joint] {
		return chk.Err("SetData: joint %d was not allocated in the known-data pool", joint)
	}
	pt := s.Points[joint]
	s.Pool.Set(pt.Kind, pt.XIdx, c.X)
	s.Pool.Set(pt.Kind, pt.YIdx, c.Y)
	return nil
}

// SamePoints reports whether every joint symbol present in both ref and
// this system's current pool agrees within tol, the round-trip check
// between a closed-form replay and a numerical refinement of the same
// topology.
func (s *SolverSystem) SamePoints(ref map[string]ele.Coord, tol float64) bool {
	for i, pt := range s.Points {
		c, ok := ref[inp.PSym(i)]
		if !ok {
			continue
		}
		dx := pt.X(s.Pool) - c.X
		dy := pt.Y(s.Pool) - c.Y
		if math.Hypot(dx, dy) > tol {
			return false
		}
	}
	return true
}

// Positions reads out every joint's current pin coordinates as a symbol
// map, in the same "Pn" namespace fem.Execute uses.
func (s *SolverSystem) Positions() map[string]ele.Coord {
	out := make(map[string]ele.Coord, len(s.Points))
	for i, pt := range s.Points {
		out[inp.PSym(i)] = ele.Coord{X: pt.X(s.Pool), Y: pt.Y(s.Pool)}
	}
	return out
}

// SlotBase reads out a slider joint's current slot-anchor position.
func (s *SolverSystem) SlotBase(joint int) (ele.Coord, bool) {
	pt, ok := s.slotBase[joint]
	if !ok {
		return ele.Coord{}, false
	}
	return ele.Coord{X: pt.X(s.Pool), Y: pt.Y(s.Pool)}, true
}

// ShowInputs prints every declared driver's current commanded angle.
func (s *SolverSystem) ShowInputs() {
	for node, idx := range s.driverAngleIdx {
		io.Pf("driver P%d: %v deg\n", node, s.Pool.Get(msolid.KindConst, idx)*180/math.Pi)
	}
}

// ShowData prints every known (KindData) joint's current position.
func (s *SolverSystem) ShowData() {
	for i, pt := range s.Points {
		if s.dataIdx[i] {
			io.Pf("data P%d: (%v, %v)\n", i, pt.X(s.Pool), pt.Y(s.Pool))
		}
	}
}
