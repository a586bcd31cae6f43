// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the joint/link topology of a planar mechanism:
// VPoint is a kinematic pair (R, P or RP); VLink is a named group of
// joints. Everything downstream (triangulation, constraint building)
// reads this model but never mutates its X, Y design coordinates.
package ele

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// JointType is the kind of kinematic pair a VPoint represents.
type JointType int

// joint kinds
const (
	R  JointType = iota // pure rotation (pin)
	P                   // pure translation (slider on slot)
	RP                  // rotation + translation (slider with a pin)
)

// String returns the expression-form tag for t.
func (t JointType) String() string {
	switch t {
	case R:
		return "R"
	case P:
		return "P"
	case RP:
		return "RP"
	}
	return "?"
}

// Coord is a 2D Cartesian point.
type Coord struct{ X, Y float64 }

// VPoint is a joint (kinematic pair). Links[0] is the base/slot link;
// the rest are pin links. An empty Links means a free-floating joint.
type VPoint struct {
	Links     []string  // insertion-ordered, deduped
	Type      JointType // R, P or RP
	Angle     float64   // slot orientation in degrees, in [0,180); only meaningful for P/RP
	X, Y      float64   // design-time coordinates (immutable after construction)
	C         []Coord   // current coordinates: len==1 for R, len==2 (slot anchor, pin) for P/RP
	HasOffset bool      // whether Offset is active
	Offset    float64   // signed slot-anchor-to-pin distance when HasOffset
	ColorStr  string    // visual metadata only; not part of the kinematic contract
}

// dedupLinks splits a comma-separated link-name list and removes
// duplicates while preserving the first-seen order.
func dedupLinks(names string) []string {
	if strings.TrimSpace(names) == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, raw := range strings.Split(names, ",") {
		n := strings.TrimSpace(raw)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// RJoint creates a new R (revolute) joint at (x,y) with the given
// comma-separated link membership list.
func RJoint(links string, x, y float64) *VPoint {
	return &VPoint{
		Links: dedupLinks(links),
		Type:  R,
		X:     x,
		Y:     y,
		C:     []Coord{{x, y}},
	}
}

// SliderJoint creates a new P or RP joint. angle is the slot orientation
// in degrees; it is normalized to [0,180) immediately, same as Rotate.
func SliderJoint(links string, typ JointType, angle, x, y float64) (*VPoint, error) {
	if typ != P && typ != RP {
		return nil, chk.Err("SliderJoint: type must be P or RP, got %v", typ)
	}
	v := &VPoint{
		Links: dedupLinks(links),
		Type:  typ,
		X:     x,
		Y:     y,
		C:     []Coord{{x, y}, {x, y}},
	}
	v.Rotate(angle)
	return v, nil
}

// Rotate sets Angle = angle mod 180, keeping the result in [0,180).
func (v *VPoint) Rotate(angle float64) {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	v.Angle = a
}

// Copy returns a deep logical copy of v; v.C is preserved exactly via Move.
func (v *VPoint) Copy() *VPoint {
	links := make([]string, len(v.Links))
	copy(links, v.Links)
	w := &VPoint{
		Links:     links,
		Type:      v.Type,
		Angle:     v.Angle,
		X:         v.X,
		Y:         v.Y,
		HasOffset: v.HasOffset,
		Offset:    v.Offset,
		ColorStr:  v.ColorStr,
		C:         make([]Coord, len(v.C)),
	}
	if len(v.C) == 1 {
		w.Move(v.C[0])
	} else {
		w.Move(v.C[0], v.C[1])
	}
	return w
}

// Move overwrites c[0] with c1. For P/RP joints c[1] becomes c2 if given,
// otherwise c1. c2 is ignored for R joints.
func (v *VPoint) Move(c1 Coord, c2 ...Coord) {
	if len(v.C) == 0 {
		v.C = make([]Coord, 1)
	}
	v.C[0] = c1
	if v.Type == R {
		return
	}
	if len(v.C) < 2 {
		v.C = append(v.C, c1)
	}
	if len(c2) > 0 {
		v.C[1] = c2[0]
	} else {
		v.C[1] = c1
	}
}

// SetOffset activates a fixed signed slot-anchor-to-pin distance.
func (v *VPoint) SetOffset(val float64) { v.HasOffset = true; v.Offset = val }

// DisableOffset turns the offset constraint off.
func (v *VPoint) DisableOffset() { v.HasOffset = false }

// TrueOffset is the Euclidean distance between the current slot anchor
// c[0] and the current pin position (c[1], or c[0] again for R joints).
func (v *VPoint) TrueOffset() float64 {
	pin := v.C[0]
	if len(v.C) > 1 {
		pin = v.C[1]
	}
	dx, dy := pin.X-v.C[0].X, pin.Y-v.C[0].Y
	return math.Hypot(dx, dy)
}

// CX, CY are the "visible" current coordinates: the slot anchor for R
// joints, the pin for P/RP joints.
func (v *VPoint) CX() float64 { return v.visible().X }
func (v *VPoint) CY() float64 { return v.visible().Y }

func (v *VPoint) visible() Coord {
	if v.Type == R {
		return v.C[0]
	}
	return v.C[len(v.C)-1]
}

// endpoint resolves num per slope_angle's selector rule:
// 0 = slot anchor, 1 = pin, >=2 = original design (x,y).
func (v *VPoint) endpoint(num int) Coord {
	switch {
	case num == 0:
		return v.C[0]
	case num == 1:
		return v.C[len(v.C)-1]
	default:
		return Coord{v.X, v.Y}
	}
}

// NoLink reports whether v is free-floating (no link membership).
func (v *VPoint) NoLink() bool { return len(v.Links) == 0 }

// Grounded reports whether v is incident on the "ground" link: for R
// joints "ground" may appear anywhere in Links; for P/RP joints the
// first (slot) link must be "ground".
func (v *VPoint) Grounded() bool {
	if v.Type == R {
		for _, l := range v.Links {
			if l == "ground" {
				return true
			}
		}
		return false
	}
	return len(v.Links) > 0 && v.Links[0] == "ground"
}

// PinGrounded reports whether "ground" appears among the pin-side links
// (everything after Links[0]).
func (v *VPoint) PinGrounded() bool {
	for _, l := range v.Links[1:] {
		if l == "ground" {
			return true
		}
	}
	return false
}

// IsSlotLink reports whether name is v's base/slot link (Links[0]).
func (v *VPoint) IsSlotLink(name string) bool {
	return len(v.Links) > 0 && v.Links[0] == name
}

// SameLink returns the first link name shared between v and other, and
// whether one exists.
func (v *VPoint) SameLink(other *VPoint) (string, bool) {
	for _, a := range v.Links {
		for _, b := range other.Links {
			if a == b {
				return a, true
			}
		}
	}
	return "", false
}

// contactEnd picks c[0] (base end) or the pin end, per the rule: use c[0]
// if v is R or v's base link equals shared; otherwise use the pin end.
func (v *VPoint) contactEnd(shared string) Coord {
	if v.Type == R || v.IsSlotLink(shared) {
		return v.C[0]
	}
	return v.C[len(v.C)-1]
}

// Distance measures the separation between v and other. If they share a
// link, the contact ends (per contactEnd, applied symmetrically) are
// used; otherwise c[0] is used on both sides.
func (v *VPoint) Distance(other *VPoint) float64 {
	var a, b Coord
	if shared, ok := v.SameLink(other); ok {
		a, b = v.contactEnd(shared), other.contactEnd(shared)
	} else {
		a, b = v.C[0], other.C[0]
	}
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SlopeAngle returns, in degrees, the angle from horizontal of the vector
// other -> v (i.e. v's selected endpoint minus other's selected
// endpoint). num1 selects v's endpoint, num2 selects other's; 0=slot,
// 1=pin, >=2 (default) = original design (x,y).
func (v *VPoint) SlopeAngle(other *VPoint, num1, num2 int) float64 {
	self := v.endpoint(num1)
	peer := other.endpoint(num2)
	dx, dy := self.X-peer.X, self.Y-peer.Y
	return math.Atan2(dy, dx) / math.Pi * 180
}

// Equal is structural equality over (Links, C, Type, X, Y, Angle).
func (v *VPoint) Equal(other *VPoint) bool {
	if other == nil {
		return false
	}
	if v.Type != other.Type || v.X != other.X || v.Y != other.Y || v.Angle != other.Angle {
		return false
	}
	if len(v.Links) != len(other.Links) {
		return false
	}
	for i := range v.Links {
		if v.Links[i] != other.Links[i] {
			return false
		}
	}
	if len(v.C) != len(other.C) {
		return false
	}
	for i := range v.C {
		if v.C[i] != other.C[i] {
			return false
		}
	}
	return true
}

// Compare supports only "==" and "!=". Any other relation is rejected
// with an InvalidCompare error: equality between joints has no ordering,
// only (in)equality.
func (v *VPoint) Compare(other *VPoint, op string) (bool, error) {
	switch op {
	case "==":
		return v.Equal(other), nil
	case "!=":
		return !v.Equal(other), nil
	default:
		return false, chk.Err("InvalidCompare: unsupported relation %q between VPoint values", op)
	}
}

// trimFloat formats f with trailing fractional zeros (and a trailing
// decimal point) stripped, e.g. 10.0 -> "10", 10.50 -> "10.5".
func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return s
}

// String renders v in the expression form:
// J[type(,A[angle])?(,color[name])?,P[x,y],L[link,...]]
func (v *VPoint) String() string {
	var b strings.Builder
	b.WriteString("J[")
	b.WriteString(v.Type.String())
	if v.Type != R {
		b.WriteString(",A[")
		b.WriteString(trimFloat(v.Angle))
		b.WriteString("]")
	}
	if v.ColorStr != "" {
		b.WriteString(",color[")
		b.WriteString(v.ColorStr)
		b.WriteString("]")
	}
	b.WriteString(",P[")
	b.WriteString(trimFloat(v.X))
	b.WriteString(",")
	b.WriteString(trimFloat(v.Y))
	b.WriteString("],L[")
	b.WriteString(strings.Join(v.Links, ","))
	b.WriteString("]]")
	return b.String()
}

// IsNaN reports whether any of v's current coordinates are NaN, the
// caller's hook for detecting an unreachable construction; the rest of
// the math is unguarded.
func (v *VPoint) IsNaN() bool {
	for _, c := range v.C {
		if math.IsNaN(c.X) || math.IsNaN(c.Y) {
			return true
		}
	}
	return false
}
