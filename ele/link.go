// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// GroundName is the reserved link name designating the inertial frame.
const GroundName = "ground"

// VLink is a rigid body: a name and the ordered set of joint indices
// belonging to it.
type VLink struct {
	Name   string
	Joints []int // indices into the owning []*VPoint slice
}

// NewVLink returns a VLink with no joints yet.
func NewVLink(name string) *VLink {
	return &VLink{Name: name}
}

// BuildLinks groups joint indices by link name, in first-seen order. It
// is the same grouping the triangulation compiler and SolverSystem.Build
// use, which both obtain it through LinkMap.
func BuildLinks(vpoints []*VPoint) []*VLink {
	index := make(map[string]int)
	var links []*VLink
	for n, vp := range vpoints {
		for _, name := range vp.Links {
			i, ok := index[name]
			if !ok {
				i = len(links)
				index[name] = i
				links = append(links, NewVLink(name))
			}
			links[i].Joints = append(links[i].Joints, n)
		}
	}
	return links
}

// LinkMap is the same grouping as BuildLinks but keyed by name, for quick
// lookup (e.g. the P-to-RP promotion step needs "all R joints on link L").
func LinkMap(vpoints []*VPoint) map[string][]int {
	m := make(map[string][]int)
	for n, vp := range vpoints {
		for _, name := range vp.Links {
			m[name] = append(m[name], n)
		}
	}
	return m
}
