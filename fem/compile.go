// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the triangulation compiler: given a mechanism
// (joints and links) and a declared set of driven inputs, it produces an
// ordered EStack of closed-form geometric constructions that, replayed in
// order, yield every joint's position for a commanded input
// configuration. This mirrors a finite-element Domain's assemble-then-
// solve split, assembling a plan before anything is actually solved,
// except the "equations" here are symbolic geometry steps, not a
// finite-element residual.
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/kmolyuan/pyslvs-go/ele"
	"github.com/kmolyuan/pyslvs-go/inp"
	"github.com/kmolyuan/pyslvs-go/shp"
)

// Compiled is the result of Compile: the construction stack plus the
// promoted working topology it was built against (P-to-RP promotion
// means the joint types Execute must honour can differ from the caller's
// original vpoints).
type Compiled struct {
	Stack *inp.EStack
	Work  []*ele.VPoint

	// DriverSymbols maps each driver's Node index to the angle symbol
	// emitDriver assigned it, so a caller can command a new angle via
	// Execute's angleOverrides without recompiling, so a full input sweep
	// can reuse one compiled stack.
	DriverSymbols map[int]string
}

// anchorSym names the constant grounded slot-anchor point of joint n
// (distinct from PSym(n), which names the solved pin/target position).
func anchorSym(n int) string { return inp.PSym(n) + "a" }

// farSym names a second constant point on joint n's slot line, one unit
// beyond its anchor along the slot direction. Together anchorSym(n) and
// farSym(n) pin down the infinite line a grounded slider's pin must lie
// on, for use as a PLPP operand.
func farSym(n int) string { return inp.PSym(n) + "f" }

// choosePLPPOp evaluates both PLPP roots and returns the op value whose
// result lands closest to target, used to keep the emitted branch
// consistent with the mechanism's original configuration.
func choosePLPPOp(c1 ele.Coord, l0 float64, c2, c3, target ele.Coord) bool {
	a := shp.PLPP(c1, l0, c2, c3, false)
	b := shp.PLPP(c1, l0, c2, c3, true)
	da := math.Hypot(a.X-target.X, a.Y-target.Y)
	db := math.Hypot(b.X-target.X, b.Y-target.Y)
	return db < da
}

// Compile runs the triangulation algorithm. status, if non-nil, must have
// length len(vpoints); it is filled in with which joints ended up solved,
// the caller's hook for falling back to the numerical solver on partial
// results. Under-determined structure is never an error here, only
// malformed input is.
func Compile(vpoints []*ele.VPoint, inputs []inp.DriverInput, status []bool) (*Compiled, error) {
	n := len(vpoints)
	if status != nil && len(status) != n {
		return nil, chk.Err("Compile: status slice length %d does not match %d vpoints", len(status), n)
	}
	work := make([]*ele.VPoint, n)
	for i, v := range vpoints {
		work[i] = v.Copy()
	}

	vlinks := ele.LinkMap(work)
	promote(work)

	solved := make([]bool, n)
	for i, v := range work {
		if v.NoLink() || (v.Type == ele.R && v.Grounded()) {
			solved[i] = true
		}
	}

	pos := make([]ele.Coord, n)
	for i, v := range work {
		if v.Type == ele.R {
			pos[i] = v.C[0]
		} else {
			pos[i] = v.C[1]
		}
	}

	stack := &inp.EStack{}

	// seed grounded slider anchors: always known, never "solved" by a
	// construction step, needed as PLPP operands.
	for i, v := range work {
		if v.Type != ele.R && v.Grounded() {
			stack.SetPoint(anchorSym(i), v.C[0])
			theta := v.Angle * math.Pi / 180
			stack.SetPoint(farSym(i), ele.Coord{X: v.C[0].X + math.Cos(theta), Y: v.C[0].Y + math.Sin(theta)})
		}
	}

	gen := &inp.SymGen{}
	pending := append([]inp.DriverInput(nil), inputs...)
	driverSyms := make(map[int]string, len(inputs))

	emitDriver := func(d inp.DriverInput) {
		l, a := gen.NextL(), gen.NextA()
		e := inp.PLA(inp.PSym(d.Base), l, a, inp.PSym(d.Node))
		stack.Push(e)
		stack.SetConst(l, work[d.Base].Distance(work[d.Node]))
		stack.SetConst(a, work[d.Node].SlopeAngle(work[d.Base], 2, 2))
		driverSyms[d.Node] = a
		solved[d.Node] = true
	}

	flushPending := func() bool {
		progress := false
		rest := pending[:0]
		for _, d := range pending {
			if !solved[d.Node] && solved[d.Base] {
				emitDriver(d)
				progress = true
			} else if !solved[d.Node] {
				rest = append(rest, d)
			}
		}
		pending = rest
		return progress
	}

	solvedCount := 0
	for _, ok := range solved {
		if ok {
			solvedCount++
		}
	}

	dispatch := func(i int) bool {
		// a joint declared as a driver target is only ever solved through
		// flushPending, once its base becomes solved; it never goes
		// through the generic per-type production below.
		for _, d := range pending {
			if d.Node == i {
				return false
			}
		}
		v := work[i]
		switch v.Type {
		case ele.R:
			return dispatchR(work, vlinks, pos, solved, stack, gen, i)
		case ele.P:
			return dispatchP(work, vlinks, pos, solved, stack, gen, i)
		case ele.RP:
			return dispatchRP(work, vlinks, pos, solved, stack, gen, i)
		}
		return false
	}

	skip := 0
	idx := 0
	for solvedCount < n && skip < n+1 {
		if flushPending() {
			skip = 0
		}
		recount := func() {
			solvedCount = 0
			for _, ok := range solved {
				if ok {
					solvedCount++
				}
			}
		}
		recount()
		if solvedCount >= n {
			break
		}
		i := idx % n
		idx++
		if solved[i] {
			continue
		}
		if dispatch(i) {
			solved[i] = true
			skip = 0
		} else {
			skip++
		}
		recount()
	}

	if status != nil {
		copy(status, solved)
	}
	return &Compiled{Stack: stack, Work: work, DriverSymbols: driverSyms}, nil
}

// promote rewrites, in place, every R joint on a grounded P joint's
// pin-side links (other than the P joint itself) into an RP joint whose
// slot is that P joint's slot. This is a preprocessing step run before
// triangulation.
func promote(work []*ele.VPoint) {
	original := make([]ele.JointType, len(work))
	for i, v := range work {
		original[i] = v.Type
	}
	vlinks := ele.LinkMap(work)
	for b, base := range work {
		if original[b] != ele.P || !base.Grounded() {
			continue
		}
		slotLink := base.Links[0]
		for _, linkName := range base.Links[1:] {
			for _, ni := range vlinks[linkName] {
				if ni == b || original[ni] != ele.R {
					continue
				}
				newLinks := subtractLinks(work[ni].Links, base.Links)
				links := append([]string{slotLink}, newLinks...)
				x, y := work[ni].X, work[ni].Y
				work[ni] = &ele.VPoint{
					Type:  ele.RP,
					Links: links,
					Angle: base.Angle,
					X:     x,
					Y:     y,
					C:     []ele.Coord{{X: x, Y: y}, {X: x, Y: y}},
				}
			}
		}
	}
}

func subtractLinks(links, remove []string) []string {
	skip := make(map[string]bool, len(remove))
	for _, r := range remove {
		skip[r] = true
	}
	var out []string
	for _, l := range links {
		if !skip[l] {
			out = append(out, l)
		}
	}
	return out
}

// sharedFriends returns, in ascending index order, every joint index
// (other than self) sharing a link with self and already solved.
func sharedFriends(work []*ele.VPoint, vlinks map[string][]int, solved []bool, self int, links []string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, name := range links {
		for _, m := range vlinks[name] {
			if m == self || seen[m] || !solved[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

func dispatchR(work []*ele.VPoint, vlinks map[string][]int, pos []ele.Coord, solved []bool, stack *inp.EStack, gen *inp.SymGen, n int) bool {
	friends := sharedFriends(work, vlinks, solved, n, work[n].Links)
	if len(friends) < 2 {
		return false
	}
	fa, fb := friends[0], friends[1]
	if shp.Clockwise(pos[fa], pos[n], pos[fb]) {
		fa, fb = fb, fa
	}
	l0, l1 := gen.NextL(), gen.NextL()
	stack.SetConst(l0, work[fa].Distance(work[n]))
	stack.SetConst(l1, work[fb].Distance(work[n]))
	stack.Push(inp.PLLP(inp.PSym(fa), l0, l1, inp.PSym(fb), inp.PSym(n)))
	return true
}

func dispatchP(work []*ele.VPoint, vlinks map[string][]int, pos []ele.Coord, solved []bool, stack *inp.EStack, gen *inp.SymGen, n int) bool {
	v := work[n]
	if !v.Grounded() || v.PinGrounded() || v.HasOffset {
		return false
	}
	pinLinks := v.Links[1:]
	friends := sharedFriends(work, vlinks, solved, n, pinLinks)
	if len(friends) == 0 {
		return false
	}
	fa := friends[0]
	anchor, far := anchorSym(n), farSym(n)
	anchorPt, _ := stack.Point(anchor)
	farPt, _ := stack.Point(far)
	l0 := gen.NextL()
	dist := work[fa].Distance(v)
	stack.SetConst(l0, dist)
	op := choosePLPPOp(pos[fa], dist, anchorPt, farPt, pos[n])
	stack.Push(inp.PLPP(inp.PSym(fa), l0, anchor, far, inp.PSym(n), op))
	solved[n] = true

	for _, linkName := range pinLinks {
		for _, fbIdx := range vlinks[linkName] {
			if fbIdx == n || solved[fbIdx] {
				continue
			}
			lx2, ly2 := gen.NextL(), gen.NextL()
			setAxialConsts(stack, work, lx2, ly2, n, fbIdx, v.Angle)
			stack.Push(inp.PXY(inp.PSym(n), lx2, ly2, inp.PSym(fbIdx)))
			solved[fbIdx] = true
		}
	}
	return true
}

// setAxialConsts resolves the axial (lx) and perpendicular (ly) design
// offsets from work[from] to work[to], measured in the slot frame at
// angleDeg, and records them under the given symbols.
func setAxialConsts(stack *inp.EStack, work []*ele.VPoint, lxSym, lySym string, from, to int, angleDeg float64) {
	a := angleDeg * math.Pi / 180
	ux, uy := math.Cos(a), math.Sin(a)   // slot axis
	wx, wy := -math.Sin(a), math.Cos(a)  // perpendicular axis, matches shp.PXY's basis
	dx := work[to].CX() - work[from].CX()
	dy := work[to].CY() - work[from].CY()
	stack.SetConst(lxSym, dx*ux+dy*uy)
	stack.SetConst(lySym, dx*wx+dy*wy)
}

func dispatchRP(work []*ele.VPoint, vlinks map[string][]int, pos []ele.Coord, solved []bool, stack *inp.EStack, gen *inp.SymGen, n int) bool {
	v := work[n]
	if v.PinGrounded() || v.HasOffset {
		return false
	}
	theta := v.Angle * math.Pi / 180
	dirX, dirY := math.Cos(theta), math.Sin(theta)
	sSeed := ele.Coord{X: pos[n].X + dirX, Y: pos[n].Y + dirY}
	sSym := inp.SSym(n)

	faFriends := sharedFriends(work, vlinks, solved, n, v.Links[1:])
	if len(faFriends) == 0 {
		return false
	}
	fa := faFriends[0]

	if v.Grounded() {
		stack.SetPoint(sSym, sSeed)
	} else {
		baseFriends := sharedFriends(work, vlinks, solved, n, v.Links[:1])
		if len(baseFriends) < 2 {
			return false
		}
		fb, fd := baseFriends[0], baseFriends[1]
		if !shp.Clockwise(pos[fb], sSeed, pos[fd]) {
			fb, fd = fd, fb
		}
		l0, l1 := gen.NextL(), gen.NextL()
		stack.SetConst(l0, math.Hypot(pos[fb].X-sSeed.X, pos[fb].Y-sSeed.Y))
		stack.SetConst(l1, math.Hypot(pos[fd].X-sSeed.X, pos[fd].Y-sSeed.Y))
		stack.Push(inp.PLLP(inp.PSym(fb), l0, l1, inp.PSym(fd), sSym))
	}

	anchor := anchorSym(n)
	anchorPt, ok := stack.Point(anchor)
	if !ok {
		// floating slot: no grounded anchor was seeded; approximate it
		// with the compile-time seed, per DESIGN.md's documented
		// simplification of the floating-RP corner case.
		anchorPt = pos[n]
		stack.SetPoint(anchor, anchorPt)
	}
	l2 := gen.NextL()
	dist := work[fa].Distance(v)
	stack.SetConst(l2, dist)
	op := choosePLPPOp(pos[fa], dist, anchorPt, sSeed, pos[n])
	stack.Push(inp.PLPP(inp.PSym(fa), l2, anchor, sSym, inp.PSym(n), op))
	return true
}
