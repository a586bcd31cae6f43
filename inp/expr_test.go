// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_aslist01(tst *testing.T) {

	chk.PrintTitle("aslist")

	pla := PLA("P0", "L0", "A0", "P1").AsList()
	plap := PLAP("P0", "L0", "A0", "P2", "P1").AsList()

	if pla[0] != "PLAP" || plap[0] != "PLAP" {
		tst.Errorf("PLA and PLAP must both render tag 'PLAP': got %q and %q\n", pla[0], plap[0])
	}
	if len(pla) != 5 {
		tst.Errorf("PLA tuple should carry 4 symbols after the tag, got %d entries\n", len(pla))
	}
	if len(plap) != 6 {
		tst.Errorf("PLAP tuple should carry 5 symbols after the tag, got %d entries\n", len(plap))
	}
}

func Test_symgen01(tst *testing.T) {

	chk.PrintTitle("symgen")

	g := &SymGen{}
	if g.NextL() != "L0" || g.NextL() != "L1" {
		tst.Errorf("length symbols should be independently monotonic starting at L0\n")
	}
	if g.NextA() != "A0" || g.NextA() != "A1" {
		tst.Errorf("angle symbols should be independently monotonic starting at A0\n")
	}
	if g.NextL() != "L2" {
		tst.Errorf("length counter should not have been perturbed by angle allocations\n")
	}
}

func Test_estack01(tst *testing.T) {

	chk.PrintTitle("estack")

	s := &EStack{}
	s.Push(PLA("P0", "L0", "A0", "P1"))
	s.Push(PLLP("P0", "L1", "L2", "P1", "P2"))
	if s.Len() != 2 {
		tst.Errorf("expected 2 pushed records, got %d\n", s.Len())
	}

	s.SetConst("L0", 10)
	if v, ok := s.Const("L0"); !ok || v != 10 {
		tst.Errorf("Const should round-trip the value set by SetConst\n")
	}
	if _, ok := s.Const("L99"); ok {
		tst.Errorf("Const should report false for an unset symbol\n")
	}
}
