package lattice

import (
	"testing"

	"rnalattice/internal/core"
)

func TestTryBondNoChainEndsIsNoOp(t *testing.T) {
	b := New(4, 1, 1)
	rng := core.NewRNG(1)
	if b.TryBond(rng) {
		t.Fatal("TryBond on empty board: want false")
	}
}

func TestTryBondLinksAdjacentEnds(t *testing.T) {
	// Two separate 2-unit chains at X=0,1 and X=2,3: unit 1 (X=1, Next=-1)
	// and unit 2 (X=2, Prev=-1) are adjacent chain ends.
	b := New(4, 1, 1)
	b.unit = []Unit{
		{Base: 0, Pos: core.Vec{X: 0}, Index: 0, Prev: -1, Next: 1},
		{Base: 1, Pos: core.Vec{X: 1}, Index: 1, Prev: 0, Next: -1},
		{Base: 2, Pos: core.Vec{X: 2}, Index: 2, Prev: -1, Next: 3},
		{Base: 3, Pos: core.Vec{X: 3}, Index: 3, Prev: 2, Next: -1},
	}
	for i := range b.unit {
		b.setCell(b.unit[i].Pos, b.unit[i].Rev, i)
	}
	b.Params.BondProb = 1 // force acceptance
	rng := core.NewRNG(1)

	formed := false
	for i := 0; i < 50 && !formed; i++ {
		formed = b.TryBond(rng)
	}
	if !formed {
		t.Fatal("TryBond never formed a bond across 50 attempts with BondProb=1")
	}
	if err := b.AssertValid(); err != nil {
		t.Fatalf("AssertValid after bond: %v", err)
	}
}

func TestTryBondNeverFiresWithZeroProb(t *testing.T) {
	b := New(4, 1, 1)
	b.unit = []Unit{
		{Base: 0, Pos: core.Vec{X: 0}, Index: 0, Prev: -1, Next: 1},
		{Base: 1, Pos: core.Vec{X: 1}, Index: 1, Prev: 0, Next: -1},
		{Base: 2, Pos: core.Vec{X: 2}, Index: 2, Prev: -1, Next: 3},
		{Base: 3, Pos: core.Vec{X: 3}, Index: 3, Prev: 2, Next: -1},
	}
	for i := range b.unit {
		b.setCell(b.unit[i].Pos, b.unit[i].Rev, i)
	}
	b.Params.BondProb = 0
	rng := core.NewRNG(1)
	for i := 0; i < 50; i++ {
		if b.TryBond(rng) {
			t.Fatal("TryBond formed a bond with BondProb=0")
		}
	}
}
