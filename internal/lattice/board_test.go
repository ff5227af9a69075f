package lattice

import (
	"testing"

	"rnalattice/internal/core"
)

func TestAddSeqLinearChain(t *testing.T) {
	b := New(4, 1, 1)
	if err := b.AddSeq("acgu"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}

	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	wantChars := "acgu"
	for i := 0; i < 4; i++ {
		u := b.Unit(i)
		if u.Pos != (core.Vec{X: i, Y: 0, Z: 0}) {
			t.Errorf("unit %d pos = %v, want (%d,0,0)", i, u.Pos, i)
		}
		if u.BaseChar() != wantChars[i] {
			t.Errorf("unit %d base = %q, want %q", i, u.BaseChar(), wantChars[i])
		}
	}
	if b.Unit(0).Prev != -1 || b.Unit(0).Next != 1 {
		t.Errorf("unit 0 links = (%d,%d), want (-1,1)", b.Unit(0).Prev, b.Unit(0).Next)
	}
	if b.Unit(3).Next != -1 {
		t.Errorf("unit 3 next = %d, want -1", b.Unit(3).Next)
	}
	if err := b.AssertValid(); err != nil {
		t.Fatalf("AssertValid: %v", err)
	}
	if err := b.AssertLinear(); err != nil {
		t.Fatalf("AssertLinear: %v", err)
	}
}

func TestAddSeqRejectsNonRNA(t *testing.T) {
	b := New(4, 1, 1)
	err := b.AddSeq("xcgu")
	if err == nil || err.Error() != "Sequence is not RNA" {
		t.Fatalf("err = %v, want Sequence is not RNA", err)
	}
}

func TestAddSeqRejectsTooLong(t *testing.T) {
	b := New(2, 1, 1)
	err := b.AddSeq("acg")
	if err == nil || err.Error() != "Board is too small for sequence" {
		t.Fatalf("err = %v, want Board is too small for sequence", err)
	}
}

func TestAddSeqRejectsOccupiedCell(t *testing.T) {
	b := New(4, 1, 1)
	if err := b.AddSeq("ac"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	err := b.AddSeq("ag")
	if err == nil || err.Error() != "Cell occupied" {
		t.Fatalf("err = %v, want Cell occupied", err)
	}
}

func TestAddBasesOnlyFillsEmptyCells(t *testing.T) {
	b := New(4, 4, 1)
	rng := core.NewRNG(7)
	b.AddBases(1.0, rng)
	if err := b.AssertValid(); err != nil {
		t.Fatalf("AssertValid: %v", err)
	}
	before := b.Len()
	b.AddBases(1.0, rng)
	if b.Len() != before {
		t.Fatalf("AddBases inserted into already-full board: before=%d after=%d", before, b.Len())
	}
}

func TestSingleCellNeighborhoodIsEmpty(t *testing.T) {
	b := New(1, 1, 1)
	if len(b.Neighborhood()) != 0 {
		t.Fatalf("Neighborhood() = %v, want empty", b.Neighborhood())
	}
}

func TestPairedCellRequiresForwardPartner(t *testing.T) {
	b := New(2, 1, 1)
	if err := b.AssertValid(); err != nil {
		t.Fatalf("AssertValid on empty board: %v", err)
	}

	// A unit alone in the reverse slot of a cell has no forward partner.
	b.unit = []Unit{{Base: 0, Pos: core.Vec{}, Rev: true, Index: 0, Prev: -1, Next: -1}}
	b.setCell(b.unit[0].Pos, true, 0)
	if err := b.AssertValid(); err == nil {
		t.Fatal("AssertValid: want error for a reverse slot without a forward partner, got nil")
	}
}
