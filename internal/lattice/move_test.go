package lattice

import (
	"testing"

	"rnalattice/internal/core"
)

func TestTryMoveEmptyBoardIsNoOp(t *testing.T) {
	b := New(4, 4, 4)
	rng := core.NewRNG(1)
	if b.TryMove(rng) {
		t.Fatal("TryMove on empty board: want false")
	}
}

func TestTryMoveSingleCellBoardIsNoOp(t *testing.T) {
	b := New(1, 1, 1)
	if err := b.AddSeq("a"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	rng := core.NewRNG(1)
	if b.TryMove(rng) {
		t.Fatal("TryMove on a (1,1,1) board: want false, neighborhood is empty")
	}
	if err := b.AssertValid(); err != nil {
		t.Fatalf("AssertValid: %v", err)
	}
}

func TestTryMovePreservesInvariantsAcrossManySteps(t *testing.T) {
	b := New(6, 6, 6)
	rng := core.NewRNG(42)
	b.AddBases(0.3, rng)
	if err := b.AssertValid(); err != nil {
		t.Fatalf("AssertValid before moves: %v", err)
	}

	before := b.Len()
	for i := 0; i < 500; i++ {
		b.TryMove(rng)
		if err := b.AssertValid(); err != nil {
			t.Fatalf("AssertValid after step %d: %v", i, err)
		}
	}
	if b.Len() != before {
		t.Fatalf("arena size changed from %d to %d across moves", before, b.Len())
	}
}

func TestTryMoveRejectsBreakingChainAdjacency(t *testing.T) {
	b := New(4, 4, 1)
	if err := b.AddSeq("acgu"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	u := b.Unit(0)
	farPos := core.Vec{X: 3, Y: 3, Z: 0}
	if b.CanMoveTo(u, farPos) {
		t.Fatalf("CanMoveTo(%v): want false, %v is not adjacent to unit 1's position", farPos, farPos)
	}
}
