package lattice

import "testing"

func TestAssertValidDetectsBrokenReciprocalLink(t *testing.T) {
	b := New(3, 1, 1)
	if err := b.AddSeq("acg"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	b.unit[1].Prev = -1 // unit 0 still claims Next == 1

	if err := b.AssertValid(); err == nil {
		t.Fatal("AssertValid: want error after breaking a reciprocal link, got nil")
	}
}

func TestAssertValidDetectsDoubleOccupancy(t *testing.T) {
	b := New(3, 1, 1)
	if err := b.AddSeq("acg"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	b.setCell(b.unit[2].Pos, b.unit[2].Rev, 0) // unit 0 now occupies two slots

	if err := b.AssertValid(); err == nil {
		t.Fatal("AssertValid: want error after double-occupying a slot, got nil")
	}
}

func TestAssertLinearAcceptsFreshChain(t *testing.T) {
	b := New(5, 1, 1)
	if err := b.AddSeq("acgua"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	if err := b.AssertLinear(); err != nil {
		t.Fatalf("AssertLinear: %v", err)
	}
}

func TestAssertLinearRejectsGap(t *testing.T) {
	b := New(5, 1, 1)
	if err := b.AddSeq("acgua"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	b.unit[2].Prev = -1
	if err := b.AssertLinear(); err == nil {
		t.Fatal("AssertLinear: want error after breaking the middle link, got nil")
	}
}
