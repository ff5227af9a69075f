package lattice

import (
	"testing"

	"rnalattice/internal/core"
)

func TestCalcEnergyKnownPairs(t *testing.T) {
	b := New(4, 1, 1)
	cases := []struct {
		name     string
		a, c     int
		wantE    float64
	}{
		{"A-U", 0, 3, b.Params.AUEnergy},
		{"C-G", 1, 2, b.Params.GCEnergy},
		{"G-U", 2, 3, b.Params.GUEnergy},
	}
	for _, tc := range cases {
		u := Unit{Base: tc.a, Index: 0, Prev: -1, Next: -1}
		v := Unit{Base: tc.c, Index: 1, Prev: -1, Next: -1}
		e, err := b.CalcEnergy(&u, &v, 1)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if e != tc.wantE {
			t.Errorf("%s: energy = %v, want %v", tc.name, e, tc.wantE)
		}
	}
}

func TestCalcEnergyRejectsNonPair(t *testing.T) {
	b := New(4, 1, 1)
	// G,G -> product 4, not in {0,2,6}.
	u := Unit{Base: 2, Index: 0, Prev: -1, Next: -1}
	v := Unit{Base: 2, Index: 1, Prev: -1, Next: -1}
	_, err := b.CalcEnergy(&u, &v, 1)
	if err == nil || err.Error() != "Not a basepair" {
		t.Fatalf("err = %v, want Not a basepair", err)
	}
}

func TestFoldEnergyHalvesStackingAcrossSharedBond(t *testing.T) {
	// Build two stacked pairs: (0,3) and (1,2), where 0-1 and 2-3 are
	// chain neighbors, so the stack between the pairs is shared.
	b := New(4, 1, 2)
	u0 := Unit{Base: 0, Pos: core.Vec{X: 0}, Rev: false, Index: 0, Prev: -1, Next: 1}
	u1 := Unit{Base: 1, Pos: core.Vec{X: 1}, Rev: false, Index: 1, Prev: 0, Next: -1}
	u2 := Unit{Base: 2, Pos: core.Vec{X: 1}, Rev: true, Index: 2, Prev: -1, Next: 3}
	u3 := Unit{Base: 3, Pos: core.Vec{X: 0}, Rev: true, Index: 3, Prev: 2, Next: -1}
	b.unit = []Unit{u0, u1, u2, u3}
	for i := range b.unit {
		b.setCell(b.unit[i].Pos, b.unit[i].Rev, i)
	}
	if err := b.AssertValid(); err != nil {
		t.Fatalf("AssertValid: %v", err)
	}

	pairs := b.IndexPairs()
	if len(pairs) != 2 {
		t.Fatalf("IndexPairs() = %v, want 2 pairs", pairs)
	}

	e03, err := b.PairingEnergy(&b.unit[0], &b.unit[3])
	if err != nil {
		t.Fatalf("PairingEnergy(0,3): %v", err)
	}
	e12, err := b.PairingEnergy(&b.unit[1], &b.unit[2])
	if err != nil {
		t.Fatalf("PairingEnergy(1,2): %v", err)
	}
	want := (e03 + e12) - b.Params.StackEnergy // each full-weight pairing counts the shared stack once fully; fold halves it
	got := b.FoldEnergy()
	if got != want {
		t.Errorf("FoldEnergy() = %v, want %v", got, want)
	}
}
