package lattice

import (
	"testing"

	"rnalattice/internal/core"
)

func TestFoldStringBalancedNesting(t *testing.T) {
	// Chain a-u-u-a folded into a simple hairpin: 0 pairs with 3, 1 pairs
	// with 2, giving nested, non-crossing brackets.
	b := New(4, 1, 2)
	if err := b.AddSeq("auua"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	pairUnits(t, b, 0, 3)
	pairUnits(t, b, 1, 2)

	fold := b.FoldString()
	if len(fold) != 4 {
		t.Fatalf("FoldString() length = %d, want 4", len(fold))
	}
	if fold[0] == '.' || fold[3] == '.' || fold[1] == '.' || fold[2] == '.' {
		t.Fatalf("FoldString() = %q, want all positions paired", fold)
	}
	if fold != "<<>>" {
		t.Fatalf("FoldString() = %q, want %q", fold, "<<>>")
	}
}

func TestFoldStringLeavesUnpairedAsDot(t *testing.T) {
	b := New(4, 1, 1)
	if err := b.AddSeq("acgu"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	fold := b.FoldString()
	for i, c := range fold {
		if c != '.' {
			t.Errorf("fold[%d] = %q, want '.'", i, c)
		}
	}
}

func TestSequenceFreqsCountsLinearChain(t *testing.T) {
	b := New(4, 1, 1)
	if err := b.AddSeq("acgu"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	freqs := b.SequenceFreqs()
	if freqs["acgu"] != 1 {
		t.Fatalf("SequenceFreqs() = %v, want {\"acgu\":1}", freqs)
	}
	total := 0
	for _, n := range freqs {
		total += n
	}
	if total != 1 {
		t.Errorf("total chain count = %d, want 1", total)
	}
}

func TestSequenceFreqsTreatsIsolatedUnitsSeparately(t *testing.T) {
	b := New(4, 1, 1)
	if err := b.AddSeq("ac"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	rng := core.NewRNG(1)
	b.AddBases(1.0, rng) // fills the two empty cells with unlinked monomers
	freqs := b.SequenceFreqs()
	total := 0
	for _, n := range freqs {
		total += n
	}
	if total != 3 {
		t.Errorf("total chain count = %d, want 3 for one 2-unit chain plus two isolated units", total)
	}
}

// pairUnits directly co-locates units i and j in opposite slots of the
// same cell, as if a merge move had just placed them there.
func pairUnits(t *testing.T, b *Board, i, j int) {
	t.Helper()
	ui, uj := b.Unit(i), b.Unit(j)
	b.setCell(ui.Pos, ui.Rev, -1)
	b.setCell(uj.Pos, uj.Rev, -1)
	pos := ui.Pos
	ui.Rev = false
	uj.Rev = true
	uj.Pos = pos
	b.setCell(pos, false, i)
	b.setCell(pos, true, j)
}
