package lattice

import "rnalattice/internal/core"

// TryMove attempts one Monte Carlo step: pick a unit and a neighbor delta
// uniformly at random, classify the proposal (plain move, split, merge,
// pair-drag, or end-joining) against current occupancy and chain
// adjacency, and either commit it atomically or leave the board
// unchanged. It returns whether the board state changed. A false return
// is always a no-op: TryMove never mutates state and then backs out.
func (b *Board) TryMove(rng *core.RNG) bool {
	if len(b.unit) == 0 || len(b.neighborhood) == 0 {
		return false
	}

	i := rng.IntN(len(b.unit))
	u := &b.unit[i]
	delta := b.RandomNeighborDelta(rng)
	newPos := u.Pos.Add(delta).Canonical(b.XSize, b.YSize, b.ZSize)

	if !b.CanMoveTo(u, newPos) {
		return false
	}

	nf := b.Cell(newPos, false)
	nr := b.Cell(newPos, true)

	pIdx := b.PairedIndex(u)
	if pIdx >= 0 {
		return b.tryMovePaired(rng, u, pIdx, newPos, nf, nr)
	}
	return b.tryMoveUnpaired(rng, u, newPos, nf, nr)
}

// tryMovePaired handles Case A of the canonical move step: u is currently
// paired with the unit at pIdx.
func (b *Board) tryMovePaired(rng *core.RNG, u *Unit, pIdx int, newPos core.Vec, nf, nr int) bool {
	p := &b.unit[pIdx]
	oldE, err := b.PairingEnergy(u, p)
	if err != nil {
		return false
	}

	if rng.Float64() < b.Params.SplitProb {
		return b.trySplit(rng, u, p, oldE, newPos, nf, nr)
	}
	return b.tryPairDragOrJoin(rng, u, p, newPos, nf, nr)
}

// trySplit implements the split and split-then-merge branches of Case A.
func (b *Board) trySplit(rng *core.RNG, u, p *Unit, oldE float64, newPos core.Vec, nf, nr int) bool {
	switch {
	case nf < 0:
		// u moves alone to newPos, forward slot; p stays put but becomes
		// unpaired (rewritten into its own forward slot).
		if !b.AcceptMove(-oldE, b.Params.SplitProb, rng) {
			return false
		}
		pPos := p.Pos
		b.moveUnit(u, newPos, false)
		b.moveUnit(p, pPos, false)
		return true
	case nr < 0 && b.CanMerge(u, &b.unit[nf]):
		// split-then-merge: u lands in the reverse slot of newPos, pairing
		// with the existing occupant of its forward slot.
		newE, err := b.PairingEnergy(u, &b.unit[nf])
		if err != nil {
			return false
		}
		if !b.AcceptMove(newE-oldE, 1, rng) {
			return false
		}
		pPos := p.Pos
		b.moveUnit(u, newPos, true)
		b.moveUnit(p, pPos, false)
		return true
	default:
		return false
	}
}

// tryPairDragOrJoin implements the non-split branch of Case A: either a
// pair-drag (both u and p translate together) or, failing that, an
// end-joining attempt.
func (b *Board) tryPairDragOrJoin(rng *core.RNG, u, p *Unit, newPos core.Vec, nf, nr int) bool {
	if nf < 0 && nr < 0 && b.CanMoveTo(p, newPos) {
		uRev, pRev := u.Rev, p.Rev
		b.moveUnit(u, newPos, uRev)
		b.moveUnit(p, newPos, pRev)
		return true
	}

	if nf >= 0 && nr >= 0 && u.Next < 0 {
		nbr := &b.unit[nf]
		nbrp := &b.unit[nr]
		switch {
		case p.Prev == nf && nbrp.Prev < 0:
			nbrp.Prev = u.Index
			u.Next = nr
			return true
		case p.Prev == nr && nbr.Prev < 0:
			nbr.Prev = u.Index
			u.Next = nf
			return true
		}
	}
	return false
}

// tryMoveUnpaired implements Case B of the canonical move step: u is
// currently unpaired.
func (b *Board) tryMoveUnpaired(rng *core.RNG, u *Unit, newPos core.Vec, nf, nr int) bool {
	if nf < 0 {
		b.moveUnit(u, newPos, false)
		return true
	}
	nbr := &b.unit[nf]
	if nr < 0 && b.CanMerge(u, nbr) {
		e, err := b.PairingEnergy(u, nbr)
		if err != nil {
			return false
		}
		if !b.AcceptMove(e, 1/b.Params.SplitProb, rng) {
			return false
		}
		b.moveUnit(u, newPos, true)
		return true
	}
	return false
}
