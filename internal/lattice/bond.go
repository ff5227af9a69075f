package lattice

import "rnalattice/internal/core"

// TryBond models template-directed ligation: covalent bond formation
// between two adjacent, chain-end monomers. It is a separate operation
// from TryMove and never fires as part of it. A unit u with Next < 0 is
// picked uniformly; if an adjacent unit v with Prev < 0 exists that is
// not already u's chain neighbor, the bond forms with probability
// Params.BondProb. It returns whether a bond was formed.
func (b *Board) TryBond(rng *core.RNG) bool {
	ends := make([]int, 0, len(b.unit))
	for i := range b.unit {
		if b.unit[i].Next < 0 {
			ends = append(ends, i)
		}
	}
	if len(ends) == 0 {
		return false
	}

	u := &b.unit[ends[rng.IntN(len(ends))]]

	var candidates []int
	for j := range b.unit {
		if j == u.Index || b.unit[j].Prev >= 0 {
			continue
		}
		v := &b.unit[j]
		if v.Index == u.Prev || u.Index == v.Next {
			continue
		}
		if b.Adjacent(u.Pos, v.Pos) {
			candidates = append(candidates, j)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	v := &b.unit[candidates[rng.IntN(len(candidates))]]
	if rng.Float64() >= b.Params.BondProb {
		return false
	}

	u.Next = v.Index
	v.Prev = u.Index
	return true
}
