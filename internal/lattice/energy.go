package lattice

import (
	"errors"
	"math"

	"rnalattice/internal/core"
)

// CalcEnergy computes the pairing contribution between u and v as if they
// occupied the same cell in opposite slots, with stacking weighted by
// stackWeight. It returns an error if the base product is not a valid
// pair (0 = A-U, 2 = C-G, 6 = G-U).
func (b *Board) CalcEnergy(u, v *Unit, stackWeight float64) (float64, error) {
	e := 0.0
	switch u.Base * v.Base {
	case 0:
		e += b.Params.AUEnergy
	case 2:
		e += b.Params.GCEnergy
	case 6:
		e += b.Params.GUEnergy
	default:
		return 0, errors.New("Not a basepair")
	}
	if b.IndicesPaired(u.Prev, v.Next) {
		e += b.Params.StackEnergy * stackWeight
	}
	if b.IndicesPaired(u.Next, v.Prev) {
		e += b.Params.StackEnergy * stackWeight
	}
	return e, nil
}

// PairingEnergy is CalcEnergy with full stacking weight.
func (b *Board) PairingEnergy(u, v *Unit) (float64, error) {
	return b.CalcEnergy(u, v, 1)
}

// FoldEnergy sums PairingEnergy over every paired index pair, with
// stacking half-weighted since each stacking bond is shared between the
// two pairs that participate in it.
func (b *Board) FoldEnergy() float64 {
	total := 0.0
	for _, p := range b.IndexPairs() {
		e, err := b.CalcEnergy(&b.unit[p.I], &b.unit[p.J], 0.5)
		if err != nil {
			continue
		}
		total += e
	}
	return total
}

// AcceptMove applies the Metropolis-Hastings acceptance rule: accept with
// probability min(1, exp(energyDelta/temp)/fwdBackRatio). energyDelta is
// energyNew-energyOld as it contributes to the Boltzmann factor; positive
// values favor the proposed state.
func (b *Board) AcceptMove(energyDelta, fwdBackRatio float64, rng *core.RNG) bool {
	p := math.Exp(energyDelta/b.Params.Temp) / fwdBackRatio
	return p >= 1 || rng.Float64() < p
}
