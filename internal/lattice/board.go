package lattice

import (
	"errors"

	"rnalattice/internal/core"
)

// Board is a 3-D periodic lattice of cells, each with two slots (forward
// and reverse), plus an append-only arena of Units occupying those slots.
// The Board exclusively owns cellStorage and unit; callers observe through
// value-returning accessors or references whose lifetime matches the Board.
type Board struct {
	XSize, YSize, ZSize int

	Params Params

	unit []Unit

	// cellStorage is a flat array of length 2*XSize*YSize*ZSize, laid out
	// rev + 2*(x + XSize*(y + YSize*z)). A value of -1 means the slot is
	// empty; otherwise it is the arena index of the occupying unit.
	cellStorage []int

	neighborhood []core.Vec
}

// New returns an empty Board with the given dimensions. X, Y, Z must be >= 1.
func New(xSize, ySize, zSize int) *Board {
	if xSize < 1 || ySize < 1 || zSize < 1 {
		panic("lattice: board dimensions must be >= 1")
	}
	b := &Board{
		XSize:       xSize,
		YSize:       ySize,
		ZSize:       zSize,
		Params:      DefaultParams(),
		cellStorage: make([]int, 2*xSize*ySize*zSize),
	}
	for i := range b.cellStorage {
		b.cellStorage[i] = -1
	}
	b.neighborhood = core.Neighborhood(xSize, ySize, zSize)
	return b
}

// Units returns the arena in insertion order. The returned slice aliases
// the Board's own storage; callers must not change its length.
func (b *Board) Units() []Unit { return b.unit }

// Unit returns a pointer to the arena entry at index i. The pointer is
// valid until the next append (AddSeq/AddBases); it is never invalidated
// by TryMove, which only mutates fields in place.
func (b *Board) Unit(i int) *Unit { return &b.unit[i] }

// Len returns the number of units in the arena.
func (b *Board) Len() int { return len(b.unit) }

// Neighborhood returns the enumerated non-zero deltas around a cell.
func (b *Board) Neighborhood() []core.Vec { return b.neighborhood }

func (b *Board) cellIndex(v core.Vec, rev bool) int {
	x := core.BoardCoord(v.X, b.XSize)
	y := core.BoardCoord(v.Y, b.YSize)
	z := core.BoardCoord(v.Z, b.ZSize)
	r := 0
	if rev {
		r = 1
	}
	return r + 2*(x+b.XSize*(y+b.YSize*z))
}

// Cell returns the arena index occupying (v, rev), canonicalized, or -1.
func (b *Board) Cell(v core.Vec, rev bool) int {
	return b.cellStorage[b.cellIndex(v, rev)]
}

func (b *Board) setCell(v core.Vec, rev bool, idx int) {
	b.cellStorage[b.cellIndex(v, rev)] = idx
}

// BoardEqual reports whether a and b denote the same cell once both are
// reduced to canonical coordinates.
func (brd *Board) BoardEqual(a, b core.Vec) bool {
	return core.BoardCoord(a.X, brd.XSize) == core.BoardCoord(b.X, brd.XSize) &&
		core.BoardCoord(a.Y, brd.YSize) == core.BoardCoord(b.Y, brd.YSize) &&
		core.BoardCoord(a.Z, brd.ZSize) == core.BoardCoord(b.Z, brd.ZSize)
}

// Adjacent reports whether a and b are within periodic distance 1 on every
// axis.
func (brd *Board) Adjacent(a, b core.Vec) bool {
	return core.CoordAdjacent(a.X, b.X, brd.XSize) &&
		core.CoordAdjacent(a.Y, b.Y, brd.YSize) &&
		core.CoordAdjacent(a.Z, b.Z, brd.ZSize)
}

// IsPaired reports whether u currently shares its cell with a partner in
// the opposite slot.
func (b *Board) IsPaired(u *Unit) bool {
	return b.PairedIndex(u) >= 0
}

// PairedIndex returns the arena index of the unit occupying the opposite
// slot of u's cell, or -1 if that slot is empty.
func (b *Board) PairedIndex(u *Unit) int {
	return b.Cell(u.Pos, !u.Rev)
}

// IndicesPaired reports whether i and j are both valid arena indices and
// the units at those indices occupy board-equal positions.
func (b *Board) IndicesPaired(i, j int) bool {
	if i < 0 || j < 0 {
		return false
	}
	return b.BoardEqual(b.unit[i].Pos, b.unit[j].Pos)
}

// moveUnit is the single primitive through which every mutation of a
// Unit's position or slot occurs: clear the old slot, rewrite the unit's
// position/slot, occupy the new slot.
func (b *Board) moveUnit(u *Unit, newPos core.Vec, newRev bool) {
	b.setCell(u.Pos, u.Rev, -1)
	u.Pos = newPos.Canonical(b.XSize, b.YSize, b.ZSize)
	u.Rev = newRev
	b.setCell(u.Pos, u.Rev, u.Index)
}

// CanMoveTo reports whether u could move to newPos without breaking chain
// adjacency: both chain neighbors, if present, must remain adjacent to
// newPos.
func (b *Board) CanMoveTo(u *Unit, newPos core.Vec) bool {
	if u.Next >= 0 && !b.Adjacent(b.unit[u.Next].Pos, newPos) {
		return false
	}
	if u.Prev >= 0 && !b.Adjacent(b.unit[u.Prev].Pos, newPos) {
		return false
	}
	return true
}

// CanMerge reports whether u and v are eligible to become a pair: they
// must be complementary or wobble, and not be direct, next-but-one, or
// parallel-stacked chain neighbors.
func (b *Board) CanMerge(u, v *Unit) bool {
	if !u.IsComplementOrWobble(v) {
		return false
	}
	if u.Next == v.Index || v.Next == u.Index {
		return false
	}
	uNext2 := -1
	if u.Next >= 0 {
		uNext2 = b.unit[u.Next].Next
	}
	uPrev2 := -1
	if u.Prev >= 0 {
		uPrev2 = b.unit[u.Prev].Prev
	}
	if uNext2 >= 0 && (uNext2 == v.Index || uNext2 == v.Prev) {
		return false
	}
	if uPrev2 >= 0 && (uPrev2 == v.Index || uPrev2 == v.Next) {
		return false
	}
	if b.IndicesPaired(u.Prev, v.Prev) || b.IndicesPaired(u.Next, v.Next) {
		return false
	}
	return true
}

// AddSeq appends a linear chain along +x starting at the origin, one unit
// per character of seq (case-insensitive). It fails if the sequence is
// longer than XSize, any target forward slot is already occupied, or any
// character is not a, c, g, or u.
func (b *Board) AddSeq(seq string) error {
	if len(seq) > b.XSize {
		return errors.New("Board is too small for sequence")
	}
	for pos := 0; pos < len(seq); pos++ {
		if b.Cell(core.Vec{X: pos}, false) != -1 {
			return errors.New("Cell occupied")
		}
		if !IsRNA(seq[pos]) {
			return errors.New("Sequence is not RNA")
		}
		base, _ := CharToBase(seq[pos])
		index := len(b.unit)
		prev := -1
		if pos > 0 {
			prev = index - 1
			b.unit[index-1].Next = index
		}
		u := Unit{Base: base, Pos: core.Vec{X: pos}, Rev: false, Index: index, Prev: prev, Next: -1}
		b.unit = append(b.unit, u)
		b.setCell(u.Pos, u.Rev, u.Index)
	}
	return nil
}

// AddBases sprinkles random, chain-less monomers into empty cells. For
// each cell where both slots are empty, with probability density a unit
// with a uniform random base is inserted into the forward slot.
func (b *Board) AddBases(density float64, rng *core.RNG) {
	for x := 0; x < b.XSize; x++ {
		for y := 0; y < b.YSize; y++ {
			for z := 0; z < b.ZSize; z++ {
				pos := core.Vec{X: x, Y: y, Z: z}
				if b.Cell(pos, false) != -1 || b.Cell(pos, true) != -1 {
					continue
				}
				if rng.Float64() >= density {
					continue
				}
				index := len(b.unit)
				u := Unit{Base: rng.IntN(4), Pos: pos, Rev: false, Index: index, Prev: -1, Next: -1}
				b.unit = append(b.unit, u)
				b.setCell(u.Pos, u.Rev, u.Index)
			}
		}
	}
}

// RandomNeighborDelta draws a uniformly random neighborhood delta.
func (b *Board) RandomNeighborDelta(rng *core.RNG) core.Vec {
	return b.neighborhood[rng.IntN(len(b.neighborhood))]
}
