package lattice

import (
	"fmt"

	"rnalattice/internal/core"
)

// AssertValid runs an exhaustive O(V) consistency audit and returns a
// descriptive error on the first violation found, or nil if the board is
// internally consistent.
func (b *Board) AssertValid() error {
	occupied := 0
	seen := make([]bool, len(b.unit))

	for x := 0; x < b.XSize; x++ {
		for y := 0; y < b.YSize; y++ {
			for z := 0; z < b.ZSize; z++ {
				for _, rev := range [2]bool{false, true} {
					pos := core.Vec{X: x, Y: y, Z: z}
					k := b.Cell(pos, rev)
					if k < 0 {
						continue
					}
					occupied++
					if k >= len(b.unit) {
						return fmt.Errorf("cell (%d,%d,%d,%v) references out-of-range index %d", x, y, z, rev, k)
					}
					if seen[k] {
						return fmt.Errorf("unit %d occupies more than one slot", k)
					}
					seen[k] = true
					u := &b.unit[k]
					if u.Index != k {
						return fmt.Errorf("unit at arena position %d has incorrect index %d", k, u.Index)
					}
					if !b.BoardEqual(u.Pos, pos) {
						return fmt.Errorf("unit %d position %v does not match cell (%d,%d,%d)", k, u.Pos, x, y, z)
					}
					if u.Rev != rev {
						return fmt.Errorf("unit %d rev %v does not match cell slot %v", k, u.Rev, rev)
					}
					if rev {
						if b.Cell(pos, false) < 0 {
							return fmt.Errorf("reverse slot (%d,%d,%d) occupied without a forward partner", x, y, z)
						}
					}
				}
			}
		}
	}

	for k := range seen {
		if !seen[k] {
			return fmt.Errorf("unit %d does not occupy any cell slot", k)
		}
	}

	if occupied != len(b.unit) {
		return fmt.Errorf("occupied slot count %d does not match arena size %d", occupied, len(b.unit))
	}

	for k := range b.unit {
		u := &b.unit[k]
		if u.Prev >= 0 {
			if u.Prev >= len(b.unit) || b.unit[u.Prev].Next != k {
				return fmt.Errorf("unit %d prev link %d is not reciprocated", k, u.Prev)
			}
		}
		if u.Next >= 0 {
			if u.Next >= len(b.unit) || b.unit[u.Next].Prev != k {
				return fmt.Errorf("unit %d next link %d is not reciprocated", k, u.Next)
			}
		}
	}

	return nil
}

// AssertLinear requires that the arena forms exactly one linear chain in
// index order: unit[i].Index == i, unit[0].Prev == -1, unit[i].Prev == i-1
// for i>0, unit[i].Next == i+1 for i<N-1, and unit[N-1].Next == -1.
func (b *Board) AssertLinear() error {
	n := len(b.unit)
	for i := 0; i < n; i++ {
		u := &b.unit[i]
		if u.Index != i {
			return fmt.Errorf("unit at position %d has index %d", i, u.Index)
		}
		if i == 0 {
			if u.Prev != -1 {
				return fmt.Errorf("unit 0 has prev %d, expected -1", u.Prev)
			}
		} else if u.Prev != i-1 {
			return fmt.Errorf("unit %d has prev %d, expected %d", i, u.Prev, i-1)
		}
		if i == n-1 {
			if u.Next != -1 {
				return fmt.Errorf("unit %d has next %d, expected -1", i, u.Next)
			}
		} else if u.Next != i+1 {
			return fmt.Errorf("unit %d has next %d, expected %d", i, u.Next, i+1)
		}
	}
	return nil
}
